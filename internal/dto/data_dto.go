package dto

import "data-catalog/internal/core/availability"

// DataKey 业务对象数据的键, 不指定数据版本时取最新版本
type DataKey struct {
	FormatKey
	BusinessObjectFormatVersion *int     `json:"business_object_format_version" form:"business_object_format_version" binding:"omitempty,gte=0"`
	PartitionValue              string   `json:"partition_value" form:"partition_value" binding:"required,max=120"`
	SubPartitionValues          []string `json:"sub_partition_values" form:"sub_partition_values" binding:"omitempty,max=4,dive,max=120"`
	BusinessObjectDataVersion   *int     `json:"business_object_data_version" form:"business_object_data_version" binding:"omitempty,gte=0"`
}

// StorageUnitRequest 存储单元
type StorageUnitRequest struct {
	StorageName string  `json:"storage_name" binding:"required,max=100"`
	Directory   *string `json:"storage_directory_path" binding:"omitempty,max=1024"`
}

// RegisterDataRequest 登记业务对象数据, 生成该分区的新版本
type RegisterDataRequest struct {
	FormatKey
	BusinessObjectFormatVersion *int                 `json:"business_object_format_version" binding:"omitempty,gte=0"`
	PartitionKey                string               `json:"partition_key" binding:"required,max=100"`
	PartitionValue              string               `json:"partition_value" binding:"required,max=120"`
	SubPartitionValues          []string             `json:"sub_partition_values" binding:"omitempty,max=4,dive,required,max=120"`
	Status                      string               `json:"status" binding:"omitempty,oneof=VALID INVALID UPLOADING PENDING_UPLOAD RE-ENCRYPTING ARCHIVED DELETED EXPIRED"`
	StorageUnits                []StorageUnitRequest `json:"storage_units" binding:"required,min=1,dive"`
}

// UpdateDataStatusRequest 更新业务对象数据状态
type UpdateDataStatusRequest struct {
	DataKey
	Status string `json:"status" binding:"required,oneof=VALID INVALID UPLOADING PENDING_UPLOAD RE-ENCRYPTING ARCHIVED DELETED EXPIRED"`
}

// StorageUnitResponse 存储单元响应
type StorageUnitResponse struct {
	StorageName string  `json:"storage_name"`
	Directory   *string `json:"storage_directory_path,omitempty"`
	Status      string  `json:"storage_unit_status"`
}

// DataResponse 业务对象数据响应
type DataResponse struct {
	ID                           int64                 `json:"id"`
	Namespace                    string                `json:"namespace"`
	BusinessObjectDefinitionName string                `json:"business_object_definition_name"`
	BusinessObjectFormatUsage    string                `json:"business_object_format_usage"`
	BusinessObjectFormatFileType string                `json:"business_object_format_file_type"`
	BusinessObjectFormatVersion  int                   `json:"business_object_format_version"`
	PartitionKey                 string                `json:"partition_key"`
	PartitionValue               string                `json:"partition_value"`
	SubPartitionValues           []string              `json:"sub_partition_values"`
	Version                      int                   `json:"version"`
	Latest                       bool                  `json:"latest_version"`
	Status                       string                `json:"status"`
	StorageUnits                 []StorageUnitResponse `json:"storage_units"`
	CreatedBy                    string                `json:"created_by"`
	CreatedAt                    string                `json:"created_at"`
}

// PartitionValueRange 分区值闭区间
type PartitionValueRange struct {
	StartPartitionValue string `json:"start_partition_value" binding:"required,max=120"`
	EndPartitionValue   string `json:"end_partition_value" binding:"required,max=120"`
}

// PartitionValueFilter 分区值列表与范围二选一
type PartitionValueFilter struct {
	PartitionKey        string               `json:"partition_key" binding:"required,max=100"`
	PartitionValues     []string             `json:"partition_values" binding:"omitempty,min=1,dive,required,max=120"`
	PartitionValueRange *PartitionValueRange `json:"partition_value_range" binding:"omitempty"`
}

// AvailabilityRequest 检查业务对象数据可用性
type AvailabilityRequest struct {
	FormatKey
	BusinessObjectFormatVersion *int                   `json:"business_object_format_version" binding:"omitempty,gte=0"`
	PartitionValueFilters       []PartitionValueFilter `json:"partition_value_filters" binding:"omitempty,dive"`
	PartitionValueFilter        *PartitionValueFilter  `json:"partition_value_filter" binding:"omitempty"`
	SubPartitionValues          []string               `json:"sub_partition_values" binding:"omitempty,max=4,dive,max=120"`
	BusinessObjectDataVersion   *int                   `json:"business_object_data_version" binding:"omitempty,gte=0"`
	StorageNames                []string               `json:"storage_names" binding:"omitempty,dive,required,max=100"`
}

// AvailabilityResponse 可用性检查结果
type AvailabilityResponse struct {
	Namespace                    string                 `json:"namespace"`
	BusinessObjectDefinitionName string                 `json:"business_object_definition_name"`
	BusinessObjectFormatUsage    string                 `json:"business_object_format_usage"`
	BusinessObjectFormatFileType string                 `json:"business_object_format_file_type"`
	BusinessObjectFormatVersion  int                    `json:"business_object_format_version"`
	PartitionValueFilters        []PartitionValueFilter `json:"partition_value_filters"`
	SubPartitionValues           []string               `json:"sub_partition_values,omitempty"`
	BusinessObjectDataVersion    *int                   `json:"business_object_data_version,omitempty"`
	StorageNames                 []string               `json:"storage_names,omitempty"`
	AvailableStatuses            []availability.Status  `json:"available_statuses"`
	NotAvailableStatuses         []availability.Status  `json:"not_available_statuses"`
}
