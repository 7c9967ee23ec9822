package dto

// FormatKey 业务对象格式的业务键
type FormatKey struct {
	Namespace                    string `json:"namespace" form:"namespace" binding:"required,max=100"`
	BusinessObjectDefinitionName string `json:"business_object_definition_name" form:"business_object_definition_name" binding:"required,max=100"`
	BusinessObjectFormatUsage    string `json:"business_object_format_usage" form:"business_object_format_usage" binding:"required,max=50"`
	BusinessObjectFormatFileType string `json:"business_object_format_file_type" form:"business_object_format_file_type" binding:"required,max=50"`
}

// AttributeDefinition 数据属性定义
type AttributeDefinition struct {
	Name    string `json:"name" binding:"required,max=100"`
	Publish bool   `json:"publish"`
}

// CreateFormatRequest 创建业务对象格式请求, 每次创建生成新版本
type CreateFormatRequest struct {
	FormatKey
	PartitionKey         string                `json:"partition_key" binding:"required,max=100"`
	PartitionKeyGroup    *string               `json:"partition_key_group" binding:"omitempty,max=100"`
	Description          *string               `json:"description"`
	AttributeDefinitions []AttributeDefinition `json:"attribute_definitions" binding:"omitempty,dive"`
}

// GetFormatRequest 查询业务对象格式, 不指定版本时返回最新版本
type GetFormatRequest struct {
	FormatKey
	BusinessObjectFormatVersion *int `form:"business_object_format_version" binding:"omitempty,gte=0"`
}

// FormatResponse 业务对象格式响应
type FormatResponse struct {
	ID                           int64                 `json:"id"`
	Namespace                    string                `json:"namespace"`
	BusinessObjectDefinitionName string                `json:"business_object_definition_name"`
	BusinessObjectFormatUsage    string                `json:"business_object_format_usage"`
	BusinessObjectFormatFileType string                `json:"business_object_format_file_type"`
	BusinessObjectFormatVersion  int                   `json:"business_object_format_version"`
	Latest                       bool                  `json:"latest_version"`
	PartitionKey                 string                `json:"partition_key"`
	PartitionKeyGroup            *string               `json:"partition_key_group,omitempty"`
	Description                  *string               `json:"description,omitempty"`
	AttributeDefinitions         []AttributeDefinition `json:"attribute_definitions"`
}
