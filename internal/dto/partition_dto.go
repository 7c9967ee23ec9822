package dto

// CreatePartitionKeyGroupRequest 创建分区键组请求
type CreatePartitionKeyGroupRequest struct {
	Name string `json:"partition_key_group_name" binding:"required,max=100"`
}

// PartitionKeyGroupResponse 分区键组响应
type PartitionKeyGroupResponse struct {
	Name      string `json:"partition_key_group_name"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

// ExpectedPartitionValuesRequest 添加/删除预期分区值请求
type ExpectedPartitionValuesRequest struct {
	PartitionKeyGroup       string   `json:"partition_key_group_name" binding:"required,max=100"`
	ExpectedPartitionValues []string `json:"expected_partition_values" binding:"required,min=1,dive,required,max=120"`
}

// ListExpectedPartitionValuesRequest 查询预期分区值, 起止值可选
type ListExpectedPartitionValuesRequest struct {
	Start string `form:"start_expected_partition_value"`
	End   string `form:"end_expected_partition_value"`
}

// ExpectedPartitionValuesResponse 预期分区值响应
type ExpectedPartitionValuesResponse struct {
	PartitionKeyGroup       string   `json:"partition_key_group_name"`
	ExpectedPartitionValues []string `json:"expected_partition_values"`
}
