package dto

// CreateStoragePolicyRuleTypeRequest 创建存储策略规则类型请求
type CreateStoragePolicyRuleTypeRequest struct {
	Code        string  `json:"storage_policy_rule_type_code" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// StoragePolicyRuleTypeResponse 存储策略规则类型响应
type StoragePolicyRuleTypeResponse struct {
	Code        string  `json:"storage_policy_rule_type_code"`
	Description *string `json:"description,omitempty"`
}
