package model

const StoragePolicyRuleTypeTableName = "storage_policy_rule_types"

// StoragePolicyRuleType 存储策略规则类型, 例如 DAYS_SINCE_BDATA_REGISTERED
type StoragePolicyRuleType struct {
	BaseModel
	Code        string  `gorm:"size:100;not null;uniqueIndex" json:"code"`
	Description *string `gorm:"size:500" json:"description,omitempty"`
}

func (StoragePolicyRuleType) TableName() string {
	return StoragePolicyRuleTypeTableName
}
