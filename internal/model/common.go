package model

import (
	"time"
)

// Audit 审计信息, 以值的形式嵌入每张表
type Audit struct {
	CreatedBy string    `gorm:"size:100;not null;default:''" json:"created_by"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedBy string    `gorm:"size:100;not null;default:''" json:"updated_by"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// Stamp 记录操作人, 首次写入时同时记录创建人
func (a *Audit) Stamp(user string) {
	if a.CreatedBy == "" {
		a.CreatedBy = user
	}
	a.UpdatedBy = user
}

type BaseModel struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Audit
}

// AllModels 需要迁移的全部表
func AllModels() []interface{} {
	return []interface{}{
		&Storage{},
		&PartitionKeyGroup{},
		&ExpectedPartitionValue{},
		&BusinessObjectFormat{},
		&BusinessObjectDataAttributeDefinition{},
		&BusinessObjectData{},
		&StorageUnit{},
		&TagType{},
		&Tag{},
		&StoragePolicyRuleType{},
		&EmrClusterDefinition{},
		&EmrClusterCreationLog{},
		&NotificationMessage{},
	}
}
