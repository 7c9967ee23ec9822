package model

const PartitionKeyGroupTableName = "partition_key_groups"
const ExpectedPartitionValueTableName = "expected_partition_values"

// PartitionKeyGroup 分区键组, 例如 TRADE_DT 日历
type PartitionKeyGroup struct {
	BaseModel
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

func (PartitionKeyGroup) TableName() string {
	return PartitionKeyGroupTableName
}

// ExpectedPartitionValue 分区键组内的合法分区值, (group, value) 唯一
type ExpectedPartitionValue struct {
	BaseModel
	GroupName string `gorm:"size:100;not null;uniqueIndex:uk_group_value" json:"partition_key_group"`
	Value     string `gorm:"size:120;not null;uniqueIndex:uk_group_value" json:"partition_value"`
}

func (ExpectedPartitionValue) TableName() string {
	return ExpectedPartitionValueTableName
}
