package model

const StorageTableName = "storages"
const StorageUnitTableName = "storage_units"

// Storage 存储位置
type Storage struct {
	BaseModel
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Type string `gorm:"size:50;not null" json:"type"` // S3, HDFS, ...
}

func (Storage) TableName() string {
	return StorageTableName
}

// StorageUnit 业务对象数据在某个存储中的登记
// 只有 ENABLED 的存储单元参与可用性判断
type StorageUnit struct {
	BaseModel
	BusinessObjectDataID int64   `gorm:"not null;uniqueIndex:uk_data_storage" json:"business_object_data_id"`
	StorageName          string  `gorm:"size:100;not null;uniqueIndex:uk_data_storage" json:"storage_name"`
	Directory            *string `gorm:"size:1024" json:"directory,omitempty"`
	Status               string  `gorm:"size:20;not null;index" json:"status"`
}

func (StorageUnit) TableName() string {
	return StorageUnitTableName
}
