package model

const BusinessObjectDataTableName = "business_object_data"

// BusinessObjectData 某个格式在一组分区值下登记的数据版本
type BusinessObjectData struct {
	BaseModel
	FormatID           int64  `gorm:"not null;uniqueIndex:uk_data_key;index:idx_data_partition" json:"format_id"`
	PartitionValue     string `gorm:"size:120;not null;uniqueIndex:uk_data_key;index:idx_data_partition" json:"partition_value"`
	SubPartitionValue1 string `gorm:"column:sub_partition_value_1;size:120;not null;default:'';uniqueIndex:uk_data_key" json:"-"`
	SubPartitionValue2 string `gorm:"column:sub_partition_value_2;size:120;not null;default:'';uniqueIndex:uk_data_key" json:"-"`
	SubPartitionValue3 string `gorm:"column:sub_partition_value_3;size:120;not null;default:'';uniqueIndex:uk_data_key" json:"-"`
	SubPartitionValue4 string `gorm:"column:sub_partition_value_4;size:120;not null;default:'';uniqueIndex:uk_data_key" json:"-"`
	Version            int    `gorm:"not null;uniqueIndex:uk_data_key" json:"version"`
	Latest             bool   `gorm:"not null;default:false" json:"latest"`
	StatusCode         string `gorm:"size:20;not null;index" json:"status"`

	Format       *BusinessObjectFormat `gorm:"foreignKey:FormatID" json:"format,omitempty"`
	StorageUnits []StorageUnit         `gorm:"foreignKey:BusinessObjectDataID" json:"storage_units,omitempty"`
}

func (BusinessObjectData) TableName() string {
	return BusinessObjectDataTableName
}

// SubPartitionValues 返回已登记的子分区值, 去掉末尾未使用的列
func (d *BusinessObjectData) SubPartitionValues() []string {
	values := []string{d.SubPartitionValue1, d.SubPartitionValue2, d.SubPartitionValue3, d.SubPartitionValue4}
	n := len(values)
	for n > 0 && values[n-1] == "" {
		n--
	}
	return values[:n]
}

// SetSubPartitionValues 按位置写入子分区值, 调用方保证数量不超过4
func (d *BusinessObjectData) SetSubPartitionValues(values []string) {
	cols := []*string{&d.SubPartitionValue1, &d.SubPartitionValue2, &d.SubPartitionValue3, &d.SubPartitionValue4}
	for i, col := range cols {
		if i < len(values) {
			*col = values[i]
		} else {
			*col = ""
		}
	}
}
