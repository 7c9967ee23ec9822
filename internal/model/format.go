package model

const BusinessObjectFormatTableName = "business_object_formats"
const AttributeDefinitionTableName = "business_object_data_attribute_definitions"

// BusinessObjectFormat 业务对象格式, 同一 (namespace, definition, usage, file_type) 下版本递增
type BusinessObjectFormat struct {
	BaseModel
	Namespace         string  `gorm:"size:100;not null;uniqueIndex:uk_format" json:"namespace"`
	DefinitionName    string  `gorm:"size:100;not null;uniqueIndex:uk_format" json:"business_object_definition_name"`
	Usage             string  `gorm:"column:format_usage;size:50;not null;uniqueIndex:uk_format" json:"usage"`
	FileType          string  `gorm:"size:50;not null;uniqueIndex:uk_format" json:"file_type"`
	Version           int     `gorm:"not null;uniqueIndex:uk_format" json:"version"`
	Latest            bool    `gorm:"not null;default:false" json:"latest"`
	PartitionKey      string  `gorm:"size:100;not null" json:"partition_key"`
	PartitionKeyGroup *string `gorm:"size:100" json:"partition_key_group,omitempty"`
	Description       *string `gorm:"type:text" json:"description,omitempty"`

	AttributeDefinitions []BusinessObjectDataAttributeDefinition `gorm:"foreignKey:FormatID" json:"attribute_definitions,omitempty"`
}

func (BusinessObjectFormat) TableName() string {
	return BusinessObjectFormatTableName
}

// BusinessObjectDataAttributeDefinition 格式上声明的数据属性, 存在即必填
type BusinessObjectDataAttributeDefinition struct {
	BaseModel
	FormatID int64  `gorm:"not null;uniqueIndex:uk_format_attr" json:"format_id"`
	Name     string `gorm:"size:100;not null;uniqueIndex:uk_format_attr" json:"name"`
	Publish  bool   `gorm:"not null;default:false" json:"publish"`
}

func (BusinessObjectDataAttributeDefinition) TableName() string {
	return AttributeDefinitionTableName
}
