package model

const TagTypeTableName = "tag_types"
const TagTableName = "tags"

// TagType 标签类型
type TagType struct {
	BaseModel
	Code        string `gorm:"size:100;not null;uniqueIndex" json:"code"`
	DisplayName string `gorm:"size:200;not null" json:"display_name"`
	OrderNumber int    `gorm:"not null;default:0" json:"order_number"`
}

func (TagType) TableName() string {
	return TagTypeTableName
}

// Tag 标签, (tag_type_code, tag_code) 唯一; 同一类型下显示名唯一
type Tag struct {
	BaseModel
	TagTypeCode string  `gorm:"size:100;not null;uniqueIndex:uk_tag" json:"tag_type_code"`
	TagCode     string  `gorm:"size:100;not null;uniqueIndex:uk_tag" json:"tag_code"`
	DisplayName string  `gorm:"size:200;not null" json:"display_name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	TagType *TagType `gorm:"foreignKey:TagTypeCode;references:Code" json:"tag_type,omitempty"`
}

func (Tag) TableName() string {
	return TagTableName
}
