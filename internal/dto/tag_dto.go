package dto

// CreateTagTypeRequest 创建标签类型请求
type CreateTagTypeRequest struct {
	Code        string `json:"tag_type_code" binding:"required,max=100"`
	DisplayName string `json:"display_name" binding:"required,max=200"`
	OrderNumber int    `json:"tag_type_order" binding:"gte=0"`
}

// TagTypeResponse 标签类型响应
type TagTypeResponse struct {
	Code        string `json:"tag_type_code"`
	DisplayName string `json:"display_name"`
	OrderNumber int    `json:"tag_type_order"`
}

// TagKey 标签键
type TagKey struct {
	TagTypeCode string `json:"tag_type_code" binding:"required,max=100"`
	TagCode     string `json:"tag_code" binding:"required,max=100"`
}

// CreateTagRequest 创建标签请求, 同一类型下显示名唯一
type CreateTagRequest struct {
	TagKey
	DisplayName string  `json:"display_name" binding:"required,max=200"`
	Description *string `json:"description"`
}

// TagResponse 标签响应
type TagResponse struct {
	TagTypeCode string  `json:"tag_type_code"`
	TagCode     string  `json:"tag_code"`
	DisplayName string  `json:"display_name"`
	Description *string `json:"description,omitempty"`
	CreatedBy   string  `json:"created_by"`
	CreatedAt   string  `json:"created_at"`
}
