package dto

// CreateStorageRequest 创建存储请求
type CreateStorageRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Type string `json:"storage_platform" binding:"required,max=50"`
}

// StorageResponse 存储响应
type StorageResponse struct {
	Name      string `json:"name"`
	Type      string `json:"storage_platform"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}
