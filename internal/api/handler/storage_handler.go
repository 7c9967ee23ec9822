package handler

import (
	"github.com/gin-gonic/gin"

	"data-catalog/internal/dto"
	"data-catalog/internal/service"
	"data-catalog/pkg/responses"
)

type StorageHandler struct {
	storageService service.StorageService
}

func NewStorageHandler(storageService service.StorageService) *StorageHandler {
	return &StorageHandler{storageService: storageService}
}

// Create 创建存储
// @Summary 创建存储
// @Tags 存储
// @Accept json
// @Produce json
// @Param request body dto.CreateStorageRequest true "创建存储请求"
// @Success 200 {object} dto.StorageResponse
// @Router /api/v1/storages [post]
func (h *StorageHandler) Create(c *gin.Context) {
	var req dto.CreateStorageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.storageService.Create(&req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// Get 获取存储
// @Summary 获取存储
// @Tags 存储
// @Produce json
// @Param name path string true "存储名称"
// @Success 200 {object} dto.StorageResponse
// @Router /api/v1/storages/{name} [get]
func (h *StorageHandler) Get(c *gin.Context) {
	resp, err := h.storageService.Get(c.Param("name"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// List 获取存储列表
// @Summary 获取存储列表
// @Tags 存储
// @Produce json
// @Success 200 {array} dto.StorageResponse
// @Router /api/v1/storages [get]
func (h *StorageHandler) List(c *gin.Context) {
	resp, err := h.storageService.List()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}
