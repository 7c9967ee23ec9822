package handler

import (
	"github.com/gin-gonic/gin"

	"data-catalog/internal/dto"
	"data-catalog/internal/service"
	"data-catalog/pkg/responses"
)

type FormatHandler struct {
	formatService service.FormatService
}

func NewFormatHandler(formatService service.FormatService) *FormatHandler {
	return &FormatHandler{formatService: formatService}
}

// Create 创建业务对象格式
// @Summary 创建业务对象格式
// @Description 每次创建生成新版本, 旧版本不再是最新
// @Tags 业务对象格式
// @Accept json
// @Produce json
// @Param request body dto.CreateFormatRequest true "创建格式请求"
// @Success 200 {object} dto.FormatResponse
// @Router /api/v1/formats [post]
func (h *FormatHandler) Create(c *gin.Context) {
	var req dto.CreateFormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.formatService.Create(&req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// Get 获取业务对象格式
// @Summary 获取业务对象格式
// @Tags 业务对象格式
// @Produce json
// @Param namespace query string true "命名空间"
// @Param business_object_definition_name query string true "业务对象定义"
// @Param business_object_format_usage query string true "用途"
// @Param business_object_format_file_type query string true "文件类型"
// @Param business_object_format_version query int false "格式版本, 默认最新"
// @Success 200 {object} dto.FormatResponse
// @Router /api/v1/formats [get]
func (h *FormatHandler) Get(c *gin.Context) {
	var req dto.GetFormatRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.formatService.Get(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}
