package handler

import (
	"github.com/gin-gonic/gin"

	"data-catalog/internal/dto"
	"data-catalog/internal/service"
	"data-catalog/pkg/responses"
)

type StoragePolicyRuleTypeHandler struct {
	ruleTypeService service.StoragePolicyRuleTypeService
}

func NewStoragePolicyRuleTypeHandler(ruleTypeService service.StoragePolicyRuleTypeService) *StoragePolicyRuleTypeHandler {
	return &StoragePolicyRuleTypeHandler{ruleTypeService: ruleTypeService}
}

// Create 创建存储策略规则类型
// @Summary 创建存储策略规则类型
// @Tags 存储策略
// @Accept json
// @Produce json
// @Param request body dto.CreateStoragePolicyRuleTypeRequest true "创建规则类型请求"
// @Success 200 {object} dto.StoragePolicyRuleTypeResponse
// @Router /api/v1/storage-policy-rule-types [post]
func (h *StoragePolicyRuleTypeHandler) Create(c *gin.Context) {
	var req dto.CreateStoragePolicyRuleTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.ruleTypeService.Create(&req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// Get 获取存储策略规则类型
// @Summary 获取存储策略规则类型
// @Tags 存储策略
// @Produce json
// @Param code path string true "规则类型代码"
// @Success 200 {object} dto.StoragePolicyRuleTypeResponse
// @Router /api/v1/storage-policy-rule-types/{code} [get]
func (h *StoragePolicyRuleTypeHandler) Get(c *gin.Context) {
	resp, err := h.ruleTypeService.Get(c.Param("code"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}
