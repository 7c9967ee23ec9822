package handler

import (
	"github.com/gin-gonic/gin"

	"data-catalog/internal/dto"
	"data-catalog/internal/service"
	"data-catalog/pkg/responses"
)

type PartitionKeyGroupHandler struct {
	groupService service.PartitionKeyGroupService
}

func NewPartitionKeyGroupHandler(groupService service.PartitionKeyGroupService) *PartitionKeyGroupHandler {
	return &PartitionKeyGroupHandler{groupService: groupService}
}

// Create 创建分区键组
// @Summary 创建分区键组
// @Tags 分区键组
// @Accept json
// @Produce json
// @Param request body dto.CreatePartitionKeyGroupRequest true "创建分区键组请求"
// @Success 200 {object} dto.PartitionKeyGroupResponse
// @Router /api/v1/partition-key-groups [post]
func (h *PartitionKeyGroupHandler) Create(c *gin.Context) {
	var req dto.CreatePartitionKeyGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.groupService.Create(&req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// Get 获取分区键组
// @Summary 获取分区键组
// @Tags 分区键组
// @Produce json
// @Param name path string true "分区键组名称"
// @Success 200 {object} dto.PartitionKeyGroupResponse
// @Router /api/v1/partition-key-groups/{name} [get]
func (h *PartitionKeyGroupHandler) Get(c *gin.Context) {
	resp, err := h.groupService.Get(c.Param("name"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// Delete 删除分区键组及其预期分区值
// @Summary 删除分区键组
// @Tags 分区键组
// @Produce json
// @Param name path string true "分区键组名称"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/partition-key-groups/{name} [delete]
func (h *PartitionKeyGroupHandler) Delete(c *gin.Context) {
	if err := h.groupService.Delete(c.Param("name")); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "删除成功", nil)
}

// AddExpectedValues 添加预期分区值
// @Summary 添加预期分区值
// @Tags 分区键组
// @Accept json
// @Produce json
// @Param request body dto.ExpectedPartitionValuesRequest true "预期分区值"
// @Success 200 {object} dto.ExpectedPartitionValuesResponse
// @Router /api/v1/expected-partition-values [post]
func (h *PartitionKeyGroupHandler) AddExpectedValues(c *gin.Context) {
	var req dto.ExpectedPartitionValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.groupService.AddExpectedValues(&req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// ListExpectedValues 查询预期分区值
// @Summary 查询预期分区值
// @Tags 分区键组
// @Produce json
// @Param name path string true "分区键组名称"
// @Param start_expected_partition_value query string false "起始值(含)"
// @Param end_expected_partition_value query string false "结束值(含)"
// @Success 200 {object} dto.ExpectedPartitionValuesResponse
// @Router /api/v1/partition-key-groups/{name}/expected-partition-values [get]
func (h *PartitionKeyGroupHandler) ListExpectedValues(c *gin.Context) {
	var req dto.ListExpectedPartitionValuesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.groupService.ListExpectedValues(c.Param("name"), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// DeleteExpectedValues 删除预期分区值, 任一值不存在时整体失败
// @Summary 删除预期分区值
// @Tags 分区键组
// @Accept json
// @Produce json
// @Param request body dto.ExpectedPartitionValuesRequest true "预期分区值"
// @Success 200 {object} dto.ExpectedPartitionValuesResponse
// @Router /api/v1/expected-partition-values/delete [post]
func (h *PartitionKeyGroupHandler) DeleteExpectedValues(c *gin.Context) {
	var req dto.ExpectedPartitionValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.groupService.DeleteExpectedValues(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}
