package handler

import (
	"github.com/gin-gonic/gin"

	"data-catalog/internal/dto"
	"data-catalog/internal/service"
	"data-catalog/pkg/responses"
)

type BusinessObjectDataHandler struct {
	dataService service.BusinessObjectDataService
}

func NewBusinessObjectDataHandler(dataService service.BusinessObjectDataService) *BusinessObjectDataHandler {
	return &BusinessObjectDataHandler{dataService: dataService}
}

// Register 登记业务对象数据
// @Summary 登记业务对象数据
// @Description 同一分区重复登记时生成新版本
// @Tags 业务对象数据
// @Accept json
// @Produce json
// @Param request body dto.RegisterDataRequest true "登记请求"
// @Success 200 {object} dto.DataResponse
// @Router /api/v1/business-object-data [post]
func (h *BusinessObjectDataHandler) Register(c *gin.Context) {
	var req dto.RegisterDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.dataService.Register(&req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// Get 获取业务对象数据
// @Summary 获取业务对象数据
// @Tags 业务对象数据
// @Produce json
// @Param namespace query string true "命名空间"
// @Param business_object_definition_name query string true "业务对象定义"
// @Param business_object_format_usage query string true "用途"
// @Param business_object_format_file_type query string true "文件类型"
// @Param business_object_format_version query int false "格式版本"
// @Param partition_value query string true "主分区值"
// @Param sub_partition_values query []string false "子分区值"
// @Param business_object_data_version query int false "数据版本, 默认最新"
// @Success 200 {object} dto.DataResponse
// @Router /api/v1/business-object-data [get]
func (h *BusinessObjectDataHandler) Get(c *gin.Context) {
	var req dto.DataKey
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.dataService.Get(&req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// UpdateStatus 更新业务对象数据状态
// @Summary 更新业务对象数据状态
// @Tags 业务对象数据
// @Accept json
// @Produce json
// @Param request body dto.UpdateDataStatusRequest true "状态更新请求"
// @Success 200 {object} dto.DataResponse
// @Router /api/v1/business-object-data/status [put]
func (h *BusinessObjectDataHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateDataStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.dataService.UpdateStatus(&req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// CheckAvailability 检查分区数据可用性
// @Summary 检查分区数据可用性
// @Description 按分区值列表或范围展开后逐个判断是否有可用的已登记数据
// @Tags 业务对象数据
// @Accept json
// @Produce json
// @Param request body dto.AvailabilityRequest true "可用性检查请求"
// @Success 200 {object} dto.AvailabilityResponse
// @Router /api/v1/business-object-data/availability [post]
func (h *BusinessObjectDataHandler) CheckAvailability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.dataService.CheckAvailability(c.Request.Context(), &req)
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}
