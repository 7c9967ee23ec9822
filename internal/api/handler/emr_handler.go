package handler

import (
	"github.com/gin-gonic/gin"

	"data-catalog/internal/core/clusterdef"
	"data-catalog/internal/dto"
	"data-catalog/internal/service"
	"data-catalog/pkg/responses"
)

type EmrHandler struct {
	definitionService service.EmrClusterDefinitionService
	clusterService    service.EmrClusterService
}

func NewEmrHandler(definitionService service.EmrClusterDefinitionService, clusterService service.EmrClusterService) *EmrHandler {
	return &EmrHandler{
		definitionService: definitionService,
		clusterService:    clusterService,
	}
}

// CreateDefinition 创建EMR集群定义
// @Summary 创建EMR集群定义
// @Tags EMR
// @Accept json
// @Produce json
// @Param request body dto.EmrClusterDefinitionRequest true "集群定义"
// @Success 200 {object} dto.EmrClusterDefinitionResponse
// @Router /api/v1/emr-cluster-definitions [post]
func (h *EmrHandler) CreateDefinition(c *gin.Context) {
	var req dto.EmrClusterDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.definitionService.Create(&req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// UpdateDefinition 更新EMR集群定义
// @Summary 更新EMR集群定义
// @Tags EMR
// @Accept json
// @Produce json
// @Param request body dto.EmrClusterDefinitionRequest true "集群定义"
// @Success 200 {object} dto.EmrClusterDefinitionResponse
// @Router /api/v1/emr-cluster-definitions [put]
func (h *EmrHandler) UpdateDefinition(c *gin.Context) {
	var req dto.EmrClusterDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.definitionService.Update(&req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// GetDefinition 获取EMR集群定义
// @Summary 获取EMR集群定义
// @Tags EMR
// @Produce json
// @Param namespace path string true "命名空间"
// @Param name path string true "定义名称"
// @Success 200 {object} dto.EmrClusterDefinitionResponse
// @Router /api/v1/emr-cluster-definitions/{namespace}/{name} [get]
func (h *EmrHandler) GetDefinition(c *gin.Context) {
	resp, err := h.definitionService.Get(c.Param("namespace"), c.Param("name"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// ListDefinitions 获取命名空间下的EMR集群定义
// @Summary 获取EMR集群定义列表
// @Tags EMR
// @Produce json
// @Param namespace path string true "命名空间"
// @Success 200 {array} dto.EmrClusterDefinitionResponse
// @Router /api/v1/emr-cluster-definitions/{namespace} [get]
func (h *EmrHandler) ListDefinitions(c *gin.Context) {
	resp, err := h.definitionService.List(c.Param("namespace"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// DeleteDefinition 删除EMR集群定义
// @Summary 删除EMR集群定义
// @Tags EMR
// @Produce json
// @Param namespace path string true "命名空间"
// @Param name path string true "定义名称"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/emr-cluster-definitions/{namespace}/{name} [delete]
func (h *EmrHandler) DeleteDefinition(c *gin.Context) {
	if err := h.definitionService.Delete(c.Param("namespace"), c.Param("name")); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "删除成功", nil)
}

// ValidateDefinition 只校验不保存
// @Summary 校验EMR集群定义
// @Tags EMR
// @Accept json
// @Produce json
// @Param request body clusterdef.ClusterDefinition true "集群定义"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/emr-cluster-definitions/validate [post]
func (h *EmrHandler) ValidateDefinition(c *gin.Context) {
	var def clusterdef.ClusterDefinition
	if err := c.ShouldBindJSON(&def); err != nil {
		bindError(c, err)
		return
	}

	if err := h.definitionService.Validate(&def); err != nil {
		responses.Error(c, err)
		return
	}
	responses.SuccessWithMessage(c, "校验通过", gin.H{"valid": true})
}

// ImportDefinition 以YAML导入集群定义, 已存在则覆盖
// @Summary 导入EMR集群定义(YAML)
// @Tags EMR
// @Accept application/x-yaml
// @Produce json
// @Param namespace path string true "命名空间"
// @Param name path string true "定义名称"
// @Success 200 {object} dto.EmrClusterDefinitionResponse
// @Router /api/v1/emr-cluster-definitions/{namespace}/{name}/yaml [put]
func (h *EmrHandler) ImportDefinition(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		responses.ErrorWithCode(c, 400, "读取请求体失败")
		return
	}
	if len(data) == 0 {
		responses.ErrorWithCode(c, 400, "请求体不能为空")
		return
	}

	resp, err := h.definitionService.ImportYAML(c.Param("namespace"), c.Param("name"), data, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// CreateCluster 按已保存的定义创建集群
// @Summary 创建EMR集群
// @Tags EMR
// @Accept json
// @Produce json
// @Param request body dto.CreateEmrClusterRequest true "创建集群请求"
// @Success 200 {object} dto.EmrClusterResponse
// @Router /api/v1/emr-clusters [post]
func (h *EmrHandler) CreateCluster(c *gin.Context) {
	var req dto.CreateEmrClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.clusterService.Create(c.Request.Context(), &req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// ListCreationLogs 集群创建记录
// @Summary 获取集群创建记录
// @Tags EMR
// @Produce json
// @Param namespace path string true "命名空间"
// @Param name path string true "定义名称"
// @Success 200 {array} dto.EmrClusterCreationLogResponse
// @Router /api/v1/emr-cluster-definitions/{namespace}/{name}/clusters [get]
func (h *EmrHandler) ListCreationLogs(c *gin.Context) {
	resp, err := h.clusterService.ListCreationLogs(c.Param("namespace"), c.Param("name"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}
