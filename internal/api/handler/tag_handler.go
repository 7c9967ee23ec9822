package handler

import (
	"github.com/gin-gonic/gin"

	"data-catalog/internal/dto"
	"data-catalog/internal/service"
	"data-catalog/pkg/responses"
)

type TagHandler struct {
	tagService service.TagService
}

func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// CreateTagType 创建标签类型
// @Summary 创建标签类型
// @Tags 标签
// @Accept json
// @Produce json
// @Param request body dto.CreateTagTypeRequest true "创建标签类型请求"
// @Success 200 {object} dto.TagTypeResponse
// @Router /api/v1/tag-types [post]
func (h *TagHandler) CreateTagType(c *gin.Context) {
	var req dto.CreateTagTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.tagService.CreateTagType(&req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// GetTagType 获取标签类型
// @Summary 获取标签类型
// @Tags 标签
// @Produce json
// @Param code path string true "标签类型代码"
// @Success 200 {object} dto.TagTypeResponse
// @Router /api/v1/tag-types/{code} [get]
func (h *TagHandler) GetTagType(c *gin.Context) {
	resp, err := h.tagService.GetTagType(c.Param("code"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// ListTagTypes 获取标签类型列表
// @Summary 获取标签类型列表
// @Tags 标签
// @Produce json
// @Success 200 {array} dto.TagTypeResponse
// @Router /api/v1/tag-types [get]
func (h *TagHandler) ListTagTypes(c *gin.Context) {
	resp, err := h.tagService.ListTagTypes()
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// CreateTag 创建标签
// @Summary 创建标签
// @Description 同一标签类型下显示名不区分大小写唯一
// @Tags 标签
// @Accept json
// @Produce json
// @Param request body dto.CreateTagRequest true "创建标签请求"
// @Success 200 {object} dto.TagResponse
// @Router /api/v1/tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.tagService.CreateTag(&req, currentUser(c))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// GetTag 获取标签
// @Summary 获取标签
// @Tags 标签
// @Produce json
// @Param code path string true "标签类型代码"
// @Param tagCode path string true "标签代码"
// @Success 200 {object} dto.TagResponse
// @Router /api/v1/tag-types/{code}/tags/{tagCode} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	resp, err := h.tagService.GetTag(dto.TagKey{TagTypeCode: c.Param("code"), TagCode: c.Param("tagCode")})
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}

// ListTags 获取标签类型下的标签
// @Summary 获取标签列表
// @Tags 标签
// @Produce json
// @Param code path string true "标签类型代码"
// @Success 200 {array} dto.TagResponse
// @Router /api/v1/tag-types/{code}/tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	resp, err := h.tagService.ListTags(c.Param("code"))
	if err != nil {
		responses.Error(c, err)
		return
	}
	responses.Success(c, resp)
}
