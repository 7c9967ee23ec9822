package service

import (
	"data-catalog/internal/dto"
	"data-catalog/internal/model"
	"data-catalog/internal/repository"
	pkgErrors "data-catalog/pkg/errors"
)

type TagService interface {
	CreateTagType(req *dto.CreateTagTypeRequest, user string) (*dto.TagTypeResponse, error)
	GetTagType(code string) (*dto.TagTypeResponse, error)
	ListTagTypes() ([]*dto.TagTypeResponse, error)
	CreateTag(req *dto.CreateTagRequest, user string) (*dto.TagResponse, error)
	GetTag(key dto.TagKey) (*dto.TagResponse, error)
	ListTags(tagTypeCode string) ([]*dto.TagResponse, error)
	AssertDisplayNameDoesNotExistForTag(tagTypeCode, displayName string) error
}

type tagService struct {
	tagTypeRepo repository.TagTypeRepository
	tagRepo     repository.TagRepository
}

func NewTagService(tagTypeRepo repository.TagTypeRepository, tagRepo repository.TagRepository) TagService {
	return &tagService{
		tagTypeRepo: tagTypeRepo,
		tagRepo:     tagRepo,
	}
}

func (s *tagService) CreateTagType(req *dto.CreateTagTypeRequest, user string) (*dto.TagTypeResponse, error) {
	existing, err := s.tagTypeRepo.FindByCode(req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgErrors.AlreadyExists("Unable to create tag type with code \"%s\" because it already exists.", req.Code)
	}

	existing, err = s.tagTypeRepo.FindByDisplayName(req.DisplayName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgErrors.AlreadyExists("Display name \"%s\" already exists for tag type \"%s\".", req.DisplayName, existing.Code)
	}

	tagType := &model.TagType{Code: req.Code, DisplayName: req.DisplayName, OrderNumber: req.OrderNumber}
	tagType.Stamp(operator(user))
	if err := s.tagTypeRepo.Create(tagType); err != nil {
		return nil, err
	}
	return toTagTypeResponse(tagType), nil
}

func (s *tagService) GetTagType(code string) (*dto.TagTypeResponse, error) {
	tagType, err := s.getTagTypeEntity(code)
	if err != nil {
		return nil, err
	}
	return toTagTypeResponse(tagType), nil
}

func (s *tagService) ListTagTypes() ([]*dto.TagTypeResponse, error) {
	tagTypes, err := s.tagTypeRepo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.TagTypeResponse, len(tagTypes))
	for i, tagType := range tagTypes {
		responses[i] = toTagTypeResponse(tagType)
	}
	return responses, nil
}

// CreateTag 标签代码和显示名在同一标签类型下都不能重复
func (s *tagService) CreateTag(req *dto.CreateTagRequest, user string) (*dto.TagResponse, error) {
	tagType, err := s.getTagTypeEntity(req.TagTypeCode)
	if err != nil {
		return nil, err
	}

	existing, err := s.tagRepo.FindByKey(tagType.Code, req.TagCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgErrors.AlreadyExists(
			"Unable to create tag with tag type code \"%s\" and tag code \"%s\" because it already exists.", req.TagTypeCode, req.TagCode)
	}
	if err := s.AssertDisplayNameDoesNotExistForTag(tagType.Code, req.DisplayName); err != nil {
		return nil, err
	}

	tag := &model.Tag{
		TagTypeCode: tagType.Code,
		TagCode:     req.TagCode,
		DisplayName: req.DisplayName,
		Description: req.Description,
	}
	tag.Stamp(operator(user))
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return toTagResponse(tag), nil
}

func (s *tagService) GetTag(key dto.TagKey) (*dto.TagResponse, error) {
	tag, err := s.tagRepo.FindByKey(key.TagTypeCode, key.TagCode)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, pkgErrors.NotFound("Tag with code \"%s\" doesn't exist for tag type \"%s\".", key.TagCode, key.TagTypeCode)
	}
	return toTagResponse(tag), nil
}

func (s *tagService) ListTags(tagTypeCode string) ([]*dto.TagResponse, error) {
	tagType, err := s.getTagTypeEntity(tagTypeCode)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.ListByType(tagType.Code)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = toTagResponse(tag)
	}
	return responses, nil
}

// AssertDisplayNameDoesNotExistForTag 显示名比较大小写不敏感
func (s *tagService) AssertDisplayNameDoesNotExistForTag(tagTypeCode, displayName string) error {
	tag, err := s.tagRepo.FindByDisplayName(tagTypeCode, displayName)
	if err != nil {
		return err
	}
	if tag != nil {
		return pkgErrors.AlreadyExists("Display name \"%s\" already exists for a tag with tag type \"%s\" and tag code \"%s\".",
			displayName, tag.TagTypeCode, tag.TagCode)
	}
	return nil
}

func (s *tagService) getTagTypeEntity(code string) (*model.TagType, error) {
	tagType, err := s.tagTypeRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if tagType == nil {
		return nil, pkgErrors.NotFound("Tag type with code \"%s\" doesn't exist.", code)
	}
	return tagType, nil
}

func toTagTypeResponse(tagType *model.TagType) *dto.TagTypeResponse {
	return &dto.TagTypeResponse{
		Code:        tagType.Code,
		DisplayName: tagType.DisplayName,
		OrderNumber: tagType.OrderNumber,
	}
}

func toTagResponse(tag *model.Tag) *dto.TagResponse {
	return &dto.TagResponse{
		TagTypeCode: tag.TagTypeCode,
		TagCode:     tag.TagCode,
		DisplayName: tag.DisplayName,
		Description: tag.Description,
		CreatedBy:   tag.CreatedBy,
		CreatedAt:   formatTime(tag.CreatedAt),
	}
}
