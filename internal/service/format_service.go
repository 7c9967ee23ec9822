package service

import (
	"gorm.io/gorm"

	"data-catalog/internal/dto"
	"data-catalog/internal/model"
	"data-catalog/internal/repository"
	pkgErrors "data-catalog/pkg/errors"
)

type FormatService interface {
	Create(req *dto.CreateFormatRequest, user string) (*dto.FormatResponse, error)
	Get(req *dto.GetFormatRequest) (*dto.FormatResponse, error)
}

type formatService struct {
	db        *gorm.DB
	repo      repository.FormatRepository
	groupRepo repository.PartitionKeyGroupRepository
}

func NewFormatService(db *gorm.DB, repo repository.FormatRepository, groupRepo repository.PartitionKeyGroupRepository) FormatService {
	return &formatService{
		db:        db,
		repo:      repo,
		groupRepo: groupRepo,
	}
}

func toFormatKey(key dto.FormatKey) repository.FormatKey {
	return repository.FormatKey{
		Namespace:      key.Namespace,
		DefinitionName: key.BusinessObjectDefinitionName,
		Usage:          key.BusinessObjectFormatUsage,
		FileType:       key.BusinessObjectFormatFileType,
	}
}

// Create 新版本号为当前最大版本加一, 旧版本不再是最新版本
func (s *formatService) Create(req *dto.CreateFormatRequest, user string) (*dto.FormatResponse, error) {
	user = operator(user)

	if req.PartitionKeyGroup != nil {
		group, err := s.groupRepo.FindByName(*req.PartitionKeyGroup)
		if err != nil {
			return nil, err
		}
		if group == nil {
			return nil, pkgErrors.NotFound("Partition key group \"%s\" doesn't exist.", *req.PartitionKeyGroup)
		}
		req.PartitionKeyGroup = &group.Name
	}

	key := toFormatKey(req.FormatKey)
	format := &model.BusinessObjectFormat{
		Namespace:         req.Namespace,
		DefinitionName:    req.BusinessObjectDefinitionName,
		Usage:             req.BusinessObjectFormatUsage,
		FileType:          req.BusinessObjectFormatFileType,
		Latest:            true,
		PartitionKey:      req.PartitionKey,
		PartitionKeyGroup: req.PartitionKeyGroup,
		Description:       req.Description,
	}
	format.Stamp(user)

	seen := make(map[string]bool, len(req.AttributeDefinitions))
	for _, attr := range req.AttributeDefinitions {
		if seen[attr.Name] {
			return nil, pkgErrors.Newf(pkgErrors.CodeBadRequest,
				"Duplicate attribute definition name \"%s\" found.", attr.Name)
		}
		seen[attr.Name] = true

		def := model.BusinessObjectDataAttributeDefinition{Name: attr.Name, Publish: attr.Publish}
		def.Stamp(user)
		format.AttributeDefinitions = append(format.AttributeDefinitions, def)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewFormatRepository(tx)
		max, err := repo.MaxVersion(key)
		if err != nil {
			return err
		}
		if err := repo.ClearLatest(key); err != nil {
			return err
		}
		format.Version = max + 1
		return repo.Create(format)
	})
	if err != nil {
		return nil, err
	}
	return s.toResponse(format), nil
}

func (s *formatService) Get(req *dto.GetFormatRequest) (*dto.FormatResponse, error) {
	format, err := resolveFormat(s.repo, req.FormatKey, req.BusinessObjectFormatVersion)
	if err != nil {
		return nil, err
	}
	return s.toResponse(format), nil
}

// resolveFormat 不指定版本时取最新版本, 不存在返回 NotFound
func resolveFormat(repo repository.FormatRepository, key dto.FormatKey, version *int) (*model.BusinessObjectFormat, error) {
	format, err := repo.FindByKey(toFormatKey(key), version)
	if err != nil {
		return nil, err
	}
	if format == nil {
		return nil, pkgErrors.NotFound(
			"Business object format with namespace \"%s\", business object definition name \"%s\", format usage \"%s\", format file type \"%s\", and format version \"%s\" doesn't exist.",
			key.Namespace, key.BusinessObjectDefinitionName, key.BusinessObjectFormatUsage, key.BusinessObjectFormatFileType, versionText(version))
	}
	return format, nil
}

func (s *formatService) toResponse(format *model.BusinessObjectFormat) *dto.FormatResponse {
	attrs := make([]dto.AttributeDefinition, len(format.AttributeDefinitions))
	for i, attr := range format.AttributeDefinitions {
		attrs[i] = dto.AttributeDefinition{Name: attr.Name, Publish: attr.Publish}
	}

	return &dto.FormatResponse{
		ID:                           format.ID,
		Namespace:                    format.Namespace,
		BusinessObjectDefinitionName: format.DefinitionName,
		BusinessObjectFormatUsage:    format.Usage,
		BusinessObjectFormatFileType: format.FileType,
		BusinessObjectFormatVersion:  format.Version,
		Latest:                       format.Latest,
		PartitionKey:                 format.PartitionKey,
		PartitionKeyGroup:            format.PartitionKeyGroup,
		Description:                  format.Description,
		AttributeDefinitions:         attrs,
	}
}
