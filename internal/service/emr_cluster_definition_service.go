package service

import (
	"encoding/json"

	"gorm.io/datatypes"

	"data-catalog/internal/core/clusterdef"
	"data-catalog/internal/dto"
	"data-catalog/internal/model"
	"data-catalog/internal/repository"
	pkgErrors "data-catalog/pkg/errors"
)

type EmrClusterDefinitionService interface {
	Create(req *dto.EmrClusterDefinitionRequest, user string) (*dto.EmrClusterDefinitionResponse, error)
	Update(req *dto.EmrClusterDefinitionRequest, user string) (*dto.EmrClusterDefinitionResponse, error)
	Get(namespace, name string) (*dto.EmrClusterDefinitionResponse, error)
	List(namespace string) ([]*dto.EmrClusterDefinitionResponse, error)
	Delete(namespace, name string) error
	Validate(def *clusterdef.ClusterDefinition) error
	ImportYAML(namespace, name string, data []byte, user string) (*dto.EmrClusterDefinitionResponse, error)
}

type emrClusterDefinitionService struct {
	repo      repository.EmrClusterDefinitionRepository
	validator *clusterdef.Validator
}

func NewEmrClusterDefinitionService(repo repository.EmrClusterDefinitionRepository, validator *clusterdef.Validator) EmrClusterDefinitionService {
	return &emrClusterDefinitionService{
		repo:      repo,
		validator: validator,
	}
}

func (s *emrClusterDefinitionService) Create(req *dto.EmrClusterDefinitionRequest, user string) (*dto.EmrClusterDefinitionResponse, error) {
	if err := s.Validate(req.Definition); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByKey(req.Namespace, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgErrors.AlreadyExists(
			"Unable to create EMR cluster definition with name \"%s\" for namespace \"%s\" because it already exists.", req.Name, req.Namespace)
	}

	configuration, err := encodeDefinition(req.Definition)
	if err != nil {
		return nil, err
	}
	entity := &model.EmrClusterDefinition{
		Namespace:     req.Namespace,
		Name:          req.Name,
		Configuration: configuration,
	}
	entity.Stamp(operator(user))
	if err := s.repo.Create(entity); err != nil {
		return nil, err
	}
	return toDefinitionResponse(entity, req.Definition), nil
}

func (s *emrClusterDefinitionService) Update(req *dto.EmrClusterDefinitionRequest, user string) (*dto.EmrClusterDefinitionResponse, error) {
	entity, err := s.find(req.Namespace, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(req.Definition); err != nil {
		return nil, err
	}

	configuration, err := encodeDefinition(req.Definition)
	if err != nil {
		return nil, err
	}
	entity.Configuration = configuration
	entity.Stamp(operator(user))
	if err := s.repo.Update(entity); err != nil {
		return nil, err
	}
	return toDefinitionResponse(entity, req.Definition), nil
}

func (s *emrClusterDefinitionService) Get(namespace, name string) (*dto.EmrClusterDefinitionResponse, error) {
	entity, err := s.find(namespace, name)
	if err != nil {
		return nil, err
	}
	def, err := decodeDefinition(entity)
	if err != nil {
		return nil, err
	}
	return toDefinitionResponse(entity, def), nil
}

func (s *emrClusterDefinitionService) List(namespace string) ([]*dto.EmrClusterDefinitionResponse, error) {
	entities, err := s.repo.ListByNamespace(namespace)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.EmrClusterDefinitionResponse, 0, len(entities))
	for _, entity := range entities {
		def, err := decodeDefinition(entity)
		if err != nil {
			return nil, err
		}
		responses = append(responses, toDefinitionResponse(entity, def))
	}
	return responses, nil
}

func (s *emrClusterDefinitionService) Delete(namespace, name string) error {
	entity, err := s.find(namespace, name)
	if err != nil {
		return err
	}
	return s.repo.Delete(entity)
}

// Validate 不落库, 只做校验
func (s *emrClusterDefinitionService) Validate(def *clusterdef.ClusterDefinition) error {
	return translateError(s.validator.Validate(def))
}

// ImportYAML 定义不存在时创建, 存在时覆盖
func (s *emrClusterDefinitionService) ImportYAML(namespace, name string, data []byte, user string) (*dto.EmrClusterDefinitionResponse, error) {
	def, err := clusterdef.ParseYAML(data)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeBadRequest, "EMR集群定义格式错误", err)
	}

	req := &dto.EmrClusterDefinitionRequest{Namespace: namespace, Name: name, Definition: def}
	existing, err := s.repo.FindByKey(namespace, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.Update(req, user)
	}
	return s.Create(req, user)
}

func (s *emrClusterDefinitionService) find(namespace, name string) (*model.EmrClusterDefinition, error) {
	entity, err := s.repo.FindByKey(namespace, name)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, pkgErrors.NotFound("EMR cluster definition with name \"%s\" doesn't exist for namespace \"%s\".", name, namespace)
	}
	return entity, nil
}

func encodeDefinition(def *clusterdef.ClusterDefinition) (datatypes.JSON, error) {
	data, err := json.Marshal(def)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "序列化EMR集群定义失败", err)
	}
	return datatypes.JSON(data), nil
}

func decodeDefinition(entity *model.EmrClusterDefinition) (*clusterdef.ClusterDefinition, error) {
	def, err := clusterdef.ParseJSON(entity.Configuration)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, "解析已保存的EMR集群定义失败", err)
	}
	return def, nil
}

func toDefinitionResponse(entity *model.EmrClusterDefinition, def *clusterdef.ClusterDefinition) *dto.EmrClusterDefinitionResponse {
	return &dto.EmrClusterDefinitionResponse{
		ID:         entity.ID,
		Namespace:  entity.Namespace,
		Name:       entity.Name,
		Definition: def,
		UpdatedBy:  entity.UpdatedBy,
		UpdatedAt:  formatTime(entity.UpdatedAt),
	}
}
