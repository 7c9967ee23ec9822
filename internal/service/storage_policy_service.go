package service

import (
	"data-catalog/internal/dto"
	"data-catalog/internal/model"
	"data-catalog/internal/repository"
	pkgErrors "data-catalog/pkg/errors"
)

type StoragePolicyRuleTypeService interface {
	Create(req *dto.CreateStoragePolicyRuleTypeRequest, user string) (*dto.StoragePolicyRuleTypeResponse, error)
	Get(code string) (*dto.StoragePolicyRuleTypeResponse, error)
}

type storagePolicyRuleTypeService struct {
	repo repository.StoragePolicyRuleTypeRepository
}

func NewStoragePolicyRuleTypeService(repo repository.StoragePolicyRuleTypeRepository) StoragePolicyRuleTypeService {
	return &storagePolicyRuleTypeService{repo: repo}
}

func (s *storagePolicyRuleTypeService) Create(req *dto.CreateStoragePolicyRuleTypeRequest, user string) (*dto.StoragePolicyRuleTypeResponse, error) {
	existing, err := s.repo.FindByCode(req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgErrors.AlreadyExists("Storage policy rule type with code \"%s\" already exists.", req.Code)
	}

	ruleType := &model.StoragePolicyRuleType{Code: req.Code, Description: req.Description}
	ruleType.Stamp(operator(user))
	if err := s.repo.Create(ruleType); err != nil {
		return nil, err
	}
	return toRuleTypeResponse(ruleType), nil
}

func (s *storagePolicyRuleTypeService) Get(code string) (*dto.StoragePolicyRuleTypeResponse, error) {
	ruleType, err := s.repo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if ruleType == nil {
		return nil, pkgErrors.NotFound("Storage policy rule type with code \"%s\" doesn't exist.", code)
	}
	return toRuleTypeResponse(ruleType), nil
}

func toRuleTypeResponse(ruleType *model.StoragePolicyRuleType) *dto.StoragePolicyRuleTypeResponse {
	return &dto.StoragePolicyRuleTypeResponse{
		Code:        ruleType.Code,
		Description: ruleType.Description,
	}
}
