package service

import (
	"github.com/samber/lo"

	"data-catalog/internal/dto"
	"data-catalog/internal/model"
	"data-catalog/internal/repository"
	pkgErrors "data-catalog/pkg/errors"
)

type PartitionKeyGroupService interface {
	Create(req *dto.CreatePartitionKeyGroupRequest, user string) (*dto.PartitionKeyGroupResponse, error)
	Get(name string) (*dto.PartitionKeyGroupResponse, error)
	Delete(name string) error
	AddExpectedValues(req *dto.ExpectedPartitionValuesRequest, user string) (*dto.ExpectedPartitionValuesResponse, error)
	ListExpectedValues(name string, req *dto.ListExpectedPartitionValuesRequest) (*dto.ExpectedPartitionValuesResponse, error)
	DeleteExpectedValues(req *dto.ExpectedPartitionValuesRequest) (*dto.ExpectedPartitionValuesResponse, error)
}

type partitionKeyGroupService struct {
	repo       repository.PartitionKeyGroupRepository
	formatRepo repository.FormatRepository
}

func NewPartitionKeyGroupService(repo repository.PartitionKeyGroupRepository, formatRepo repository.FormatRepository) PartitionKeyGroupService {
	return &partitionKeyGroupService{repo: repo, formatRepo: formatRepo}
}

func (s *partitionKeyGroupService) Create(req *dto.CreatePartitionKeyGroupRequest, user string) (*dto.PartitionKeyGroupResponse, error) {
	existing, err := s.repo.FindByName(req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgErrors.AlreadyExists("Unable to create partition key group with name \"%s\" because it already exists.", req.Name)
	}

	group := &model.PartitionKeyGroup{Name: req.Name}
	group.Stamp(operator(user))
	if err := s.repo.Create(group); err != nil {
		return nil, err
	}
	return s.toResponse(group), nil
}

func (s *partitionKeyGroupService) Get(name string) (*dto.PartitionKeyGroupResponse, error) {
	group, err := s.mustFind(name)
	if err != nil {
		return nil, err
	}
	return s.toResponse(group), nil
}

// Delete 仍被业务对象格式引用时拒绝删除
func (s *partitionKeyGroupService) Delete(name string) error {
	group, err := s.mustFind(name)
	if err != nil {
		return err
	}

	count, err := s.formatRepo.CountByPartitionKeyGroup(group.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return pkgErrors.AlreadyExists("Can not delete \"%s\" partition key group since it is being used by a business object format.", group.Name)
	}
	return s.repo.Delete(group)
}

func (s *partitionKeyGroupService) AddExpectedValues(req *dto.ExpectedPartitionValuesRequest, user string) (*dto.ExpectedPartitionValuesResponse, error) {
	group, err := s.mustFind(req.PartitionKeyGroup)
	if err != nil {
		return nil, err
	}

	values := lo.Uniq(req.ExpectedPartitionValues)
	if err := s.repo.AddExpectedValues(group.Name, values, operator(user)); err != nil {
		return nil, err
	}
	return &dto.ExpectedPartitionValuesResponse{
		PartitionKeyGroup:       group.Name,
		ExpectedPartitionValues: values,
	}, nil
}

// ListExpectedValues 起止值均为闭区间, 可单独指定
func (s *partitionKeyGroupService) ListExpectedValues(name string, req *dto.ListExpectedPartitionValuesRequest) (*dto.ExpectedPartitionValuesResponse, error) {
	if req.Start != "" && req.End != "" && req.Start > req.End {
		return nil, pkgErrors.Newf(pkgErrors.CodeBadRequest,
			"The start expected partition value \"%s\" cannot be greater than the end expected partition value \"%s\".", req.Start, req.End)
	}

	group, err := s.mustFind(name)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListExpectedValues(group.Name, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	return &dto.ExpectedPartitionValuesResponse{
		PartitionKeyGroup: group.Name,
		ExpectedPartitionValues: lo.Map(rows, func(row *model.ExpectedPartitionValue, _ int) string {
			return row.Value
		}),
	}, nil
}

// DeleteExpectedValues 任一值不存在时整体失败
func (s *partitionKeyGroupService) DeleteExpectedValues(req *dto.ExpectedPartitionValuesRequest) (*dto.ExpectedPartitionValuesResponse, error) {
	group, err := s.mustFind(req.PartitionKeyGroup)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListExpectedValues(group.Name, "", "")
	if err != nil {
		return nil, err
	}
	present := lo.SliceToMap(existing, func(row *model.ExpectedPartitionValue) (string, bool) {
		return row.Value, true
	})
	values := lo.Filter(lo.Uniq(req.ExpectedPartitionValues), func(v string, _ int) bool {
		return present[v]
	})
	if len(values) < len(lo.Uniq(req.ExpectedPartitionValues)) {
		missing, _ := lo.Difference(req.ExpectedPartitionValues, values)
		return nil, pkgErrors.NotFound("Expected partition value \"%s\" doesn't exist in \"%s\" partition key group.", missing[0], group.Name)
	}

	if _, err := s.repo.DeleteExpectedValues(group.Name, values); err != nil {
		return nil, err
	}
	return &dto.ExpectedPartitionValuesResponse{
		PartitionKeyGroup:       group.Name,
		ExpectedPartitionValues: values,
	}, nil
}

func (s *partitionKeyGroupService) mustFind(name string) (*model.PartitionKeyGroup, error) {
	group, err := s.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, pkgErrors.NotFound("Partition key group \"%s\" doesn't exist.", name)
	}
	return group, nil
}

func (s *partitionKeyGroupService) toResponse(group *model.PartitionKeyGroup) *dto.PartitionKeyGroupResponse {
	return &dto.PartitionKeyGroupResponse{
		Name:      group.Name,
		CreatedBy: group.CreatedBy,
		CreatedAt: formatTime(group.CreatedAt),
	}
}
