package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"data-catalog/internal/core/availability"
	"data-catalog/internal/dto"
	"data-catalog/internal/model"
	"data-catalog/internal/pkg/logger"
	"data-catalog/internal/repository"
	"data-catalog/pkg/constants"
	pkgErrors "data-catalog/pkg/errors"
)

type BusinessObjectDataService interface {
	Register(req *dto.RegisterDataRequest, user string) (*dto.DataResponse, error)
	Get(req *dto.DataKey) (*dto.DataResponse, error)
	UpdateStatus(req *dto.UpdateDataStatusRequest, user string) (*dto.DataResponse, error)
	CheckAvailability(ctx context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error)
}

type businessObjectDataService struct {
	db          *gorm.DB
	repo        repository.BusinessObjectDataRepository
	formatRepo  repository.FormatRepository
	storageRepo repository.StorageRepository
	reconciler  *availability.Reconciler
	outbox      *Outbox
}

func NewBusinessObjectDataService(
	db *gorm.DB,
	repo repository.BusinessObjectDataRepository,
	formatRepo repository.FormatRepository,
	storageRepo repository.StorageRepository,
	reconciler *availability.Reconciler,
	outbox *Outbox,
) BusinessObjectDataService {
	return &businessObjectDataService{
		db:          db,
		repo:        repo,
		formatRepo:  formatRepo,
		storageRepo: storageRepo,
		reconciler:  reconciler,
		outbox:      outbox,
	}
}

// Register 在同一事务内生成新版本, 写入存储单元并写发件箱
func (s *businessObjectDataService) Register(req *dto.RegisterDataRequest, user string) (*dto.DataResponse, error) {
	user = operator(user)

	format, err := resolveFormat(s.formatRepo, req.FormatKey, req.BusinessObjectFormatVersion)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(req.PartitionKey, format.PartitionKey) {
		return nil, partitionKeyMismatch(req.PartitionKey, format.PartitionKey)
	}

	status := req.Status
	if status == "" {
		status = constants.DataStatusValid
	}

	data := &model.BusinessObjectData{
		FormatID:       format.ID,
		PartitionValue: req.PartitionValue,
		Latest:         true,
		StatusCode:     status,
	}
	data.SetSubPartitionValues(req.SubPartitionValues)
	data.Stamp(user)

	seen := make(map[string]bool, len(req.StorageUnits))
	for _, unit := range req.StorageUnits {
		storage, err := s.storageRepo.FindByName(unit.StorageName)
		if err != nil {
			return nil, err
		}
		if storage == nil {
			return nil, pkgErrors.NotFound("Storage with name \"%s\" doesn't exist.", unit.StorageName)
		}
		if seen[storage.Name] {
			return nil, pkgErrors.Newf(pkgErrors.CodeBadRequest, "Duplicate storage name \"%s\" found.", unit.StorageName)
		}
		seen[storage.Name] = true

		storageUnit := model.StorageUnit{
			StorageName: storage.Name,
			Directory:   unit.Directory,
			Status:      constants.StorageUnitStatusEnabled,
		}
		storageUnit.Stamp(user)
		data.StorageUnits = append(data.StorageUnits, storageUnit)
	}

	key := repository.DataKey{
		FormatID:           format.ID,
		PartitionValue:     req.PartitionValue,
		SubPartitionValues: req.SubPartitionValues,
	}
	var resp *dto.DataResponse
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewBusinessObjectDataRepository(tx)
		max, err := repo.MaxVersion(key)
		if err != nil {
			return err
		}
		if err := repo.ClearLatest(key); err != nil {
			return err
		}
		data.Version = max + 1
		if err := repo.Create(data); err != nil {
			return err
		}

		resp = s.toResponse(data, format)
		return s.outbox.Enqueue(tx, constants.EventDataRegistered, user, resp)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("业务对象数据登记成功",
		zap.Int64("format_id", format.ID),
		zap.String("partition_value", data.PartitionValue),
		zap.Int("version", data.Version),
		zap.String("status", data.StatusCode))
	return resp, nil
}

func (s *businessObjectDataService) Get(req *dto.DataKey) (*dto.DataResponse, error) {
	format, data, err := s.find(req)
	if err != nil {
		return nil, err
	}
	return s.toResponse(data, format), nil
}

func (s *businessObjectDataService) UpdateStatus(req *dto.UpdateDataStatusRequest, user string) (*dto.DataResponse, error) {
	user = operator(user)

	format, data, err := s.find(&req.DataKey)
	if err != nil {
		return nil, err
	}
	if data.StatusCode == req.Status {
		return s.toResponse(data, format), nil
	}

	oldStatus := data.StatusCode
	data.StatusCode = req.Status
	data.UpdatedBy = user
	resp := s.toResponse(data, format)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewBusinessObjectDataRepository(tx).UpdateStatus(data.ID, req.Status, user); err != nil {
			return err
		}
		return s.outbox.Enqueue(tx, constants.EventDataStatusChanged, user, map[string]interface{}{
			"business_object_data": resp,
			"old_status":           oldStatus,
			"new_status":           req.Status,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info("业务对象数据状态已更新",
		zap.Int64("id", data.ID),
		zap.String("old_status", oldStatus),
		zap.String("new_status", req.Status))
	return resp, nil
}

// CheckAvailability 校验过滤条件后交给 Reconciler 分类
func (s *businessObjectDataService) CheckAvailability(ctx context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	format, err := resolveFormat(s.formatRepo, req.FormatKey, req.BusinessObjectFormatVersion)
	if err != nil {
		return nil, err
	}

	filters := append([]dto.PartitionValueFilter{}, req.PartitionValueFilters...)
	if req.PartitionValueFilter != nil {
		filters = append(filters, *req.PartitionValueFilter)
	}
	if err := validateFilters(filters, format); err != nil {
		return nil, err
	}

	storageNames := make([]string, 0, len(req.StorageNames))
	for _, name := range lo.Uniq(req.StorageNames) {
		storage, err := s.storageRepo.FindByName(name)
		if err != nil {
			return nil, err
		}
		if storage == nil {
			return nil, pkgErrors.NotFound("Storage with name \"%s\" doesn't exist.", name)
		}
		storageNames = append(storageNames, storage.Name)
	}

	checkReq := &availability.Request{
		Format: availability.FormatRef{
			ID:                format.ID,
			Version:           format.Version,
			PartitionKey:      format.PartitionKey,
			PartitionKeyGroup: lo.FromPtr(format.PartitionKeyGroup),
		},
		Filters:            lo.Map(req.PartitionValueFilters, toAvailabilityFilter),
		SubPartitionValues: req.SubPartitionValues,
		DataVersion:        req.BusinessObjectDataVersion,
		StorageNames:       storageNames,
	}
	if req.PartitionValueFilter != nil {
		standalone := toAvailabilityFilter(*req.PartitionValueFilter, 0)
		checkReq.Filter = &standalone
	}

	result, err := s.reconciler.Check(ctx, checkReq)
	if err != nil {
		logger.Warn("可用性检查失败", zap.Int64("format_id", format.ID), zap.Error(err))
		return nil, translateError(err)
	}

	return &dto.AvailabilityResponse{
		Namespace:                    format.Namespace,
		BusinessObjectDefinitionName: format.DefinitionName,
		BusinessObjectFormatUsage:    format.Usage,
		BusinessObjectFormatFileType: format.FileType,
		BusinessObjectFormatVersion:  format.Version,
		PartitionValueFilters:        filters,
		SubPartitionValues:           req.SubPartitionValues,
		BusinessObjectDataVersion:    req.BusinessObjectDataVersion,
		StorageNames:                 storageNames,
		AvailableStatuses:            result.Available,
		NotAvailableStatuses:         result.NotAvailable,
	}, nil
}

// validateFilters 每个过滤条件值列表与范围二选一, 分区键需与格式一致
func validateFilters(filters []dto.PartitionValueFilter, format *model.BusinessObjectFormat) error {
	if len(filters) == 0 {
		return pkgErrors.New(pkgErrors.CodeBadRequest, "At least one partition value filter must be specified.")
	}

	for _, f := range filters {
		hasList := len(f.PartitionValues) > 0
		hasRange := f.PartitionValueRange != nil
		if hasList == hasRange {
			return pkgErrors.New(pkgErrors.CodeBadRequest,
				"Exactly one instance of partition values or partition value range must be specified.")
		}
		if !strings.EqualFold(f.PartitionKey, format.PartitionKey) {
			return partitionKeyMismatch(f.PartitionKey, format.PartitionKey)
		}
		for _, v := range f.PartitionValues {
			if strings.TrimSpace(v) == "" {
				return pkgErrors.New(pkgErrors.CodeBadRequest, "A partition value must be specified.")
			}
		}

		if hasRange {
			if lo.FromPtr(format.PartitionKeyGroup) == "" {
				return pkgErrors.Newf(pkgErrors.CodeBadRequest,
					"A partition key group, which is required to use partition value ranges, is not specified for the business object format with partition key \"%s\".",
					format.PartitionKey)
			}
			start, end := f.PartitionValueRange.StartPartitionValue, f.PartitionValueRange.EndPartitionValue
			if start > end {
				return pkgErrors.Newf(pkgErrors.CodeBadRequest,
					"The start partition value \"%s\" cannot be greater than the end partition value \"%s\".", start, end)
			}
		}
	}
	return nil
}

func toAvailabilityFilter(f dto.PartitionValueFilter, _ int) availability.PartitionValueFilter {
	filter := availability.PartitionValueFilter{
		PartitionKey:    f.PartitionKey,
		PartitionValues: f.PartitionValues,
	}
	if f.PartitionValueRange != nil {
		filter.Range = &availability.PartitionValueRange{
			Start: f.PartitionValueRange.StartPartitionValue,
			End:   f.PartitionValueRange.EndPartitionValue,
		}
	}
	return filter
}

func partitionKeyMismatch(requested, actual string) error {
	return pkgErrors.Newf(pkgErrors.CodeBadRequest,
		"The partition key \"%s\" does not match the business object format partition key \"%s\".", requested, actual)
}

func (s *businessObjectDataService) find(key *dto.DataKey) (*model.BusinessObjectFormat, *model.BusinessObjectData, error) {
	format, err := resolveFormat(s.formatRepo, key.FormatKey, key.BusinessObjectFormatVersion)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.repo.FindByKey(repository.DataKey{
		FormatID:           format.ID,
		PartitionValue:     key.PartitionValue,
		SubPartitionValues: key.SubPartitionValues,
		Version:            key.BusinessObjectDataVersion,
	})
	if err != nil {
		return nil, nil, err
	}
	if data == nil {
		return nil, nil, pkgErrors.NotFound(
			"Business object data with partition value \"%s\", sub-partition values [%s] and data version \"%s\" doesn't exist for business object format version %d.",
			key.PartitionValue, strings.Join(key.SubPartitionValues, ","), versionText(key.BusinessObjectDataVersion), format.Version)
	}
	return format, data, nil
}

func versionText(version *int) string {
	if version == nil {
		return "latest"
	}
	return fmt.Sprintf("%d", *version)
}

func (s *businessObjectDataService) toResponse(data *model.BusinessObjectData, format *model.BusinessObjectFormat) *dto.DataResponse {
	return &dto.DataResponse{
		ID:                           data.ID,
		Namespace:                    format.Namespace,
		BusinessObjectDefinitionName: format.DefinitionName,
		BusinessObjectFormatUsage:    format.Usage,
		BusinessObjectFormatFileType: format.FileType,
		BusinessObjectFormatVersion:  format.Version,
		PartitionKey:                 format.PartitionKey,
		PartitionValue:               data.PartitionValue,
		SubPartitionValues:           data.SubPartitionValues(),
		Version:                      data.Version,
		Latest:                       data.Latest,
		Status:                       data.StatusCode,
		StorageUnits: lo.Map(data.StorageUnits, func(unit model.StorageUnit, _ int) dto.StorageUnitResponse {
			return dto.StorageUnitResponse{
				StorageName: unit.StorageName,
				Directory:   unit.Directory,
				Status:      unit.Status,
			}
		}),
		CreatedBy: data.CreatedBy,
		CreatedAt: formatTime(data.CreatedAt),
	}
}
