package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"data-catalog/internal/core/availability"
	"data-catalog/internal/model"
	"data-catalog/pkg/constants"
	pkgErrors "data-catalog/pkg/errors"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type BusinessObjectDataRepository interface {
	Create(data *model.BusinessObjectData) error
	FindByID(id int64) (*model.BusinessObjectData, error)
	FindByKey(key DataKey) (*model.BusinessObjectData, error)
	MaxVersion(key DataKey) (int, error)
	ClearLatest(key DataKey) error
	UpdateStatus(id int64, status, user string) error
	FindRegistrations(ctx context.Context, query availability.RegistrationQuery) ([]availability.Registration, error)
}

type businessObjectDataRepository struct {
	db *gorm.DB
}

func NewBusinessObjectDataRepository(db *gorm.DB) BusinessObjectDataRepository {
	return &businessObjectDataRepository{db: db}
}

// Create 同时写入存储单元, 并发登记同一版本时返回冲突
func (r *businessObjectDataRepository) Create(data *model.BusinessObjectData) error {
	if err := r.db.Omit("Format").Create(data).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkgErrors.AlreadyExists(
				"Unable to create business object data with partition value \"%s\", sub-partition values %q and version %d because it already exists.",
				data.PartitionValue, data.SubPartitionValues(), data.Version)
		}
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "登记业务对象数据失败", err)
	}
	return nil
}

func (r *businessObjectDataRepository) FindByID(id int64) (*model.BusinessObjectData, error) {
	var data model.BusinessObjectData
	if err := r.db.Preload("StorageUnits").First(&data, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询业务对象数据失败", err)
	}
	return &data, nil
}

// FindByKey 版本为空时返回最新版本, 不存在返回 nil
func (r *businessObjectDataRepository) FindByKey(key DataKey) (*model.BusinessObjectData, error) {
	query := key.scope(r.db.Preload("StorageUnits"))
	if key.Version != nil {
		query = query.Where("version = ?", *key.Version)
	} else {
		query = query.Where("latest = ?", true)
	}

	data, err := takeOne[model.BusinessObjectData](query)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询业务对象数据失败", err)
	}
	return data, nil
}

// MaxVersion 忽略 key.Version, 不存在任何版本时返回 -1
func (r *businessObjectDataRepository) MaxVersion(key DataKey) (int, error) {
	var max sql.NullInt64
	if err := key.scope(r.db.Model(&model.BusinessObjectData{})).
		Select("MAX(version)").
		Scan(&max).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询业务对象数据版本失败", err)
	}
	if !max.Valid {
		return -1, nil
	}
	return int(max.Int64), nil
}

func (r *businessObjectDataRepository) ClearLatest(key DataKey) error {
	if err := key.scope(r.db.Model(&model.BusinessObjectData{})).
		Where("latest = ?", true).
		Update("latest", false).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新业务对象数据失败", err)
	}
	return nil
}

func (r *businessObjectDataRepository) UpdateStatus(id int64, status, user string) error {
	if err := r.db.Model(&model.BusinessObjectData{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status_code": status, "updated_by": user}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新业务对象数据状态失败", err)
	}
	return nil
}

// FindRegistrations 子分区值按前缀匹配, 只带出启用的存储单元
func (r *businessObjectDataRepository) FindRegistrations(ctx context.Context, q availability.RegistrationQuery) ([]availability.Registration, error) {
	query := r.db.WithContext(ctx).
		Preload("StorageUnits", "status = ?", constants.StorageUnitStatusEnabled).
		Where("format_id = ? AND partition_value = ?", q.FormatID, q.PartitionValue)
	for i, v := range q.SubPartitionValues {
		query = query.Where(fmt.Sprintf("sub_partition_value_%d = ?", i+1), v)
	}
	if q.DataVersion != nil {
		query = query.Where("version = ?", *q.DataVersion)
	}

	var rows []*model.BusinessObjectData
	if err := query.Order("version DESC").Find(&rows).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询分区登记失败", err)
	}

	return lo.Map(rows, func(row *model.BusinessObjectData, _ int) availability.Registration {
		return availability.Registration{
			PartitionValue:     row.PartitionValue,
			SubPartitionValues: row.SubPartitionValues(),
			DataVersion:        row.Version,
			Status:             row.StatusCode,
			Storages: lo.Map(row.StorageUnits, func(unit model.StorageUnit, _ int) string {
				return unit.StorageName
			}),
		}
	}), nil
}
