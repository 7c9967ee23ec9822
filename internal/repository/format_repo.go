package repository

import (
	"database/sql"
	"errors"

	"data-catalog/internal/model"
	pkgErrors "data-catalog/pkg/errors"

	"gorm.io/gorm"
)

type FormatRepository interface {
	Create(format *model.BusinessObjectFormat) error
	FindByID(id int64) (*model.BusinessObjectFormat, error)
	FindByKey(key FormatKey, version *int) (*model.BusinessObjectFormat, error)
	MaxVersion(key FormatKey) (int, error)
	ClearLatest(key FormatKey) error
	CountByPartitionKeyGroup(group string) (int64, error)
}

type formatRepository struct {
	db *gorm.DB
}

func NewFormatRepository(db *gorm.DB) FormatRepository {
	return &formatRepository{db: db}
}

// Create 同时写入属性定义, 并发创建同一版本时返回冲突
func (r *formatRepository) Create(format *model.BusinessObjectFormat) error {
	if err := r.db.Create(format).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return pkgErrors.AlreadyExists("Business object format with %s and version %d already exists.",
				FormatKey{Namespace: format.Namespace, DefinitionName: format.DefinitionName, Usage: format.Usage, FileType: format.FileType}, format.Version)
		}
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建业务对象格式失败", err)
	}
	return nil
}

func (r *formatRepository) FindByID(id int64) (*model.BusinessObjectFormat, error) {
	var format model.BusinessObjectFormat
	if err := r.db.Preload("AttributeDefinitions").First(&format, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgErrors.ErrRecordNotFound
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询业务对象格式失败", err)
	}
	return &format, nil
}

// FindByKey version 为空时返回最新版本, 不存在返回 nil
func (r *formatRepository) FindByKey(key FormatKey, version *int) (*model.BusinessObjectFormat, error) {
	query := key.scope(r.db.Preload("AttributeDefinitions"))
	if version != nil {
		query = query.Where("version = ?", *version)
	} else {
		query = query.Where("latest = ?", true)
	}

	format, err := takeOne[model.BusinessObjectFormat](query)
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询业务对象格式失败", err)
	}
	return format, nil
}

// MaxVersion 不存在任何版本时返回 -1
func (r *formatRepository) MaxVersion(key FormatKey) (int, error) {
	var max sql.NullInt64
	if err := key.scope(r.db.Model(&model.BusinessObjectFormat{})).
		Select("MAX(version)").
		Scan(&max).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询业务对象格式版本失败", err)
	}
	if !max.Valid {
		return -1, nil
	}
	return int(max.Int64), nil
}

func (r *formatRepository) ClearLatest(key FormatKey) error {
	if err := key.scope(r.db.Model(&model.BusinessObjectFormat{})).
		Where("latest = ?", true).
		Update("latest", false).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新业务对象格式失败", err)
	}
	return nil
}

// CountByPartitionKeyGroup 统计引用分区键组的格式数, 大小写不敏感
func (r *formatRepository) CountByPartitionKeyGroup(group string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.BusinessObjectFormat{}).
		Where("UPPER(partition_key_group) = UPPER(?)", group).
		Count(&count).Error; err != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询业务对象格式失败", err)
	}
	return count, nil
}
