package repository

import (
	"data-catalog/internal/model"
	pkgErrors "data-catalog/pkg/errors"

	"gorm.io/gorm"
)

type EmrClusterDefinitionRepository interface {
	Create(def *model.EmrClusterDefinition) error
	Update(def *model.EmrClusterDefinition) error
	Delete(def *model.EmrClusterDefinition) error
	FindByKey(namespace, name string) (*model.EmrClusterDefinition, error)
	ListByNamespace(namespace string) ([]*model.EmrClusterDefinition, error)
}

type emrClusterDefinitionRepository struct {
	db *gorm.DB
}

func NewEmrClusterDefinitionRepository(db *gorm.DB) EmrClusterDefinitionRepository {
	return &emrClusterDefinitionRepository{db: db}
}

func (r *emrClusterDefinitionRepository) Create(def *model.EmrClusterDefinition) error {
	if err := r.db.Create(def).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建EMR集群定义失败", err)
	}
	return nil
}

func (r *emrClusterDefinitionRepository) Update(def *model.EmrClusterDefinition) error {
	if err := r.db.Save(def).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新EMR集群定义失败", err)
	}
	return nil
}

func (r *emrClusterDefinitionRepository) Delete(def *model.EmrClusterDefinition) error {
	if err := r.db.Delete(def).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除EMR集群定义失败", err)
	}
	return nil
}

// FindByKey 大小写不敏感, 不存在返回 nil
func (r *emrClusterDefinitionRepository) FindByKey(namespace, name string) (*model.EmrClusterDefinition, error) {
	def, err := takeOne[model.EmrClusterDefinition](r.db.
		Where("UPPER(namespace) = UPPER(?) AND UPPER(name) = UPPER(?)", namespace, name))
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询EMR集群定义失败", err)
	}
	return def, nil
}

func (r *emrClusterDefinitionRepository) ListByNamespace(namespace string) ([]*model.EmrClusterDefinition, error) {
	var defs []*model.EmrClusterDefinition
	if err := r.db.Where("UPPER(namespace) = UPPER(?)", namespace).
		Order("name").
		Find(&defs).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询EMR集群定义列表失败", err)
	}
	return defs, nil
}

type EmrClusterCreationLogRepository interface {
	Create(log *model.EmrClusterCreationLog) error
	ListByDefinition(namespace, definitionName string, opts ...QueryOption) ([]*model.EmrClusterCreationLog, error)
}

type emrClusterCreationLogRepository struct {
	db *gorm.DB
}

func NewEmrClusterCreationLogRepository(db *gorm.DB) EmrClusterCreationLogRepository {
	return &emrClusterCreationLogRepository{db: db}
}

func (r *emrClusterCreationLogRepository) Create(log *model.EmrClusterCreationLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "记录EMR集群创建日志失败", err)
	}
	return nil
}

func (r *emrClusterCreationLogRepository) ListByDefinition(namespace, definitionName string, opts ...QueryOption) ([]*model.EmrClusterCreationLog, error) {
	var logs []*model.EmrClusterCreationLog
	query := applyOptions(r.db, opts).
		Where("UPPER(namespace) = UPPER(?) AND UPPER(definition_name) = UPPER(?)", namespace, definitionName)
	if err := query.Order("id DESC").Find(&logs).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询EMR集群创建日志失败", err)
	}
	return logs, nil
}
