package repository

import (
	"data-catalog/internal/model"
	pkgErrors "data-catalog/pkg/errors"

	"gorm.io/gorm"
)

type StorageRepository interface {
	Create(storage *model.Storage) error
	FindByName(name string) (*model.Storage, error)
	List() ([]*model.Storage, error)
}

type storageRepository struct {
	db *gorm.DB
}

func NewStorageRepository(db *gorm.DB) StorageRepository {
	return &storageRepository{db: db}
}

func (r *storageRepository) Create(storage *model.Storage) error {
	if err := r.db.Create(storage).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建存储失败", err)
	}
	return nil
}

// FindByName 名称大小写不敏感, 不存在返回 nil
func (r *storageRepository) FindByName(name string) (*model.Storage, error) {
	storage, err := takeOne[model.Storage](r.db.Where("UPPER(name) = UPPER(?)", name))
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询存储失败", err)
	}
	return storage, nil
}

func (r *storageRepository) List() ([]*model.Storage, error) {
	var storages []*model.Storage
	if err := r.db.Order("name").Find(&storages).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询存储列表失败", err)
	}
	return storages, nil
}
