package repository

import (
	"data-catalog/internal/model"
	pkgErrors "data-catalog/pkg/errors"

	"gorm.io/gorm"
)

type StoragePolicyRuleTypeRepository interface {
	Create(ruleType *model.StoragePolicyRuleType) error
	FindByCode(code string) (*model.StoragePolicyRuleType, error)
}

type storagePolicyRuleTypeRepository struct {
	db *gorm.DB
}

func NewStoragePolicyRuleTypeRepository(db *gorm.DB) StoragePolicyRuleTypeRepository {
	return &storagePolicyRuleTypeRepository{db: db}
}

func (r *storagePolicyRuleTypeRepository) Create(ruleType *model.StoragePolicyRuleType) error {
	if err := r.db.Create(ruleType).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建存储策略规则类型失败", err)
	}
	return nil
}

// FindByCode 大小写不敏感, 不存在返回 nil
func (r *storagePolicyRuleTypeRepository) FindByCode(code string) (*model.StoragePolicyRuleType, error) {
	ruleType, err := takeOne[model.StoragePolicyRuleType](r.db.Where("UPPER(code) = UPPER(?)", code))
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询存储策略规则类型失败", err)
	}
	return ruleType, nil
}
