package repository

import (
	"context"

	"data-catalog/internal/model"
	pkgErrors "data-catalog/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PartitionKeyGroupRepository interface {
	Create(group *model.PartitionKeyGroup) error
	FindByName(name string) (*model.PartitionKeyGroup, error)
	Delete(group *model.PartitionKeyGroup) error
	AddExpectedValues(groupName string, values []string, user string) error
	ListExpectedValues(groupName, start, end string) ([]*model.ExpectedPartitionValue, error)
	DeleteExpectedValues(groupName string, values []string) (int64, error)
	ExpectedPartitionValues(ctx context.Context, groupName string) ([]string, error)
}

type partitionKeyGroupRepository struct {
	db *gorm.DB
}

func NewPartitionKeyGroupRepository(db *gorm.DB) PartitionKeyGroupRepository {
	return &partitionKeyGroupRepository{db: db}
}

func (r *partitionKeyGroupRepository) Create(group *model.PartitionKeyGroup) error {
	if err := r.db.Create(group).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建分区键组失败", err)
	}
	return nil
}

func (r *partitionKeyGroupRepository) FindByName(name string) (*model.PartitionKeyGroup, error) {
	group, err := takeOne[model.PartitionKeyGroup](r.db.Where("UPPER(name) = UPPER(?)", name))
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询分区键组失败", err)
	}
	return group, nil
}

// Delete 同时删除组内的全部预期分区值
func (r *partitionKeyGroupRepository) Delete(group *model.PartitionKeyGroup) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_name = ?", group.Name).Delete(&model.ExpectedPartitionValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(group).Error
	})
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除分区键组失败", err)
	}
	return nil
}

// AddExpectedValues 已存在的值忽略
func (r *partitionKeyGroupRepository) AddExpectedValues(groupName string, values []string, user string) error {
	if len(values) == 0 {
		return nil
	}
	rows := make([]*model.ExpectedPartitionValue, 0, len(values))
	for _, v := range values {
		row := &model.ExpectedPartitionValue{GroupName: groupName, Value: v}
		row.Stamp(user)
		rows = append(rows, row)
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "添加预期分区值失败", err)
	}
	return nil
}

// ListExpectedValues start/end 为空表示不限制
func (r *partitionKeyGroupRepository) ListExpectedValues(groupName, start, end string) ([]*model.ExpectedPartitionValue, error) {
	query := r.db.Where("group_name = ?", groupName)
	if start != "" {
		query = query.Where("value >= ?", start)
	}
	if end != "" {
		query = query.Where("value <= ?", end)
	}

	var values []*model.ExpectedPartitionValue
	if err := query.Order("value").Find(&values).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询预期分区值失败", err)
	}
	return values, nil
}

func (r *partitionKeyGroupRepository) DeleteExpectedValues(groupName string, values []string) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}
	result := r.db.Where("group_name = ? AND value IN ?", groupName, values).Delete(&model.ExpectedPartitionValue{})
	if result.Error != nil {
		return 0, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除预期分区值失败", result.Error)
	}
	return result.RowsAffected, nil
}

// ExpectedPartitionValues 按值排序返回组内全部预期分区值
func (r *partitionKeyGroupRepository) ExpectedPartitionValues(ctx context.Context, groupName string) ([]string, error) {
	var values []string
	if err := r.db.WithContext(ctx).
		Model(&model.ExpectedPartitionValue{}).
		Where("UPPER(group_name) = UPPER(?)", groupName).
		Order("value").
		Pluck("value", &values).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询预期分区值失败", err)
	}
	return values, nil
}
