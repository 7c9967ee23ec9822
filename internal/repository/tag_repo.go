package repository

import (
	"data-catalog/internal/model"
	pkgErrors "data-catalog/pkg/errors"

	"gorm.io/gorm"
)

type TagTypeRepository interface {
	Create(tagType *model.TagType) error
	FindByCode(code string) (*model.TagType, error)
	FindByDisplayName(displayName string) (*model.TagType, error)
	List() ([]*model.TagType, error)
}

type tagTypeRepository struct {
	db *gorm.DB
}

func NewTagTypeRepository(db *gorm.DB) TagTypeRepository {
	return &tagTypeRepository{db: db}
}

func (r *tagTypeRepository) Create(tagType *model.TagType) error {
	if err := r.db.Create(tagType).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建标签类型失败", err)
	}
	return nil
}

// FindByCode 大小写不敏感, 不存在返回 nil
func (r *tagTypeRepository) FindByCode(code string) (*model.TagType, error) {
	tagType, err := takeOne[model.TagType](r.db.Where("UPPER(code) = UPPER(?)", code))
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询标签类型失败", err)
	}
	return tagType, nil
}

func (r *tagTypeRepository) FindByDisplayName(displayName string) (*model.TagType, error) {
	tagType, err := takeOne[model.TagType](r.db.Where("UPPER(display_name) = UPPER(?)", displayName))
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询标签类型失败", err)
	}
	return tagType, nil
}

func (r *tagTypeRepository) List() ([]*model.TagType, error) {
	var tagTypes []*model.TagType
	if err := r.db.Order("order_number, code").Find(&tagTypes).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询标签类型列表失败", err)
	}
	return tagTypes, nil
}

type TagRepository interface {
	Create(tag *model.Tag) error
	FindByKey(tagTypeCode, tagCode string) (*model.Tag, error)
	FindByDisplayName(tagTypeCode, displayName string) (*model.Tag, error)
	ListByType(tagTypeCode string) ([]*model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(tag *model.Tag) error {
	if err := r.db.Omit("TagType").Create(tag).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建标签失败", err)
	}
	return nil
}

// FindByKey 标签类型与标签代码均大小写不敏感, 不存在返回 nil
func (r *tagRepository) FindByKey(tagTypeCode, tagCode string) (*model.Tag, error) {
	tag, err := takeOne[model.Tag](r.db.Preload("TagType").
		Where("UPPER(tag_type_code) = UPPER(?) AND UPPER(tag_code) = UPPER(?)", tagTypeCode, tagCode))
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询标签失败", err)
	}
	return tag, nil
}

// FindByDisplayName 同一标签类型下按显示名查找, 不存在返回 nil
func (r *tagRepository) FindByDisplayName(tagTypeCode, displayName string) (*model.Tag, error) {
	tag, err := takeOne[model.Tag](r.db.
		Where("UPPER(tag_type_code) = UPPER(?) AND UPPER(display_name) = UPPER(?)", tagTypeCode, displayName))
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询标签失败", err)
	}
	return tag, nil
}

func (r *tagRepository) ListByType(tagTypeCode string) ([]*model.Tag, error) {
	var tags []*model.Tag
	if err := r.db.Where("UPPER(tag_type_code) = UPPER(?)", tagTypeCode).
		Order("tag_code").
		Find(&tags).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询标签列表失败", err)
	}
	return tags, nil
}
