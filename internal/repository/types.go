package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type QueryOption func(*gorm.DB) *gorm.DB

func WithPreload(association string, conds ...interface{}) QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(association, conds...)
	}
}

func applyOptions(db *gorm.DB, opts []QueryOption) *gorm.DB {
	for _, opt := range opts {
		db = opt(db)
	}
	return db
}

// FormatKey 业务对象格式的业务键(不含版本)
type FormatKey struct {
	Namespace      string
	DefinitionName string
	Usage          string
	FileType       string
}

func (k FormatKey) String() string {
	return fmt.Sprintf("namespace: %q, businessObjectDefinitionName: %q, formatUsage: %q, formatFileType: %q",
		k.Namespace, k.DefinitionName, k.Usage, k.FileType)
}

// scope 按业务键过滤, 大小写不敏感
func (k FormatKey) scope(db *gorm.DB) *gorm.DB {
	return db.Where("UPPER(namespace) = UPPER(?) AND UPPER(definition_name) = UPPER(?) AND UPPER(format_usage) = UPPER(?) AND UPPER(file_type) = UPPER(?)",
		k.Namespace, k.DefinitionName, k.Usage, k.FileType)
}

// DataKey 业务对象数据的键, Version 为空时取最新版本
type DataKey struct {
	FormatID           int64
	PartitionValue     string
	SubPartitionValues []string
	Version            *int
}

// scope 子分区值按位置全量匹配, 未给出的列必须为空
func (k DataKey) scope(db *gorm.DB) *gorm.DB {
	db = db.Where("format_id = ? AND partition_value = ?", k.FormatID, k.PartitionValue)
	for i := 0; i < 4; i++ {
		value := ""
		if i < len(k.SubPartitionValues) {
			value = k.SubPartitionValues[i]
		}
		db = db.Where(fmt.Sprintf("sub_partition_value_%d = ?", i+1), value)
	}
	return db
}

// takeOne 查询单条记录, 不存在时返回 (nil, nil)
func takeOne[T any](db *gorm.DB) (*T, error) {
	var out T
	if err := db.Take(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
