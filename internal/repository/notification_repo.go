package repository

import (
	"data-catalog/internal/model"
	pkgErrors "data-catalog/pkg/errors"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(msg *model.NotificationMessage) error
	FindPending(limit int) ([]*model.NotificationMessage, error)
	Delete(id int64) error
	MarkFailed(id int64, reason string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(msg *model.NotificationMessage) error {
	if err := r.db.Create(msg).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "写入通知消息失败", err)
	}
	return nil
}

// FindPending 失败次数少的优先, 同失败次数按写入顺序
func (r *notificationRepository) FindPending(limit int) ([]*model.NotificationMessage, error) {
	var msgs []*model.NotificationMessage
	if err := r.db.Order("attempts").Order("id").Limit(limit).Find(&msgs).Error; err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询待发送通知失败", err)
	}
	return msgs, nil
}

func (r *notificationRepository) Delete(id int64) error {
	if err := r.db.Delete(&model.NotificationMessage{}, id).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "删除通知消息失败", err)
	}
	return nil
}

func (r *notificationRepository) MarkFailed(id int64, reason string) error {
	if err := r.db.Model(&model.NotificationMessage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": reason,
		}).Error; err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "更新通知消息失败", err)
	}
	return nil
}
