package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"data-catalog/internal/adapter/notification"
	"data-catalog/internal/core/availability"
	"data-catalog/internal/core/clusterdef"
	"data-catalog/internal/model"
	"data-catalog/internal/repository"
	"data-catalog/pkg/constants"
	pkgErrors "data-catalog/pkg/errors"
)

const timeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func operator(user string) string {
	if user == "" {
		return constants.SystemUser
	}
	return user
}

// Outbox 在业务事务内写入通知消息, 由定时任务异步发送
type Outbox struct {
	msgType     string
	destination string
}

// NewOutbox msgType 或 destination 为空时不写发件箱
func NewOutbox(msgType, destination string) *Outbox {
	return &Outbox{msgType: msgType, destination: destination}
}

func (o *Outbox) enabled() bool {
	return o != nil && o.msgType != "" && o.destination != ""
}

// Enqueue 使用调用方的事务写入
func (o *Outbox) Enqueue(tx *gorm.DB, event, user string, payload interface{}) error {
	if !o.enabled() {
		return nil
	}

	text, err := notification.BuildText(event, user, payload)
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeMessagingError, "构建通知消息失败", err)
	}

	msg := &model.NotificationMessage{
		Type:        o.msgType,
		Destination: o.destination,
		Text:        text,
	}
	msg.Stamp(user)
	return repository.NewNotificationRepository(tx).Create(msg)
}

// translateError 领域错误转换为带错误码的 AppError
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if cfgErr, ok := clusterdef.AsConfigurationError(err); ok {
		return pkgErrors.Wrap(pkgErrors.CodeValidationError, cfgErr.Message, cfgErr)
	}
	if availability.IsLookupError(err) {
		return pkgErrors.Wrap(pkgErrors.CodeLookupError, "查询分区登记失败", err)
	}
	if errors.Is(err, availability.ErrTooManyPartitionValues) || errors.Is(err, availability.ErrNoPartitionKeyGroup) {
		return pkgErrors.Wrap(pkgErrors.CodeBadRequest, err.Error(), nil)
	}

	var appErr *pkgErrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return pkgErrors.Wrap(pkgErrors.CodeInternalError, "内部服务器错误", err)
}
