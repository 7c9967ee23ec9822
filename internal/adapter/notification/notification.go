package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"data-catalog/internal/model"
	"data-catalog/internal/pkg/config"
	"data-catalog/pkg/constants"
)

// Event 发往队列的消息体
type Event struct {
	Type      string      `json:"event_type"`
	User      string      `json:"user"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BuildText 序列化事件, 作为发件箱消息正文
func BuildText(eventType, user string, payload interface{}) (string, error) {
	data, err := json.Marshal(Event{
		Type:      eventType,
		User:      user,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
	if err != nil {
		return "", fmt.Errorf("序列化通知事件失败: %w", err)
	}
	return string(data), nil
}

// Publisher 消息发送接口
type Publisher interface {
	// Publish 发送一条发件箱消息, 失败时由调用方保留消息等待重试
	Publish(ctx context.Context, msg *model.NotificationMessage) error

	// Type 写入发件箱的消息类型, 为空表示不写发件箱
	Type() string

	Close() error
}

// New 按配置创建发送器
func New(ctx context.Context, cfg config.MessagingConfig, logger *zap.Logger) (Publisher, error) {
	switch cfg.Provider {
	case constants.MessagingProviderSQS:
		publisher, err := NewSQSPublisher(ctx, cfg.SQS, logger)
		if err != nil {
			return nil, err
		}
		return publisher, nil
	case constants.MessagingProviderAMQP:
		publisher, err := NewAMQPPublisher(cfg.AMQP, logger)
		if err != nil {
			return nil, err
		}
		return publisher, nil
	case "", constants.MessagingProviderNone:
		return NewLogPublisher(logger), nil
	default:
		return nil, fmt.Errorf("不支持的消息提供方: %s", cfg.Provider)
	}
}
