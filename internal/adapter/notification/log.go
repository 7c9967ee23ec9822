package notification

import (
	"context"

	"go.uber.org/zap"

	"data-catalog/internal/model"
)

// LogPublisher 未配置消息提供方时只记录日志
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, msg *model.NotificationMessage) error {
	p.logger.Debug("通知未发送, 消息提供方未配置",
		zap.Int64("id", msg.ID),
		zap.String("destination", msg.Destination))
	return nil
}

func (p *LogPublisher) Type() string {
	return ""
}

func (p *LogPublisher) Close() error {
	return nil
}
