package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"data-catalog/internal/adapter/notification"
	"data-catalog/internal/dto"
	"data-catalog/internal/pkg/logger"
	"data-catalog/internal/repository"
)

type NotificationService interface {
	// PublishPending 发送一批发件箱消息, 发送成功的消息删除, 失败的保留到下次
	PublishPending(ctx context.Context) (*dto.PublishNotificationsResponse, error)
}

// notificationService 定时任务与手动触发共用一个实例, mu 保证同一时刻只有一轮发送
type notificationService struct {
	mu        sync.Mutex
	repo      repository.NotificationRepository
	publisher notification.Publisher
	batchSize int
}

func NewNotificationService(repo repository.NotificationRepository, publisher notification.Publisher, batchSize int) NotificationService {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &notificationService{
		repo:      repo,
		publisher: publisher,
		batchSize: batchSize,
	}
}

func (s *notificationService) PublishPending(ctx context.Context) (*dto.PublishNotificationsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, err := s.repo.FindPending(s.batchSize)
	if err != nil {
		return nil, err
	}

	result := &dto.PublishNotificationsResponse{}
	for _, msg := range msgs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if err := s.publisher.Publish(ctx, msg); err != nil {
			result.Failed++
			logger.Warn("通知发送失败, 等待下次重试",
				zap.Int64("id", msg.ID),
				zap.String("destination", msg.Destination),
				zap.Int("attempts", msg.Attempts+1),
				zap.Error(err))
			if markErr := s.repo.MarkFailed(msg.ID, err.Error()); markErr != nil {
				return result, markErr
			}
			continue
		}

		if err := s.repo.Delete(msg.ID); err != nil {
			return result, err
		}
		result.Published++
	}

	if len(msgs) > 0 {
		logger.Info("发件箱发送完成",
			zap.Int("published", result.Published),
			zap.Int("failed", result.Failed))
	}
	return result, nil
}
