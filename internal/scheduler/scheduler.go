package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"data-catalog/internal/pkg/config"
	"data-catalog/internal/service"
)

const defaultNotificationCron = "*/30 * * * * *"

// Scheduler 调度器
type Scheduler struct {
	cron            *cron.Cron
	logger          *zap.Logger
	notificationSvc service.NotificationService
	cronSchedules   map[string]cron.EntryID // 存储任务ID，便于管理
}

// NewScheduler 创建调度器
func NewScheduler(notificationSvc service.NotificationService, logger *zap.Logger) *Scheduler {
	// 创建 cron 实例（带秒级支持）, 上一次未执行完时跳过本次
	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &Scheduler{
		cron:            c,
		logger:          logger,
		notificationSvc: notificationSvc,
		cronSchedules:   make(map[string]cron.EntryID),
	}
}

// Start 启动调度器
func (s *Scheduler) Start(cfg config.SchedulerConfig) error {
	log := s.logger.Sugar()

	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := cfg.NotificationCron
	if cronExpr == "" {
		cronExpr = defaultNotificationCron
		log.Warnw("未配置scheduler.notification_cron，使用默认值", "cron", cronExpr)
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		if err := s.PublishNotifications(); err != nil {
			log.Errorf("通知发送任务执行失败: %v", err)
		}
	})
	if err != nil {
		log.Errorf("注册通知发送任务: %v 失败: %v", cronExpr, err)
		return err
	}

	s.cronSchedules["notification_publish"] = entryID
	log.Infof("通知发送任务已注册: %s entry_id=%d", cronExpr, entryID)

	s.cron.Start()
	log.Info("定时任务调度器启动成功")
	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	// 停止 cron（等待正在执行的任务完成）
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// PublishNotifications 发送一批发件箱消息, 定时任务和手动触发共用
func (s *Scheduler) PublishNotifications() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	_, err := s.notificationSvc.PublishPending(ctx)
	return err
}
