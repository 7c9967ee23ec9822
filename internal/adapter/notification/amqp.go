package notification

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"data-catalog/internal/model"
	"data-catalog/internal/pkg/config"
	"data-catalog/pkg/constants"
)

// AMQPPublisher 通过默认交换机发送到同名队列
// channel 不能并发使用, 发送时加锁
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	logger   *zap.Logger
	mu       sync.Mutex
	declared map[string]bool
}

func NewAMQPPublisher(cfg config.AMQPConfig, logger *zap.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.BuildURL())
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("打开RabbitMQ通道失败: %w", err)
	}

	return &AMQPPublisher{
		conn:     conn,
		channel:  channel,
		logger:   logger,
		declared: make(map[string]bool),
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg *model.NotificationMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.declared[msg.Destination] {
		if _, err := p.channel.QueueDeclare(
			msg.Destination, // name
			true,            // durable
			false,           // delete when unused
			false,           // exclusive
			false,           // no-wait
			nil,             // arguments
		); err != nil {
			return fmt.Errorf("声明队列失败 %s: %w", msg.Destination, err)
		}
		p.declared[msg.Destination] = true
	}

	err := p.channel.PublishWithContext(ctx,
		"",              // exchange
		msg.Destination, // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         []byte(msg.Text),
		},
	)
	if err != nil {
		return fmt.Errorf("发送AMQP消息失败: %w", err)
	}

	p.logger.Debug("AMQP消息发送成功", zap.String("queue", msg.Destination))
	return nil
}

func (p *AMQPPublisher) Type() string {
	return constants.NotificationTypeAMQP
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
