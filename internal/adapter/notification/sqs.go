package notification

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"go.uber.org/zap"

	"data-catalog/internal/model"
	"data-catalog/internal/pkg/config"
	"data-catalog/pkg/constants"
)

// sqsAPI SQSPublisher 用到的 SQS 接口
type sqsAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher 发送文本消息到 SQS 队列, 队列地址按名称解析后缓存
type SQSPublisher struct {
	client    sqsAPI
	logger    *zap.Logger
	queueURLs sync.Map
}

// NewSQSPublisher 配置了代理主机时通过 HTTP 代理访问 SQS
func NewSQSPublisher(ctx context.Context, cfg config.SQSConfig, logger *zap.Logger) (*SQSPublisher, error) {
	opts := []func(*awscfg.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awscfg.WithRegion(cfg.Region))
	}
	if cfg.HTTPProxyHost != "" {
		proxyURL := &url.URL{
			Scheme: "http",
			Host:   net.JoinHostPort(cfg.HTTPProxyHost, strconv.Itoa(cfg.HTTPProxyPort)),
		}
		client := awshttp.NewBuildableClient().WithTransportOptions(func(tr *http.Transport) {
			tr.Proxy = http.ProxyURL(proxyURL)
		})
		opts = append(opts, awscfg.WithHTTPClient(client))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("加载AWS配置失败: %w", err)
	}
	return newSQSPublisher(sqs.NewFromConfig(awsCfg), logger), nil
}

func newSQSPublisher(client sqsAPI, logger *zap.Logger) *SQSPublisher {
	return &SQSPublisher{client: client, logger: logger}
}

func (p *SQSPublisher) Publish(ctx context.Context, msg *model.NotificationMessage) error {
	queueURL, err := p.queueURL(ctx, msg.Destination)
	if err != nil {
		return err
	}

	out, err := p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(msg.Text),
	})
	if err != nil {
		return fmt.Errorf("发送SQS消息失败: %w", err)
	}

	p.logger.Debug("SQS消息发送成功",
		zap.String("queue", msg.Destination),
		zap.String("message_id", aws.ToString(out.MessageId)))
	return nil
}

func (p *SQSPublisher) queueURL(ctx context.Context, name string) (string, error) {
	if v, ok := p.queueURLs.Load(name); ok {
		return v.(string), nil
	}

	out, err := p.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(name)})
	if err != nil {
		return "", fmt.Errorf("获取SQS队列地址失败 %s: %w", name, err)
	}
	queueURL := aws.ToString(out.QueueUrl)
	p.queueURLs.Store(name, queueURL)
	return queueURL, nil
}

func (p *SQSPublisher) Type() string {
	return constants.NotificationTypeSQS
}

func (p *SQSPublisher) Close() error {
	return nil
}
