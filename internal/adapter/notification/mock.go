package notification

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"data-catalog/internal/model"
	"data-catalog/pkg/constants"
)

// MockPublisher 模拟发送器, 记录已发送的消息
type MockPublisher struct {
	mock.Mock

	publishError error
	failTexts    map[string]bool
	published    []model.NotificationMessage
	delay        time.Duration
	mu           sync.Mutex
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{failTexts: make(map[string]bool)}
}

// SetPublishError 所有消息发送失败
func (m *MockPublisher) SetPublishError(err error) *MockPublisher {
	m.publishError = err
	return m
}

// FailOn 正文为 text 的消息发送失败
func (m *MockPublisher) FailOn(text string, err error) *MockPublisher {
	m.failTexts[text] = true
	m.publishError = err
	return m
}

// SetDelay 每次发送前等待 d
func (m *MockPublisher) SetDelay(d time.Duration) *MockPublisher {
	m.delay = d
	return m
}

func (m *MockPublisher) Publish(ctx context.Context, msg *model.NotificationMessage) error {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.publishError != nil && (len(m.failTexts) == 0 || m.failTexts[msg.Text]) {
		return m.publishError
	}
	m.published = append(m.published, *msg)
	return nil
}

func (m *MockPublisher) Type() string {
	return constants.NotificationTypeSQS
}

func (m *MockPublisher) Close() error {
	return nil
}

// Published 已成功发送的消息
func (m *MockPublisher) Published() []model.NotificationMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.NotificationMessage(nil), m.published...)
}

func (m *MockPublisher) AssertPublishedCount(t mock.TestingT, times int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.published) != times {
		t.Errorf("Publish succeeded %d times, want %d", len(m.published), times)
	}
}
