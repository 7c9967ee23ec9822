package provision

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockProvisioner 模拟集群创建
type MockProvisioner struct {
	mock.Mock

	createDelay time.Duration
	createError error
	requests    []ClusterRequest
	mu          sync.Mutex
}

func NewMockProvisioner() *MockProvisioner {
	return &MockProvisioner{}
}

func (m *MockProvisioner) SetCreateError(err error) *MockProvisioner {
	m.createError = err
	return m
}

func (m *MockProvisioner) SetCreateDelay(d time.Duration) *MockProvisioner {
	m.createDelay = d
	return m
}

func (m *MockProvisioner) CreateCluster(ctx context.Context, req *ClusterRequest) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, *req)
	count := len(m.requests)
	m.mu.Unlock()

	if m.createDelay > 0 {
		select {
		case <-time.After(m.createDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if m.createError != nil {
		return "", m.createError
	}
	return fmt.Sprintf("j-MOCK%08d", count), nil
}

// Requests 已收到的创建请求
func (m *MockProvisioner) Requests() []ClusterRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ClusterRequest(nil), m.requests...)
}

func (m *MockProvisioner) AssertCreateCalled(t mock.TestingT, times int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) != times {
		t.Errorf("CreateCluster called %d times, want %d", len(m.requests), times)
	}
}
