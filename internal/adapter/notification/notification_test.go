package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"data-catalog/internal/model"
	"data-catalog/internal/pkg/config"
	"data-catalog/pkg/constants"
)

type mockSQS struct {
	mock.Mock
}

func (m *mockSQS) GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sqs.GetQueueUrlOutput)
	return out, args.Error(1)
}

func (m *mockSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*sqs.SendMessageOutput)
	return out, args.Error(1)
}

func TestSQSPublisherResolvesQueueOnce(t *testing.T) {
	client := new(mockSQS)
	client.On("GetQueueUrl", mock.Anything, mock.MatchedBy(func(in *sqs.GetQueueUrlInput) bool {
		return aws.ToString(in.QueueName) == "catalog-events"
	})).Return(&sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.local/123/catalog-events")}, nil).Once()
	client.On("SendMessage", mock.Anything, mock.MatchedBy(func(in *sqs.SendMessageInput) bool {
		return aws.ToString(in.QueueUrl) == "https://sqs.local/123/catalog-events"
	})).Return(&sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil).Twice()

	p := newSQSPublisher(client, zap.NewNop())
	msg := &model.NotificationMessage{Destination: "catalog-events", Text: `{"event_type":"x"}`}
	require.NoError(t, p.Publish(context.Background(), msg))
	require.NoError(t, p.Publish(context.Background(), msg))

	client.AssertExpectations(t)
	assert.Equal(t, constants.NotificationTypeSQS, p.Type())
}

func TestSQSPublisherSendFailure(t *testing.T) {
	client := new(mockSQS)
	client.On("GetQueueUrl", mock.Anything, mock.Anything).
		Return(&sqs.GetQueueUrlOutput{QueueUrl: aws.String("u")}, nil)
	client.On("SendMessage", mock.Anything, mock.Anything).
		Return(nil, errors.New("throttled"))

	err := newSQSPublisher(client, zap.NewNop()).Publish(context.Background(), &model.NotificationMessage{Destination: "q", Text: "t"})
	assert.ErrorContains(t, err, "throttled")
}

func TestSQSPublisherUnknownQueue(t *testing.T) {
	client := new(mockSQS)
	client.On("GetQueueUrl", mock.Anything, mock.Anything).Return(nil, errors.New("QueueDoesNotExist"))

	err := newSQSPublisher(client, zap.NewNop()).Publish(context.Background(), &model.NotificationMessage{Destination: "q", Text: "t"})
	assert.ErrorContains(t, err, "QueueDoesNotExist")
	client.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestBuildText(t *testing.T) {
	text, err := BuildText(constants.EventDataRegistered, "alice", map[string]string{"partition_value": "2014-04-01"})
	require.NoError(t, err)

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &event))
	assert.Equal(t, constants.EventDataRegistered, event["event_type"])
	assert.Equal(t, "alice", event["user"])
	assert.Equal(t, "2014-04-01", event["payload"].(map[string]interface{})["partition_value"])
}

func TestNewByProvider(t *testing.T) {
	p, err := New(context.Background(), config.MessagingConfig{Provider: constants.MessagingProviderNone}, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, p.Type())
	assert.NoError(t, p.Publish(context.Background(), &model.NotificationMessage{}))

	_, err = New(context.Background(), config.MessagingConfig{Provider: "kafka"}, zap.NewNop())
	assert.Error(t, err)
}
