package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"real-estate-agency/internal/constants"
	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessagePublisher struct{ mock.Mock }

func (m *MockMessagePublisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	args := m.Called(ctx, routingKey, msg)
	return args.Error(0)
}

func TestNewListingEventsAdapter_NilProducer(t *testing.T) {
	_, err := NewListingEventsAdapter(nil)
	assert.Error(t, err)
}

func TestPublishListingEvent(t *testing.T) {
	producer := new(MockMessagePublisher)
	adapter, err := NewListingEventsAdapter(producer)
	require.NoError(t, err)

	listing := &domain.Listing{
		ID:          uuid.New(),
		Title:       "Loft",
		Price:       150000,
		Status:      domain.StatusAvailable,
		City:        "Tunis",
		IsPublished: true,
		OwnerID:     uuid.New(),
	}
	traceID := uuid.NewString()
	ctx := contextkeys.ContextWithTraceID(context.Background(), traceID)

	var sent amqp.Publishing
	var deadlineSet bool
	producer.On("Publish", mock.Anything, domain.EventListingCreated, mock.Anything).Run(func(args mock.Arguments) {
		_, deadlineSet = args.Get(0).(context.Context).Deadline()
		sent = args.Get(2).(amqp.Publishing)
	}).Return(nil).Once()

	require.NoError(t, adapter.PublishListingEvent(ctx, domain.EventListingCreated, listing))

	producer.AssertExpectations(t)
	assert.True(t, deadlineSet)
	assert.Equal(t, "application/json", sent.ContentType)
	assert.Equal(t, amqp.Persistent, sent.DeliveryMode)
	assert.Equal(t, domain.EventListingCreated, sent.Type)
	assert.Equal(t, constants.ListingEventVersion, sent.Headers[constants.HeaderEventVersion])
	assert.Equal(t, traceID, sent.Headers[constants.HeaderTraceID])

	var dto ListingEventDTO
	require.NoError(t, json.Unmarshal(sent.Body, &dto))
	assert.Equal(t, sent.MessageId, dto.EventID.String())
	assert.Equal(t, domain.EventListingCreated, dto.EventType)
	assert.Equal(t, listing.ID, dto.Listing.ID)
	assert.Equal(t, listing.OwnerID, dto.Listing.OwnerID)
	assert.WithinDuration(t, time.Now(), dto.OccurredAt, time.Minute)
}

func TestPublishListingEvent_NoTraceHeaderWithoutTrace(t *testing.T) {
	producer := new(MockMessagePublisher)
	adapter, _ := NewListingEventsAdapter(producer)

	producer.On("Publish", mock.Anything, domain.EventListingDeleted, mock.MatchedBy(func(msg amqp.Publishing) bool {
		_, has := msg.Headers[constants.HeaderTraceID]
		return !has
	})).Return(nil).Once()

	require.NoError(t, adapter.PublishListingEvent(context.Background(), domain.EventListingDeleted, &domain.Listing{ID: uuid.New()}))
	producer.AssertExpectations(t)
}

func TestPublishListingEvent_ProducerError(t *testing.T) {
	producer := new(MockMessagePublisher)
	adapter, _ := NewListingEventsAdapter(producer)
	brokerErr := errors.New("channel closed")

	producer.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(brokerErr)

	err := adapter.PublishListingEvent(context.Background(), domain.EventListingUpdated, &domain.Listing{ID: uuid.New()})

	assert.ErrorIs(t, err, brokerErr)
}

func TestNoopEventsAdapter(t *testing.T) {
	assert.NoError(t, NoopEventsAdapter{}.PublishListingEvent(context.Background(), domain.EventListingCreated, &domain.Listing{}))
}
