package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"real-estate-agency/internal/constants"
	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MessagePublisher - то, что адаптеру нужно от rabbitmq_producer.Publisher
type MessagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// ListingEventDTO - тело сообщения о событии
type ListingEventDTO struct {
	EventID    uuid.UUID          `json:"event_id"`
	EventType  string             `json:"event_type"`
	OccurredAt time.Time          `json:"occurred_at"`
	Listing    ListingSnapshotDTO `json:"listing"`
}

type ListingSnapshotDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	City        string    `json:"city"`
	IsPublished bool      `json:"is_published"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

type ListingEventsAdapter struct {
	producer MessagePublisher
}

func NewListingEventsAdapter(producer MessagePublisher) (*ListingEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &ListingEventsAdapter{producer: producer}, nil
}

// PublishListingEvent публикует событие с ключом маршрутизации, равным типу события
func (a *ListingEventsAdapter) PublishListingEvent(ctx context.Context, eventType string, listing *domain.Listing) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "ListingEventsAdapter",
		"routing_key": eventType,
		"listing_id":  listing.ID.String(),
	})

	dto := ListingEventDTO{
		EventID:    uuid.New(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Listing: ListingSnapshotDTO{
			ID:          listing.ID,
			Title:       listing.Title,
			Price:       listing.Price,
			Type:        listing.Type,
			Category:    listing.Category,
			Status:      listing.Status,
			City:        listing.City,
			IsPublished: listing.IsPublished,
			OwnerID:     listing.OwnerID,
		},
	}

	body, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    dto.OccurredAt,
		MessageId:    dto.EventID.String(),
		Type:         eventType,
		Headers: amqp.Table{
			constants.HeaderEventVersion: constants.ListingEventVersion,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers[constants.HeaderTraceID] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, constants.PublishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, eventType, msg); err != nil {
		adapterLogger.Error("Failed to publish listing event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s for listing %s: %w", eventType, listing.ID, err)
	}

	adapterLogger.Debug("Listing event published", port.Fields{"event_id": dto.EventID.String()})
	return nil
}

// NoopEventsAdapter используется, когда брокер не настроен
type NoopEventsAdapter struct{}

func (NoopEventsAdapter) PublishListingEvent(ctx context.Context, eventType string, listing *domain.Listing) error {
	contextkeys.LoggerFromContext(ctx).Debug("Event publishing disabled", port.Fields{"event_type": eventType})
	return nil
}
