package port

import (
	"context"

	"real-estate-agency/internal/core/domain"
)

// ListingEventPublisherPort отправляет события об изменении объявлений
type ListingEventPublisherPort interface {
	PublishListingEvent(ctx context.Context, eventType string, listing *domain.Listing) error
}
