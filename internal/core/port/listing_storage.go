package port

import (
	"context"

	"real-estate-agency/internal/core/domain"

	"github.com/google/uuid"
)

// ListingStoragePort - хранилище объявлений.
// Count и Find принимают один и тот же предикат и должны давать согласованный результат.
type ListingStoragePort interface {
	Count(ctx context.Context, pred domain.Predicate) (int, error)
	Find(ctx context.Context, pred domain.Predicate, sort domain.Sort, limit, offset int) ([]domain.Listing, error)

	GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	Create(ctx context.Context, listing *domain.Listing) error
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
}
