package usecases_port

import (
	"context"

	"real-estate-agency/internal/core/domain"

	"github.com/google/uuid"
)

type CreateListingUseCase interface {
	Execute(ctx context.Context, input domain.ListingInput, claims *domain.Claims) (*domain.Listing, error)
}

type UpdateListingUseCase interface {
	Execute(ctx context.Context, id uuid.UUID, input domain.ListingInput, claims *domain.Claims) (*domain.Listing, error)
}

type DeleteListingUseCase interface {
	Execute(ctx context.Context, id uuid.UUID, claims *domain.Claims) error
}
