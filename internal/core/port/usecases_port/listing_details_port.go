package usecases_port

import (
	"context"

	"real-estate-agency/internal/core/domain"

	"github.com/google/uuid"
)

type GetListingDetailsUseCase interface {
	Execute(ctx context.Context, id uuid.UUID, claims *domain.Claims) (*domain.Listing, error)
}

type GetFeaturedListingsUseCase interface {
	Execute(ctx context.Context, limit int) ([]domain.Listing, error)
}
