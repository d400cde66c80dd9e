package usecase

import (
	"context"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"
	"real-estate-agency/internal/core/search"
)

// DefaultFeaturedLimit - количество объявлений на главной
const DefaultFeaturedLimit = 6

type GetFeaturedListingsUseCase struct {
	storage port.ListingStoragePort
	limits  search.Limits
}

// NewGetFeaturedListingsUseCase; maxLimit <= 0 означает MaxPageSize
func NewGetFeaturedListingsUseCase(storage port.ListingStoragePort, maxLimit int) *GetFeaturedListingsUseCase {
	if maxLimit <= 0 {
		maxLimit = domain.MaxPageSize
	}
	return &GetFeaturedListingsUseCase{
		storage: storage,
		limits:  search.Limits{Default: DefaultFeaturedLimit, Max: maxLimit},
	}
}

func (uc *GetFeaturedListingsUseCase) Execute(ctx context.Context, limit int) ([]domain.Listing, error) {
	limit = search.ClampLimit(limit, uc.limits)

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetFeaturedListings",
		"limit":    limit,
	})

	listings, err := uc.storage.Find(ctx, search.FeaturedPredicate(), domain.DefaultSort, limit, 0)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if listings == nil {
		listings = []domain.Listing{}
	}
	return listings, nil
}
