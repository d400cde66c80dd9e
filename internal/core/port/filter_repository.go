package port

import (
	"context"

	"real-estate-agency/internal/core/domain"
)

type FilterOptionsRepositoryPort interface {
	GetPriceRange(ctx context.Context, pred domain.Predicate) (*domain.RangeResult, error)
	GetSurfaceRange(ctx context.Context, pred domain.Predicate) (*domain.RangeResult, error)
	GetDistinctCities(ctx context.Context, pred domain.Predicate) ([]string, error)
	GetDistinctTypes(ctx context.Context, pred domain.Predicate) ([]string, error)
	GetDistinctFeatures(ctx context.Context, pred domain.Predicate) ([]string, error)
}
