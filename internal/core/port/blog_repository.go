package port

import (
	"context"

	"real-estate-agency/internal/core/domain"
)

// BlogRepositoryPort работает только с опубликованными статьями
type BlogRepositoryPort interface {
	CountPublished(ctx context.Context, filter domain.BlogFilter) (int, error)
	FindPublished(ctx context.Context, filter domain.BlogFilter, limit, offset int) ([]domain.BlogPost, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
}
