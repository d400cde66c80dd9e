package usecases_port

import (
	"context"

	"real-estate-agency/internal/core/domain"
)

type ListBlogPostsUseCase interface {
	Execute(ctx context.Context, filter domain.BlogFilter, page, limit int) (*domain.BlogPage, error)
}

type GetBlogPostUseCase interface {
	Execute(ctx context.Context, slug string) (*domain.BlogPost, error)
}
