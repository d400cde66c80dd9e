package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"

	"golang.org/x/sync/errgroup"
)

type ListBlogPostsUseCase struct {
	repo port.BlogRepositoryPort
}

func NewListBlogPostsUseCase(repo port.BlogRepositoryPort) *ListBlogPostsUseCase {
	return &ListBlogPostsUseCase{repo: repo}
}

func (uc *ListBlogPostsUseCase) Execute(ctx context.Context, filter domain.BlogFilter, page, limit int) (*domain.BlogPage, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Category = strings.TrimSpace(filter.Category)

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ListBlogPosts",
		"page":     page,
		"limit":    limit,
	})

	var (
		total int
		posts []domain.BlogPost
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.repo.CountPublished(gctx, filter)
		if err != nil {
			return fmt.Errorf("count posts: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		items, err := uc.repo.FindPublished(gctx, filter, limit, domain.Offset(page, limit))
		if err != nil {
			return fmt.Errorf("find posts: %w", err)
		}
		posts = items
		return nil
	})

	if err := g.Wait(); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}
	if posts == nil {
		posts = []domain.BlogPost{}
	}

	return &domain.BlogPage{
		Posts:      posts,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

type GetBlogPostUseCase struct {
	repo port.BlogRepositoryPort
}

func NewGetBlogPostUseCase(repo port.BlogRepositoryPort) *GetBlogPostUseCase {
	return &GetBlogPostUseCase{repo: repo}
}

func (uc *GetBlogPostUseCase) Execute(ctx context.Context, slug string) (*domain.BlogPost, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetBlogPost",
		"slug":     slug,
	})

	post, err := uc.repo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, domain.ErrPostNotFound) {
			ucLogger.Error("Storage returned an error", err, nil)
		}
		return nil, err
	}
	return post, nil
}
