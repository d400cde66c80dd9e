package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"real-estate-agency/internal/core/domain"
)

// BlogStore - статьи блога в памяти
type BlogStore struct {
	mu    sync.RWMutex
	posts []domain.BlogPost
}

func NewBlogStore(seed ...domain.BlogPost) *BlogStore {
	return &BlogStore{posts: slices.Clone(seed)}
}

func (s *BlogStore) CountPublished(ctx context.Context, filter domain.BlogFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.published(filter)), nil
}

func (s *BlogStore) FindPublished(ctx context.Context, filter domain.BlogFilter, limit, offset int) ([]domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := s.published(filter)
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if a.PublishedAt != nil && b.PublishedAt != nil && !a.PublishedAt.Equal(*b.PublishedAt) {
			return a.PublishedAt.After(*b.PublishedAt)
		}
		if (a.PublishedAt == nil) != (b.PublishedAt == nil) {
			return a.PublishedAt != nil
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	if offset < 0 || offset >= len(posts) {
		return []domain.BlogPost{}, nil
	}
	return truncate(posts[offset:], limit), nil
}

func (s *BlogStore) GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.Slug == slug && p.IsPublished {
			post := p
			post.Tags = slices.Clone(p.Tags)
			return &post, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

func (s *BlogStore) total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

func (s *BlogStore) published(filter domain.BlogFilter) []domain.BlogPost {
	result := make([]domain.BlogPost, 0)
	for _, p := range s.posts {
		if !p.IsPublished {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Query != "" && !containsFold(p.Title, filter.Query) && !containsFold(p.Excerpt, filter.Query) {
			continue
		}
		result = append(result, p)
	}
	return result
}
