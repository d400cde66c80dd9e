package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"real-estate-agency/internal/core/domain"

	"github.com/google/uuid"
)

// ListingStore - хранилище объявлений в памяти процесса.
// Реализует порты объявлений, подсказок и опций фильтров.
type ListingStore struct {
	mu       sync.RWMutex
	listings map[uuid.UUID]*domain.Listing
	order    []uuid.UUID // порядок вставки
}

func NewListingStore(seed ...domain.Listing) *ListingStore {
	s := &ListingStore{listings: make(map[uuid.UUID]*domain.Listing, len(seed))}
	for i := range seed {
		l := clone(&seed[i])
		s.listings[l.ID] = l
		s.order = append(s.order, l.ID)
	}
	return s
}

func (s *ListingStore) Count(ctx context.Context, pred domain.Predicate) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.filter(pred)), nil
}

func (s *ListingStore) Find(ctx context.Context, pred domain.Predicate, sortBy domain.Sort, limit, offset int) ([]domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.filter(pred)
	sortListings(matched, sortBy)

	if offset < 0 || offset >= len(matched) {
		return []domain.Listing{}, nil
	}
	result := make([]domain.Listing, 0, limit)
	for i := offset; i < len(matched) && len(result) < limit; i++ {
		result = append(result, *clone(matched[i]))
	}
	return result, nil
}

func (s *ListingStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return clone(l), nil
}

func (s *ListingStore) Create(ctx context.Context, l *domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[l.ID] = clone(l)
	s.order = append(s.order, l.ID)
	return nil
}

func (s *ListingStore) Update(ctx context.Context, l *domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.listings[l.ID]
	if !ok {
		return domain.ErrListingNotFound
	}
	updated := clone(l)
	updated.Views = current.Views
	s.listings[l.ID] = updated
	return nil
}

func (s *ListingStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.listings[id]; !ok {
		return domain.ErrListingNotFound
	}
	delete(s.listings, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	return nil
}

func (s *ListingStore) IncrementViews(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return domain.ErrListingNotFound
	}
	l.Views++
	return nil
}

// filter вызывается под блокировкой, возвращает указатели на внутренние записи
func (s *ListingStore) filter(pred domain.Predicate) []*domain.Listing {
	result := make([]*domain.Listing, 0)
	for _, id := range s.order {
		l := s.listings[id]
		if matches(l, pred) {
			result = append(result, l)
		}
	}
	return result
}

func sortListings(items []*domain.Listing, by domain.Sort) {
	sort.SliceStable(items, func(i, j int) bool {
		c := compareBy(items[i], items[j], by.Field)
		if c == 0 {
			return strings.Compare(items[i].ID.String(), items[j].ID.String()) < 0
		}
		if by.Order == domain.SortAsc {
			return c < 0
		}
		return c > 0
	})
}

func compareBy(a, b *domain.Listing, field domain.SortField) int {
	switch field {
	case domain.SortByPrice:
		return cmpFloat(a.Price, b.Price)
	case domain.SortBySurface:
		return cmpFloat(a.Surface, b.Surface)
	case domain.SortByViews:
		return cmpFloat(float64(a.Views), float64(b.Views))
	case domain.SortByBedrooms:
		return cmpFloat(float64(a.Bedrooms), float64(b.Bedrooms))
	case domain.SortByTitle:
		return strings.Compare(fold(a.Title), fold(b.Title))
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func clone(l *domain.Listing) *domain.Listing {
	c := *l
	c.Features = slices.Clone(l.Features)
	c.Images = slices.Clone(l.Images)
	return &c
}
