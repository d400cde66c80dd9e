package memory

import (
	"context"
	"sort"

	"real-estate-agency/internal/core/domain"
)

func (s *ListingStore) GetPriceRange(ctx context.Context, pred domain.Predicate) (*domain.RangeResult, error) {
	return s.rangeOf(pred, func(l *domain.Listing) float64 { return l.Price }), nil
}

func (s *ListingStore) GetSurfaceRange(ctx context.Context, pred domain.Predicate) (*domain.RangeResult, error) {
	return s.rangeOf(pred, func(l *domain.Listing) float64 { return l.Surface }), nil
}

func (s *ListingStore) GetDistinctCities(ctx context.Context, pred domain.Predicate) ([]string, error) {
	return s.distinct(pred, func(l *domain.Listing) []string { return []string{l.City} }), nil
}

func (s *ListingStore) GetDistinctTypes(ctx context.Context, pred domain.Predicate) ([]string, error) {
	return s.distinct(pred, func(l *domain.Listing) []string { return []string{l.Type} }), nil
}

func (s *ListingStore) GetDistinctFeatures(ctx context.Context, pred domain.Predicate) ([]string, error) {
	return s.distinct(pred, func(l *domain.Listing) []string { return l.Features }), nil
}

func (s *ListingStore) rangeOf(pred domain.Predicate, value func(*domain.Listing) float64) *domain.RangeResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := &domain.RangeResult{}
	for i, l := range s.filter(pred) {
		v := value(l)
		if i == 0 || v < res.Min {
			res.Min = v
		}
		if i == 0 || v > res.Max {
			res.Max = v
		}
	}
	return res
}

func (s *ListingStore) distinct(pred domain.Predicate, values func(*domain.Listing) []string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, l := range s.filter(pred) {
		for _, v := range values(l) {
			if v == "" {
				continue
			}
			if _, dup := seen[v]; !dup {
				seen[v] = struct{}{}
				result = append(result, v)
			}
		}
	}
	sort.Strings(result)
	return result
}
