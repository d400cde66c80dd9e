package memory

import (
	"context"
	"sort"

	"real-estate-agency/internal/core/domain"
)

func (s *ListingStore) SuggestCities(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.CityCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	var order []string
	for _, l := range s.filter(pred.And(domain.Contains(domain.FieldCity, q))) {
		if _, seen := counts[l.City]; !seen {
			order = append(order, l.City)
		}
		counts[l.City]++
	}

	result := make([]domain.CityCount, 0, len(order))
	for _, city := range order {
		result = append(result, domain.CityCount{City: city, Count: counts[city]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].City < result[j].City
	})
	return truncate(result, limit), nil
}

func (s *ListingStore) SuggestTitles(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.ListingRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.filter(pred.And(domain.Contains(domain.FieldTitle, q)))
	sortListings(matched, domain.Sort{Field: domain.SortByViews, Order: domain.SortDesc})
	return truncate(refs(matched), limit), nil
}

func (s *ListingStore) SuggestAddresses(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.ListingRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return truncate(refs(s.filter(pred.And(domain.Contains(domain.FieldAddress, q)))), limit), nil
}

func refs(items []*domain.Listing) []domain.ListingRef {
	result := make([]domain.ListingRef, 0, len(items))
	for _, l := range items {
		result = append(result, domain.ListingRef{
			ID:      l.ID,
			Title:   l.Title,
			Address: l.Address,
			City:    l.City,
			Views:   l.Views,
		})
	}
	return result
}

func truncate[T any](items []T, limit int) []T {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
