package memory

import (
	"context"
	"sort"

	"real-estate-agency/internal/core/domain"
)

// StatsRepository считает агрегаты по хранилищам в памяти
type StatsRepository struct {
	listings *ListingStore
	blog     *BlogStore
}

func NewStatsRepository(listings *ListingStore, blog *BlogStore) *StatsRepository {
	return &StatsRepository{listings: listings, blog: blog}
}

func (r *StatsRepository) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}
	byStatus := make(map[string]int)
	byType := make(map[string]int)

	r.listings.mu.RLock()
	for _, l := range r.listings.listings {
		stats.TotalListings++
		if l.IsPublished {
			stats.PublishedListings++
		}
		if l.IsFeatured {
			stats.FeaturedListings++
		}
		stats.TotalViews += l.Views
		byStatus[l.Status]++
		byType[l.Type]++
	}
	r.listings.mu.RUnlock()

	stats.ByStatus = countsOf(byStatus)
	stats.ByType = countsOf(byType)
	if r.blog != nil {
		stats.BlogPosts = r.blog.total()
	}
	return stats, nil
}

func countsOf(m map[string]int) []domain.CountByKey {
	result := make([]domain.CountByKey, 0, len(m))
	for k, n := range m {
		result = append(result, domain.CountByKey{Key: k, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Key < result[j].Key
	})
	return result
}
