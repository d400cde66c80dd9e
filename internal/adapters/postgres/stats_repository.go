package postgres

import (
	"context"
	"fmt"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) (*StatsRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &StatsRepository{pool: pool}, nil
}

func (r *StatsRepository) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "StatsRepository",
		"method":    "GetDashboardStats",
	})

	stats := &domain.DashboardStats{}

	totalsQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_published),
			COUNT(*) FILTER (WHERE is_featured),
			COALESCE(SUM(views), 0)::bigint
		FROM listings`
	if err := r.pool.QueryRow(ctx, totalsQuery).Scan(
		&stats.TotalListings, &stats.PublishedListings, &stats.FeaturedListings, &stats.TotalViews,
	); err != nil {
		repoLogger.Error("Failed to query listing totals", err, nil)
		return nil, fmt.Errorf("failed to query listing totals: %w", err)
	}

	var err error
	if stats.ByStatus, err = r.countBy(ctx, "status"); err != nil {
		repoLogger.Error("Failed to count listings by status", err, nil)
		return nil, err
	}
	if stats.ByType, err = r.countBy(ctx, "type"); err != nil {
		repoLogger.Error("Failed to count listings by type", err, nil)
		return nil, err
	}

	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM blog_posts").Scan(&stats.BlogPosts); err != nil {
		repoLogger.Error("Failed to count blog posts", err, nil)
		return nil, fmt.Errorf("failed to count blog posts: %w", err)
	}

	return stats, nil
}

// countBy - column берется только из кода, не из запроса пользователя
func (r *StatsRepository) countBy(ctx context.Context, column string) ([]domain.CountByKey, error) {
	query := fmt.Sprintf("SELECT %s, COUNT(*) FROM listings GROUP BY %s ORDER BY COUNT(*) DESC, %s ASC", column, column, column)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count listings by %s: %w", column, err)
	}
	defer rows.Close()

	result := make([]domain.CountByKey, 0)
	for rows.Next() {
		var item domain.CountByKey
		if err := rows.Scan(&item.Key, &item.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s count: %w", column, err)
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
