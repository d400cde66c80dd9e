package postgres

import (
	"context"
	"fmt"

	"real-estate-agency/internal/core/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FilterRepository struct {
	pool *pgxpool.Pool
}

func NewFilterRepository(pool *pgxpool.Pool) (*FilterRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FilterRepository{pool: pool}, nil
}

func (r *FilterRepository) GetPriceRange(ctx context.Context, pred domain.Predicate) (*domain.RangeResult, error) {
	return r.getRange(ctx, "l.price", pred)
}

func (r *FilterRepository) GetSurfaceRange(ctx context.Context, pred domain.Predicate) (*domain.RangeResult, error) {
	return r.getRange(ctx, "l.surface", pred)
}

func (r *FilterRepository) GetDistinctCities(ctx context.Context, pred domain.Predicate) ([]string, error) {
	return r.getDistinct(ctx, "SELECT DISTINCT l.city FROM listings l %s ORDER BY 1", pred)
}

func (r *FilterRepository) GetDistinctTypes(ctx context.Context, pred domain.Predicate) ([]string, error) {
	return r.getDistinct(ctx, "SELECT DISTINCT l.type FROM listings l %s ORDER BY 1", pred)
}

func (r *FilterRepository) GetDistinctFeatures(ctx context.Context, pred domain.Predicate) ([]string, error) {
	return r.getDistinct(ctx, "SELECT DISTINCT f FROM listings l CROSS JOIN LATERAL unnest(l.features) AS f %s ORDER BY 1", pred)
}

func (r *FilterRepository) getRange(ctx context.Context, column string, pred domain.Predicate) (*domain.RangeResult, error) {
	qb, err := applyPredicate(pred)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT COALESCE(MIN(%s), 0), COALESCE(MAX(%s), 0) FROM listings l %s", column, column, qb.where())

	var res domain.RangeResult
	if err := r.pool.QueryRow(ctx, query, qb.args...).Scan(&res.Min, &res.Max); err != nil {
		return nil, fmt.Errorf("failed to get range of %s: %w", column, err)
	}
	return &res, nil
}

func (r *FilterRepository) getDistinct(ctx context.Context, queryTpl string, pred domain.Predicate) ([]string, error) {
	qb, err := applyPredicate(pred)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(queryTpl, qb.where())

	rows, err := r.pool.Query(ctx, query, qb.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct values: %w", err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan distinct value: %w", err)
		}
		if v != "" {
			values = append(values, v)
		}
	}
	return values, rows.Err()
}
