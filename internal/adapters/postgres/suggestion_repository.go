package postgres

import (
	"context"
	"fmt"

	"real-estate-agency/internal/core/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SuggestionRepository struct {
	pool *pgxpool.Pool
}

func NewSuggestionRepository(pool *pgxpool.Pool) (*SuggestionRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &SuggestionRepository{pool: pool}, nil
}

// SuggestCities группирует подходящие города, самые частые первыми
func (r *SuggestionRepository) SuggestCities(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.CityCount, error) {
	qb, err := applyPredicate(pred.And(domain.Contains(domain.FieldCity, q)))
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT l.city, COUNT(*) FROM listings l %s
		GROUP BY l.city
		ORDER BY COUNT(*) DESC, l.city COLLATE "C" ASC
		LIMIT %s`, qb.where(), qb.placeholder(limit))

	rows, err := r.pool.Query(ctx, query, qb.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query city suggestions: %w", err)
	}
	defer rows.Close()

	result := make([]domain.CityCount, 0, limit)
	for rows.Next() {
		var c domain.CityCount
		if err := rows.Scan(&c.City, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan city suggestion: %w", err)
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// SuggestTitles - самые просматриваемые объявления первыми
func (r *SuggestionRepository) SuggestTitles(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.ListingRef, error) {
	return r.suggestRefs(ctx, pred.And(domain.Contains(domain.FieldTitle, q)), "ORDER BY l.views DESC, l.id ASC", limit)
}

// SuggestAddresses - порядок хранилища
func (r *SuggestionRepository) SuggestAddresses(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.ListingRef, error) {
	return r.suggestRefs(ctx, pred.And(domain.Contains(domain.FieldAddress, q)), "", limit)
}

func (r *SuggestionRepository) suggestRefs(ctx context.Context, pred domain.Predicate, order string, limit int) ([]domain.ListingRef, error) {
	qb, err := applyPredicate(pred)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf("SELECT l.id, l.title, l.address, l.city, l.views FROM listings l %s %s LIMIT %s",
		qb.where(), order, qb.placeholder(limit))

	rows, err := r.pool.Query(ctx, query, qb.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listing suggestions: %w", err)
	}
	defer rows.Close()

	result := make([]domain.ListingRef, 0, limit)
	for rows.Next() {
		var ref domain.ListingRef
		if err := rows.Scan(&ref.ID, &ref.Title, &ref.Address, &ref.City, &ref.Views); err != nil {
			return nil, fmt.Errorf("failed to scan listing suggestion: %w", err)
		}
		result = append(result, ref)
	}
	return result, rows.Err()
}
