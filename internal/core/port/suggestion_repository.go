package port

import (
	"context"

	"real-estate-agency/internal/core/domain"
)

// SuggestionRepositoryPort - источники подсказок автодополнения.
// Все методы ищут подстроку q без учета регистра среди объявлений, прошедших pred.
type SuggestionRepositoryPort interface {
	SuggestCities(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.CityCount, error)
	SuggestTitles(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.ListingRef, error)
	SuggestAddresses(ctx context.Context, q string, pred domain.Predicate, limit int) ([]domain.ListingRef, error)
}
