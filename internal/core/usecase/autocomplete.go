package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"
	"real-estate-agency/internal/core/search"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type AutocompleteUseCase struct {
	repo port.SuggestionRepositoryPort
}

func NewAutocompleteUseCase(repo port.SuggestionRepositoryPort) *AutocompleteUseCase {
	return &AutocompleteUseCase{repo: repo}
}

// Execute опрашивает источники параллельно и склеивает результат: города, названия, адреса.
// Для запроса короче двух символов хранилище не вызывается.
func (uc *AutocompleteUseCase) Execute(ctx context.Context, q string, scope domain.SuggestionScope, access domain.Access) ([]domain.SuggestionItem, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < domain.MinSuggestionQueryLength {
		return []domain.SuggestionItem{}, nil
	}

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "Autocomplete",
		"query":    q,
		"scope":    string(scope),
	})

	pred := search.VisibilityPredicate(access)

	var cities, titles, addresses []domain.SuggestionItem

	g, gctx := errgroup.WithContext(ctx)
	if scope.IncludesCities() {
		g.Go(func() error {
			rows, err := uc.repo.SuggestCities(gctx, q, pred, domain.MaxCitySuggestions)
			if err != nil {
				return fmt.Errorf("suggest cities: %w", err)
			}
			cities = citySuggestions(rows)
			return nil
		})
	}
	if scope.IncludesProperties() {
		g.Go(func() error {
			rows, err := uc.repo.SuggestTitles(gctx, q, pred, domain.MaxTitleSuggestions)
			if err != nil {
				return fmt.Errorf("suggest titles: %w", err)
			}
			titles = titleSuggestions(rows)
			return nil
		})
		g.Go(func() error {
			rows, err := uc.repo.SuggestAddresses(gctx, q, pred, domain.MaxAddressSuggestions)
			if err != nil {
				return fmt.Errorf("suggest addresses: %w", err)
			}
			addresses = addressSuggestions(rows)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		ucLogger.Error("Suggestion source failed", err, nil)
		return nil, err
	}

	result := search.MergeSuggestions(domain.MaxSuggestions, cities, titles, addresses)
	ucLogger.Debug("Suggestions collected", port.Fields{"count": len(result)})
	return result, nil
}

func citySuggestions(rows []domain.CityCount) []domain.SuggestionItem {
	items := make([]domain.SuggestionItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.SuggestionItem{
			Type:     domain.SuggestionCity,
			Text:     r.City,
			Subtitle: pluralProperties(r.Count),
			Value:    r.City,
		})
	}
	return items
}

func titleSuggestions(rows []domain.ListingRef) []domain.SuggestionItem {
	items := make([]domain.SuggestionItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.SuggestionItem{
			Type:     domain.SuggestionProperty,
			Text:     r.Title,
			Subtitle: r.City,
			Value:    r.Title,
			ID:       idPtr(r.ID),
		})
	}
	return items
}

func addressSuggestions(rows []domain.ListingRef) []domain.SuggestionItem {
	items := make([]domain.SuggestionItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.SuggestionItem{
			Type:     domain.SuggestionAddress,
			Text:     r.Address,
			Subtitle: r.City,
			Value:    r.Address,
			ID:       idPtr(r.ID),
		})
	}
	return items
}

func pluralProperties(n int) string {
	if n == 1 {
		return "1 property"
	}
	return fmt.Sprintf("%d properties", n)
}

func idPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
