package usecase

import (
	"context"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"
	"real-estate-agency/internal/core/search"
)

type GetFilterOptionsUseCase struct {
	options  port.FilterOptionsRepositoryPort
	listings port.ListingStoragePort
}

func NewGetFilterOptionsUseCase(options port.FilterOptionsRepositoryPort, listings port.ListingStoragePort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{options: options, listings: listings}
}

// Execute собирает значения фильтров по видимым объявлениям.
// Ошибка отдельной опции логируется, опция пропускается.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context, access domain.Access) (*domain.FilterOptionsResult, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetFilterOptions",
	})

	ucLogger.Info("Use case started", nil)

	pred := search.VisibilityPredicate(access)
	resultOptions := make(map[string]domain.FilterOption)

	if priceRange, err := uc.options.GetPriceRange(ctx, pred); err == nil {
		resultOptions["price"] = domain.FilterOption{Min: priceRange.Min, Max: priceRange.Max}
	} else {
		ucLogger.Warn("Failed to get price range", port.Fields{"error": err.Error()})
	}

	if surfaceRange, err := uc.options.GetSurfaceRange(ctx, pred); err == nil {
		resultOptions["surface"] = domain.FilterOption{Min: surfaceRange.Min, Max: surfaceRange.Max}
	} else {
		ucLogger.Warn("Failed to get surface range", port.Fields{"error": err.Error()})
	}

	if cities, err := uc.options.GetDistinctCities(ctx, pred); err == nil {
		resultOptions["cities"] = domain.FilterOption{Options: toInterfaceSlice(cities)}
	} else {
		ucLogger.Warn("Failed to get cities", port.Fields{"error": err.Error()})
	}

	if types, err := uc.options.GetDistinctTypes(ctx, pred); err == nil {
		resultOptions["types"] = domain.FilterOption{Options: toInterfaceSlice(types)}
	} else {
		ucLogger.Warn("Failed to get types", port.Fields{"error": err.Error()})
	}

	if features, err := uc.options.GetDistinctFeatures(ctx, pred); err == nil {
		resultOptions["features"] = domain.FilterOption{Options: toInterfaceSlice(features)}
	} else {
		ucLogger.Warn("Failed to get features", port.Fields{"error": err.Error()})
	}

	count, err := uc.listings.Count(ctx, pred)
	if err != nil {
		ucLogger.Warn("Failed to get total count", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"options": len(resultOptions)})

	return &domain.FilterOptionsResult{
		Options: resultOptions,
		Count:   count,
	}, nil
}

func toInterfaceSlice[T any](slice []T) []interface{} {
	result := make([]interface{}, len(slice))
	for i, v := range slice {
		result[i] = v
	}
	return result
}
