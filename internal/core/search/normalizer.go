package search

import (
	"math"
	"strconv"
	"strings"

	"real-estate-agency/internal/core/domain"
)

// Params - источник сырых строковых параметров (url.Values подходит)
type Params interface {
	Get(key string) string
}

// Limits - размер страницы по умолчанию и верхняя граница
type Limits struct {
	Default int
	Max     int
}

// DefaultListingLimits - 12 объявлений, не больше MaxPageSize
var DefaultListingLimits = Limits{Default: domain.DefaultListingLimit, Max: domain.MaxPageSize}

// NormalizeListingQuery превращает сырые параметры в SearchCriteria.
// Некорректные значения отбрасываются, ошибок нет.
func NormalizeListingQuery(params Params) domain.SearchCriteria {
	return NormalizeListingQueryWithLimits(params, DefaultListingLimits)
}

func NormalizeListingQueryWithLimits(params Params, limits Limits) domain.SearchCriteria {
	page, limit := NormalizePaginationWithLimits(params, limits)

	return domain.SearchCriteria{
		Query:    trimmed(params, "query"),
		Type:     trimmed(params, "type"),
		Category: trimmed(params, "category"),
		Status:   trimmed(params, "status"),

		MinPrice:   parseNonNegativeFloat(params.Get("minPrice")),
		MaxPrice:   parseNonNegativeFloat(params.Get("maxPrice")),
		MinSurface: parseNonNegativeFloat(params.Get("minSurface")),
		MaxSurface: parseNonNegativeFloat(params.Get("maxSurface")),

		Bedrooms:  parseNonNegativeInt(params.Get("bedrooms")),
		Bathrooms: parseNonNegativeInt(params.Get("bathrooms")),
		Rooms:     parseNonNegativeInt(params.Get("rooms")),

		City:    trimmed(params, "city"),
		ZipCode: trimmed(params, "zipCode"),

		Features: ParseList(params.Get("features")),

		Sort: domain.Sort{
			Field: domain.ParseSortField(strings.TrimSpace(params.Get("sortBy"))),
			Order: domain.ParseSortOrder(strings.TrimSpace(params.Get("sortOrder"))),
		},
		Page:  page,
		Limit: limit,
	}
}

// NormalizePagination возвращает page (по умолчанию 1) и limit
// (по умолчанию defaultLimit, не больше MaxPageSize)
func NormalizePagination(params Params, defaultLimit int) (int, int) {
	return NormalizePaginationWithLimits(params, Limits{Default: defaultLimit, Max: domain.MaxPageSize})
}

func NormalizePaginationWithLimits(params Params, limits Limits) (int, int) {
	page := parsePositiveInt(params.Get("page"), domain.DefaultPage)
	limit := clamp(parsePositiveInt(params.Get("limit"), limits.Default), limits)
	return page, limit
}

// ClampLimit: непозитивный limit заменяется на Default, больший Max обрезается
func ClampLimit(limit int, limits Limits) int {
	return clamp(limit, limits)
}

func clamp(limit int, limits Limits) int {
	if limit <= 0 {
		limit = limits.Default
	}
	if limits.Max > 0 && limit > limits.Max {
		return limits.Max
	}
	return limit
}

// ParseBool - "true"/"1" (без учета регистра)
func ParseBool(raw string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && b
}

// ParseList разбирает список через запятую: пробелы срезаются,
// пустые элементы и повторы пропускаются, порядок сохраняется
func ParseList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func trimmed(params Params, key string) string {
	return strings.TrimSpace(params.Get(key))
}

func parseNonNegativeFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}

func parseNonNegativeInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func parsePositiveInt(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
