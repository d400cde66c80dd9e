package memory

import (
	"strings"

	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/search"
)

// fold совпадает с тем, как сравнивает текст адаптер postgres
func fold(s string) string {
	return search.FoldText(s)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(fold(haystack), fold(needle))
}

func matches(l *domain.Listing, pred domain.Predicate) bool {
	for _, c := range pred.Conditions {
		if !matchCondition(l, c) {
			return false
		}
	}
	return true
}

func matchCondition(l *domain.Listing, c domain.Condition) bool {
	if len(c.Any) > 0 {
		for _, sub := range c.Any {
			if matchCondition(l, sub) {
				return true
			}
		}
		return false
	}

	actual := fieldValue(l, c.Field)
	switch c.Op {
	case domain.OpEq:
		return equal(actual, c.Value)
	case domain.OpNotEq:
		return !equal(actual, c.Value)
	case domain.OpGte, domain.OpLte:
		a, okA := toFloat(actual)
		b, okB := toFloat(c.Value)
		if !okA || !okB {
			return false
		}
		if c.Op == domain.OpGte {
			return a >= b
		}
		return a <= b
	case domain.OpContains:
		s, okA := actual.(string)
		q, okB := c.Value.(string)
		return okA && okB && containsFold(s, q)
	case domain.OpContainsAll:
		required, ok := c.Value.([]string)
		return ok && c.Field == domain.FieldFeatures && l.HasFeatures(required)
	default:
		return false
	}
}

func fieldValue(l *domain.Listing, f domain.Field) any {
	switch f {
	case domain.FieldTitle:
		return l.Title
	case domain.FieldDescription:
		return l.Description
	case domain.FieldAddress:
		return l.Address
	case domain.FieldCity:
		return l.City
	case domain.FieldZipCode:
		return l.ZipCode
	case domain.FieldType:
		return l.Type
	case domain.FieldCategory:
		return l.Category
	case domain.FieldStatus:
		return l.Status
	case domain.FieldPrice:
		return l.Price
	case domain.FieldSurface:
		return l.Surface
	case domain.FieldRooms:
		return l.Rooms
	case domain.FieldBedrooms:
		return l.Bedrooms
	case domain.FieldBathrooms:
		return l.Bathrooms
	case domain.FieldFeatures:
		return l.Features
	case domain.FieldPublished:
		return l.IsPublished
	case domain.FieldFeatured:
		return l.IsFeatured
	default:
		return nil
	}
}

func equal(actual, expected any) bool {
	switch a := actual.(type) {
	case string:
		e, ok := expected.(string)
		return ok && a == e
	case bool:
		e, ok := expected.(bool)
		return ok && a == e
	}
	a, okA := toFloat(actual)
	e, okE := toFloat(expected)
	return okA && okE && a == e
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
