package search

import "real-estate-agency/internal/core/domain"

// textFields - поля, по которым ищет свободный текстовый запрос
var textFields = []domain.Field{
	domain.FieldTitle,
	domain.FieldDescription,
	domain.FieldAddress,
	domain.FieldCity,
	domain.FieldZipCode,
}

// VisibilityPredicate - базовое ограничение для публичных запросов
func VisibilityPredicate(access domain.Access) domain.Predicate {
	if access.SeesHidden() {
		return domain.Predicate{}
	}
	return domain.Predicate{Conditions: []domain.Condition{
		domain.Eq(domain.FieldPublished, true),
		domain.NotEq(domain.FieldStatus, domain.StatusSold),
	}}
}

// BuildListingPredicate собирает конъюнкцию условий из критериев.
// Неуказанные параметры условий не добавляют.
func BuildListingPredicate(c domain.SearchCriteria, access domain.Access) domain.Predicate {
	pred := VisibilityPredicate(access)

	if c.Query != "" {
		textConds := make([]domain.Condition, 0, len(textFields))
		for _, f := range textFields {
			textConds = append(textConds, domain.Contains(f, c.Query))
		}
		pred = pred.And(domain.AnyOf(textConds...))
	}

	pred = pred.And(floatRange(domain.FieldPrice, c.MinPrice, c.MaxPrice)...)
	pred = pred.And(floatRange(domain.FieldSurface, c.MinSurface, c.MaxSurface)...)

	if c.Bedrooms != nil {
		pred = pred.And(domain.Gte(domain.FieldBedrooms, *c.Bedrooms))
	}
	if c.Bathrooms != nil {
		pred = pred.And(domain.Gte(domain.FieldBathrooms, *c.Bathrooms))
	}
	if c.Rooms != nil {
		pred = pred.And(domain.Gte(domain.FieldRooms, *c.Rooms))
	}

	if c.City != "" {
		pred = pred.And(domain.Contains(domain.FieldCity, c.City))
	}
	if c.ZipCode != "" {
		pred = pred.And(domain.Contains(domain.FieldZipCode, c.ZipCode))
	}

	if c.Type != "" {
		pred = pred.And(domain.Eq(domain.FieldType, c.Type))
	}
	if c.Category != "" {
		pred = pred.And(domain.Eq(domain.FieldCategory, c.Category))
	}
	if c.Status != "" {
		pred = pred.And(domain.Eq(domain.FieldStatus, c.Status))
	}

	if len(c.Features) > 0 {
		pred = pred.And(domain.ContainsAll(domain.FieldFeatures, c.Features))
	}

	return pred
}

// FeaturedPredicate - видимые объявления с флагом isFeatured
func FeaturedPredicate() domain.Predicate {
	return VisibilityPredicate(domain.Access{}).And(domain.Eq(domain.FieldFeatured, true))
}

func floatRange(field domain.Field, min, max *float64) []domain.Condition {
	var conds []domain.Condition
	if min != nil {
		conds = append(conds, domain.Gte(field, *min))
	}
	if max != nil {
		conds = append(conds, domain.Lte(field, *max))
	}
	return conds
}
