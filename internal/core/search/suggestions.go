package search

import "real-estate-agency/internal/core/domain"

// MergeSuggestions склеивает группы подсказок по порядку, убирает
// повторы по Value (остается первое вхождение) и обрезает до max
func MergeSuggestions(max int, groups ...[]domain.SuggestionItem) []domain.SuggestionItem {
	result := make([]domain.SuggestionItem, 0, max)
	seen := make(map[string]struct{})
	for _, group := range groups {
		for _, item := range group {
			if len(result) >= max {
				return result
			}
			if _, dup := seen[item.Value]; dup {
				continue
			}
			seen[item.Value] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}
