package search

import (
	"fmt"
	"testing"

	"real-estate-agency/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func items(typ domain.SuggestionType, values ...string) []domain.SuggestionItem {
	out := make([]domain.SuggestionItem, 0, len(values))
	for _, v := range values {
		out = append(out, domain.SuggestionItem{Type: typ, Text: v, Value: v})
	}
	return out
}

func TestMergeSuggestions_DedupFirstWins(t *testing.T) {
	cities := items(domain.SuggestionCity, "Sousse", "Sfax")
	titles := items(domain.SuggestionProperty, "Sousse", "Villa in Sfax")

	merged := MergeSuggestions(10, cities, titles)

	assert.Len(t, merged, 3)
	assert.Equal(t, domain.SuggestionCity, merged[0].Type)
	assert.Equal(t, "Sousse", merged[0].Value)
	assert.Equal(t, "Villa in Sfax", merged[2].Value)
}

func TestMergeSuggestions_Cap(t *testing.T) {
	var groups [][]domain.SuggestionItem
	for g := 0; g < 3; g++ {
		var values []string
		for i := 0; i < 5; i++ {
			values = append(values, fmt.Sprintf("g%d-%d", g, i))
		}
		groups = append(groups, items(domain.SuggestionProperty, values...))
	}

	merged := MergeSuggestions(domain.MaxSuggestions, groups...)

	assert.Len(t, merged, domain.MaxSuggestions)
	assert.Equal(t, "g0-0", merged[0].Value)
	assert.Equal(t, "g1-4", merged[9].Value)
}

func TestMergeSuggestions_Empty(t *testing.T) {
	merged := MergeSuggestions(10)

	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}
