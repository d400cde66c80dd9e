package domain

import "github.com/google/uuid"

// Лимиты автодополнения
const (
	MinSuggestionQueryLength = 2
	MaxCitySuggestions       = 5
	MaxTitleSuggestions      = 5
	MaxAddressSuggestions    = 3
	MaxSuggestions           = 10
)

// SuggestionType - категория подсказки
type SuggestionType string

const (
	SuggestionCity     SuggestionType = "city"
	SuggestionProperty SuggestionType = "property"
	SuggestionAddress  SuggestionType = "address"
)

// SuggestionScope - какие источники опрашивать
type SuggestionScope string

const (
	ScopeAll        SuggestionScope = "all"
	ScopeCities     SuggestionScope = "cities"
	ScopeProperties SuggestionScope = "properties"
)

// ParseSuggestionScope - неизвестное значение трактуем как all
func ParseSuggestionScope(s string) SuggestionScope {
	switch sc := SuggestionScope(s); sc {
	case ScopeCities, ScopeProperties:
		return sc
	default:
		return ScopeAll
	}
}

func (s SuggestionScope) IncludesCities() bool {
	return s == ScopeAll || s == ScopeCities
}

func (s SuggestionScope) IncludesProperties() bool {
	return s == ScopeAll || s == ScopeProperties
}

// SuggestionItem - готовая к показу подсказка
type SuggestionItem struct {
	Type     SuggestionType
	Text     string
	Subtitle string
	Value    string
	ID       *uuid.UUID
}

// CityCount - город и количество объявлений в нем
type CityCount struct {
	City  string
	Count int
}

// ListingRef - облегченное объявление для подсказок
type ListingRef struct {
	ID      uuid.UUID
	Title   string
	Address string
	City    string
	Views   int64
}
