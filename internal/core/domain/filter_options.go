package domain

// RangeResult - минимум и максимум числового поля
type RangeResult struct {
	Min float64
	Max float64
}

// FilterOption - описание одного фильтра для ответа
type FilterOption struct {
	Options []interface{}
	Min     interface{}
	Max     interface{}
}

type FilterOptionsResult struct {
	Options map[string]FilterOption
	Count   int
}
