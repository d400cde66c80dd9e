package domain

import "math"

// Параметры пагинации по умолчанию
const (
	DefaultPage         = 1
	DefaultListingLimit = 12
	DefaultBlogLimit    = 10
	MaxPageSize         = 100
)

// SortField - закрытый набор полей сортировки
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByPrice     SortField = "price"
	SortBySurface   SortField = "surface"
	SortByViews     SortField = "views"
	SortByBedrooms  SortField = "bedrooms"
	SortByTitle     SortField = "title"
)

// ParseSortField возвращает createdAt для неизвестных значений
func ParseSortField(s string) SortField {
	switch f := SortField(s); f {
	case SortByCreatedAt, SortByPrice, SortBySurface, SortByViews, SortByBedrooms, SortByTitle:
		return f
	default:
		return SortByCreatedAt
	}
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder возвращает desc для всего, кроме asc
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortAsc {
		return SortAsc
	}
	return SortDesc
}

// Sort - один ключ и направление
type Sort struct {
	Field SortField
	Order SortOrder
}

// DefaultSort - сначала новые
var DefaultSort = Sort{Field: SortByCreatedAt, Order: SortDesc}

// SearchCriteria - нормализованные параметры поиска объявлений.
// nil/пустая строка/пустой срез означает "нет ограничения".
type SearchCriteria struct {
	Query    string
	Type     string
	Category string
	Status   string

	MinPrice   *float64
	MaxPrice   *float64
	MinSurface *float64
	MaxSurface *float64

	Bedrooms  *int
	Bathrooms *int
	Rooms     *int

	City    string
	ZipCode string

	Features []string

	Sort  Sort
	Page  int
	Limit int
}

// Offset для LIMIT/OFFSET
func (c SearchCriteria) Offset() int {
	return Offset(c.Page, c.Limit)
}

// Offset насыщается в math.MaxInt вместо переполнения
func Offset(page, limit int) int {
	if page < 1 || limit <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// Pagination - метаданные страницы, вычисляются, не хранятся
type Pagination struct {
	Page        int
	Limit       int
	Total       int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// NewPagination вычисляет конверт страницы. page за пределами totalPages не корректируется.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 && total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// ResultPage - страница объявлений
type ResultPage struct {
	Listings   []Listing
	Pagination Pagination
}
