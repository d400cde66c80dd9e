package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name               string
		page, limit, total int
		wantPages          int
		wantNext, wantPrev bool
	}{
		{"first of two", 1, 10, 15, 2, true, false},
		{"last page", 2, 10, 15, 2, false, true},
		{"exact multiple", 3, 5, 15, 3, false, true},
		{"empty result", 1, 12, 0, 0, false, false},
		{"beyond last page", 5, 10, 15, 2, false, true},
		{"single item", 1, 12, 1, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNextPage)
			assert.Equal(t, tt.wantPrev, p.HasPrevPage)
		})
	}
}

func TestNewPagination_Properties(t *testing.T) {
	for total := 0; total <= 40; total++ {
		for limit := 1; limit <= 12; limit++ {
			for page := 1; page <= 6; page++ {
				p := NewPagination(page, limit, total)
				assert.GreaterOrEqual(t, p.TotalPages*limit, total)
				if p.TotalPages > 0 {
					assert.Less(t, (p.TotalPages-1)*limit, total)
				}
				assert.Equal(t, page < p.TotalPages, p.HasNextPage)
				assert.Equal(t, page > 1, p.HasPrevPage)
			}
		}
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 12))
	assert.Equal(t, 24, Offset(3, 12))
	assert.Equal(t, 0, Offset(0, 12))
	assert.Equal(t, 10, SearchCriteria{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 0, Offset(3, 0))
}

func TestOffset_SaturatesOnOverflow(t *testing.T) {
	assert.Equal(t, math.MaxInt, Offset(100000000000000000, 100))
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, 2))
	assert.Equal(t, math.MaxInt-1, Offset(math.MaxInt, 1))
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortByPrice, ParseSortField("price"))
	assert.Equal(t, SortByCreatedAt, ParseSortField("owner_id"))
	assert.Equal(t, SortByCreatedAt, ParseSortField(""))

	assert.Equal(t, SortAsc, ParseSortOrder("asc"))
	assert.Equal(t, SortDesc, ParseSortOrder("ASC;drop"))
	assert.Equal(t, SortDesc, ParseSortOrder(""))
}
