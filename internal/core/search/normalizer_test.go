package search

import (
	"net/url"
	"testing"

	"real-estate-agency/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeListingQuery_Full(t *testing.T) {
	params, err := url.ParseQuery("query=+sea+view+&type=villa&category=sale&minPrice=200000&maxPrice=500000" +
		"&minSurface=80&bedrooms=2&bathrooms=1&rooms=4&city=Tunis&zipCode=1000" +
		"&features=parking,+balcony,,parking&sortBy=price&sortOrder=asc&page=3&limit=20")
	require.NoError(t, err)

	c := NormalizeListingQuery(params)

	assert.Equal(t, "sea view", c.Query)
	assert.Equal(t, "villa", c.Type)
	assert.Equal(t, "sale", c.Category)
	require.NotNil(t, c.MinPrice)
	assert.Equal(t, 200000.0, *c.MinPrice)
	require.NotNil(t, c.MaxPrice)
	assert.Equal(t, 500000.0, *c.MaxPrice)
	require.NotNil(t, c.MinSurface)
	assert.Nil(t, c.MaxSurface)
	require.NotNil(t, c.Bedrooms)
	assert.Equal(t, 2, *c.Bedrooms)
	assert.Equal(t, "Tunis", c.City)
	assert.Equal(t, "1000", c.ZipCode)
	assert.Equal(t, []string{"parking", "balcony"}, c.Features)
	assert.Equal(t, domain.Sort{Field: domain.SortByPrice, Order: domain.SortAsc}, c.Sort)
	assert.Equal(t, 3, c.Page)
	assert.Equal(t, 20, c.Limit)
}

func TestNormalizeListingQuery_Defaults(t *testing.T) {
	c := NormalizeListingQuery(url.Values{})

	assert.Equal(t, domain.SearchCriteria{
		Sort:  domain.DefaultSort,
		Page:  1,
		Limit: 12,
	}, c)
}

func TestNormalizeListingQuery_DropsInvalidValues(t *testing.T) {
	params := url.Values{
		"minPrice":   {"abc"},
		"maxPrice":   {"-5"},
		"minSurface": {"NaN"},
		"maxSurface": {"Inf"},
		"bedrooms":   {"two"},
		"bathrooms":  {"-1"},
		"sortBy":     {"password"},
		"sortOrder":  {"sideways"},
		"page":       {"0"},
		"limit":      {"-3"},
		"features":   {" , ,"},
	}

	c := NormalizeListingQuery(params)

	assert.Nil(t, c.MinPrice)
	assert.Nil(t, c.MaxPrice)
	assert.Nil(t, c.MinSurface)
	assert.Nil(t, c.MaxSurface)
	assert.Nil(t, c.Bedrooms)
	assert.Nil(t, c.Bathrooms)
	assert.Nil(t, c.Features)
	assert.Equal(t, domain.DefaultSort, c.Sort)
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 12, c.Limit)
}

func TestNormalizeListingQuery_ZeroIsAValue(t *testing.T) {
	c := NormalizeListingQuery(url.Values{"minPrice": {"0"}, "bedrooms": {"0"}})

	require.NotNil(t, c.MinPrice)
	assert.Equal(t, 0.0, *c.MinPrice)
	require.NotNil(t, c.Bedrooms)
	assert.Equal(t, 0, *c.Bedrooms)
}

func TestNormalizePagination_ClampsLimit(t *testing.T) {
	page, limit := NormalizePagination(url.Values{"limit": {"5000"}}, 10)
	assert.Equal(t, 1, page)
	assert.Equal(t, domain.MaxPageSize, limit)

	_, limit = NormalizePaginationWithLimits(url.Values{"limit": {"60"}}, Limits{Default: 12, Max: 50})
	assert.Equal(t, 50, limit)

	_, limit = NormalizePagination(url.Values{}, 10)
	assert.Equal(t, 10, limit)
}

func TestClampLimit(t *testing.T) {
	limits := Limits{Default: 6, Max: domain.MaxPageSize}
	assert.Equal(t, 6, ClampLimit(0, limits))
	assert.Equal(t, 6, ClampLimit(-1, limits))
	assert.Equal(t, 3, ClampLimit(3, limits))
	assert.Equal(t, domain.MaxPageSize, ClampLimit(1000, limits))
	assert.Equal(t, 20, ClampLimit(1000, Limits{Default: 6, Max: 20}))
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("true"))
	assert.True(t, ParseBool(" 1 "))
	assert.True(t, ParseBool("TRUE"))
	assert.False(t, ParseBool("yes"))
	assert.False(t, ParseBool(""))
}
