package search

import (
	"testing"

	"real-estate-agency/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

var publicVisibility = []domain.Condition{
	domain.Eq(domain.FieldPublished, true),
	domain.NotEq(domain.FieldStatus, domain.StatusSold),
}

func TestBuildListingPredicate_EmptyCriteria(t *testing.T) {
	pred := BuildListingPredicate(domain.SearchCriteria{}, domain.Access{})

	assert.Equal(t, publicVisibility, pred.Conditions)
}

func TestBuildListingPredicate_HiddenVisibleOnlyWhenRequested(t *testing.T) {
	assert.True(t, BuildListingPredicate(domain.SearchCriteria{}, domain.Access{Elevated: true, IncludeHidden: true}).IsEmpty())
	assert.Equal(t, publicVisibility,
		BuildListingPredicate(domain.SearchCriteria{}, domain.Access{Elevated: true}).Conditions)
	assert.Equal(t, publicVisibility,
		BuildListingPredicate(domain.SearchCriteria{}, domain.Access{IncludeHidden: true}).Conditions)
}

func TestBuildListingPredicate_AllConditions(t *testing.T) {
	c := domain.SearchCriteria{
		Query:      "sea",
		Type:       domain.TypeVilla,
		Category:   domain.CategorySale,
		Status:     domain.StatusAvailable,
		MinPrice:   ptr(200000.0),
		MaxPrice:   ptr(500000.0),
		MinSurface: ptr(80.0),
		Bedrooms:   ptr(2),
		Bathrooms:  ptr(1),
		Rooms:      ptr(3),
		City:       "Tunis",
		ZipCode:    "10",
		Features:   []string{"parking", "balcony"},
	}

	pred := BuildListingPredicate(c, domain.Access{})

	expected := append([]domain.Condition{}, publicVisibility...)
	expected = append(expected,
		domain.AnyOf(
			domain.Contains(domain.FieldTitle, "sea"),
			domain.Contains(domain.FieldDescription, "sea"),
			domain.Contains(domain.FieldAddress, "sea"),
			domain.Contains(domain.FieldCity, "sea"),
			domain.Contains(domain.FieldZipCode, "sea"),
		),
		domain.Gte(domain.FieldPrice, 200000.0),
		domain.Lte(domain.FieldPrice, 500000.0),
		domain.Gte(domain.FieldSurface, 80.0),
		domain.Gte(domain.FieldBedrooms, 2),
		domain.Gte(domain.FieldBathrooms, 1),
		domain.Gte(domain.FieldRooms, 3),
		domain.Contains(domain.FieldCity, "Tunis"),
		domain.Contains(domain.FieldZipCode, "10"),
		domain.Eq(domain.FieldType, domain.TypeVilla),
		domain.Eq(domain.FieldCategory, domain.CategorySale),
		domain.Eq(domain.FieldStatus, domain.StatusAvailable),
		domain.ContainsAll(domain.FieldFeatures, []string{"parking", "balcony"}),
	)
	assert.Equal(t, expected, pred.Conditions)
}

func TestBuildListingPredicate_DoesNotMutateVisibility(t *testing.T) {
	base := VisibilityPredicate(domain.Access{})
	_ = base.And(domain.Eq(domain.FieldType, "house"))

	require.Len(t, base.Conditions, 2)
}

func TestFeaturedPredicate(t *testing.T) {
	pred := FeaturedPredicate()

	assert.Equal(t, append(append([]domain.Condition{}, publicVisibility...),
		domain.Eq(domain.FieldFeatured, true)), pred.Conditions)
}
