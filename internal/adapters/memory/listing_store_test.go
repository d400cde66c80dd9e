package memory

import (
	"context"
	"math"
	"testing"
	"time"

	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/search"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func listing(title, city string, price float64, age int) domain.Listing {
	return domain.Listing{
		ID:          uuid.New(),
		Title:       title,
		City:        city,
		Address:     "1 " + title + " street",
		Price:       price,
		Type:        domain.TypeApartment,
		Status:      domain.StatusAvailable,
		IsPublished: true,
		Features:    []string{"parking"},
		CreatedAt:   base.Add(-time.Duration(age) * time.Hour),
	}
}

func TestListingStore_FindMatchesPredicate(t *testing.T) {
	ctx := context.Background()
	hidden := listing("Hidden loft", "Tunis", 300000, 1)
	hidden.IsPublished = false
	sold := listing("Sold villa", "Tunis", 300000, 2)
	sold.Status = domain.StatusSold
	withBalcony := listing("Balcony flat", "Tunis", 250000, 3)
	withBalcony.Features = []string{"parking", "balcony"}

	store := NewListingStore(
		listing("Sousse house", "Sousse", 180000, 0),
		hidden, sold, withBalcony,
		listing("Cheap studio", "TUNIS", 90000, 4),
	)

	pred := search.BuildListingPredicate(domain.SearchCriteria{City: "tunis"}, domain.Access{})
	total, err := store.Count(ctx, pred)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	pred = search.BuildListingPredicate(domain.SearchCriteria{Features: []string{"balcony", "parking"}}, domain.Access{})
	found, err := store.Find(ctx, pred, domain.DefaultSort, 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, withBalcony.ID, found[0].ID)

	pred = search.BuildListingPredicate(domain.SearchCriteria{}, domain.Access{Elevated: true, IncludeHidden: true})
	total, err = store.Count(ctx, pred)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
}

func TestListingStore_UnicodeCaseInsensitiveText(t *testing.T) {
	store := NewListingStore(listing("Appartement Élégant", "Sfax", 100, 0))

	pred := search.BuildListingPredicate(domain.SearchCriteria{Query: "élégant"}, domain.Access{})
	n, err := store.Count(context.Background(), pred)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestListingStore_SortAndPaging(t *testing.T) {
	a := listing("A", "Tunis", 300, 0)
	b := listing("B", "Tunis", 100, 1)
	c := listing("C", "Tunis", 200, 2)
	store := NewListingStore(a, b, c)
	ctx := context.Background()

	found, err := store.Find(ctx, domain.Predicate{}, domain.DefaultSort, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, titles(found))

	found, err = store.Find(ctx, domain.Predicate{}, domain.Sort{Field: domain.SortByPrice, Order: domain.SortAsc}, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, titles(found))

	found, err = store.Find(ctx, domain.Predicate{}, domain.DefaultSort, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestListingStore_TieBreakIsStableAcrossPages(t *testing.T) {
	var seed []domain.Listing
	for i := 0; i < 9; i++ {
		seed = append(seed, listing("Same", "Tunis", 100, 0))
	}
	store := NewListingStore(seed...)
	ctx := context.Background()

	seen := make(map[uuid.UUID]bool)
	for offset := 0; offset < 9; offset += 4 {
		page, err := store.Find(ctx, domain.Predicate{}, domain.DefaultSort, 4, offset)
		require.NoError(t, err)
		for _, l := range page {
			assert.False(t, seen[l.ID], "listing returned twice")
			seen[l.ID] = true
		}
	}
	assert.Len(t, seen, 9)
}

func TestListingStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := NewListingStore()
	l := listing("Loft", "Tunis", 100, 0)

	require.NoError(t, store.Create(ctx, &l))
	require.NoError(t, store.IncrementViews(ctx, l.ID))

	got, err := store.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Views)

	got.Title = "Renamed"
	got.Views = 0
	require.NoError(t, store.Update(ctx, got))

	got, err = store.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, int64(1), got.Views)

	// возвращается копия
	got.Features[0] = "mutated"
	again, _ := store.GetByID(ctx, l.ID)
	assert.Equal(t, "parking", again.Features[0])

	require.NoError(t, store.Delete(ctx, l.ID))
	_, err = store.GetByID(ctx, l.ID)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	assert.ErrorIs(t, store.Delete(ctx, l.ID), domain.ErrListingNotFound)
	assert.ErrorIs(t, store.Update(ctx, &l), domain.ErrListingNotFound)
	assert.ErrorIs(t, store.IncrementViews(ctx, l.ID), domain.ErrListingNotFound)
}

func TestListingStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewListingStore().Count(ctx, domain.Predicate{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListingStore_Suggestions(t *testing.T) {
	popular := listing("Tunis skyline view", "Tunis", 100, 0)
	popular.Views = 50
	quiet := listing("Tunis garden flat", "Tunis", 100, 1)
	hidden := listing("Tunis secret", "Tunisia", 100, 2)
	hidden.IsPublished = false

	store := NewListingStore(quiet, popular, hidden, listing("Sousse villa", "Sousse", 100, 3))
	ctx := context.Background()
	pred := search.VisibilityPredicate(domain.Access{})

	cities, err := store.SuggestCities(ctx, "tun", pred, 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.CityCount{{City: "Tunis", Count: 2}}, cities)

	refs, err := store.SuggestTitles(ctx, "tunis", pred, 5)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, popular.ID, refs[0].ID)

	refs, err = store.SuggestAddresses(ctx, "villa", pred, 3)
	require.NoError(t, err)
	assert.Len(t, refs, 1)

	refs, err = store.SuggestTitles(ctx, "tunis", pred, 1)
	require.NoError(t, err)
	assert.Len(t, refs, 1)
}

func TestListingStore_FilterOptions(t *testing.T) {
	villa := listing("Villa", "Sousse", 500000, 0)
	villa.Type = domain.TypeVilla
	villa.Surface = 300
	villa.Features = []string{"pool", "garden"}
	flat := listing("Flat", "Tunis", 120000, 1)
	flat.Surface = 70

	store := NewListingStore(villa, flat)
	ctx := context.Background()
	pred := search.VisibilityPredicate(domain.Access{})

	price, err := store.GetPriceRange(ctx, pred)
	require.NoError(t, err)
	assert.Equal(t, &domain.RangeResult{Min: 120000, Max: 500000}, price)

	surface, err := store.GetSurfaceRange(ctx, pred)
	require.NoError(t, err)
	assert.Equal(t, &domain.RangeResult{Min: 70, Max: 300}, surface)

	cities, _ := store.GetDistinctCities(ctx, pred)
	assert.Equal(t, []string{"Sousse", "Tunis"}, cities)

	types, _ := store.GetDistinctTypes(ctx, pred)
	assert.Equal(t, []string{domain.TypeApartment, domain.TypeVilla}, types)

	features, _ := store.GetDistinctFeatures(ctx, pred)
	assert.Equal(t, []string{"garden", "parking", "pool"}, features)
}

func TestStatsRepository(t *testing.T) {
	featured := listing("Featured", "Tunis", 1, 0)
	featured.IsFeatured = true
	featured.Views = 10
	draft := listing("Draft", "Tunis", 1, 1)
	draft.IsPublished = false
	draft.Status = domain.StatusPending
	draft.Views = 5

	blog := NewBlogStore(domain.BlogPost{ID: uuid.New(), Slug: "a", IsPublished: true}, domain.BlogPost{ID: uuid.New(), Slug: "b"})
	stats, err := NewStatsRepository(NewListingStore(featured, draft), blog).GetDashboardStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalListings)
	assert.Equal(t, 1, stats.PublishedListings)
	assert.Equal(t, 1, stats.FeaturedListings)
	assert.Equal(t, int64(15), stats.TotalViews)
	assert.Equal(t, 2, stats.BlogPosts)
	assert.Equal(t, []domain.CountByKey{{Key: domain.TypeApartment, Count: 2}}, stats.ByType)
	assert.Len(t, stats.ByStatus, 2)
}

func titles(listings []domain.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Title)
	}
	return out
}

func TestListingStore_OffsetOutOfRange(t *testing.T) {
	store := NewListingStore(listing("Loft", "Tunis", 100, 0), listing("Flat", "Tunis", 200, 1))
	ctx := context.Background()

	for _, offset := range []int{-1, 2, math.MaxInt} {
		got, err := store.Find(ctx, domain.Predicate{}, domain.DefaultSort, 10, offset)
		require.NoError(t, err)
		assert.Empty(t, got, "offset %d", offset)
	}
}
