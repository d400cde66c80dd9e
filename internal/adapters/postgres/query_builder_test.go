package postgres

import (
	"testing"

	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPredicate_Empty(t *testing.T) {
	qb, err := applyPredicate(domain.Predicate{})

	require.NoError(t, err)
	assert.Equal(t, "", qb.where())
	assert.Empty(t, qb.args)
}

func TestApplyPredicate_SearchCriteria(t *testing.T) {
	minPrice, maxPrice, bedrooms := 200000.0, 500000.0, 2
	pred := search.BuildListingPredicate(domain.SearchCriteria{
		Query:    "sea",
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Bedrooms: &bedrooms,
		City:     "Tunis",
		Features: []string{"parking", "balcony"},
	}, domain.Access{})

	qb, err := applyPredicate(pred)
	require.NoError(t, err)

	assert.Equal(t, "WHERE l.is_published = $1 AND l.status <> $2"+
		` AND (lower(l.title COLLATE "und-x-icu") LIKE $3 ESCAPE '\'`+
		` OR lower(l.description COLLATE "und-x-icu") LIKE $4 ESCAPE '\'`+
		` OR lower(l.address COLLATE "und-x-icu") LIKE $5 ESCAPE '\'`+
		` OR lower(l.city COLLATE "und-x-icu") LIKE $6 ESCAPE '\'`+
		` OR lower(l.zip_code COLLATE "und-x-icu") LIKE $7 ESCAPE '\')`+
		" AND l.price >= $8 AND l.price <= $9 AND l.bedrooms >= $10"+
		` AND lower(l.city COLLATE "und-x-icu") LIKE $11 ESCAPE '\' AND l.features @> $12::text[]`, qb.where())

	assert.Equal(t, []interface{}{
		true, domain.StatusSold,
		"%sea%", "%sea%", "%sea%", "%sea%", "%sea%",
		200000.0, 500000.0, 2,
		"%tunis%", []string{"parking", "balcony"},
	}, qb.args)
}

func TestApplyPredicate_EscapesLikeWildcards(t *testing.T) {
	qb, err := applyPredicate(domain.Predicate{Conditions: []domain.Condition{
		domain.Contains(domain.FieldTitle, `100%_OFF\`),
	}})

	require.NoError(t, err)
	assert.Equal(t, []interface{}{`%100\%\_off\\%`}, qb.args)
}

func TestApplyPredicate_TextMatchUsesExplicitCollation(t *testing.T) {
	qb, err := applyPredicate(domain.Predicate{Conditions: []domain.Condition{
		domain.Contains(domain.FieldCity, "ÉLÉGANT Saint-Étienne"),
	}})

	require.NoError(t, err)
	assert.Equal(t, `WHERE lower(l.city COLLATE "und-x-icu") LIKE $1 ESCAPE '\'`, qb.where())
	assert.NotContains(t, qb.where(), "ILIKE")
	assert.Equal(t, []interface{}{"%élégant saint-étienne%"}, qb.args)
}

func TestApplyPredicate_PlaceholdersContinueAfterWhere(t *testing.T) {
	qb, err := applyPredicate(search.VisibilityPredicate(domain.Access{}))
	require.NoError(t, err)

	qb.where()
	assert.Equal(t, "$3", qb.placeholder(12))
	assert.Equal(t, "$4", qb.placeholder(0))
	assert.Len(t, qb.args, 4)
}

func TestApplyPredicate_RejectsBadConditions(t *testing.T) {
	_, err := applyPredicate(domain.Predicate{Conditions: []domain.Condition{{Field: "owner_id; DROP TABLE", Op: domain.OpEq, Value: 1}}})
	assert.Error(t, err)

	_, err = applyPredicate(domain.Predicate{Conditions: []domain.Condition{{Field: domain.FieldTitle, Op: domain.OpContains, Value: 5}}})
	assert.Error(t, err)

	_, err = applyPredicate(domain.Predicate{Conditions: []domain.Condition{{Field: domain.FieldFeatures, Op: domain.OpContainsAll, Value: "pool"}}})
	assert.Error(t, err)
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "ORDER BY l.created_at DESC, l.id ASC", orderClause(domain.DefaultSort))
	assert.Equal(t, "ORDER BY l.price ASC, l.id ASC", orderClause(domain.Sort{Field: domain.SortByPrice, Order: domain.SortAsc}))
	assert.Equal(t, "ORDER BY l.created_at DESC, l.id ASC", orderClause(domain.Sort{Field: "owner_id", Order: "sideways"}))
	assert.Equal(t, `ORDER BY lower(l.title COLLATE "und-x-icu") COLLATE "C" ASC, l.id ASC`, orderClause(domain.Sort{Field: domain.SortByTitle, Order: domain.SortAsc}))
}

func TestBlogFilterQuery(t *testing.T) {
	where, args := blogFilterQuery(domain.BlogFilter{})
	assert.Equal(t, "WHERE b.is_published = true", where)
	assert.Empty(t, args)

	where, args = blogFilterQuery(domain.BlogFilter{Query: "Crédit 50%", Category: "finance"})
	assert.Equal(t, "WHERE b.is_published = true"+
		` AND (lower(b.title COLLATE "und-x-icu") LIKE $1 ESCAPE '\' OR lower(b.excerpt COLLATE "und-x-icu") LIKE $1 ESCAPE '\')`+
		" AND b.category = $2", where)
	assert.Equal(t, []interface{}{`%crédit 50\%%`, "finance"}, args)
}
