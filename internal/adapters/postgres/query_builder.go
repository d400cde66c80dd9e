package postgres

import (
	"fmt"
	"strings"

	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/search"
)

// columns - соответствие полей предиката колонкам таблицы listings
var columns = map[domain.Field]string{
	domain.FieldTitle:       "l.title",
	domain.FieldDescription: "l.description",
	domain.FieldAddress:     "l.address",
	domain.FieldCity:        "l.city",
	domain.FieldZipCode:     "l.zip_code",
	domain.FieldType:        "l.type",
	domain.FieldCategory:    "l.category",
	domain.FieldStatus:      "l.status",
	domain.FieldPrice:       "l.price",
	domain.FieldSurface:     "l.surface",
	domain.FieldRooms:       "l.rooms",
	domain.FieldBedrooms:    "l.bedrooms",
	domain.FieldBathrooms:   "l.bathrooms",
	domain.FieldFeatures:    "l.features",
	domain.FieldPublished:   "l.is_published",
	domain.FieldFeatured:    "l.is_featured",
}

var sortColumns = map[domain.SortField]string{
	domain.SortByCreatedAt: "l.created_at",
	domain.SortByPrice:     "l.price",
	domain.SortBySurface:   "l.surface",
	domain.SortByViews:     "l.views",
	domain.SortByBedrooms:  "l.bedrooms",
	domain.SortByTitle:     foldedColumn("l.title") + ` COLLATE "C"`,
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// textCollation - ICU-правила корневой локали, не зависят от LC_CTYPE базы
const textCollation = `"und-x-icu"`

// foldedColumn приводит колонку к той же форме, что и search.FoldText.
// Выражение совпадает с trgm-индексами в миграции.
func foldedColumn(col string) string {
	return fmt.Sprintf("lower(%s COLLATE %s)", col, textCollation)
}

// containsPattern - шаблон LIKE для подстроки: свернутый регистр, экранированные % _ \
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(search.FoldText(s)) + "%"
}

func containsCondition(col, placeholder string) string {
	return fmt.Sprintf(`%s LIKE %s ESCAPE '\'`, foldedColumn(col), placeholder)
}

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

// placeholder регистрирует аргумент и возвращает его номер в запросе
func (qb *queryBuilder) placeholder(arg interface{}) string {
	p := fmt.Sprintf("$%d", qb.argId)
	qb.args = append(qb.args, arg)
	qb.argId++
	return p
}

func (qb *queryBuilder) render(c domain.Condition) (string, error) {
	if len(c.Any) > 0 {
		parts := make([]string, 0, len(c.Any))
		for _, sub := range c.Any {
			sql, err := qb.render(sub)
			if err != nil {
				return "", err
			}
			parts = append(parts, sql)
		}
		return "(" + strings.Join(parts, " OR ") + ")", nil
	}

	col, ok := columns[c.Field]
	if !ok {
		return "", fmt.Errorf("unknown predicate field %q", c.Field)
	}

	switch c.Op {
	case domain.OpEq:
		return fmt.Sprintf("%s = %s", col, qb.placeholder(c.Value)), nil
	case domain.OpNotEq:
		return fmt.Sprintf("%s <> %s", col, qb.placeholder(c.Value)), nil
	case domain.OpGte:
		return fmt.Sprintf("%s >= %s", col, qb.placeholder(c.Value)), nil
	case domain.OpLte:
		return fmt.Sprintf("%s <= %s", col, qb.placeholder(c.Value)), nil
	case domain.OpContains:
		s, ok := c.Value.(string)
		if !ok {
			return "", fmt.Errorf("contains on %q expects string, got %T", c.Field, c.Value)
		}
		return containsCondition(col, qb.placeholder(containsPattern(s))), nil
	case domain.OpContainsAll:
		values, ok := c.Value.([]string)
		if !ok {
			return "", fmt.Errorf("contains_all on %q expects []string, got %T", c.Field, c.Value)
		}
		return fmt.Sprintf("%s @> %s::text[]", col, qb.placeholder(values)), nil
	default:
		return "", fmt.Errorf("unsupported operator %s", c.Op)
	}
}

func (qb *queryBuilder) addPredicate(pred domain.Predicate) error {
	for _, c := range pred.Conditions {
		sql, err := qb.render(c)
		if err != nil {
			return err
		}
		qb.conditions = append(qb.conditions, sql)
	}
	return nil
}

// where возвращает WHERE (или пустую строку); аргументы копятся в qb.args
func (qb *queryBuilder) where() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

// applyPredicate - главный метод, переводит предикат в условия билдера
func applyPredicate(pred domain.Predicate) (*queryBuilder, error) {
	qb := newQueryBuilder()
	if err := qb.addPredicate(pred); err != nil {
		return nil, err
	}
	return qb, nil
}

// orderClause: один ключ сортировки и id ASC для стабильной пагинации
func orderClause(sort domain.Sort) string {
	col, ok := sortColumns[sort.Field]
	if !ok {
		col = sortColumns[domain.SortByCreatedAt]
	}
	dir := "DESC"
	if sort.Order == domain.SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s, l.id ASC", col, dir)
}
