package domain

// Field - закрытый набор полей объявления, по которым строятся условия
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldAddress     Field = "address"
	FieldCity        Field = "city"
	FieldZipCode     Field = "zip_code"
	FieldType        Field = "type"
	FieldCategory    Field = "category"
	FieldStatus      Field = "status"
	FieldPrice       Field = "price"
	FieldSurface     Field = "surface"
	FieldRooms       Field = "rooms"
	FieldBedrooms    Field = "bedrooms"
	FieldBathrooms   Field = "bathrooms"
	FieldFeatures    Field = "features"
	FieldPublished   Field = "is_published"
	FieldFeatured    Field = "is_featured"
)

// Operator - операция сравнения
type Operator int

const (
	OpEq Operator = iota
	OpNotEq
	OpGte
	OpLte
	OpContains    // подстрока без учета регистра
	OpContainsAll // множество поля содержит все значения
)

func (o Operator) String() string {
	switch o {
	case OpEq:
		return "eq"
	case OpNotEq:
		return "neq"
	case OpGte:
		return "gte"
	case OpLte:
		return "lte"
	case OpContains:
		return "contains"
	case OpContainsAll:
		return "contains_all"
	default:
		return "unknown"
	}
}

// Condition - одно условие. Если Any не пуст, условие истинно,
// когда истинно хотя бы одно из вложенных (Field/Op/Value игнорируются).
//
// Тип Value зависит от поля: string для текстовых и enum полей,
// float64 для price/surface, int для комнат, bool для флагов, []string для features.
type Condition struct {
	Field Field
	Op    Operator
	Value any
	Any   []Condition
}

// Predicate - конъюнкция условий
type Predicate struct {
	Conditions []Condition
}

// IsEmpty - нет ни одного условия, подходит всё
func (p Predicate) IsEmpty() bool {
	return len(p.Conditions) == 0
}

// And возвращает новый предикат с добавленными условиями
func (p Predicate) And(conds ...Condition) Predicate {
	merged := make([]Condition, 0, len(p.Conditions)+len(conds))
	merged = append(merged, p.Conditions...)
	merged = append(merged, conds...)
	return Predicate{Conditions: merged}
}

func Eq(field Field, value any) Condition {
	return Condition{Field: field, Op: OpEq, Value: value}
}

func NotEq(field Field, value any) Condition {
	return Condition{Field: field, Op: OpNotEq, Value: value}
}

func Gte(field Field, value any) Condition {
	return Condition{Field: field, Op: OpGte, Value: value}
}

func Lte(field Field, value any) Condition {
	return Condition{Field: field, Op: OpLte, Value: value}
}

func Contains(field Field, value string) Condition {
	return Condition{Field: field, Op: OpContains, Value: value}
}

func ContainsAll(field Field, values []string) Condition {
	return Condition{Field: field, Op: OpContainsAll, Value: values}
}

func AnyOf(conds ...Condition) Condition {
	return Condition{Any: conds}
}
