package catalog

// The query contract between the engine and a recipe store is an explicit
// boolean expression tree. Leaves test a single recipe field; And/Or/Not
// combine them. Keeping the kinds closed and dispatching through switches
// means a new leaf kind is a compile-time-visible change in every store.

// Field names a queryable recipe attribute.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldCuisine     Field = "cuisine"
	FieldCourse      Field = "course"
	FieldIngredients Field = "ingredients"
	FieldDietTags    Field = "diet_tags"
	FieldTotalTime   Field = "total_time_mins"
	FieldCalories    Field = "calories"
	FieldProtein     Field = "protein"
	FieldCarbs       Field = "carbs"
	FieldFat         Field = "fat"
)

// listField reports whether the field holds a string array rather than a
// scalar column.
func listField(f Field) bool {
	return f == FieldIngredients || f == FieldDietTags
}

// numericField reports whether the field holds a number.
func numericField(f Field) bool {
	switch f {
	case FieldTotalTime, FieldCalories, FieldProtein, FieldCarbs, FieldFat:
		return true
	}
	return false
}

// Op is the comparison a Leaf performs.
type Op int

const (
	// OpEquals matches the whole value (or, for list fields, a whole element),
	// case-insensitively.
	OpEquals Op = iota
	// OpContains is a case-insensitive substring match.
	OpContains
	// OpRegex is a case-insensitive regular expression match.
	OpRegex
	// OpIn matches when the value equals any member of the set.
	OpIn
	// OpLessThan and OpGreaterThan compare numeric fields.
	OpLessThan
	OpGreaterThan
)

// Predicate is a node in the query tree.
type Predicate interface {
	pred()
}

// Leaf is a single field condition. Negate inverts it; keeping negation on
// the leaf (rather than only as a Not wrapper) keeps negative conditions
// distinguishable from positive ones when both target the same field.
type Leaf struct {
	Field  Field
	Op     Op
	Str    string
	Set    []string
	Num    float64
	Negate bool
}

// And matches when every child matches. An empty And matches everything.
type And struct {
	Preds []Predicate
}

// Or matches when any child matches. An empty Or matches nothing.
type Or struct {
	Preds []Predicate
}

// Not inverts its child.
type Not struct {
	Pred Predicate
}

func (Leaf) pred() {}
func (And) pred()  {}
func (Or) pred()   {}
func (Not) pred()  {}

// Equals builds a whole-value equality leaf.
func Equals(f Field, value string) Leaf {
	return Leaf{Field: f, Op: OpEquals, Str: value}
}

// Contains builds a case-insensitive substring leaf.
func Contains(f Field, value string) Leaf {
	return Leaf{Field: f, Op: OpContains, Str: value}
}

// NotContains builds a negated substring leaf.
func NotContains(f Field, value string) Leaf {
	return Leaf{Field: f, Op: OpContains, Str: value, Negate: true}
}

// Regex builds a case-insensitive regular-expression leaf.
func Regex(f Field, pattern string) Leaf {
	return Leaf{Field: f, Op: OpRegex, Str: pattern}
}

// In builds a set-membership leaf.
func In(f Field, values ...string) Leaf {
	return Leaf{Field: f, Op: OpIn, Set: values}
}

// LessThan builds a numeric upper-bound leaf.
func LessThan(f Field, n float64) Leaf {
	return Leaf{Field: f, Op: OpLessThan, Num: n}
}

// GreaterThan builds a numeric lower-bound leaf.
func GreaterThan(f Field, n float64) Leaf {
	return Leaf{Field: f, Op: OpGreaterThan, Num: n}
}

// AllOf combines predicates with AND, skipping nils. It returns nil when
// nothing remains, and the sole child when only one does.
func AllOf(preds ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			kept = append(kept, p)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return And{Preds: kept}
}

// AnyOf combines predicates with OR, skipping nils, with the same collapsing
// rules as AllOf.
func AnyOf(preds ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			kept = append(kept, p)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return Or{Preds: kept}
}
