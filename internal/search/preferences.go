package search

// Key identifies one kind of user constraint in a preference map.
type Key string

const (
	KeyDiet              Key = "diet"
	KeyCuisine           Key = "cuisine"
	KeyIngredient        Key = "ingredient"
	KeyExcludeIngredient Key = "exclude_ingredient"
	KeyCourse            Key = "course"
	KeyTime              Key = "time"
	KeyTaste             Key = "taste"
	KeyNutrition         Key = "nutrition"
)

// Preferences is the normalized constraint map for one search call. A key is
// present only when the user stated that constraint; absence means
// "no opinion" and is not the same as an empty value.
type Preferences map[Key]string

// RelaxationOrder lists preference keys from least to most important. When a
// search comes back empty, constraints are dropped in exactly this order.
// Diet is last: it encodes hard dietary and medical restrictions. The order
// is a design invariant, not a per-call option.
var RelaxationOrder = []Key{
	KeyTime,
	KeyTaste,
	KeyExcludeIngredient,
	KeyIngredient,
	KeyCourse,
	KeyCuisine,
	KeyDiet,
}

// Clone returns an independent copy of the map.
func (p Preferences) Clone() Preferences {
	out := make(Preferences, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Has reports whether the constraint was stated.
func (p Preferences) Has(k Key) bool {
	_, ok := p[k]
	return ok
}

// sortedKeys returns the present keys, relaxation order first, then any keys
// outside the relaxation order (such as nutrition) in a fixed trailing
// position. Used when every constraint must be reported as relaxed.
func (p Preferences) sortedKeys() []Key {
	var keys []Key
	seen := make(map[Key]bool, len(p))
	for _, k := range RelaxationOrder {
		if p.Has(k) {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	for _, k := range []Key{KeyNutrition} {
		if p.Has(k) && !seen[k] {
			keys = append(keys, k)
		}
	}
	return keys
}
