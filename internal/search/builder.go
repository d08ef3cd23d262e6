package search

import (
	"github.com/platefinder/backend/internal/catalog"
	"github.com/platefinder/backend/internal/taxonomy"
)

// BuildPredicate translates a preference map into a catalog predicate tree.
// Every stated constraint becomes one condition ANDed at the top level;
// conditions that are themselves OR pairs (course over name/description,
// ingredient over list/name) stay parenthesized as a unit. Constraints that
// fail to parse contribute nothing rather than failing the call.
//
// taste deliberately produces no retrieval condition: it only influences
// weighted ranking. A diet exclusion and an ingredient inclusion that target
// the ingredient list at the same time are ANDed as siblings.
func BuildPredicate(prefs Preferences) catalog.Predicate {
	var parts []catalog.Predicate

	if v, ok := prefs[KeyDiet]; ok {
		parts = append(parts, dietCondition(v))
	}
	if v, ok := prefs[KeyCuisine]; ok {
		parts = append(parts, catalog.Contains(catalog.FieldCuisine, v))
	}
	if v, ok := prefs[KeyIngredient]; ok {
		parts = append(parts, ingredientCondition(v))
	}
	if v, ok := prefs[KeyExcludeIngredient]; ok {
		for _, token := range splitList(v) {
			parts = append(parts, catalog.NotContains(catalog.FieldIngredients, token))
		}
	}
	if v, ok := prefs[KeyCourse]; ok {
		parts = append(parts, catalog.AnyOf(
			catalog.Contains(catalog.FieldName, v),
			catalog.Contains(catalog.FieldDescription, v),
		))
	}
	if v, ok := prefs[KeyTime]; ok {
		if limit, parsed := ParseTimeLimit(v); parsed {
			parts = append(parts, catalog.LessThan(catalog.FieldTotalTime, float64(limit)))
		}
	}
	if v, ok := prefs[KeyNutrition]; ok {
		parts = append(parts, NutritionPredicates(v)...)
	}

	return catalog.AllOf(parts...)
}

// dietCondition requires that no forbidden ingredient for the diet appears in
// the ingredient list. Unknown diet tokens fail open (no condition).
func dietCondition(diet string) catalog.Predicate {
	terms, ok := taxonomy.DietExclusionTerms(diet)
	if !ok {
		return nil
	}
	forbidden := make([]catalog.Predicate, 0, len(terms))
	for _, t := range terms {
		forbidden = append(forbidden, catalog.Contains(catalog.FieldIngredients, t))
	}
	return catalog.Not{Pred: catalog.AnyOf(forbidden...)}
}

// ingredientCondition expands the token through the category table, then
// accepts a match in either the ingredient list or the recipe name.
func ingredientCondition(token string) catalog.Predicate {
	terms := taxonomy.ExpandIngredient(token)
	alts := make([]catalog.Predicate, 0, 2*len(terms))
	for _, t := range terms {
		alts = append(alts, catalog.Contains(catalog.FieldIngredients, t))
	}
	for _, t := range terms {
		alts = append(alts, catalog.Contains(catalog.FieldName, t))
	}
	return catalog.AnyOf(alts...)
}
