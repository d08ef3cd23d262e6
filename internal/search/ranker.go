package search

import (
	"context"
	"sort"
	"strings"

	"github.com/platefinder/backend/internal/catalog"
	"github.com/platefinder/backend/internal/models"
	"github.com/platefinder/backend/internal/taxonomy"
)

// Weights assigns a score contribution to each preference key a candidate
// satisfies.
type Weights map[Key]float64

// DefaultWeights orders preference keys by how much a user cares when they
// state them: dietary restrictions dominate, taste barely nudges.
func DefaultWeights() Weights {
	return Weights{
		KeyDiet:              10,
		KeyExcludeIngredient: 8,
		KeyCuisine:           5,
		KeyCourse:            4,
		KeyTime:              3,
		KeyIngredient:        2,
		KeyTaste:             1,
	}
}

// RankedRecipe is a candidate with its score and the per-key match flags that
// explain it.
type RankedRecipe struct {
	models.Recipe
	Score   float64      `json:"score"`
	Matches map[Key]bool `json:"matches"`
}

// Rank is the soft alternative to relaxation: only diet and ingredient
// exclusions filter the candidate pool; every other preference contributes to
// a score instead of excluding anything. Candidates come back sorted by
// descending score with ties preserving catalog order (the sort is stable),
// capped at the page size. Nothing is dropped, so no relaxed keys are ever
// reported for this mode.
func (e *Engine) Rank(ctx context.Context, prefs Preferences, weights Weights) []RankedRecipe {
	if len(weights) == 0 {
		weights = DefaultWeights()
	}

	sess := e.session()
	pool := sess.find(ctx, hardPredicate(prefs), e.opts.PoolSize)

	ranked := make([]RankedRecipe, 0, len(pool))
	for i := range pool {
		score := 0.0
		matches := make(map[Key]bool)
		for key, weight := range weights {
			value, stated := prefs[key]
			if !stated {
				continue
			}
			if satisfies(&pool[i], key, value) {
				score += weight
				matches[key] = true
			}
		}
		ranked = append(ranked, RankedRecipe{Recipe: pool[i], Score: score, Matches: matches})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > e.opts.PageSize {
		ranked = ranked[:e.opts.PageSize]
	}
	return ranked
}

// hardPredicate keeps only the constraints that must never be violated:
// diet tags and ingredient exclusions.
func hardPredicate(prefs Preferences) catalog.Predicate {
	var parts []catalog.Predicate
	if v, ok := prefs[KeyDiet]; ok {
		parts = append(parts, catalog.Contains(catalog.FieldDietTags, v))
	}
	if v, ok := prefs[KeyExcludeIngredient]; ok {
		for _, token := range splitList(v) {
			parts = append(parts, catalog.NotContains(catalog.FieldIngredients, token))
		}
	}
	return catalog.AllOf(parts...)
}

// satisfies evaluates one soft preference against one recipe as a boolean.
func satisfies(r *models.Recipe, key Key, value string) bool {
	v := strings.ToLower(value)
	switch key {
	case KeyDiet:
		for _, tag := range r.DietTags {
			if strings.Contains(strings.ToLower(tag), v) {
				return true
			}
		}

	case KeyExcludeIngredient:
		for _, token := range splitList(v) {
			if ingredientListed(r, token) {
				return false
			}
		}
		return true

	case KeyCuisine:
		return strings.Contains(strings.ToLower(r.Cuisine), v)

	case KeyCourse:
		return strings.Contains(strings.ToLower(r.Name), v) ||
			strings.Contains(strings.ToLower(r.Description), v)

	case KeyTime:
		if limit, ok := ParseTimeLimit(v); ok {
			return r.TotalTimeMins < limit
		}

	case KeyIngredient:
		for _, term := range taxonomy.ExpandIngredient(v) {
			if ingredientListed(r, term) || strings.Contains(strings.ToLower(r.Name), term) {
				return true
			}
		}

	case KeyTaste:
		return strings.Contains(strings.ToLower(r.Taste), v) ||
			strings.Contains(strings.ToLower(r.Name), v) ||
			strings.Contains(strings.ToLower(r.Description), v)

	case KeyNutrition:
		if p := catalog.AllOf(NutritionPredicates(v)...); p != nil {
			return catalog.Matches(p, r)
		}
	}
	return false
}

func ingredientListed(r *models.Recipe, term string) bool {
	t := strings.ToLower(term)
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), t) {
			return true
		}
	}
	return false
}
