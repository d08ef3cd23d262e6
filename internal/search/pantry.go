package search

import (
	"context"
	"sort"
	"strings"

	"github.com/platefinder/backend/internal/models"
)

// PantryMatch is a recipe annotated with how much of it the user can already
// cook: the covered fraction of its ingredient list and how many ingredients
// are still missing.
type PantryMatch struct {
	models.Recipe
	MatchFraction float64 `json:"match_fraction"`
	MissingCount  int     `json:"missing_count"`
}

// MatchPantry ranks recipes by the fraction of their ingredients covered by
// what the user has on hand. Coverage is a bidirectional substring test, so
// "tomatoes" covers "3 tomatoes, chopped" and vice versa. Recipes below
// minFraction are dropped; pass 0 for the configured default. Recipes with no
// ingredients never qualify. Results sort by fraction descending, ties by
// fewest missing ingredients.
func (e *Engine) MatchPantry(ctx context.Context, available []string, minFraction float64) []PantryMatch {
	if minFraction <= 0 {
		minFraction = e.opts.MinMatchFraction
	}

	items := make([]string, 0, len(available))
	for _, item := range available {
		if v := strings.ToLower(strings.TrimSpace(item)); v != "" {
			items = append(items, v)
		}
	}
	if len(items) == 0 {
		return nil
	}

	sess := e.session()
	pool := sess.find(ctx, nil, e.opts.PoolSize)

	var matches []PantryMatch
	for i := range pool {
		total := len(pool[i].Ingredients)
		if total == 0 {
			// Guard against dividing by zero: an empty ingredient list counts
			// as a 0.0 match and can never qualify.
			continue
		}

		covered := 0
		for _, ing := range pool[i].Ingredients {
			line := strings.ToLower(ing)
			for _, item := range items {
				if strings.Contains(line, item) || strings.Contains(item, line) {
					covered++
					break
				}
			}
		}

		fraction := float64(covered) / float64(total)
		if fraction >= minFraction {
			matches = append(matches, PantryMatch{
				Recipe:        pool[i],
				MatchFraction: fraction,
				MissingCount:  total - covered,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchFraction != matches[j].MatchFraction {
			return matches[i].MatchFraction > matches[j].MatchFraction
		}
		return matches[i].MissingCount < matches[j].MissingCount
	})
	return matches
}
