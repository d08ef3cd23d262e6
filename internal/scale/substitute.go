package scale

import (
	"github.com/platefinder/backend/internal/models"
	"github.com/platefinder/backend/internal/taxonomy"
)

// Suggestion pairs an ingredient line with known alternatives a cook could
// use instead.
type Suggestion struct {
	Original    string   `json:"original"`
	Substitutes []string `json:"substitutes"`
}

// Suggestions lists substitution options for a recipe's ingredients, in
// ingredient-list order. Ingredients with no known substitute are skipped.
func Suggestions(r *models.Recipe) []Suggestion {
	var out []Suggestion
	for _, line := range r.Ingredients {
		if subs := taxonomy.SubstitutesFor(line); len(subs) > 0 {
			out = append(out, Suggestion{Original: line, Substitutes: subs})
		}
	}
	return out
}
