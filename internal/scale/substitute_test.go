package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefinder/backend/internal/models"
)

func TestSuggestions(t *testing.T) {
	r := &models.Recipe{
		Ingredients: models.JSONBStringArray{
			"1 eggplant, diced",
			"2 cups water",
			"1 bunch cilantro",
		},
	}

	suggestions := Suggestions(r)
	require.Len(t, suggestions, 2)

	// Ingredient-list order is preserved.
	assert.Equal(t, "1 eggplant, diced", suggestions[0].Original)
	assert.Equal(t, []string{"aubergine"}, suggestions[0].Substitutes)
	assert.Equal(t, "1 bunch cilantro", suggestions[1].Original)
	assert.ElementsMatch(t, []string{"coriander", "chinese parsley"}, suggestions[1].Substitutes)
}

func TestSuggestionsNoneKnown(t *testing.T) {
	r := &models.Recipe{Ingredients: models.JSONBStringArray{"2 cups water", "1 pinch salt"}}
	assert.Empty(t, Suggestions(r))
}
