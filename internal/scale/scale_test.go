package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platefinder/backend/internal/models"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"2", 2, true},
		{"1.5", 1.5, true},
		{"1/2", 0.5, true},
		{"1 1/2", 1.5, true},
		{"3/4", 0.75, true},
		{"1/0", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseQuantity(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if ok {
			assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.in)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "2", FormatQuantity(2))
	assert.Equal(t, "1/2", FormatQuantity(0.5))
	assert.Equal(t, "3/4", FormatQuantity(0.75))
	assert.Equal(t, "1 1/2", FormatQuantity(1.5))
	assert.Equal(t, "a pinch", FormatQuantity(0.1))
	assert.Equal(t, "1/3", FormatQuantity(0.33))
}

func TestIngredientScaling(t *testing.T) {
	assert.Equal(t, "4 cups basmati rice", Ingredient("2 cups basmati rice", 2))
	assert.Equal(t, "1 cup olive oil", Ingredient("1/2 cup olive oil", 2))
	assert.Equal(t, "3/4 cup sugar", Ingredient("1 1/2 cup sugar", 0.5))
	assert.Equal(t, "salt to taste", Ingredient("salt to taste", 2))
	assert.Equal(t, "a pinch of nutmeg", Ingredient("a pinch of nutmeg", 3))
	assert.Equal(t, "fresh parsley", Ingredient("fresh parsley", 2), "no quantity, no change")
}

func TestRecipeScalingPreservesOrderAndServings(t *testing.T) {
	r := models.Recipe{
		Servings: 4,
		Ingredients: models.JSONBStringArray{
			"2 cups basmati rice",
			"1 onion",
			"salt to taste",
		},
	}

	scaled := Recipe(r, 2)
	assert.Equal(t, 8, scaled.Servings)
	assert.Equal(t, models.JSONBStringArray{
		"4 cups basmati rice",
		"2 onion",
		"salt to taste",
	}, scaled.Ingredients)

	// The original recipe is untouched.
	assert.Equal(t, 4, r.Servings)
	assert.Equal(t, "2 cups basmati rice", r.Ingredients[0])
}

func TestRecipeScalingInvalidFactor(t *testing.T) {
	r := models.Recipe{Servings: 4, Ingredients: models.JSONBStringArray{"1 onion"}}
	assert.Equal(t, r, Recipe(r, 0))
	assert.Equal(t, r, Recipe(r, -1))
}

func TestRecipeScalingRoundTrip(t *testing.T) {
	r := models.Recipe{
		Servings:    4,
		Ingredients: models.JSONBStringArray{"2 cups rice", "4 tomatoes"},
	}

	back := Recipe(Recipe(r, 2), 0.5)
	assert.Equal(t, r.Servings, back.Servings)
	assert.Equal(t, r.Ingredients, back.Ingredients)
}

func TestServingsNeverBelowOne(t *testing.T) {
	r := models.Recipe{Servings: 2, Ingredients: models.JSONBStringArray{"1 egg"}}
	scaled := Recipe(r, 0.1)
	assert.Equal(t, 1, scaled.Servings)
}
