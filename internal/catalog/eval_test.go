package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platefinder/backend/internal/models"
)

func evalRecipe() *models.Recipe {
	return &models.Recipe{
		Name:          "Vegetable Biryani",
		Description:   "Fragrant rice main course",
		Cuisine:       "Indian",
		Course:        "main course",
		Ingredients:   models.JSONBStringArray{"2 cups basmati rice", "1 onion", "2 tablespoons ghee"},
		DietTags:      models.JSONBStringArray{"vegetarian", "gluten-free"},
		TotalTimeMins: 50,
		Calories:      420,
		Protein:       9,
	}
}

func TestMatchesNilPredicate(t *testing.T) {
	assert.True(t, Matches(nil, evalRecipe()))
}

func TestMatchesLeafOps(t *testing.T) {
	r := evalRecipe()

	assert.True(t, Matches(Contains(FieldName, "biryani"), r))
	assert.False(t, Matches(Contains(FieldName, "salad"), r))

	assert.True(t, Matches(Equals(FieldDietTags, "Vegetarian"), r))
	assert.False(t, Matches(Equals(FieldDietTags, "vegan"), r))

	assert.True(t, Matches(Contains(FieldIngredients, "ghee"), r))
	assert.False(t, Matches(NotContains(FieldIngredients, "ghee"), r))
	assert.True(t, Matches(NotContains(FieldIngredients, "chicken"), r))

	assert.True(t, Matches(LessThan(FieldTotalTime, 60), r))
	assert.False(t, Matches(LessThan(FieldTotalTime, 50), r))
	assert.True(t, Matches(GreaterThan(FieldCalories, 400), r))

	assert.True(t, Matches(In(FieldCuisine, "italian", "indian"), r))
	assert.False(t, Matches(In(FieldCuisine, "italian", "greek"), r))

	assert.True(t, Matches(Regex(FieldIngredients, "rice|pasta"), r))
	assert.False(t, Matches(Regex(FieldIngredients, "("), r), "invalid pattern matches nothing")
}

func TestMatchesCombinators(t *testing.T) {
	r := evalRecipe()

	assert.True(t, Matches(And{Preds: []Predicate{
		Contains(FieldCuisine, "indian"),
		LessThan(FieldTotalTime, 60),
	}}, r))
	assert.False(t, Matches(And{Preds: []Predicate{
		Contains(FieldCuisine, "indian"),
		Contains(FieldCuisine, "italian"),
	}}, r))

	assert.True(t, Matches(Or{Preds: []Predicate{
		Contains(FieldCuisine, "italian"),
		Contains(FieldCuisine, "indian"),
	}}, r))

	assert.False(t, Matches(Not{Pred: Contains(FieldCuisine, "indian")}, r))

	// Empty And matches everything, empty Or nothing.
	assert.True(t, Matches(And{}, r))
	assert.False(t, Matches(Or{}, r))
}
