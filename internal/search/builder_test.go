package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platefinder/backend/internal/catalog"
	"github.com/platefinder/backend/internal/models"
)

func TestBuildPredicateEmpty(t *testing.T) {
	assert.Nil(t, BuildPredicate(Preferences{}))
}

func TestBuildPredicateTasteIsNotRetrieval(t *testing.T) {
	// taste only influences ranking; it must not narrow retrieval.
	assert.Nil(t, BuildPredicate(Preferences{KeyTaste: "sweet"}))
}

func TestBuildPredicateUnknownDietFailsOpen(t *testing.T) {
	assert.Nil(t, BuildPredicate(Preferences{KeyDiet: "pescatarian"}))
}

func TestBuildPredicateDietExcludesForbiddenIngredients(t *testing.T) {
	p := BuildPredicate(Preferences{KeyDiet: "vegetarian"})

	chicken := &models.Recipe{Ingredients: models.JSONBStringArray{"500 g chicken breast"}}
	veggie := &models.Recipe{Ingredients: models.JSONBStringArray{"2 cups rice", "1 onion"}}

	assert.False(t, catalog.Matches(p, chicken))
	assert.True(t, catalog.Matches(p, veggie))
}

func TestBuildPredicateDietAndIngredientAreSiblings(t *testing.T) {
	// Both constraints target the ingredient list; they must combine with AND
	// so a vegan rice dish matches and a chicken rice dish does not.
	p := BuildPredicate(Preferences{KeyDiet: "vegan", KeyIngredient: "rice"})

	veganRice := &models.Recipe{
		Name:        "Veggie Pilaf",
		Ingredients: models.JSONBStringArray{"1 cup rice", "1 onion"},
	}
	chickenRice := &models.Recipe{
		Name:        "Chicken Biryani",
		Ingredients: models.JSONBStringArray{"1 cup rice", "200 g chicken"},
	}

	assert.True(t, catalog.Matches(p, veganRice))
	assert.False(t, catalog.Matches(p, chickenRice))
}

func TestBuildPredicateIngredientMatchesNameToo(t *testing.T) {
	p := BuildPredicate(Preferences{KeyIngredient: "biryani"})

	// "biryani" is in the rice category; a match on the recipe name counts.
	byName := &models.Recipe{
		Name:        "Hyderabadi Biryani",
		Ingredients: models.JSONBStringArray{"spices"},
	}
	assert.True(t, catalog.Matches(p, byName))
}

func TestBuildPredicateExcludeSplitsAndAnds(t *testing.T) {
	p := BuildPredicate(Preferences{KeyExcludeIngredient: "onion, garlic"})

	both := &models.Recipe{Ingredients: models.JSONBStringArray{"1 onion", "2 cloves garlic"}}
	onlyOnion := &models.Recipe{Ingredients: models.JSONBStringArray{"1 onion"}}
	neither := &models.Recipe{Ingredients: models.JSONBStringArray{"2 tomatoes"}}

	assert.False(t, catalog.Matches(p, both))
	assert.False(t, catalog.Matches(p, onlyOnion))
	assert.True(t, catalog.Matches(p, neither))
}

func TestBuildPredicateCourseChecksNameAndDescription(t *testing.T) {
	p := BuildPredicate(Preferences{KeyCourse: "dessert"})

	inDescription := &models.Recipe{
		Name:        "Gulab Jamun",
		Description: "Classic Indian dessert",
	}
	elsewhere := &models.Recipe{Name: "Greek Salad", Description: "Crisp salad"}

	assert.True(t, catalog.Matches(p, inDescription))
	assert.False(t, catalog.Matches(p, elsewhere))
}

func TestBuildPredicateTimeUnparsedIgnored(t *testing.T) {
	p := BuildPredicate(Preferences{KeyTime: "whenever", KeyCuisine: "indian"})

	slow := &models.Recipe{Cuisine: "Indian", TotalTimeMins: 300}
	assert.True(t, catalog.Matches(p, slow), "unparseable time adds no constraint")
}

func TestBuildPredicateNutrition(t *testing.T) {
	p := BuildPredicate(Preferences{KeyNutrition: "high-protein"})

	lean := &models.Recipe{Protein: 42}
	light := &models.Recipe{Protein: 9}
	assert.True(t, catalog.Matches(p, lean))
	assert.False(t, catalog.Matches(p, light))
}
