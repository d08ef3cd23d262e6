package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefinder/backend/internal/catalog"
)

func TestRankHardFiltersDietAndExclusions(t *testing.T) {
	e := seedEngine()

	ranked := e.Rank(context.Background(), Preferences{
		KeyDiet:              "vegetarian",
		KeyExcludeIngredient: "feta",
	}, nil)

	require.NotEmpty(t, ranked)
	for _, r := range ranked {
		assert.Contains(t, []string(r.DietTags), "vegetarian")
		assert.NotEqual(t, "Greek Salad", r.Name)
		assert.NotEqual(t, "Chicken Tikka Masala", r.Name)
	}
}

func TestRankScoresSoftPreferences(t *testing.T) {
	e := seedEngine()

	ranked := e.Rank(context.Background(), Preferences{
		KeyDiet:    "vegetarian",
		KeyCuisine: "indian",
		KeyCourse:  "dessert",
	}, nil)

	require.NotEmpty(t, ranked)

	// Gulab Jamun satisfies all three (10+5+4); Biryani diet and cuisine
	// (10+5); the rest only diet (10).
	assert.Equal(t, "Gulab Jamun", ranked[0].Name)
	assert.Equal(t, 19.0, ranked[0].Score)
	assert.True(t, ranked[0].Matches[KeyCourse])

	assert.Equal(t, "Vegetable Biryani", ranked[1].Name)
	assert.Equal(t, 15.0, ranked[1].Score)
	assert.False(t, ranked[1].Matches[KeyCourse])
}

func TestRankTiesKeepCatalogOrder(t *testing.T) {
	e := seedEngine()

	ranked := e.Rank(context.Background(), Preferences{
		KeyDiet:    "vegetarian",
		KeyCuisine: "greek",
	}, nil)

	require.Len(t, ranked, 6)
	assert.Equal(t, "Greek Salad", ranked[0].Name)

	// All remaining candidates score the same; the stable sort preserves
	// catalog order among them.
	rest := []string{
		"Vegetable Biryani",
		"Spaghetti Aglio e Olio",
		"Vegan Buddha Bowl",
		"Gulab Jamun",
		"Tomato Basil Bruschetta",
	}
	for i, name := range rest {
		assert.Equal(t, name, ranked[i+1].Name)
	}
}

func TestRankNothingDropped(t *testing.T) {
	e := seedEngine()

	// A preference no recipe satisfies lowers scores but removes nothing.
	ranked := e.Rank(context.Background(), Preferences{KeyCuisine: "martian"}, nil)
	assert.Len(t, ranked, 8)
	for _, r := range ranked {
		assert.Equal(t, 0.0, r.Score)
	}
}

func TestRankCustomWeights(t *testing.T) {
	e := seedEngine()

	ranked := e.Rank(context.Background(), Preferences{
		KeyCuisine: "italian",
		KeyTaste:   "sweet",
	}, Weights{KeyCuisine: 1, KeyTaste: 100})

	require.NotEmpty(t, ranked)
	assert.Equal(t, "Gulab Jamun", ranked[0].Name)
	assert.Equal(t, 100.0, ranked[0].Score)
}

func TestRankCappedAtPageSize(t *testing.T) {
	e := NewEngine(catalog.NewMemoryStore(catalog.SeedRecipes()), Options{PageSize: 3})

	ranked := e.Rank(context.Background(), Preferences{KeyCuisine: "indian"}, nil)
	assert.Len(t, ranked, 3)
}

func TestSatisfiesTimeAndNutrition(t *testing.T) {
	e := seedEngine()

	// Nutrition has no default weight; give it one explicitly.
	ranked := e.Rank(context.Background(), Preferences{
		KeyTime:      "quick",
		KeyNutrition: "high-protein",
	}, Weights{KeyTime: 3, KeyNutrition: 6})

	require.Len(t, ranked, 8)
	// Grilled Salmon is both under 30 minutes and above the protein bar.
	assert.Equal(t, "Grilled Salmon with Lemon", ranked[0].Name)
	assert.Equal(t, 9.0, ranked[0].Score)
}
