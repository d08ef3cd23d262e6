package search

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platefinder/backend/internal/catalog"
	"github.com/platefinder/backend/internal/models"
)

func seedEngine() *Engine {
	return NewEngine(catalog.NewMemoryStore(catalog.SeedRecipes()), Options{})
}

func TestSearchFullMatchNothingRelaxed(t *testing.T) {
	e := seedEngine()

	result := e.Search(context.Background(), Preferences{
		KeyDiet:    "vegan",
		KeyCuisine: "italian",
		KeyTime:    "quick",
	})

	require.NotEmpty(t, result.Results)
	assert.Empty(t, result.Relaxed)
	for _, r := range result.Results {
		assert.Contains(t, []string(r.DietTags), "vegan")
	}
}

func TestSearchRelaxesLeastImportantFirst(t *testing.T) {
	e := seedEngine()

	// No vegan Indian recipe exists in the seed set. Time goes first, then
	// cuisine; diet survives.
	result := e.Search(context.Background(), Preferences{
		KeyDiet:    "vegan",
		KeyCuisine: "indian",
		KeyTime:    "quick",
	})

	require.NotEmpty(t, result.Results)
	assert.Equal(t, []Key{KeyTime, KeyCuisine}, result.Relaxed)
}

func TestSearchDietOnlyFallback(t *testing.T) {
	e := seedEngine()

	// Four impossible soft constraints exhaust the relaxation budget before
	// cuisine can be dropped; the diet-only retry still honors vegetarian and
	// reports everything else relaxed.
	result := e.Search(context.Background(), Preferences{
		KeyDiet:       "vegetarian",
		KeyCuisine:    "french",
		KeyIngredient: "snails",
		KeyCourse:     "amuse-bouche",
		KeyTime:       "5 minutes",
	})

	require.NotEmpty(t, result.Results)
	assert.Equal(t, []Key{KeyTime, KeyIngredient, KeyCourse, KeyCuisine}, result.Relaxed)
	for _, r := range result.Results {
		assert.Contains(t, []string(r.DietTags), "vegetarian")
	}
}

func TestSearchUnfilteredFallback(t *testing.T) {
	e := seedEngine()

	// Impossible constraints without a diet end in an unfiltered sample with
	// every stated key reported relaxed, in relaxation order.
	result := e.Search(context.Background(), Preferences{
		KeyCuisine:    "martian",
		KeyIngredient: "regolith",
		KeyCourse:     "airlock snack",
		KeyTime:       "1 minutes",
		KeyTaste:      "metallic",
	})

	require.NotEmpty(t, result.Results)
	assert.Equal(t, []Key{KeyTime, KeyTaste, KeyIngredient, KeyCourse, KeyCuisine}, result.Relaxed)
}

func TestSearchIsTotalOnEmptyCatalog(t *testing.T) {
	e := NewEngine(catalog.NewMemoryStore(nil), Options{})

	result := e.Search(context.Background(), Preferences{KeyCuisine: "indian"})
	assert.Empty(t, result.Results)
	assert.Equal(t, []Key{KeyCuisine}, result.Relaxed)
}

func TestSearchResultsCappedAtPageSize(t *testing.T) {
	e := NewEngine(catalog.NewMemoryStore(catalog.SeedRecipes()), Options{PageSize: 2})

	result := e.Search(context.Background(), Preferences{})
	assert.Len(t, result.Results, 2)
}

// failingStore satisfies catalog.Store but every call errors, standing in for
// an unreachable database.
type failingStore struct{}

func (failingStore) Find(ctx context.Context, p catalog.Predicate, limit, skip int) ([]models.Recipe, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Count(ctx context.Context, p catalog.Predicate) (int64, error) {
	return 0, errors.New("connection refused")
}

func (failingStore) Get(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	return nil, errors.New("connection refused")
}

func TestSearchFallsBackToSeedsOnStoreError(t *testing.T) {
	e := NewEngine(failingStore{}, Options{})

	result := e.Search(context.Background(), Preferences{KeyCuisine: "indian"})
	require.NotEmpty(t, result.Results)
	assert.Empty(t, result.Relaxed)
	for _, r := range result.Results {
		assert.Equal(t, "Indian", r.Cuisine)
	}
}
