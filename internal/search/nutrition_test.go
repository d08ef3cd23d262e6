package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/platefinder/backend/internal/catalog"
	"github.com/platefinder/backend/internal/models"
)

func TestNutritionPredicatesKeywords(t *testing.T) {
	assert.Len(t, NutritionPredicates("low-carb"), 1)
	assert.Len(t, NutritionPredicates("keto"), 2)
	assert.Len(t, NutritionPredicates("balanced"), 4)
	assert.Empty(t, NutritionPredicates("delicious"))
}

func TestNutritionPredicatesExplicitForms(t *testing.T) {
	preds := NutritionPredicates("under 500 calories")
	assert.Len(t, preds, 1)

	light := &models.Recipe{Calories: 450}
	heavy := &models.Recipe{Calories: 650}
	p := catalog.AllOf(preds...)
	assert.True(t, catalog.Matches(p, light))
	assert.False(t, catalog.Matches(p, heavy))

	protein := NutritionPredicates("at least 30g of protein")
	assert.Len(t, protein, 1)
	assert.True(t, catalog.Matches(catalog.AllOf(protein...), &models.Recipe{Protein: 42}))
	assert.False(t, catalog.Matches(catalog.AllOf(protein...), &models.Recipe{Protein: 12}))
}

func TestNutritionPredicatesKeto(t *testing.T) {
	p := catalog.AllOf(NutritionPredicates("keto dinner")...)

	salmon := &models.Recipe{Carbs: 3, Fat: 30}
	pasta := &models.Recipe{Carbs: 78, Fat: 18}
	assert.True(t, catalog.Matches(p, salmon))
	assert.False(t, catalog.Matches(p, pasta))
}
