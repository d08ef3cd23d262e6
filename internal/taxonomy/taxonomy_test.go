package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDietExclusionTerms(t *testing.T) {
	terms, ok := DietExclusionTerms("vegetarian")
	assert.True(t, ok)
	assert.Contains(t, terms, "chicken")
	assert.Contains(t, terms, "salmon")
	assert.NotContains(t, terms, "milk")

	vegan, ok := DietExclusionTerms("Vegan")
	assert.True(t, ok)
	assert.Contains(t, vegan, "milk")
	assert.Contains(t, vegan, "egg")
	assert.Contains(t, vegan, "honey")

	_, ok = DietExclusionTerms("pescatarian")
	assert.False(t, ok)
}

func TestDietExclusionTermsNormalizesSpaces(t *testing.T) {
	spaced, ok := DietExclusionTerms("gluten free")
	assert.True(t, ok)
	hyphened, _ := DietExclusionTerms("gluten-free")
	assert.Equal(t, hyphened, spaced)
}

func TestExpandIngredientCategoryName(t *testing.T) {
	terms := ExpandIngredient("pasta")
	assert.Contains(t, terms, "spaghetti")
	assert.Contains(t, terms, "penne")
}

func TestExpandIngredientCategoryMember(t *testing.T) {
	// A member widens to its whole category.
	terms := ExpandIngredient("spaghetti")
	assert.Contains(t, terms, "pasta")
	assert.Contains(t, terms, "lasagna")
}

func TestExpandIngredientVerbatim(t *testing.T) {
	assert.Equal(t, []string{"saffron"}, ExpandIngredient(" Saffron "))
}

func TestSubstitutesFor(t *testing.T) {
	subs := SubstitutesFor("2 cups heavy cream, chilled")
	assert.ElementsMatch(t, []string{"double cream", "whipping cream"}, subs)

	// Reverse direction: a known substitute maps back to the canonical name.
	assert.Equal(t, []string{"eggplant"}, SubstitutesFor("1 large aubergine"))

	assert.Nil(t, SubstitutesFor("1 pinch saffron"))
}
