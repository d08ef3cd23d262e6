// Package scale adjusts recipe quantities for a different number of servings.
// Transforms return derived copies; the stored recipe is never modified, and
// the ingredient list keeps its order so the k-th scaled ingredient always
// corresponds to the k-th original one.
package scale

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/platefinder/backend/internal/models"
)

// nonScalableTerms mark ingredient lines whose amounts do not scale linearly.
var nonScalableTerms = []string{"pinch", "pinches", "dash", "dashes", "to taste", "as needed"}

var quantityPattern = regexp.MustCompile(`^([\d\s./]+)`)

// cookingFractions are the denominators cooks actually measure with; scaled
// decimals snap to the closest one within a 5% tolerance.
var cookingFractions = []struct {
	value float64
	text  string
}{
	{0.125, "1/8"},
	{0.25, "1/4"},
	{0.33, "1/3"},
	{0.375, "3/8"},
	{0.5, "1/2"},
	{0.625, "5/8"},
	{0.66, "2/3"},
	{0.75, "3/4"},
	{0.875, "7/8"},
}

// Recipe returns a copy of the recipe scaled by factor. Factors of zero or
// less return the recipe unchanged.
func Recipe(r models.Recipe, factor float64) models.Recipe {
	if factor <= 0 {
		return r
	}

	scaled := r
	ingredients := make(models.JSONBStringArray, len(r.Ingredients))
	for i, line := range r.Ingredients {
		ingredients[i] = Ingredient(line, factor)
	}
	scaled.Ingredients = ingredients

	if r.Servings > 0 {
		servings := int(math.Round(float64(r.Servings) * factor))
		if servings < 1 {
			servings = 1
		}
		scaled.Servings = servings
	}
	return scaled
}

// Ingredient scales the leading quantity of a single ingredient line. Lines
// with no parseable quantity, and lines measured in non-scalable terms like
// "a pinch" or "to taste", come back unchanged.
func Ingredient(line string, factor float64) string {
	if line == "" || factor <= 0 {
		return line
	}

	lower := strings.ToLower(line)
	for _, term := range nonScalableTerms {
		if strings.Contains(lower, term) {
			return line
		}
	}

	prefix := quantityPattern.FindString(line)
	quantityStr := strings.TrimSpace(prefix)
	if quantityStr == "" {
		return line
	}

	quantity, ok := ParseQuantity(quantityStr)
	if !ok {
		return line
	}

	rest := strings.TrimSpace(line[len(prefix):])
	scaled := FormatQuantity(quantity * factor)
	if rest == "" {
		return scaled
	}
	return scaled + " " + rest
}

// ParseQuantity reads a cooking quantity: "2", "1.5", "1/2" or the mixed form
// "1 1/2".
func ParseQuantity(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, "/") && strings.Contains(s, " "):
		parts := strings.SplitN(s, " ", 2)
		whole, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, false
		}
		frac, ok := parseFraction(strings.TrimSpace(parts[1]))
		if !ok {
			return 0, false
		}
		return float64(whole) + frac, true

	case strings.Contains(s, "/"):
		return parseFraction(s)

	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
}

func parseFraction(s string) (float64, bool) {
	parts := strings.SplitN(s, "/", 2)
	num, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	den, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// FormatQuantity renders a scaled quantity the way a recipe card would:
// whole numbers plain, amounts below an eighth as "a pinch", everything else
// snapped to a cooking fraction when one is close enough.
func FormatQuantity(q float64) string {
	if q == math.Trunc(q) {
		return strconv.Itoa(int(q))
	}
	if q < 0.125 {
		return "a pinch"
	}
	if text, ok := toCookingFraction(q); ok {
		return text
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", q), "0"), ".")
}

func toCookingFraction(q float64) (string, bool) {
	whole := int(q)
	frac := q - float64(whole)

	best := ""
	bestDiff := math.Inf(1)
	for _, cf := range cookingFractions {
		diff := math.Abs(frac - cf.value)
		if diff < bestDiff && diff < 0.05 {
			bestDiff = diff
			best = cf.text
		}
	}
	if best == "" {
		return "", false
	}
	if whole > 0 {
		return fmt.Sprintf("%d %s", whole, best), true
	}
	return best, true
}
