package recommend

import (
	"math"
	"strings"

	"github.com/platefinder/backend/internal/models"
)

// FeatureVector is the sparse numeric representation of a recipe used for
// similarity: binary features for cuisine, diet tags and course, normalized
// counts for ingredients, and a normalized cook time.
type FeatureVector map[string]float64

// measureWords are stripped from ingredient lines before they become feature
// names, so "2 cups basmati rice" and "1 cup basmati rice" collapse to the
// same feature.
var measureWords = map[string]bool{
	"cup": true, "cups": true,
	"tablespoon": true, "tablespoons": true, "tbsp": true,
	"teaspoon": true, "teaspoons": true, "tsp": true,
	"gram": true, "grams": true, "g": true,
	"kilogram": true, "kilograms": true, "kg": true,
	"milliliter": true, "milliliters": true, "ml": true,
	"liter": true, "liters": true, "l": true,
	"ounce": true, "ounces": true, "oz": true,
	"pound": true, "pounds": true, "lb": true,
	"can": true, "cans": true, "clove": true, "cloves": true,
}

// ExtractFeatures builds the feature vector for a recipe. Repeated ingredient
// mentions are capped at 3 before normalizing so one ingredient cannot
// dominate the vector; cook time is expressed in hours and capped at 2.0.
func ExtractFeatures(r *models.Recipe) FeatureVector {
	features := make(FeatureVector)

	if cuisine := strings.ToLower(strings.TrimSpace(r.Cuisine)); cuisine != "" {
		features["cuisine:"+cuisine] = 1.0
	}
	for _, tag := range r.DietTags {
		if t := strings.ToLower(strings.TrimSpace(tag)); t != "" {
			features["diet:"+t] = 1.0
		}
	}
	if course := strings.ToLower(strings.TrimSpace(r.Course)); course != "" {
		features["course:"+course] = 1.0
	}

	counts := make(map[string]int)
	for _, line := range r.Ingredients {
		if token := normalizeIngredient(line); token != "" {
			counts[token]++
		}
	}
	for token, n := range counts {
		if n > 3 {
			n = 3
		}
		features["ingredient:"+token] = float64(n) / 3.0
	}

	if r.TotalTimeMins > 0 {
		features["time"] = math.Min(float64(r.TotalTimeMins)/60.0, 2.0)
	}
	return features
}

// normalizeIngredient reduces an ingredient line to its bare name by dropping
// quantities, fractions and measurement words.
func normalizeIngredient(line string) string {
	var kept []string
	for _, word := range strings.Fields(strings.ToLower(line)) {
		word = strings.Trim(word, ",.()")
		if word == "" || numericToken(word) || measureWords[word] {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

// numericToken reports whether a word is a quantity: "2", "1/2", "1.5".
func numericToken(word string) bool {
	hasDigit := false
	for _, c := range word {
		switch {
		case c >= '0' && c <= '9':
			hasDigit = true
		case c == '/' || c == '.' || c == '-':
		default:
			return false
		}
	}
	return hasDigit
}

// Cosine computes the cosine similarity of two sparse vectors over the union
// of their features. A zero vector is similar to nothing: the result is 0.0,
// never a division by zero.
func Cosine(a, b FeatureVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate the smaller map for the dot product.
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot float64
	for name, av := range a {
		if bv, ok := b[name]; ok {
			dot += av * bv
		}
	}

	var normA, normB float64
	for _, v := range a {
		normA += v * v
	}
	for _, v := range b {
		normB += v * v
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
