package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/platefinder/backend/internal/catalog"
)

var (
	underCaloriesPattern = regexp.MustCompile(`under (\d+) calories`)
	minProteinPattern    = regexp.MustCompile(`at least (\d+)\s*g? of protein`)
)

// nutritionKeyword maps a dietary buzzword to its numeric conditions.
type nutritionKeyword struct {
	word  string
	preds []catalog.Leaf
}

var nutritionKeywords = []nutritionKeyword{
	{"low-calorie", []catalog.Leaf{catalog.LessThan(catalog.FieldCalories, 400)}},
	{"low-carb", []catalog.Leaf{catalog.LessThan(catalog.FieldCarbs, 20)}},
	{"high-protein", []catalog.Leaf{catalog.GreaterThan(catalog.FieldProtein, 20)}},
	{"low-fat", []catalog.Leaf{catalog.LessThan(catalog.FieldFat, 10)}},
	{"keto", []catalog.Leaf{
		catalog.LessThan(catalog.FieldCarbs, 10),
		catalog.GreaterThan(catalog.FieldFat, 20),
	}},
	{"balanced", []catalog.Leaf{
		catalog.GreaterThan(catalog.FieldProtein, 15),
		catalog.GreaterThan(catalog.FieldCarbs, 30),
		catalog.GreaterThan(catalog.FieldFat, 10),
		catalog.LessThan(catalog.FieldFat, 30),
	}},
}

// NutritionPredicates extracts numeric nutrition conditions from free text:
// known keywords ("keto", "high-protein", ...) plus the explicit forms
// "under N calories" and "at least Ng of protein". Text with no recognizable
// token yields nothing.
func NutritionPredicates(text string) []catalog.Predicate {
	t := strings.ToLower(text)
	var preds []catalog.Predicate

	for _, kw := range nutritionKeywords {
		if strings.Contains(t, kw.word) {
			for _, p := range kw.preds {
				preds = append(preds, p)
			}
		}
	}

	if m := underCaloriesPattern.FindStringSubmatch(t); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			preds = append(preds, catalog.LessThan(catalog.FieldCalories, float64(n)))
		}
	}
	if m := minProteinPattern.FindStringSubmatch(t); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			preds = append(preds, catalog.GreaterThan(catalog.FieldProtein, float64(n)))
		}
	}
	return preds
}
