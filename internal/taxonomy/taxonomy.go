// Package taxonomy holds the static vocabulary the retrieval engine reasons
// with: ingredient categories, per-diet forbidden ingredients, common
// ingredient substitutions and nutritional keyword thresholds. The tables are
// fixed at compile time and never mutated.
package taxonomy

import "strings"

var ingredientCategories = map[string][]string{
	"pasta": {"pasta", "spaghetti", "penne", "fettuccine", "linguine", "macaroni",
		"lasagna", "ravioli", "tortellini", "farfalle", "rigatoni", "orzo"},
	"rice": {"rice", "risotto", "biryani", "pilaf", "fried rice"},
	"meat": {"chicken", "beef", "pork", "mutton", "lamb", "turkey", "duck", "goat",
		"veal", "bacon", "ham", "sausage", "meatball"},
	"seafood": {"fish", "shrimp", "prawn", "crab", "lobster", "salmon", "tuna",
		"cod", "tilapia", "sardines", "anchovies", "mussels", "clams", "oysters",
		"scallops", "squid", "octopus"},
	"dairy": {"milk", "cheese", "cream", "butter", "yogurt", "ghee"},
}

var dietExclusions = map[string][]string{
	"vegetarian": concat(ingredientCategories["meat"], ingredientCategories["seafood"]),
	"vegan": concat(ingredientCategories["meat"], ingredientCategories["seafood"],
		ingredientCategories["dairy"], []string{"egg", "honey"}),
	"gluten-free": {"wheat", "barley", "rye", "flour", "pasta", "bread", "cereal",
		"couscous", "bulgur", "semolina", "spelt", "malt", "beer"},
	"dairy-free": concat(ingredientCategories["dairy"], []string{"sour cream",
		"cream cheese", "ricotta", "mozzarella", "parmesan", "cheddar", "feta"}),
}

var substitutions = map[string][]string{
	"bell pepper":       {"capsicum", "sweet pepper"},
	"cilantro":          {"coriander", "chinese parsley"},
	"eggplant":          {"aubergine"},
	"zucchini":          {"courgette"},
	"scallion":          {"green onion", "spring onion"},
	"arugula":           {"rocket"},
	"chickpeas":         {"garbanzo beans"},
	"ground beef":       {"minced beef", "hamburger meat"},
	"powdered sugar":    {"icing sugar", "confectioners' sugar"},
	"heavy cream":       {"double cream", "whipping cream"},
	"all-purpose flour": {"plain flour"},
	"cornstarch":        {"corn flour"},
	"baking soda":       {"bicarbonate of soda"},
	"shrimp":            {"prawns"},
	"ketchup":           {"tomato sauce"},
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// DietExclusionTerms returns the forbidden-ingredient terms for a diet token.
// Unknown diets return ok=false; callers are expected to fail open.
func DietExclusionTerms(diet string) ([]string, bool) {
	key := strings.ToLower(strings.TrimSpace(diet))
	// "gluten free" and "gluten-free" arrive interchangeably from upstream.
	key = strings.ReplaceAll(key, " ", "-")
	terms, ok := dietExclusions[key]
	if !ok {
		return nil, false
	}
	out := make([]string, len(terms))
	copy(out, terms)
	return out, true
}

// ExpandIngredient widens an ingredient token through the category table: a
// category name, or a member of a category, expands to the whole category.
// Tokens with no category are returned verbatim.
func ExpandIngredient(token string) []string {
	key := strings.ToLower(strings.TrimSpace(token))
	if items, ok := ingredientCategories[key]; ok {
		out := make([]string, len(items))
		copy(out, items)
		return out
	}
	for _, items := range ingredientCategories {
		for _, item := range items {
			if item == key {
				out := make([]string, len(items))
				copy(out, items)
				return out
			}
		}
	}
	return []string{key}
}

// SubstitutesFor returns known alternatives for an ingredient line. The line
// may contain quantity and preparation noise; matching is substring-based in
// both directions so "2 cups heavy cream" finds "heavy cream", and a line
// mentioning "prawns" suggests "shrimp".
func SubstitutesFor(ingredientLine string) []string {
	line := strings.ToLower(ingredientLine)

	for name, subs := range substitutions {
		if strings.Contains(line, name) {
			out := make([]string, len(subs))
			copy(out, subs)
			return out
		}
	}
	for name, subs := range substitutions {
		for _, sub := range subs {
			if strings.Contains(line, sub) {
				return []string{name}
			}
		}
	}
	return nil
}
