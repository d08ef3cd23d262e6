package catalog

import (
	"github.com/google/uuid"

	"github.com/platefinder/backend/internal/models"
)

// SeedRecipes returns the small built-in catalog used when the database is
// unreachable, and by the seed command. IDs are fixed so ratings recorded
// against seed recipes survive restarts.
func SeedRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:          uuid.MustParse("6b1e7a52-0001-4c6e-9a30-1f2d3c4b5a60"),
			Name:        "Vegetable Biryani",
			Description: "Fragrant rice main course layered with spiced vegetables",
			Cuisine:     "Indian",
			Course:      "main course",
			Ingredients: models.JSONBStringArray{
				"2 cups basmati rice", "1 cup mixed vegetables", "1 onion",
				"2 tablespoons ghee", "1 teaspoon garam masala", "salt to taste",
			},
			Instructions: models.JSONBStringArray{
				"Soak the rice for 30 minutes.",
				"Saute the onion and vegetables with the spices.",
				"Layer rice and vegetables, then steam until done.",
			},
			DietTags:      models.JSONBStringArray{"vegetarian", "gluten-free"},
			TotalTimeMins: 50,
			Taste:         "spicy",
			Servings:      4,
			Calories:      420, Protein: 9, Carbs: 72, Fat: 11,
		},
		{
			ID:          uuid.MustParse("6b1e7a52-0002-4c6e-9a30-1f2d3c4b5a60"),
			Name:        "Spaghetti Aglio e Olio",
			Description: "Quick Italian pasta with garlic, olive oil and chili",
			Cuisine:     "Italian",
			Course:      "main course",
			Ingredients: models.JSONBStringArray{
				"400 g spaghetti", "6 cloves garlic", "1/2 cup olive oil",
				"1 teaspoon chili flakes", "fresh parsley", "salt to taste",
			},
			Instructions: models.JSONBStringArray{
				"Cook the spaghetti until al dente.",
				"Warm the garlic and chili in olive oil.",
				"Toss the pasta in the oil and finish with parsley.",
			},
			DietTags:      models.JSONBStringArray{"vegetarian", "vegan", "dairy-free"},
			TotalTimeMins: 20,
			Taste:         "savory",
			Servings:      4,
			Calories:      520, Protein: 12, Carbs: 78, Fat: 18,
		},
		{
			ID:          uuid.MustParse("6b1e7a52-0003-4c6e-9a30-1f2d3c4b5a60"),
			Name:        "Chicken Tikka Masala",
			Description: "Grilled chicken simmered in a creamy tomato gravy",
			Cuisine:     "Indian",
			Course:      "main course",
			Ingredients: models.JSONBStringArray{
				"500 g chicken breast", "1 cup yogurt", "2 tomatoes",
				"1/2 cup cream", "2 teaspoons tikka masala", "1 onion",
			},
			Instructions: models.JSONBStringArray{
				"Marinate the chicken in yogurt and spices.",
				"Grill the chicken pieces.",
				"Simmer in the tomato and cream gravy.",
			},
			DietTags:      models.JSONBStringArray{"gluten-free"},
			TotalTimeMins: 60,
			Taste:         "spicy",
			Servings:      4,
			Calories:      610, Protein: 42, Carbs: 21, Fat: 38,
		},
		{
			ID:          uuid.MustParse("6b1e7a52-0004-4c6e-9a30-1f2d3c4b5a60"),
			Name:        "Greek Salad",
			Description: "Crisp salad of tomato, cucumber, olives and feta",
			Cuisine:     "Greek",
			Course:      "salad",
			Ingredients: models.JSONBStringArray{
				"3 tomatoes", "1 cucumber", "1/2 cup olives",
				"150 g feta cheese", "1 red onion", "2 tablespoons olive oil",
			},
			Instructions: models.JSONBStringArray{
				"Chop the vegetables.",
				"Combine with olives and feta, dress with olive oil.",
			},
			DietTags:      models.JSONBStringArray{"vegetarian", "gluten-free"},
			TotalTimeMins: 15,
			Taste:         "tangy",
			Servings:      2,
			Calories:      310, Protein: 10, Carbs: 14, Fat: 25,
		},
		{
			ID:          uuid.MustParse("6b1e7a52-0005-4c6e-9a30-1f2d3c4b5a60"),
			Name:        "Vegan Buddha Bowl",
			Description: "Rice bowl with roasted chickpeas and tahini dressing",
			Cuisine:     "American",
			Course:      "main course",
			Ingredients: models.JSONBStringArray{
				"1 cup brown rice", "1 can chickpeas", "2 cups kale",
				"1 avocado", "2 tablespoons tahini", "1 lemon",
			},
			Instructions: models.JSONBStringArray{
				"Cook the rice and roast the chickpeas.",
				"Massage the kale with lemon.",
				"Assemble the bowl and drizzle with tahini.",
			},
			DietTags:      models.JSONBStringArray{"vegetarian", "vegan", "gluten-free", "dairy-free"},
			TotalTimeMins: 35,
			Taste:         "savory",
			Servings:      2,
			Calories:      480, Protein: 16, Carbs: 62, Fat: 20,
		},
		{
			ID:          uuid.MustParse("6b1e7a52-0006-4c6e-9a30-1f2d3c4b5a60"),
			Name:        "Gulab Jamun",
			Description: "Classic Indian dessert of fried dough balls in syrup",
			Cuisine:     "Indian",
			Course:      "dessert",
			Ingredients: models.JSONBStringArray{
				"1 cup milk powder", "2 tablespoons flour", "2 tablespoons ghee",
				"1 cup sugar", "4 cardamom pods", "oil for frying",
			},
			Instructions: models.JSONBStringArray{
				"Knead the dough and shape into balls.",
				"Fry until golden.",
				"Soak in cardamom syrup.",
			},
			DietTags:      models.JSONBStringArray{"vegetarian"},
			TotalTimeMins: 45,
			Taste:         "sweet",
			Servings:      6,
			Calories:      390, Protein: 6, Carbs: 58, Fat: 15,
		},
		{
			ID:          uuid.MustParse("6b1e7a52-0007-4c6e-9a30-1f2d3c4b5a60"),
			Name:        "Grilled Salmon with Lemon",
			Description: "Quick grilled salmon fillet with lemon and herbs",
			Cuisine:     "Mediterranean",
			Course:      "main course",
			Ingredients: models.JSONBStringArray{
				"2 salmon fillets", "1 lemon", "2 tablespoons olive oil",
				"fresh dill", "salt to taste", "black pepper",
			},
			Instructions: models.JSONBStringArray{
				"Season the fillets.",
				"Grill skin-side down, then finish with lemon and dill.",
			},
			DietTags:      models.JSONBStringArray{"gluten-free", "dairy-free"},
			TotalTimeMins: 25,
			Taste:         "savory",
			Servings:      2,
			Calories:      450, Protein: 40, Carbs: 3, Fat: 30,
		},
		{
			ID:          uuid.MustParse("6b1e7a52-0008-4c6e-9a30-1f2d3c4b5a60"),
			Name:        "Tomato Basil Bruschetta",
			Description: "Italian appetizer of toasted bread with marinated tomatoes",
			Cuisine:     "Italian",
			Course:      "appetizer",
			Ingredients: models.JSONBStringArray{
				"1 baguette", "4 tomatoes", "fresh basil",
				"2 cloves garlic", "2 tablespoons olive oil", "salt to taste",
			},
			Instructions: models.JSONBStringArray{
				"Toast the bread slices.",
				"Top with marinated tomatoes and basil.",
			},
			DietTags:      models.JSONBStringArray{"vegetarian", "vegan", "dairy-free"},
			TotalTimeMins: 15,
			Taste:         "tangy",
			Servings:      4,
			Calories:      220, Protein: 6, Carbs: 34, Fat: 7,
		},
	}
}
