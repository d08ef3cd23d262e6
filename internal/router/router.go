package router

import (
	"github.com/gin-gonic/gin"

	"github.com/platefinder/backend/internal/api"
	"github.com/platefinder/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	searchHandler *api.SearchHandler,
	recipeHandler *api.RecipeHandler,
	recommendHandler *api.RecommendHandler,
	validator middleware.TokenValidator,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/session", authHandler.CreateSession)
	}

	v1.POST("/search", searchHandler.Search)
	v1.POST("/rank", searchHandler.Rank)
	v1.POST("/pantry", searchHandler.Pantry)

	recipes := v1.Group("/recipes")
	{
		recipes.GET("", recipeHandler.ListRecipes)
		recipes.GET("/:id", recipeHandler.GetRecipe)
		recipes.POST("/:id/scale", recipeHandler.ScaleRecipe)
		recipes.GET("/:id/similar", recommendHandler.GetSimilar)
		recipes.POST("/:id/rating", middleware.AuthMiddleware(validator), recommendHandler.PostRating)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		protected.GET("/recommendations", recommendHandler.GetRecommendations)
	}

	return router
}
