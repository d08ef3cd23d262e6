package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/platefinder/backend/internal/catalog"
	"github.com/platefinder/backend/internal/models"
	"github.com/platefinder/backend/internal/recommend"
)

// RecommendHandler serves similarity lookups, personalized recommendations
// and rating submission. The db is optional; when nil, ratings live only in
// the recommender's persisted tables.
type RecommendHandler struct {
	recommender *recommend.Recommender
	store       catalog.Store
	db          *gorm.DB
}

func NewRecommendHandler(recommender *recommend.Recommender, store catalog.Store, db *gorm.DB) *RecommendHandler {
	return &RecommendHandler{recommender: recommender, store: store, db: db}
}

// GetSimilar returns the recipes most similar to the given one by feature
// cosine similarity.
func (h *RecommendHandler) GetSimilar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	n := intParam(c, "limit", 5)
	ids := h.recommender.SimilarRecipes(id.String(), n)
	recipes, err := h.resolve(c, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": recipes})
}

// GetRecommendations returns recipes the authenticated user is predicted to
// rate highest among those they have not rated yet.
func (h *RecommendHandler) GetRecommendations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	n := intParam(c, "limit", 5)
	ids := h.recommender.Recommend(userID.String(), n)
	recipes, err := h.resolve(c, ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": recipes})
}

type ratingRequest struct {
	Rating float64 `json:"rating" binding:"required"`
}

// PostRating records the authenticated user's rating of a recipe. One rating
// per user and recipe; submitting again overwrites the old value.
func (h *RecommendHandler) PostRating(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	if _, err := h.store.Get(c.Request.Context(), recipeID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		}
		return
	}

	if h.db != nil {
		rating := models.RecipeRating{
			UserID:   userID,
			RecipeID: recipeID,
			Rating:   req.Rating,
		}
		err := h.db.WithContext(c.Request.Context()).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).Create(&rating).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save rating"})
			return
		}
	}

	if err := h.recommender.RecordRating(c.Request.Context(), userID.String(), recipeID.String(), req.Rating); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe_id": recipeID, "rating": req.Rating})
}

// resolve maps recommender IDs back to catalog recipes, preserving order.
// IDs that have left the catalog are skipped.
func (h *RecommendHandler) resolve(c *gin.Context, ids []string) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		recipe, err := h.store.Get(c.Request.Context(), id)
		if errors.Is(err, catalog.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, nil
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}
