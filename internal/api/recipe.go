package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/platefinder/backend/internal/catalog"
	"github.com/platefinder/backend/internal/models"
	"github.com/platefinder/backend/internal/scale"
)

// RecipeHandler serves catalog browsing, recipe detail and scaling.
type RecipeHandler struct {
	store catalog.Store
}

func NewRecipeHandler(store catalog.Store) *RecipeHandler {
	return &RecipeHandler{store: store}
}

// ListRecipes returns catalog recipes filtered by query parameters. Filters
// combine with AND; each one maps onto the same predicate vocabulary the
// search engine uses.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var preds []catalog.Predicate

	if q := c.Query("q"); q != "" {
		preds = append(preds, catalog.AnyOf(
			catalog.Contains(catalog.FieldName, q),
			catalog.Contains(catalog.FieldDescription, q),
		))
	}
	if cuisine := c.Query("cuisine"); cuisine != "" {
		preds = append(preds, catalog.Contains(catalog.FieldCuisine, cuisine))
	}
	if course := c.Query("course"); course != "" {
		preds = append(preds, catalog.Contains(catalog.FieldCourse, course))
	}
	if diet := c.Query("diet"); diet != "" {
		preds = append(preds, catalog.Equals(catalog.FieldDietTags, diet))
	}
	for _, term := range splitParam(c.Query("exclude")) {
		preds = append(preds, catalog.NotContains(catalog.FieldIngredients, term))
	}
	if maxTime := c.Query("max_time"); maxTime != "" {
		mins, err := strconv.Atoi(maxTime)
		if err != nil || mins <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_time must be a positive integer"})
			return
		}
		preds = append(preds, catalog.LessThan(catalog.FieldTotalTime, float64(mins)))
	}

	limit := intParam(c, "limit", 20)
	offset := intParam(c, "offset", 0)

	recipes, err := h.store.Find(c.Request.Context(), catalog.AllOf(preds...), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe returns one recipe together with ingredient substitution
// suggestions.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, ok := h.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe":        recipe,
		"substitutions": scale.Suggestions(recipe),
	})
}

type scaleRequest struct {
	Servings int     `json:"servings"`
	Factor   float64 `json:"factor"`
}

// ScaleRecipe returns a copy of the recipe adjusted for a different serving
// count. Callers give either a target serving count or a raw factor.
func (h *RecipeHandler) ScaleRecipe(c *gin.Context) {
	recipe, ok := h.lookup(c)
	if !ok {
		return
	}

	var req scaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	factor := req.Factor
	if req.Servings > 0 {
		if recipe.Servings <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "recipe has no serving count to scale from"})
			return
		}
		factor = float64(req.Servings) / float64(recipe.Servings)
	}
	if factor <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "servings or factor must be positive"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": scale.Recipe(*recipe, factor)})
}

func (h *RecipeHandler) lookup(c *gin.Context) (*models.Recipe, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return nil, false
	}

	recipe, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch recipe"})
		}
		return nil, false
	}
	return recipe, true
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func intParam(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
