package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/platefinder/backend/internal/search"
)

// SearchHandler exposes the constraint search, ranking and pantry endpoints.
type SearchHandler struct {
	engine *search.Engine
}

func NewSearchHandler(engine *search.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

type searchRequest struct {
	Preferences map[string]string `json:"preferences" binding:"required"`
}

func (r searchRequest) toPreferences() search.Preferences {
	prefs := make(search.Preferences, len(r.Preferences))
	for k, v := range r.Preferences {
		prefs[search.Key(k)] = v
	}
	return prefs
}

// Search runs the relaxation search and reports which preferences had to be
// dropped to produce results.
func (h *SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.engine.Search(c.Request.Context(), req.toPreferences())
	c.JSON(http.StatusOK, result)
}

// Rank scores a candidate pool against every preference instead of filtering
// on all of them, so partial matches still surface.
func (h *SearchHandler) Rank(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ranked := h.engine.Rank(c.Request.Context(), req.toPreferences(), search.DefaultWeights())
	c.JSON(http.StatusOK, gin.H{"results": ranked})
}

type pantryRequest struct {
	Ingredients  []string `json:"ingredients" binding:"required"`
	MinimumMatch float64  `json:"minimum_match"`
}

// Pantry finds recipes cookable from the ingredients on hand.
func (h *SearchHandler) Pantry(c *gin.Context) {
	var req pantryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matches := h.engine.MatchPantry(c.Request.Context(), req.Ingredients, req.MinimumMatch)
	c.JSON(http.StatusOK, gin.H{"results": matches})
}
