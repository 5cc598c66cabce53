// internal/interfaces/http/handlers/recommend.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/recommend"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// RecommendationHandler handles recommendation endpoints
type RecommendationHandler struct {
	recommendations *recommend.Service
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendations *recommend.Service) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations}
}

// GetRecommendations handles GET /recommendations
//
// The endpoint always returns 200 with a product list. When the catalog
// is unreachable the list is the fallback set and degraded is true.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	result := h.recommendations.Recommendations(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Recommendations retrieved successfully",
		"data": gin.H{
			"products": result.Products,
			"count":    len(result.Products),
			"degraded": result.Err != nil,
		},
	})
}
