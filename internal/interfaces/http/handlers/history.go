// internal/interfaces/http/handlers/history.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/history"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// HistoryHandler handles browsing history endpoints
type HistoryHandler struct {
	history *history.Service
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService *history.Service) *HistoryHandler {
	return &HistoryHandler{history: historyService}
}

// GetHistory handles GET /history
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	hist := h.history.Get(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Browsing history retrieved successfully",
		"data": gin.H{
			"items": hist.Items,
			"count": len(hist.Items),
		},
	})
}

// ClearHistory handles DELETE /history
func (h *HistoryHandler) ClearHistory(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	h.history.Clear(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Browsing history cleared successfully",
	})
}
