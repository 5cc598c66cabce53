// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// OrderHandler handles order history endpoints
type OrderHandler struct {
	orders *order.LogService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *order.LogService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// ListOrders handles GET /orders
//
// Orders are returned newest first.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	orders := h.orders.List(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders": orders,
			"count":  len(orders),
		},
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	found := h.orders.Find(c.Request.Context(), sessionID, c.Param("id"))
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    found,
	})
}
