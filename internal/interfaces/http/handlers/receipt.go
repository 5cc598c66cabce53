// internal/interfaces/http/handlers/receipt.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/pdf"
)

// ReceiptHandler handles order receipt endpoints
type ReceiptHandler struct {
	orders     *order.LogService
	pdfService *pdf.Service
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(orders *order.LogService, pdfService *pdf.Service) *ReceiptHandler {
	return &ReceiptHandler{
		orders:     orders,
		pdfService: pdfService,
	}
}

// DownloadReceipt handles GET /orders/:id/receipt
func (h *ReceiptHandler) DownloadReceipt(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	found := h.orders.Find(c.Request.Context(), sessionID, c.Param("id"))
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	pdfBuffer, err := h.pdfService.GenerateReceipt(found)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", found.ID))
	c.Header("Content-Length", strconv.Itoa(len(pdfBuffer.Bytes())))

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
