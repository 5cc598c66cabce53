// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/payment"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkout *checkout.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkoutService}
}

// CompleteCheckoutRequest is the payload finalizing a checkout. It
// carries the gateway confirmation fields alongside the shipping form.
// The confirmation fields are optional: a cancelled or never-loaded
// payment widget submits only the shipping form, and the attempt is
// recorded as a failed order.
type CompleteCheckoutRequest struct {
	payment.Confirmation
	Shipping order.ShippingDetails `json:"shipping_details" binding:"required"`
}

// InitiatePayment handles POST /checkout/initiate
//
// Opens a gateway order for the cart total. The response carries the
// gateway order id and key id the payment widget needs.
func (h *CheckoutHandler) InitiatePayment(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	gatewayOrder, err := h.checkout.Initiate(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to initiate payment",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment initiated successfully",
		"data":    gatewayOrder,
	})
}

// CompleteCheckout handles POST /checkout/complete
//
// Verifies the payment confirmation. A failed verification still
// records a failed order and leaves the cart intact for retry.
func (h *CheckoutHandler) CompleteCheckout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req CompleteCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	shopperEmail, _ := middleware.GetShopperEmailFromContext(c)

	placed, err := h.checkout.Complete(c.Request.Context(), sessionID, shopperEmail, req.Confirmation, req.Shipping)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		if errors.Is(err, payment.ErrNotVerified) {
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment verification failed",
				"data":  placed,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to complete checkout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}
