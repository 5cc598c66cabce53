// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlists *wishlist.Service
	carts     *cart.Service
	catalog   *catalog.Client
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlists *wishlist.Service, carts *cart.Service, cat *catalog.Client) *WishlistHandler {
	return &WishlistHandler{
		wishlists: wishlists,
		carts:     carts,
		catalog:   cat,
	}
}

// AddToWishlistRequest is the payload for saving a product
type AddToWishlistRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	w := h.wishlists.Get(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data": gin.H{
			"items": w.Items,
			"count": w.Count(),
		},
	})
}

// AddToWishlist handles POST /wishlist/items
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load product",
		})
		return
	}

	w := h.wishlists.Add(c.Request.Context(), sessionID, *product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to wishlist successfully",
		"data": gin.H{
			"items": w.Items,
			"count": w.Count(),
		},
	})
}

// RemoveFromWishlist handles DELETE /wishlist/items/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	w := h.wishlists.Remove(c.Request.Context(), sessionID, productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist successfully",
		"data": gin.H{
			"items": w.Items,
			"count": w.Count(),
		},
	})
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	h.wishlists.Clear(c.Request.Context(), sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist cleared successfully",
	})
}

// MoveToCart handles POST /wishlist/items/:id/move
//
// The product is added to the cart and removed from the wishlist in
// one step.
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	w := h.wishlists.Get(c.Request.Context(), sessionID)

	var product *catalog.Product
	for i := range w.Items {
		if w.Items[i].ID == productID {
			product = &w.Items[i]
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not in wishlist",
		})
		return
	}

	updated := h.carts.Add(c.Request.Context(), sessionID, *product, 1)
	w = h.wishlists.Remove(c.Request.Context(), sessionID, productID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item moved to cart successfully",
		"data": gin.H{
			"wishlist": gin.H{
				"items": w.Items,
				"count": w.Count(),
			},
			"cart": cartResponse(updated),
		},
	})
}
