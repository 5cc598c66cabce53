// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/history"
	"github.com/your-org/storefront/internal/domain/listing"
	"github.com/your-org/storefront/internal/domain/search"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
)

// ProductHandler handles product browsing endpoints
type ProductHandler struct {
	catalog *catalog.Client
	search  *search.Service
	history *history.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(cat *catalog.Client, searchService *search.Service, historyService *history.Service) *ProductHandler {
	return &ProductHandler{
		catalog: cat,
		search:  searchService,
		history: historyService,
	}
}

// ListProducts handles GET /products
//
// Supported query parameters: q (fuzzy search term), category
// (repeatable), min_price, max_price, min_rating, sort.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load products",
		})
		return
	}

	if term := c.Query("q"); term != "" {
		products = h.search.Search(term, products)
	}

	opts := parseListingOptions(c)
	products = listing.Apply(products, opts)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// GetProduct handles GET /products/:id
//
// A successful lookup is recorded in the session browsing history.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), id)
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

	sessionID := middleware.GetSessionID(c)
	h.history.Add(c.Request.Context(), sessionID, *product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// SearchProducts handles GET /products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	term := c.Query("q")

	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load products",
		})
		return
	}

	results := h.search.Search(term, products)

	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data": gin.H{
			"query":    term,
			"products": results,
			"count":    len(results),
		},
	})
}

// parseListingOptions builds filter options from query parameters
func parseListingOptions(c *gin.Context) listing.Options {
	opts := listing.Options{
		Sort: listing.SortKey(c.DefaultQuery("sort", string(listing.SortDefault))),
	}

	for _, category := range c.QueryArray("category") {
		for _, name := range strings.Split(category, ",") {
			if name = strings.TrimSpace(name); name != "" {
				opts.Categories = append(opts.Categories, name)
			}
		}
	}

	if v := c.Query("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.MinPrice = f
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.MaxPrice = f
		}
	}
	if v := c.Query("min_rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.MinRating = f
		}
	}

	return opts
}
