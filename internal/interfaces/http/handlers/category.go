// internal/interfaces/http/handlers/category.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	catalog *catalog.Client
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(cat *catalog.Client) *CategoryHandler {
	return &CategoryHandler{catalog: cat}
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data": gin.H{
			"categories": categories,
			"count":      len(categories),
		},
	})
}

// GetCategory handles GET /categories/:name
//
// Returns the category record together with its products.
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	name := c.Param("name")

	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load categories",
		})
		return
	}

	var found *catalog.Category
	for i := range categories {
		if categories[i].Name == name {
			found = &categories[i]
			break
		}
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Category not found",
		})
		return
	}

	products, err := h.catalog.ProductsInCategories(c.Request.Context(), []string{name}, nil, 0)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load category products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category retrieved successfully",
		"data": gin.H{
			"category": found,
			"products": products,
			"count":    len(products),
		},
	})
}
