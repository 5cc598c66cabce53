// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// AuthHandler issues and inspects shopper tokens
type AuthHandler struct {
	jwt *auth.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{jwt: auth.NewJWTManager(cfg)}
}

// IssueTokenRequest binds the current session to a shopper email
type IssueTokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueToken handles POST /auth/token
//
// Binds the caller's session to the given email and returns a token
// carrying both. Presenting the token later resumes the same session
// from any device, and orders are recorded under the email.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sessionID := middleware.GetSessionID(c)

	token, err := h.jwt.GenerateToken(req.Email, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token issued successfully",
		"data": gin.H{
			"token":      token,
			"email":      req.Email,
			"session_id": sessionID,
		},
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	email, ok := middleware.GetShopperEmailFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shopper retrieved successfully",
		"data": gin.H{
			"email":      email,
			"session_id": middleware.GetSessionID(c),
		},
	})
}
