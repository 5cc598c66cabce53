// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/auth"
)

const sessionContextKey = "session_id"

// Session resolves the shopper session id for the request. A valid
// bearer token wins, so a shopper who bound their session to a token
// resumes it from any device. Otherwise the id is taken from the
// X-Session-ID header, then the session cookie. A first-time visitor
// gets a fresh id and a cookie carrying it, so the cart, wishlist,
// history and order log survive across requests.
func Session(cfg *config.Config) gin.HandlerFunc {
	cookieName := cfg.Security.SessionCookieName
	maxAge := int(cfg.Redis.SessionTTL.Seconds())
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		var sessionID string

		if tokenString := auth.ExtractTokenFromHeader(c.GetHeader("Authorization")); tokenString != "" {
			if claims, err := jwtManager.ValidateToken(tokenString); err == nil {
				sessionID = claims.SessionID
			}
		}

		if sessionID == "" {
			sessionID = c.GetHeader("X-Session-ID")
		}

		if sessionID == "" {
			if cookie, err := c.Cookie(cookieName); err == nil {
				sessionID = cookie
			}
		}

		if sessionID == "" {
			sessionID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, sessionID, maxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Header("X-Session-ID", sessionID)

		c.Next()
	}
}

// GetSessionID extracts the session id from gin context
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(sessionContextKey); exists {
		return id.(string)
	}
	return ""
}
