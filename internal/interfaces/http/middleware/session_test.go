package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/pkg/auth"
)

func sessionConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Security.SessionCookieName = "storefront_session"
	cfg.Redis.SessionTTL = 24 * time.Hour
	cfg.JWT.Secret = "test-secret-at-least-32-characters-long"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.App.Name = "SimplStore"
	return cfg
}

func sessionRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)

	var captured string
	router := gin.New()
	router.Use(Session(sessionConfig()))
	router.GET("/", func(c *gin.Context) {
		captured = GetSessionID(c)
		c.Status(http.StatusOK)
	})
	return router, &captured
}

func TestSession_NewVisitorGetsIDAndCookie(t *testing.T) {
	router, captured := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	require.NotEmpty(t, *captured)
	assert.Equal(t, *captured, w.Header().Get("X-Session-ID"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "storefront_session", cookies[0].Name)
	assert.Equal(t, *captured, cookies[0].Value)
}

func TestSession_HeaderWins(t *testing.T) {
	router, captured := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-ID", "header-session")
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "cookie-session"})
	router.ServeHTTP(w, req)

	assert.Equal(t, "header-session", *captured)
}

func TestSession_TokenClaimWinsOverCookie(t *testing.T) {
	router, captured := sessionRouter()

	token, err := auth.NewJWTManager(sessionConfig()).GenerateToken("asha@example.com", "token-session")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "cookie-session"})
	router.ServeHTTP(w, req)

	// A bound session follows the token across devices
	assert.Equal(t, "token-session", *captured)
}

func TestSession_InvalidTokenFallsBackToCookie(t *testing.T) {
	router, captured := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "cookie-session"})
	router.ServeHTTP(w, req)

	assert.Equal(t, "cookie-session", *captured)
}

func TestSession_CookieReused(t *testing.T) {
	router, captured := sessionRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "storefront_session", Value: "cookie-session"})
	router.ServeHTTP(w, req)

	assert.Equal(t, "cookie-session", *captured)
	// No new cookie is issued for a returning visitor
	assert.Empty(t, w.Result().Cookies())
}
