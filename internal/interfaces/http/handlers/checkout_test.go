package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/payment"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/auth"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func handlerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "SimplStore"
	cfg.Security.SessionCookieName = "storefront_session"
	cfg.Redis.SessionTTL = 24 * time.Hour
	cfg.JWT.Secret = "test-secret-at-least-32-characters-long"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.Payment.KeyID = "rzp_test_key"
	cfg.Payment.KeySecret = "test_secret"
	cfg.Payment.Timeout = time.Second
	return cfg
}

// fakeRecorder collects created records
type fakeRecorder struct {
	created []order.Order
	userIDs []string
}

func (r *fakeRecorder) Create(o order.Order, userID string) error {
	r.created = append(r.created, o)
	r.userIDs = append(r.userIDs, userID)
	return nil
}

type checkoutEnv struct {
	router   *gin.Engine
	cfg      *config.Config
	carts    *cart.Service
	orders   *order.LogService
	recorder *fakeRecorder
}

func newCheckoutEnv() *checkoutEnv {
	gin.SetMode(gin.TestMode)

	cfg := handlerConfig()
	store := storage.NewMemoryStore()
	log := testLogger()

	carts := cart.NewService(store, log)
	orders := order.NewLogService(store, log)
	recorder := &fakeRecorder{}
	gateway := payment.NewGateway(cfg)
	svc := checkout.NewService(carts, orders, recorder, gateway, log)

	router := gin.New()
	router.Use(middleware.Session(cfg))
	router.Use(middleware.OptionalAuthMiddleware(cfg))
	handler := NewCheckoutHandler(svc)
	router.POST("/checkout/complete", handler.CompleteCheckout)

	return &checkoutEnv{
		router:   router,
		cfg:      cfg,
		carts:    carts,
		orders:   orders,
		recorder: recorder,
	}
}

func shippingJSON() map[string]interface{} {
	return map[string]interface{}{
		"first_name":  "Asha",
		"last_name":   "Iyer",
		"email":       "asha@example.com",
		"phone":       "5550100",
		"address":     "12 Market Road",
		"city":        "Pune",
		"state":       "MH",
		"postal_code": "411001",
		"country":     "IN",
	}
}

func signConfirmation(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func postJSON(router *gin.Engine, path string, body map[string]interface{}, headers map[string]string) *httptest.ResponseRecorder {
	encoded, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestCompleteCheckout_CancelledWidgetRecordsFailedOrder(t *testing.T) {
	env := newCheckoutEnv()
	ctx := context.Background()

	env.carts.Add(ctx, "s1", catalog.Product{ID: 1, Title: "Lamp", Price: 20.0}, 1)

	// The buyer closed the widget; only the shipping form comes back.
	w := postJSON(env.router, "/checkout/complete",
		map[string]interface{}{"shipping_details": shippingJSON()},
		map[string]string{"X-Session-ID": "s1"},
	)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	logged := env.orders.List(ctx, "s1")
	require.Len(t, logged, 1)
	assert.Equal(t, order.StatusFailed, logged[0].Status)

	// Cart kept for retry, no database record
	assert.Len(t, env.carts.Get(ctx, "s1").Items, 1)
	assert.Empty(t, env.recorder.created)
}

func TestCompleteCheckout_AuthenticatedShopperOnRecord(t *testing.T) {
	env := newCheckoutEnv()
	ctx := context.Background()

	env.carts.Add(ctx, "s1", catalog.Product{ID: 1, Title: "Lamp", Price: 20.0}, 1)

	token, err := auth.NewJWTManager(env.cfg).GenerateToken("ravi@example.com", "s1")
	require.NoError(t, err)

	body := map[string]interface{}{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  signConfirmation("test_secret", "order_1", "pay_1"),
		"shipping_details":    shippingJSON(),
	}

	// The token alone resolves the session and identifies the shopper
	w := postJSON(env.router, "/checkout/complete", body,
		map[string]string{"Authorization": "Bearer " + token},
	)

	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, env.recorder.userIDs, 1)
	assert.Equal(t, "ravi@example.com", env.recorder.userIDs[0])
	assert.Empty(t, env.carts.Get(ctx, "s1").Items)
}
