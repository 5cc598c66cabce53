package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Payment: config.PaymentConfig{
			KeyID:     "rzp_test_key",
			KeySecret: "test_secret",
			BaseURL:   baseURL,
			Timeout:   5 * time.Second,
		},
	}
}

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPayment_ValidSignature(t *testing.T) {
	g := NewGateway(testConfig("http://unused"))

	conf := Confirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: sign("test_secret", "order_1", "pay_1"),
	}

	assert.NoError(t, g.VerifyPayment(context.Background(), conf))
}

func TestVerifyPayment_InvalidSignature(t *testing.T) {
	g := NewGateway(testConfig("http://unused"))

	conf := Confirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "deadbeef",
	}

	assert.ErrorIs(t, g.VerifyPayment(context.Background(), conf), ErrNotVerified)
}

func TestVerifyPayment_MissingFields(t *testing.T) {
	g := NewGateway(testConfig("http://unused"))

	err := g.VerifyPayment(context.Background(), Confirmation{})
	assert.ErrorIs(t, err, ErrNotVerified)
}

func TestVerifyPayment_MissingCredentials(t *testing.T) {
	g := NewGateway(&config.Config{Payment: config.PaymentConfig{Timeout: time.Second}})

	// A signature computed under an empty secret must not verify when
	// the deployment has no secret configured.
	conf := Confirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: sign("", "order_1", "pay_1"),
	}

	err := g.VerifyPayment(context.Background(), conf)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotVerified)
}

func TestVerifyPayment_SignatureForDifferentOrder(t *testing.T) {
	g := NewGateway(testConfig("http://unused"))

	conf := Confirmation{
		OrderID:   "order_2",
		PaymentID: "pay_1",
		Signature: sign("test_secret", "order_1", "pay_1"),
	}

	assert.ErrorIs(t, g.VerifyPayment(context.Background(), conf), ErrNotVerified)
}

func TestCreateOrder_ConvertsAmountToSubunits(t *testing.T) {
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "test_secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"order_live","amount":4999,"currency":"INR","receipt":"rcpt_s1","status":"created"}`))
	}))
	defer server.Close()

	g := NewGateway(testConfig(server.URL))

	gw, err := g.CreateOrder(context.Background(), 49.99, "rcpt_s1")

	require.NoError(t, err)
	assert.Equal(t, "order_live", gw.ID)
	assert.Equal(t, int64(4999), gw.Amount)
	assert.Equal(t, "INR", gw.Currency)
	assert.Equal(t, "rzp_test_key", gw.KeyID)

	assert.Equal(t, float64(4999), gotBody["amount"])
	assert.Equal(t, "INR", gotBody["currency"])
}

func TestCreateOrder_MissingCredentials(t *testing.T) {
	g := NewGateway(&config.Config{Payment: config.PaymentConfig{Timeout: time.Second}})

	_, err := g.CreateOrder(context.Background(), 10.0, "rcpt")
	assert.Error(t, err)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"description":"amount too low"}}`))
	}))
	defer server.Close()

	g := NewGateway(testConfig(server.URL))

	_, err := g.CreateOrder(context.Background(), 0.001, "rcpt")
	assert.Error(t, err)
}
