// internal/domain/payment/razorpay.go
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/your-org/storefront/internal/config"
)

// ErrNotVerified is returned when a payment confirmation fails
// server-side verification.
var ErrNotVerified = errors.New("payment: verification failed")

// GatewayOrder is an order created at the payment gateway, consumed by
// the checkout widget on the client.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // In currency subunits
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
	KeyID    string `json:"key_id"`
}

// Confirmation is the token set the widget yields on completion. The
// fields stay empty when the widget never loads or the buyer cancels;
// verification then fails and the attempt is logged as a failed order.
type Confirmation struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// Gateway talks to the Razorpay HTTP API
type Gateway struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// NewGateway creates a new Razorpay gateway client
func NewGateway(cfg *config.Config) *Gateway {
	return &Gateway{
		keyID:     cfg.Payment.KeyID,
		keySecret: cfg.Payment.KeySecret,
		baseURL:   cfg.Payment.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Payment.Timeout,
		},
	}
}

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder creates a gateway order for the given amount (major
// currency units; the gateway expects subunits).
func (g *Gateway) CreateOrder(ctx context.Context, amount float64, receipt string) (*GatewayOrder, error) {
	if g.keyID == "" || g.keySecret == "" {
		return nil, fmt.Errorf("payment gateway credentials not configured")
	}

	req := createOrderRequest{
		Amount:   int64(math.Round(amount * 100)),
		Currency: "INR",
		Receipt:  receipt,
	}

	response, err := g.call(ctx, http.MethodPost, "/orders", req)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	var order GatewayOrder
	if err := json.Unmarshal(response, &order); err != nil {
		return nil, fmt.Errorf("failed to parse gateway order response: %w", err)
	}
	order.KeyID = g.keyID

	return &order, nil
}

// VerifyPayment verifies a widget confirmation server-side. The signature
// is an HMAC-SHA256 of "<order_id>|<payment_id>" under the key secret.
func (g *Gateway) VerifyPayment(ctx context.Context, conf Confirmation) error {
	if g.keySecret == "" {
		return fmt.Errorf("payment gateway credentials not configured")
	}
	if conf.OrderID == "" || conf.PaymentID == "" || conf.Signature == "" {
		return ErrNotVerified
	}

	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(conf.OrderID + "|" + conf.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(conf.Signature)) {
		return ErrNotVerified
	}

	return nil
}

// call makes an authenticated HTTP call to the gateway API
func (g *Gateway) call(ctx context.Context, method, endpoint string, data interface{}) ([]byte, error) {
	var body []byte
	var err error

	if data != nil {
		body, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request data: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("gateway call failed with status %d: %s", resp.StatusCode, respBody)
	}

	return respBody, nil
}
