// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/payment"
)

// ErrEmptyCart is returned when checkout is attempted with no items
var ErrEmptyCart = errors.New("checkout: cart is empty")

// Gateway is the slice of the payment gateway checkout depends on
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64, receipt string) (*payment.GatewayOrder, error)
	VerifyPayment(ctx context.Context, conf payment.Confirmation) error
}

// Recorder persists completed orders outside the session log
type Recorder interface {
	Create(o order.Order, userID string) error
}

// Service drives the checkout flow for a session
type Service struct {
	carts   *cart.Service
	orders  *order.LogService
	records Recorder
	gateway Gateway
	logger  *logrus.Logger
}

// NewService creates a new checkout service
func NewService(carts *cart.Service, orders *order.LogService, records Recorder, gateway Gateway, logger *logrus.Logger) *Service {
	return &Service{
		carts:   carts,
		orders:  orders,
		records: records,
		gateway: gateway,
		logger:  logger,
	}
}

// Initiate opens a gateway order for the session's current cart total.
// The returned order carries the public key id the payment widget needs.
func (s *Service) Initiate(ctx context.Context, sessionID string) (*payment.GatewayOrder, error) {
	c := s.carts.Get(ctx, sessionID)
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	receipt := fmt.Sprintf("rcpt_%s", sessionID)
	gw, err := s.gateway.CreateOrder(ctx, c.Total(), receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate payment: %w", err)
	}

	return gw, nil
}

// Complete verifies the payment confirmation and finalizes the order.
// An empty or invalid confirmation — the widget never loaded, the buyer
// cancelled, or the signature check failed — still produces a failed
// order in the session log, and the cart is left untouched so the buyer
// can retry. shopperEmail is the authenticated shopper, empty for
// anonymous checkouts.
func (s *Service) Complete(ctx context.Context, sessionID, shopperEmail string, conf payment.Confirmation, shipping order.ShippingDetails) (*order.Order, error) {
	c := s.carts.Get(ctx, sessionID)
	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := s.gateway.VerifyPayment(ctx, conf); err != nil {
		failed := order.New(c, order.StatusFailed, shipping)
		s.orders.Append(ctx, sessionID, failed)
		s.logger.WithFields(logrus.Fields{
			"order_id":   failed.ID,
			"session_id": sessionID,
		}).Warn("Payment verification failed")
		return &failed, err
	}

	o := order.New(c, order.StatusSuccess, shipping)
	s.orders.Append(ctx, sessionID, o)

	if s.records != nil {
		if err := s.records.Create(o, shopperEmail); err != nil {
			s.logger.WithError(err).WithField("order_id", o.ID).Warn("Failed to record order")
		}
	}

	s.carts.Clear(ctx, sessionID)

	s.logger.WithFields(logrus.Fields{
		"order_id": o.ID,
		"total":    o.Total,
	}).Info("Order completed")

	return &o, nil
}
