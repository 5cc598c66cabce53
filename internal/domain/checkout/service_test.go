package checkout

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/payment"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeGateway verifies or rejects every confirmation as configured
type fakeGateway struct {
	verifyErr  error
	created    *payment.GatewayOrder
	gotAmount  float64
	gotReceipt string
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount float64, receipt string) (*payment.GatewayOrder, error) {
	g.gotAmount = amount
	g.gotReceipt = receipt
	if g.created == nil {
		g.created = &payment.GatewayOrder{ID: "order_test", Amount: int64(amount * 100), Currency: "INR"}
	}
	return g.created, nil
}

func (g *fakeGateway) VerifyPayment(ctx context.Context, conf payment.Confirmation) error {
	return g.verifyErr
}

// fakeRecorder collects created records
type fakeRecorder struct {
	created []order.Order
	userIDs []string
	err     error
}

func (r *fakeRecorder) Create(o order.Order, userID string) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, o)
	r.userIDs = append(r.userIDs, userID)
	return nil
}

type fixture struct {
	svc      *Service
	carts    *cart.Service
	orders   *order.LogService
	gateway  *fakeGateway
	recorder *fakeRecorder
}

func newFixture() *fixture {
	store := storage.NewMemoryStore()
	log := testLogger()

	carts := cart.NewService(store, log)
	orders := order.NewLogService(store, log)
	gateway := &fakeGateway{}
	recorder := &fakeRecorder{}

	return &fixture{
		svc:      NewService(carts, orders, recorder, gateway, log),
		carts:    carts,
		orders:   orders,
		gateway:  gateway,
		recorder: recorder,
	}
}

func confirmation() payment.Confirmation {
	return payment.Confirmation{
		OrderID:   "order_test",
		PaymentID: "pay_test",
		Signature: "sig_test",
	}
}

func shipping() order.ShippingDetails {
	return order.ShippingDetails{
		FirstName:  "Asha",
		LastName:   "Iyer",
		Email:      "asha@example.com",
		Phone:      "5550100",
		Address:    "12 Market Road",
		City:       "Pune",
		State:      "MH",
		PostalCode: "411001",
		Country:    "IN",
	}
}

func TestInitiate_EmptyCart(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Initiate(context.Background(), "s1")

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestInitiate_CreatesGatewayOrderForCartTotal(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.carts.Add(ctx, "s1", catalog.Product{ID: 1, Price: 10.0}, 2)
	f.carts.Add(ctx, "s1", catalog.Product{ID: 2, Price: 5.0}, 1)

	gw, err := f.svc.Initiate(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, "order_test", gw.ID)
	assert.InDelta(t, 25.0, f.gateway.gotAmount, 0.001)
	assert.Equal(t, "rcpt_s1", f.gateway.gotReceipt)
}

func TestComplete_SuccessClearsCartAndRecordsOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.carts.Add(ctx, "s1", catalog.Product{ID: 1, Title: "Lamp", Price: 20.0}, 2)

	placed, err := f.svc.Complete(ctx, "s1", "", confirmation(), shipping())

	require.NoError(t, err)
	assert.Equal(t, order.StatusSuccess, placed.Status)
	assert.InDelta(t, 40.0, placed.Total, 0.001)
	require.Len(t, placed.Items, 1)
	assert.Equal(t, "Lamp", placed.Items[0].Title)

	// Cart is emptied
	assert.Empty(t, f.carts.Get(ctx, "s1").Items)

	// Order appears in the session log
	logged := f.orders.List(ctx, "s1")
	require.Len(t, logged, 1)
	assert.Equal(t, placed.ID, logged[0].ID)

	// Record written with the shopper email
	require.Len(t, f.recorder.created, 1)
	assert.Equal(t, "asha@example.com", f.recorder.created[0].Shipping.Email)
}

func TestComplete_VerificationFailureKeepsCart(t *testing.T) {
	f := newFixture()
	f.gateway.verifyErr = payment.ErrNotVerified
	ctx := context.Background()

	f.carts.Add(ctx, "s1", catalog.Product{ID: 1, Price: 20.0}, 1)

	placed, err := f.svc.Complete(ctx, "s1", "", confirmation(), shipping())

	assert.ErrorIs(t, err, payment.ErrNotVerified)
	require.NotNil(t, placed)
	assert.Equal(t, order.StatusFailed, placed.Status)

	// Cart untouched for retry
	assert.Len(t, f.carts.Get(ctx, "s1").Items, 1)

	// Failed attempt still logged
	logged := f.orders.List(ctx, "s1")
	require.Len(t, logged, 1)
	assert.Equal(t, order.StatusFailed, logged[0].Status)

	// No database record for failed payments
	assert.Empty(t, f.recorder.created)
}

func TestComplete_EmptyConfirmationLogsFailedOrder(t *testing.T) {
	// A cancelled or never-loaded payment widget submits no confirmation
	// fields at all; the real gateway rejects that, and the attempt must
	// still land in the order log with the cart intact.
	store := storage.NewMemoryStore()
	log := testLogger()
	carts := cart.NewService(store, log)
	orders := order.NewLogService(store, log)
	gateway := payment.NewGateway(&config.Config{
		Payment: config.PaymentConfig{KeyID: "rzp_test_key", KeySecret: "test_secret", Timeout: time.Second},
	})
	svc := NewService(carts, orders, nil, gateway, log)
	ctx := context.Background()

	carts.Add(ctx, "s1", catalog.Product{ID: 1, Price: 20.0}, 1)

	placed, err := svc.Complete(ctx, "s1", "", payment.Confirmation{}, shipping())

	assert.ErrorIs(t, err, payment.ErrNotVerified)
	require.NotNil(t, placed)
	assert.Equal(t, order.StatusFailed, placed.Status)

	assert.Len(t, carts.Get(ctx, "s1").Items, 1)

	logged := orders.List(ctx, "s1")
	require.Len(t, logged, 1)
	assert.Equal(t, order.StatusFailed, logged[0].Status)
}

func TestComplete_AuthenticatedShopperRecorded(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.carts.Add(ctx, "s1", catalog.Product{ID: 1, Price: 20.0}, 1)

	_, err := f.svc.Complete(ctx, "s1", "ravi@example.com", confirmation(), shipping())

	require.NoError(t, err)
	require.Len(t, f.recorder.userIDs, 1)
	assert.Equal(t, "ravi@example.com", f.recorder.userIDs[0])
}

func TestComplete_EmptyCart(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Complete(context.Background(), "s1", "", confirmation(), shipping())

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestComplete_RecorderFailureDoesNotFailCheckout(t *testing.T) {
	f := newFixture()
	f.recorder.err = assert.AnError
	ctx := context.Background()

	f.carts.Add(ctx, "s1", catalog.Product{ID: 1, Price: 20.0}, 1)

	placed, err := f.svc.Complete(ctx, "s1", "", confirmation(), shipping())

	require.NoError(t, err)
	assert.Equal(t, order.StatusSuccess, placed.Status)
}

func TestOrderLog_NewestFirst(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.carts.Add(ctx, "s1", catalog.Product{ID: 1, Price: 10.0}, 1)
	first, err := f.svc.Complete(ctx, "s1", "", confirmation(), shipping())
	require.NoError(t, err)

	f.carts.Add(ctx, "s1", catalog.Product{ID: 2, Price: 15.0}, 1)
	second, err := f.svc.Complete(ctx, "s1", "", confirmation(), shipping())
	require.NoError(t, err)

	logged := f.orders.List(ctx, "s1")
	require.Len(t, logged, 2)
	assert.Equal(t, second.ID, logged[0].ID)
	assert.Equal(t, first.ID, logged[1].ID)
}
