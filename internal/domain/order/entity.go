// internal/domain/order/entity.go
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront/internal/domain/cart"
)

// Status is the final outcome recorded for an order
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// LineItem is a point-in-time snapshot of a cart item. It does not track
// later changes to the product or the cart.
type LineItem struct {
	ProductID int64   `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Subtotal returns the line total for the item
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// ShippingDetails is the address form snapshot captured at checkout
type ShippingDetails struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country"`
}

// Order is the immutable record of a checkout attempt, successful or not
type Order struct {
	ID       string          `json:"id"`
	Date     time.Time       `json:"date"`
	Status   Status          `json:"status"`
	Total    float64         `json:"total"`
	Items    []LineItem      `json:"items"`
	Shipping ShippingDetails `json:"shipping_details"`
}

// New builds an order from the current cart contents. Line items are
// deep copies so the order survives the cart being cleared.
func New(c *cart.Cart, status Status, shipping ShippingDetails) Order {
	now := time.Now().UTC()

	items := make([]LineItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = LineItem{
			ProductID: item.ID,
			Title:     item.Title,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		}
	}

	// Timestamp for readability, uuid fragment for uniqueness within the
	// same millisecond
	suffix := strings.Split(uuid.New().String(), "-")[0]

	return Order{
		ID:       fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix),
		Date:     now,
		Status:   status,
		Total:    c.Total(),
		Items:    items,
		Shipping: shipping,
	}
}
