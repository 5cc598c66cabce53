// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/storefront/internal/domain/catalog"
)

// Item is a product in the cart together with its quantity. Quantity is
// always at least 1 for a stored item; a quantity of zero or less removes
// the item instead.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Cart is an ordered collection of items, at most one per product id
type Cart struct {
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Count returns the total quantity across all items
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Total returns the sum of price times quantity across all items
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Find returns the item with the given product id, or nil
func (c *Cart) Find(productID int64) *Item {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
