// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// Service handles cart business logic. The in-memory cart loaded per
// operation is the source of truth for that operation; every mutation is
// written back to the store before returning, best-effort.
type Service struct {
	store  storage.Store
	logger *logrus.Logger
}

// NewService creates a new cart service
func NewService(store storage.Store, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get retrieves the cart for a session. Missing or unreadable persisted
// state yields an empty cart, never an error.
func (s *Service) Get(ctx context.Context, sessionID string) *Cart {
	return s.load(ctx, sessionID)
}

// Add adds a product to the cart. If the product is already present its
// quantity is incremented; quantities of zero or less default to 1.
func (s *Service) Add(ctx context.Context, sessionID string, product catalog.Product, quantity int) *Cart {
	if quantity <= 0 {
		quantity = 1
	}

	c := s.load(ctx, sessionID)
	if existing := c.Find(product.ID); existing != nil {
		existing.Quantity += quantity
	} else {
		c.Items = append(c.Items, Item{Product: product, Quantity: quantity})
	}

	s.persist(ctx, sessionID, c)
	return c
}

// Remove removes the item with the given product id. Removing an absent
// item is a no-op.
func (s *Service) Remove(ctx context.Context, sessionID string, productID int64) *Cart {
	c := s.load(ctx, sessionID)

	items := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}
	c.Items = items

	s.persist(ctx, sessionID, c)
	return c
}

// UpdateQuantity replaces the quantity of the item with the given product
// id. A quantity of zero or less removes the item.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) *Cart {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, productID)
	}

	c := s.load(ctx, sessionID)
	if item := c.Find(productID); item != nil {
		item.Quantity = quantity
		s.persist(ctx, sessionID, c)
	}
	return c
}

// Clear empties the cart and persists the empty state
func (s *Service) Clear(ctx context.Context, sessionID string) *Cart {
	c := &Cart{Items: []Item{}}
	s.persist(ctx, sessionID, c)
	return c
}

// Private helpers

func (s *Service) key(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func (s *Service) load(ctx context.Context, sessionID string) *Cart {
	var c Cart
	err := s.store.Load(ctx, s.key(sessionID), &c)
	if err == storage.ErrNotFound {
		return &Cart{Items: []Item{}}
	} else if err != nil {
		// Unreadable state is treated as empty; the session starts over
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to load cart, starting empty")
		return &Cart{Items: []Item{}}
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return &c
}

func (s *Service) persist(ctx context.Context, sessionID string, c *Cart) {
	c.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, s.key(sessionID), c); err != nil {
		// Best-effort write; the in-memory cart remains authoritative for
		// this operation
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to persist cart")
	}
}
