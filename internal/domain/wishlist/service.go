// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// Wishlist is a set of products keyed by product id, in insertion order
type Wishlist struct {
	Items     []catalog.Product `json:"items"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Contains reports whether the wishlist holds the given product id
func (w *Wishlist) Contains(productID int64) bool {
	for _, item := range w.Items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// Count returns the number of wishlist items
func (w *Wishlist) Count() int {
	return len(w.Items)
}

// Service handles wishlist business logic
type Service struct {
	store  storage.Store
	logger *logrus.Logger
}

// NewService creates a new wishlist service
func NewService(store storage.Store, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get retrieves the wishlist for a session. Missing or unreadable
// persisted state yields an empty wishlist, never an error.
func (s *Service) Get(ctx context.Context, sessionID string) *Wishlist {
	return s.load(ctx, sessionID)
}

// Add appends a product unless it is already present
func (s *Service) Add(ctx context.Context, sessionID string, product catalog.Product) *Wishlist {
	w := s.load(ctx, sessionID)
	if w.Contains(product.ID) {
		return w
	}

	w.Items = append(w.Items, product)
	s.persist(ctx, sessionID, w)
	return w
}

// Remove removes the product with the given id. Removing an absent
// product is a no-op.
func (s *Service) Remove(ctx context.Context, sessionID string, productID int64) *Wishlist {
	w := s.load(ctx, sessionID)

	items := w.Items[:0]
	for _, item := range w.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}
	w.Items = items

	s.persist(ctx, sessionID, w)
	return w
}

// Clear empties the wishlist and persists the empty state
func (s *Service) Clear(ctx context.Context, sessionID string) *Wishlist {
	w := &Wishlist{Items: []catalog.Product{}}
	s.persist(ctx, sessionID, w)
	return w
}

// Private helpers

func (s *Service) key(sessionID string) string {
	return fmt.Sprintf("wishlist:session:%s", sessionID)
}

func (s *Service) load(ctx context.Context, sessionID string) *Wishlist {
	var w Wishlist
	err := s.store.Load(ctx, s.key(sessionID), &w)
	if err == storage.ErrNotFound {
		return &Wishlist{Items: []catalog.Product{}}
	} else if err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to load wishlist, starting empty")
		return &Wishlist{Items: []catalog.Product{}}
	}
	if w.Items == nil {
		w.Items = []catalog.Product{}
	}
	return &w
}

func (s *Service) persist(ctx context.Context, sessionID string, w *Wishlist) {
	w.UpdatedAt = time.Now().UTC()
	if err := s.store.Save(ctx, s.key(sessionID), w); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to persist wishlist")
	}
}
