// internal/domain/order/log.go
package order

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// LogService keeps the per-session order history: an append-only,
// unbounded list, newest first. Orders are never updated or deleted once
// appended.
type LogService struct {
	store  storage.Store
	logger *logrus.Logger
}

// NewLogService creates a new order log service
func NewLogService(store storage.Store, logger *logrus.Logger) *LogService {
	return &LogService{
		store:  store,
		logger: logger,
	}
}

// List retrieves all logged orders for a session, newest first. Missing
// or unreadable persisted state yields an empty list, never an error.
func (s *LogService) List(ctx context.Context, sessionID string) []Order {
	return s.load(ctx, sessionID)
}

// Find returns the logged order with the given id, or nil
func (s *LogService) Find(ctx context.Context, sessionID, orderID string) *Order {
	for _, o := range s.load(ctx, sessionID) {
		if o.ID == orderID {
			return &o
		}
	}
	return nil
}

// Append prepends an order to the log and persists it
func (s *LogService) Append(ctx context.Context, sessionID string, o Order) {
	orders := append([]Order{o}, s.load(ctx, sessionID)...)
	if err := s.store.Save(ctx, s.key(sessionID), orders); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"session_id": sessionID,
			"order_id":   o.ID,
		}).Warn("Failed to persist order log")
	}
}

// Private helpers

func (s *LogService) key(sessionID string) string {
	return fmt.Sprintf("orders:session:%s", sessionID)
}

func (s *LogService) load(ctx context.Context, sessionID string) []Order {
	var orders []Order
	err := s.store.Load(ctx, s.key(sessionID), &orders)
	if err == storage.ErrNotFound {
		return []Order{}
	} else if err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to load order log, starting empty")
		return []Order{}
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders
}
