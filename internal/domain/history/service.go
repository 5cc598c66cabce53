// internal/domain/history/service.go
package history

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

// Limit caps the number of retained history entries; the oldest entry is
// evicted when a new distinct product pushes the list past the cap.
const Limit = 20

// History is a most-recent-first list of viewed products with no
// duplicate ids.
type History struct {
	Items []catalog.Product `json:"items"`
}

// Categories returns the distinct categories present, first-seen order
func (h *History) Categories() []string {
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, item := range h.Items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories
}

// ProductIDs returns the ids of all history entries
func (h *History) ProductIDs() []int64 {
	ids := make([]int64, len(h.Items))
	for i, item := range h.Items {
		ids[i] = item.ID
	}
	return ids
}

// Service handles browsing-history business logic
type Service struct {
	store  storage.Store
	logger *logrus.Logger
}

// NewService creates a new browsing-history service
func NewService(store storage.Store, logger *logrus.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get retrieves the history for a session. Missing or unreadable
// persisted state yields an empty history, never an error.
func (s *Service) Get(ctx context.Context, sessionID string) *History {
	return s.load(ctx, sessionID)
}

// Add records a product view. An existing entry with the same id moves to
// the front instead of duplicating; the list is truncated to Limit.
func (s *Service) Add(ctx context.Context, sessionID string, product catalog.Product) *History {
	h := s.load(ctx, sessionID)

	items := make([]catalog.Product, 0, len(h.Items)+1)
	items = append(items, product)
	for _, item := range h.Items {
		if item.ID != product.ID {
			items = append(items, item)
		}
	}
	if len(items) > Limit {
		items = items[:Limit]
	}
	h.Items = items

	s.persist(ctx, sessionID, h)
	return h
}

// Clear empties the history. The persisted key is deleted rather than
// written empty; both read back as an empty history.
func (s *Service) Clear(ctx context.Context, sessionID string) *History {
	if err := s.store.Delete(ctx, s.key(sessionID)); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to clear browsing history")
	}
	return &History{Items: []catalog.Product{}}
}

// Private helpers

func (s *Service) key(sessionID string) string {
	return fmt.Sprintf("history:session:%s", sessionID)
}

func (s *Service) load(ctx context.Context, sessionID string) *History {
	var h History
	err := s.store.Load(ctx, s.key(sessionID), &h)
	if err == storage.ErrNotFound {
		return &History{Items: []catalog.Product{}}
	} else if err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to load browsing history, starting empty")
		return &History{Items: []catalog.Product{}}
	}
	if h.Items == nil {
		h.Items = []catalog.Product{}
	}
	return &h
}

func (s *Service) persist(ctx context.Context, sessionID string, h *History) {
	if err := s.store.Save(ctx, s.key(sessionID), h); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to persist browsing history")
	}
}
