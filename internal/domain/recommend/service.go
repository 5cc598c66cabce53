// internal/domain/recommend/service.go
package recommend

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/history"
)

// candidateLimit caps the number of recommendation candidates fetched
const candidateLimit = 10

// Catalog is the subset of the catalog client the engine depends on
type Catalog interface {
	FeaturedProducts(ctx context.Context, limit int) ([]catalog.Product, error)
	ProductsInCategories(ctx context.Context, categories []string, exclude []int64, limit int) ([]catalog.Product, error)
}

// Result carries the recommendation list together with a retained,
// non-fatal error. Products is never nil: on failure it holds the
// fallback list and Err records what went wrong.
type Result struct {
	Products []catalog.Product `json:"products"`
	Err      error             `json:"-"`
}

// Service derives suggested products from browsing history categories,
// degrading to a fixed fallback list on fetch failure.
type Service struct {
	catalog  Catalog
	history  *history.Service
	fallback FallbackProvider
	logger   *logrus.Logger
}

// NewService creates a new recommendation service. A nil fallback uses
// the built-in sample list.
func NewService(cat Catalog, hist *history.Service, fallback FallbackProvider, logger *logrus.Logger) *Service {
	if fallback == nil {
		fallback = DefaultFallback()
	}
	return &Service{
		catalog:  cat,
		history:  hist,
		fallback: fallback,
		logger:   logger,
	}
}

// Recommendations computes suggestions for a session. With empty history
// the candidates are featured products; otherwise products from the
// distinct history categories, excluding anything already viewed. Up to
// 10 candidates either way.
func (s *Service) Recommendations(ctx context.Context, sessionID string) Result {
	h := s.history.Get(ctx, sessionID)

	if len(h.Items) == 0 {
		products, err := s.catalog.FeaturedProducts(ctx, candidateLimit)
		if err != nil {
			return s.degrade(err)
		}
		return Result{Products: products}
	}

	products, err := s.catalog.ProductsInCategories(ctx, h.Categories(), h.ProductIDs(), candidateLimit)
	if err != nil {
		return s.degrade(err)
	}
	return Result{Products: products}
}

func (s *Service) degrade(err error) Result {
	s.logger.WithError(err).Warn("Recommendation fetch failed, using fallback list")
	return Result{
		Products: s.fallback.Fallback(),
		Err:      err,
	}
}
