// internal/domain/search/service.go
package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/catalog"
)

// Service performs fuzzy text search over an in-memory product list.
// Matching covers title, category, description and brand; only candidates
// scoring at or above the configured minimum are returned, ranked best
// match first.
type Service struct {
	minScore   int
	maxResults int
}

// NewService creates a new search service
func NewService(cfg *config.Config) *Service {
	return &Service{
		minScore:   cfg.Search.MinScore,
		maxResults: cfg.Search.MaxResults,
	}
}

// Search returns the products matching term, best match first. An empty
// or whitespace-only term yields an empty result set.
func (s *Service) Search(term string, products []catalog.Product) []catalog.Product {
	term = strings.TrimSpace(term)
	if term == "" {
		return []catalog.Product{}
	}

	fields := [][]string{
		make([]string, len(products)),
		make([]string, len(products)),
		make([]string, len(products)),
		make([]string, len(products)),
	}
	for i, product := range products {
		fields[0][i] = product.Title
		fields[1][i] = product.Category
		fields[2][i] = product.Description
		fields[3][i] = product.Brand
	}

	// Best score per product across all searched fields
	best := make(map[int]int)
	for _, values := range fields {
		for _, match := range fuzzy.Find(term, values) {
			if match.Score < s.minScore {
				continue
			}
			if score, ok := best[match.Index]; !ok || match.Score > score {
				best[match.Index] = match.Score
			}
		}
	}

	type ranked struct {
		index int
		score int
	}
	order := make([]ranked, 0, len(best))
	for index, score := range best {
		order = append(order, ranked{index: index, score: score})
	}

	// Best match first; ties break on original position for determinism
	sort.Slice(order, func(i, j int) bool {
		if order[i].score != order[j].score {
			return order[i].score > order[j].score
		}
		return order[i].index < order[j].index
	})

	if s.maxResults > 0 && len(order) > s.maxResults {
		order = order[:s.maxResults]
	}

	results := make([]catalog.Product, len(order))
	for i, entry := range order {
		results[i] = products[entry.index]
	}
	return results
}
