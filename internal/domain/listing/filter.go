// internal/domain/listing/filter.go

// Package listing narrows and orders product lists. All functions are
// pure: they return fresh slices and never mutate their input.
package listing

import (
	"sort"

	"github.com/your-org/storefront/internal/domain/catalog"
)

// SortKey selects the ordering applied after filtering
type SortKey string

const (
	SortDefault    SortKey = "default"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRatingDesc SortKey = "rating-desc"
	SortNewest     SortKey = "newest"
)

// Options describes the filters and ordering to apply. The zero value is
// neutral: no category or rating filter, an unbounded price range and the
// input order preserved.
type Options struct {
	Categories []string
	MinPrice   float64
	MaxPrice   float64 // MaxPrice <= 0 means no upper bound
	MinRating  float64
	Sort       SortKey
}

// Apply filters products by category set, price range and minimum rating
// (AND-composed), then orders the result by the sort key.
func Apply(products []catalog.Product, opts Options) []catalog.Product {
	categories := make(map[string]struct{}, len(opts.Categories))
	for _, category := range opts.Categories {
		categories[category] = struct{}{}
	}

	filtered := make([]catalog.Product, 0, len(products))
	for _, product := range products {
		if len(categories) > 0 {
			if _, ok := categories[product.Category]; !ok {
				continue
			}
		}
		if product.Price < opts.MinPrice {
			continue
		}
		if opts.MaxPrice > 0 && product.Price > opts.MaxPrice {
			continue
		}
		if opts.MinRating > 0 && product.Rating.Rate < opts.MinRating {
			continue
		}
		filtered = append(filtered, product)
	}

	sortProducts(filtered, opts.Sort)
	return filtered
}

func sortProducts(products []catalog.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating.Rate > products[j].Rating.Rate
		})
	case SortNewest:
		// Records without a creation time sort last
		sort.SliceStable(products, func(i, j int) bool {
			if products[j].CreatedAt.IsZero() {
				return !products[i].CreatedAt.IsZero()
			}
			if products[i].CreatedAt.IsZero() {
				return false
			}
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	default:
		// Input order preserved
	}
}
