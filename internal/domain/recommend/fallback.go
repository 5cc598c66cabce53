// internal/domain/recommend/fallback.go
package recommend

import "github.com/your-org/storefront/internal/domain/catalog"

// FallbackProvider supplies the substitute product list shown when the
// live candidate fetch fails.
type FallbackProvider interface {
	Fallback() []catalog.Product
}

// StaticFallback serves a fixed product list
type StaticFallback struct {
	products []catalog.Product
}

// NewStaticFallback creates a provider around a fixed list
func NewStaticFallback(products []catalog.Product) *StaticFallback {
	return &StaticFallback{products: products}
}

// Fallback returns a copy of the fixed list
func (f *StaticFallback) Fallback() []catalog.Product {
	return append([]catalog.Product(nil), f.products...)
}

// DefaultFallback returns the built-in sample recommendations used when no
// provider is configured.
func DefaultFallback() *StaticFallback {
	return NewStaticFallback([]catalog.Product{
		{
			ID:          1,
			Title:       "Classic T-Shirt",
			Price:       29.99,
			Description: "A comfortable and stylish t-shirt for everyday wear.",
			Category:    "Clothing",
			Image:       "https://fakestoreapi.com/img/71-3HjGNDUL._AC_SY879._SX._UX._SY._UY_.jpg",
			Rating:      catalog.Rating{Rate: 4.5, Count: 120},
			Brand:       "FashionBrand",
			Featured:    true,
			TopSeller:   true,
		},
		{
			ID:          2,
			Title:       "Wireless Headphones",
			Price:       99.99,
			Description: "High-quality wireless headphones with noise cancellation.",
			Category:    "Electronics",
			Image:       "https://fakestoreapi.com/img/71li-ujtlUL._AC_UX679_.jpg",
			Rating:      catalog.Rating{Rate: 4.7, Count: 85},
			Brand:       "TechGear",
			Featured:    true,
			TopSeller:   true,
		},
		{
			ID:          3,
			Title:       "Leather Wallet",
			Price:       49.99,
			Description: "Genuine leather wallet with multiple card slots.",
			Category:    "Accessories",
			Image:       "https://fakestoreapi.com/img/81fPKd-2AYL._AC_SL1500_.jpg",
			Rating:      catalog.Rating{Rate: 4.3, Count: 65},
			Brand:       "LeatherCraft",
			Featured:    true,
			TopSeller:   false,
		},
		{
			ID:          4,
			Title:       "Smart Watch",
			Price:       199.99,
			Description: "Feature-rich smartwatch with health tracking capabilities.",
			Category:    "Electronics",
			Image:       "https://fakestoreapi.com/img/61sbMiSnoL._AC_UL640_QL65_ML3_.jpg",
			Rating:      catalog.Rating{Rate: 4.6, Count: 95},
			Brand:       "TechGear",
			Featured:    true,
			TopSeller:   true,
		},
	})
}
