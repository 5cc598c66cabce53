// internal/domain/catalog/entity.go
package catalog

import "time"

// Rating is the aggregate rating for a product
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is the normalized product record served by the catalog backend.
// Instances are immutable once fetched; other components hold copies or
// reference products by ID.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Rating      Rating    `json:"rating"`
	Brand       string    `json:"brand,omitempty"`
	Featured    bool      `json:"featured"`
	TopSeller   bool      `json:"top_seller"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Category represents a product category record
type Category struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	ProductCount int    `json:"product_count"`
}

// productRecord is the raw product row as returned by the backend,
// before the rating join.
type productRecord struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Brand       string    `json:"brand"`
	Featured    bool      `json:"featured"`
	TopSeller   bool      `json:"top_seller"`
	CreatedAt   time.Time `json:"created_at"`
}

// ratingRecord is a row of the rating-aggregate table
type ratingRecord struct {
	ProductID int64   `json:"product_id"`
	Rate      float64 `json:"rate"`
	Count     int     `json:"count"`
}

func (r productRecord) normalize(ratings map[int64]ratingRecord) Product {
	p := Product{
		ID:          r.ID,
		Title:       r.Title,
		Price:       r.Price,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
		Brand:       r.Brand,
		Featured:    r.Featured,
		TopSeller:   r.TopSeller,
		CreatedAt:   r.CreatedAt,
	}
	// Products without a rating row get a zero aggregate
	if rating, ok := ratings[r.ID]; ok {
		p.Rating = Rating{Rate: rating.Rate, Count: rating.Count}
	}
	return p
}
