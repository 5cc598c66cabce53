// internal/domain/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/your-org/storefront/internal/config"
)

// ErrNotFound is returned when the backend has no record for the given id
var ErrNotFound = fmt.Errorf("catalog: product not found")

// Client fetches product, rating and category records from the remote
// catalog backend and normalizes them into uniform product records.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new catalog client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Catalog.BaseURL, "/"),
		apiKey:  cfg.Catalog.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Catalog.Timeout,
		},
	}
}

// Products retrieves all products joined with their rating aggregates
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	records, err := c.fetchProducts(ctx, nil)
	if err != nil {
		return nil, err
	}

	ratings, err := c.fetchRatings(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]Product, len(records))
	for i, record := range records {
		products[i] = record.normalize(ratings)
	}

	return products, nil
}

// Product retrieves a single product by id with its rating aggregate
func (c *Client) Product(ctx context.Context, id int64) (*Product, error) {
	query := url.Values{}
	query.Set("id", strconv.FormatInt(id, 10))

	records, err := c.fetchProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}

	ratings, err := c.fetchRatings(ctx)
	if err != nil {
		return nil, err
	}

	product := records[0].normalize(ratings)
	return &product, nil
}

// FeaturedProducts retrieves up to limit featured products
func (c *Client) FeaturedProducts(ctx context.Context, limit int) ([]Product, error) {
	query := url.Values{}
	query.Set("featured", "true")
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	records, err := c.fetchProducts(ctx, query)
	if err != nil {
		return nil, err
	}

	ratings, err := c.fetchRatings(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(records))
	for _, record := range records {
		products = append(products, record.normalize(ratings))
		if limit > 0 && len(products) == limit {
			break
		}
	}

	return products, nil
}

// ProductsInCategories retrieves up to limit products from the given
// categories, excluding the given product ids.
func (c *Client) ProductsInCategories(ctx context.Context, categories []string, exclude []int64, limit int) ([]Product, error) {
	query := url.Values{}
	for _, category := range categories {
		query.Add("category", category)
	}
	// limit=0 means unbounded here; sending it would read as zero rows
	// on most backends.
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	records, err := c.fetchProducts(ctx, query)
	if err != nil {
		return nil, err
	}

	ratings, err := c.fetchRatings(ctx)
	if err != nil {
		return nil, err
	}

	excluded := make(map[int64]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}
	wanted := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		wanted[category] = struct{}{}
	}

	// The backend applies the same constraints; re-applying them here keeps
	// the result well-formed even when it does not.
	products := make([]Product, 0, len(records))
	for _, record := range records {
		if _, skip := excluded[record.ID]; skip {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[record.Category]; !ok {
				continue
			}
		}
		products = append(products, record.normalize(ratings))
		if limit > 0 && len(products) == limit {
			break
		}
	}

	return products, nil
}

// Categories retrieves all category records, ordered by name
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})

	return categories, nil
}

// Private helpers

func (c *Client) fetchProducts(ctx context.Context, query url.Values) ([]productRecord, error) {
	var records []productRecord
	if err := c.get(ctx, "/products", query, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return records, nil
}

func (c *Client) fetchRatings(ctx context.Context) (map[int64]ratingRecord, error) {
	var records []ratingRecord
	if err := c.get(ctx, "/product_ratings", nil, &records); err != nil {
		return nil, fmt.Errorf("failed to fetch product ratings: %w", err)
	}

	ratings := make(map[int64]ratingRecord, len(records))
	for _, record := range records {
		ratings[record.ProductID] = record
	}
	return ratings, nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, dest interface{}) error {
	requestURL := c.baseURL + endpoint
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("catalog request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return nil
}
