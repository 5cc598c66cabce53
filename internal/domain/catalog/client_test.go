package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/config"
)

const productsBody = `[
	{"id":1,"title":"Shirt","price":30,"category":"clothing","featured":true},
	{"id":2,"title":"Phone","price":500,"category":"electronics","featured":false},
	{"id":3,"title":"Lamp","price":20,"category":"home","featured":true}
]`

const ratingsBody = `[
	{"product_id":1,"rate":4.5,"count":10},
	{"product_id":2,"rate":3.0,"count":2}
]`

func backend(t *testing.T, productsJSON string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/products":
			w.Write([]byte(productsJSON))
		case "/product_ratings":
			w.Write([]byte(ratingsBody))
		case "/categories":
			w.Write([]byte(`[
				{"id":1,"name":"home","image":"","product_count":1},
				{"id":2,"name":"clothing","image":"","product_count":1}
			]`))
		default:
			http.NotFound(w, r)
		}
	}))
}

func testClient(baseURL string) *Client {
	return NewClient(&config.Config{
		Catalog: config.CatalogConfig{
			BaseURL: baseURL,
			APIKey:  "test-key",
			Timeout: 5 * time.Second,
		},
	})
}

func TestProducts_JoinsRatings(t *testing.T) {
	server := backend(t, productsBody)
	defer server.Close()

	products, err := testClient(server.URL).Products(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, 4.5, products[0].Rating.Rate)
	assert.Equal(t, 10, products[0].Rating.Count)
}

func TestProducts_MissingRatingDefaultsToZero(t *testing.T) {
	server := backend(t, productsBody)
	defer server.Close()

	products, err := testClient(server.URL).Products(context.Background())

	require.NoError(t, err)
	assert.Zero(t, products[2].Rating.Rate)
	assert.Zero(t, products[2].Rating.Count)
}

func TestProduct_NotFound(t *testing.T) {
	server := backend(t, `[]`)
	defer server.Close()

	_, err := testClient(server.URL).Product(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductsInCategories_AppliesExclusions(t *testing.T) {
	server := backend(t, productsBody)
	defer server.Close()

	products, err := testClient(server.URL).ProductsInCategories(
		context.Background(),
		[]string{"clothing", "electronics"},
		[]int64{2},
		10,
	)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
}

func TestProductsInCategories_RespectsLimit(t *testing.T) {
	server := backend(t, productsBody)
	defer server.Close()

	products, err := testClient(server.URL).ProductsInCategories(
		context.Background(),
		nil,
		nil,
		2,
	)

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductsInCategories_OmitsLimitWhenUnbounded(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/products" {
			gotQuery = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).ProductsInCategories(
		context.Background(),
		[]string{"home"},
		nil,
		0,
	)

	require.NoError(t, err)
	assert.NotContains(t, gotQuery, "limit")
	assert.Equal(t, []string{"home"}, gotQuery["category"])
}

func TestCategories_SortedByName(t *testing.T) {
	server := backend(t, productsBody)
	defer server.Close()

	categories, err := testClient(server.URL).Categories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "clothing", categories[0].Name)
	assert.Equal(t, "home", categories[1].Name)
}

func TestClient_SendsAPIKeyHeaders(t *testing.T) {
	var gotAPIKey, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/products" {
			gotAPIKey = r.Header.Get("apikey")
			gotAuth = r.Header.Get("Authorization")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Products(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Products(context.Background())
	assert.Error(t, err)
}
