package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/catalog"
)

func products() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Title: "Shirt", Category: "clothing", Price: 30, Rating: catalog.Rating{Rate: 3.0}},
		{ID: 2, Title: "Phone", Category: "electronics", Price: 10, Rating: catalog.Rating{Rate: 4.5}},
		{ID: 3, Title: "Lamp", Category: "home", Price: 20, Rating: catalog.Rating{Rate: 4.0}},
	}
}

func ids(list []catalog.Product) []int64 {
	out := make([]int64, len(list))
	for i, p := range list {
		out[i] = p.ID
	}
	return out
}

func TestApply_NeutralOptionsPreserveInput(t *testing.T) {
	result := Apply(products(), Options{})
	assert.Equal(t, []int64{1, 2, 3}, ids(result))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	input := products()
	Apply(input, Options{Sort: SortPriceAsc})
	assert.Equal(t, []int64{1, 2, 3}, ids(input))
}

func TestApply_CategoryFilter(t *testing.T) {
	result := Apply(products(), Options{Categories: []string{"clothing", "home"}})
	assert.Equal(t, []int64{1, 3}, ids(result))
}

func TestApply_PriceBoundsAreInclusive(t *testing.T) {
	result := Apply(products(), Options{MinPrice: 10, MaxPrice: 20})
	assert.Equal(t, []int64{2, 3}, ids(result))
}

func TestApply_ZeroMaxPriceMeansUnbounded(t *testing.T) {
	result := Apply(products(), Options{MinPrice: 15})
	assert.Equal(t, []int64{1, 3}, ids(result))
}

func TestApply_MinRating(t *testing.T) {
	result := Apply(products(), Options{MinRating: 4.0})
	assert.Equal(t, []int64{2, 3}, ids(result))
}

func TestApply_FiltersCompose(t *testing.T) {
	result := Apply(products(), Options{
		Categories: []string{"electronics", "home"},
		MinPrice:   15,
		MinRating:  4.0,
	})
	assert.Equal(t, []int64{3}, ids(result))
}

func TestApply_SortPriceAsc(t *testing.T) {
	result := Apply(products(), Options{Sort: SortPriceAsc})
	assert.Equal(t, []int64{2, 3, 1}, ids(result))
}

func TestApply_SortPriceDesc(t *testing.T) {
	result := Apply(products(), Options{Sort: SortPriceDesc})
	assert.Equal(t, []int64{1, 3, 2}, ids(result))
}

func TestApply_SortRatingDesc(t *testing.T) {
	result := Apply(products(), Options{Sort: SortRatingDesc})
	assert.Equal(t, []int64{2, 3, 1}, ids(result))
}

func TestApply_SortNewestZeroTimesLast(t *testing.T) {
	now := time.Now()
	input := []catalog.Product{
		{ID: 1, CreatedAt: now.Add(-time.Hour)},
		{ID: 2}, // no creation time
		{ID: 3, CreatedAt: now},
	}

	result := Apply(input, Options{Sort: SortNewest})

	require.Len(t, result, 3)
	assert.Equal(t, []int64{3, 1, 2}, ids(result))
}

func TestApply_UnknownSortKeyPreservesOrder(t *testing.T) {
	result := Apply(products(), Options{Sort: SortKey("bogus")})
	assert.Equal(t, []int64{1, 2, 3}, ids(result))
}
