package wishlist

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testProduct(id int64) catalog.Product {
	return catalog.Product{ID: id, Title: "Test Product", Price: 10.0}
}

func TestAdd_IgnoresDuplicates(t *testing.T) {
	svc := NewService(storage.NewMemoryStore(), testLogger())
	ctx := context.Background()

	svc.Add(ctx, "s1", testProduct(1))
	w := svc.Add(ctx, "s1", testProduct(1))

	assert.Equal(t, 1, w.Count())
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	svc := NewService(storage.NewMemoryStore(), testLogger())
	ctx := context.Background()

	svc.Add(ctx, "s1", testProduct(3))
	svc.Add(ctx, "s1", testProduct(1))
	w := svc.Add(ctx, "s1", testProduct(2))

	require.Equal(t, 3, w.Count())
	assert.Equal(t, int64(3), w.Items[0].ID)
	assert.Equal(t, int64(1), w.Items[1].ID)
	assert.Equal(t, int64(2), w.Items[2].ID)
}

func TestRemove(t *testing.T) {
	svc := NewService(storage.NewMemoryStore(), testLogger())
	ctx := context.Background()

	svc.Add(ctx, "s1", testProduct(1))
	svc.Add(ctx, "s1", testProduct(2))

	w := svc.Remove(ctx, "s1", 1)

	require.Equal(t, 1, w.Count())
	assert.False(t, w.Contains(1))
	assert.True(t, w.Contains(2))
}

func TestRemove_AbsentProductIsNoOp(t *testing.T) {
	svc := NewService(storage.NewMemoryStore(), testLogger())
	ctx := context.Background()

	svc.Add(ctx, "s1", testProduct(1))
	w := svc.Remove(ctx, "s1", 42)

	assert.Equal(t, 1, w.Count())
}

func TestGet_PersistsAcrossServiceInstances(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	NewService(store, testLogger()).Add(ctx, "s1", testProduct(1))
	w := NewService(store, testLogger()).Get(ctx, "s1")

	assert.True(t, w.Contains(1))
}

func TestClear(t *testing.T) {
	svc := NewService(storage.NewMemoryStore(), testLogger())
	ctx := context.Background()

	svc.Add(ctx, "s1", testProduct(1))
	svc.Clear(ctx, "s1")

	w := svc.Get(ctx, "s1")
	assert.Zero(t, w.Count())
}
