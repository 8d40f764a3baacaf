package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toteworks/storefront/internal/catalog"
)

func newStores(t *testing.T) (*catalog.MemStore, *MemStore) {
	t.Helper()
	ctx := context.Background()
	cat := catalog.NewMemStore()
	require.NoError(t, cat.AddArtist(ctx, &catalog.Artist{ID: "a1", Name: "Ada"}))
	require.NoError(t, cat.AddProduct(ctx, &catalog.Product{ID: "p1", Name: "Tote One", Price: "10.00", ArtistID: "a1", InStock: true}))
	require.NoError(t, cat.AddProduct(ctx, &catalog.Product{ID: "p2", Name: "Tote Two", Price: "20.00", SalePrice: "15.00", ArtistID: "a1", InStock: true}))
	return cat, NewMemStore(cat)
}

func TestAddItemMergesDuplicates(t *testing.T) {
	_, s := newStores(t)
	ctx := context.Background()

	first, err := s.AddItem(ctx, "s1", "p1", 1)
	require.NoError(t, err)
	second, err := s.AddItem(ctx, "s1", "p1", 2)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Quantity)

	items, err := s.Items(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddItemScopedBySession(t *testing.T) {
	_, s := newStores(t)
	ctx := context.Background()

	_, err := s.AddItem(ctx, "s1", "p1", 1)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "s2", "p1", 1)
	require.NoError(t, err)

	one, _ := s.Items(ctx, "s1")
	two, _ := s.Items(ctx, "s2")
	assert.Len(t, one, 1)
	assert.Len(t, two, 1)
	assert.NotEqual(t, one[0].ID, two[0].ID)
}

func TestAddItemClampsQuantityAndChecksProduct(t *testing.T) {
	_, s := newStores(t)
	ctx := context.Background()

	it, err := s.AddItem(ctx, "s1", "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, it.Quantity)

	_, err = s.AddItem(ctx, "s1", "missing", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateQuantity(t *testing.T) {
	_, s := newStores(t)
	ctx := context.Background()

	it, err := s.AddItem(ctx, "s1", "p1", 1)
	require.NoError(t, err)

	updated, err := s.UpdateQuantity(ctx, it.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	_, err = s.UpdateQuantity(ctx, it.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = s.UpdateQuantity(ctx, "missing", 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveItemIdempotent(t *testing.T) {
	_, s := newStores(t)
	ctx := context.Background()

	it, err := s.AddItem(ctx, "s1", "p1", 1)
	require.NoError(t, err)
	require.NoError(t, s.RemoveItem(ctx, it.ID))
	require.NoError(t, s.RemoveItem(ctx, it.ID)) // second delete is a no-op

	items, _ := s.Items(ctx, "s1")
	assert.Empty(t, items)
}

func TestClearCart(t *testing.T) {
	_, s := newStores(t)
	ctx := context.Background()

	_, _ = s.AddItem(ctx, "s1", "p1", 1)
	_, _ = s.AddItem(ctx, "s1", "p2", 2)
	_, _ = s.AddItem(ctx, "s2", "p1", 1)

	require.NoError(t, s.ClearCart(ctx, "s1"))
	require.NoError(t, s.ClearCart(ctx, "s1")) // idempotent

	one, _ := s.Items(ctx, "s1")
	two, _ := s.Items(ctx, "s2")
	assert.Empty(t, one)
	assert.Len(t, two, 1)
}

func TestSummarizeUsesSalePrice(t *testing.T) {
	_, s := newStores(t)
	ctx := context.Background()

	_, _ = s.AddItem(ctx, "s1", "p1", 3)  // 3 x 10.00
	_, _ = s.AddItem(ctx, "s1", "p2", 2)  // 2 x 15.00 sale price, not 20.00

	items, err := s.Items(ctx, "s1")
	require.NoError(t, err)
	sum, err := Summarize(items)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.ItemCount)
	assert.Equal(t, "60.00", sum.TotalPrice)
}

func TestItemsKeepInsertionOrder(t *testing.T) {
	_, s := newStores(t)
	ctx := context.Background()

	_, _ = s.AddItem(ctx, "s1", "p2", 1)
	_, _ = s.AddItem(ctx, "s1", "p1", 1)

	items, err := s.Items(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "p2", items[0].ProductID)
	assert.Equal(t, "p1", items[1].ProductID)
}
