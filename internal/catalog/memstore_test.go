package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *MemStore {
	t.Helper()
	s := NewMemStore()
	require.NoError(t, Seed(context.Background(), s))
	return s
}

func TestSeedCatalog(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	artists, err := s.Artists(ctx)
	require.NoError(t, err)
	assert.Len(t, artists, 7)

	products, err := s.Products(ctx, Query{})
	require.NoError(t, err)
	assert.Len(t, products, 7)
	for _, p := range products {
		assert.Equal(t, p.ArtistID, p.Artist.ID)
	}
}

func TestSearchProducts(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	got, err := s.Products(ctx, Query{Search: "GARDEN"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Garden Party Tote", got[0].Name)

	// description matches too
	got, err = s.Products(ctx, Query{Search: "ramen"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Happy Soup Tote", got[0].Name)

	got, err = s.Products(ctx, Query{Search: "no-such-thing"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchTakesPrecedenceOverArtistFilter(t *testing.T) {
	s := seeded(t)

	got, err := s.Products(context.Background(), Query{Search: "daydream", ArtistID: "artist-amy-ma"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "artist-alexis-zhang", got[0].ArtistID)
}

func TestProductsByArtist(t *testing.T) {
	s := seeded(t)

	got, err := s.Products(context.Background(), Query{ArtistID: "artist-amy-ma"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Carbon Memory Tote", got[0].Name)
}

func TestFeaturedQueries(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	a, err := s.FeaturedArtist(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Amy Ma", a.Name)

	featured, err := s.FeaturedProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, featured, 2)
}

func TestSetFeaturedArtistKeepsAtMostOne(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	require.NoError(t, s.SetFeaturedArtist(ctx, "artist-emma-xu"))

	a, err := s.FeaturedArtist(ctx)
	require.NoError(t, err)
	assert.Equal(t, "artist-emma-xu", a.ID)

	artists, _ := s.Artists(ctx)
	count := 0
	for _, a := range artists {
		if a.Featured {
			count++
		}
	}
	assert.Equal(t, 1, count)

	assert.ErrorIs(t, s.SetFeaturedArtist(ctx, "nope"), ErrNotFound)
}

func TestDanglingArtistExcludedFromListings(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	orphan := &Product{Name: "Orphan Tote", Description: "no artist", Price: "9.99", ArtistID: "gone", InStock: true}
	require.NoError(t, s.AddProduct(ctx, orphan))

	products, err := s.Products(ctx, Query{})
	require.NoError(t, err)
	assert.Len(t, products, 7) // orphan filtered out, not an error

	_, err = s.Product(ctx, orphan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEffectivePrice(t *testing.T) {
	p := Product{Price: "14.99"}
	assert.Equal(t, "14.99", p.EffectivePrice())
	p.SalePrice = "9.99"
	assert.Equal(t, "9.99", p.EffectivePrice())
}
