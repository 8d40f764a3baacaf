// Package catalog holds the artist and product data the storefront sells.
// Writes happen at seed time only; the HTTP surface is read-only.
package catalog

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("catalog: not found")

// Query narrows a product listing. Search takes precedence over ArtistID
// when both are set.
type Query struct {
	Search   string
	ArtistID string
}

type Store interface {
	Artists(ctx context.Context) ([]Artist, error)
	Artist(ctx context.Context, id string) (*Artist, error)
	// FeaturedArtist returns the artist currently carrying the featured flag,
	// or ErrNotFound when none does.
	FeaturedArtist(ctx context.Context) (*Artist, error)

	Products(ctx context.Context, q Query) ([]ProductWithArtist, error)
	FeaturedProducts(ctx context.Context) ([]ProductWithArtist, error)
	Product(ctx context.Context, id string) (*ProductWithArtist, error)

	// Seed-time writes; not reachable from the HTTP surface.
	AddArtist(ctx context.Context, a *Artist) error
	AddProduct(ctx context.Context, p *Product) error
	// SetFeaturedArtist flags one artist and clears the flag on any other,
	// keeping at most one featured artist at a time.
	SetFeaturedArtist(ctx context.Context, id string) error
}
