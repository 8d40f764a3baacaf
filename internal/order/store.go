// Package order owns order rows, their immutable price-snapshot line items,
// and the status lifecycle.
package order

import (
	"context"
	"errors"
	"log"

	"github.com/toteworks/storefront/internal/catalog"
)

var (
	ErrNotFound          = errors.New("order: not found")
	ErrEmptyCart         = errors.New("order: cart is empty")
	ErrInvalidStatus     = errors.New("order: unknown status")
	ErrInvalidTransition = errors.New("order: invalid status transition")
)

type Store interface {
	// Create inserts the order and its line items atomically. Zero items is
	// ErrEmptyCart: an order without lines must never exist.
	Create(ctx context.Context, o *Order, items []Item) error
	Get(ctx context.Context, id string) (*Order, []Item, error)
	ByPaymentIntent(ctx context.Context, intentID string) (*Order, error)
	// ListByUser returns the user's orders newest-first.
	ListByUser(ctx context.Context, userID string) ([]Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	// UpdateStatus applies one transition. The move is validated against the
	// transition table; tracking is set only when non-empty.
	UpdateStatus(ctx context.Context, id string, next Status, tracking string) (*Order, error)
}

// Hydrate joins an order's lines with their products for display. A product
// that has left the catalog leaves the line intact (the snapshot price and
// quantity still stand) with a nil product.
func Hydrate(ctx context.Context, cat catalog.Store, o *Order, items []Item) *OrderWithItems {
	out := &OrderWithItems{Order: *o, Items: make([]ItemWithProduct, 0, len(items))}
	for _, it := range items {
		line := ItemWithProduct{Item: it}
		p, err := cat.Product(ctx, it.ProductID)
		if err != nil {
			log.Printf("[store] order %s line %s references missing product %s", o.ID, it.ID, it.ProductID)
		} else {
			line.Product = p
		}
		out.Items = append(out.Items, line)
	}
	return out
}
