// Package cart holds session-scoped shopping carts. A cart is keyed by an
// opaque client-generated session id, independent of any user account.
package cart

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("cart: item not found")
	ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")
)

type Store interface {
	// Items returns every row for the session, hydrated with its product and
	// artist, in insertion order.
	Items(ctx context.Context, sessionID string) ([]ItemWithProduct, error)
	// AddItem merges on duplicate: at most one row exists per
	// (session, product) pair; adding the same product again increments the
	// quantity instead of creating a second row. A quantity below 1 is
	// treated as 1.
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (*Item, error)
	// UpdateQuantity sets an absolute quantity; values below 1 fail with
	// ErrInvalidQuantity. The store is the single enforcement point for the
	// lower bound.
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*Item, error)
	// RemoveItem is idempotent by id.
	RemoveItem(ctx context.Context, itemID string) error
	// ClearCart is idempotent so the checkout path stays retry-safe.
	ClearCart(ctx context.Context, sessionID string) error
}

// Summarize derives the count and total of a hydrated cart. The sale price,
// when present, always wins over the list price.
func Summarize(items []ItemWithProduct) (Summary, error) {
	total := decimal.Zero
	count := 0
	for _, it := range items {
		price, err := decimal.NewFromString(it.Product.EffectivePrice())
		if err != nil {
			return Summary{}, err
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		count += it.Quantity
	}
	return Summary{ItemCount: count, TotalPrice: total.StringFixed(2)}, nil
}
