package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/toteworks/storefront/internal/cart"
)

// ErrIntentUsed guards the confirm endpoint against replaying a payment
// intent into a second order.
var ErrIntentUsed = errors.New("order: payment intent already used")

type CustomerInfo struct {
	UserID          string
	Email           string
	Name            string
	ShippingAddress string
}

// Checkout turns a session's cart into an order. Line prices and the order
// total are snapshotted here, once; the store inserts order and lines in a
// single critical section, and the cart clear afterwards is idempotent so a
// retried confirm cannot double-charge or strand rows.
type Checkout struct {
	carts       cart.Store
	orders      Store
	fulfillment *Fulfillment
}

func NewCheckout(carts cart.Store, orders Store, fulfillment *Fulfillment) *Checkout {
	return &Checkout{carts: carts, orders: orders, fulfillment: fulfillment}
}

// snapshot copies the cart into order lines at current effective prices.
func (c *Checkout) snapshot(ctx context.Context, sessionID string) ([]Item, string, error) {
	items, err := c.carts.Items(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	if len(items) == 0 {
		return nil, "", ErrEmptyCart
	}
	lines := make([]Item, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		price := it.Product.EffectivePrice()
		d, err := decimal.NewFromString(price)
		if err != nil {
			return nil, "", fmt.Errorf("product %s has malformed price %q: %w", it.ProductID, price, err)
		}
		total = total.Add(d.Mul(decimal.NewFromInt(int64(it.Quantity))))
		lines = append(lines, Item{ProductID: it.ProductID, Quantity: it.Quantity, Price: price})
	}
	return lines, total.StringFixed(2), nil
}

func (c *Checkout) create(ctx context.Context, sessionID, intentID string, info CustomerInfo) (*Order, error) {
	lines, total, err := c.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	o := &Order{
		SessionID:       sessionID,
		UserID:          info.UserID,
		PaymentIntentID: intentID,
		Status:          StatusConfirmed,
		TotalAmount:     total,
		CustomerEmail:   info.Email,
		CustomerName:    info.Name,
		ShippingAddress: info.ShippingAddress,
	}
	if err := c.orders.Create(ctx, o, lines); err != nil {
		return nil, err
	}
	if err := c.carts.ClearCart(ctx, sessionID); err != nil {
		return nil, err
	}
	return o, nil
}

// ConfirmPayment finalizes an order after the external processor reported a
// completed charge. Payment already succeeded, so the order is born
// confirmed; there is no pending window.
func (c *Checkout) ConfirmPayment(ctx context.Context, sessionID, intentID string, info CustomerInfo) (*Order, error) {
	if _, err := c.orders.ByPaymentIntent(ctx, intentID); err == nil {
		return nil, ErrIntentUsed
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return c.create(ctx, sessionID, intentID, info)
}

// Demo creates an order with payment bypassed and hands it to the simulated
// fulfillment timers.
func (c *Checkout) Demo(ctx context.Context, sessionID string, info CustomerInfo) (*Order, error) {
	intentID := fmt.Sprintf("demo_order_%d", time.Now().UnixMilli())
	o, err := c.create(ctx, sessionID, intentID, info)
	if err != nil {
		return nil, err
	}
	if c.fulfillment != nil {
		c.fulfillment.Track(o.ID)
	}
	return o, nil
}
