// Package payments wraps the external payment processor. When no secret key
// is configured the processor runs degraded: intent creation fails with
// ErrUnavailable instead of crashing the storefront.
package payments

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"
)

var ErrUnavailable = errors.New("payments: processor not configured")

type Intent struct {
	ID           string
	ClientSecret string
}

type Processor interface {
	// CreateIntent registers a charge for amount (a decimal string's worth of
	// major units) and returns the client secret the UI hands to the
	// processor's JS. The cart session id rides along as metadata.
	CreateIntent(ctx context.Context, amount decimal.Decimal, currency, sessionID string) (*Intent, error)
}

// NewStripe returns the live processor, or the degraded one when secretKey
// is empty.
func NewStripe(secretKey string) Processor {
	if secretKey == "" {
		return disabled{}
	}
	stripe.Key = secretKey
	return stripeProcessor{}
}

type stripeProcessor struct{}

func (stripeProcessor) CreateIntent(ctx context.Context, amount decimal.Decimal, currency, sessionID string) (*Intent, error) {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(cents),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	params.AddMetadata("session_id", sessionID)
	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

type disabled struct{}

func (disabled) CreateIntent(context.Context, decimal.Decimal, string, string) (*Intent, error) {
	return nil, ErrUnavailable
}
