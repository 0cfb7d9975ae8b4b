package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Card carries the three opaque payment fields collected from the user.
// The workflow requires each of them to be non-empty and validates nothing
// else; interpretation is left to the payment provider.
type Card struct {
	Number string
	Expiry string
	CVV    string
}

// PaymentProvider charges the given amount against a card and returns a
// provider-side reference for the completed payment.
type PaymentProvider interface {
	Charge(ctx context.Context, card Card, amount decimal.Decimal, description string) (string, error)
}
