package mocks

import (
	"context"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

type MockPaymentProvider struct {
	ChargeFunc func(ctx context.Context, card domain.Card, amount decimal.Decimal, description string) (string, error)
}

func (m *MockPaymentProvider) Charge(ctx context.Context, card domain.Card, amount decimal.Decimal, description string) (string, error) {
	return m.ChargeFunc(ctx, card, amount, description)
}
