package payment

import (
	"context"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardSimulator stands in for a real payment gateway. It accepts any card
// whose number, expiry and CVV are all non-empty and charges nothing; the
// returned reference is a locally generated identifier.
type CardSimulator struct{}

func NewCardSimulator() *CardSimulator {
	return &CardSimulator{}
}

func (s *CardSimulator) Charge(
	ctx context.Context,
	card domain.Card,
	amount decimal.Decimal,
	description string) (string, error) {

	if card.Number == "" || card.Expiry == "" || card.CVV == "" {
		return "", domain.ErrInvalidCard
	}

	return "sim_" + uuid.New().String(), nil
}
