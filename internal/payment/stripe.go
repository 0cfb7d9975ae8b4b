package payment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/paymentmethod"
)

// StripeProvider charges cards through Stripe PaymentIntents. It satisfies
// the same contract as the simulator, so the two are interchangeable behind
// the payment-provider config flag.
type StripeProvider struct {
	currency stripe.Currency
}

func NewStripeProvider() *StripeProvider {
	return &StripeProvider{
		currency: stripe.CurrencyUSD,
	}
}

func (s *StripeProvider) Charge(
	ctx context.Context,
	card domain.Card,
	amount decimal.Decimal,
	description string) (string, error) {

	if card.Number == "" || card.Expiry == "" || card.CVV == "" {
		return "", domain.ErrInvalidCard
	}

	expMonth, expYear, err := parseExpiry(card.Expiry)
	if err != nil {
		return "", err
	}

	methodParams := &stripe.PaymentMethodParams{
		Type: stripe.String("card"),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.Int64(expMonth),
			ExpYear:  stripe.Int64(expYear),
			CVC:      stripe.String(card.CVV),
		},
	}
	methodParams.Context = ctx

	method, err := paymentmethod.New(methodParams)
	if err != nil {
		return "", fmt.Errorf("failed to create payment method: %w", err)
	}

	amountCents := amount.Mul(decimal.NewFromInt(100)).IntPart()

	intentParams := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(string(s.currency)),
		Description:   stripe.String(description),
		PaymentMethod: stripe.String(method.ID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	intentParams.Context = ctx

	intent, err := paymentintent.New(intentParams)
	if err != nil {
		return "", fmt.Errorf("failed to confirm payment intent: %w", err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return "", fmt.Errorf("payment intent %s not completed: %s", intent.ID, intent.Status)
	}

	return intent.ID, nil
}

func parseExpiry(expiry string) (int64, int64, error) {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 {
		return 0, 0, domain.ErrInvalidCard
	}

	month, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, domain.ErrInvalidCard
	}

	year, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, domain.ErrInvalidCard
	}

	if year < 100 {
		year += 2000
	}

	return month, year, nil
}
