package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"seminarly/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// ErrNotConfigured is returned when no gateway key is set.
var ErrNotConfigured = errors.New("online payments are not configured")

// Gateway opens payment intents. amount is in the smallest currency unit.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, description, receiptEmail string) (*models.PaymentIntent, error)
}

// StripeGateway creates Stripe payment intents. stripe.Key must be set at startup.
type StripeGateway struct {
	Currency string
}

func NewStripeGateway(currency string) *StripeGateway {
	return &StripeGateway{Currency: currency}
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, description, receiptEmail string) (*models.PaymentIntent, error) {
	if stripe.Key == "" {
		return nil, ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(g.Currency),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if receiptEmail != "" {
		params.ReceiptEmail = stripe.String(receiptEmail)
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: failed to create payment intent: %w", err)
	}
	return &models.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// ToMinorUnits converts a fee in major units (e.g. 500.00) to the smallest unit (50000).
func ToMinorUnits(fee float64) int64 {
	return int64(math.Round(fee * 100))
}
