package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v76"
)

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(50000), ToMinorUnits(500))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(0), ToMinorUnits(0))
}

func TestStripeGatewayWithoutKey(t *testing.T) {
	stripe.Key = ""
	_, err := NewStripeGateway("inr").CreatePaymentIntent(context.Background(), 50000, "seat", "a@example.com")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
