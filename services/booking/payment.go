package booking

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentSession is the payment the traveler completes on the client.
type PaymentSession struct {
	ID           string
	ClientSecret string
	Status       string
}

// PaymentStatusNotRequired marks bookings taken without online payment.
const PaymentStatusNotRequired = "not_required"

// PaymentGateway opens and voids payment sessions for bookings.
type PaymentGateway interface {
	CreateSession(ctx context.Context, amount float64, currency, reference string) (PaymentSession, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// NoopGateway is used when no payment provider is configured.
type NoopGateway struct{}

func (NoopGateway) CreateSession(context.Context, float64, string, string) (PaymentSession, error) {
	return PaymentSession{ID: "offline_" + uuid.New().String(), Status: PaymentStatusNotRequired}, nil
}

func (NoopGateway) CancelSession(context.Context, string) error {
	return nil
}

// StripeGateway creates Stripe PaymentIntents. stripe.Key must be set.
type StripeGateway struct{}

func NewStripeGateway(key string) *StripeGateway {
	stripe.Key = key
	return &StripeGateway{}
}

func (g *StripeGateway) CreateSession(ctx context.Context, amount float64, currency, reference string) (PaymentSession, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minorUnits(amount, currency)),
		Currency: stripe.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Description: stripe.String("Trip booking " + reference),
	}
	params.Context = ctx
	params.AddMetadata("booking_reference", reference)

	pi, err := paymentintent.New(params)
	if err != nil {
		return PaymentSession{}, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return PaymentSession{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}

func (g *StripeGateway) CancelSession(ctx context.Context, sessionID string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	if _, err := paymentintent.Cancel(sessionID, params); err != nil {
		return fmt.Errorf("failed to cancel payment intent %s: %w", sessionID, err)
	}
	return nil
}

var zeroDecimalCurrencies = map[string]bool{
	"JPY": true, "KRW": true, "VND": true, "CLP": true, "UGX": true, "RWF": true,
}

// minorUnits converts an amount to the smallest currency unit Stripe expects.
func minorUnits(amount float64, currency string) int64 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * 100))
}
