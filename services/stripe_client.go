package services

import (
	"context"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

// CheckoutGateway is the slice of the payment gateway the checkout flow needs.
// Kept as an interface so handlers and tests can swap in a fake.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeService is the production CheckoutGateway backed by the Stripe API.
type StripeService struct {
	SecretKey string
}

func NewStripeService(secretKey string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{SecretKey: secretKey}
}

func (s *StripeService) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx
	return session.New(params)
}
