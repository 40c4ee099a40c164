package services

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"

	"github.com/undivisible/gizzmoelectronics.com/models"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// CheckoutService converts a cart snapshot into a hosted checkout session.
type CheckoutService interface {
	CreateSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *ServiceError)
}

type checkoutServiceImpl struct {
	gateway CheckoutGateway
	baseURL string
	logger  *zap.Logger
}

// NewCheckoutService creates a CheckoutService. baseURL is the public site
// URL used to build absolute image and redirect URLs.
func NewCheckoutService(gateway CheckoutGateway, baseURL string, logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{
		gateway: gateway,
		baseURL: baseURL,
		logger:  logger,
	}
}

// CreateSession validates the cart snapshot, builds Stripe line items and
// makes exactly one gateway call. Retries, if any, belong to the caller.
func (s *checkoutServiceImpl) CreateSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, *ServiceError) {
	if req == nil || len(req.Items) == 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "No items provided"}
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Description != "" {
			product.Description = stripe.String(item.Description)
		}
		if item.Image != "" {
			product.Images = stripe.StringSlice([]string{s.baseURL + item.Image})
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String("usd"),
				ProductData: product,
				UnitAmount:  stripe.Int64(toMinorUnits(item.Price)),
			},
			Quantity: stripe.Int64(int64(quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(s.baseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:          stripe.String(s.baseURL + "/checkout/cancel"),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	sess, err := s.gateway.CreateCheckoutSession(ctx, params)
	if err != nil {
		s.logger.Error("Stripe checkout session creation failed", zap.Error(err))
		msg := "Failed to create checkout session"
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
			msg = stripeErr.Msg
		}
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: msg}
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", sess.ID),
		zap.Int("line_items", len(lineItems)),
	)
	return &models.CheckoutResponse{URL: sess.URL}, nil
}

// toMinorUnits converts a decimal price to integer cents, rounding half away
// from zero. The result is deterministic for repeated calls on the same input.
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
