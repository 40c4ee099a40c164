package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
	"go.uber.org/zap"

	"github.com/undivisible/gizzmoelectronics.com/database"
)

// WebhookService verifies Stripe webhook deliveries and dispatches them by
// event type. Verification needs the raw, unparsed request body: re-serialized
// JSON would not match the signature.
type WebhookService struct {
	secret string
	ledger database.Ledger
	logger *zap.Logger
}

func NewWebhookService(secret string, ledger database.Ledger, logger *zap.Logger) *WebhookService {
	return &WebhookService{
		secret: secret,
		ledger: ledger,
		logger: logger,
	}
}

// Process runs one delivery through the pipeline: precondition check,
// signature verification, then dispatch. A nil return means the event must be
// acknowledged with 200 — including unhandled event types, since Stripe
// retries anything else.
func (s *WebhookService) Process(ctx context.Context, payload []byte, sigHeader string) *ServiceError {
	if sigHeader == "" || s.secret == "" {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Missing signature or webhook secret"}
	}

	event, err := webhook.ConstructEvent(payload, sigHeader, s.secret)
	if err != nil {
		s.logger.Warn("Stripe webhook signature verification failed", zap.Error(err))
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Webhook signature verification failed"}
	}

	switch event.Type {
	case "checkout.session.completed":
		s.handleCheckoutCompleted(ctx, event)
	case "payment_intent.succeeded":
		s.handlePaymentIntentSucceeded(event)
	default:
		s.logger.Info("Unhandled webhook event type", zap.String("event_type", string(event.Type)))
	}

	return nil
}

// handleCheckoutCompleted logs fulfillment intent for a completed checkout.
// Stripe delivers at least once, so repeat deliveries for the same session are
// detected through the ledger and logged as duplicates. Fulfillment itself
// (order records, confirmation email) is not performed here.
func (s *WebhookService) handleCheckoutCompleted(ctx context.Context, event stripe.Event) {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		s.logger.Error("Failed to unmarshal checkout session", zap.Error(err))
		return
	}

	first, err := s.ledger.FirstDelivery(ctx, sess.ID)
	if err != nil {
		s.logger.Warn("Webhook ledger unavailable, processing without dedup",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		first = true
	}
	if !first {
		s.logger.Info("Duplicate checkout.session.completed delivery",
			zap.String("session_id", sess.ID),
			zap.String("event_id", event.ID),
		)
		return
	}

	s.logger.Info("Payment successful, order ready for fulfillment",
		zap.String("session_id", sess.ID),
		zap.String("customer_email", sess.CustomerEmail),
		zap.Int64("amount_total", sess.AmountTotal),
	)
}

func (s *WebhookService) handlePaymentIntentSucceeded(event stripe.Event) {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		s.logger.Error("Failed to unmarshal payment intent", zap.Error(err))
		return
	}

	s.logger.Info("Payment intent succeeded",
		zap.String("payment_intent_id", pi.ID),
		zap.Int64("amount", pi.Amount),
	)
}
