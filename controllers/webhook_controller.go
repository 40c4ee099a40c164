package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/undivisible/gizzmoelectronics.com/services"
)

type WebhookController struct {
	Service *services.WebhookService
	Logger  *zap.Logger
}

func NewWebhookController(svc *services.WebhookService, logger *zap.Logger) *WebhookController {
	return &WebhookController{
		Service: svc,
		Logger:  logger,
	}
}

// StripeWebhook handles POST /api/webhook/stripe. The body is read raw,
// before any JSON handling, because signature verification covers the exact
// bytes Stripe sent.
func (wc *WebhookController) StripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		wc.Logger.Warn("Failed to read webhook body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")

	if svcErr := wc.Service.Process(c.Request.Context(), payload, sigHeader); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
