package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/undivisible/gizzmoelectronics.com/models"
	"github.com/undivisible/gizzmoelectronics.com/services"
)

type CheckoutController struct {
	Service services.CheckoutService
	Logger  *zap.Logger
}

func NewCheckoutController(svc services.CheckoutService, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		Service: svc,
		Logger:  logger,
	}
}

// CreateCheckoutSession handles POST /api/create-checkout-session
func (cc *CheckoutController) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		cc.Logger.Warn("Invalid checkout payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "No items provided"})
		return
	}

	resp, svcErr := cc.Service.CreateSession(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, resp)
}
