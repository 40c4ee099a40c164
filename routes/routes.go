package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/undivisible/gizzmoelectronics.com/controllers"
)

func Register(
	r *gin.Engine,
	cartCtrl *controllers.CartController,
	checkoutCtrl *controllers.CheckoutController,
	webhookCtrl *controllers.WebhookController,
	manualsCtrl *controllers.ManualsController,
) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/create-checkout-session", checkoutCtrl.CreateCheckoutSession)

		// Stripe delivers here; the path must match the endpoint configured
		// in the Stripe dashboard.
		api.POST("/webhook/stripe", webhookCtrl.StripeWebhook)

		api.GET("/manuals", manualsCtrl.ListManuals)

		cart := api.Group("/cart")
		{
			cart.GET("", cartCtrl.GetCart)
			cart.DELETE("", cartCtrl.ClearCart)
			cart.POST("/items", cartCtrl.AddItem)
			cart.PATCH("/items/:product_id", cartCtrl.UpdateQuantity)
			cart.DELETE("/items/:product_id", cartCtrl.RemoveItem)
			cart.POST("/open", cartCtrl.OpenCart)
			cart.POST("/close", cartCtrl.CloseCart)
			cart.POST("/toggle", cartCtrl.ToggleCart)
		}
	}
}
