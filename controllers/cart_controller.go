package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/undivisible/gizzmoelectronics.com/models"
	"github.com/undivisible/gizzmoelectronics.com/store"
)

// SessionHeader carries the opaque cart session identifier. The server mints
// one when the client does not send it and echoes it on every response.
const SessionHeader = "X-Session-ID"

type CartController struct {
	Manager *store.Manager
	Logger  *zap.Logger
}

func NewCartController(manager *store.Manager, logger *zap.Logger) *CartController {
	return &CartController{
		Manager: manager,
		Logger:  logger,
	}
}

func (cc *CartController) session(c *gin.Context) *store.CartStore {
	sid := c.GetHeader(SessionHeader)
	if sid == "" {
		sid = uuid.NewString()
	}
	c.Header(SessionHeader, sid)
	return cc.Manager.Get(sid)
}

// GetCart returns the current cart snapshot
func (cc *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cc.session(c).State())
}

// AddItem adds a product to the cart, merging quantity on repeat adds
func (cc *CartController) AddItem(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		cc.Logger.Warn("Invalid add-item payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	s := cc.session(c)
	s.AddItem(product)
	c.JSON(http.StatusOK, s.State())
}

// RemoveItem removes a product from the cart; absent products are a no-op
func (cc *CartController) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	s := cc.session(c)
	s.RemoveItem(productID)
	c.JSON(http.StatusOK, s.State())
}

// UpdateQuantity sets an item's quantity; zero or less removes the item
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	s := cc.session(c)
	s.SetQuantity(productID, *req.Quantity)
	c.JSON(http.StatusOK, s.State())
}

// ClearCart empties the cart, leaving the panel visibility untouched
func (cc *CartController) ClearCart(c *gin.Context) {
	s := cc.session(c)
	s.Clear()
	c.JSON(http.StatusOK, s.State())
}

func (cc *CartController) OpenCart(c *gin.Context) {
	s := cc.session(c)
	s.Open()
	c.JSON(http.StatusOK, s.State())
}

func (cc *CartController) CloseCart(c *gin.Context) {
	s := cc.session(c)
	s.Close()
	c.JSON(http.StatusOK, s.State())
}

func (cc *CartController) ToggleCart(c *gin.Context) {
	s := cc.session(c)
	s.Toggle()
	c.JSON(http.StatusOK, s.State())
}
