package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/undivisible/gizzmoelectronics.com/manuals"
)

type ManualsController struct {
	Catalog *manuals.Catalog
}

func NewManualsController(catalog *manuals.Catalog) *ManualsController {
	return &ManualsController{Catalog: catalog}
}

// ListManuals handles GET /api/manuals
func (mc *ManualsController) ListManuals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"manuals": mc.Catalog.List()})
}
