package controllers

import (
	"github.com/gin-gonic/gin"

	"thorned-magnolia/services"
)

// LookupController serves the static option tables the storefront renders
// its pickers from.
type LookupController struct{}

func NewLookupController() *LookupController {
	return &LookupController{}
}

// @Summary Get available fonts
// @Tags Lookups
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/fonts [get]
func (ctrl *LookupController) GetFonts(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Fonts retrieved", "data": services.AvailableFonts()})
}

// @Summary Get available sizes
// @Description Sizes with their extra cost from the pricing table
// @Tags Lookups
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/sizes [get]
func (ctrl *LookupController) GetSizes(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Sizes retrieved", "data": services.AvailableSizes()})
}

// @Summary Get available colors
// @Tags Lookups
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/colors [get]
func (ctrl *LookupController) GetColors(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Colors retrieved", "data": services.AvailableColors()})
}

// @Summary Get shirt styles
// @Description Shirt styles with their base prices
// @Tags Lookups
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/shirt-styles [get]
func (ctrl *LookupController) GetShirtStyles(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Shirt styles retrieved", "data": services.AvailableShirtStyles()})
}
