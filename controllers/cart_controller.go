package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"thorned-magnolia/models"
	"thorned-magnolia/repositories"
	"thorned-magnolia/services"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// @Summary Get cart
// @Description Get the cart for a session; a session with no cart gets a null body
// @Tags Cart
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.Response
// @Router /api/cart/{sessionId} [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cart.GetCart(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			c.JSON(200, gin.H{"success": true, "message": "No cart for session", "data": nil})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cart})
}

// @Summary Add item to cart
// @Description Add a line to the session's cart; a matching line accumulates quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Cart item"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	cart, err := ctrl.cart.AddItem(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to add item to cart"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item added to cart", "data": cart})
}

// @Summary Update cart item
// @Description Partially update a cart line; absent fields are left untouched
// @Tags Cart
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param itemId path string true "Cart item ID"
// @Param item body models.UpdateCartItemRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/{sessionId}/items/{itemId} [put]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}
	if req.Empty() {
		c.JSON(400, gin.H{"success": false, "message": "No update data provided"})
		return
	}

	err := ctrl.cart.UpdateItem(c.Request.Context(), c.Param("sessionId"), c.Param("itemId"), req)
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Cart item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update cart item"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart item updated successfully"})
}

// @Summary Remove cart item
// @Description Remove a line from the session's cart
// @Tags Cart
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param itemId path string true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/{sessionId}/items/{itemId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	err := ctrl.cart.RemoveItem(c.Request.Context(), c.Param("sessionId"), c.Param("itemId"))
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Cart item not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to remove cart item"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart"})
}

// @Summary Clear cart
// @Description Delete the session's cart entirely; idempotent
// @Tags Cart
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.Response
// @Router /api/cart/{sessionId} [delete]
func (ctrl *CartController) Clear(c *gin.Context) {
	found, err := ctrl.cart.Clear(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to clear cart"})
		return
	}
	if !found {
		c.JSON(200, gin.H{"success": true, "message": "No cart to clear"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Cart cleared successfully"})
}
