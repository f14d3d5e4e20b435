package controllers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"thorned-magnolia/models"
	"thorned-magnolia/repositories"
	"thorned-magnolia/services"
)

type CustomOrderController struct {
	orders *services.OrderService
}

func NewCustomOrderController(orders *services.OrderService) *CustomOrderController {
	return &CustomOrderController{orders: orders}
}

// @Summary Submit custom order
// @Description Create a custom order; total price is computed server-side
// @Tags Custom Orders
// @Accept json
// @Produce json
// @Param order body models.CreateCustomOrderRequest true "Custom order"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/custom-orders [post]
func (ctrl *CustomOrderController) Create(c *gin.Context) {
	var req models.CreateCustomOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := ctrl.orders.CreateCustomOrder(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create custom order"})
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Custom order created", "data": order})
}

// @Summary Get all custom orders
// @Description List custom orders, newest first (Admin)
// @Tags Custom Orders
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/custom-orders [get]
func (ctrl *CustomOrderController) GetAll(c *gin.Context) {
	orders, err := ctrl.orders.GetCustomOrders(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve custom orders"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Custom orders retrieved", "data": orders})
}

// @Summary Get custom order
// @Description Get a custom order by its order number
// @Tags Custom Orders
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/custom-orders/{orderId} [get]
func (ctrl *CustomOrderController) GetByOrderID(c *gin.Context) {
	order, err := ctrl.orders.GetCustomOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve order"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// @Summary Update custom order status
// @Description Change the status of a custom order (Admin)
// @Tags Custom Orders
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param status body models.UpdateCustomOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/custom-orders/{orderId}/status [put]
func (ctrl *CustomOrderController) UpdateStatus(c *gin.Context) {
	var req models.UpdateCustomOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Status is required"})
		return
	}

	err := ctrl.orders.UpdateCustomOrderStatus(c.Request.Context(), c.Param("orderId"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(400, gin.H{"success": false, "message": "Invalid status"})
			return
		}
		if errors.Is(err, repositories.ErrOrderNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": fmt.Sprintf("Order status updated to %s", req.Status)})
}
