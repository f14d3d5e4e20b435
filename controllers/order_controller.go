package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"thorned-magnolia/models"
	"thorned-magnolia/repositories"
	"thorned-magnolia/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// @Summary Place order
// @Description Create a catalog-based order; every line's product must exist
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/orders [post]
func (ctrl *OrderController) Create(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := ctrl.orders.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Order created", "data": order})
}

// @Summary Get all orders
// @Description List orders, newest first (Admin)
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/orders [get]
func (ctrl *OrderController) GetAll(c *gin.Context) {
	orders, err := ctrl.orders.GetOrders(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}

// @Summary Get orders by email
// @Description List a customer's orders, newest first
// @Tags Orders
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {object} models.Response
// @Router /api/orders/email/{email} [get]
func (ctrl *OrderController) GetByEmail(c *gin.Context) {
	orders, err := ctrl.orders.GetOrdersByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve orders"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Orders retrieved", "data": orders})
}
