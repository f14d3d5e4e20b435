package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v80"

	"thorned-magnolia/models"
	"thorned-magnolia/services"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// @Summary Create payment intent
// @Description Create a Stripe payment intent and return its client secret
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body models.CreatePaymentIntentRequest true "Payment details"
// @Success 200 {object} models.PaymentIntentResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/create-payment-intent [post]
func (ctrl *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := ctrl.payments.CreatePaymentIntent(req)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			log.Error().Err(err).Msg("Stripe error")
			c.JSON(400, gin.H{"success": false, "message": stripeErr.Msg})
			return
		}
		log.Error().Err(err).Msg("Error creating payment intent")
		c.JSON(500, gin.H{"success": false, "message": "Failed to create payment intent"})
		return
	}

	c.JSON(200, result)
}
