package services

import (
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/paymentintent"

	"thorned-magnolia/config"
	"thorned-magnolia/models"
)

type PaymentService struct{}

func NewPaymentService() *PaymentService {
	stripe.Key = config.AppConfig.StripeKey
	return &PaymentService{}
}

// CreatePaymentIntent forwards amount, currency and order metadata to
// Stripe and returns its client secret. Unlike mail dispatch, failures here
// surface to the caller: the client needs the secret to proceed.
func (s *PaymentService) CreatePaymentIntent(req models.CreatePaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	orderType := req.OrderData["type"]
	if orderType == "" {
		orderType = orderTypeRegular
	}
	params.AddMetadata("order_type", orderType)
	params.AddMetadata("customer_name", req.CustomerInfo["name"])
	params.AddMetadata("customer_email", req.CustomerInfo["email"])
	params.AddMetadata("customer_phone", req.CustomerInfo["phone"])

	if email := req.CustomerInfo["email"]; email != "" {
		params.ReceiptEmail = stripe.String(email)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &models.PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}
