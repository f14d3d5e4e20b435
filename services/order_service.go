package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"thorned-magnolia/models"
)

var ErrInvalidStatus = errors.New("invalid order status")

type CustomOrderStore interface {
	Create(ctx context.Context, order *models.CustomOrder) error
	GetAll(ctx context.Context) ([]models.CustomOrder, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.CustomOrder, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByEmail(ctx context.Context, email string) ([]models.Order, error)
}

// OrderNotifier dispatches the post-creation notification pair.
type OrderNotifier interface {
	SendOrderEmails(data OrderEmailData) (customerSent, businessSent bool)
}

type OrderService struct {
	customOrders CustomOrderStore
	orders       OrderStore
	products     ProductGetter
	mailer       OrderNotifier
}

func NewOrderService(customOrders CustomOrderStore, orders OrderStore, products ProductGetter, mailer OrderNotifier) *OrderService {
	return &OrderService{
		customOrders: customOrders,
		orders:       orders,
		products:     products,
		mailer:       mailer,
	}
}

// NewOrderID returns a customer-facing order number. Random rather than
// timestamp-derived so concurrent submissions cannot collide.
func NewOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	return "TMC-" + suffix
}

// CreateCustomOrder prices and persists a custom order, then dispatches the
// notification emails. Email failures are logged and swallowed; the order
// stands regardless.
func (s *OrderService) CreateCustomOrder(ctx context.Context, req models.CreateCustomOrderRequest) (*models.CustomOrder, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	printLocation := req.PrintLocation
	if printLocation == "" {
		printLocation = "front"
	}

	now := time.Now().UTC()
	order := &models.CustomOrder{
		ID:                  uuid.NewString(),
		OrderID:             NewOrderID(),
		CustomerName:        req.CustomerName,
		Email:               req.Email,
		Phone:               req.Phone,
		DesignImage:         req.DesignImage,
		DesignText:          req.DesignText,
		SelectedFont:        req.SelectedFont,
		ShirtStyle:          req.ShirtStyle,
		ShirtColor:          req.ShirtColor,
		Size:                req.Size,
		PrintLocation:       printLocation,
		Quantity:            quantity,
		TotalPrice:          Quote(req.ShirtStyle, printLocation, req.Size, quantity),
		SpecialInstructions: req.SpecialInstructions,
		Status:              models.CustomOrderStatusPending,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.customOrders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create custom order: %w", err)
	}

	log.Info().
		Str("order_id", order.OrderID).
		Float64("total_price", order.TotalPrice).
		Msg("Custom order created")

	s.dispatch(order.OrderID, EmailDataFromCustomOrder(order))
	return order, nil
}

func (s *OrderService) GetCustomOrders(ctx context.Context) ([]models.CustomOrder, error) {
	return s.customOrders.GetAll(ctx)
}

func (s *OrderService) GetCustomOrder(ctx context.Context, orderID string) (*models.CustomOrder, error) {
	return s.customOrders.GetByOrderID(ctx, orderID)
}

// UpdateCustomOrderStatus validates against the closed status set before
// touching the store.
func (s *OrderService) UpdateCustomOrderStatus(ctx context.Context, orderID, status string) error {
	if !models.ValidCustomOrderStatus(status) {
		return ErrInvalidStatus
	}
	return s.customOrders.UpdateStatus(ctx, orderID, status)
}

// CreateOrder persists a catalog-based checkout order. Every line item's
// product must exist; totals are stored as submitted and never recomputed.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	for _, item := range req.Items {
		if _, err := s.products.GetByID(ctx, item.ProductID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	order := &models.Order{
		ID:              uuid.NewString(),
		OrderID:         NewOrderID(),
		CustomerEmail:   req.CustomerEmail,
		Items:           req.Items,
		Subtotal:        req.Subtotal,
		Tax:             req.Tax,
		Shipping:        req.Shipping,
		TotalAmount:     req.TotalAmount,
		Status:          models.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log.Info().
		Str("order_id", order.OrderID).
		Float64("total_amount", order.TotalAmount).
		Msg("Order created")

	s.dispatch(order.OrderID, EmailDataFromOrder(order))
	return order, nil
}

func (s *OrderService) GetOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.GetAll(ctx)
}

func (s *OrderService) GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.orders.GetByEmail(ctx, email)
}

func (s *OrderService) dispatch(orderID string, data OrderEmailData) {
	if s.mailer == nil {
		return
	}
	customerSent, businessSent := s.mailer.SendOrderEmails(data)
	if !customerSent || !businessSent {
		log.Warn().
			Str("order_id", orderID).
			Bool("customer_sent", customerSent).
			Bool("business_sent", businessSent).
			Msg("Order notification emails incomplete")
	}
}
