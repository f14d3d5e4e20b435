package services

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thorned-magnolia/models"
	"thorned-magnolia/repositories"
)

type mockCustomOrderStore struct {
	orders []*models.CustomOrder
	err    error
}

func (m *mockCustomOrderStore) Create(_ context.Context, order *models.CustomOrder) error {
	if m.err != nil {
		return m.err
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockCustomOrderStore) GetAll(context.Context) ([]models.CustomOrder, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.CustomOrder, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockCustomOrderStore) GetByOrderID(_ context.Context, orderID string) (*models.CustomOrder, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, o := range m.orders {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return nil, repositories.ErrOrderNotFound
}

func (m *mockCustomOrderStore) UpdateStatus(_ context.Context, orderID, status string) error {
	if m.err != nil {
		return m.err
	}
	for _, o := range m.orders {
		if o.OrderID == orderID {
			o.Status = status
			return nil
		}
	}
	return repositories.ErrOrderNotFound
}

type mockOrderStore struct {
	orders []*models.Order
	err    error
}

func (m *mockOrderStore) Create(_ context.Context, order *models.Order) error {
	if m.err != nil {
		return m.err
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderStore) GetAll(context.Context) ([]models.Order, error) {
	out := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, m.err
}

func (m *mockOrderStore) GetByEmail(_ context.Context, email string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.CustomerEmail == email {
			out = append(out, *o)
		}
	}
	return out, m.err
}

type mockNotifier struct {
	sent         []OrderEmailData
	customerSent bool
	businessSent bool
}

func (m *mockNotifier) SendOrderEmails(data OrderEmailData) (bool, bool) {
	m.sent = append(m.sent, data)
	return m.customerSent, m.businessSent
}

func newTestOrderService() (*OrderService, *mockCustomOrderStore, *mockOrderStore, *mockNotifier) {
	customOrders := &mockCustomOrderStore{}
	orders := &mockOrderStore{}
	notifier := &mockNotifier{customerSent: true, businessSent: true}
	products := &mockProductGetter{products: map[string]*models.Product{
		"1": {ID: "1", Name: "Blessed Mama Tee", Price: 24.99},
	}}
	svc := NewOrderService(customOrders, orders, products, notifier)
	return svc, customOrders, orders, notifier
}

func TestNewOrderID(t *testing.T) {
	pattern := regexp.MustCompile(`^TMC-[0-9A-F]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewOrderID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate order id %s", id)
		seen[id] = true
	}
}

func TestCreateCustomOrder(t *testing.T) {
	svc, store, _, notifier := newTestOrderService()

	order, err := svc.CreateCustomOrder(context.Background(), models.CreateCustomOrderRequest{
		CustomerName:  "Magnolia Smith",
		Email:         "magnolia@example.com",
		ShirtStyle:    "sweatshirt",
		ShirtColor:    "Sage",
		Size:          "4XL",
		PrintLocation: "both",
		Quantity:      2,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(72), order.TotalPrice) // (30 + 6) * 2
	assert.Equal(t, models.CustomOrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.OrderID, "TMC-"))
	assert.NotEmpty(t, order.ID)
	require.Len(t, store.orders, 1)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, order.OrderID, notifier.sent[0].OrderID)
	assert.Equal(t, "magnolia@example.com", notifier.sent[0].CustomerEmail)
}

func TestCreateCustomOrderDefaults(t *testing.T) {
	svc, _, _, _ := newTestOrderService()

	order, err := svc.CreateCustomOrder(context.Background(), models.CreateCustomOrderRequest{
		CustomerName: "Magnolia Smith",
		Email:        "magnolia@example.com",
		ShirtStyle:   "regular",
		ShirtColor:   "White",
		Size:         "M",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, order.Quantity)
	assert.Equal(t, "front", order.PrintLocation)
	assert.Equal(t, float64(20), order.TotalPrice)
}

func TestCreateCustomOrderSurvivesEmailFailure(t *testing.T) {
	svc, store, _, notifier := newTestOrderService()
	notifier.customerSent = false
	notifier.businessSent = false

	order, err := svc.CreateCustomOrder(context.Background(), models.CreateCustomOrderRequest{
		CustomerName: "Magnolia Smith",
		Email:        "magnolia@example.com",
		ShirtStyle:   "regular",
		ShirtColor:   "Black",
		Size:         "L",
	})
	require.NoError(t, err)
	assert.NotNil(t, order)
	assert.Len(t, store.orders, 1)
}

func TestUpdateCustomOrderStatus(t *testing.T) {
	svc, store, _, _ := newTestOrderService()
	ctx := context.Background()

	order, err := svc.CreateCustomOrder(ctx, models.CreateCustomOrderRequest{
		CustomerName: "Magnolia Smith",
		Email:        "magnolia@example.com",
		ShirtStyle:   "regular",
		ShirtColor:   "Black",
		Size:         "M",
	})
	require.NoError(t, err)

	err = svc.UpdateCustomOrderStatus(ctx, order.OrderID, "in-progress")
	require.NoError(t, err)
	assert.Equal(t, "in-progress", store.orders[0].Status)
}

func TestUpdateCustomOrderStatusRejectsUnknown(t *testing.T) {
	svc, _, _, _ := newTestOrderService()

	err := svc.UpdateCustomOrderStatus(context.Background(), "TMC-ABCDEF123456", "mailed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateCustomOrderStatusUnknownOrder(t *testing.T) {
	svc, _, _, _ := newTestOrderService()

	err := svc.UpdateCustomOrderStatus(context.Background(), "TMC-ABCDEF123456", "confirmed")
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}

func TestCreateOrder(t *testing.T) {
	svc, _, store, notifier := newTestOrderService()

	order, err := svc.CreateOrder(context.Background(), models.CreateOrderRequest{
		CustomerEmail: "magnolia@example.com",
		Items: []models.OrderItem{
			{ProductID: "1", ProductName: "Blessed Mama Tee", Quantity: 2, SelectedColor: "Black", SelectedSize: "M", UnitPrice: 24.99, TotalPrice: 49.98},
		},
		Subtotal:    49.98,
		Tax:         3.50,
		Shipping:    5.00,
		TotalAmount: 58.48,
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 58.48, order.TotalAmount)
	assert.True(t, strings.HasPrefix(order.OrderID, "TMC-"))
	assert.Len(t, store.orders, 1)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, 58.48, notifier.sent[0].TotalAmount)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc, _, store, _ := newTestOrderService()

	_, err := svc.CreateOrder(context.Background(), models.CreateOrderRequest{
		CustomerEmail: "magnolia@example.com",
		Items: []models.OrderItem{
			{ProductID: "missing", Quantity: 1},
		},
		Subtotal:    24.99,
		TotalAmount: 24.99,
	})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	assert.Empty(t, store.orders)
}

func TestGetOrdersByEmail(t *testing.T) {
	svc, _, _, _ := newTestOrderService()
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, models.CreateOrderRequest{
		CustomerEmail: "magnolia@example.com",
		Items:         []models.OrderItem{{ProductID: "1", Quantity: 1}},
		Subtotal:      24.99,
		TotalAmount:   24.99,
	})
	require.NoError(t, err)

	orders, err := svc.GetOrdersByEmail(ctx, "magnolia@example.com")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = svc.GetOrdersByEmail(ctx, "other@example.com")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
