package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"thorned-magnolia/models"
)

func sampleCustomOrderEmailData() OrderEmailData {
	return OrderEmailData{
		OrderType:           orderTypeCustom,
		OrderID:             "TMC-ABCDEF123456",
		CustomerName:        "Magnolia Smith",
		CustomerEmail:       "magnolia@example.com",
		CustomerPhone:       "601-555-0142",
		OrderDate:           time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC),
		TotalAmount:         64,
		ShirtStyle:          "sweatshirt",
		ShirtColor:          "Sage",
		Size:                "2XL",
		PrintLocation:       "Front & Back",
		Quantity:            2,
		DesignText:          "Southern Roots",
		SelectedFont:        "script",
		SpecialInstructions: "Gift wrap please",
	}
}

func TestEmailDataFromCustomOrder(t *testing.T) {
	order := &models.CustomOrder{
		OrderID:       "TMC-ABCDEF123456",
		CustomerName:  "Magnolia Smith",
		Email:         "magnolia@example.com",
		TotalPrice:    64,
		PrintLocation: "both",
	}

	data := EmailDataFromCustomOrder(order)
	assert.Equal(t, orderTypeCustom, data.OrderType)
	assert.Equal(t, "magnolia@example.com", data.CustomerEmail)
	assert.Equal(t, float64(64), data.TotalAmount)
	assert.Equal(t, "Front & Back", data.PrintLocation)
}

func TestEmailDataFromOrder(t *testing.T) {
	order := &models.Order{
		OrderID:       "TMC-ABCDEF123456",
		CustomerEmail: "magnolia@example.com",
		TotalAmount:   58.48,
		Items:         []models.OrderItem{{ProductName: "Blessed Mama Tee"}},
	}

	data := EmailDataFromOrder(order)
	assert.Equal(t, orderTypeRegular, data.OrderType)
	assert.Equal(t, "Valued Customer", data.CustomerName)
	assert.Len(t, data.Items, 1)
}

func TestPrintLocationLabel(t *testing.T) {
	assert.Equal(t, "Front & Back", printLocationLabel("both"))
	assert.Equal(t, "front", printLocationLabel("front"))
	assert.Equal(t, "back", printLocationLabel("back"))
}

func TestRenderCustomerEmail(t *testing.T) {
	body := renderCustomerEmail(sampleCustomOrderEmailData())

	assert.Contains(t, body, "Magnolia Smith")
	assert.Contains(t, body, "TMC-ABCDEF123456")
	assert.Contains(t, body, "March 14, 2025")
	assert.Contains(t, body, "sweatshirt in Sage")
	assert.Contains(t, body, "Front & Back")
	assert.Contains(t, body, "Total: $64.00")
	assert.Contains(t, body, "Gift wrap please")
	assert.Contains(t, body, "Thorned Magnolia Collective")
}

func TestRenderCustomerEmailRegularOrder(t *testing.T) {
	data := OrderEmailData{
		OrderType:     orderTypeRegular,
		OrderID:       "TMC-ABCDEF123456",
		CustomerName:  "Valued Customer",
		CustomerEmail: "magnolia@example.com",
		OrderDate:     time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC),
		TotalAmount:   58.48,
		Items:         []models.OrderItem{{ProductName: "Blessed Mama Tee"}, {ProductName: "Teacher Life Tee"}},
	}

	body := renderCustomerEmail(data)
	assert.Contains(t, body, "Regular Order")
	assert.Contains(t, body, "2 item(s)")
}

func TestRenderBusinessEmail(t *testing.T) {
	body := renderBusinessEmail(sampleCustomOrderEmailData())

	assert.Contains(t, body, "New Order Received!")
	assert.Contains(t, body, "Magnolia Smith (magnolia@example.com)")
	assert.Contains(t, body, "601-555-0142")
	assert.Contains(t, body, "Southern Roots")
	assert.Contains(t, body, "PAID ($64.00)")
}

func TestRenderBusinessEmailOmitsEmptyRows(t *testing.T) {
	data := sampleCustomOrderEmailData()
	data.CustomerPhone = ""
	data.DesignText = ""
	data.SpecialInstructions = ""

	body := renderBusinessEmail(data)
	assert.NotContains(t, body, "Phone:")
	assert.NotContains(t, body, "Text Design:")
	assert.NotContains(t, body, "Special Instructions:")
}

func TestRenderBusinessEmailListsRegularItems(t *testing.T) {
	data := OrderEmailData{
		OrderType:     orderTypeRegular,
		OrderID:       "TMC-ABCDEF123456",
		CustomerName:  "Valued Customer",
		CustomerEmail: "magnolia@example.com",
		OrderDate:     time.Now(),
		TotalAmount:   49.98,
		Items: []models.OrderItem{
			{ProductName: "Blessed Mama Tee", SelectedColor: "Black", SelectedSize: "M", PrintLocation: "front", Quantity: 2, TotalPrice: 49.98},
		},
	}

	body := renderBusinessEmail(data)
	assert.Contains(t, body, "Blessed Mama Tee - Black/M (front) x2 = $49.98")
}

func TestSendOrderEmailsWithoutDialer(t *testing.T) {
	svc := &EmailService{businessEmail: "orders@example.com"}

	customerSent, businessSent := svc.SendOrderEmails(sampleCustomOrderEmailData())
	assert.False(t, customerSent)
	assert.False(t, businessSent)
}
