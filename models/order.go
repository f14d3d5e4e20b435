package models

import "time"

const (
	CustomOrderStatusPending    = "pending"
	CustomOrderStatusConfirmed  = "confirmed"
	CustomOrderStatusInProgress = "in-progress"
	CustomOrderStatusCompleted  = "completed"
	CustomOrderStatusCancelled  = "cancelled"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// ValidCustomOrderStatus reports whether s is one of the closed set of
// custom-order statuses accepted by the status-update endpoint.
func ValidCustomOrderStatus(s string) bool {
	switch s {
	case CustomOrderStatusPending, CustomOrderStatusConfirmed,
		CustomOrderStatusInProgress, CustomOrderStatusCompleted,
		CustomOrderStatusCancelled:
		return true
	}
	return false
}

// CustomOrder is an order built from freeform style/color/size/design
// selections, not tied to a catalog SKU. TotalPrice is derived once by the
// pricing engine at creation and never recomputed.
type CustomOrder struct {
	ID                  string    `json:"id" bson:"id"`
	OrderID             string    `json:"orderId" bson:"orderId"`
	CustomerName        string    `json:"customerName" bson:"customerName"`
	Email               string    `json:"email" bson:"email"`
	Phone               string    `json:"phone,omitempty" bson:"phone,omitempty"`
	DesignImage         string    `json:"designImage,omitempty" bson:"designImage,omitempty"`
	DesignText          string    `json:"designText,omitempty" bson:"designText,omitempty"`
	SelectedFont        string    `json:"selectedFont,omitempty" bson:"selectedFont,omitempty"`
	ShirtStyle          string    `json:"shirtStyle" bson:"shirtStyle"`
	ShirtColor          string    `json:"shirtColor" bson:"shirtColor"`
	Size                string    `json:"size" bson:"size"`
	PrintLocation       string    `json:"printLocation" bson:"printLocation"`
	Quantity            int       `json:"quantity" bson:"quantity"`
	TotalPrice          float64   `json:"totalPrice" bson:"totalPrice"`
	SpecialInstructions string    `json:"specialInstructions,omitempty" bson:"specialInstructions,omitempty"`
	Status              string    `json:"status" bson:"status"`
	CreatedAt           time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt" bson:"updatedAt"`
}

type OrderItem struct {
	ProductID     string  `json:"productId" bson:"productId"`
	ProductName   string  `json:"productName" bson:"productName"`
	Quantity      int     `json:"quantity" bson:"quantity"`
	SelectedColor string  `json:"selectedColor" bson:"selectedColor"`
	SelectedSize  string  `json:"selectedSize" bson:"selectedSize"`
	PrintLocation string  `json:"printLocation" bson:"printLocation"`
	UnitPrice     float64 `json:"unitPrice" bson:"unitPrice"`
	TotalPrice    float64 `json:"totalPrice" bson:"totalPrice"`
}

type ShippingAddress struct {
	FullName     string `json:"fullName" bson:"fullName"`
	AddressLine1 string `json:"addressLine1" bson:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty" bson:"addressLine2,omitempty"`
	City         string `json:"city" bson:"city"`
	State        string `json:"state" bson:"state"`
	ZipCode      string `json:"zipCode" bson:"zipCode"`
	Country      string `json:"country" bson:"country"`
}

// Order is a catalog-based checkout order. Line items carry name and price
// snapshots taken at checkout time.
type Order struct {
	ID              string           `json:"id" bson:"id"`
	OrderID         string           `json:"orderId" bson:"orderId"`
	CustomerEmail   string           `json:"customerEmail" bson:"customerEmail"`
	Items           []OrderItem      `json:"items" bson:"items"`
	Subtotal        float64          `json:"subtotal" bson:"subtotal"`
	Tax             float64          `json:"tax" bson:"tax"`
	Shipping        float64          `json:"shipping" bson:"shipping"`
	TotalAmount     float64          `json:"totalAmount" bson:"totalAmount"`
	Status          string           `json:"status" bson:"status"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	CreatedAt       time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt" bson:"updatedAt"`
}
