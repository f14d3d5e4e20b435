package models

type CreateProductRequest struct {
	Name     string   `json:"name" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Price    float64  `json:"price" binding:"required,gt=0"`
	Image    string   `json:"image" binding:"required"`
	Colors   []string `json:"colors" binding:"required,min=1"`
	Sizes    []string `json:"sizes" binding:"required,min=1"`
	Type     string   `json:"type" binding:"omitempty,oneof=tshirt sweatshirt"`
}

// UpdateProductRequest uses pointers so absent (or null) fields are left
// untouched on update.
type UpdateProductRequest struct {
	Name     *string   `json:"name"`
	Category *string   `json:"category"`
	Price    *float64  `json:"price"`
	Image    *string   `json:"image"`
	Colors   *[]string `json:"colors"`
	Sizes    *[]string `json:"sizes"`
	Type     *string   `json:"type"`
	InStock  *bool     `json:"inStock"`
}

type AddCartItemRequest struct {
	SessionID      string            `json:"sessionId" binding:"required"`
	ProductID      string            `json:"productId" binding:"required"`
	Quantity       int               `json:"quantity" binding:"omitempty,gt=0"`
	SelectedColor  string            `json:"selectedColor" binding:"required"`
	SelectedSize   string            `json:"selectedSize" binding:"required"`
	PrintLocation  string            `json:"printLocation" binding:"omitempty,oneof=front back both"`
	Customizations map[string]string `json:"customizations"`
}

// UpdateCartItemRequest is a partial line update: nil means "not provided"
// and never overwrites the stored value.
type UpdateCartItemRequest struct {
	Quantity      *int    `json:"quantity" binding:"omitempty,gt=0"`
	SelectedColor *string `json:"selectedColor"`
	SelectedSize  *string `json:"selectedSize"`
	PrintLocation *string `json:"printLocation" binding:"omitempty,oneof=front back both"`
}

func (r UpdateCartItemRequest) Empty() bool {
	return r.Quantity == nil && r.SelectedColor == nil &&
		r.SelectedSize == nil && r.PrintLocation == nil
}

type CreateCustomOrderRequest struct {
	CustomerName        string `json:"customerName" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone"`
	DesignImage         string `json:"designImage"`
	DesignText          string `json:"designText"`
	SelectedFont        string `json:"selectedFont"`
	ShirtStyle          string `json:"shirtStyle" binding:"required"`
	ShirtColor          string `json:"shirtColor" binding:"required"`
	Size                string `json:"size" binding:"required"`
	PrintLocation       string `json:"printLocation" binding:"omitempty,oneof=front back both"`
	Quantity            int    `json:"quantity" binding:"omitempty,gt=0"`
	SpecialInstructions string `json:"specialInstructions"`
}

type UpdateCustomOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateOrderRequest struct {
	CustomerEmail   string           `json:"customerEmail" binding:"required,email"`
	Items           []OrderItem      `json:"items" binding:"required,min=1"`
	Subtotal        float64          `json:"subtotal" binding:"required"`
	Tax             float64          `json:"tax"`
	Shipping        float64          `json:"shipping"`
	TotalAmount     float64          `json:"totalAmount" binding:"required"`
	ShippingAddress *ShippingAddress `json:"shippingAddress"`
}

type CreatePaymentIntentRequest struct {
	Amount       int64             `json:"amount" binding:"required,gt=0"`
	Currency     string            `json:"currency"`
	OrderData    map[string]string `json:"orderData"`
	CustomerInfo map[string]string `json:"customerInfo"`
}
