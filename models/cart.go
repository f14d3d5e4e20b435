package models

import "time"

// CartItem is one line in a session cart. Lines carry a generated id so
// clients can update or remove them without relying on array positions.
type CartItem struct {
	ID             string            `json:"id" bson:"id"`
	ProductID      string            `json:"productId" bson:"productId"`
	Quantity       int               `json:"quantity" bson:"quantity"`
	SelectedColor  string            `json:"selectedColor" bson:"selectedColor"`
	SelectedSize   string            `json:"selectedSize" bson:"selectedSize"`
	PrintLocation  string            `json:"printLocation" bson:"printLocation"` // front, back, both
	Customizations map[string]string `json:"customizations,omitempty" bson:"customizations,omitempty"`
}

// SameLine reports whether two entries represent the same cart line:
// identical product, color, size and print location.
func (ci CartItem) SameLine(other CartItem) bool {
	return ci.ProductID == other.ProductID &&
		ci.SelectedColor == other.SelectedColor &&
		ci.SelectedSize == other.SelectedSize &&
		ci.PrintLocation == other.PrintLocation
}

type Cart struct {
	SessionID string     `json:"sessionId" bson:"sessionId"`
	Items     []CartItem `json:"items" bson:"items"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
}
