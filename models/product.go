package models

import "time"

type Product struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Category  string    `json:"category" bson:"category"`
	Price     float64   `json:"price" bson:"price"`
	Image     string    `json:"image" bson:"image"`
	Colors    []string  `json:"colors" bson:"colors"`
	Sizes     []string  `json:"sizes" bson:"sizes"`
	Type      string    `json:"type" bson:"type"` // tshirt or sweatshirt
	InStock   bool      `json:"inStock" bson:"inStock"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Category struct {
	ID           string `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name"`
	Description  string `json:"description" bson:"description"`
	DisplayOrder int    `json:"displayOrder" bson:"displayOrder"`
}
