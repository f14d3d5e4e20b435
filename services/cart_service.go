package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"thorned-magnolia/models"
)

// CartStore is the slice of the cart repository the service depends on.
type CartStore interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, error)
	UpdateItem(ctx context.Context, sessionID, itemID string, fields bson.M) error
	RemoveItem(ctx context.Context, sessionID, itemID string) error
	Clear(ctx context.Context, sessionID string) (bool, error)
}

// ProductGetter resolves catalog products for add-to-cart validation.
type ProductGetter interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

type CartService struct {
	carts    CartStore
	products ProductGetter
}

func NewCartService(carts CartStore, products ProductGetter) *CartService {
	return &CartService{carts: carts, products: products}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.carts.GetCart(ctx, sessionID)
}

// AddItem validates the referenced product and merges the line into the
// session's cart. A line matching an existing one on product, color, size
// and print location accumulates quantity instead of appending.
func (s *CartService) AddItem(ctx context.Context, req models.AddCartItemRequest) (*models.Cart, error) {
	if _, err := s.products.GetByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	printLocation := req.PrintLocation
	if printLocation == "" {
		printLocation = "front"
	}

	item := models.CartItem{
		ID:             uuid.NewString(),
		ProductID:      req.ProductID,
		Quantity:       quantity,
		SelectedColor:  req.SelectedColor,
		SelectedSize:   req.SelectedSize,
		PrintLocation:  printLocation,
		Customizations: req.Customizations,
	}

	cart, err := s.carts.AddItem(ctx, req.SessionID, item)
	if err != nil {
		log.Error().Err(err).Str("session_id", req.SessionID).Msg("Failed to add cart item")
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}
	return cart, nil
}

// UpdateItem applies only the fields present in the request; nil fields
// never overwrite stored values.
func (s *CartService) UpdateItem(ctx context.Context, sessionID, itemID string, req models.UpdateCartItemRequest) error {
	fields := bson.M{}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.SelectedColor != nil {
		fields["selectedColor"] = *req.SelectedColor
	}
	if req.SelectedSize != nil {
		fields["selectedSize"] = *req.SelectedSize
	}
	if req.PrintLocation != nil {
		fields["printLocation"] = *req.PrintLocation
	}

	return s.carts.UpdateItem(ctx, sessionID, itemID, fields)
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	return s.carts.RemoveItem(ctx, sessionID, itemID)
}

// Clear deletes the session's cart. Clearing a session with no cart is a
// no-op reported as found=false.
func (s *CartService) Clear(ctx context.Context, sessionID string) (bool, error) {
	found, err := s.carts.Clear(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to clear cart")
		return false, err
	}
	return found, nil
}
