package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"thorned-magnolia/models"
)

type CartRepository struct {
	collection *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{collection: db.Collection("carts")}
}

func (r *CartRepository) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return &cart, nil
}

// AddItem merges the incoming line into the session's cart. A line matching
// on (productId, selectedColor, selectedSize, printLocation) has its quantity
// incremented in place; otherwise the line is appended, creating the cart
// document if none exists. Both paths are single atomic updates.
func (r *CartRepository) AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.Cart, error) {
	now := time.Now().UTC()

	matchFilter := bson.M{
		"sessionId": sessionID,
		"items": bson.M{"$elemMatch": bson.M{
			"productId":     item.ProductID,
			"selectedColor": item.SelectedColor,
			"selectedSize":  item.SelectedSize,
			"printLocation": item.PrintLocation,
		}},
	}
	increment := bson.M{
		"$inc": bson.M{"items.$.quantity": item.Quantity},
		"$set": bson.M{"updatedAt": now},
	}

	result, err := r.collection.UpdateOne(ctx, matchFilter, increment)
	if err != nil {
		return nil, fmt.Errorf("failed to merge cart item: %w", err)
	}

	if result.MatchedCount == 0 {
		push := bson.M{
			"$push":        bson.M{"items": item},
			"$set":         bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{"createdAt": now},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := r.collection.UpdateOne(ctx, bson.M{"sessionId": sessionID}, push, opts); err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
	}

	return r.GetCart(ctx, sessionID)
}

// UpdateItem applies the given fields to the line with the given id.
// Field names are relative to the line (e.g. "quantity").
func (r *CartRepository) UpdateItem(ctx context.Context, sessionID, itemID string, fields bson.M) error {
	if len(fields) == 0 {
		return nil
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	for key, value := range fields {
		set["items.$[elem]."+key] = value
	}

	filter := bson.M{"sessionId": sessionID, "items.id": itemID}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{bson.M{"elem.id": itemID}},
	})

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set}, opts)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

// RemoveItem deletes the line with the given id. The cart document is kept
// even when its last line is removed; only Clear deletes it.
func (r *CartRepository) RemoveItem(ctx context.Context, sessionID, itemID string) error {
	filter := bson.M{"sessionId": sessionID, "items.id": itemID}
	update := bson.M{
		"$pull": bson.M{"items": bson.M{"id": itemID}},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Clear deletes the cart document. Returns false when no cart existed,
// which callers treat as a no-op rather than an error.
func (r *CartRepository) Clear(ctx context.Context, sessionID string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return false, fmt.Errorf("failed to clear cart: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (r *CartRepository) CreateIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "sessionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create cart indexes: %w", err)
	}
	return nil
}
