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

type CustomOrderRepository struct {
	collection *mongo.Collection
}

func NewCustomOrderRepository(db *mongo.Database) *CustomOrderRepository {
	return &CustomOrderRepository{collection: db.Collection("custom_orders")}
}

func (r *CustomOrderRepository) Create(ctx context.Context, order *models.CustomOrder) error {
	if _, err := r.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create custom order: %w", err)
	}
	return nil
}

func (r *CustomOrderRepository) GetAll(ctx context.Context) ([]models.CustomOrder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.CustomOrder{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode custom orders: %w", err)
	}
	return orders, nil
}

func (r *CustomOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*models.CustomOrder, error) {
	var order models.CustomOrder
	err := r.collection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get custom order: %w", err)
	}
	return &order, nil
}

// UpdateStatus changes only status and updatedAt.
func (r *CustomOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"orderId": orderID}, update)
	if err != nil {
		return fmt.Errorf("failed to update custom order status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}
