package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"thorned-magnolia/models"
)

// Seed populates empty collections with the default catalog. Runs at
// startup; collections that already hold documents are left alone.
func Seed(ctx context.Context, db *mongo.Database) error {
	categories := db.Collection("categories")
	count, err := categories.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count == 0 {
		docs := make([]interface{}, len(defaultCategories))
		for i, c := range defaultCategories {
			docs[i] = c
		}
		if _, err := categories.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		log.Info().Int("count", len(defaultCategories)).Msg("Default categories created")
	}

	products := db.Collection("products")
	count, err = products.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count == 0 {
		now := time.Now().UTC()
		docs := make([]interface{}, len(sampleProducts))
		for i, p := range sampleProducts {
			p.InStock = true
			p.CreatedAt = now
			p.UpdatedAt = now
			docs[i] = p
		}
		if _, err := products.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		log.Info().Int("count", len(sampleProducts)).Msg("Sample products created")
	}

	return nil
}

var defaultCategories = []models.Category{
	{ID: "teachers", Name: "Teachers", Description: "Inspiring designs for educators", DisplayOrder: 1},
	{ID: "mamas", Name: "Mamas", Description: "Celebrating motherhood", DisplayOrder: 2},
	{ID: "seasons", Name: "Seasons", Description: "Seasonal favorites", DisplayOrder: 3},
	{ID: "quotes", Name: "Quotes", Description: "Motivational sayings", DisplayOrder: 4},
	{ID: "graphic", Name: "Graphic", Description: "Bold graphic designs", DisplayOrder: 5},
	{ID: "dads", Name: "Dads", Description: "Dedicated to fathers", DisplayOrder: 6},
	{ID: "embroidery", Name: "Embroidery", Description: "Elegant embroidered pieces", DisplayOrder: 7},
	{ID: "seniors", Name: "Seniors", Description: "Class of 2025 and beyond", DisplayOrder: 8},
	{ID: "holidays", Name: "Holidays", Description: "Festive holiday themes", DisplayOrder: 9},
	{ID: "gamer", Name: "Gamer", Description: "Gaming enthusiasts", DisplayOrder: 10},
	{ID: "worship", Name: "Worship", Description: "Faith-based designs", DisplayOrder: 11},
	{ID: "gameday", Name: "Gameday", Description: "Sports and team spirit", DisplayOrder: 12},
}

var sampleProducts = []models.Product{
	{
		ID: "1", Name: "World's Best Teacher", Category: "teachers", Price: 20,
		Image:  "https://via.placeholder.com/400x400/C4B5A0/2C2C2C?text=Teacher+Shirt",
		Colors: []string{"Black", "Grey", "White", "Beige", "Blue", "Red"},
		Sizes:  []string{"S", "M", "L", "XL", "2XL", "3XL", "4XL"},
		Type:   "tshirt",
	},
	{
		ID: "2", Name: "Mama Bear", Category: "mamas", Price: 20,
		Image:  "https://via.placeholder.com/400x400/D4C4B0/2C2C2C?text=Mama+Bear",
		Colors: []string{"Rose Gold", "White", "Mauve", "Black"},
		Sizes:  []string{"S", "M", "L", "XL", "2XL", "3XL"},
		Type:   "tshirt",
	},
	{
		ID: "3", Name: "Fall Vibes", Category: "seasons", Price: 20,
		Image:  "https://via.placeholder.com/400x400/8B7D6B/FAF9F7?text=Fall+Vibes",
		Colors: []string{"Burnt Orange", "Burgundy", "Mustard", "Brown"},
		Sizes:  []string{"S", "M", "L", "XL", "2XL", "3XL"},
		Type:   "tshirt",
	},
	{
		ID: "4", Name: "Be Kind", Category: "quotes", Price: 20,
		Image:  "https://via.placeholder.com/400x400/C4B5A0/FAF9F7?text=Be+Kind",
		Colors: []string{"Sage", "Pink", "White", "Light Blue"},
		Sizes:  []string{"S", "M", "L", "XL", "2XL", "3XL"},
		Type:   "tshirt",
	},
	{
		ID: "5", Name: "Retro Sunset", Category: "graphic", Price: 20,
		Image:  "https://via.placeholder.com/400x400/6B4E37/FAF9F7?text=Retro+Sunset",
		Colors: []string{"Black", "Navy", "White", "Coral"},
		Sizes:  []string{"S", "M", "L", "XL", "2XL", "3XL"},
		Type:   "tshirt",
	},
	{
		ID: "6", Name: "Dad Joke Loading", Category: "dads", Price: 20,
		Image:  "https://via.placeholder.com/400x400/2C2C2C/FAF9F7?text=Dad+Jokes",
		Colors: []string{"Black", "Gray", "Navy", "White"},
		Sizes:  []string{"S", "M", "L", "XL", "2XL", "3XL"},
		Type:   "tshirt",
	},
	{
		ID: "7", Name: "Cozy Fall Sweatshirt", Category: "seasons", Price: 25,
		Image:  "https://via.placeholder.com/400x400/C4B5A0/2C2C2C?text=Cozy+Sweatshirt",
		Colors: []string{"Heather Gray", "Burgundy", "Navy", "Black"},
		Sizes:  []string{"S", "M", "L", "XL", "2XL", "3XL"},
		Type:   "sweatshirt",
	},
	{
		ID: "8", Name: "Mama Life Sweatshirt", Category: "mamas", Price: 25,
		Image:  "https://via.placeholder.com/400x400/D4C4B0/2C2C2C?text=Mama+Life",
		Colors: []string{"Sage", "Pink", "Gray", "White"},
		Sizes:  []string{"S", "M", "L", "XL", "2XL", "3XL"},
		Type:   "sweatshirt",
	},
}
