package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"thorned-magnolia/models"
	"thorned-magnolia/repositories"
)

const (
	productListCacheKey = "products_list"
	productListCacheTTL = 5 * time.Minute
)

type ProductService struct {
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
	cache      *redis.Client
}

// NewProductService wires the catalog repositories with an optional Redis
// read cache; a nil client disables caching.
func NewProductService(products *repositories.ProductRepository, categories *repositories.CategoryRepository, cache *redis.Client) *ProductService {
	return &ProductService{products: products, categories: categories, cache: cache}
}

func (s *ProductService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetAll(ctx)
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productListCacheKey).Result()
		if err == nil {
			products := []models.Product{}
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			s.cache.Set(ctx, productListCacheKey, data, productListCacheTTL)
		}
	}
	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	return s.products.GetByCategory(ctx, categoryID)
}

func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	productType := req.Type
	if productType == "" {
		productType = "tshirt"
	}

	now := time.Now().UTC()
	product := &models.Product{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Category:  req.Category,
		Price:     req.Price,
		Image:     req.Image,
		Colors:    req.Colors,
		Sizes:     req.Sizes,
		Type:      productType,
		InStock:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return product, nil
}

// UpdateProduct applies only the fields present in the request and returns
// the updated document.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Colors != nil {
		fields["colors"] = *req.Colors
	}
	if req.Sizes != nil {
		fields["sizes"] = *req.Sizes
	}
	if req.Type != nil {
		fields["type"] = *req.Type
	}
	if req.InStock != nil {
		fields["inStock"] = *req.InStock
	}

	if len(fields) > 0 {
		if err := s.products.Update(ctx, id, fields); err != nil {
			return nil, err
		}
		s.invalidateCache(ctx)
	}

	return s.products.GetByID(ctx, id)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, productListCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate product cache")
	}
}
