package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"thorned-magnolia/config"
	"thorned-magnolia/controllers"
	_ "thorned-magnolia/docs"
	"thorned-magnolia/middleware"
	"thorned-magnolia/models"
	"thorned-magnolia/repositories"
	"thorned-magnolia/routes"
	"thorned-magnolia/services"
)

// @title Thorned Magnolia Collective API
// @version 1.0.0
// @description E-commerce API for a custom apparel business
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, db, err := config.ConnectDB(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer config.CloseDB(client)

	models.InitRedis()
	defer models.CloseRedis()

	if err := repositories.Seed(ctx, db); err != nil {
		log.Error().Err(err).Msg("Failed to seed database")
	}

	uploadDir := filepath.Join(config.AppConfig.UploadDir, "custom-orders")
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		log.Fatal().Err(err).Msg("Failed to create upload directory")
	}

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	customOrderRepo := repositories.NewCustomOrderRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	if err := cartRepo.CreateIndexes(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to create cart indexes")
	}

	emailService := services.NewEmailService()
	productService := services.NewProductService(productRepo, categoryRepo, models.RedisClient)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(customOrderRepo, orderRepo, productRepo, emailService)
	paymentService := services.NewPaymentService()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.SetupRoutes(router, routes.Controllers{
		Products:     controllers.NewProductController(productService),
		Cart:         controllers.NewCartController(cartService),
		CustomOrders: controllers.NewCustomOrderController(orderService),
		Orders:       controllers.NewOrderController(orderService),
		Upload:       controllers.NewUploadController(),
		Payments:     controllers.NewPaymentController(paymentService),
		Lookups:      controllers.NewLookupController(),
	})

	port := ":" + config.AppConfig.Port
	log.Info().Str("port", config.AppConfig.Port).Str("env", config.AppConfig.AppEnv).Msg("Server starting")

	if err := router.Run(port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
