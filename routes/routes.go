package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"thorned-magnolia/controllers"
)

type Controllers struct {
	Products     *controllers.ProductController
	Cart         *controllers.CartController
	CustomOrders *controllers.CustomOrderController
	Orders       *controllers.OrderController
	Upload       *controllers.UploadController
	Payments     *controllers.PaymentController
	Lookups      *controllers.LookupController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "Thorned Magnolia Collective API", "version": "1.0.0"})
		})

		api.GET("/products", ctrl.Products.GetAllProducts)
		api.GET("/products/category/:categoryId", ctrl.Products.GetProductsByCategory)
		api.GET("/products/:id", ctrl.Products.GetProductByID)
		api.POST("/products", ctrl.Products.CreateProduct)
		api.PUT("/products/:id", ctrl.Products.UpdateProduct)
		api.DELETE("/products/:id", ctrl.Products.DeleteProduct)

		api.GET("/categories", ctrl.Products.GetAllCategories)

		api.GET("/cart/:sessionId", ctrl.Cart.GetCart)
		api.POST("/cart", ctrl.Cart.AddItem)
		api.PUT("/cart/:sessionId/items/:itemId", ctrl.Cart.UpdateItem)
		api.DELETE("/cart/:sessionId/items/:itemId", ctrl.Cart.RemoveItem)
		api.DELETE("/cart/:sessionId", ctrl.Cart.Clear)

		api.POST("/upload", ctrl.Upload.Upload)

		api.POST("/custom-orders", ctrl.CustomOrders.Create)
		api.GET("/custom-orders", ctrl.CustomOrders.GetAll)
		api.GET("/custom-orders/:orderId", ctrl.CustomOrders.GetByOrderID)
		api.PUT("/custom-orders/:orderId/status", ctrl.CustomOrders.UpdateStatus)

		api.POST("/orders", ctrl.Orders.Create)
		api.GET("/orders", ctrl.Orders.GetAll)
		api.GET("/orders/email/:email", ctrl.Orders.GetByEmail)

		api.GET("/fonts", ctrl.Lookups.GetFonts)
		api.GET("/sizes", ctrl.Lookups.GetSizes)
		api.GET("/colors", ctrl.Lookups.GetColors)
		api.GET("/shirt-styles", ctrl.Lookups.GetShirtStyles)

		api.POST("/create-payment-intent", ctrl.Payments.CreatePaymentIntent)
	}

	router.Static("/uploads", "./uploads")
}
