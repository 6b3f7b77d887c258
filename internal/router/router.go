// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront-backend/internal/config"
	"github.com/javajoker/storefront-backend/internal/handlers"
	"github.com/javajoker/storefront-backend/internal/middleware"
	"github.com/javajoker/storefront-backend/internal/services"
)

// Services are the long-lived dependencies the routes are served from.
type Services struct {
	Catalog  *services.CatalogService
	Orders   *services.OrderService
	Storage  *services.StorageService
	Limiters *middleware.RateLimiters
}

func Initialize(cfg *config.Config, svc Services) *gin.Engine {
	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(svc.Catalog)
	orderHandler := handlers.NewOrderHandler(svc.Orders)
	uploadHandler := handlers.NewUploadHandler(svc.Storage)

	// Initialize Gin router
	r := gin.New()
	r.MaxMultipartMemory = cfg.Upload.MaxSize

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(svc.Limiters.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Catalog
	products := r.Group("/products")
	{
		products.GET("", catalogHandler.GetProducts)
		products.GET("/:name", catalogHandler.GetProduct)
		products.GET("/:name/quote", catalogHandler.QuoteProduct)
	}

	decorations := r.Group("/decorations")
	{
		decorations.GET("", catalogHandler.GetDecorations)
		decorations.GET("/:name", catalogHandler.GetDecoration)
	}

	// Orders
	orders := r.Group("/orders")
	{
		orders.GET("", orderHandler.GetOrders)
		orders.POST("", orderHandler.CreateOrder)
	}

	// Custom design uploads
	r.POST("/upload", svc.Limiters.UploadRateLimit(), uploadHandler.UploadDesign)

	// Uploaded designs are served from disk unless they live in S3
	if !svc.Storage.UsesS3() {
		r.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)
	}

	return r
}
