// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pricewise/pricewise-backend/internal/config"
	"github.com/pricewise/pricewise-backend/internal/handlers"
	"github.com/pricewise/pricewise-backend/internal/middleware"
	"github.com/pricewise/pricewise-backend/internal/services"
	"github.com/pricewise/pricewise-backend/internal/store"
	"github.com/pricewise/pricewise-backend/internal/utils"
)

func Initialize(st store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Error("Object storage unavailable, image uploads disabled")
		storageService = nil
	}

	catalogService := services.NewCatalogService(st)
	reviewService := services.NewReviewService(st, st)
	categoryService := services.NewCategoryService(st)
	comparisonService := services.NewComparisonService(st, st, st)
	authService := services.NewAuthService(st, cfg)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService, storageService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	compareHandler := handlers.NewCompareHandler(comparisonService)
	authHandler := handlers.NewAuthHandler(authService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/listings", productHandler.GetProductListings)

			// Authenticated routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.POST("/:id/listings", productHandler.CreateListing)
				protected.POST("/upload-images", middleware.UploadRateLimit(), productHandler.UploadProductImages)
			}
		}

		// Listing routes
		listings := api.Group("/listings")
		{
			listings.GET("/:id/reviews", reviewHandler.GetListingReviews)
			listings.POST("/:id/reviews", middleware.OptionalAuth(), reviewHandler.CreateReview)
			listings.PATCH("/:id", middleware.AuthRequired(), productHandler.UpdateListing)
		}

		// Category routes
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/popular", categoryHandler.GetPopularCategories)
			categories.POST("", middleware.AuthRequired(), categoryHandler.CreateCategory)
		}

		// Comparison routes
		api.POST("/compare", middleware.CompareRateLimit(), middleware.OptionalAuth(), compareHandler.Compare)

		comparisons := api.Group("/comparisons")
		{
			comparisons.POST("", middleware.OptionalAuth(), compareHandler.SaveComparison)
			comparisons.GET("", middleware.AuthRequired(), compareHandler.GetUserComparisons)
			comparisons.GET("/:id", compareHandler.GetComparison)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
