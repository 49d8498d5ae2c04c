// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/marketbay/storefront-backend/internal/config"
	"github.com/marketbay/storefront-backend/internal/handlers"
	"github.com/marketbay/storefront-backend/internal/middleware"
	"github.com/marketbay/storefront-backend/internal/services"
	"github.com/marketbay/storefront-backend/internal/utils"
)

// SetupRouter wires services, handlers, and middleware into the HTTP surface.
func SetupRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Services
	notificationService := services.NewNotificationService(db)
	authService := services.NewAuthService(db, cfg, notificationService)
	catalogService := services.NewCatalogService(db, notificationService)
	cartService := services.NewCartService(db)
	orderService := services.NewOrderService(db, notificationService)
	reviewService := services.NewReviewService(db)
	adminService := services.NewAdminService(db, notificationService)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService, reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(adminService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.GeneralRateLimit())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	{
		// Auth
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/signup", authHandler.SignUp)
			auth.POST("/signin", authHandler.SignIn)
			auth.POST("/signout", authHandler.SignOut)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/user", middleware.OptionalAuth(), authHandler.CurrentUser)
		}

		// Public catalog
		api.GET("/products", productHandler.ListProducts)
		api.GET("/products/:id", productHandler.GetProduct)
		api.GET("/products/:id/reviews", productHandler.ListReviews)
		api.GET("/categories", productHandler.ListCategories)

		// Authenticated routes
		authed := api.Group("")
		authed.Use(middleware.AuthRequired())
		{
			// Seller product management
			seller := authed.Group("")
			seller.Use(middleware.SellerRequired())
			{
				seller.POST("/products", productHandler.CreateProduct)
				seller.PUT("/products/:id", productHandler.UpdateProduct)
				seller.DELETE("/products/:id", productHandler.DeleteProduct)
			}

			// Cart
			authed.GET("/cart/:userId", cartHandler.GetCart)
			authed.POST("/cart", cartHandler.AddToCart)
			authed.PUT("/cart/:itemId", cartHandler.UpdateQuantity)
			authed.DELETE("/cart/:itemId", cartHandler.RemoveItem)
			authed.DELETE("/cart/user/:userId", cartHandler.ClearCart)

			// Orders
			authed.POST("/orders", orderHandler.PlaceOrder)
			authed.GET("/orders/user/:userId", orderHandler.GetUserOrders)
			authed.GET("/orders/:id", orderHandler.GetOrder)

			// Reviews
			authed.POST("/reviews", productHandler.CreateReview)

			// Notifications
			authed.GET("/notifications/:userId", notificationHandler.ListNotifications)
			authed.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			authed.PUT("/notifications/user/:userId/read-all", notificationHandler.MarkAllRead)

			// Uploads
			uploads := authed.Group("/uploads")
			uploads.Use(middleware.UploadRateLimit())
			{
				uploads.POST("/product-image", middleware.SellerRequired(), uploadHandler.UploadProductImage)
				uploads.POST("/avatar", uploadHandler.UploadAvatar)
			}

			// Admin
			admin := authed.Group("/admin")
			admin.Use(middleware.AdminRequired())
			{
				admin.GET("/dashboard", adminHandler.GetDashboard)
				admin.GET("/users", adminHandler.ListUsers)
				admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
				admin.PUT("/users/:id/ban", adminHandler.SetUserBanned)
				admin.GET("/products", adminHandler.ListAllProducts)
				admin.PUT("/products/:id/approve", adminHandler.SetProductApproved)
				admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
			}
		}
	}

	return r, nil
}
