// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/history"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/domain/payment"
	"github.com/your-org/storefront/internal/domain/recommend"
	"github.com/your-org/storefront/internal/domain/search"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/pdf"
	"gorm.io/gorm"
)

// SetupRoutes wires every API route group with its handlers
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log *logrus.Logger) {
	store := storage.NewRedisStore(redisClient, cfg.Redis.SessionTTL)

	catalogClient := catalog.NewClient(cfg)
	searchService := search.NewService(cfg)
	cartService := cart.NewService(store, log)
	wishlistService := wishlist.NewService(store, log)
	historyService := history.NewService(store, log)
	recommendService := recommend.NewService(catalogClient, historyService, nil, log)
	orderLog := order.NewLogService(store, log)
	orderRecords := order.NewRecordService(db)
	gateway := payment.NewGateway(cfg)
	checkoutService := checkout.NewService(cartService, orderLog, orderRecords, gateway, log)
	pdfService := pdf.NewService(cfg)

	// Every route resolves the shopper session first
	rg.Use(middleware.Session(cfg))
	rg.Use(middleware.OptionalAuthMiddleware(cfg))

	authHandler := handlers.NewAuthHandler(cfg)
	authRoutes := rg.Group("/auth")
	{
		authRoutes.POST("/token", authHandler.IssueToken)
		authRoutes.GET("/me", middleware.AuthMiddleware(cfg), authHandler.Me)
	}

	productHandler := handlers.NewProductHandler(catalogClient, searchService, historyService)
	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/search", productHandler.SearchProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	categoryHandler := handlers.NewCategoryHandler(catalogClient)
	categoryRoutes := rg.Group("/categories")
	{
		categoryRoutes.GET("", categoryHandler.ListCategories)
		categoryRoutes.GET("/:name", categoryHandler.GetCategory)
	}

	cartHandler := handlers.NewCartHandler(cartService, catalogClient)
	cartRoutes := rg.Group("/cart")
	{
		cartRoutes.GET("", cartHandler.GetCart)
		cartRoutes.GET("/count", cartHandler.GetCartCount)
		cartRoutes.POST("/items", cartHandler.AddToCart)
		cartRoutes.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartRoutes.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartRoutes.DELETE("", cartHandler.ClearCart)
	}

	wishlistHandler := handlers.NewWishlistHandler(wishlistService, cartService, catalogClient)
	wishlistRoutes := rg.Group("/wishlist")
	{
		wishlistRoutes.GET("", wishlistHandler.GetWishlist)
		wishlistRoutes.POST("/items", wishlistHandler.AddToWishlist)
		wishlistRoutes.DELETE("/items/:id", wishlistHandler.RemoveFromWishlist)
		wishlistRoutes.POST("/items/:id/move", wishlistHandler.MoveToCart)
		wishlistRoutes.DELETE("", wishlistHandler.ClearWishlist)
	}

	historyHandler := handlers.NewHistoryHandler(historyService)
	historyRoutes := rg.Group("/history")
	{
		historyRoutes.GET("", historyHandler.GetHistory)
		historyRoutes.DELETE("", historyHandler.ClearHistory)
	}

	recommendationHandler := handlers.NewRecommendationHandler(recommendService)
	rg.GET("/recommendations", recommendationHandler.GetRecommendations)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	checkoutRoutes := rg.Group("/checkout")
	{
		checkoutRoutes.POST("/initiate", checkoutHandler.InitiatePayment)
		checkoutRoutes.POST("/complete", checkoutHandler.CompleteCheckout)
	}

	orderHandler := handlers.NewOrderHandler(orderLog)
	receiptHandler := handlers.NewReceiptHandler(orderLog, pdfService)
	orderRoutes := rg.Group("/orders")
	{
		orderRoutes.GET("", orderHandler.ListOrders)
		orderRoutes.GET("/:id", orderHandler.GetOrder)
		orderRoutes.GET("/:id/receipt", receiptHandler.DownloadReceipt)
	}
}
