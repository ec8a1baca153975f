package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	notificationHandler := handlers.NewNotificationHandler(facade)
	inventoryHandler := handlers.NewInventoryHandler(facade)

	api := engine.Group("/api")
	api.GET("/products", productHandler.Search)
	api.GET("/products/search", productHandler.Search)
	api.GET("/products/:id", productHandler.Get)

	guest := api.Group("/guest")
	guest.GET("/cart", cartHandler.GetGuest)
	guest.PUT("/cart", cartHandler.ReplaceGuest)
	guest.POST("/orders", orderHandler.PlaceGuest)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/cart", cartHandler.Get)
	userAuth.PUT("/cart", cartHandler.Replace)
	userAuth.POST("/cart/merge", cartHandler.Merge)
	userAuth.POST("/orders", orderHandler.Place)
	userAuth.GET("/orders", orderHandler.List)
	userAuth.GET("/orders/:number", orderHandler.Get)
	userAuth.POST("/payments", paymentHandler.Start)
	userAuth.POST("/payments/verify", paymentHandler.Verify)
	userAuth.GET("/payments", paymentHandler.ListByOrder)
	userAuth.GET("/notifications", notificationHandler.List)
	userAuth.POST("/notifications/read", notificationHandler.MarkRead)
	userAuth.POST("/notifications/read-all", notificationHandler.MarkAllRead)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	admin.PUT("/inventory/stock", inventoryHandler.UpdateStock)
	admin.PUT("/inventory/stock/bulk", inventoryHandler.BulkUpdateStock)
	admin.PUT("/inventory/alerts", inventoryHandler.SetStockAlert)
	admin.GET("/inventory/report", inventoryHandler.Report)
	admin.POST("/inventory/restock", inventoryHandler.CreateRestock)

	return engine
}
