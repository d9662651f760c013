package api

import (
	"github.com/gin-gonic/gin"

	"github.com/bolajio/portfolio-api/internal/handlers"
)

func registerMarketplaceRoutes(public, admin *gin.RouterGroup, h *handlers.MarketplaceHandler) {
	marketplace := public.Group("/marketplace")
	{
		marketplace.GET("/products", h.ListProducts)
		marketplace.GET("/products/:slug", h.GetProduct)
		marketplace.POST("/orders", h.CreateOrder)
	}

	admin.GET("/orders", h.ListOrders)
	admin.GET("/marketplace/stats", h.Stats)

	products := admin.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}

	categories := admin.Group("/product-categories")
	{
		categories.POST("", h.CreateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}
