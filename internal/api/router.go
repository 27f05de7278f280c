package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"boxtrack-backend/config"
	"boxtrack-backend/internal/catalog"
	"boxtrack-backend/internal/mw"
	"boxtrack-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, cat *catalog.Service, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, cat, cfg.Export)
	rateLimiter := mw.RateLimit(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/products/search", handler.SearchProducts)
		api.GET("/products", handler.ListProducts)
		api.GET("/products/info", handler.GetProductInfo)

		api.POST("/orders", handler.CreateOrder)
		api.GET("/orders", handler.ListOrders)
		api.GET("/orders/search", handler.SearchOrders)
		api.GET("/orders/recent", handler.RecentOrders)
		api.POST("/orders/selected", handler.SelectedOrders)
		api.GET("/orders/:id", handler.GetOrder)
		api.PUT("/orders/:id", handler.UpdateOrder)
		api.PATCH("/orders/:id/field", handler.UpdateOrderField)
		api.DELETE("/orders/:id", handler.DeleteOrder)
		api.POST("/orders/delete-batch", handler.DeleteOrdersBatch)

		api.GET("/export/excel", handler.ExportExcel)
		api.POST("/export/pdf", handler.ExportPDF)
		api.POST("/print", handler.PrintForm)
		api.POST("/plans", handler.SavePlan)
	}

	return r
}
