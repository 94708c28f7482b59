package routes

import (
	"ecommerce-dashboard/internal/handlers"
	"ecommerce-dashboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, h *handlers.DashboardHandler) {
	router.Use(middleware.RequestID(), middleware.Logger())

	router.GET("/", h.Index)
	router.GET("/charts/:file", h.ChartPNG)
	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/charts", h.ListCharts)
		api.GET("/charts/:id", h.ChartOptions)
		api.GET("/summary", h.Summary)
		api.DELETE("/cache", h.PurgeCache)
	}
}
