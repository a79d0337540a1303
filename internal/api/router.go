package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-order-pipeline/docs"
	"go-order-pipeline/internal/api/handler"
	"go-order-pipeline/pkg/router"
)

// RegisterRoutes wires the order-run API and the swagger UI.
func RegisterRoutes(r *router.Router, h *handler.OrderHandler) {
	r.POST("/api/v1/orders", h.CreateOrderRun)
	r.GET("/api/v1/orders", h.ListOrderRuns)
	// More specific routes first
	r.GET("/api/v1/orders/*/result", h.GetOrderRunResult)
	r.GET("/api/v1/orders/*/report", h.GetOrderRunReport)
	r.GET("/api/v1/orders/*/errors", h.GetOrderRunErrors)
	r.GET("/api/v1/orders/*/logs", h.GetOrderRunLogs)
	// Generic run route last
	r.GET("/api/v1/orders/*", h.GetOrderRun)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
