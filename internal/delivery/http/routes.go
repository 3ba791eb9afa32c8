package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/farescout/backend/config"
	"github.com/farescout/backend/internal/infrastructure/observability"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, registry *prometheus.Registry) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(handler.logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)
	if registry != nil {
		router.GET("/metrics", gin.WrapH(observability.MetricsHandler(registry)))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		deals := v1.Group("/deals")
		{
			deals.POST("/hotels", handler.HotelDeals)
			deals.POST("/cars", handler.CarRentalDeals)
		}
		v1.POST("/flights/score", handler.ScoreFlights)
	}

	return router
}
