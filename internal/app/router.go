package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"rides/internal/docs"
	"rides/internal/handler"
	"rides/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	RideHandler   *handler.RideHandler
	HealthHandler *handler.HealthHandler
	RedisClient   *redis.Client
	NewRelicApp   *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	router := gin.New()

	// Global middleware. Access logging happens outside gin, see NewServer.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health checks.
	router.GET("/health", deps.HealthHandler.Health)
	router.GET("/health/ready", deps.HealthHandler.Ready)

	// Ride routes.
	rides := router.Group("/rides")
	{
		rides.POST("", deps.RideHandler.CreateRide)
		rides.GET("", deps.RideHandler.ListRides)
		rides.GET("/:id", deps.RideHandler.GetRide)
		rides.GET("/:id/:pageSize", deps.RideHandler.ListRides)
	}

	if err := docs.Register(router.Group("/docs")); err != nil {
		return nil, err
	}

	return router, nil
}
