package main

import (
	"fmt"
	"os"

	"github.com/farescout/backend/config"
	httpDelivery "github.com/farescout/backend/internal/delivery/http"
	"github.com/farescout/backend/internal/domain"
	"github.com/farescout/backend/internal/infrastructure/cache"
	"github.com/farescout/backend/internal/infrastructure/flights"
	"github.com/farescout/backend/internal/infrastructure/observability"
	"github.com/farescout/backend/internal/infrastructure/pricing"
	"github.com/farescout/backend/internal/infrastructure/websearch"
	"github.com/farescout/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Server.Environment)
	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("cache", cfg.Cache.Type).
		Msg("starting farescout backend v1.0.0")

	registry := observability.InitRegistry()

	var cacheRepo domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect redis cache")
		}
		defer redisCache.Close()
		cacheRepo = redisCache
	default:
		cacheRepo = cache.NewMemoryCache()
	}

	searchClient := websearch.NewClient(cfg.Search.APIKey, cfg.Search.BaseURL, cfg.Search.RPS, logger)
	pricingClient := pricing.NewClient(cfg.Pricing.APIKey, cfg.Pricing.BaseURL, cfg.Pricing.RPS, logger)

	tokenCache := flights.NewTokenCache(cfg.Flights.TokenURL, cfg.Flights.ClientID, cfg.Flights.ClientSecret, logger)
	flightClient := flights.NewClient(cfg.Flights.BaseURL, tokenCache, cfg.Flights.RPS, logger)
	if !cfg.FlightsEnabled() {
		logger.Warn().Msg("flight API credentials not configured; flight scoring will fail upstream")
	}

	hotelService := usecase.NewHotelDealService(searchClient, pricingClient, cacheRepo, logger,
		usecase.HotelDealServiceConfig{
			CacheTTL:             cfg.Cache.TTL,
			MaxConcurrentQueries: cfg.Analysis.MaxConcurrentQueries,
		})
	carService := usecase.NewCarRentalService(searchClient, pricingClient, cacheRepo, logger,
		usecase.CarRentalServiceConfig{
			CacheTTL:             cfg.Cache.TTL,
			MaxConcurrentQueries: cfg.Analysis.MaxConcurrentQueries,
		})
	flightService := usecase.NewFlightScoreService(flightClient, logger)

	handler := httpDelivery.NewHandler(hotelService, carService, flightService, logger)
	router := httpDelivery.SetupRouter(cfg, handler, registry)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
