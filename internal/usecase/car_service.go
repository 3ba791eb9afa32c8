package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/farescout/backend/internal/domain"
)

// CarRentalParams describe one car-rental deal analysis request.
type CarRentalParams struct {
	Location string
	Pickup   string
	Dropoff  string
}

// CarRentalServiceConfig holds tuning for the car-rental deal service.
type CarRentalServiceConfig struct {
	CacheTTL             time.Duration
	MaxConcurrentQueries int64
}

// CarRentalService orchestrates the car-rental pipeline. Selection policy is
// confidence descending then discount percent descending; the hotel service
// selects by maximum savings.
type CarRentalService struct {
	search   domain.SearchClient
	pricing  domain.PricingClient
	cache    domain.CacheRepository
	logger   zerolog.Logger
	cacheTTL time.Duration
	maxConc  int64
}

// NewCarRentalService creates a car-rental deal service with dependencies.
func NewCarRentalService(
	search domain.SearchClient,
	pricing domain.PricingClient,
	cache domain.CacheRepository,
	logger zerolog.Logger,
	config CarRentalServiceConfig,
) *CarRentalService {
	ttl := config.CacheTTL
	if ttl == 0 {
		ttl = 6 * time.Hour
	}
	return &CarRentalService{
		search:   search,
		pricing:  pricing,
		cache:    cache,
		logger:   logger.With().Str("service", "car_rental_deals").Logger(),
		cacheTTL: ttl,
		maxConc:  config.MaxConcurrentQueries,
	}
}

// Analyze runs the full car-rental deal analysis.
func (s *CarRentalService) Analyze(ctx context.Context, params CarRentalParams) (*domain.AnalysisResult, error) {
	if params.Location == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := fmt.Sprintf("cardeals:%s:%s:%s",
		normalizeName(params.Location), params.Pickup, params.Dropoff)
	if value, err := s.cache.Get(ctx, cacheKey); err == nil {
		if cached, err := decodeCachedAnalysis(value); err == nil {
			s.logger.Debug().Str("key", cacheKey).Msg("analysis served from cache")
			return cached, nil
		}
	}

	queries := carQueryVariants(params)
	results := fetchQueries(ctx, s.search, queries, s.maxConc, s.logger)
	relevant := filterItems(results, IsCarRentalResult)

	records, err := s.pricing.VehicleRates(ctx, params.Location, params.Pickup, params.Dropoff)
	if err != nil {
		s.logger.Warn().Err(err).Str("location", params.Location).Msg("vehicle rates unavailable")
		records = nil
	}

	deals := CombineDealSources(domain.DealKindCarRental, relevant, records)
	deals = DeduplicateDeals(deals)

	analysis := AnalyzeDeals(RankByConfidence(deals))
	analysis.Queries = stripItems(results)

	if err := s.cache.Set(ctx, cacheKey, analysis, s.cacheTTL); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache analysis")
	}
	return analysis, nil
}

func carQueryVariants(params CarRentalParams) []string {
	return []string{
		fmt.Sprintf("car rental deals %s", params.Location),
		fmt.Sprintf("rent a car promo code %s", params.Location),
		fmt.Sprintf("car rental corporate discount %s", params.Location),
		fmt.Sprintf("%s car hire coupon", params.Location),
	}
}
