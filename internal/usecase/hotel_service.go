package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/farescout/backend/internal/domain"
)

// HotelDealParams describe one hotel deal analysis request.
type HotelDealParams struct {
	HotelName string
	Location  string
	CheckIn   string
	CheckOut  string
}

// HotelDealServiceConfig holds tuning for the hotel deal service.
type HotelDealServiceConfig struct {
	CacheTTL             time.Duration
	MaxConcurrentQueries int64
}

// HotelDealService orchestrates the hotel pipeline: query construction,
// concurrent fetch, classification, extraction, base-price merge, dedup,
// rank, summary. Best-deal selection here is by maximum absolute savings;
// the car-rental service selects by confidence.
type HotelDealService struct {
	search   domain.SearchClient
	pricing  domain.PricingClient
	cache    domain.CacheRepository
	logger   zerolog.Logger
	cacheTTL time.Duration
	maxConc  int64
}

// NewHotelDealService creates a hotel deal service with dependencies.
func NewHotelDealService(
	search domain.SearchClient,
	pricing domain.PricingClient,
	cache domain.CacheRepository,
	logger zerolog.Logger,
	config HotelDealServiceConfig,
) *HotelDealService {
	ttl := config.CacheTTL
	if ttl == 0 {
		ttl = 6 * time.Hour
	}
	return &HotelDealService{
		search:   search,
		pricing:  pricing,
		cache:    cache,
		logger:   logger.With().Str("service", "hotel_deals").Logger(),
		cacheTTL: ttl,
		maxConc:  config.MaxConcurrentQueries,
	}
}

// Analyze runs the full hotel deal analysis. An empty deal list is a valid,
// fully-formed result with a nil best deal, never an error.
func (s *HotelDealService) Analyze(ctx context.Context, params HotelDealParams) (*domain.AnalysisResult, error) {
	if params.HotelName == "" && params.Location == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := s.cacheKey(params)
	if cached, err := s.fromCache(ctx, cacheKey); err == nil && cached != nil {
		s.logger.Debug().Str("key", cacheKey).Msg("analysis served from cache")
		return cached, nil
	}

	queries := hotelQueryVariants(params)
	results := fetchQueries(ctx, s.search, queries, s.maxConc, s.logger)
	relevant := filterItems(results, IsDealResult)

	records, err := s.pricing.HotelRates(ctx, params.Location, params.CheckIn, params.CheckOut)
	if err != nil {
		// Base prices are enrichment; extraction still works without them.
		s.logger.Warn().Err(err).Str("location", params.Location).Msg("base prices unavailable")
		records = nil
	}

	deals := CombineDealSources(domain.DealKindHotel, relevant, records)
	deals = DeduplicateDeals(deals)

	analysis := AnalyzeDeals(RankBySavings(deals))
	analysis.Queries = stripItems(results)

	if err := s.toCache(ctx, cacheKey, analysis); err != nil {
		s.logger.Warn().Err(err).Msg("failed to cache analysis")
	}
	return analysis, nil
}

// hotelQueryVariants builds the query strings probed per request. Each
// variant targets a different deal family so the classifiers see a broad
// candidate pool.
func hotelQueryVariants(params HotelDealParams) []string {
	subject := params.HotelName
	if subject == "" {
		subject = params.Location + " hotels"
	}
	return []string{
		fmt.Sprintf("%s promo code", subject),
		fmt.Sprintf("%s discount deals", subject),
		fmt.Sprintf("%s corporate rate", subject),
		fmt.Sprintf("%s employee discount", subject),
	}
}

func (s *HotelDealService) cacheKey(params HotelDealParams) string {
	return fmt.Sprintf("hoteldeals:%s:%s:%s:%s",
		normalizeName(params.HotelName), normalizeName(params.Location),
		params.CheckIn, params.CheckOut)
}

func (s *HotelDealService) fromCache(ctx context.Context, key string) (*domain.AnalysisResult, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return decodeCachedAnalysis(value)
}

func (s *HotelDealService) toCache(ctx context.Context, key string, analysis *domain.AnalysisResult) error {
	return s.cache.Set(ctx, key, analysis, s.cacheTTL)
}

// decodeCachedAnalysis rebuilds an AnalysisResult from whatever shape the
// cache backend returned (the typed value, or a decoded JSON map).
func decodeCachedAnalysis(value interface{}) (*domain.AnalysisResult, error) {
	if analysis, ok := value.(*domain.AnalysisResult); ok {
		return analysis, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}
	var analysis domain.AnalysisResult
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return &analysis, nil
}

// stripItems drops the raw items from query results, keeping only provenance
// for the response body.
func stripItems(results []domain.QueryResult) []domain.QueryResult {
	out := make([]domain.QueryResult, len(results))
	for i, qr := range results {
		out[i] = domain.QueryResult{Query: qr.Query, Count: qr.Count, Error: qr.Error}
	}
	return out
}
