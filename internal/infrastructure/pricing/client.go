package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/farescout/backend/internal/domain"
	"github.com/farescout/backend/internal/infrastructure/observability"
)

// Client talks to the pricing API for authoritative base rates.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewClient creates a pricing API client.
func NewClient(apiKey, baseURL string, rps float64, logger zerolog.Logger) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 5),
		logger:      logger.With().Str("client", "pricing").Logger(),
	}
}

type ratesResponse struct {
	Rates []rateRecord `json:"rates"`
}

type rateRecord struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Rating float64 `json:"rating,omitempty"`
}

// HotelRates returns base nightly rates for hotels at a location.
func (c *Client) HotelRates(ctx context.Context, location, checkIn, checkOut string) ([]domain.BasePriceRecord, error) {
	params := url.Values{}
	params.Add("location", location)
	params.Add("check_in", checkIn)
	params.Add("check_out", checkOut)
	return c.fetchRates(ctx, "hotel-rates", params)
}

// VehicleRates returns base daily rates per vehicle class at a location.
func (c *Client) VehicleRates(ctx context.Context, location, pickup, dropoff string) ([]domain.BasePriceRecord, error) {
	params := url.Values{}
	params.Add("location", location)
	params.Add("pickup", pickup)
	params.Add("dropoff", dropoff)
	return c.fetchRates(ctx, "vehicle-rates", params)
}

func (c *Client) fetchRates(ctx context.Context, endpoint string, params url.Values) ([]domain.BasePriceRecord, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params.Add("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "FareScout/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.ObserveExternal("pricing", endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("%w: %v", domain.ErrPricingAPIFailure, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("pricing", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn().Int("status", resp.StatusCode).Str("endpoint", endpoint).Bytes("body", body).Msg("pricing API error")
		return nil, fmt.Errorf("%w: status %d", domain.ErrPricingAPIFailure, resp.StatusCode)
	}

	var rates ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	records := make([]domain.BasePriceRecord, 0, len(rates.Rates))
	for _, r := range rates.Rates {
		// Skip malformed records; the rest of the batch stands.
		if r.Name == "" || r.Amount <= 0 {
			continue
		}
		records = append(records, domain.BasePriceRecord{Name: r.Name, Amount: r.Amount, Rating: r.Rating})
	}
	return records, nil
}
