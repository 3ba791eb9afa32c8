package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/farescout/backend/internal/domain"
	"github.com/farescout/backend/internal/infrastructure/observability"
)

// Client talks to the flight-offers API using an injected TokenSource.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	tokens      domain.TokenSource
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewClient creates a flight-offers API client.
func NewClient(baseURL string, tokens domain.TokenSource, rps float64, logger zerolog.Logger) *Client {
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		baseURL:     baseURL,
		tokens:      tokens,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 2),
		logger:      logger.With().Str("client", "flights").Logger(),
	}
}

// SearchOffers fetches structured flight offers for one query.
func (c *Client) SearchOffers(ctx context.Context, query domain.FlightQuery) (*domain.FlightSearchResponse, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	maxResults := query.Max
	if maxResults <= 0 {
		maxResults = 20
	}
	adults := query.Adults
	if adults <= 0 {
		adults = 1
	}

	params := url.Values{}
	params.Add("originLocationCode", query.Origin)
	params.Add("destinationLocationCode", query.Destination)
	params.Add("departureDate", query.DepartureDate)
	params.Add("adults", strconv.Itoa(adults))
	params.Add("max", strconv.Itoa(maxResults))
	reqURL := fmt.Sprintf("%s/v2/shopping/flight-offers?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.ObserveExternal("flights", "flight-offers", 0, time.Since(start))
		return nil, fmt.Errorf("%w: %v", domain.ErrFlightAPIFailure, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("flights", "flight-offers", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn().Int("status", resp.StatusCode).Bytes("body", body).Msg("flight API error")
		return nil, fmt.Errorf("%w: status %d", domain.ErrFlightAPIFailure, resp.StatusCode)
	}

	var wire offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	mapped := mapOffers(wire)
	c.logger.Debug().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Int("offers", len(mapped.Offers)).
		Msg("flight offers fetched")
	return mapped, nil
}
