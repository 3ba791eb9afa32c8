package websearch

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

const maxRetries = 3

// Client talks to the web-search API and maps its results into
// domain.SearchResultItem values.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewClient creates a web-search API client. rps caps outbound request rate;
// values <= 0 fall back to 5 req/s.
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
		logger:      logger.With().Str("client", "websearch").Logger(),
	}
}

// Search runs one query and returns its results in rank order. Transient
// failures are retried with exponential backoff; an empty result list is a
// normal outcome, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]domain.SearchResultItem, error) {
	endpoint := fmt.Sprintf("%s/search", c.baseURL)
	params := url.Values{}
	params.Add("q", query)
	params.Add("api_key", c.apiKey)
	params.Add("num", "10")
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, status, err := c.doGet(ctx, reqURL)
		if err != nil {
			c.logger.Warn().Err(err).Int("attempt", attempt).Str("query", query).Msg("search request failed")
			lastErr = err
			sleepBackoff(ctx, attempt)
			continue
		}
		if status != http.StatusOK {
			lastErr = fmt.Errorf("%w: status %d", domain.ErrSearchAPIFailure, status)
			c.logger.Warn().Int("status", status).Int("attempt", attempt).Str("query", query).Msg("search API error")
			sleepBackoff(ctx, attempt)
			continue
		}

		var resp searchResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		items := mapResults(resp)
		c.logger.Debug().Str("query", query).Int("results", len(items)).Msg("search completed")
		return items, nil
	}
	return nil, lastErr
}

func (c *Client) doGet(ctx context.Context, reqURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "FareScout/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.ObserveExternal("websearch", "search", 0, time.Since(start))
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrSearchAPIFailure, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("websearch", "search", resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// sleepBackoff waits attempt*500ms, returning early if the context ends.
func sleepBackoff(ctx context.Context, attempt int) {
	select {
	case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
	case <-ctx.Done():
	}
}
