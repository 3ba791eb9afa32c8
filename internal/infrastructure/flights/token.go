package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/farescout/backend/internal/domain"
)

// tokenExpirySlack refreshes slightly before the reported expiry so an
// in-flight request never carries a token that dies mid-call.
const tokenExpirySlack = 30 * time.Second

// TokenCache is a client-credentials TokenSource with an expiry-checked
// cached token. It is an injectable collaborator, constructed once and shared
// by handshake with whoever needs it.
type TokenCache struct {
	httpClient   *http.Client
	tokenURL     string
	clientID     string
	clientSecret string
	logger       zerolog.Logger

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenCache creates a token source for the flight collaborator's OAuth
// endpoint.
func NewTokenCache(tokenURL, clientID, clientSecret string, logger zerolog.Logger) *TokenCache {
	return &TokenCache{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger.With().Str("client", "flight_token").Logger(),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token returns the cached access token, fetching a fresh one when the cache
// is empty or within the expiry slack.
func (t *TokenCache) Token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && time.Now().Before(t.expiresAt.Add(-tokenExpirySlack)) {
		return t.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", t.clientID)
	form.Set("client_secret", t.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.logger.Warn().Int("status", resp.StatusCode).Bytes("body", body).Msg("token request rejected")
		return "", fmt.Errorf("%w: status %d", domain.ErrTokenUnavailable, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", domain.ErrTokenUnavailable
	}

	t.token = tr.AccessToken
	t.expiresAt = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	t.logger.Debug().Time("expires_at", t.expiresAt).Msg("access token refreshed")
	return t.token, nil
}
