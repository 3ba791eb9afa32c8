package websearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"organic_results": [
		{"title": "Hotel 20% off", "snippet": "Use code SAVE20", "link": "https://a.example", "position": 1},
		{"title": "", "snippet": "", "link": "https://empty.example", "position": 2},
		{"title": "No position set", "snippet": "still ranked", "link": "https://b.example"}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient("test-key", server.URL, 100, zerolog.Nop())
	return client, server
}

func TestClientSearch(t *testing.T) {
	t.Run("maps results and skips empty items", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "hotel deals", r.URL.Query().Get("q"))
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(sampleResponse))
		})

		items, err := client.Search(context.Background(), "hotel deals")
		require.NoError(t, err)
		require.Len(t, items, 2, "the title-and-snippet-less item must be dropped")

		assert.Equal(t, "Hotel 20% off", items[0].Title)
		assert.Equal(t, 1, items[0].Position)
		// Missing position falls back to the 1-based wire index.
		assert.Equal(t, 3, items[1].Position)
	})

	t.Run("empty result list is not an error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"organic_results": []}`))
		})

		items, err := client.Search(context.Background(), "obscure query")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("retries transient failures until success", func(t *testing.T) {
		var calls int32
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(sampleResponse))
		})

		items, err := client.Search(context.Background(), "hotel deals")
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("exhausted retries surface the last error", func(t *testing.T) {
		var calls int32
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.Search(context.Background(), "hotel deals")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
		assert.Equal(t, int32(maxRetries), atomic.LoadInt32(&calls))
	})

	t.Run("malformed body is fatal, not retried", func(t *testing.T) {
		var calls int32
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Write([]byte(`{"organic_results": [`))
		})

		_, err := client.Search(context.Background(), "hotel deals")
		require.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("cancelled context stops the call", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(sampleResponse))
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.Search(ctx, "hotel deals")
		assert.Error(t, err)
	})
}
