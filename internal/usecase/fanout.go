package usecase

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/farescout/backend/internal/domain"
)

// defaultMaxConcurrentQueries bounds the outbound fan-out when the config
// leaves it unset.
const defaultMaxConcurrentQueries = 4

// fetchQueries runs every query against the search collaborator concurrently,
// bounded by limit, and waits for all of them to settle. A failed fetch is
// captured as an empty item set plus an error annotation on that query's
// result. It never aborts sibling queries or the overall request.
func fetchQueries(ctx context.Context, client domain.SearchClient, queries []string, limit int64, logger zerolog.Logger) []domain.QueryResult {
	if limit <= 0 {
		limit = defaultMaxConcurrentQueries
	}

	sem := semaphore.NewWeighted(limit)
	results := make([]domain.QueryResult, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(i int, query string) {
			defer wg.Done()

			results[i] = domain.QueryResult{Query: query}
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i].Error = err.Error()
				return
			}
			defer sem.Release(1)

			items, err := client.Search(ctx, query)
			if err != nil {
				logger.Warn().Err(err).Str("query", query).Msg("search query failed")
				results[i].Error = err.Error()
				return
			}
			results[i].Items = items
			results[i].Count = len(items)
		}(i, query)
	}
	wg.Wait()

	return results
}

// filterItems keeps only the items a predicate accepts, preserving each
// query's provenance and error annotation.
func filterItems(results []domain.QueryResult, keep func(domain.SearchResultItem) bool) []domain.QueryResult {
	filtered := make([]domain.QueryResult, len(results))
	for i, qr := range results {
		filtered[i] = domain.QueryResult{Query: qr.Query, Count: qr.Count, Error: qr.Error}
		for _, item := range qr.Items {
			if keep(item) {
				filtered[i].Items = append(filtered[i].Items, item)
			}
		}
	}
	return filtered
}
