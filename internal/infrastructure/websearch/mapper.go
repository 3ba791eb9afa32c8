package websearch

import "github.com/farescout/backend/internal/domain"

// searchResponse is the wire shape of the web-search API.
type searchResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
}

type organicResult struct {
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	Link     string `json:"link"`
	Position int    `json:"position"`
}

// mapResults converts wire results to domain items. Results missing both
// title and snippet are skipped; a missing position falls back to the
// 1-based list index so downstream rank scoring still works.
func mapResults(resp searchResponse) []domain.SearchResultItem {
	items := make([]domain.SearchResultItem, 0, len(resp.OrganicResults))
	for i, r := range resp.OrganicResults {
		if r.Title == "" && r.Snippet == "" {
			continue
		}
		position := r.Position
		if position <= 0 {
			position = i + 1
		}
		items = append(items, domain.SearchResultItem{
			Title:    r.Title,
			Snippet:  r.Snippet,
			Link:     r.Link,
			Position: position,
		})
	}
	return items
}
