package usecase

import (
	"strings"

	"github.com/farescout/backend/internal/domain"
)

// Classifiers are pure predicates used to pre-filter raw search results
// before extraction. Filtering is a precision optimization: running the
// extractors on an irrelevant item is wasted work, not an error.

// IsDealResult reports whether a search result looks like a hotel deal.
func IsDealResult(item domain.SearchResultItem) bool {
	text := strings.ToLower(item.Title + " " + item.Snippet)
	for _, kw := range dealKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// IsCarRentalResult reports whether a search result is car-rental relevant:
// either rental-intent wording or a known vendor name appears.
func IsCarRentalResult(item domain.SearchResultItem) bool {
	text := strings.ToLower(item.Title + " " + item.Snippet)
	for _, kw := range rentalIntentKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return IdentifyCompany(text) != identityVarious
}
