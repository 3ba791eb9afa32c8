package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// SearchClient defines the interface for the web-search collaborator.
// A single call runs one query and returns its result items in rank order.
type SearchClient interface {
	Search(ctx context.Context, query string) ([]SearchResultItem, error)
}

// PricingClient defines the interface for the base-price collaborator.
type PricingClient interface {
	HotelRates(ctx context.Context, location, checkIn, checkOut string) ([]BasePriceRecord, error)
	VehicleRates(ctx context.Context, location, pickup, dropoff string) ([]BasePriceRecord, error)
}

// FlightClient defines the interface for the flight-offer collaborator.
type FlightClient interface {
	SearchOffers(ctx context.Context, query FlightQuery) (*FlightSearchResponse, error)
}

// TokenSource supplies a valid access token for an OAuth-protected
// collaborator. Implementations own expiry checking and refresh; callers
// receive an injected instance, never a package-level singleton.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
