package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache backend is unreachable
	ErrCacheUnavailable = errors.New("cache service unavailable")

	// ErrSearchAPIFailure is returned when a web-search API request fails
	ErrSearchAPIFailure = errors.New("search API request failed")

	// ErrPricingAPIFailure is returned when a pricing API request fails
	ErrPricingAPIFailure = errors.New("pricing API request failed")

	// ErrFlightAPIFailure is returned when a flight-offers API request fails
	ErrFlightAPIFailure = errors.New("flight API request failed")

	// ErrTokenUnavailable is returned when no valid access token can be obtained
	ErrTokenUnavailable = errors.New("access token unavailable")
)
