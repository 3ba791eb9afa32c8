package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/farescout/backend/internal/domain"
	"github.com/farescout/backend/internal/usecase"
)

// HotelAnalyzer runs a hotel deal analysis.
type HotelAnalyzer interface {
	Analyze(ctx context.Context, params usecase.HotelDealParams) (*domain.AnalysisResult, error)
}

// CarAnalyzer runs a car-rental deal analysis.
type CarAnalyzer interface {
	Analyze(ctx context.Context, params usecase.CarRentalParams) (*domain.AnalysisResult, error)
}

// FlightScorer scores flight offers for a query.
type FlightScorer interface {
	Score(ctx context.Context, query domain.FlightQuery) ([]domain.ScoredFlightOffer, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	hotels  HotelAnalyzer
	cars    CarAnalyzer
	flights FlightScorer
	logger  zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(hotels HotelAnalyzer, cars CarAnalyzer, flights FlightScorer, logger zerolog.Logger) *Handler {
	return &Handler{
		hotels:  hotels,
		cars:    cars,
		flights: flights,
		logger:  logger.With().Str("component", "http").Logger(),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "farescout-backend",
		"version": "1.0.0",
	})
}

type hotelDealsRequest struct {
	HotelName string `json:"hotelName"`
	Location  string `json:"location"`
	CheckIn   string `json:"checkIn,omitempty"`
	CheckOut  string `json:"checkOut,omitempty"`
}

// HotelDeals handles hotel deal analysis requests
func (h *Handler) HotelDeals(c *gin.Context) {
	var req hotelDealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.hotels.Analyze(c.Request.Context(), usecase.HotelDealParams{
		HotelName: req.HotelName,
		Location:  req.Location,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type carDealsRequest struct {
	Location string `json:"location" binding:"required"`
	Pickup   string `json:"pickup,omitempty"`
	Dropoff  string `json:"dropoff,omitempty"`
}

// CarRentalDeals handles car-rental deal analysis requests
func (h *Handler) CarRentalDeals(c *gin.Context) {
	var req carDealsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.cars.Analyze(c.Request.Context(), usecase.CarRentalParams{
		Location: req.Location,
		Pickup:   req.Pickup,
		Dropoff:  req.Dropoff,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type scoreFlightsRequest struct {
	Origin        string `json:"origin" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	DepartureDate string `json:"departureDate" binding:"required"`
	Adults        int    `json:"adults,omitempty"`
	Max           int    `json:"max,omitempty"`
}

// ScoreFlights handles flight-offer scoring requests
func (h *Handler) ScoreFlights(c *gin.Context) {
	var req scoreFlightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	scored, err := h.flights.Score(c.Request.Context(), domain.FlightQuery{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: req.DepartureDate,
		Adults:        req.Adults,
		Max:           req.Max,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": scored, "total": len(scored)})
}

// respondError maps domain errors to HTTP statuses. "No deals found" is not
// an error and never reaches here; handlers return the empty result as 200.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSearchAPIFailure),
		errors.Is(err, domain.ErrPricingAPIFailure),
		errors.Is(err, domain.ErrFlightAPIFailure),
		errors.Is(err, domain.ErrTokenUnavailable):
		h.logger.Error().Err(err).Msg("upstream failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		h.logger.Error().Err(err).Msg("internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
