package usecase

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/farescout/backend/internal/domain"
)

// FlightScoreService attaches confidence scores to structured flight offers.
// No text extraction happens here; the signals are itinerary shape, seat
// availability, and the ticketing flag.
type FlightScoreService struct {
	flights domain.FlightClient
	logger  zerolog.Logger
}

// NewFlightScoreService creates a flight scoring service with dependencies.
func NewFlightScoreService(flights domain.FlightClient, logger zerolog.Logger) *FlightScoreService {
	return &FlightScoreService{
		flights: flights,
		logger:  logger.With().Str("service", "flight_score").Logger(),
	}
}

// Score fetches offers for the query and returns them scored, highest
// confidence first. An empty offer list is a valid result.
func (s *FlightScoreService) Score(ctx context.Context, query domain.FlightQuery) ([]domain.ScoredFlightOffer, error) {
	if query.Origin == "" || query.Destination == "" || query.DepartureDate == "" {
		return nil, domain.ErrInvalidRequest
	}

	resp, err := s.flights.SearchOffers(ctx, query)
	if err != nil {
		return nil, err
	}

	scored := ScoreOffers(resp)
	s.logger.Debug().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Int("offers", len(scored)).
		Msg("scored flight offers")
	return scored, nil
}

// ScoreOffers scores every offer in a response and sorts by confidence
// descending (stable: equal scores keep the collaborator's order). Display
// names come from the response dictionaries; they never influence the score.
func ScoreOffers(resp *domain.FlightSearchResponse) []domain.ScoredFlightOffer {
	if resp == nil {
		return nil
	}

	scored := make([]domain.ScoredFlightOffer, 0, len(resp.Offers))
	for _, offer := range resp.Offers {
		scored = append(scored, domain.ScoredFlightOffer{
			Offer:         offer,
			Confidence:    ScoreFlightOffer(offer),
			CarrierName:   resp.Dictionaries.Carriers[offer.ValidatingCarrier],
			AircraftNames: aircraftNames(offer, resp.Dictionaries.Aircraft),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Confidence > scored[j].Confidence
	})
	return scored
}

func aircraftNames(offer domain.FlightOffer, dict map[string]string) []string {
	if len(dict) == 0 {
		return nil
	}
	var names []string
	seen := make(map[string]bool)
	for _, itin := range offer.Itineraries {
		for _, seg := range itin.Segments {
			name, ok := dict[seg.AircraftCode]
			if !ok || seen[name] {
				continue
			}
			names = append(names, name)
			seen[name] = true
		}
	}
	return names
}
