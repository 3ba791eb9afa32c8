package usecase

import (
	"net/url"
	"strings"

	"github.com/farescout/backend/internal/domain"
)

// Confidence scoring is a deterministic weighted heuristic: every signal is a
// fixed additive adjustment so a score can always be traced back to its
// contributing factors, and the same input always yields the same score.

// Text-snippet scoring weights.
const (
	textConfidenceBase   = 0.5
	textConfidenceCap    = 0.95
	positionCutoff       = 10   // ranks past this earn no position bonus
	positionStep         = 0.02 // per-rank bonus, strictly decreasing
	vendorDomainBonus    = 0.10
	promoCodeBonus       = 0.10
	richSnippetBonus     = 0.05
	richSnippetMinLength = 120
)

// Flight-offer scoring weights.
const (
	flightConfidenceBase = 0.5
	directFlightBonus    = 0.20
	twoSegmentBonus      = 0.10
	seatBonusStep        = 0.04
	seatBonusSaturation  = 5 // seats beyond this add nothing
	ticketingPenalty     = 0.10
)

// ScoreTextResult computes the confidence for a text-derived deal candidate.
// Signals, in priority order: search position, recognized vendor domain in
// the link, extracted promo code, snippet richness. Clamped to [0, 0.95]; the
// best possible input (rank 1, known domain, promo code, long snippet) lands
// exactly on the cap.
func ScoreTextResult(item domain.SearchResultItem, promoCode string) float64 {
	score := textConfidenceBase

	if item.Position >= 1 && item.Position <= positionCutoff {
		score += positionStep * float64(positionCutoff+1-item.Position)
	}
	if hasVendorDomain(item.Link) {
		score += vendorDomainBonus
	}
	if promoCode != "" {
		score += promoCodeBonus
	}
	if len(item.Snippet) > richSnippetMinLength {
		score += richSnippetBonus
	}

	return clamp(score, 0, textConfidenceCap)
}

// ScoreFlightOffer computes the confidence for a structured flight offer.
// Direct itineraries beat multi-segment ones, more bookable seats raise the
// score up to a saturation point, and instant-ticketing-required is a fixed
// penalty. Clamped to [0, 1].
func ScoreFlightOffer(offer domain.FlightOffer) float64 {
	score := flightConfidenceBase

	switch segments := outboundSegments(offer); {
	case segments == 1:
		score += directFlightBonus
	case segments == 2:
		score += twoSegmentBonus
	}

	seats := offer.NumberOfBookableSeats
	if seats > seatBonusSaturation {
		seats = seatBonusSaturation
	}
	if seats > 0 {
		score += seatBonusStep * float64(seats)
	}

	if offer.InstantTicketingRequired {
		score -= ticketingPenalty
	}

	return clamp(score, 0, 1)
}

// outboundSegments counts segments in the first (outbound) itinerary.
// A malformed offer with no itineraries counts as zero and earns no bonus.
func outboundSegments(offer domain.FlightOffer) int {
	if len(offer.Itineraries) == 0 {
		return 0
	}
	return len(offer.Itineraries[0].Segments)
}

func hasVendorDomain(link string) bool {
	host := strings.ToLower(link)
	if u, err := url.Parse(link); err == nil && u.Host != "" {
		host = strings.ToLower(u.Host)
	}
	for _, d := range vendorDomains {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
