package usecase

import (
	"math"
	"strings"
	"testing"

	"github.com/farescout/backend/internal/domain"
)

func TestScoreTextResult(t *testing.T) {
	longSnippet := strings.Repeat("deal details ", 20) // well past the richness threshold

	t.Run("best case hits the cap exactly", func(t *testing.T) {
		item := domain.SearchResultItem{
			Title:    "Hilton promo",
			Snippet:  longSnippet,
			Link:     "https://www.hilton.com/offers",
			Position: 1,
		}
		got := ScoreTextResult(item, "SAVE20")
		if math.Abs(got-0.95) > 1e-9 {
			t.Errorf("score = %v, want the 0.95 cap", got)
		}
	})

	t.Run("never exceeds cap for adversarial input", func(t *testing.T) {
		item := domain.SearchResultItem{
			Title:    "everything at once",
			Snippet:  strings.Repeat("x", 10000),
			Link:     "https://enterprise.com/hertz.com/budget.com",
			Position: 1,
		}
		got := ScoreTextResult(item, "CODE123")
		if got > 0.95 {
			t.Errorf("score = %v, want <= 0.95", got)
		}
	})

	t.Run("position bonus strictly decreases", func(t *testing.T) {
		prev := 2.0
		for pos := 1; pos <= 10; pos++ {
			item := domain.SearchResultItem{Title: "deal", Position: pos}
			got := ScoreTextResult(item, "")
			if got >= prev {
				t.Errorf("position %d: score = %v, want < %v", pos, got, prev)
			}
			prev = got
		}
	})

	t.Run("no position bonus past cutoff", func(t *testing.T) {
		at11 := ScoreTextResult(domain.SearchResultItem{Title: "deal", Position: 11}, "")
		at50 := ScoreTextResult(domain.SearchResultItem{Title: "deal", Position: 50}, "")
		if at11 != 0.5 || at50 != 0.5 {
			t.Errorf("scores = %v, %v, want base 0.5 past cutoff", at11, at50)
		}
	})

	t.Run("promo code adds fixed bonus", func(t *testing.T) {
		item := domain.SearchResultItem{Title: "deal", Position: 20}
		without := ScoreTextResult(item, "")
		with := ScoreTextResult(item, "SAVE20")
		if diff := with - without; diff < 0.099 || diff > 0.101 {
			t.Errorf("promo bonus = %v, want 0.10", diff)
		}
	})

	t.Run("vendor domain adds fixed bonus", func(t *testing.T) {
		base := domain.SearchResultItem{Title: "deal", Position: 20}
		withDomain := base
		withDomain.Link = "https://www.budget.com/deals"
		diff := ScoreTextResult(withDomain, "") - ScoreTextResult(base, "")
		if diff < 0.099 || diff > 0.101 {
			t.Errorf("domain bonus = %v, want 0.10", diff)
		}
	})

	t.Run("always within bounds", func(t *testing.T) {
		items := []domain.SearchResultItem{
			{},
			{Position: -5},
			{Position: 1000000},
			{Title: "x", Snippet: strings.Repeat("y", 5000), Link: "not a url", Position: 0},
		}
		for _, item := range items {
			got := ScoreTextResult(item, "")
			if got < 0 || got > 0.95 {
				t.Errorf("score = %v for %+v, want within [0, 0.95]", got, item)
			}
		}
	})
}

func TestScoreFlightOffer(t *testing.T) {
	baseOffer := func(segments int) domain.FlightOffer {
		segs := make([]domain.FlightSegment, segments)
		return domain.FlightOffer{
			Itineraries:           []domain.FlightItinerary{{Segments: segs}},
			NumberOfBookableSeats: 3,
		}
	}

	t.Run("direct beats two segments", func(t *testing.T) {
		direct := ScoreFlightOffer(baseOffer(1))
		oneStop := ScoreFlightOffer(baseOffer(2))
		if direct <= oneStop {
			t.Errorf("direct = %v, oneStop = %v, want direct strictly higher", direct, oneStop)
		}
	})

	t.Run("segment bonus monotonic decreasing", func(t *testing.T) {
		s1 := ScoreFlightOffer(baseOffer(1))
		s2 := ScoreFlightOffer(baseOffer(2))
		s3 := ScoreFlightOffer(baseOffer(3))
		if !(s1 > s2 && s2 > s3) {
			t.Errorf("scores = %v, %v, %v, want strictly decreasing", s1, s2, s3)
		}
	})

	t.Run("instant ticketing penalized", func(t *testing.T) {
		offer := baseOffer(1)
		relaxed := ScoreFlightOffer(offer)
		offer.InstantTicketingRequired = true
		urgent := ScoreFlightOffer(offer)
		if urgent >= relaxed {
			t.Errorf("urgent = %v, relaxed = %v, want urgent strictly lower", urgent, relaxed)
		}
	})

	t.Run("seat bonus saturates", func(t *testing.T) {
		offer := baseOffer(1)
		offer.NumberOfBookableSeats = 5
		atSaturation := ScoreFlightOffer(offer)
		offer.NumberOfBookableSeats = 200
		beyond := ScoreFlightOffer(offer)
		if atSaturation != beyond {
			t.Errorf("scores = %v, %v, want equal past saturation", atSaturation, beyond)
		}
	})

	t.Run("more seats score higher below saturation", func(t *testing.T) {
		offer := baseOffer(1)
		offer.NumberOfBookableSeats = 1
		one := ScoreFlightOffer(offer)
		offer.NumberOfBookableSeats = 4
		four := ScoreFlightOffer(offer)
		if four <= one {
			t.Errorf("four seats = %v, one seat = %v, want more seats higher", four, one)
		}
	})

	t.Run("always within bounds", func(t *testing.T) {
		offers := []domain.FlightOffer{
			{},
			{NumberOfBookableSeats: -3, InstantTicketingRequired: true},
			{Itineraries: []domain.FlightItinerary{{Segments: make([]domain.FlightSegment, 8)}}},
			{Itineraries: []domain.FlightItinerary{{Segments: make([]domain.FlightSegment, 1)}}, NumberOfBookableSeats: 9999},
		}
		for _, offer := range offers {
			got := ScoreFlightOffer(offer)
			if got < 0 || got > 1 {
				t.Errorf("score = %v, want within [0, 1]", got)
			}
		}
	})
}
