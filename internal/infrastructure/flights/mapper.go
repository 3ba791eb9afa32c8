package flights

import (
	"strconv"

	"github.com/farescout/backend/internal/domain"
)

// Wire shapes for the flight-offers API.
type offersResponse struct {
	Data         []wireOffer      `json:"data"`
	Dictionaries wireDictionaries `json:"dictionaries"`
}

type wireOffer struct {
	ID                       string          `json:"id"`
	InstantTicketingRequired bool            `json:"instantTicketingRequired"`
	NumberOfBookableSeats    int             `json:"numberOfBookableSeats"`
	Itineraries              []wireItinerary `json:"itineraries"`
	Price                    wirePrice       `json:"price"`
	ValidatingAirlineCodes   []string        `json:"validatingAirlineCodes"`
}

type wireItinerary struct {
	Duration string        `json:"duration"`
	Segments []wireSegment `json:"segments"`
}

type wireSegment struct {
	Departure   wireEndpoint `json:"departure"`
	Arrival     wireEndpoint `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
	Aircraft    wireAircraft `json:"aircraft"`
}

type wireEndpoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type wireAircraft struct {
	Code string `json:"code"`
}

// Prices arrive as decimal strings on the wire.
type wirePrice struct {
	Total    string `json:"total"`
	Base     string `json:"base"`
	Currency string `json:"currency"`
}

type wireDictionaries struct {
	Carriers map[string]string `json:"carriers"`
	Aircraft map[string]string `json:"aircraft"`
}

// mapOffers converts the wire response to domain offers. Offers with no
// itineraries or an unparseable total price are skipped; the rest of the
// batch stands.
func mapOffers(wire offersResponse) *domain.FlightSearchResponse {
	resp := &domain.FlightSearchResponse{
		Offers: make([]domain.FlightOffer, 0, len(wire.Data)),
		Dictionaries: domain.FlightDictionaries{
			Carriers: wire.Dictionaries.Carriers,
			Aircraft: wire.Dictionaries.Aircraft,
		},
	}

	for _, w := range wire.Data {
		if len(w.Itineraries) == 0 {
			continue
		}
		total, err := strconv.ParseFloat(w.Price.Total, 64)
		if err != nil {
			continue
		}
		base, _ := strconv.ParseFloat(w.Price.Base, 64)

		offer := domain.FlightOffer{
			ID:                       w.ID,
			InstantTicketingRequired: w.InstantTicketingRequired,
			NumberOfBookableSeats:    w.NumberOfBookableSeats,
			Price: domain.FlightPrice{
				Total:    total,
				Base:     base,
				Currency: w.Price.Currency,
			},
		}
		if len(w.ValidatingAirlineCodes) > 0 {
			offer.ValidatingCarrier = w.ValidatingAirlineCodes[0]
		}
		for _, itin := range w.Itineraries {
			offer.Itineraries = append(offer.Itineraries, mapItinerary(itin))
		}
		resp.Offers = append(resp.Offers, offer)
	}
	return resp
}

func mapItinerary(w wireItinerary) domain.FlightItinerary {
	itin := domain.FlightItinerary{Duration: w.Duration}
	for _, seg := range w.Segments {
		itin.Segments = append(itin.Segments, domain.FlightSegment{
			CarrierCode:  seg.CarrierCode,
			FlightNumber: seg.Number,
			AircraftCode: seg.Aircraft.Code,
			Origin:       seg.Departure.IataCode,
			Destination:  seg.Arrival.IataCode,
			DepartureAt:  seg.Departure.At,
			ArrivalAt:    seg.Arrival.At,
		})
	}
	return itin
}
