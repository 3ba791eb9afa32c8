package domain

// FlightSegment is one leg of an itinerary.
type FlightSegment struct {
	CarrierCode  string `json:"carrierCode"`
	FlightNumber string `json:"flightNumber"`
	AircraftCode string `json:"aircraftCode,omitempty"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	DepartureAt  string `json:"departureAt"`
	ArrivalAt    string `json:"arrivalAt"`
}

// FlightItinerary is an ordered sequence of segments with a total duration.
type FlightItinerary struct {
	Duration string          `json:"duration,omitempty"`
	Segments []FlightSegment `json:"segments"`
}

// FlightPrice is the offer's price breakdown.
type FlightPrice struct {
	Total    float64 `json:"total"`
	Base     float64 `json:"base,omitempty"`
	Currency string  `json:"currency"`
}

// FlightOffer is one structured offer from the flight collaborator. Scoring
// never mutates it; a confidence is attached alongside in ScoredFlightOffer.
type FlightOffer struct {
	ID                       string            `json:"id"`
	Itineraries              []FlightItinerary `json:"itineraries"`
	Price                    FlightPrice       `json:"price"`
	NumberOfBookableSeats    int               `json:"numberOfBookableSeats"`
	InstantTicketingRequired bool              `json:"instantTicketingRequired"`
	ValidatingCarrier        string            `json:"validatingCarrier,omitempty"`
}

// FlightDictionaries maps carrier and aircraft codes to display names.
// Consumed read-only for display enrichment, never for scoring.
type FlightDictionaries struct {
	Carriers map[string]string `json:"carriers,omitempty"`
	Aircraft map[string]string `json:"aircraft,omitempty"`
}

// FlightSearchResponse is the collaborator's full answer for one query.
type FlightSearchResponse struct {
	Offers       []FlightOffer      `json:"offers"`
	Dictionaries FlightDictionaries `json:"dictionaries"`
}

// FlightQuery describes one flight-offer search.
type FlightQuery struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	Adults        int    `json:"adults"`
	Max           int    `json:"max,omitempty"`
}

// ScoredFlightOffer pairs an offer with its confidence and display names.
type ScoredFlightOffer struct {
	Offer         FlightOffer `json:"offer"`
	Confidence    float64     `json:"confidence"`
	CarrierName   string      `json:"carrierName,omitempty"`
	AircraftNames []string    `json:"aircraftNames,omitempty"`
}
