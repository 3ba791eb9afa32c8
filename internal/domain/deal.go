package domain

// DealKind tags which domain pipeline produced a candidate. Ranking and
// deduplication only touch the shared fields, so they stay generic over kinds.
type DealKind string

const (
	DealKindHotel     DealKind = "hotel"
	DealKindCarRental DealKind = "car_rental"
)

// SearchResultItem is one raw result from the web-search collaborator.
type SearchResultItem struct {
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	Link     string `json:"link"`
	Position int    `json:"position"` // 1-based rank within the query's results
}

// BasePriceRecord is the authoritative, undiscounted price for one inventory
// item (a hotel property or a vehicle class) from the pricing collaborator.
type BasePriceRecord struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Rating float64 `json:"rating,omitempty"`
}

// DealCandidate is one discovered discount opportunity. Extraction creates it
// from a single SearchResultItem; the price matcher may enrich it with a
// BasePriceRecord; after ranking it is read-only.
//
// A zero DiscountPercent / EstimatedSavings means "not evidenced in the text",
// matching the omitempty wire shape.
type DealCandidate struct {
	Kind             DealKind `json:"kind"`
	Identity         string   `json:"identity"` // vendor or property name, "Various" when unknown
	DealType         string   `json:"dealType"`
	PromoCode        string   `json:"promoCode,omitempty"`
	DiscountPercent  int      `json:"discountPercent,omitempty"`
	EstimatedSavings float64  `json:"estimatedSavings,omitempty"`
	BasePrice        float64  `json:"basePrice,omitempty"`
	DiscountedPrice  float64  `json:"discountedPrice,omitempty"`
	Savings          float64  `json:"savings,omitempty"`
	Confidence       float64  `json:"confidence"`
	SourceLink       string   `json:"sourceLink,omitempty"`
	SourceQuery      string   `json:"sourceQuery,omitempty"`
}

// HasPromoCode reports whether a promo code was extracted for this candidate.
func (d DealCandidate) HasPromoCode() bool { return d.PromoCode != "" }

// QueryResult is the settled outcome of one outbound search query. A failed
// fetch yields an empty item set plus the error annotation; it never aborts
// sibling queries.
type QueryResult struct {
	Query string             `json:"query"`
	Items []SearchResultItem `json:"-"`
	Count int                `json:"results"`
	Error string             `json:"error,omitempty"`
}

// DealSummary holds aggregate statistics over the analyzed deals.
type DealSummary struct {
	TotalDeals             int     `json:"totalDeals"`
	AverageDiscountPercent float64 `json:"averageDiscountPercent"`
	TotalPotentialSavings  float64 `json:"totalPotentialSavings"`
}

// AnalysisResult is the final output of a deal analysis. BestDeal is nil iff
// AllDeals is empty; otherwise it equals the maximum element under the
// domain's ranking policy and also appears in AllDeals.
type AnalysisResult struct {
	BestDeal *DealCandidate  `json:"bestDeal"`
	AllDeals []DealCandidate `json:"allDeals"`
	Summary  DealSummary     `json:"summary"`
	Queries  []QueryResult   `json:"queries,omitempty"`
}
