package usecase

// Keyword tables driving classification and extraction. They are data, not
// control flow: extending the taxonomy means appending entries here.

// dealKeywords mark a search result as deal-relevant (hotel domain). Matching
// is case-insensitive substring over title+snippet, so "%" and multi-word
// phrases work the same as plain words.
var dealKeywords = []string{
	"promo", "discount", "coupon", "corporate", "employee",
	"deal", "code", "save", "off", "%",
}

// rentalIntentKeywords mark a search result as car-rental-relevant even when
// no known vendor is named.
var rentalIntentKeywords = []string{
	"rental", "rent a car", "car hire",
}

// vendorRoster is the fixed set of known car-rental vendors. Order matters:
// identifyCompany returns the first hit.
var vendorRoster = []string{
	"Enterprise", "Hertz", "Budget", "Avis", "National",
	"Alamo", "Dollar", "Thrifty", "Sixt",
}

// vendorDomains are link hosts treated as authoritative vendor or travel
// booking sites for the confidence scorer.
var vendorDomains = []string{
	"enterprise.com", "hertz.com", "budget.com", "avis.com",
	"nationalcar.com", "alamo.com", "dollar.com", "thrifty.com", "sixt.com",
	"marriott.com", "hilton.com", "hyatt.com", "ihg.com",
	"expedia.com", "kayak.com", "booking.com", "priceline.com",
}

// dealTypeCategory maps a keyword family to its deal-type label.
type dealTypeCategory struct {
	Label    string
	Keywords []string
}

// dealTypeCategories is checked in order; the first matching family wins.
// Text often contains several families ("corporate promo code"), so the
// precedence here is load-bearing.
var dealTypeCategories = []dealTypeCategory{
	{Label: "Corporate Discount", Keywords: []string{"corporate", "business"}},
	{Label: "AAA Member Discount", Keywords: []string{"aaa", "auto club"}},
	{Label: "Military Discount", Keywords: []string{"military", "veteran"}},
	{Label: "Promo Code", Keywords: []string{"promo", "code", "coupon"}},
}

// dealTypeGeneral is the fallthrough label when no keyword family matches.
const dealTypeGeneral = "General Discount"

// identityVarious is the vendor identity when no roster entry matches.
const identityVarious = "Various"

// promoStopWords are lowercase tokens that look like codes to the regexes but
// are ordinary words; a captured candidate equal to one of these is rejected.
var promoStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "your": true,
	"save": true, "off": true, "deal": true, "deals": true, "code": true,
	"promo": true, "here": true, "now": true, "today": true, "online": true,
	"discount": true, "checkout": true, "booking": true, "available": true,
}
