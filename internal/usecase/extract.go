package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

// Pattern extractors are total functions over raw text: they never fail, and
// they return the zero value plus false when no pattern fires.

// Package-level compiled regex patterns for performance
var (
	// discountPatterns are tried in priority order; the first capture wins.
	discountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,3})\s*%\s*off`),
		regexp.MustCompile(`(?i)save\s+(?:up\s+to\s+)?(\d{1,3})\s*%`),
		regexp.MustCompile(`(?i)up\s+to\s+(\d{1,3})\s*%`),
		regexp.MustCompile(`(?i)(\d{1,3})\s*%\s*discount`),
	}

	// promoCodePatterns capture a short alphanumeric token after a marker or
	// inside double quotes.
	promoCodePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bcode[:\s]\s*"?([A-Za-z0-9]{3,20})"?`),
		regexp.MustCompile(`(?i)\bpromo[:\s]\s*"?([A-Za-z0-9]{3,20})"?`),
		regexp.MustCompile(`"([A-Z0-9]{3,20})"`),
	}

	savingsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)save\s+\$\s*(\d+(?:\.\d{1,2})?)`),
		regexp.MustCompile(`(?i)\$\s*(\d+(?:\.\d{1,2})?)\s+off`),
	}
)

// ExtractDiscountPercent finds the first "amount off" percentage in text.
// Captures outside [0,100] are treated as no-match.
func ExtractDiscountPercent(text string) (int, bool) {
	for _, re := range discountPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		pct, err := strconv.Atoi(m[1])
		if err != nil || pct < 0 || pct > 100 {
			continue
		}
		return pct, true
	}
	return 0, false
}

// ExtractPromoCode finds a promo code following a "code:"/"promo:" marker or
// enclosed in double quotes. Pure-lowercase common words are rejected so
// phrases like "promo deals here" do not produce a code.
func ExtractPromoCode(text string) (string, bool) {
	for _, re := range promoCodePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.Trim(m[1], `.,;:!?'"`)
		if candidate == "" {
			continue
		}
		lower := strings.ToLower(candidate)
		// A real code has at least one uppercase letter or digit.
		if candidate == lower && !strings.ContainsAny(candidate, "0123456789") {
			continue
		}
		if promoStopWords[lower] {
			continue
		}
		return candidate, true
	}
	return "", false
}

// EstimateSavings finds a dollar amount following "save $" or preceding "off".
func EstimateSavings(text string) (float64, bool) {
	for _, re := range savingsPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amount, err := strconv.ParseFloat(m[1], 64)
		if err != nil || amount < 0 {
			continue
		}
		return amount, true
	}
	return 0, false
}

// ExtractDealType classifies text into the deal-type taxonomy. Categories are
// checked in precedence order (see dealTypeCategories); the general label is
// the fallthrough.
func ExtractDealType(text string) string {
	lower := strings.ToLower(text)
	for _, cat := range dealTypeCategories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Label
			}
		}
	}
	return dealTypeGeneral
}

// IdentifyCompany scans text against the known vendor roster. First hit wins;
// unknown vendors map to "Various".
func IdentifyCompany(text string) string {
	lower := strings.ToLower(text)
	for _, vendor := range vendorRoster {
		if strings.Contains(lower, strings.ToLower(vendor)) {
			return vendor
		}
	}
	return identityVarious
}
