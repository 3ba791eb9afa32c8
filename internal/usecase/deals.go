package usecase

import (
	"sort"

	"github.com/farescout/backend/internal/domain"
)

// CombineDealSources turns classified search results into deal candidates and
// merges each with its base-price record when one qualifies. Items missing
// both title and snippet are skipped; the rest of the batch proceeds.
func CombineDealSources(kind domain.DealKind, queryResults []domain.QueryResult, records []domain.BasePriceRecord) []domain.DealCandidate {
	var deals []domain.DealCandidate

	for _, qr := range queryResults {
		for _, item := range qr.Items {
			if item.Title == "" && item.Snippet == "" {
				continue
			}
			text := item.Title + " " + item.Snippet

			deal := domain.DealCandidate{
				Kind:        kind,
				Identity:    identityVarious,
				DealType:    ExtractDealType(text),
				SourceLink:  item.Link,
				SourceQuery: qr.Query,
			}
			if pct, ok := ExtractDiscountPercent(text); ok {
				deal.DiscountPercent = pct
			}
			if code, ok := ExtractPromoCode(text); ok {
				deal.PromoCode = code
			}
			if amount, ok := EstimateSavings(text); ok {
				deal.EstimatedSavings = amount
			}
			if kind == domain.DealKindCarRental {
				deal.Identity = IdentifyCompany(text)
			}

			mention := item.Title
			if kind == domain.DealKindCarRental {
				mention = text
			}
			if rec, ok := MatchBasePrice(mention, records); ok {
				if kind == domain.DealKindHotel {
					deal.Identity = rec.Name
				}
				attachBasePrice(&deal, rec)
			}

			deal.Confidence = ScoreTextResult(item, deal.PromoCode)
			deals = append(deals, deal)
		}
	}

	return deals
}

// attachBasePrice derives the discounted price and absolute savings from the
// authoritative base price. Savings never go negative, even on malformed
// discount evidence.
func attachBasePrice(deal *domain.DealCandidate, rec domain.BasePriceRecord) {
	deal.BasePrice = rec.Amount
	deal.DiscountedPrice = DiscountedPrice(rec.Amount, deal.DiscountPercent, deal.EstimatedSavings)
	deal.Savings = rec.Amount - deal.DiscountedPrice
	if deal.Savings < 0 {
		deal.Savings = 0
	}
}

// DiscountedPrice applies discount evidence to a base price: a known percent
// takes priority, then a known absolute amount, else the base price stands.
// The result is clamped to [0, base].
func DiscountedPrice(base float64, discountPercent int, estimatedSavings float64) float64 {
	price := base
	switch {
	case discountPercent > 0:
		pct := discountPercent
		if pct > 100 {
			pct = 100
		}
		price = base * (1 - float64(pct)/100)
	case estimatedSavings > 0:
		price = base - estimatedSavings
	}
	if price < 0 {
		price = 0
	}
	if price > base {
		price = base
	}
	return price
}

// DeduplicateDeals removes near-identical candidates. The identity key is
// (identity, promoCode), falling back to (identity, dealType) when no promo
// code was extracted. First-seen wins regardless of confidence.
func DeduplicateDeals(deals []domain.DealCandidate) []domain.DealCandidate {
	seen := make(map[string]bool, len(deals))
	out := make([]domain.DealCandidate, 0, len(deals))
	for _, d := range deals {
		key := d.Identity + "|" + d.PromoCode
		if d.PromoCode == "" {
			key = d.Identity + "|" + d.DealType
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}

// RankByConfidence orders deals by confidence descending, then discount
// percent descending. The sort is stable: full ties keep their original
// relative order. This is the car-rental selection policy.
func RankByConfidence(deals []domain.DealCandidate) []domain.DealCandidate {
	ranked := make([]domain.DealCandidate, len(deals))
	copy(ranked, deals)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].DiscountPercent > ranked[j].DiscountPercent
	})
	return ranked
}

// RankBySavings orders deals by absolute savings descending, then confidence
// descending. Hotel selection ranks by savings; car rental ranks by
// confidence.
func RankBySavings(deals []domain.DealCandidate) []domain.DealCandidate {
	ranked := make([]domain.DealCandidate, len(deals))
	copy(ranked, deals)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Savings != ranked[j].Savings {
			return ranked[i].Savings > ranked[j].Savings
		}
		return ranked[i].Confidence > ranked[j].Confidence
	})
	return ranked
}

// Summarize computes aggregate statistics over a deal set. Deals without an
// extracted discount percent count as 0 in the average.
func Summarize(deals []domain.DealCandidate) domain.DealSummary {
	summary := domain.DealSummary{TotalDeals: len(deals)}
	if len(deals) == 0 {
		return summary
	}

	totalPct := 0
	for _, d := range deals {
		totalPct += d.DiscountPercent
		summary.TotalPotentialSavings += d.Savings
	}
	summary.AverageDiscountPercent = float64(totalPct) / float64(len(deals))
	return summary
}

// AnalyzeDeals assembles the final result for an already-ranked deal list.
// BestDeal is nil iff the list is empty; otherwise it is the head of the
// ranked order and also present in AllDeals.
func AnalyzeDeals(ranked []domain.DealCandidate) *domain.AnalysisResult {
	result := &domain.AnalysisResult{
		AllDeals: ranked,
		Summary:  Summarize(ranked),
	}
	if len(ranked) > 0 {
		best := ranked[0]
		result.BestDeal = &best
	}
	return result
}
