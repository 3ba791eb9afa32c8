package usecase

import (
	"regexp"
	"strings"

	"github.com/farescout/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	namePunctuationRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	nameSpacesRegex      = regexp.MustCompile(`\s+`)
)

// minSharedTokens is how many normalized tokens a mention and a record must
// share to qualify without a full substring match. Two tokens covers
// multi-word fragments like "all star movies" without letting a single
// generic word ("resort") qualify.
const minSharedTokens = 2

// MatchBasePrice associates a free-text deal mention with an authoritative
// BasePriceRecord. Both names are normalized (lowercase, punctuation
// stripped); a record qualifies when either normalized name contains the
// other, or they share a significant token overlap. The first qualifying
// record wins; ties resolve by input order, not best fit.
func MatchBasePrice(mention string, records []domain.BasePriceRecord) (domain.BasePriceRecord, bool) {
	normMention := normalizeName(mention)
	if normMention == "" {
		return domain.BasePriceRecord{}, false
	}
	mentionTokens := nameTokens(normMention)

	for _, rec := range records {
		normRecord := normalizeName(rec.Name)
		if normRecord == "" {
			continue
		}
		if strings.Contains(normRecord, normMention) || strings.Contains(normMention, normRecord) {
			return rec, true
		}
		if sharedTokenCount(mentionTokens, nameTokens(normRecord)) >= minSharedTokens {
			return rec, true
		}
	}
	return domain.BasePriceRecord{}, false
}

// normalizeName lowercases a name and strips punctuation, collapsing the
// result to single-spaced tokens.
func normalizeName(s string) string {
	result := strings.ToLower(s)
	result = namePunctuationRegex.ReplaceAllString(result, " ")
	result = nameSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// nameTokens splits a normalized name, dropping tokens too short to be
// meaningful ("s" left over from possessives, stray "a").
func nameTokens(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) >= 3 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func sharedTokenCount(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	count := 0
	seen := make(map[string]bool)
	for _, t := range b {
		if set[t] && !seen[t] {
			count++
			seen[t] = true
		}
	}
	return count
}
