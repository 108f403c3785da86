package match

import (
	"strings"

	"github.com/formsense/formsense/internal/model"
)

const (
	// fuzzyFloor is the minimum similarity for a fuzzy match to count.
	fuzzyFloor = 0.3
	// fuzzyScale discounts fuzzy confidence relative to an exact pattern
	// match.
	fuzzyScale = 0.7
)

// FuzzyMatchQuestion scores question text against keywords extracted from
// the question pattern tables and returns the best category above the
// similarity floor. Reported confidence is the raw similarity scaled down;
// a fuzzy hit is never trusted as much as an exact pattern hit.
func (m *Matcher) FuzzyMatchQuestion(text string) (model.Purpose, float64, bool) {
	tokens := qualifyingTokens(text)
	if len(tokens) == 0 {
		return "", 0, false
	}

	var bestPurpose model.Purpose
	var bestSimilarity float64

	for _, entry := range m.questions {
		keywords := keywordsFromExprs(entry.exprs)
		if len(keywords) == 0 {
			continue
		}

		overlap := 0
		for _, token := range tokens {
			if overlapsAny(token, keywords) {
				overlap++
			}
		}

		similarity := float64(overlap) / float64(len(tokens))
		if similarity > fuzzyFloor && similarity > bestSimilarity {
			bestPurpose = entry.purpose
			bestSimilarity = similarity
		}
	}

	if bestPurpose == "" {
		return "", 0, false
	}

	return bestPurpose, bestSimilarity * fuzzyScale, true
}

// qualifyingTokens splits text into lower-cased tokens longer than two
// characters.
func qualifyingTokens(text string) []string {
	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		if len(t) > 2 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// keywordsFromExprs pulls the plain words out of regex expressions,
// discarding regex syntax and fragments of three characters or fewer.
func keywordsFromExprs(exprs []string) []string {
	var keywords []string
	for _, expr := range exprs {
		words := strings.FieldsFunc(expr, func(r rune) bool {
			return !(r >= 'a' && r <= 'z')
		})
		for _, w := range words {
			if len(w) > 3 {
				keywords = append(keywords, w)
			}
		}
	}
	return keywords
}

func overlapsAny(token string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(token, kw) || strings.Contains(kw, token) {
			return true
		}
	}
	return false
}
