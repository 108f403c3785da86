// Package heuristic scores form fields against weighted keyword
// dictionaries per purpose.
package heuristic

import (
	"strings"

	"github.com/formsense/formsense/internal/model"
)

const (
	// scoreThreshold is the minimum confidence for a purpose to qualify.
	scoreThreshold = 0.3
	// scoreCap bounds reported confidence; keyword heuristics are never
	// fully authoritative.
	scoreCap = 0.8
)

// profile holds the four predicate groups for one purpose. Every entry
// counts toward the purpose's maximum possible score, whether or not its
// group matched anything.
type profile struct {
	purpose      model.Purpose
	names        []string
	placeholders []string
	labels       []string
	kinds        []model.FieldKind
}

// Scorer scores fields against the built-in purpose profiles.
type Scorer struct {
	profiles []profile
}

// NewScorer creates a scorer with the default keyword dictionaries.
func NewScorer() *Scorer {
	return &Scorer{profiles: defaultProfiles()}
}

// Score returns the best-scoring purpose for the field, its confidence, and
// whether any purpose cleared the threshold. Ties break in profile
// declaration order: a later profile must strictly beat the current best.
func (s *Scorer) Score(field model.FieldDescriptor) (model.Purpose, float64, bool) {
	name := strings.ToLower(field.Name + " " + field.DomID)
	placeholder := strings.ToLower(field.Placeholder)
	label := strings.ToLower(field.Label)

	var bestPurpose model.Purpose
	var bestConfidence float64

	for _, p := range s.profiles {
		total := len(p.names) + len(p.placeholders) + len(p.labels) + len(p.kinds)
		if total == 0 {
			continue
		}

		matched := countSubstrings(name, p.names) +
			countSubstrings(placeholder, p.placeholders) +
			countSubstrings(label, p.labels)

		for _, kind := range p.kinds {
			if field.Kind == kind {
				matched++
			}
		}

		confidence := float64(matched) / float64(total)
		if confidence > scoreThreshold && confidence > bestConfidence {
			bestPurpose = p.purpose
			bestConfidence = confidence
		}
	}

	if bestPurpose == "" {
		return "", 0, false
	}

	if bestConfidence > scoreCap {
		bestConfidence = scoreCap
	}

	return bestPurpose, bestConfidence, true
}

func countSubstrings(text string, keywords []string) int {
	if text == "" {
		return 0
	}
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}
