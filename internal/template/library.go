// Package template holds the built-in answer-template library consulted as
// the question path's last local fallback before remote inference.
package template

import (
	"strings"

	"github.com/formsense/formsense/internal/model"
)

// matchThreshold is the keyword overlap a question must reach before a
// template counts as matching.
const matchThreshold = 0.3

// Template is one canned answer guide for a question category.
type Template struct {
	Key             string
	Category        model.Purpose
	Keywords        []string
	QuestionType    string
	KeyPoints       []string
	Structure       model.ResponseStructure
	Advice          []string
	SuggestedLength model.AnswerLength
}

// Library is an in-memory template collection with keyword matching.
type Library struct {
	templates []Template
}

// NewLibrary creates a library with the built-in templates.
func NewLibrary() *Library {
	return &Library{templates: defaultTemplates()}
}

// FindMatchingTemplate returns an analysis for the best keyword-matching
// template, if any clears the threshold.
func (l *Library) FindMatchingTemplate(question string) (model.QuestionAnalysis, bool) {
	lower := strings.ToLower(question)

	var best *Template
	var bestScore float64

	for i := range l.templates {
		t := &l.templates[i]
		matched := 0
		for _, kw := range t.Keywords {
			if strings.Contains(lower, kw) {
				matched++
			}
		}
		if len(t.Keywords) == 0 {
			continue
		}
		score := float64(matched) / float64(len(t.Keywords))
		if score > matchThreshold && score > bestScore {
			best = t
			bestScore = score
		}
	}

	if best == nil {
		return model.QuestionAnalysis{}, false
	}

	analysis := best.analysis()
	analysis.Confidence = bestScore
	return analysis, true
}

// ForCategory returns the canned analysis for a category the library has a
// template for.
func (l *Library) ForCategory(category model.Purpose) (model.QuestionAnalysis, bool) {
	for i := range l.templates {
		if l.templates[i].Category == category {
			return l.templates[i].analysis(), true
		}
	}
	return model.QuestionAnalysis{}, false
}

func (t *Template) analysis() model.QuestionAnalysis {
	return model.QuestionAnalysis{
		Category:          t.Category,
		QuestionType:      t.QuestionType,
		KeyPoints:         t.KeyPoints,
		ResponseStructure: t.Structure,
		Advice:            t.Advice,
		SuggestedLength:   t.SuggestedLength,
		Source:            model.SourceTemplateFallback,
	}
}
