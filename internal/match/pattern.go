// Package match provides regex pattern matching for field and question
// classification, with a fuzzy keyword-overlap fallback for questions.
package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/formsense/formsense/internal/model"
)

// patternEntry is one ordered purpose → expressions row. Entry order and
// expression order are both significant for reproducibility.
type patternEntry struct {
	purpose model.Purpose
	exprs   []string
}

type compiledEntry struct {
	purpose model.Purpose
	exprs   []string
	regexes []*regexp.Regexp
}

// Matcher applies ordered regex tables to field text and question text.
type Matcher struct {
	fields    []compiledEntry
	questions []compiledEntry
}

// NewMatcher creates a matcher with the built-in pattern tables.
func NewMatcher() (*Matcher, error) {
	fields, err := compileEntries(fieldPatterns())
	if err != nil {
		return nil, fmt.Errorf("failed to compile field patterns: %w", err)
	}

	questions, err := compileEntries(questionPatterns())
	if err != nil {
		return nil, fmt.Errorf("failed to compile question patterns: %w", err)
	}

	return &Matcher{fields: fields, questions: questions}, nil
}

func compileEntries(entries []patternEntry) ([]compiledEntry, error) {
	compiled := make([]compiledEntry, 0, len(entries))
	for _, entry := range entries {
		ce := compiledEntry{
			purpose: entry.purpose,
			exprs:   entry.exprs,
			regexes: make([]*regexp.Regexp, 0, len(entry.exprs)),
		}
		for _, expr := range entry.exprs {
			re, err := regexp.Compile("(?i)" + expr)
			if err != nil {
				return nil, fmt.Errorf("pattern %q for %s: %w", expr, entry.purpose, err)
			}
			ce.regexes = append(ce.regexes, re)
		}
		compiled = append(compiled, ce)
	}
	return compiled, nil
}

// MatchField matches the field's concatenated attribute text against the
// field pattern table. The first purpose with any matching expression wins.
func (m *Matcher) MatchField(field model.FieldDescriptor) (model.Purpose, bool) {
	return firstMatch(m.fields, field.SearchText())
}

// MatchQuestion matches free question text against the question category
// table.
func (m *Matcher) MatchQuestion(text string) (model.Purpose, bool) {
	return firstMatch(m.questions, strings.ToLower(text))
}

func firstMatch(entries []compiledEntry, text string) (model.Purpose, bool) {
	if text == "" {
		return "", false
	}
	for _, entry := range entries {
		for _, re := range entry.regexes {
			if re.MatchString(text) {
				return entry.purpose, true
			}
		}
	}
	return "", false
}
