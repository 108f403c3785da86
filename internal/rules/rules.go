// Package rules implements per-platform declarative matching rules for
// form fields on known ATS platforms.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/formsense/formsense/internal/model"
)

// Attribute names a FieldDescriptor attribute a predicate inspects.
type Attribute string

// Attribute constants.
const (
	AttrName        Attribute = "name"
	AttrID          Attribute = "id"
	AttrPlaceholder Attribute = "placeholder"
	AttrLabel       Attribute = "label"
	AttrKind        Attribute = "kind"
)

// Op is the comparison a predicate applies.
type Op string

// Operator constants.
const (
	OpContains Op = "contains"
	OpEquals   Op = "equals"
	OpPrefix   Op = "prefix"
	OpRegex    Op = "regex"
)

// Predicate is one attribute/operator/value check. Matching is
// case-insensitive across all operators.
type Predicate struct {
	Attr  Attribute
	Op    Op
	Value string
}

// Rule maps a purpose to the predicates that identify it. A rule matches if
// any one of its predicates matches.
type Rule struct {
	Purpose    model.Purpose
	Predicates []Predicate
}

// RuleSet evaluates platform rule tables against field descriptors. Rule
// order within a platform and predicate order within a rule are both
// significant: the first match wins.
type RuleSet struct {
	platforms map[model.PlatformType][]Rule
	compiled  map[string]*regexp.Regexp
}

// New builds a rule set from the given platform tables, compiling every
// regex predicate up front.
func New(platforms map[model.PlatformType][]Rule) (*RuleSet, error) {
	compiled := make(map[string]*regexp.Regexp)
	for platform, table := range platforms {
		for _, rule := range table {
			for _, p := range rule.Predicates {
				if p.Op != OpRegex {
					continue
				}
				expr := p.Value
				if !strings.HasPrefix(expr, "(?i)") {
					expr = "(?i)" + expr
				}
				re, err := regexp.Compile(expr)
				if err != nil {
					return nil, fmt.Errorf("failed to compile rule for %s/%s: %w", platform, rule.Purpose, err)
				}
				compiled[p.Value] = re
			}
		}
	}

	return &RuleSet{
		platforms: platforms,
		compiled:  compiled,
	}, nil
}

// NewDefault builds a rule set with the built-in platform tables.
func NewDefault() (*RuleSet, error) {
	return New(defaultPlatformRules())
}

// Match returns the purpose of the first rule whose predicate list matches
// the field, or false when the platform has no table or nothing matches.
func (rs *RuleSet) Match(field model.FieldDescriptor, platform model.PlatformType) (model.Purpose, bool) {
	table, ok := rs.platforms[platform]
	if !ok {
		return "", false
	}

	for _, rule := range table {
		for _, p := range rule.Predicates {
			if rs.matches(p, field) {
				return rule.Purpose, true
			}
		}
	}

	return "", false
}

// Platforms returns the platforms the rule set has tables for.
func (rs *RuleSet) Platforms() []model.PlatformType {
	platforms := make([]model.PlatformType, 0, len(rs.platforms))
	for p := range rs.platforms {
		platforms = append(platforms, p)
	}
	return platforms
}

func (rs *RuleSet) matches(p Predicate, field model.FieldDescriptor) bool {
	value := strings.ToLower(rs.attribute(p.Attr, field))
	target := strings.ToLower(p.Value)

	switch p.Op {
	case OpContains:
		return value != "" && strings.Contains(value, target)
	case OpEquals:
		return value == target
	case OpPrefix:
		return value != "" && strings.HasPrefix(value, target)
	case OpRegex:
		re, ok := rs.compiled[p.Value]
		if !ok {
			return false
		}
		return value != "" && re.MatchString(value)
	default:
		return false
	}
}

func (rs *RuleSet) attribute(attr Attribute, field model.FieldDescriptor) string {
	switch attr {
	case AttrName:
		return field.Name
	case AttrID:
		return field.DomID
	case AttrPlaceholder:
		return field.Placeholder
	case AttrLabel:
		return field.Label
	case AttrKind:
		return string(field.Kind)
	default:
		return ""
	}
}
