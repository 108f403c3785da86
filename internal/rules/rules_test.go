package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsense/formsense/internal/model"
)

func TestRuleSetMatchGreenhouse(t *testing.T) {
	rs, err := NewDefault()
	require.NoError(t, err)

	tests := []struct {
		name    string
		field   model.FieldDescriptor
		want    model.Purpose
		matched bool
	}{
		{
			name:    "email by field name",
			field:   model.FieldDescriptor{Kind: model.KindEmail, Name: "email"},
			want:    model.PurposeEmail,
			matched: true,
		},
		{
			name:    "first name by dom id",
			field:   model.FieldDescriptor{Kind: model.KindText, DomID: "first_name"},
			want:    model.PurposeFirstName,
			matched: true,
		},
		{
			name:    "case insensitive equals",
			field:   model.FieldDescriptor{Kind: model.KindText, Name: "First_Name"},
			want:    model.PurposeFirstName,
			matched: true,
		},
		{
			name:    "resume upload",
			field:   model.FieldDescriptor{Kind: model.KindFile, Name: "resume"},
			want:    model.PurposeResumeUpload,
			matched: true,
		},
		{
			name:    "custom question regex",
			field:   model.FieldDescriptor{Kind: model.KindTextarea, Name: "question_12_why_interested"},
			want:    model.PurposeWhyInterested,
			matched: true,
		},
		{
			name:    "company contains",
			field:   model.FieldDescriptor{Kind: model.KindText, Name: "current_company_name"},
			want:    model.PurposeCurrentCompany,
			matched: true,
		},
		{
			name:    "equals does not match superstring",
			field:   model.FieldDescriptor{Kind: model.KindText, Name: "email_confirmation"},
			matched: false,
		},
		{
			name:    "unrelated field",
			field:   model.FieldDescriptor{Kind: model.KindText, Name: "middle_initial"},
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purpose, ok := rs.Match(tt.field, model.PlatformGreenhouse)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.want, purpose)
			}
		})
	}
}

func TestRuleSetMatchOtherPlatforms(t *testing.T) {
	rs, err := NewDefault()
	require.NoError(t, err)

	tests := []struct {
		name     string
		platform model.PlatformType
		field    model.FieldDescriptor
		want     model.Purpose
	}{
		{
			name:     "lever full name",
			platform: model.PlatformLever,
			field:    model.FieldDescriptor{Kind: model.KindText, Name: "name"},
			want:     model.PurposeFullName,
		},
		{
			name:     "workday automation id",
			platform: model.PlatformWorkday,
			field:    model.FieldDescriptor{Kind: model.KindText, DomID: "input-legalNameSection_firstName"},
			want:     model.PurposeFirstName,
		},
		{
			name:     "icims numbered field",
			platform: model.PlatformICIMS,
			field:    model.FieldDescriptor{Kind: model.KindEmail, DomID: "Email3"},
			want:     model.PurposeEmail,
		},
		{
			name:     "taleo salary",
			platform: model.PlatformTaleo,
			field:    model.FieldDescriptor{Kind: model.KindText, Name: "requisition_expectedSalary"},
			want:     model.PurposeDesiredSalary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purpose, ok := rs.Match(tt.field, tt.platform)
			assert.True(t, ok)
			assert.Equal(t, tt.want, purpose)
		})
	}
}

func TestRuleSetNoTableForPlatform(t *testing.T) {
	rs, err := NewDefault()
	require.NoError(t, err)

	field := model.FieldDescriptor{Kind: model.KindEmail, Name: "email"}

	_, ok := rs.Match(field, model.PlatformGeneric)
	assert.False(t, ok, "generic pages have no rule table")

	_, ok = rs.Match(field, model.PlatformUnknown)
	assert.False(t, ok)
}

func TestRuleSetFirstMatchWins(t *testing.T) {
	platforms := map[model.PlatformType][]Rule{
		model.PlatformGreenhouse: {
			{Purpose: model.PurposeFirstName, Predicates: []Predicate{
				{Attr: AttrName, Op: OpContains, Value: "name"},
			}},
			{Purpose: model.PurposeLastName, Predicates: []Predicate{
				{Attr: AttrName, Op: OpContains, Value: "name"},
			}},
		},
	}

	rs, err := New(platforms)
	require.NoError(t, err)

	purpose, ok := rs.Match(model.FieldDescriptor{Name: "name"}, model.PlatformGreenhouse)
	assert.True(t, ok)
	assert.Equal(t, model.PurposeFirstName, purpose)
}

func TestNewRejectsBadRegex(t *testing.T) {
	platforms := map[model.PlatformType][]Rule{
		model.PlatformGreenhouse: {
			{Purpose: model.PurposeEmail, Predicates: []Predicate{
				{Attr: AttrName, Op: OpRegex, Value: "(unclosed"},
			}},
		},
	}

	_, err := New(platforms)
	assert.Error(t, err)
}
