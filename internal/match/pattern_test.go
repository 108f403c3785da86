package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsense/formsense/internal/model"
)

func TestMatchField(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	tests := []struct {
		name    string
		field   model.FieldDescriptor
		want    model.Purpose
		matched bool
	}{
		{
			name:    "first name variants",
			field:   model.FieldDescriptor{Kind: model.KindText, Name: "applicant-first-name"},
			want:    model.PurposeFirstName,
			matched: true,
		},
		{
			name:    "surname",
			field:   model.FieldDescriptor{Kind: model.KindText, Label: "Surname"},
			want:    model.PurposeLastName,
			matched: true,
		},
		{
			name:    "email with hyphen",
			field:   model.FieldDescriptor{Kind: model.KindEmail, Placeholder: "E-Mail"},
			want:    model.PurposeEmail,
			matched: true,
		},
		{
			name:    "cover letter beats resume when both appear",
			field:   model.FieldDescriptor{Kind: model.KindFile, Label: "Cover letter (or add it to your resume)"},
			want:    model.PurposeCoverLetterUpload,
			matched: true,
		},
		{
			name:    "cv word boundary",
			field:   model.FieldDescriptor{Kind: model.KindFile, Label: "CV (PDF)"},
			want:    model.PurposeResumeUpload,
			matched: true,
		},
		{
			name:    "years of experience",
			field:   model.FieldDescriptor{Kind: model.KindNumber, Label: "Years of Experience"},
			want:    model.PurposeYearsExperience,
			matched: true,
		},
		{
			name:    "postal code",
			field:   model.FieldDescriptor{Kind: model.KindText, Name: "postal_code"},
			want:    model.PurposeZipCode,
			matched: true,
		},
		{
			name:    "current title",
			field:   model.FieldDescriptor{Kind: model.KindText, Label: "Current Title"},
			want:    model.PurposeCurrentTitle,
			matched: true,
		},
		{
			name:    "no match",
			field:   model.FieldDescriptor{Kind: model.KindText, Name: "gh_src_token"},
			matched: false,
		},
		{
			name:    "empty field",
			field:   model.FieldDescriptor{},
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purpose, ok := m.MatchField(tt.field)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.want, purpose)
			}
		})
	}
}

func TestMatchFieldSpecificBeforeGeneric(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	// "first name" would also satisfy a naive full-name pattern; the table
	// order keeps the specific purpose on top.
	purpose, ok := m.MatchField(model.FieldDescriptor{Label: "Your first name"})
	assert.True(t, ok)
	assert.Equal(t, model.PurposeFirstName, purpose)
}

func TestMatchQuestion(t *testing.T) {
	m, err := NewMatcher()
	require.NoError(t, err)

	tests := []struct {
		name     string
		question string
		want     model.Purpose
		matched  bool
	}{
		{
			name:     "why interested",
			question: "Why are you interested in this position?",
			want:     model.PurposeWhyInterested,
			matched:  true,
		},
		{
			name:     "what excites you",
			question: "What excites you about joining our team?",
			want:     model.PurposeWhyInterested,
			matched:  true,
		},
		{
			name:     "why hire you",
			question: "Why should we hire you for this role?",
			want:     model.PurposeWhyQualified,
			matched:  true,
		},
		{
			name:     "five years",
			question: "Where do you see yourself in 5 years?",
			want:     model.PurposeCareerGoals,
			matched:  true,
		},
		{
			name:     "salary expectations",
			question: "What are your salary expectations?",
			want:     model.PurposeDesiredSalary,
			matched:  true,
		},
		{
			name:     "notice period",
			question: "What is your notice period?",
			want:     model.PurposeAvailableStartDate,
			matched:  true,
		},
		{
			name:     "anything else",
			question: "Is there anything else you would like us to know?",
			want:     model.PurposeAdditionalInfo,
			matched:  true,
		},
		{
			name:     "unmatched question",
			question: "Describe a conflict you resolved with a coworker.",
			matched:  false,
		},
		{
			name:     "empty question",
			question: "",
			matched:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			purpose, ok := m.MatchQuestion(tt.question)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.want, purpose)
			}
		})
	}
}
