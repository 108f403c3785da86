package llm

import (
	"fmt"
	"strings"

	"github.com/formsense/formsense/internal/model"
)

const (
	fieldSystemPrompt = "You are a web form field classifier for job application forms. You MUST respond with ONLY a valid JSON array. Do not include any explanatory text, markdown formatting, or commentary before or after the JSON. Start your response directly with [ and end with ]."

	questionSystemPrompt = "You are a job application question analyst. You MUST respond with ONLY a valid JSON object. Do not include any explanatory text, markdown formatting, or commentary before or after the JSON. Start your response directly with { and end with }."
)

// buildFieldPrompt creates the prompt for classifying a batch of fields.
// Fields are numbered from 1; the model echoes the number back so results
// can be merged onto the original order.
func buildFieldPrompt(fields []model.FieldDescriptor, pageCtx model.Context) string {
	var fieldList strings.Builder
	for i, f := range fields {
		fieldList.WriteString(fmt.Sprintf("%d. kind=%s", i+1, f.Kind))
		if f.Name != "" {
			fieldList.WriteString(fmt.Sprintf(" name=%q", f.Name))
		}
		if f.DomID != "" {
			fieldList.WriteString(fmt.Sprintf(" id=%q", f.DomID))
		}
		if f.Placeholder != "" {
			fieldList.WriteString(fmt.Sprintf(" placeholder=%q", f.Placeholder))
		}
		if f.Label != "" {
			fieldList.WriteString(fmt.Sprintf(" label=%q", f.Label))
		}
		if f.Required {
			fieldList.WriteString(" required")
		}
		if len(f.Options) > 0 {
			opts := make([]string, 0, len(f.Options))
			for _, o := range f.Options {
				opts = append(opts, o.Text)
			}
			fieldList.WriteString(fmt.Sprintf(" options=[%s]", strings.Join(opts, ", ")))
		}
		fieldList.WriteByte('\n')
	}

	purposes := make([]string, 0, len(model.AllPurposes()))
	for _, p := range model.AllPurposes() {
		purposes = append(purposes, string(p))
	}

	return fmt.Sprintf(`Classify each form field below into exactly one purpose from the closed list.

%s
Fields:
%s
Allowed purposes (use "unknown" when none fits):
%s, unknown

Instructions:
1. Classify every field by its attributes, not by guessing at page intent.
2. Respond with a JSON array, one object per field you can classify:
   [{"index": 1, "purpose": "firstName", "confidence": 0.95, "reasoning": "short justification"}]
3. "index" is the field number from the list above.
4. "confidence" is your own calibrated estimate between 0.0 and 1.0.
5. Omit fields you cannot classify rather than forcing a purpose.`,
		contextBlock(pageCtx),
		fieldList.String(),
		strings.Join(purposes, ", "))
}

// buildQuestionPrompt creates the prompt for analyzing a free-text
// question.
func buildQuestionPrompt(question string, pageCtx model.Context) string {
	return fmt.Sprintf(`Analyze this job application question and describe how a candidate should answer it.

%s
Question: %q

Respond with a JSON object in exactly this shape:
{
  "category": "whyInterested",
  "questionType": "motivation",
  "keyPoints": ["point to hit", "..."],
  "responseStructure": {"opening": "...", "body": "...", "closing": "..."},
  "advice": ["concrete tip", "..."],
  "suggestedLength": "short|medium|long",
  "confidence": 0.0
}

"category" must be one of: whyInterested, whyQualified, careerGoals, yearsExperience, desiredSalary, availableStartDate, additionalInfo, unknown.`,
		contextBlock(pageCtx),
		question)
}

// contextBlock renders the page/session context shared by both prompts,
// omitting whatever the caller did not supply.
func contextBlock(pageCtx model.Context) string {
	var b strings.Builder
	b.WriteString("Context:\n")
	if pageCtx.Platform != "" && pageCtx.Platform != model.PlatformUnknown {
		b.WriteString(fmt.Sprintf("- Platform: %s\n", pageCtx.Platform))
	}
	if pageCtx.Company != "" {
		b.WriteString(fmt.Sprintf("- Company: %s\n", pageCtx.Company))
	}
	if pageCtx.Position != "" {
		b.WriteString(fmt.Sprintf("- Position: %s\n", pageCtx.Position))
	}
	if p := pageCtx.Profile; p != nil {
		if p.Title != "" {
			b.WriteString(fmt.Sprintf("- Candidate title: %s\n", p.Title))
		}
		if p.Company != "" {
			b.WriteString(fmt.Sprintf("- Candidate company: %s\n", p.Company))
		}
		if p.Experience != "" {
			b.WriteString(fmt.Sprintf("- Candidate experience: %s\n", p.Experience))
		}
	}
	return b.String()
}
