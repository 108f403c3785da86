package template

import "github.com/formsense/formsense/internal/model"

// defaultTemplates returns the built-in answer guides.
func defaultTemplates() []Template {
	return []Template{
		{
			Key:          "why-interested",
			Category:     model.PurposeWhyInterested,
			Keywords:     []string{"why", "interested", "apply", "join", "excited", "attract"},
			QuestionType: "motivation",
			KeyPoints: []string{
				"Name something specific about the company or product",
				"Connect it to your own experience or goals",
				"Show you understand what the role actually involves",
			},
			Structure: model.ResponseStructure{
				Opening: "Lead with the specific thing that drew you to the company",
				Body:    "Tie that interest to your background with one concrete example",
				Closing: "State what you hope to contribute in the role",
			},
			Advice: []string{
				"Avoid generic praise; name a product, value, or decision",
				"Keep it about fit, not about what the company can do for you",
			},
			SuggestedLength: model.LengthMedium,
		},
		{
			Key:          "why-qualified",
			Category:     model.PurposeWhyQualified,
			Keywords:     []string{"why", "qualified", "fit", "hire", "strengths", "makes"},
			QuestionType: "qualification",
			KeyPoints: []string{
				"Match two or three requirements from the posting to your record",
				"Quantify impact where possible",
			},
			Structure: model.ResponseStructure{
				Opening: "Summarize your strongest matching qualification",
				Body:    "Back each claim with a specific result",
				Closing: "Acknowledge growth areas briefly if relevant",
			},
			Advice: []string{
				"Mirror the posting's language for the top requirements",
				"Prefer evidence over adjectives",
			},
			SuggestedLength: model.LengthMedium,
		},
		{
			Key:          "career-goals",
			Category:     model.PurposeCareerGoals,
			Keywords:     []string{"career", "goals", "yourself", "years", "future", "aspirations"},
			QuestionType: "goals",
			KeyPoints: []string{
				"Describe a realistic trajectory the role supports",
				"Show ambition without implying you will leave quickly",
			},
			Structure: model.ResponseStructure{
				Opening: "State your near-term focus",
				Body:    "Explain how this role builds toward your longer arc",
				Closing: "Anchor the goals to the company's direction",
			},
			Advice: []string{
				"Stay concrete about the next two to three years",
			},
			SuggestedLength: model.LengthShort,
		},
		{
			Key:          "salary",
			Category:     model.PurposeDesiredSalary,
			Keywords:     []string{"salary", "compensation", "pay", "expectation", "range"},
			QuestionType: "compensation",
			KeyPoints: []string{
				"Give a researched range, not a single number",
				"Note flexibility for the right total package",
			},
			Structure: model.ResponseStructure{
				Opening: "Offer a range grounded in market data",
				Body:    "Mention the factors the range depends on",
				Closing: "Signal openness to discuss",
			},
			Advice: []string{
				"Research the role's market band before answering",
			},
			SuggestedLength: model.LengthShort,
		},
		{
			Key:          "start-date",
			Category:     model.PurposeAvailableStartDate,
			Keywords:     []string{"start", "available", "availability", "notice", "when"},
			QuestionType: "logistics",
			KeyPoints: []string{
				"Give a concrete date or notice period",
			},
			Structure: model.ResponseStructure{
				Opening: "State your availability directly",
				Body:    "Explain any constraint in one sentence",
				Closing: "Confirm flexibility if you have it",
			},
			Advice: []string{
				"Standard notice periods are expected; do not apologize for one",
			},
			SuggestedLength: model.LengthShort,
		},
		{
			Key:          "additional-info",
			Category:     model.PurposeAdditionalInfo,
			Keywords:     []string{"additional", "anything", "else", "other", "comments"},
			QuestionType: "open",
			KeyPoints: []string{
				"Add one thing the rest of the application could not carry",
				"Skip it entirely rather than padding",
			},
			Structure: model.ResponseStructure{
				Opening: "Name the single most relevant addition",
				Body:    "Give it one or two sentences of context",
				Closing: "Close without restating the application",
			},
			Advice: []string{
				"Brevity reads as confidence here",
			},
			SuggestedLength: model.LengthShort,
		},
	}
}
