package model

// AnalysisSource indicates where a question analysis came from.
type AnalysisSource string

// Analysis source constants.
const (
	SourceLLM              AnalysisSource = "llm"
	SourceTemplateFallback AnalysisSource = "template_fallback"
	SourceFallback         AnalysisSource = "fallback"
	SourceError            AnalysisSource = "error"
)

// AnswerLength is the suggested length of a drafted answer.
type AnswerLength string

// Answer length constants.
const (
	LengthShort  AnswerLength = "short"
	LengthMedium AnswerLength = "medium"
	LengthLong   AnswerLength = "long"
)

// ResponseStructure sketches how an answer to a question should be shaped.
type ResponseStructure struct {
	Opening string `json:"opening"`
	Body    string `json:"body"`
	Closing string `json:"closing"`
}

// QuestionAnalysis is the output of the free-text question path.
type QuestionAnalysis struct {
	Category          Purpose           `json:"category"`
	QuestionType      string            `json:"questionType"`
	KeyPoints         []string          `json:"keyPoints"`
	ResponseStructure ResponseStructure `json:"responseStructure"`
	Advice            []string          `json:"advice"`
	SuggestedLength   AnswerLength      `json:"suggestedLength"`
	Source            AnalysisSource    `json:"source"`
	Confidence        float64           `json:"confidence"`
}
