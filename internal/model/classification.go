package model

// Method indicates which pipeline stage resolved a field.
type Method string

// Classification method constants, ordered from most to least certain.
const (
	MethodATSSpecific Method = "ats-specific"
	MethodHeuristic   Method = "heuristic"
	MethodPattern     Method = "pattern"
	MethodLLM         Method = "llm"
	MethodFallback    Method = "fallback"
)

// Confidence ceilings per method, applied consistently across the pipeline.
const (
	ConfidenceATSSpecific   = 0.9
	ConfidenceHeuristicCap  = 0.8
	ConfidencePattern       = 0.7
	ConfidenceFallbackFloor = 0.3
)

// ClassificationResult is the per-field output of the pipeline.
type ClassificationResult struct {
	Purpose    Purpose `json:"purpose"`
	Method     Method  `json:"method"`
	Reasoning  string  `json:"reasoning,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Unresolved reports whether the result still needs a later, more expensive
// stage.
func (r ClassificationResult) Unresolved() bool {
	return r.Purpose == "" || r.Purpose == PurposeUnknown
}
