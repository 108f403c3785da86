package llm

import (
	"context"
	"log/slog"

	"github.com/formsense/formsense/internal/model"
)

// DisabledInference stands in for the inference client when no provider is
// configured. Every call degrades immediately, so the local stages remain
// fully usable without credentials.
type DisabledInference struct {
	logger *slog.Logger
}

// NewDisabledInference creates the stand-in.
func NewDisabledInference(logger *slog.Logger) *DisabledInference {
	return &DisabledInference{logger: logger}
}

// ClassifyFields returns fallback annotations for the current results.
func (d *DisabledInference) ClassifyFields(_ context.Context, fields []model.FieldDescriptor, _ model.Context, current []model.ClassificationResult) []model.ClassificationResult {
	d.logger.Debug("inference disabled, returning fallback results",
		"field_count", len(fields))
	return fallbackFields(current)
}

// ClassifyQuestion returns the generic fallback analysis.
func (d *DisabledInference) ClassifyQuestion(_ context.Context, _ string, _ model.Context) model.QuestionAnalysis {
	d.logger.Debug("inference disabled, returning fallback analysis")
	return fallbackAnalysis(model.SourceFallback)
}
