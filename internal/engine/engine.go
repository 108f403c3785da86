// Package engine implements the classification orchestrator: the layered
// decision chain that resolves form fields and free-text questions with
// the cheapest possible strategy.
package engine

import (
	"context"
	"log/slog"

	"github.com/formsense/formsense/internal/heuristic"
	"github.com/formsense/formsense/internal/match"
	"github.com/formsense/formsense/internal/model"
	"github.com/formsense/formsense/internal/rules"
)

// Inferencer is the remote inference boundary. Implementations never
// return errors; they degrade internally.
type Inferencer interface {
	ClassifyFields(ctx context.Context, fields []model.FieldDescriptor, pageCtx model.Context, current []model.ClassificationResult) []model.ClassificationResult
	ClassifyQuestion(ctx context.Context, question string, pageCtx model.Context) model.QuestionAnalysis
}

// TemplateLibrary is the local answer-template collaborator consulted on
// the question path before inference.
type TemplateLibrary interface {
	// FindMatchingTemplate returns a ready analysis when the library holds
	// a template matching the question text.
	FindMatchingTemplate(question string) (model.QuestionAnalysis, bool)
	// ForCategory returns the canned analysis for a known category.
	ForCategory(category model.Purpose) (model.QuestionAnalysis, bool)
}

// Orchestrator composes the classification stages. Stages run strictly in
// order; a field resolved by a cheaper stage never reaches a later one.
type Orchestrator struct {
	rules     *rules.RuleSet
	scorer    *heuristic.Scorer
	matcher   *match.Matcher
	inference Inferencer
	templates TemplateLibrary
	logger    *slog.Logger
}

// New creates an orchestrator with the given collaborators. templates may
// be nil; the question path then skips the template stage.
func New(ruleSet *rules.RuleSet, scorer *heuristic.Scorer, matcher *match.Matcher, inference Inferencer, templates TemplateLibrary, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		rules:     ruleSet,
		scorer:    scorer,
		matcher:   matcher,
		inference: inference,
		templates: templates,
		logger:    logger,
	}
}

// ClassifyFields runs the field chain: platform rules, then heuristics,
// then patterns, with the leftovers batched into one guarded inference
// call. The result slice always matches the input cardinality.
func (o *Orchestrator) ClassifyFields(ctx context.Context, fields []model.FieldDescriptor, pageCtx model.Context) []model.ClassificationResult {
	if len(fields) == 0 {
		return nil
	}

	results := make([]model.ClassificationResult, len(fields))

	for i, field := range fields {
		if purpose, ok := o.rules.Match(field, pageCtx.Platform); ok {
			results[i] = model.ClassificationResult{
				Purpose:    purpose,
				Method:     model.MethodATSSpecific,
				Confidence: model.ConfidenceATSSpecific,
			}
			continue
		}

		if purpose, confidence, ok := o.scorer.Score(field); ok {
			results[i] = model.ClassificationResult{
				Purpose:    purpose,
				Method:     model.MethodHeuristic,
				Confidence: confidence,
			}
			continue
		}

		if purpose, ok := o.matcher.MatchField(field); ok {
			results[i] = model.ClassificationResult{
				Purpose:    purpose,
				Method:     model.MethodPattern,
				Confidence: model.ConfidencePattern,
			}
		}
	}

	var pendingIdx []int
	var pendingFields []model.FieldDescriptor
	for i, r := range results {
		if r.Unresolved() {
			pendingIdx = append(pendingIdx, i)
			pendingFields = append(pendingFields, fields[i])
		}
	}

	o.logger.Debug("local stages complete",
		"field_count", len(fields),
		"unresolved", len(pendingIdx))

	if len(pendingIdx) == 0 {
		return results
	}

	pendingCurrent := make([]model.ClassificationResult, len(pendingIdx))
	for j, i := range pendingIdx {
		pendingCurrent[j] = results[i]
	}

	inferred := o.inference.ClassifyFields(ctx, pendingFields, pageCtx, pendingCurrent)
	for j, i := range pendingIdx {
		if j < len(inferred) {
			results[i] = inferred[j]
		}
	}

	for i, r := range results {
		if r.Purpose == "" {
			results[i].Purpose = model.PurposeUnknown
			results[i].Method = model.MethodFallback
		}
	}

	return results
}

// AnalyzeQuestion runs the question chain: exact patterns, fuzzy keyword
// overlap, the template library, and finally guarded inference. The first
// stage that yields a result terminates the chain.
func (o *Orchestrator) AnalyzeQuestion(ctx context.Context, question string, pageCtx model.Context) model.QuestionAnalysis {
	if category, ok := o.matcher.MatchQuestion(question); ok {
		o.logger.Debug("question matched by pattern", "category", category)
		return o.templateAnalysis(category, model.ConfidencePattern)
	}

	if category, confidence, ok := o.matcher.FuzzyMatchQuestion(question); ok {
		o.logger.Debug("question matched by fuzzy overlap",
			"category", category,
			"confidence", confidence)
		return o.templateAnalysis(category, confidence)
	}

	if o.templates != nil {
		if analysis, ok := o.templates.FindMatchingTemplate(question); ok {
			o.logger.Debug("question matched by template library",
				"category", analysis.Category)
			return analysis
		}
	}

	return o.inference.ClassifyQuestion(ctx, question, pageCtx)
}

// templateAnalysis builds the analysis for a locally matched category,
// pulling the canned template when one exists.
func (o *Orchestrator) templateAnalysis(category model.Purpose, confidence float64) model.QuestionAnalysis {
	if o.templates != nil {
		if analysis, ok := o.templates.ForCategory(category); ok {
			analysis.Confidence = confidence
			return analysis
		}
	}

	return model.QuestionAnalysis{
		Category:        category,
		QuestionType:    string(category),
		SuggestedLength: model.LengthMedium,
		Source:          model.SourceTemplateFallback,
		Confidence:      confidence,
	}
}
