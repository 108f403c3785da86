package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/formsense/formsense/internal/cache"
	"github.com/formsense/formsense/internal/common"
	"github.com/formsense/formsense/internal/model"
)

// Default generation parameters. Classification wants determinism, so the
// temperature stays low and the output budget tight.
const (
	defaultTemperature = 0.2
	defaultMaxTokens   = 1000
)

// InferenceClient classifies fields and analyzes questions via a remote
// provider, guarded by the response cache and the rate limiter. Its methods
// never return errors: any denial or failure degrades to fallback output.
type InferenceClient struct {
	client        Client
	limiter       *rateLimiter
	fieldCache    *cache.Cache[[]model.ClassificationResult]
	questionCache *cache.Cache[model.QuestionAnalysis]
	logger        *slog.Logger
	retryOpts     common.RetryOptions
	temperature   float64
	maxTokens     int
}

// NewInferenceClient creates an inference client from the configuration.
func NewInferenceClient(cfg Config, logger *slog.Logger) (*InferenceClient, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return newInferenceClient(client, cfg, logger), nil
}

// newInferenceClient wires an inference client around an existing provider
// client. Tests use it to inject fakes.
func newInferenceClient(client Client, cfg Config, logger *slog.Logger) *InferenceClient {
	retryOpts := common.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 3
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = time.Second
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	return &InferenceClient{
		client:        client,
		limiter:       newRateLimiter(cfg.PerMinuteLimit, cfg.DailyLimit),
		fieldCache:    cache.New[[]model.ClassificationResult](cfg.CacheTTL, cfg.CacheMaxSize),
		questionCache: cache.New[model.QuestionAnalysis](cfg.CacheTTL, cfg.CacheMaxSize),
		logger:        logger,
		retryOpts:     retryOpts,
		temperature:   temperature,
		maxTokens:     maxTokens,
	}
}

// fieldResult is one element of the structured output the model returns
// for a field batch. Index is 1-based, matching the prompt numbering.
type fieldResult struct {
	Purpose    string  `json:"purpose"`
	Reasoning  string  `json:"reasoning"`
	Index      int     `json:"index"`
	Confidence float64 `json:"confidence"`
}

// ClassifyFields classifies a batch of fields, merging model output onto
// the caller's current best results. The returned slice always has the
// same cardinality as fields; on any denial or failure the current results
// come back with fallback annotations instead of an error.
func (ic *InferenceClient) ClassifyFields(ctx context.Context, fields []model.FieldDescriptor, pageCtx model.Context, current []model.ClassificationResult) []model.ClassificationResult {
	if len(fields) == 0 {
		return nil
	}

	key := cache.FingerprintFields(fields, pageCtx)
	if cached, found := ic.fieldCache.Get(key); found {
		ic.logger.Debug("field classification cache hit",
			"key", key,
			"field_count", len(fields))
		return cached
	}

	if !ic.limiter.reserve() {
		ic.logger.Info("inference rate limited, falling back",
			"field_count", len(fields))
		return fallbackFields(current)
	}

	content, err := ic.complete(ctx, CompletionRequest{
		System:      fieldSystemPrompt,
		Prompt:      buildFieldPrompt(fields, pageCtx),
		Temperature: ic.temperature,
		MaxTokens:   ic.maxTokens,
	})
	if err != nil {
		ic.limiter.release()
		common.LogError(err, "field inference failed, falling back", common.Fields{
			"field_count": len(fields),
		})
		return fallbackFields(current)
	}

	raw, err := extractJSONArray(content)
	if err != nil {
		ic.limiter.release()
		common.LogError(err, "field inference returned no parseable output", common.Fields{
			"field_count": len(fields),
		})
		return fallbackFields(current)
	}

	var parsed []fieldResult
	if err := json.Unmarshal(raw, &parsed); err != nil {
		ic.limiter.release()
		common.LogError(&ParseError{Msg: err.Error()}, "field inference output failed to decode", nil)
		return fallbackFields(current)
	}

	results := mergeFieldResults(fields, current, parsed)

	ic.limiter.commit()
	ic.fieldCache.Put(key, results)

	ic.logger.Info("fields classified by inference",
		"field_count", len(fields),
		"resolved", countResolved(results))

	return results
}

// ClassifyQuestion analyzes a free-text question. It never returns an
// error: denials and failures produce a generic analysis annotated with
// its degraded source.
func (ic *InferenceClient) ClassifyQuestion(ctx context.Context, question string, pageCtx model.Context) model.QuestionAnalysis {
	key := cache.FingerprintQuestion(question, pageCtx)
	if cached, found := ic.questionCache.Get(key); found {
		ic.logger.Debug("question analysis cache hit", "key", key)
		return cached
	}

	if !ic.limiter.reserve() {
		ic.logger.Info("inference rate limited, returning fallback analysis")
		return fallbackAnalysis(model.SourceFallback)
	}

	content, err := ic.complete(ctx, CompletionRequest{
		System:      questionSystemPrompt,
		Prompt:      buildQuestionPrompt(question, pageCtx),
		Temperature: ic.temperature,
		MaxTokens:   ic.maxTokens,
	})
	if err != nil {
		ic.limiter.release()
		common.LogError(err, "question inference failed, returning fallback analysis", nil)
		return fallbackAnalysis(model.SourceError)
	}

	raw, err := extractJSONObject(content)
	if err != nil {
		ic.limiter.release()
		common.LogError(err, "question inference returned no parseable output", nil)
		return fallbackAnalysis(model.SourceError)
	}

	var analysis model.QuestionAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		ic.limiter.release()
		common.LogError(&ParseError{Msg: err.Error()}, "question inference output failed to decode", nil)
		return fallbackAnalysis(model.SourceError)
	}

	analysis.Source = model.SourceLLM
	analysis.Confidence = clamp01(analysis.Confidence)
	if !model.ValidPurpose(analysis.Category) {
		analysis.Category = model.PurposeUnknown
	}
	if analysis.SuggestedLength == "" {
		analysis.SuggestedLength = model.LengthMedium
	}

	ic.limiter.commit()
	ic.questionCache.Put(key, analysis)

	ic.logger.Info("question analyzed by inference",
		"category", analysis.Category,
		"confidence", analysis.Confidence)

	return analysis
}

// complete runs the provider call under the shared retry policy.
func (ic *InferenceClient) complete(ctx context.Context, req CompletionRequest) (string, error) {
	var content string
	err := common.WithRetry(ctx, func() error {
		response, err := ic.client.Complete(ctx, req)
		if err != nil {
			ic.logger.Warn("inference attempt failed", "error", err)
			return &common.RetryableError{Err: err, Retryable: true}
		}
		content = response
		return nil
	}, ic.retryOpts)
	if err != nil {
		return "", err
	}
	return content, nil
}

// mergeFieldResults folds parsed model output back onto the original field
// order via the 1-based index; fields the model omitted keep their current
// result untouched.
func mergeFieldResults(fields []model.FieldDescriptor, current []model.ClassificationResult, parsed []fieldResult) []model.ClassificationResult {
	results := make([]model.ClassificationResult, len(fields))
	copy(results, current)

	for _, item := range parsed {
		if item.Index < 1 || item.Index > len(fields) {
			continue
		}
		purpose := model.Purpose(item.Purpose)
		if !model.ValidPurpose(purpose) {
			continue
		}
		results[item.Index-1] = model.ClassificationResult{
			Purpose:    purpose,
			Method:     model.MethodLLM,
			Confidence: clamp01(item.Confidence),
			Reasoning:  item.Reasoning,
		}
	}

	return results
}

// fallbackFields annotates the current results as fallback output. A field
// that an earlier heuristic pass gave a purpose keeps it, floored at the
// fallback confidence; a field with no purpose comes back unknown at zero.
func fallbackFields(current []model.ClassificationResult) []model.ClassificationResult {
	results := make([]model.ClassificationResult, len(current))
	for i, r := range current {
		if r.Unresolved() {
			results[i] = model.ClassificationResult{
				Purpose: model.PurposeUnknown,
				Method:  model.MethodFallback,
			}
			continue
		}
		confidence := r.Confidence
		if confidence < model.ConfidenceFallbackFloor {
			confidence = model.ConfidenceFallbackFloor
		}
		results[i] = model.ClassificationResult{
			Purpose:    r.Purpose,
			Method:     model.MethodFallback,
			Confidence: confidence,
			Reasoning:  r.Reasoning,
		}
	}
	return results
}

// fallbackAnalysis is the generic "manual analysis required" output used
// whenever inference cannot run.
func fallbackAnalysis(source model.AnalysisSource) model.QuestionAnalysis {
	return model.QuestionAnalysis{
		Category:     model.PurposeUnknown,
		QuestionType: "general",
		KeyPoints: []string{
			"Address the question directly",
			"Ground the answer in concrete experience",
		},
		ResponseStructure: model.ResponseStructure{
			Opening: "Restate the question's focus in your own terms",
			Body:    "Support your answer with one or two specific examples",
			Closing: "Tie the answer back to the role",
		},
		Advice: []string{
			"Manual analysis required; automated analysis was unavailable",
		},
		SuggestedLength: model.LengthMedium,
		Source:          source,
	}
}

func countResolved(results []model.ClassificationResult) int {
	count := 0
	for _, r := range results {
		if !r.Unresolved() {
			count++
		}
	}
	return count
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
