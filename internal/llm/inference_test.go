package llm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsense/formsense/internal/model"
)

// fakeCompleter is a canned Client implementation.
type fakeCompleter struct {
	response string
	err      error
	lastReq  CompletionRequest
	calls    int
}

func (f *fakeCompleter) Complete(_ context.Context, req CompletionRequest) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func testInference(fake *fakeCompleter) *InferenceClient {
	cfg := Config{
		PerMinuteLimit: 60,
		DailyLimit:     100,
		MaxRetries:     1,
		RetryDelay:     time.Millisecond,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newInferenceClient(fake, cfg, logger)
}

func testFields() []model.FieldDescriptor {
	return []model.FieldDescriptor{
		{Kind: model.KindText, Name: "fld_a", Label: "Preferred pronouns"},
		{Kind: model.KindTel, Name: "fld_b", Label: "Phone"},
		{Kind: model.KindText, Name: "fld_c", Label: "Mystery"},
	}
}

func TestClassifyFieldsMergesByIndex(t *testing.T) {
	fake := &fakeCompleter{
		response: `Here you go:
[
  {"index": 1, "purpose": "firstName", "confidence": 1.5, "reasoning": "pronoun field precedes name block"},
  {"index": 3, "purpose": "favoriteColor", "confidence": 0.9},
  {"index": 7, "purpose": "email", "confidence": 0.9}
]`,
	}
	ic := testInference(fake)

	current := []model.ClassificationResult{
		{},
		{Purpose: model.PurposePhone, Method: model.MethodHeuristic, Confidence: 0.5},
		{},
	}

	results := ic.ClassifyFields(context.Background(), testFields(), model.Context{}, current)
	require.Len(t, results, 3)

	assert.Equal(t, model.PurposeFirstName, results[0].Purpose)
	assert.Equal(t, model.MethodLLM, results[0].Method)
	assert.Equal(t, 1.0, results[0].Confidence, "reported confidence is clamped to [0,1]")
	assert.NotEmpty(t, results[0].Reasoning)

	// Field 2 was not in the model output; its earlier result survives.
	assert.Equal(t, model.PurposePhone, results[1].Purpose)
	assert.Equal(t, model.MethodHeuristic, results[1].Method)

	// Index 3 carried an out-of-taxonomy purpose and index 7 is out of
	// range; both are dropped.
	assert.True(t, results[2].Unresolved())

	assert.Equal(t, 1, fake.calls)
}

func TestClassifyFieldsCachesResponses(t *testing.T) {
	fake := &fakeCompleter{
		response: `[{"index": 1, "purpose": "firstName", "confidence": 0.9}]`,
	}
	ic := testInference(fake)

	fields := testFields()
	current := make([]model.ClassificationResult, len(fields))

	first := ic.ClassifyFields(context.Background(), fields, model.Context{}, current)
	second := ic.ClassifyFields(context.Background(), fields, model.Context{}, current)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fake.calls, "identical request must be served from cache")
}

func TestClassifyFieldsRateLimited(t *testing.T) {
	fake := &fakeCompleter{
		response: `[{"index": 1, "purpose": "firstName", "confidence": 0.9}]`,
	}
	ic := testInference(fake)
	ic.limiter = newRateLimiter(1, 100) // one request per minute

	fields := testFields()
	ic.ClassifyFields(context.Background(), fields, model.Context{}, make([]model.ClassificationResult, len(fields)))
	require.Equal(t, 1, fake.calls)

	// Different batch, same minute: denied before the provider is touched.
	otherFields := []model.FieldDescriptor{
		{Kind: model.KindTel, Name: "phone", Label: "Phone"},
		{Kind: model.KindText, Name: "misc", Label: "Misc"},
	}
	current := []model.ClassificationResult{
		{Purpose: model.PurposePhone, Method: model.MethodHeuristic, Confidence: 0.2},
		{},
	}

	results := ic.ClassifyFields(context.Background(), otherFields, model.Context{}, current)
	require.Len(t, results, 2)
	assert.Equal(t, 1, fake.calls, "denied request must not reach the provider")

	// A field an earlier stage resolved keeps its purpose, floored at the
	// fallback confidence.
	assert.Equal(t, model.PurposePhone, results[0].Purpose)
	assert.Equal(t, model.MethodFallback, results[0].Method)
	assert.Equal(t, model.ConfidenceFallbackFloor, results[0].Confidence)

	assert.Equal(t, model.PurposeUnknown, results[1].Purpose)
	assert.Equal(t, model.MethodFallback, results[1].Method)
	assert.Zero(t, results[1].Confidence)
}

func TestClassifyFieldsProviderFailure(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("connection reset")}
	ic := testInference(fake)

	fields := testFields()
	current := []model.ClassificationResult{
		{Purpose: model.PurposePhone, Method: model.MethodHeuristic, Confidence: 0.6},
		{},
		{},
	}

	results := ic.ClassifyFields(context.Background(), fields, model.Context{}, current)
	require.Len(t, results, 3)
	assert.Equal(t, model.MethodFallback, results[0].Method)
	assert.Equal(t, model.PurposePhone, results[0].Purpose)
	assert.Equal(t, 0.6, results[0].Confidence, "confidence above the floor is preserved")
	assert.True(t, results[1].Unresolved())

	// The failed attempt released its slot and cached nothing; a later call
	// goes back to the provider.
	fake.err = nil
	fake.response = `[{"index": 2, "purpose": "phone", "confidence": 0.9}]`
	retried := ic.ClassifyFields(context.Background(), fields, model.Context{}, current)
	assert.Equal(t, model.MethodLLM, retried[1].Method)
	assert.Equal(t, 2, fake.calls)
}

func TestClassifyFieldsUnparseableOutput(t *testing.T) {
	fake := &fakeCompleter{response: "I am unable to classify these fields."}
	ic := testInference(fake)

	fields := testFields()
	results := ic.ClassifyFields(context.Background(), fields, model.Context{}, make([]model.ClassificationResult, len(fields)))

	require.Len(t, results, 3)
	for _, r := range results {
		assert.Equal(t, model.PurposeUnknown, r.Purpose)
		assert.Equal(t, model.MethodFallback, r.Method)
	}
}

func TestClassifyFieldsEmptyBatch(t *testing.T) {
	fake := &fakeCompleter{}
	ic := testInference(fake)

	results := ic.ClassifyFields(context.Background(), nil, model.Context{}, nil)
	assert.Nil(t, results)
	assert.Zero(t, fake.calls)
}

func TestClassifyFieldsPromptCarriesFields(t *testing.T) {
	fake := &fakeCompleter{response: `[]`}
	ic := testInference(fake)

	fields := testFields()
	pageCtx := model.Context{Platform: model.PlatformGreenhouse, Company: "Acme", Position: "Engineer"}
	ic.ClassifyFields(context.Background(), fields, pageCtx, make([]model.ClassificationResult, len(fields)))

	require.Equal(t, 1, fake.calls)
	assert.Contains(t, fake.lastReq.Prompt, "Preferred pronouns")
	assert.Contains(t, fake.lastReq.Prompt, "Acme")
	assert.Contains(t, fake.lastReq.System, "JSON")
}

func TestClassifyQuestion(t *testing.T) {
	fake := &fakeCompleter{
		response: `{"category": "whyInterested", "questionType": "motivation",
			"keyPoints": ["name something specific"], "confidence": 1.4,
			"advice": ["be concrete"]}`,
	}
	ic := testInference(fake)

	analysis := ic.ClassifyQuestion(context.Background(), "What made you pick us?", model.Context{Company: "Acme"})

	assert.Equal(t, model.PurposeWhyInterested, analysis.Category)
	assert.Equal(t, model.SourceLLM, analysis.Source)
	assert.Equal(t, 1.0, analysis.Confidence)
	assert.Equal(t, model.LengthMedium, analysis.SuggestedLength, "missing length defaults to medium")
}

func TestClassifyQuestionInvalidCategory(t *testing.T) {
	fake := &fakeCompleter{
		response: `{"category": "smallTalk", "questionType": "other", "confidence": 0.5}`,
	}
	ic := testInference(fake)

	analysis := ic.ClassifyQuestion(context.Background(), "How is the weather?", model.Context{})
	assert.Equal(t, model.PurposeUnknown, analysis.Category)
	assert.Equal(t, model.SourceLLM, analysis.Source)
}

func TestClassifyQuestionCaches(t *testing.T) {
	fake := &fakeCompleter{
		response: `{"category": "careerGoals", "questionType": "goals", "confidence": 0.8}`,
	}
	ic := testInference(fake)

	ctx := model.Context{Company: "Acme", Position: "Engineer"}
	first := ic.ClassifyQuestion(context.Background(), "Where do you want to be?", ctx)
	second := ic.ClassifyQuestion(context.Background(), "  WHERE do you want to be?  ", ctx)

	assert.Equal(t, first, second, "normalized question text shares a cache entry")
	assert.Equal(t, 1, fake.calls)
}

func TestClassifyQuestionRateLimited(t *testing.T) {
	fake := &fakeCompleter{}
	ic := testInference(fake)
	ic.limiter.dailyCount = ic.limiter.dailyLimit
	ic.limiter.dailyWindowStart = time.Now()

	analysis := ic.ClassifyQuestion(context.Background(), "Why us?", model.Context{})
	assert.Equal(t, model.SourceFallback, analysis.Source)
	assert.Equal(t, model.PurposeUnknown, analysis.Category)
	assert.NotEmpty(t, analysis.Advice)
	assert.Zero(t, fake.calls)
}

func TestClassifyQuestionProviderFailure(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("boom")}
	ic := testInference(fake)

	analysis := ic.ClassifyQuestion(context.Background(), "Why us?", model.Context{})
	assert.Equal(t, model.SourceError, analysis.Source)
	assert.Equal(t, model.LengthMedium, analysis.SuggestedLength)
}
