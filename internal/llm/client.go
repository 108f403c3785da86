package llm

import "context"

// Client defines the interface for LLM providers. Implementations return
// the raw text content of the completion; structured-output parsing happens
// above them so no provider special-cases JSON extraction.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest carries one prompt and its generation parameters.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}
