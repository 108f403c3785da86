package llm

import (
	"fmt"
	"strings"
	"time"
)

// Config holds configuration for the inference layer.
type Config struct {
	Provider       string
	APIKey         string
	Model          string
	Endpoint       string
	Temperature    float64
	MaxTokens      int
	PerMinuteLimit int
	DailyLimit     int
	CacheTTL       time.Duration
	CacheMaxSize   int
	MaxRetries     int
	RetryDelay     time.Duration
}

// NewClient creates a provider client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return newOpenAIClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
