// Package config loads application configuration from viper and overlays
// stored settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/formsense/formsense/internal/llm"
	"github.com/formsense/formsense/internal/storage"
)

// Config is the resolved application configuration.
type Config struct {
	LogLevel     string
	LogFormat    string
	DatabasePath string
	LLM          llm.Config
}

// Dir returns the application config directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".config", "formsense")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return dir, nil
}

// Load builds a Config from the current viper state. Viper must already be
// initialized by the command layer.
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:     viper.GetString("logging.level"),
		LogFormat:    viper.GetString("logging.format"),
		DatabasePath: viper.GetString("database.path"),
		LLM: llm.Config{
			Provider:       viper.GetString("llm.provider"),
			APIKey:         viper.GetString("llm.api_key"),
			Model:          viper.GetString("llm.model"),
			Temperature:    viper.GetFloat64("llm.temperature"),
			MaxTokens:      viper.GetInt("llm.max_tokens"),
			PerMinuteLimit: viper.GetInt("llm.per_minute_limit"),
			DailyLimit:     viper.GetInt("llm.daily_limit"),
			CacheTTL:       viper.GetDuration("llm.cache_ttl"),
			CacheMaxSize:   viper.GetInt("llm.cache_max_size"),
			MaxRetries:     viper.GetInt("llm.max_retries"),
			RetryDelay:     viper.GetDuration("llm.retry_delay"),
		},
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	if cfg.LLM.CacheTTL == 0 {
		cfg.LLM.CacheTTL = 24 * time.Hour
	}
	if cfg.DatabasePath == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		cfg.DatabasePath = filepath.Join(dir, "formsense.db")
	}

	return cfg, nil
}

// ApplySettings overlays values from the settings store onto the config.
// Stored settings win over file/flag values only where the store actually
// holds a value; malformed numbers are ignored in favor of the defaults.
func (c *Config) ApplySettings(values map[string]string) {
	if v, ok := values[storage.KeyAPIKey]; ok && v != "" {
		c.LLM.APIKey = v
	}
	if v, ok := values[storage.KeyProvider]; ok && v != "" {
		c.LLM.Provider = v
	}
	if v, ok := values[storage.KeyModel]; ok && v != "" {
		c.LLM.Model = v
	}
	if v, ok := values[storage.KeyPerMinuteLimit]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.LLM.PerMinuteLimit = n
		}
	}
	if v, ok := values[storage.KeyDailyLimit]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.LLM.DailyLimit = n
		}
	}
}
