package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures one provider.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call, retries included.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // for OpenAI-compatible endpoints
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults: Anthropic Haiku, three attempts,
// 60s overall timeout.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

const envPrefix = "COURSEMAP_"

// envBindings maps COURSEMAP_* variables onto config fields.
func envBindings(cfg *Config) map[string]*string {
	return map[string]*string{
		"LLM_PROVIDER":        &cfg.Provider,
		"ANTHROPIC_API_KEY":   &cfg.Anthropic.APIKey,
		"ANTHROPIC_MODEL":     &cfg.Anthropic.Model,
		"OPENAI_API_KEY":      &cfg.OpenAI.APIKey,
		"OPENAI_MODEL":        &cfg.OpenAI.Model,
		"OPENAI_BASE_URL":     &cfg.OpenAI.BaseURL,
		"GEMINI_API_KEY":      &cfg.Gemini.APIKey,
		"GEMINI_MODEL":        &cfg.Gemini.Model,
		"OPENROUTER_API_KEY":  &cfg.OpenRouter.APIKey,
		"OPENROUTER_MODEL":    &cfg.OpenRouter.Model,
		"OPENROUTER_BASE_URL": &cfg.OpenRouter.BaseURL,
	}
}

// ConfigFromEnv overlays COURSEMAP_* environment variables on the defaults.
// COURSEMAP_LLM_TIMEOUT takes a Go duration such as "45s".
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for name, field := range envBindings(&cfg) {
		if v := os.Getenv(envPrefix + name); v != "" {
			*field = v
		}
	}
	if v := os.Getenv(envPrefix + "LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// HasCredentials reports whether the selected provider can be built.
func (c Config) HasCredentials() bool {
	return c.Validate() == nil
}

// DiscoverConfig looks for the providers' own API key variables, in the
// order Anthropic, OpenAI, Gemini, OpenRouter, and configures the first one
// found. It returns false when none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			*p.key = k
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveConfig returns ConfigFromEnv when it is usable, otherwise the
// result of DiscoverConfig. The error wraps ErrNotConfigured when neither
// yields credentials.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, nil
	}
	if discovered, ok := DiscoverConfig(); ok {
		discovered.Timeout = cfg.Timeout
		return discovered, nil
	}
	return cfg, fmt.Errorf("%w: set %sLLM_PROVIDER and its API key, or ANTHROPIC_API_KEY / OPENAI_API_KEY / GEMINI_API_KEY / OPENROUTER_API_KEY",
		ErrNotConfigured, envPrefix)
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s%s is required for the %s provider", envPrefix, env, c.Provider)
	}
	return nil
}
