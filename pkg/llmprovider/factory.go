package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"invoice-assistant/config"
	"invoice-assistant/pkg/log"
)

const (
	deepSeekBaseURL = "https://api.deepseek.com/v1"
	qwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig) ([]Provider, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []error
	for _, p := range enabled {
		provider, err := createProvider(ctx, p)
		if err != nil {
			initErrors = append(initErrors, fmt.Errorf("provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		msgs := make([]string, len(initErrors))
		for i, e := range initErrors {
			msgs[i] = e.Error()
		}
		return nil, initErrors, fmt.Errorf("no providers successfully initialized: %s", strings.Join(msgs, "; "))
	}

	return providers, initErrors, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	var timeout time.Duration
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
		}
		timeout = d
	}

	switch strings.ToLower(cfg.Name) {
	case "openai":
		return NewOpenAIAdapter(OpenAIConfig{Name: "openai", APIKey: cfg.APIKey, BaseURL: cfg.BaseURL, Model: cfg.Model, Timeout: timeout}), nil

	case "deepseek":
		return NewOpenAIAdapter(OpenAIConfig{Name: "deepseek", APIKey: cfg.APIKey, BaseURL: orDefault(cfg.BaseURL, deepSeekBaseURL), Model: cfg.Model, Timeout: timeout}), nil

	case "qwen", "alibaba":
		return NewOpenAIAdapter(OpenAIConfig{Name: "qwen", APIKey: cfg.APIKey, BaseURL: orDefault(cfg.BaseURL, qwenBaseURL), Model: cfg.Model, Timeout: timeout}), nil

	case "gemini":
		return NewGeminiAdapter(ctx, GeminiConfig{APIKey: cfg.APIKey, Model: cfg.Model})

	case "anthropic", "claude":
		return NewAnthropicAdapter(AnthropicConfig{APIKey: cfg.APIKey, Model: cfg.Model, Timeout: timeout}), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// NewManagerFromConfig validates cfg, builds the enabled providers and wraps
// them in a Manager. initErrors lists providers that were skipped.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, logger log.Logger) (*Manager, []error, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	retryDelay, maxTotal, err := cfg.Durations()
	if err != nil {
		return nil, nil, err
	}

	providers, initErrors, err := InitializeProviders(ctx, cfg)
	if err != nil {
		return nil, initErrors, err
	}

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger), initErrors, nil
}
