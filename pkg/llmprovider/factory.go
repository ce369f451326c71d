package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"trial-monitor/config"
	"trial-monitor/pkg/gemini"
	pkgLog "trial-monitor/pkg/log"
	"trial-monitor/pkg/openai"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	// Filter enabled providers
	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	// Sort by priority (ascending order)
	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	// Build provider instances - skip failed ones instead of failing entirely
	var providers []Provider
	var initErrors []error

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Errorf("failed to initialize provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	// If no providers were successfully initialized, return error
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
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	httpClient, err := newHTTPClient(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", cfg.Name, err)
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "qwen", "alibaba", "deepseek", "openai":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = openai.BaseURLFor(cfg.Name)
		}
		client, err := openai.New(openai.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    baseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewOpenAIAdapter(cfg.Name, client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func newHTTPClient(timeout string) (*http.Client, error) {
	if timeout == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", timeout, err)
	}
	return &http.Client{Timeout: d}, nil
}

// ManagerConfigFrom converts the retry and fallback settings of cfg.
func ManagerConfigFrom(cfg *config.LLMConfig) (*Config, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
	}
	if cfg.RetryDelay != "" {
		d, err := time.ParseDuration(cfg.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("invalid retry_delay %q: %w", cfg.RetryDelay, err)
		}
		out.RetryDelay = d
	}
	if cfg.MaxTotalTimeout != "" {
		d, err := time.ParseDuration(cfg.MaxTotalTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid max_total_timeout %q: %w", cfg.MaxTotalTimeout, err)
		}
		out.MaxTotalTimeout = d
	}
	return out, nil
}

// NewManagerFromConfig initializes the enabled providers and wraps them in a
// Manager. Providers that failed to initialize are returned as skipped.
func NewManagerFromConfig(cfg *config.LLMConfig, logger pkgLog.Logger) (*Manager, []error, error) {
	managerCfg, err := ManagerConfigFrom(cfg)
	if err != nil {
		return nil, nil, err
	}
	providers, skipped, err := InitializeProviders(cfg)
	if err != nil {
		return nil, skipped, err
	}
	return NewManager(providers, managerCfg, logger), skipped, nil
}
