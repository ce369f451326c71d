package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Delivery
	Telegram  TelegramConfig
	RateLimit RateLimitConfig

	// LLM Provider Abstraction
	LLM        LLMConfig
	Generation GenerationConfig

	// Trial monitoring
	Monitor MonitorConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port         int
	Mode         string
	MaxBodyBytes int64
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

// RateLimitConfig bounds how many messages one sender may submit per minute.
type RateLimitConfig struct {
	PerMin int
}

// GenerationConfig holds the sampling parameters sent with every oracle call.
type GenerationConfig struct {
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

type MonitorConfig struct {
	OracleTimeout        string // per-request bound on the whole provider chain
	HistoryWindow        int
	GuidanceContextTurns int
	RequestLogSize       int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // NEW: Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.MaxBodyBytes = viper.GetInt64("http_server.max_body_bytes")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Delivery
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = viper.GetString("telegram.secret_token")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if tgSecret := viper.GetString("telegram_secret_token"); tgSecret != "" {
		cfg.Telegram.SecretToken = tgSecret
	}
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Generation parameters
	cfg.Generation.Temperature = viper.GetFloat64("generation.temperature")
	cfg.Generation.TopP = viper.GetFloat64("generation.top_p")
	cfg.Generation.TopK = viper.GetInt("generation.top_k")
	cfg.Generation.MaxOutputTokens = viper.GetInt("generation.max_output_tokens")

	// Trial monitoring
	cfg.Monitor.OracleTimeout = viper.GetString("monitor.oracle_timeout")
	cfg.Monitor.HistoryWindow = viper.GetInt("monitor.history_window")
	cfg.Monitor.GuidanceContextTurns = viper.GetInt("monitor.guidance_context_turns")
	cfg.Monitor.RequestLogSize = viper.GetInt("monitor.request_log_size")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.max_body_bytes", 1<<20)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 30)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s") // Default: 60 seconds for entire fallback chain

	// Generation defaults
	viper.SetDefault("generation.temperature", 0.1)
	viper.SetDefault("generation.top_p", 0.95)
	viper.SetDefault("generation.top_k", 40)
	viper.SetDefault("generation.max_output_tokens", 4096)

	// Monitor defaults
	viper.SetDefault("monitor.oracle_timeout", "120s")
	viper.SetDefault("monitor.history_window", 10)
	viper.SetDefault("monitor.guidance_context_turns", 3)
	viper.SetDefault("monitor.request_log_size", 10)
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if c.Generation.Temperature < 0 || c.Generation.TopP < 0 || c.Generation.TopP > 1 {
		return fmt.Errorf("generation: temperature must be >= 0 and top_p within [0, 1]")
	}
	if c.Monitor.OracleTimeout != "" {
		if _, err := time.ParseDuration(c.Monitor.OracleTimeout); err != nil {
			return fmt.Errorf("monitor: invalid oracle_timeout %q: %w", c.Monitor.OracleTimeout, err)
		}
	}
	if c.Monitor.HistoryWindow < 0 || c.Monitor.GuidanceContextTurns < 0 || c.Monitor.RequestLogSize < 0 {
		return fmt.Errorf("monitor: window sizes must not be negative")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			// Check priority is valid
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			// Check for duplicate priorities
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true

		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
