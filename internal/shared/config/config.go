package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ProviderGroq      = "groq"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config holds application configuration.
type Config struct {
	Port            string   `validate:"required"`
	Env             string   `validate:"oneof=dev local staging production"`
	LogLevel        string   `validate:"oneof=trace debug info warn error"`
	CORSAllowOrigin []string `validate:"min=1"`
	LLM             LLMConfig
	RateLimit       RateLimitConfig
}

// LLMConfig selects and configures the text-completion provider.
type LLMConfig struct {
	Provider     string `validate:"oneof=groq anthropic gemini"`
	APIKey       string `validate:"required"`
	Model        string
	BaseURL      string `validate:"omitempty,url"`
	Timeout      time.Duration
	StartupProbe bool
}

// RateLimitConfig bounds POST /analyze per client IP. Zero RPS disables it.
type RateLimitConfig struct {
	RPS   float64 `validate:"gte=0"`
	Burst int     `validate:"gte=0"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))

	return Config{
		Port:            getEnv("PORT", "5000"),
		Env:             env,
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel(env))),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		LLM:             LLMFor(getEnv("LLM_PROVIDER", ProviderGroq)),
		RateLimit: RateLimitConfig{
			RPS:   getFloat("RATE_LIMIT_RPS", 1),
			Burst: getInt("RATE_LIMIT_BURST", 5),
		},
	}
}

// LLMFor reads the LLM settings for provider, picking that provider's credential.
func LLMFor(provider string) LLMConfig {
	provider = normalizeProvider(provider)
	return LLMConfig{
		Provider:     provider,
		APIKey:       getEnv(apiKeyEnv(provider), ""),
		Model:        getEnv("LLM_MODEL", ""),
		BaseURL:      getEnv("LLM_BASE_URL", ""),
		Timeout:      getDuration("LLM_TIMEOUT", 120*time.Second),
		StartupProbe: getBool("LLM_STARTUP_PROBE", false),
	}
}

// Validate checks the configuration is usable for serving requests.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) {
			for _, fe := range fields {
				if fe.StructNamespace() == "Config.LLM.APIKey" {
					return fmt.Errorf("%s is required for provider %s", apiKeyEnv(c.LLM.Provider), c.LLM.Provider)
				}
			}
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// APIKeyHint returns a redacted form of the credential suitable for logs.
func (c LLMConfig) APIKeyHint() string {
	key := c.APIKey
	if len(key) > 8 {
		key = key[:8]
	}
	return key + "*****"
}

func apiKeyEnv(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return "GROQ_API_KEY"
	}
}

func defaultLogLevel(env string) string {
	switch env {
	case "dev", "local":
		return "debug"
	default:
		return "info"
	}
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeProvider(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

func getBool(key string, def bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
