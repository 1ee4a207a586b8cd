package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-matcher/internal/llm/anthropic"
	"resume-matcher/internal/llm/gemini"
	"resume-matcher/internal/llm/groq"
)

const (
	DefaultTemperature = 0.5
	DefaultMaxTokens   = 1024
	ProbePrompt        = "Hello!"
)

// Client abstracts a text completion provider.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Config selects and configures a provider.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// New builds the Client for cfg.Provider. An empty provider means groq.
func New(ctx context.Context, cfg Config) (Client, error) {
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "groq":
		return groq.New(groq.Options{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			BaseURL:     cfg.BaseURL,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.Timeout,
		})
	case "anthropic":
		return anthropic.New(anthropic.Options{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			BaseURL:     cfg.BaseURL,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.Timeout,
		})
	case "gemini":
		return gemini.New(ctx, gemini.Options{
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			BaseURL:     cfg.BaseURL,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
			Timeout:     cfg.Timeout,
		})
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", cfg.Provider)
	}
}

// Probe sends a short greeting to verify connectivity and credentials.
func Probe(ctx context.Context, client Client) (string, error) {
	return client.Complete(ctx, ProbePrompt)
}
