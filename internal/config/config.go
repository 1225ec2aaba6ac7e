package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr  string
	LogLevel  slog.Level
	AuthToken string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	LLMTimeout    time.Duration

	ScryfallBaseURL   string
	EnrichmentEnabled bool
	EnrichmentDelay   time.Duration
}

// Load reads configuration from the environment and validates it. Credential
// problems are caught here, before any network call: a missing key and a key
// that does not look like an OpenAI secret are both fatal to startup.
func Load() (Config, error) {
	c := Config{
		HTTPAddr:        envOr("HTTP_ADDR", ":8080"),
		AuthToken:       os.Getenv("AUTH_TOKEN"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:     envOr("OPENAI_MODEL", "gpt-4o"),
		LLMTimeout:      60 * time.Second,
		ScryfallBaseURL: envOr("SCRYFALL_BASE_URL", "https://api.scryfall.com"),
		EnrichmentDelay: 100 * time.Millisecond,
	}

	if err := validateAPIKey(c.OpenAIAPIKey); err != nil {
		return Config{}, err
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		c.LLMTimeout = d
	}

	if v := os.Getenv("ENRICHMENT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ENRICHMENT_DELAY %q: %w", v, err)
		}
		c.EnrichmentDelay = d
	}

	enabled, err := parseBool(envOr("ENRICHMENT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid ENRICHMENT_ENABLED: %w", err)
	}
	c.EnrichmentEnabled = enabled

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

// validateAPIKey enforces the provider's key shape ("sk-..." or
// "sk-svcacct-...") so a misconfigured deployment fails at startup with an
// actionable message instead of on the first model call.
func validateAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("OPENAI_API_KEY is required; set it in the environment or a .env file")
	}
	if !strings.HasPrefix(key, "sk-") {
		return fmt.Errorf("OPENAI_API_KEY has an invalid format (expected an sk- prefix, got %q...)", truncate(key, 8))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		return false, fmt.Errorf("%q is not a boolean", s)
	}
	return b, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
