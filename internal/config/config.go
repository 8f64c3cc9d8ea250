package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL      string
	Port             string
	InternalAPIKey   string
	PreviewBaseURL   string
	PreviewExpiry    time.Duration
	TemplatesDir     string
	LLMProvider      string
	LLMModel         string
	RateLimitCapture RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           getEnv("PORT", "8080"),
		InternalAPIKey: os.Getenv("INTERNAL_API_KEY"),
		PreviewBaseURL: getEnv("PREVIEW_BASE_URL", "http://localhost:8080"),
		PreviewExpiry:  parseExpiryDays(getEnv("PREVIEW_EXPIRY_DAYS", "7")),
		TemplatesDir:   getEnv("TEMPLATES_DIR", "templates"),
		LLMProvider:    getEnv("LLM_PROVIDER", "anthropic"),
		LLMModel:       getEnv("LLM_MODEL", "claude-sonnet-4-20250514"),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_CAPTURE", "30/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CAPTURE value: %w", err)
	}
	cfg.RateLimitCapture = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseExpiryDays(input string) time.Duration {
	days, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || days <= 0 {
		days = 7
	}
	return time.Duration(days) * 24 * time.Hour
}
