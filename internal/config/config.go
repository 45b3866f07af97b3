// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App        AppConfig
	Logger     LoggerConfig
	Server     ServerConfig
	Webhook    WebhookConfig
	TMDB       TMDBConfig
	Upstream   UpstreamConfig
	Enrichment EnrichmentConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 120s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// WebhookConfig holds the recommendation webhook settings.
type WebhookConfig struct {
	// URL is read from N8N_WEBHOOK_URL, falling back to N8N_WEBHOOK.
	// Empty is allowed; requests then fail with a configuration error.
	URL     string
	Timeout time.Duration // default: 60s
}

// TMDBConfig holds TMDB API settings.
type TMDBConfig struct {
	APIKey       string // Empty is allowed, see WebhookConfig.URL
	BaseURL      string
	ImageBaseURL string
	Language     string // default: en-US
	Region       string // Watch provider market (default: US)
}

// UpstreamConfig holds settings shared by outbound HTTP clients.
type UpstreamConfig struct {
	Timeout           time.Duration // Per-request timeout for TMDB (default: 30s)
	RequestsPerSecond float64       // Per-host pacing, 0 disables (default: 40)
	Burst             int           // default: 20
}

// EnrichmentConfig holds recommendation pipeline settings.
type EnrichmentConfig struct {
	// Concurrency is how many suggestions resolve at once (default: 1, sequential).
	Concurrency int
}

// Default values.
const (
	DefaultTMDBBaseURL      = "https://api.themoviedb.org/3"
	DefaultTMDBImageBaseURL = "https://image.tmdb.org/t/p"
)

// LoadConfig loads configuration from the process arguments. See Load.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("moodreel", flag.ContinueOnError)

	env := fs.String("env", "", "Environment (development, staging, production)")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")

	// Server flags
	serverPort := fs.String("port", "", "Server port (default: 8080)")
	readTimeout := fs.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := fs.String("write-timeout", "", "HTTP write timeout (default: 120s)")
	idleTimeout := fs.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")

	// Upstream flags
	webhookURL := fs.String("webhook-url", "", "Recommendation webhook URL")
	webhookTimeout := fs.String("webhook-timeout", "", "Recommendation webhook timeout (default: 60s)")
	tmdbBaseURL := fs.String("tmdb-base-url", "", "TMDB API base URL")
	tmdbImageBaseURL := fs.String("tmdb-image-base-url", "", "TMDB image CDN base URL")
	tmdbLanguage := fs.String("tmdb-language", "", "TMDB metadata language (default: en-US)")
	tmdbRegion := fs.String("tmdb-region", "", "Watch provider region (default: US)")
	upstreamTimeout := fs.String("upstream-timeout", "", "TMDB request timeout (default: 30s)")
	upstreamRPS := fs.String("upstream-rps", "", "Outbound requests per second per host, 0 disables (default: 40)")
	upstreamBurst := fs.String("upstream-burst", "", "Outbound burst size per host (default: 20)")
	resolveConcurrency := fs.String("resolve-concurrency", "", "Suggestions resolved at once (default: 1)")

	envFile := fs.String("env-file", ".env", "Path to .env file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	// Load .env file if it exists (silently ignore if not found).
	if err := loadEnvFile(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	// The API key is read from the environment only.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
		Webhook: WebhookConfig{
			URL: getConfigValue(*webhookURL, "N8N_WEBHOOK_URL", getConfigValue("", "N8N_WEBHOOK", "")),
		},
		TMDB: TMDBConfig{
			APIKey:       getConfigValue("", "TMDB_API_KEY", ""),
			BaseURL:      strings.TrimRight(getConfigValue(*tmdbBaseURL, "TMDB_BASE_URL", DefaultTMDBBaseURL), "/"),
			ImageBaseURL: strings.TrimRight(getConfigValue(*tmdbImageBaseURL, "TMDB_IMAGE_BASE_URL", DefaultTMDBImageBaseURL), "/"),
			Language:     getConfigValue(*tmdbLanguage, "TMDB_LANGUAGE", "en-US"),
			Region:       strings.ToUpper(getConfigValue(*tmdbRegion, "TMDB_REGION", "US")),
		},
		Upstream: UpstreamConfig{
			Burst: getIntConfigValue(*upstreamBurst, "UPSTREAM_BURST", 20),
		},
		Enrichment: EnrichmentConfig{
			Concurrency: getIntConfigValue(*resolveConcurrency, "RESOLVE_CONCURRENCY", 1),
		},
	}

	var err error

	// Parse server timeouts.
	if cfg.Server.ReadTimeout, err = getDurationConfigValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = getDurationConfigValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "120s"); err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	if cfg.Server.IdleTimeout, err = getDurationConfigValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s"); err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}

	// Parse upstream settings.
	if cfg.Webhook.Timeout, err = getDurationConfigValue(*webhookTimeout, "N8N_WEBHOOK_TIMEOUT", "60s"); err != nil {
		return nil, fmt.Errorf("invalid webhook timeout: %w", err)
	}
	if cfg.Upstream.Timeout, err = getDurationConfigValue(*upstreamTimeout, "UPSTREAM_TIMEOUT", "30s"); err != nil {
		return nil, fmt.Errorf("invalid upstream timeout: %w", err)
	}
	if cfg.Upstream.RequestsPerSecond, err = getFloatConfigValue(*upstreamRPS, "UPSTREAM_RPS", 40); err != nil {
		return nil, fmt.Errorf("invalid upstream rps: %w", err)
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all config values are present and valid.
// Missing upstream credentials are not an error here.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port: %s", c.Server.Port)
	}

	if c.Webhook.URL != "" {
		if err := validateHTTPURL(c.Webhook.URL); err != nil {
			return fmt.Errorf("invalid webhook url: %w", err)
		}
	}
	if err := validateHTTPURL(c.TMDB.BaseURL); err != nil {
		return fmt.Errorf("invalid TMDB base url: %w", err)
	}
	if err := validateHTTPURL(c.TMDB.ImageBaseURL); err != nil {
		return fmt.Errorf("invalid TMDB image base url: %w", err)
	}

	if c.Upstream.Timeout <= 0 || c.Webhook.Timeout <= 0 {
		return errors.New("upstream timeouts must be positive")
	}
	if c.Upstream.RequestsPerSecond < 0 {
		return fmt.Errorf("invalid upstream rps: %v (must not be negative)", c.Upstream.RequestsPerSecond)
	}
	if c.Upstream.Burst < 1 {
		return fmt.Errorf("invalid upstream burst: %d (must be at least 1)", c.Upstream.Burst)
	}
	if c.Enrichment.Concurrency < 1 {
		return fmt.Errorf("invalid resolve concurrency: %d (must be at least 1)", c.Enrichment.Concurrency)
	}

	return nil
}

// WebhookConfigured reports whether the recommendation webhook URL is set.
func (c *Config) WebhookConfigured() bool {
	return c.Webhook.URL != ""
}

// TMDBConfigured reports whether the TMDB API key is set.
func (c *Config) TMDBConfigured() bool {
	return c.TMDB.APIKey != ""
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(strings.TrimSpace(strValue))
	if err != nil {
		return defaultValue
	}
	return result
}

// getFloatConfigValue returns a float from flag, env var, or default.
func getFloatConfigValue(flagValue, envKey string, defaultValue float64) (float64, error) {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue, nil
	}
	result, err := strconv.ParseFloat(strings.TrimSpace(strValue), 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", envKey, strValue, err)
	}
	return result, nil
}

// getDurationConfigValue returns a duration from flag, env var, or default.
func getDurationConfigValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	strValue := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(strValue)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", envKey, strValue, err)
	}
	return d, nil
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key = strings.TrimPrefix(strings.TrimSpace(key), "export ")
		value = strings.Trim(strings.TrimSpace(value), `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
