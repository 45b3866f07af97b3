package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"ENV", "LOG_LEVEL",
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
	"N8N_WEBHOOK_URL", "N8N_WEBHOOK", "N8N_WEBHOOK_TIMEOUT",
	"TMDB_API_KEY", "TMDB_BASE_URL", "TMDB_IMAGE_BASE_URL", "TMDB_LANGUAGE", "TMDB_REGION",
	"UPSTREAM_TIMEOUT", "UPSTREAM_RPS", "UPSTREAM_BURST", "RESOLVE_CONCURRENCY",
}

// clearEnv blanks every key Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
}

// noEnvFile points Load at a .env path that does not exist.
func noEnvFile(t *testing.T) []string {
	t.Helper()
	return []string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}
}

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Server: ServerConfig{Port: "8080"},
		TMDB: TMDBConfig{
			BaseURL:      DefaultTMDBBaseURL,
			ImageBaseURL: DefaultTMDBImageBaseURL,
		},
		Webhook:    WebhookConfig{Timeout: time.Minute},
		Upstream:   UpstreamConfig{Timeout: 30 * time.Second, RequestsPerSecond: 40, Burst: 20},
		Enrichment: EnrichmentConfig{Concurrency: 1},
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, "", cfg.Webhook.URL)
	assert.Equal(t, 60*time.Second, cfg.Webhook.Timeout)
	assert.Equal(t, "", cfg.TMDB.APIKey)
	assert.Equal(t, DefaultTMDBBaseURL, cfg.TMDB.BaseURL)
	assert.Equal(t, DefaultTMDBImageBaseURL, cfg.TMDB.ImageBaseURL)
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, "US", cfg.TMDB.Region)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.InDelta(t, 40.0, cfg.Upstream.RequestsPerSecond, 0.0001)
	assert.Equal(t, 20, cfg.Upstream.Burst)
	assert.Equal(t, 1, cfg.Enrichment.Concurrency)

	assert.False(t, cfg.WebhookConfigured())
	assert.False(t, cfg.TMDBConfigured())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("N8N_WEBHOOK_URL", "https://n8n.example.com/webhook/recommend")
	t.Setenv("TMDB_API_KEY", "secret")
	t.Setenv("TMDB_BASE_URL", "http://tmdb.local/3/")
	t.Setenv("TMDB_REGION", "gb")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("UPSTREAM_RPS", "2.5")
	t.Setenv("UPSTREAM_BURST", "3")
	t.Setenv("RESOLVE_CONCURRENCY", "4")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://n8n.example.com/webhook/recommend", cfg.Webhook.URL)
	assert.Equal(t, "secret", cfg.TMDB.APIKey)
	assert.Equal(t, "http://tmdb.local/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "GB", cfg.TMDB.Region)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.InDelta(t, 2.5, cfg.Upstream.RequestsPerSecond, 0.0001)
	assert.Equal(t, 3, cfg.Upstream.Burst)
	assert.Equal(t, 4, cfg.Enrichment.Concurrency)

	assert.True(t, cfg.WebhookConfigured())
	assert.True(t, cfg.TMDBConfigured())
}

func TestLoad_WebhookFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("N8N_WEBHOOK", "https://fallback.example.com/hook")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.example.com/hook", cfg.Webhook.URL)

	t.Setenv("N8N_WEBHOOK_URL", "https://primary.example.com/hook")
	cfg, err = Load(noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "https://primary.example.com/hook", cfg.Webhook.URL)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("N8N_WEBHOOK_URL", "https://env.example.com/hook")

	args := append(noEnvFile(t),
		"--port", "7070",
		"--webhook-url", "https://flag.example.com/hook",
		"--resolve-concurrency", "3",
	)
	cfg, err := Load(args)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "https://flag.example.com/hook", cfg.Webhook.URL)
	assert.Equal(t, 3, cfg.Enrichment.Concurrency)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := `# local secrets
TMDB_API_KEY="from-file"
export N8N_WEBHOOK_URL=https://file.example.com/hook
SERVER_PORT=6060
`
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load([]string{"--env-file", envFile})
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.TMDB.APIKey)
	assert.Equal(t, "https://file.example.com/hook", cfg.Webhook.URL)
	assert.Equal(t, "9090", cfg.Server.Port, "process env wins over .env")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad duration", "UPSTREAM_TIMEOUT", "soon"},
		{"bad read timeout", "SERVER_READ_TIMEOUT", "15"},
		{"bad rps", "UPSTREAM_RPS", "lots"},
		{"negative rps", "UPSTREAM_RPS", "-1"},
		{"zero burst", "UPSTREAM_BURST", "0"},
		{"zero concurrency", "RESOLVE_CONCURRENCY", "0"},
		{"bad env", "ENV", "test"},
		{"bad level", "LOG_LEVEL", "verbose"},
		{"bad port", "SERVER_PORT", "http"},
		{"relative webhook", "N8N_WEBHOOK_URL", "/webhook/recommend"},
		{"ftp tmdb", "TMDB_BASE_URL", "ftp://tmdb.local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(noEnvFile(t))
			assert.Error(t, err)
		})
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	clearEnv(t)
	_, err := Load(append(noEnvFile(t), "--metadata-path", "/tmp"))
	assert.Error(t, err)
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_AllLogLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"debug", true},
		{"info", true},
		{"warn", true},
		{"error", true},
		{"DEBUG", true}, // case insensitive
		{"trace", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Logger.Level = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_MissingSecretsAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Webhook.URL = ""
	cfg.TMDB.APIKey = ""
	assert.NoError(t, cfg.Validate())
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("TEST_CONFIG_KEY", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "TEST_CONFIG_KEY", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "TEST_CONFIG_KEY", "default"))

	t.Setenv("TEST_CONFIG_KEY", "")
	assert.Equal(t, "default", getConfigValue("", "TEST_CONFIG_KEY", "default"))
}

func TestGetIntConfigValue_InvalidFallsBack(t *testing.T) {
	t.Setenv("TEST_INT_KEY", "many")
	assert.Equal(t, 7, getIntConfigValue("", "TEST_INT_KEY", 7))

	t.Setenv("TEST_INT_KEY", " 12 ")
	assert.Equal(t, 12, getIntConfigValue("", "TEST_INT_KEY", 7))
}

func TestLoadEnvFile_InvalidFormat(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("NOT_A_PAIR\n"), 0o600))

	err := loadEnvFile(envFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestLoadEnvFile_NonExistentFile(t *testing.T) {
	err := loadEnvFile(filepath.Join(t.TempDir(), "nope.env"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnvFile_ExistingEnvVarsNotOverwritten(t *testing.T) {
	t.Setenv("TEST_EXISTING_VAR", "original")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TEST_EXISTING_VAR=from_file\n"), 0o600))

	require.NoError(t, loadEnvFile(envFile))
	assert.Equal(t, "original", os.Getenv("TEST_EXISTING_VAR"))
}
