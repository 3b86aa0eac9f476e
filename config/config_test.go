package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice_relay/config"
)

const fileContent = `
app:
  name: "voice-relay"
  version: "1.2.3"

server:
  port: "8080"

logger:
  log_level: "debug"

eden:
  url: "https://api.edenai.run/v2/audio/speech_to_speech"
  timeout: "30s"

otel:
  exporter: "none"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func validConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Port: "8000", WriteTimeout: 75 * time.Second},
		Log:    config.Log{Level: "info"},
		Eden: config.Eden{
			URL:     "https://api.edenai.run/v2/audio/speech_to_speech",
			Timeout: 60 * time.Second,
		},
		Relay: config.Relay{StrictValidation: true, MaxUploadBytes: 1 << 20},
		OTEL:  config.OTEL{Exporter: config.ExporterNone},
	}
}

func TestLoad_File(t *testing.T) {
	t.Setenv("EDEN_AI_API_KEY", "secret-key")

	cfg, err := config.Load(writeConfig(t, fileContent))
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 30*time.Second, cfg.Eden.Timeout)
	assert.Equal(t, "secret-key", cfg.Eden.APIKey)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, fileContent))
	require.NoError(t, err)

	assert.Equal(t, 75*time.Second, cfg.Server.WriteTimeout)
	assert.True(t, cfg.Relay.StrictValidation)
	assert.Equal(t, int64(32<<20), cfg.Relay.MaxUploadBytes)
	assert.Empty(t, cfg.Eden.APIKey)
}

func TestLoad_EnvOnlyWhenFileMissing(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RELAY_STRICT_VALIDATION", "false")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.False(t, cfg.Relay.StrictValidation)
	assert.Equal(t, "https://api.edenai.run/v2/audio/speech_to_speech", cfg.Eden.URL)
	assert.Equal(t, 60*time.Second, cfg.Eden.Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := config.Load(writeConfig(t, fileContent))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("EDEN_AI_URL", "ftp://example.com/upload")

	_, err := config.Load(writeConfig(t, fileContent))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eden.url")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "bad port", mutate: func(c *config.Config) { c.Server.Port = "http" }, wantErr: "server.port"},
		{name: "bad level", mutate: func(c *config.Config) { c.Log.Level = "trace" }, wantErr: "logger.log_level"},
		{name: "url without host", mutate: func(c *config.Config) { c.Eden.URL = "https://" }, wantErr: "eden.url"},
		{name: "zero timeout", mutate: func(c *config.Config) { c.Eden.Timeout = 0 }, wantErr: "eden.timeout"},
		{
			name:    "write timeout shorter than upstream",
			mutate:  func(c *config.Config) { c.Server.WriteTimeout = 10 * time.Second },
			wantErr: "server.write_timeout",
		},
		{name: "zero upload limit", mutate: func(c *config.Config) { c.Relay.MaxUploadBytes = 0 }, wantErr: "relay.max_upload_bytes"},
		{name: "unknown exporter", mutate: func(c *config.Config) { c.OTEL.Exporter = "zipkin" }, wantErr: "otel.exporter"},
		{
			name:    "jaeger without endpoint",
			mutate:  func(c *config.Config) { c.OTEL.Exporter = config.ExporterJaeger },
			wantErr: "otel.jaeger_endpoint",
		},
		{
			name: "otlp with endpoint",
			mutate: func(c *config.Config) {
				c.OTEL.Exporter = config.ExporterOTLP
				c.OTEL.OTLPEndpoint = "localhost:4317"
			},
		},
		{name: "bad prometheus port", mutate: func(c *config.Config) { c.OTEL.PrometheusPort = "99999" }, wantErr: "otel.prometheus_port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
