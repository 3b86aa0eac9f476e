package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ExporterNone   = "none"
	ExporterJaeger = "jaeger"
	ExporterOTLP   = "otlp"
)

const defaultPath = "./config/config.yml"

type (
	// Config -.
	Config struct {
		App    `yaml:"app"`
		Server `yaml:"server"`
		Log    `yaml:"logger"`
		Eden   `yaml:"eden"`
		Relay  `yaml:"relay"`
		OTEL   `yaml:"otel"`
	}

	// App -.
	App struct {
		Name    string `env-default:"voice-relay" yaml:"name"    env:"APP_NAME"`
		Version string `env-default:"dev"         yaml:"version" env:"APP_VERSION"`
	}

	// Server -.
	Server struct {
		Port         string        `env-default:"8000" yaml:"port"          env:"PORT"`
		WriteTimeout time.Duration `env-default:"75s"  yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	}

	// Log -.
	Log struct {
		Level string `env-default:"info" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// Eden is the upstream speech-to-speech API. The key is only ever read
	// from the environment.
	Eden struct {
		URL     string        `env-default:"https://api.edenai.run/v2/audio/speech_to_speech" yaml:"url" env:"EDEN_AI_URL"`
		APIKey  string        `yaml:"-" env:"EDEN_AI_API_KEY"`
		Timeout time.Duration `env-default:"60s" yaml:"timeout" env:"EDEN_AI_TIMEOUT"`
	}

	// Relay -.
	Relay struct {
		StrictValidation bool  `env-default:"true"     yaml:"strict_validation" env:"RELAY_STRICT_VALIDATION"`
		MaxUploadBytes   int64 `env-default:"33554432" yaml:"max_upload_bytes"  env:"RELAY_MAX_UPLOAD_BYTES"`
	}

	// OTEL -.
	OTEL struct {
		Exporter       string `env-default:"none" yaml:"exporter"        env:"OTEL_EXPORTER"`
		JaegerEndpoint string `yaml:"jaeger_endpoint" env:"JAEGER_ENDPOINT"`
		OTLPEndpoint   string `yaml:"otlp_endpoint"   env:"OTLP_ENDPOINT"`
		PrometheusPort string `yaml:"prometheus_port" env:"PROMETHEUS_PORT"`
	}
)

// NewConfig returns app config.
func NewConfig() (*Config, error) {
	return Load(defaultPath)
}

// Load reads the yaml file at path when it exists, environment otherwise.
// Environment variables always win over the file.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return cfg, nil
}

// Validate -.
func (c *Config) Validate() error {
	return validation.Errors{
		"server.port": validation.Validate(c.Server.Port,
			validation.Required,
			is.Port,
		),
		"server.write_timeout": validation.Validate(c.Server.WriteTimeout,
			validation.Required,
			validation.Min(c.Eden.Timeout).Error("must outlive the upstream timeout"),
		),
		"logger.log_level": validation.Validate(c.Log.Level,
			validation.Required,
			validation.In("debug", "info", "warn", "error"),
		),
		"eden.url": validation.Validate(c.Eden.URL,
			validation.Required,
			validation.By(validateUpstreamURL),
		),
		"eden.timeout": validation.Validate(c.Eden.Timeout,
			validation.Required,
			validation.Min(time.Second),
		),
		"relay.max_upload_bytes": validation.Validate(c.Relay.MaxUploadBytes,
			validation.Required,
			validation.Min(int64(1)),
		),
		"otel.exporter": validation.Validate(c.OTEL.Exporter,
			validation.Required,
			validation.In(ExporterNone, ExporterJaeger, ExporterOTLP),
		),
		"otel.jaeger_endpoint": validation.Validate(c.OTEL.JaegerEndpoint,
			validation.When(c.OTEL.Exporter == ExporterJaeger, validation.Required, is.URL),
		),
		"otel.otlp_endpoint": validation.Validate(c.OTEL.OTLPEndpoint,
			validation.When(c.OTEL.Exporter == ExporterOTLP, validation.Required, is.DialString),
		),
		"otel.prometheus_port": validation.Validate(c.OTEL.PrometheusPort, is.Port),
	}.Filter()
}

func validateUpstreamURL(value interface{}) error {
	raw, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return validation.NewError("validation_invalid_scheme", "URL must use http or https scheme")
	}

	if parsed.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}

	return nil
}
