// Package config loads and validates application configuration.
//
// Precedence, lowest to highest: built-in defaults, optional YAML file,
// SETTINGSHUB_-prefixed environment variables (SETTINGSHUB_DATABASE_URL
// maps to database.url).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "SETTINGSHUB_"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Database    DatabaseConfig    `koanf:"database"`
	Log         LogConfig         `koanf:"log"`
	CORS        CORSConfig        `koanf:"cors"`
	Notify      NotifyConfig      `koanf:"notify"`
	SchemaCheck SchemaCheckConfig `koanf:"schemacheck"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              string        `koanf:"port"`
	MetricsPort       string        `koanf:"metrics_port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	URL             string        `koanf:"url" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `koanf:"connect_timeout"`
	ConnectAttempts int           `koanf:"connect_attempts"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// NotifyConfig holds settings for the settings-updated webhook sink.
type NotifyConfig struct {
	WebhookURL string        `koanf:"webhook_url" validate:"required,url"`
	Timeout    time.Duration `koanf:"timeout"`
}

// SchemaCheckConfig holds settings for the remote schema validation query
// and the rate limit on the public validate endpoint.
type SchemaCheckConfig struct {
	URL            string        `koanf:"url" validate:"required,url"`
	Timeout        time.Duration `koanf:"timeout"`
	RateLimitRPS   float64       `koanf:"rate_limit_rps" validate:"gt=0"`
	RateLimitBurst int           `koanf:"rate_limit_burst" validate:"gt=0"`
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              "8080",
			MetricsPort:       "9090",
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Database: DatabaseConfig{
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 5 * time.Minute,
			ConnectTimeout:  30 * time.Second,
			ConnectAttempts: 5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Notify: NotifyConfig{
			Timeout: 10 * time.Second,
		},
		SchemaCheck: SchemaCheckConfig{
			Timeout:        10 * time.Second,
			RateLimitRPS:   10,
			RateLimitBurst: 20,
		},
	}
}

// Load reads configuration from the optional YAML file at path and the
// environment, layered over the defaults, and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(key string) string {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		// The first underscore separates the section from the key;
		// keys themselves keep their underscores (DATABASE_MAX_OPEN_CONNS
		// maps to database.max_open_conns).
		return strings.Replace(key, "_", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
