package infra

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string   `envconfig:"APP_ENV" default:"development"`
	Port               string   `envconfig:"PORT" default:"8080"`
	LogLevel           string   `envconfig:"LOG_LEVEL"`
	PageTitle          string   `envconfig:"PAGE_TITLE" default:"AI Horror Story Video Generator"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS"`

	HTTPReadTimeoutSeconds  int `envconfig:"HTTP_READ_TIMEOUT_SECONDS" default:"15"`
	HTTPWriteTimeoutSeconds int `envconfig:"HTTP_WRITE_TIMEOUT_SECONDS" default:"30"`
	HTTPIdleTimeoutSeconds  int `envconfig:"HTTP_IDLE_TIMEOUT_SECONDS" default:"60"`

	HTTPReadTimeout  time.Duration `ignored:"true"`
	HTTPWriteTimeout time.Duration `ignored:"true"`
	HTTPIdleTimeout  time.Duration `ignored:"true"`
	Level            zerolog.Level `ignored:"true"`
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if p, err := strconv.Atoi(cfg.Port); err != nil || p <= 0 || p > 65535 {
		return nil, fmt.Errorf("PORT must be a valid TCP port, got %q", cfg.Port)
	}

	timeouts := []struct {
		name    string
		seconds int
		dst     *time.Duration
	}{
		{"HTTP_READ_TIMEOUT_SECONDS", cfg.HTTPReadTimeoutSeconds, &cfg.HTTPReadTimeout},
		{"HTTP_WRITE_TIMEOUT_SECONDS", cfg.HTTPWriteTimeoutSeconds, &cfg.HTTPWriteTimeout},
		{"HTTP_IDLE_TIMEOUT_SECONDS", cfg.HTTPIdleTimeoutSeconds, &cfg.HTTPIdleTimeout},
	}
	for _, t := range timeouts {
		if t.seconds <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %d", t.name, t.seconds)
		}
		*t.dst = time.Duration(t.seconds) * time.Second
	}

	level, err := resolveLevel(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg.Level = level

	cfg.CORSAllowedOrigins = normalizeOrigins(cfg.CORSAllowedOrigins)

	return &cfg, nil
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func resolveLevel(appEnv, raw string) (zerolog.Level, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if appEnv == "development" {
			return zerolog.DebugLevel, nil
		}
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(raw))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	seen := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}
