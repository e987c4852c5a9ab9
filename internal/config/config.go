// Package config loads runtime settings from the environment, after merging
// any .env file found in the working directory.
package config

import (
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const Production = "production"

const devSessionSecret = "employee-admin-dev-secret-change-me"

type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	APIBaseURL    string        `env:"API_BASE_URL" envDefault:"http://localhost:4000"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	BasePath      string        `env:"BASE_PATH" envDefault:"/employees"`
	SessionSecret string        `env:"SESSION_SECRET"`
	Environment   string        `env:"APP_ENV" envDefault:"development"`
	MetricsPath   string        `env:"METRICS_PATH" envDefault:"/metrics"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`

	FakeAPI FakeAPIOptions
}

// FakeAPIOptions configure cmd/fakeapi only.
type FakeAPIOptions struct {
	Port   string `env:"FAKE_API_PORT" envDefault:"4000"`
	DBPath string `env:"DB_PATH" envDefault:"employees.db"`
}

// Load reads .env (a missing file is not an error) and then the process
// environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	if c.SessionSecret == "" && !c.IsProduction() {
		c.SessionSecret = devSessionSecret
	}
	c.BasePath = strings.TrimRight(c.BasePath, "/")
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) IsProduction() bool { return c.Environment == Production }

func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Errorf("API_BASE_URL must be an absolute URL, got %q", c.APIBaseURL)
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		return errors.Errorf("BASE_PATH must start with /, got %q", c.BasePath)
	}
	if !strings.HasPrefix(c.MetricsPath, "/") {
		return errors.Errorf("METRICS_PATH must start with /, got %q", c.MetricsPath)
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required in production")
	}
	if c.APITimeout <= 0 {
		return errors.Errorf("API_TIMEOUT must be positive, got %s", c.APITimeout)
	}
	return nil
}

func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Logger writes JSON in production and text otherwise.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
