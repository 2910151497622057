package config

import (
	"time"

	"github.com/essaehaan/Profile/internal/logging"
)

// Config holds runtime settings for the academy client.
//
// Fields:
//   - APIBaseURL: root URL of the backend REST API.
//   - DatabasePath: SQLite file that keeps the stored credential.
//   - RequestTimeout: upper bound for a single backend request.
//   - AutoCloseDelay: how long the purchase success screen stays open.
//   - ConfirmDelay: processing time of the simulated purchase confirmation.
//   - LogLevel, LogFormat: diagnostics logger settings (see package logging).
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	AutoCloseDelay time.Duration
	ConfirmDelay   time.Duration
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:4000"
	c.DatabasePath = "academy_client.db"
	c.RequestTimeout = 15 * time.Second
	c.AutoCloseDelay = 3 * time.Second
	c.ConfirmDelay = 2 * time.Second
	c.LogLevel = "warn"
	c.LogFormat = logging.FormatText
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
