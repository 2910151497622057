package config

import (
	"encoding/json"
	"os"

	"github.com/essaehaan/Profile/internal/flagx"
	"github.com/essaehaan/Profile/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration, so "3s" and integer nanoseconds are both accepted.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	AutoCloseDelay timex.Duration `json:"auto_close_delay"`
	ConfirmDelay   timex.Duration `json:"confirm_delay"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Keys
// absent from the file keep their current value. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.AutoCloseDelay.Duration > 0 {
		cfg.AutoCloseDelay = jc.AutoCloseDelay.Duration
	}
	if jc.ConfirmDelay.Duration > 0 {
		cfg.ConfirmDelay = jc.ConfirmDelay.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
