package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/essaehaan/Profile/internal/flagx"
)

// Environment variables naming the backend. The VITE_ form is accepted so
// the web front-end's .env works for this client too.
const (
	EnvAPIBaseURL     = "API_BASE_URL"
	EnvViteAPIBaseURL = "VITE_API_BASE_URL"
)

// DotEnvFile is read from the working directory when present. Process
// environment variables take precedence over it.
const DotEnvFile = ".env"

func parseEnv(cfg *Config) {
	parseEnvFile(cfg, DotEnvFile)
}

// parseEnvFile applies the process environment, falling back to the
// dotenv file at path. Panics if the file exists but cannot be parsed.
func parseEnvFile(cfg *Config, path string) {
	if v, ok := flagx.LookupEnv(EnvAPIBaseURL, EnvViteAPIBaseURL); ok {
		cfg.APIBaseURL = v
		return
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		panic(err)
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		panic(err)
	}
	for _, name := range []string{EnvAPIBaseURL, EnvViteAPIBaseURL} {
		if v := strings.TrimSpace(vars[name]); v != "" {
			cfg.APIBaseURL = v
			return
		}
	}
}
