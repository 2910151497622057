// Package config loads runtime configuration for the academy client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: API_BASE_URL, then VITE_API_BASE_URL.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL
//	-d string   local SQLite database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:4000",
//	  "database_path": "academy_client.db",
//	  "request_timeout": "15s",
//	  "auto_close_delay": "3s",
//	  "confirm_delay": "2s",
//	  "log_level": "info",
//	  "log_format": "json"
//	}
package config
