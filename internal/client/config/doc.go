// Package config loads runtime configuration for the GoalKeeper client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config (JSON, or YAML by .yaml/.yml extension).
//  3. Environment: GOALKEEPER_API_BASE_URL, GOALKEEPER_DB_PATH.
//  4. Command-line flags (see (*Config).FlagSet), which override earlier values.
//
// # File schema
//
//	{
//	  "api_base_url": "https://goals.example.com/api",
//	  "db_path": "goalkeeper.db",
//	  "request_timeout": "10s",
//	  "online_check_interval": "15s",
//	  "log_format": "text",
//	  "log_level": "warn"
//	}
package config
