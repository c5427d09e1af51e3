package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/dmitrijs2005/goalkeeper/internal/flagx"
)

// Environment variables read by Load.
const (
	EnvAPIBaseURL = "GOALKEEPER_API_BASE_URL"
	EnvDBPath     = "GOALKEEPER_DB_PATH"
)

// Config holds runtime settings for the GoalKeeper client.
//
// Fields:
//   - APIBaseURL: base URL of the goals REST API (scheme + host + optional prefix).
//   - DBPath: sqlite file holding the persisted credentials.
//   - RequestTimeout: upper bound for a single API call.
//   - OnlineCheckInterval: how often the shell checks server reachability.
//   - LogFormat / LogLevel: see logging.New.
type Config struct {
	APIBaseURL          string
	DBPath              string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogFormat           string
	LogLevel            string

	configFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:4000/api"
	c.DBPath = "goalkeeper.db"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 15 * time.Second
	c.LogFormat = "text"
	c.LogLevel = "warn"
}

// Load builds a Config from defaults, then the optional config file named by
// -c/-config in args, then environment variables. Command-line flags are
// applied later by parsing FlagSet, so they take precedence over everything.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	cfg.configFile = flagx.ConfigFileFlag(args)
	if cfg.configFile != "" {
		if err := parseFile(cfg, cfg.configFile); err != nil {
			return nil, err
		}
	}

	parseEnv(cfg, getenv)
	return cfg, nil
}

// LoadConfig is Load over the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], os.Getenv)
}

func parseEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api base url %q: scheme must be http or https", c.APIBaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid api base url %q: missing host", c.APIBaseURL)
	}
	if c.DBPath == "" {
		return errors.New("db path is required")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.OnlineCheckInterval <= 0 {
		return errors.New("online check interval must be positive")
	}
	return nil
}
