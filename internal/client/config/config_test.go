package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:4000/api", c.APIBaseURL)
	assert.Equal(t, "goalkeeper.db", c.DBPath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 15*time.Second, c.OnlineCheckInterval)
	require.NoError(t, c.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	jsonPath := writeTemp(t, "cfg.json", `{
		"api_base_url": "http://file.example/api",
		"db_path": "file.db",
		"request_timeout": "3s",
		"log_format": "json"
	}`)

	t.Run("no file, no env", func(t *testing.T) {
		cfg, err := Load(nil, noEnv)
		require.NoError(t, err)

		want := &Config{}
		want.LoadDefaults()
		assert.Empty(t, cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})))
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		cfg, err := Load([]string{"shell", "-c", jsonPath}, noEnv)
		require.NoError(t, err)

		assert.Equal(t, "http://file.example/api", cfg.APIBaseURL)
		assert.Equal(t, "file.db", cfg.DBPath)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, 15*time.Second, cfg.OnlineCheckInterval, "missing keys keep defaults")
	})

	t.Run("env overlays file", func(t *testing.T) {
		cfg, err := Load([]string{"-config", jsonPath}, envOf(map[string]string{
			EnvAPIBaseURL: "https://env.example",
		}))
		require.NoError(t, err)

		assert.Equal(t, "https://env.example", cfg.APIBaseURL)
		assert.Equal(t, "file.db", cfg.DBPath)
	})

	t.Run("flags overlay env", func(t *testing.T) {
		cfg, err := Load([]string{"-c", jsonPath}, envOf(map[string]string{
			EnvAPIBaseURL: "https://env.example",
			EnvDBPath:     "env.db",
		}))
		require.NoError(t, err)

		fs := cfg.FlagSet()
		require.NoError(t, fs.Parse([]string{"-c", jsonPath, "-a", "https://flag.example", "-t", "1s"}))

		assert.Equal(t, "https://flag.example", cfg.APIBaseURL)
		assert.Equal(t, "env.db", cfg.DBPath)
		assert.Equal(t, time.Second, cfg.RequestTimeout)
	})
}

func TestLoad_YAML(t *testing.T) {
	path := writeTemp(t, "cfg.yaml", "api_base_url: https://yaml.example/api\nonline_check_interval: 1m\nlog_level: debug\n")

	cfg, err := Load([]string{"--config=" + path}, noEnv)
	require.NoError(t, err)

	assert.Equal(t, "https://yaml.example/api", cfg.APIBaseURL)
	assert.Equal(t, time.Minute, cfg.OnlineCheckInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FileErrors(t *testing.T) {
	_, err := Load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")}, noEnv)
	require.Error(t, err)

	bad := writeTemp(t, "bad.json", `{ this is not valid json`)
	_, err = Load([]string{"-c", bad}, noEnv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestFlagSet_RejectsBadDuration(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	fs := cfg.FlagSet()
	fs.SetOutput(io.Discard)
	require.Error(t, fs.Parse([]string{"-t", "abc"}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "no scheme", mutate: func(c *Config) { c.APIBaseURL = "localhost:4000" }},
		{name: "ftp scheme", mutate: func(c *Config) { c.APIBaseURL = "ftp://host" }},
		{name: "no host", mutate: func(c *Config) { c.APIBaseURL = "http://" }},
		{name: "empty db", mutate: func(c *Config) { c.DBPath = "" }},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }},
		{name: "zero interval", mutate: func(c *Config) { c.OnlineCheckInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			c.LoadDefaults()
			tt.mutate(c)
			if tt.ok {
				require.NoError(t, c.Validate())
			} else {
				require.Error(t, c.Validate())
			}
		})
	}
}
