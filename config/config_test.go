package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "./trades.csv", cfg.Journal.Path)
	assert.Equal(t, "phi3", cfg.Analyst.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Analyst.BaseURL)

	d, err := cfg.Analyst.ParseTimeout()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, d)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing journal path",
			mutate:  func(c *Config) { c.Journal.Path = "" },
			wantErr: true,
			errMsg:  "journal.path is required",
		},
		{
			name:    "missing model",
			mutate:  func(c *Config) { c.Analyst.Model = "" },
			wantErr: true,
			errMsg:  "analyst.model is required",
		},
		{
			name:    "bad base url",
			mutate:  func(c *Config) { c.Analyst.BaseURL = "localhost:11434" },
			wantErr: true,
			errMsg:  "analyst.base_url",
		},
		{
			name:    "bad timeout",
			mutate:  func(c *Config) { c.Analyst.Timeout = "soon" },
			wantErr: true,
			errMsg:  "analyst.timeout",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Analyst.Timeout = "-1s" },
			wantErr: true,
			errMsg:  "must not be negative",
		},
		{
			name:   "empty timeout means no limit",
			mutate: func(c *Config) { c.Analyst.Timeout = "" },
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
			errMsg:  "log.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
			errMsg:  "log.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			cfg := Default()
			cfg.Journal.Path = "/var/lib/journal/trades.csv"
			cfg.Analyst.Model = "llama3"
			cfg.Analyst.Timeout = "45s"
			cfg.Trace.Enabled = true
			require.NoError(t, cfg.SaveToFile(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tradejournal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analyst:\n  model: mistral\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mistral", cfg.Analyst.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Analyst.BaseURL)
	assert.Equal(t, "./trades.csv", cfg.Journal.Path)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TRADEJOURNAL_ANALYST_MODEL", "gemma")
	t.Setenv("TRADEJOURNAL_JOURNAL_PATH", "/tmp/env-trades.csv")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemma", cfg.Analyst.Model)
	assert.Equal(t, "/tmp/env-trades.csv", cfg.Journal.Path)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  format: xml\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}
