package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to environment overrides, e.g.
// TRADEJOURNAL_ANALYST_MODEL.
const EnvPrefix = "TRADEJOURNAL"

// Config is the complete tradejournal configuration
type Config struct {
	Journal JournalConfig `json:"journal" yaml:"journal" mapstructure:"journal"`
	Analyst AnalystConfig `json:"analyst" yaml:"analyst" mapstructure:"analyst"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
	Trace   TraceConfig   `json:"trace" yaml:"trace" mapstructure:"trace"`
}

// JournalConfig locates the journal files
type JournalConfig struct {
	Path       string `json:"path" yaml:"path" mapstructure:"path"`
	SQLitePath string `json:"sqlite_path,omitempty" yaml:"sqlite_path,omitempty" mapstructure:"sqlite_path"`
}

// AnalystConfig points at the text generation service
type AnalystConfig struct {
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
	Model   string `json:"model" yaml:"model" mapstructure:"model"`
	Timeout string `json:"timeout" yaml:"timeout" mapstructure:"timeout"` // e.g. "2m", "90s"
}

// ParseTimeout converts Timeout to a duration. Empty means no limit.
func (a AnalystConfig) ParseTimeout() (time.Duration, error) {
	if a.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(a.Timeout)
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level"`
	Format string `json:"format" yaml:"format" mapstructure:"format"` // "console" or "json"
}

type TraceConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
}

// Load reads an optional config file, then applies TRADEJOURNAL_*
// environment overrides on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("journal.path", d.Journal.Path)
	v.SetDefault("journal.sqlite_path", d.Journal.SQLitePath)
	v.SetDefault("analyst.base_url", d.Analyst.BaseURL)
	v.SetDefault("analyst.model", d.Analyst.Model)
	v.SetDefault("analyst.timeout", d.Analyst.Timeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("trace.enabled", d.Trace.Enabled)
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// YAML renders the configuration for display.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Journal.Path == "" {
		return fmt.Errorf("journal.path is required")
	}
	if c.Analyst.Model == "" {
		return fmt.Errorf("analyst.model is required")
	}
	u, err := url.Parse(c.Analyst.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("analyst.base_url must be an http(s) URL")
	}
	d, err := c.Analyst.ParseTimeout()
	if err != nil {
		return fmt.Errorf("analyst.timeout: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("analyst.timeout must not be negative")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be 'console' or 'json'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			Path:       "./trades.csv",
			SQLitePath: "./trades.sqlite",
		},
		Analyst: AnalystConfig{
			BaseURL: "http://localhost:11434",
			Model:   "phi3",
			Timeout: "2m",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
