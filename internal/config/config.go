package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the public grading API.
const DefaultEndpoint = "https://grader-a04u.onrender.com/api/grade"

// Config holds all repograde configuration.
type Config struct {
	// Endpoint is the URL of the grading API.
	Endpoint string `yaml:"endpoint"`

	// Timeout bounds a single submission. Grading a repository takes
	// minutes on the service side. Default: 120s.
	Timeout time.Duration `yaml:"timeout"`

	// ListenAddr is the address `repograde serve` binds to.
	ListenAddr string `yaml:"listen_addr"`

	// GlamourStyle selects the terminal markdown style ("dark", "light", "notty", ...).
	GlamourStyle string `yaml:"glamour_style"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
	File   string `yaml:"file"`   // empty means stderr (CLI) or discarded (TUI)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:     DefaultEndpoint,
		Timeout:      120 * time.Second,
		ListenAddr:   ":8080",
		GlamourStyle: "dark",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then REPOGRADE_* environment variables.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("REPOGRADE_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("REPOGRADE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("REPOGRADE_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("REPOGRADE_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("REPOGRADE_GLAMOUR_STYLE"); v != "" {
		c.GlamourStyle = v
	}
	if v := os.Getenv("REPOGRADE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("REPOGRADE_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("REPOGRADE_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.Endpoint)
	switch {
	case c.Endpoint == "":
		errs = append(errs, errors.New("endpoint is required"))
	case err != nil:
		errs = append(errs, fmt.Errorf("endpoint: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("endpoint must be an http(s) URL, got %q", c.Endpoint))
	case u.Host == "":
		errs = append(errs, fmt.Errorf("endpoint has no host: %q", c.Endpoint))
	}

	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	return errors.Join(errs...)
}
