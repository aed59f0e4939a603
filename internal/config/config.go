// Package config loads settings for the gpswox command from a YAML file and
// GPSWOX_* environment variables. The library itself takes a ClientConfig
// and never reads files or the environment.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding file values.
const (
	EnvConfig   = "GPSWOX_CONFIG"
	EnvBaseURL  = "GPSWOX_BASE_URL"
	EnvAPIHash  = "GPSWOX_API_HASH"
	EnvEmail    = "GPSWOX_EMAIL"
	EnvTimeout  = "GPSWOX_TIMEOUT"
	EnvInsecure = "GPSWOX_INSECURE"
	EnvLogLevel = "GPSWOX_LOG_LEVEL"
)

// Config holds the command settings.
type Config struct {
	BaseURL            string        `yaml:"baseURL"`
	APIHash            string        `yaml:"apiHash"`
	Email              string        `yaml:"email"`
	Timeout            time.Duration `yaml:"timeout"`
	InsecureSkipVerify bool          `yaml:"insecureSkipVerify"`
	LogLevel           string        `yaml:"logLevel"`
}

// Load reads the YAML file at path, if any, then applies environment
// overrides. With optional set, a missing file is not an error.
func Load(path string, optional bool) (*Config, error) {
	cfg := &Config{
		LogLevel: "warn",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", path)
			}
		case optional && errors.Is(err, fs.ErrNotExist):
		default:
			return nil, errors.Wrap(err, "read config file")
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvAPIHash); v != "" {
		cfg.APIHash = v
	}
	if v := os.Getenv(EnvEmail); v != "" {
		cfg.Email = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvTimeout)
		}
		cfg.Timeout = timeout
	}
	if v := os.Getenv(EnvInsecure); v != "" {
		insecure, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvInsecure)
		}
		cfg.InsecureSkipVerify = insecure
	}

	return nil
}

// Validate reports settings the command cannot run without.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.Newf("base URL is required: set baseURL in the config file, %s or --base-url", EnvBaseURL)
	}
	if c.Timeout < 0 {
		return errors.Newf("timeout must not be negative, got %s", c.Timeout)
	}

	return nil
}

// DefaultPath returns the default location of the config file.
func DefaultPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "gpswox", "config.yaml")
}
