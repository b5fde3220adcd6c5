// Package config handles the gcphcp CLI configuration file.
//
// Configuration is loaded once per invocation into an explicit struct
// and passed down to handlers; nothing reads environment or file state
// at arbitrary depth. Precedence for every field is: environment
// override, then config file value, then built-in default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the management API endpoint used when neither
// the environment nor the config file provides one.
const DefaultEndpoint = "http://localhost:8000"

// Settable configuration keys, as accepted by `gcphcp config set`.
const (
	KeyAPIEndpoint      = "api_endpoint"
	KeyAPIToken         = "api_token"
	KeyDefaultProject   = "default_project"
	KeyHypershiftBinary = "hypershift_binary"
	KeyOutput           = "output"
)

// Config holds the persisted CLI settings.
type Config struct {
	// APIEndpoint is the management API base URL.
	// Environment override: GCPHCP_API_ENDPOINT.
	APIEndpoint string `yaml:"api_endpoint,omitempty"`

	// APIToken is the bearer token for the management API.
	// Environment override: GCPHCP_API_TOKEN.
	APIToken string `yaml:"api_token,omitempty"`

	// DefaultProject is the GCP project used when --project is not
	// given. Environment override: GCPHCP_PROJECT.
	DefaultProject string `yaml:"default_project,omitempty"`

	// HypershiftBinary is an explicit path to the hypershift binary.
	// Environment override: HYPERSHIFT_BINARY (handled by the
	// hypershift package, which owns the full lookup order).
	HypershiftBinary string `yaml:"hypershift_binary,omitempty"`

	// Output is the default output format (table, json, yaml, csv,
	// value).
	Output string `yaml:"output,omitempty"`
}

// Path returns the config file location: $GCPHCP_CONFIG when set,
// otherwise ~/.config/gcphcp/config.yaml.
func Path() string {
	if p := os.Getenv("GCPHCP_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "gcphcp", "config.yaml")
}

// Load reads the configuration file and applies environment
// overrides. A missing file yields a zero config, not an error.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("GCPHCP_API_ENDPOINT"); v != "" {
		cfg.APIEndpoint = v
	}
	if v := os.Getenv("GCPHCP_API_TOKEN"); v != "" {
		cfg.APIToken = v
	}
	if v := os.Getenv("GCPHCP_PROJECT"); v != "" {
		cfg.DefaultProject = v
	}
	if cfg.APIEndpoint == "" {
		cfg.APIEndpoint = DefaultEndpoint
	}

	return cfg, nil
}

// Read reads the configuration file verbatim, without environment
// overrides or defaults. Used when editing the file in place so that
// ambient state never gets persisted.
func Read(path string) (*Config, error) {
	var cfg Config

	// #nosec G304
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// No config file is a valid state.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	return &cfg, nil
}

// Save writes the configuration back to path, creating parent
// directories as needed. The file may contain a token, hence 0600.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Get returns the value of a settable key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyAPIEndpoint:
		return c.APIEndpoint, nil
	case KeyAPIToken:
		return c.APIToken, nil
	case KeyDefaultProject:
		return c.DefaultProject, nil
	case KeyHypershiftBinary:
		return c.HypershiftBinary, nil
	case KeyOutput:
		return c.Output, nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}

// Set updates the value of a settable key.
func (c *Config) Set(key, value string) error {
	switch key {
	case KeyAPIEndpoint:
		c.APIEndpoint = value
	case KeyAPIToken:
		c.APIToken = value
	case KeyDefaultProject:
		c.DefaultProject = value
	case KeyHypershiftBinary:
		c.HypershiftBinary = value
	case KeyOutput:
		c.Output = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

// Keys lists the settable configuration keys.
func Keys() []string {
	return []string{KeyAPIEndpoint, KeyAPIToken, KeyDefaultProject, KeyHypershiftBinary, KeyOutput}
}
