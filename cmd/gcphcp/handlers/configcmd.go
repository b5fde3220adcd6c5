package handlers

import (
	"fmt"
	"strings"

	"github.com/jimdaga/gcp-hcp-cli/internal/config"
	"github.com/jimdaga/gcp-hcp-cli/internal/output"
)

// configPath is a factory variable so tests can redirect the config
// file.
var configPath = config.Path

// ConfigSet handles `gcphcp config set KEY VALUE`. The file is read
// verbatim and written back, so environment overrides never leak into
// it.
func ConfigSet(global GlobalOptions, key, value string) error {
	path := configPath()
	cfg, err := config.Read(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	if !global.Quiet {
		fmt.Fprintf(stdout, "Updated %s in %s\n", key, path)
	}
	return nil
}

// ConfigGet handles `gcphcp config get KEY`. It reports the effective
// value, environment overrides included.
func ConfigGet(global GlobalOptions, key string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	value, err := cfg.Get(key)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, value)
	return nil
}

// ConfigList handles `gcphcp config list`.
func ConfigList(global GlobalOptions) error {
	c, err := NewContext(global)
	if err != nil {
		return err
	}

	pairs := make([]output.KV, 0, len(config.Keys()))
	rows := make([][]string, 0, len(config.Keys()))
	for _, key := range config.Keys() {
		value, err := c.Config.Get(key)
		if err != nil {
			return err
		}
		if key == config.KeyAPIToken {
			value = maskToken(value)
		}
		rows = append(rows, []string{key, value})
		if value == "" {
			value = "(unset)"
		}
		pairs = append(pairs, output.KV{Key: key, Value: value})
	}

	if c.Formatter.Format() == output.FormatTable {
		return c.Formatter.Details("Configuration ("+configPath()+")", pairs, nil)
	}
	return c.Formatter.List("Configuration", []string{"key", "value"}, rows, rows)
}

// maskToken hides all but a short suffix of a credential.
func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return "****" + token[len(token)-4:]
}
