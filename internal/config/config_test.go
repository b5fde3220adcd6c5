package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.APIEndpoint)
	assert.Empty(t, cfg.DefaultProject)
}

func TestLoadFile_Values(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_endpoint: https://hcp.example.com\ndefault_project: my-project\nhypershift_binary: /opt/bin/hypershift\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://hcp.example.com", cfg.APIEndpoint)
	assert.Equal(t, "my-project", cfg.DefaultProject)
	assert.Equal(t, "/opt/bin/hypershift", cfg.HypershiftBinary)
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_endpoint: https://from-file\ndefault_project: file-project\n"), 0o600))

	t.Setenv("GCPHCP_API_ENDPOINT", "https://from-env")
	t.Setenv("GCPHCP_PROJECT", "env-project")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env", cfg.APIEndpoint)
	assert.Equal(t, "env-project", cfg.DefaultProject)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_endpoint: [broken"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{APIEndpoint: "https://hcp.example.com", DefaultProject: "my-project"}
	require.NoError(t, cfg.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.APIEndpoint, loaded.APIEndpoint)
	assert.Equal(t, cfg.DefaultProject, loaded.DefaultProject)
}

func TestGetSet(t *testing.T) {
	cfg := &Config{}

	for _, key := range Keys() {
		require.NoError(t, cfg.Set(key, "value-"+key))
		got, err := cfg.Get(key)
		require.NoError(t, err)
		assert.Equal(t, "value-"+key, got)
	}

	require.Error(t, cfg.Set("bogus", "x"))
	_, err := cfg.Get("bogus")
	require.Error(t, err)
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("GCPHCP_CONFIG", "/tmp/custom.yaml")
	assert.Equal(t, "/tmp/custom.yaml", Path())
}
