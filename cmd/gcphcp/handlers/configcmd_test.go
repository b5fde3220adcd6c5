package handlers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimdaga/gcp-hcp-cli/internal/config"
)

func withConfigFile(t *testing.T) (string, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")

	origPath := configPath
	origLoad := loadConfig
	origOut := stdout
	t.Cleanup(func() {
		configPath = origPath
		loadConfig = origLoad
		stdout = origOut
	})
	configPath = func() string { return path }
	loadConfig = func() (*config.Config, error) { return config.LoadFile(path) }

	var buf bytes.Buffer
	stdout = &buf
	return path, &buf
}

func TestConfigSetGet(t *testing.T) {
	path, buf := withConfigFile(t)

	require.NoError(t, ConfigSet(GlobalOptions{Quiet: true}, "default_project", "my-project"))
	require.NoError(t, ConfigSet(GlobalOptions{Quiet: true}, "hypershift_binary", "/opt/hypershift"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_project: my-project")

	buf.Reset()
	require.NoError(t, ConfigGet(GlobalOptions{}, "default_project"))
	assert.Equal(t, "my-project", strings.TrimSpace(buf.String()))
}

func TestConfigSet_UnknownKey(t *testing.T) {
	withConfigFile(t)
	err := ConfigSet(GlobalOptions{Quiet: true}, "bogus", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestConfigList_MasksToken(t *testing.T) {
	_, buf := withConfigFile(t)

	require.NoError(t, ConfigSet(GlobalOptions{Quiet: true}, "api_token", "supersecret9876"))

	buf.Reset()
	origClient := newClient
	t.Cleanup(func() { newClient = origClient })
	newClient = func(_, _ string) Client { return &fakeAPI{} }

	require.NoError(t, ConfigList(GlobalOptions{}))
	out := buf.String()
	assert.NotContains(t, out, "supersecret9876")
	assert.Contains(t, out, "****9876")
	assert.Contains(t, out, "api_endpoint")
}

func TestMaskToken(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", maskToken(""))
	assert.Equal(t, "***", maskToken("abc"))
	assert.Equal(t, "****6789", maskToken("0123456789"))
}
