package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimdaga/gcp-hcp-cli/cmd/gcphcp/handlers"
)

func TestInfra(t *testing.T) {
	var global handlers.GlobalOptions
	cmd := Infra(&global)

	require.NotNil(t, cmd)
	assert.Equal(t, "infra", cmd.Use)

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	assert.True(t, subcommands["create"])
	assert.True(t, subcommands["create-network"])
}

func TestInfraCreate_FlagDefaults(t *testing.T) {
	var global handlers.GlobalOptions
	cmd := infraCreate(&global)

	for _, name := range []string{"project", "oidc-jwks-file", "output-signing-key", "output-jwks", "output-iam-config"} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "Flag %s not found", name)
		assert.Equal(t, "", flag.DefValue)
	}
}

func TestInfraCreate_RequiresInfraID(t *testing.T) {
	var global handlers.GlobalOptions
	cmd := infraCreate(&global)

	assert.Error(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"my-infra"}))
}

func TestInfraCreateNetwork_FlagDefaults(t *testing.T) {
	var global handlers.GlobalOptions
	cmd := infraCreateNetwork(&global)

	assert.Equal(t, "us-central1", cmd.Flags().Lookup("region").DefValue)
	assert.Equal(t, "", cmd.Flags().Lookup("vpc-cidr").DefValue)
	require.NotNil(t, cmd.Flags().Lookup("output-infra-config"))
}
