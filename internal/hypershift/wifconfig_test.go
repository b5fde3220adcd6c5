package hypershift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		"projectId":     "my-project",
		"projectNumber": "123456789",
		"infraId":       "my-infra",
		"workloadIdentityPool": map[string]any{
			"poolId":     "my-pool",
			"providerId": "my-provider",
		},
		"serviceAccounts": map[string]any{
			"ctrlplane-op":  "sa1@example.com",
			"nodepool-mgmt": "sa2@example.com",
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()
	require.NoError(t, Validate(validConfig()))
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	require.NoError(t, Validate(cfg))
	require.NoError(t, Validate(cfg))
}

func TestValidate_MissingFields(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(Config)
		missing string
	}{
		{"projectId", func(c Config) { delete(c, "projectId") }, "projectId"},
		{"projectNumber", func(c Config) { delete(c, "projectNumber") }, "projectNumber"},
		{"infraId", func(c Config) { delete(c, "infraId") }, "infraId"},
		{"workloadIdentityPool", func(c Config) { delete(c, "workloadIdentityPool") }, "workloadIdentityPool"},
		{"serviceAccounts", func(c Config) { delete(c, "serviceAccounts") }, "serviceAccounts"},
		{
			"poolId",
			func(c Config) { delete(c["workloadIdentityPool"].(map[string]any), "poolId") },
			"workloadIdentityPool.poolId",
		},
		{
			"providerId",
			func(c Config) { delete(c["workloadIdentityPool"].(map[string]any), "providerId") },
			"workloadIdentityPool.providerId",
		},
		{
			"ctrlplane-op",
			func(c Config) { delete(c["serviceAccounts"].(map[string]any), "ctrlplane-op") },
			"serviceAccounts.ctrlplane-op",
		},
		{
			"nodepool-mgmt",
			func(c Config) { delete(c["serviceAccounts"].(map[string]any), "nodepool-mgmt") },
			"serviceAccounts.nodepool-mgmt",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.missing, verr.Missing)
		})
	}
}

func TestValidate_Empty(t *testing.T) {
	t.Parallel()
	require.Error(t, Validate(Config{}))
}

func TestToWorkloadIdentity(t *testing.T) {
	t.Parallel()
	wi := ToWorkloadIdentity(validConfig())

	assert.Equal(t, "123456789", wi.ProjectNumber)
	assert.Equal(t, "my-pool", wi.PoolID)
	assert.Equal(t, "my-provider", wi.ProviderID)
	assert.Equal(t, "sa1@example.com", wi.ServiceAccountsRef.ControlPlaneEmail)
	assert.Equal(t, "sa2@example.com", wi.ServiceAccountsRef.NodePoolEmail)
}

func TestToWorkloadIdentity_EmptyConfig(t *testing.T) {
	t.Parallel()
	wi := ToWorkloadIdentity(Config{})

	assert.Nil(t, wi.ProjectNumber)
	assert.Empty(t, wi.PoolID)
	assert.Empty(t, wi.ProviderID)
}

func TestConfigInfraID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "my-infra", validConfig().InfraID())
	assert.Empty(t, Config{}.InfraID())
	assert.Empty(t, Config{"infraId": 42}.InfraID())
}
