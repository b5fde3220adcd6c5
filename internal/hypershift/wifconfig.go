package hypershift

import (
	"github.com/jimdaga/gcp-hcp-cli/internal/api"
)

// Service account keys in the tool's serviceAccounts map. Part of the
// tool's output contract.
const (
	ServiceAccountControlPlane = "ctrlplane-op"
	ServiceAccountNodePool     = "nodepool-mgmt"
)

// requiredFields are the top-level fields every WIF configuration
// must carry.
var requiredFields = []string{
	"projectId",
	"projectNumber",
	"infraId",
	"workloadIdentityPool",
	"serviceAccounts",
}

// Validate checks that a WIF configuration carries every required
// field, including the nested pool IDs and the two service account
// keys. A single omission fails closed; nothing is warn-and-continue.
// Validation is a pure function of the configuration's shape.
func Validate(cfg Config) error {
	for _, field := range requiredFields {
		if _, ok := cfg[field]; !ok {
			return &ValidationError{Missing: field}
		}
	}

	pool, _ := cfg["workloadIdentityPool"].(map[string]any)
	if _, ok := pool["poolId"]; !ok {
		return &ValidationError{Missing: "workloadIdentityPool.poolId"}
	}
	if _, ok := pool["providerId"]; !ok {
		return &ValidationError{Missing: "workloadIdentityPool.providerId"}
	}

	accounts, _ := cfg["serviceAccounts"].(map[string]any)
	if _, ok := accounts[ServiceAccountControlPlane]; !ok {
		return &ValidationError{Missing: "serviceAccounts." + ServiceAccountControlPlane}
	}
	if _, ok := accounts[ServiceAccountNodePool]; !ok {
		return &ValidationError{Missing: "serviceAccounts." + ServiceAccountNodePool}
	}

	return nil
}

// ToWorkloadIdentity flattens a validated WIF configuration into the
// shape embedded in a cluster creation spec: pool and provider IDs
// pulled up from the pool block, the two service account emails named
// explicitly.
func ToWorkloadIdentity(cfg Config) *api.WorkloadIdentity {
	pool, _ := cfg["workloadIdentityPool"].(map[string]any)
	accounts, _ := cfg["serviceAccounts"].(map[string]any)

	return &api.WorkloadIdentity{
		ProjectNumber: cfg["projectNumber"],
		PoolID:        stringField(pool, "poolId"),
		ProviderID:    stringField(pool, "providerId"),
		ServiceAccountsRef: api.ServiceAccountsRef{
			ControlPlaneEmail: stringField(accounts, ServiceAccountControlPlane),
			NodePoolEmail:     stringField(accounts, ServiceAccountNodePool),
		},
	}
}

// InfraID returns the infraId embedded in a configuration, or ""
// when absent.
func (c Config) InfraID() string {
	return stringField(c, "infraId")
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
