package wif

import (
	"github.com/jimdaga/gcp-hcp-cli/internal/api"
)

// BuildClusterPayload assembles the cluster creation payload from a
// setup result and user-supplied metadata. Pure function; the
// description is omitted from the wire payload entirely when empty.
func BuildClusterPayload(name, projectID, region, infraID string, result *SetupResult, description string) *api.ClusterCreate {
	return &api.ClusterCreate{
		Name:            name,
		TargetProjectID: projectID,
		Description:     description,
		Spec: api.ClusterSpec{
			InfraID:                  infraID,
			IssuerURL:                result.IssuerURL,
			ServiceAccountSigningKey: result.SigningKeyBase64,
			Platform: api.Platform{
				Type: "GCP",
				GCP: &api.GCPPlatform{
					ProjectID:        projectID,
					Region:           region,
					WorkloadIdentity: result.WorkloadIdentity,
				},
			},
		},
	}
}
