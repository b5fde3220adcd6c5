package handlers

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/jimdaga/gcp-hcp-cli/internal/api"
	"github.com/jimdaga/gcp-hcp-cli/internal/config"
	"github.com/jimdaga/gcp-hcp-cli/internal/hypershift"
)

// fakeAPI is an in-memory Client recording mutations.
type fakeAPI struct {
	clusters     []api.Cluster
	nodepools    []api.NodePool
	statusDetail *api.ClusterStatusDetail
	statusErr    error

	createdCluster  *api.ClusterCreate
	createdNodePool *api.NodePoolCreate
	deletedCluster  string
	deletedNodePool string
}

func (f *fakeAPI) ListClusters(_ context.Context, _, _ int, _ string) (*api.ClusterList, error) {
	return &api.ClusterList{Clusters: f.clusters, Total: len(f.clusters)}, nil
}

func (f *fakeAPI) GetCluster(_ context.Context, id string) (*api.Cluster, error) {
	for i := range f.clusters {
		if f.clusters[i].ID == id {
			return &f.clusters[i], nil
		}
	}
	return nil, &api.RequestError{StatusCode: http.StatusNotFound, Message: "not found"}
}

func (f *fakeAPI) GetClusterStatus(_ context.Context, _ string) (*api.ClusterStatusDetail, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.statusDetail, nil
}

func (f *fakeAPI) CreateCluster(_ context.Context, payload *api.ClusterCreate) (*api.Cluster, error) {
	f.createdCluster = payload
	return &api.Cluster{
		ID:     "11111111-2222-3333-4444-555555555555",
		Name:   payload.Name,
		Status: &api.Status{Phase: api.PhasePending},
	}, nil
}

func (f *fakeAPI) DeleteCluster(_ context.Context, id string) error {
	f.deletedCluster = id
	return nil
}

func (f *fakeAPI) ListNodePools(_ context.Context, clusterID string, _ int) (*api.NodePoolList, error) {
	var pools []api.NodePool
	for _, np := range f.nodepools {
		if clusterID == "" || np.ClusterID == clusterID {
			pools = append(pools, np)
		}
	}
	return &api.NodePoolList{NodePools: pools, Total: len(pools)}, nil
}

func (f *fakeAPI) GetNodePool(_ context.Context, id string) (*api.NodePool, error) {
	for i := range f.nodepools {
		if f.nodepools[i].ID == id {
			return &f.nodepools[i], nil
		}
	}
	return nil, &api.RequestError{StatusCode: http.StatusNotFound, Message: "not found"}
}

func (f *fakeAPI) CreateNodePool(_ context.Context, payload *api.NodePoolCreate) (*api.NodePool, error) {
	f.createdNodePool = payload
	return &api.NodePool{
		ID:        "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
		Name:      payload.Name,
		ClusterID: payload.ClusterID,
	}, nil
}

func (f *fakeAPI) DeleteNodePool(_ context.Context, id string) error {
	f.deletedNodePool = id
	return nil
}

// fakeProvisioner is a hypershift.Tool returning canned output.
type fakeProvisioner struct {
	iamConfig   hypershift.Config
	iamErr      error
	infraConfig hypershift.Config
	infraErr    error
	gotIAM      hypershift.IAMOptions
	gotInfra    hypershift.InfraOptions
}

func (f *fakeProvisioner) CreateIAM(_ context.Context, opts hypershift.IAMOptions) (hypershift.Config, error) {
	f.gotIAM = opts
	return f.iamConfig, f.iamErr
}

func (f *fakeProvisioner) CreateInfra(_ context.Context, opts hypershift.InfraOptions) (hypershift.Config, error) {
	f.gotInfra = opts
	return f.infraConfig, f.infraErr
}

func validIAMConfig() hypershift.Config {
	return hypershift.Config{
		"projectId":     "my-project",
		"projectNumber": "123456789",
		"infraId":       "my-infra",
		"workloadIdentityPool": map[string]any{
			"poolId":     "my-infra-pool",
			"providerId": "my-infra-provider",
		},
		"serviceAccounts": map[string]any{
			hypershift.ServiceAccountControlPlane: "cp@my-project.iam.gserviceaccount.com",
			hypershift.ServiceAccountNodePool:     "np@my-project.iam.gserviceaccount.com",
		},
	}
}

// withFakes swaps the factory variables for one test and returns the
// buffer capturing stdout.
func withFakes(t *testing.T, f *fakeAPI) *bytes.Buffer {
	t.Helper()
	origLoad := loadConfig
	origClient := newClient
	origOut := stdout
	origTTY := stdinIsTTY
	t.Cleanup(func() {
		loadConfig = origLoad
		newClient = origClient
		stdout = origOut
		stdinIsTTY = origTTY
	})

	loadConfig = func() (*config.Config, error) {
		return &config.Config{
			APIEndpoint:    "http://api.test",
			DefaultProject: "my-project",
		}, nil
	}
	newClient = func(_, _ string) Client { return f }
	stdinIsTTY = func() bool { return false }

	var buf bytes.Buffer
	stdout = &buf
	return &buf
}

// withTool swaps the hypershift tool factory for one test.
func withTool(t *testing.T, tool hypershift.Tool) {
	t.Helper()
	orig := newTool
	t.Cleanup(func() { newTool = orig })
	newTool = func(_ string, _ bool) (hypershift.Tool, error) {
		return tool, nil
	}
}
