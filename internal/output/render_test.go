package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimdaga/gcp-hcp-cli/internal/api"
)

func plainFormatter() *Formatter {
	return New(&bytes.Buffer{}, FormatTable)
}

func TestClusterRows(t *testing.T) {
	t.Parallel()
	clusters := []api.Cluster{
		{
			ID:              "abc",
			Name:            "demo",
			TargetProjectID: "my-project",
			CreatedAt:       "2026-01-15T10:30:00Z",
			Status:          &api.Status{Phase: api.PhaseReady},
		},
		{ID: "def", Name: "bare"},
	}

	rows := ClusterRows(clusters)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"demo", "abc", "Ready", "my-project", "2026-01-15 10:30:00 UTC"}, rows[0])
	assert.Equal(t, []string{"bare", "def", "", "", ""}, rows[1])
}

func TestNodePoolRows(t *testing.T) {
	t.Parallel()
	pools := []api.NodePool{
		{
			ID:        "np1",
			Name:      "workers",
			ClusterID: "abc",
			Spec:      &api.NodePoolSpec{Replicas: 3},
			Status:    &api.Status{Phase: api.PhaseProgressing},
		},
	}

	rows := NodePoolRows(pools)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"workers", "np1", "abc", "3", "Progressing", ""}, rows[0])
}

func TestClusterDetails(t *testing.T) {
	t.Parallel()
	cluster := &api.Cluster{
		ID:              "abc",
		Name:            "demo",
		Description:     "a demo",
		TargetProjectID: "my-project",
		Generation:      2,
		Spec: &api.ClusterSpec{
			Platform: api.Platform{
				Type: "GCP",
				GCP: &api.GCPPlatform{
					ProjectID: "my-project",
					Region:    "us-central1",
					Network:   "net-1",
				},
			},
		},
		Status: &api.Status{
			Phase:              api.PhaseProgressing,
			ObservedGeneration: 1,
			Conditions: []api.Condition{
				{Type: "Available", Status: "False", Message: "control plane starting"},
			},
		},
	}

	pairs := ClusterDetails(plainFormatter(), cluster)

	assert.Contains(t, pairs, KV{Key: "Id", Value: "abc"})
	assert.Contains(t, pairs, KV{Key: "Description", Value: "a demo"})
	assert.Contains(t, pairs, KV{Key: "  GCP Region", Value: "us-central1"})
	assert.Contains(t, pairs, KV{Key: "  Network", Value: "net-1"})
	assert.Contains(t, pairs, KV{Key: "  Phase", Value: "Progressing"})
	assert.Contains(t, pairs, KV{Key: "  Generation", Value: "1 (desired: 2)"})
	assert.Contains(t, pairs, KV{Key: "  Available", Value: "False - control plane starting"})
}

func TestClusterDetails_GenerationUpToDate(t *testing.T) {
	t.Parallel()
	cluster := &api.Cluster{
		ID:         "abc",
		Generation: 3,
		Status:     &api.Status{Phase: api.PhaseReady, ObservedGeneration: 3},
	}

	pairs := ClusterDetails(plainFormatter(), cluster)
	assert.Contains(t, pairs, KV{Key: "  Generation", Value: "3 (up to date)"})
}

func TestClusterStatusDetails(t *testing.T) {
	t.Parallel()
	cluster := &api.Cluster{
		ID:              "abc",
		Name:            "demo",
		TargetProjectID: "my-project",
		Spec: &api.ClusterSpec{
			Platform: api.Platform{GCP: &api.GCPPlatform{Network: "net-1", Subnet: "sub-1"}},
		},
		Status: &api.Status{Phase: api.PhaseReady},
	}
	detail := &api.ClusterStatusDetail{
		ControllerStatus: []api.ControllerStatus{
			{
				ControllerName:     "hypershift-operator",
				ObservedGeneration: 4,
				Conditions:         []api.Condition{{Type: "Reconciled", Status: "True"}},
			},
		},
	}

	pairs := ClusterStatusDetails(plainFormatter(), cluster, detail)

	assert.Contains(t, pairs, KV{Key: "Cluster Name", Value: "demo"})
	assert.Contains(t, pairs, KV{Key: "  Endpoint Access", Value: "Private"})
	assert.Contains(t, pairs, KV{Key: "Controller 1", Value: "hypershift-operator"})
	assert.Contains(t, pairs, KV{Key: "  Observed Generation", Value: "4"})
	assert.Contains(t, pairs, KV{Key: "  Reconciled", Value: "True"})
}

func TestNodePoolDetails(t *testing.T) {
	t.Parallel()
	np := &api.NodePool{
		ID:        "np1",
		Name:      "workers",
		ClusterID: "abc",
		Spec: &api.NodePoolSpec{
			Replicas: 3,
			Platform: api.NodePoolPlatform{
				Type: "GCP",
				GCP: &api.GCPNodePoolSpec{
					InstanceType: "n2-standard-4",
					RootVolume:   api.RootVolume{Size: 100, Type: "pd-ssd"},
					Taints:       []api.Taint{{Key: "dedicated", Value: "gpu", Effect: "NoSchedule"}},
				},
			},
			Management: api.NodePoolManagement{AutoRepair: true, UpgradeType: "Replace"},
		},
	}

	pairs := NodePoolDetails(plainFormatter(), np)

	assert.Contains(t, pairs, KV{Key: "  Replicas", Value: "3"})
	assert.Contains(t, pairs, KV{Key: "  Instance Type", Value: "n2-standard-4"})
	assert.Contains(t, pairs, KV{Key: "  Root Volume", Value: "100GB pd-ssd"})
	assert.Contains(t, pairs, KV{Key: "  Taint", Value: "dedicated=gpu:NoSchedule"})
	assert.Contains(t, pairs, KV{Key: "  Auto Repair", Value: "true"})
}

func TestConditionMessageTruncation(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("x", 120)
	value := conditionValue(plainFormatter(), api.Condition{Type: "Available", Status: "False", Message: long})
	assert.Contains(t, value, "...")
	assert.Less(t, len(value), 100)
}
