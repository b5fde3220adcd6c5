package output

import (
	"fmt"
	"strconv"

	"github.com/jimdaga/gcp-hcp-cli/internal/api"
)

// conditionMessageMax truncates very long condition messages in
// detail views.
const conditionMessageMax = 80

// ClusterColumns are the list view columns for clusters.
func ClusterColumns() []string {
	return []string{"name", "id", "status", "project", "created"}
}

// ClusterRows projects clusters onto the list view columns. IDs are
// shown in full so they can be pasted into other commands.
func ClusterRows(clusters []api.Cluster) [][]string {
	rows := make([][]string, 0, len(clusters))
	for _, c := range clusters {
		phase := ""
		if c.Status != nil {
			phase = c.Status.Phase
		}
		rows = append(rows, []string{
			c.Name,
			c.ID,
			phase,
			c.TargetProjectID,
			FormatTime(c.CreatedAt),
		})
	}
	return rows
}

// NodePoolColumns are the list view columns for nodepools.
func NodePoolColumns() []string {
	return []string{"name", "id", "cluster", "replicas", "status", "created"}
}

// NodePoolRows projects nodepools onto the list view columns.
func NodePoolRows(pools []api.NodePool) [][]string {
	rows := make([][]string, 0, len(pools))
	for _, np := range pools {
		phase := ""
		if np.Status != nil {
			phase = np.Status.Phase
		}
		replicas := ""
		if np.Spec != nil {
			replicas = strconv.Itoa(np.Spec.Replicas)
		}
		rows = append(rows, []string{
			np.Name,
			np.ID,
			np.ClusterID,
			replicas,
			phase,
			FormatTime(np.CreatedAt),
		})
	}
	return rows
}

// ClusterDetails builds the key/value view of one cluster, with
// status and platform sections. Styling follows the formatter's color
// setting.
func ClusterDetails(f *Formatter, c *api.Cluster) []KV {
	pairs := []KV{
		{Key: "Id", Value: c.ID},
		{Key: "Name", Value: c.Name},
	}
	if c.Description != "" {
		pairs = append(pairs, KV{Key: "Description", Value: c.Description})
	}
	pairs = append(pairs,
		KV{Key: "Target Project Id", Value: c.TargetProjectID},
		KV{Key: "Created By", Value: c.CreatedBy},
		KV{Key: "Created At", Value: FormatTime(c.CreatedAt)},
		KV{Key: "Updated At", Value: FormatTime(c.UpdatedAt)},
	)

	if c.Spec != nil && c.Spec.Platform.GCP != nil {
		gcp := c.Spec.Platform.GCP
		pairs = append(pairs,
			KV{},
			KV{Key: "Platform"},
			KV{Key: "  Type", Value: c.Spec.Platform.Type},
			KV{Key: "  GCP Project", Value: gcp.ProjectID},
			KV{Key: "  GCP Region", Value: gcp.Region},
		)
		if gcp.Network != "" {
			pairs = append(pairs, KV{Key: "  Network", Value: gcp.Network})
		}
		if gcp.Subnet != "" {
			pairs = append(pairs, KV{Key: "  Subnet", Value: gcp.Subnet})
		}
	}

	pairs = append(pairs, statusPairs(f, c.Status, c.Generation)...)
	return pairs
}

// ClusterStatusDetails builds the status-focused view used by the
// status command, including per-controller detail when the API
// reports it.
func ClusterStatusDetails(f *Formatter, c *api.Cluster, detail *api.ClusterStatusDetail) []KV {
	pairs := []KV{
		{Key: "Cluster Id", Value: c.ID},
		{Key: "Cluster Name", Value: c.Name},
		{Key: "Project", Value: c.TargetProjectID},
		{Key: "Created By", Value: c.CreatedBy},
	}

	if c.Spec != nil && c.Spec.Platform.GCP != nil {
		gcp := c.Spec.Platform.GCP
		pairs = append(pairs, KV{}, KV{Key: "Network Configuration"})
		if gcp.Network != "" {
			pairs = append(pairs, KV{Key: "  Network", Value: gcp.Network})
		}
		if gcp.Subnet != "" {
			pairs = append(pairs, KV{Key: "  Subnet", Value: gcp.Subnet})
		}
		access := gcp.EndpointAccess
		if access == "" {
			access = "Private"
		}
		pairs = append(pairs, KV{Key: "  Endpoint Access", Value: access})
	}

	pairs = append(pairs, statusPairs(f, c.Status, c.Generation)...)

	if detail != nil {
		for i, ctrl := range detail.ControllerStatus {
			pairs = append(pairs, KV{},
				KV{Key: fmt.Sprintf("Controller %d", i+1), Value: ctrl.ControllerName})
			if ctrl.ObservedGeneration != 0 {
				pairs = append(pairs, KV{Key: "  Observed Generation", Value: strconv.FormatInt(ctrl.ObservedGeneration, 10)})
			}
			if ctrl.LastUpdated != "" {
				pairs = append(pairs, KV{Key: "  Last Updated", Value: FormatTime(ctrl.LastUpdated)})
			}
			for _, cond := range ctrl.Conditions {
				pairs = append(pairs, KV{Key: "  " + cond.Type, Value: conditionValue(f, cond)})
			}
		}
	}

	return pairs
}

// NodePoolDetails builds the key/value view of one nodepool.
func NodePoolDetails(f *Formatter, np *api.NodePool) []KV {
	pairs := []KV{
		{Key: "Id", Value: np.ID},
		{Key: "Name", Value: np.Name},
		{Key: "Cluster Id", Value: np.ClusterID},
		{Key: "Created At", Value: FormatTime(np.CreatedAt)},
		{Key: "Updated At", Value: FormatTime(np.UpdatedAt)},
	}

	if np.Spec != nil {
		pairs = append(pairs, KV{}, KV{Key: "Specification"},
			KV{Key: "  Replicas", Value: strconv.Itoa(np.Spec.Replicas)})
		if gcp := np.Spec.Platform.GCP; gcp != nil {
			pairs = append(pairs,
				KV{Key: "  Instance Type", Value: gcp.InstanceType},
				KV{Key: "  Root Volume", Value: fmt.Sprintf("%dGB %s", gcp.RootVolume.Size, gcp.RootVolume.Type)},
			)
			for k, v := range gcp.Labels {
				pairs = append(pairs, KV{Key: "  Label", Value: k + "=" + v})
			}
			for _, t := range gcp.Taints {
				pairs = append(pairs, KV{Key: "  Taint", Value: fmt.Sprintf("%s=%s:%s", t.Key, t.Value, t.Effect)})
			}
		}
		pairs = append(pairs,
			KV{Key: "  Auto Repair", Value: strconv.FormatBool(np.Spec.Management.AutoRepair)},
			KV{Key: "  Upgrade Type", Value: np.Spec.Management.UpgradeType},
		)
	}

	pairs = append(pairs, statusPairs(f, np.Status, 0)...)
	return pairs
}

// statusPairs renders the shared status block: phase with severity
// color, generation freshness, message, and conditions.
func statusPairs(f *Formatter, status *api.Status, desiredGeneration int64) []KV {
	if status == nil {
		return nil
	}

	pairs := []KV{{}, {Key: "Current Status"},
		{Key: "  Phase", Value: f.Phase(status.Phase)}}

	if status.ObservedGeneration != 0 {
		observed := status.ObservedGeneration
		desired := desiredGeneration
		if desired == 0 {
			desired = observed
		}
		if observed == desired {
			pairs = append(pairs, KV{Key: "  Generation", Value: fmt.Sprintf("%d (up to date)", observed)})
		} else {
			pairs = append(pairs, KV{Key: "  Generation", Value: fmt.Sprintf("%d (desired: %d)", observed, desired)})
		}
	}
	if status.Message != "" {
		pairs = append(pairs, KV{Key: "  Message", Value: status.Message})
	}
	if status.Reason != "" {
		pairs = append(pairs, KV{Key: "  Reason", Value: status.Reason})
	}
	if status.LastUpdateTime != "" {
		pairs = append(pairs, KV{Key: "  Last Update", Value: FormatTime(status.LastUpdateTime)})
	}

	if len(status.Conditions) > 0 {
		pairs = append(pairs, KV{}, KV{Key: "Conditions"})
		for _, cond := range status.Conditions {
			pairs = append(pairs, KV{Key: "  " + cond.Type, Value: conditionValue(f, cond)})
			if cond.LastTransitionTime != "" {
				pairs = append(pairs, KV{Key: "    Last Transition", Value: f.Dim(FormatTime(cond.LastTransitionTime))})
			}
		}
	}

	return pairs
}

func conditionValue(f *Formatter, cond api.Condition) string {
	value := f.ConditionStatus(cond.Status)
	msg := cond.Message
	if len(msg) > conditionMessageMax {
		msg = msg[:conditionMessageMax-3] + "..."
	}
	if msg != "" {
		value += " - " + msg
	}
	return value
}
