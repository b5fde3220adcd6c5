package api

// Cluster phases reported by the management API.
const (
	PhasePending     = "Pending"
	PhaseProgressing = "Progressing"
	PhaseReady       = "Ready"
	PhaseFailed      = "Failed"
)

// Condition is a status condition on a cluster or nodepool.
type Condition struct {
	Type               string `json:"type"`
	Status             string `json:"status"`
	Reason             string `json:"reason,omitempty"`
	Message            string `json:"message,omitempty"`
	LastTransitionTime string `json:"lastTransitionTime,omitempty"`
}

// Status is the status block common to clusters and nodepools.
type Status struct {
	Phase              string      `json:"phase,omitempty"`
	Message            string      `json:"message,omitempty"`
	Reason             string      `json:"reason,omitempty"`
	ObservedGeneration int64       `json:"observedGeneration,omitempty"`
	LastUpdateTime     string      `json:"lastUpdateTime,omitempty"`
	Conditions         []Condition `json:"conditions,omitempty"`
}

// Cluster is a hosted control plane cluster as returned by the API.
type Cluster struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description,omitempty"`
	TargetProjectID string       `json:"target_project_id,omitempty"`
	CreatedBy       string       `json:"created_by,omitempty"`
	CreatedAt       string       `json:"created_at,omitempty"`
	UpdatedAt       string       `json:"updated_at,omitempty"`
	Generation      int64        `json:"generation,omitempty"`
	Spec            *ClusterSpec `json:"spec,omitempty"`
	Status          *Status      `json:"status,omitempty"`
}

// ClusterList is the response of GET /api/v1/clusters.
type ClusterList struct {
	Clusters []Cluster `json:"clusters"`
	Total    int       `json:"total"`
}

// ClusterSpec is the spec block of a cluster creation payload.
type ClusterSpec struct {
	InfraID                  string   `json:"infraID"`
	IssuerURL                string   `json:"issuerURL"`
	ServiceAccountSigningKey string   `json:"serviceAccountSigningKey"`
	Platform                 Platform `json:"platform"`
}

// Platform describes the cloud platform a cluster runs on.
type Platform struct {
	Type string       `json:"type"`
	GCP  *GCPPlatform `json:"gcp,omitempty"`
}

// GCPPlatform holds GCP-specific cluster platform settings.
type GCPPlatform struct {
	ProjectID        string            `json:"projectID"`
	Region           string            `json:"region"`
	Network          string            `json:"network,omitempty"`
	Subnet           string            `json:"subnet,omitempty"`
	EndpointAccess   string            `json:"endpointAccess,omitempty"`
	WorkloadIdentity *WorkloadIdentity `json:"workloadIdentity,omitempty"`
}

// WorkloadIdentity is the flattened WIF block embedded in a cluster spec.
type WorkloadIdentity struct {
	ProjectNumber      any                `json:"projectNumber"`
	PoolID             string             `json:"poolID"`
	ProviderID         string             `json:"providerID"`
	ServiceAccountsRef ServiceAccountsRef `json:"serviceAccountsRef"`
}

// ServiceAccountsRef names the two service accounts a hosted cluster uses.
type ServiceAccountsRef struct {
	ControlPlaneEmail string `json:"controlPlaneEmail"`
	NodePoolEmail     string `json:"nodePoolEmail"`
}

// ClusterCreate is the payload for POST /api/v1/clusters.
// Description is omitted entirely when empty so the API never
// receives an unintended null or empty string.
type ClusterCreate struct {
	Name            string      `json:"name"`
	TargetProjectID string      `json:"target_project_id"`
	Description     string      `json:"description,omitempty"`
	Spec            ClusterSpec `json:"spec"`
}

// ClusterStatusDetail is the response of GET /api/v1/clusters/{id}/status.
type ClusterStatusDetail struct {
	ControllerStatus []ControllerStatus `json:"controller_status,omitempty"`
	Status           *Status            `json:"status,omitempty"`
}

// ControllerStatus reports the state of one control plane controller.
type ControllerStatus struct {
	ControllerName     string      `json:"controller_name"`
	ObservedGeneration int64       `json:"observed_generation,omitempty"`
	LastUpdated        string      `json:"last_updated,omitempty"`
	Conditions         []Condition `json:"conditions,omitempty"`
}

// NodePool is a nodepool as returned by the API.
type NodePool struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	ClusterID string        `json:"cluster_id,omitempty"`
	CreatedAt string        `json:"created_at,omitempty"`
	UpdatedAt string        `json:"updated_at,omitempty"`
	Spec      *NodePoolSpec `json:"spec,omitempty"`
	Status    *Status       `json:"status,omitempty"`
}

// NodePoolList is the response of GET /api/v1/nodepools.
type NodePoolList struct {
	NodePools []NodePool `json:"nodepools"`
	Total     int        `json:"total"`
}

// NodePoolSpec is the spec block of a nodepool creation payload.
type NodePoolSpec struct {
	Replicas   int                `json:"replicas"`
	Platform   NodePoolPlatform   `json:"platform"`
	Management NodePoolManagement `json:"management"`
}

// NodePoolPlatform describes the platform settings of a nodepool.
type NodePoolPlatform struct {
	Type string           `json:"type"`
	GCP  *GCPNodePoolSpec `json:"gcp,omitempty"`
}

// GCPNodePoolSpec holds GCP-specific nodepool settings.
type GCPNodePoolSpec struct {
	InstanceType string            `json:"instanceType"`
	RootVolume   RootVolume        `json:"rootVolume"`
	Labels       map[string]string `json:"labels,omitempty"`
	Taints       []Taint           `json:"taints,omitempty"`
}

// RootVolume describes the boot disk of nodepool machines.
type RootVolume struct {
	Size int    `json:"size"`
	Type string `json:"type"`
}

// Taint is a node taint. Taints are ordered; policy evaluation
// depends on sequence, so they are carried as a slice, never a map.
type Taint struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Effect string `json:"effect"`
}

// NodePoolManagement holds nodepool lifecycle management settings.
type NodePoolManagement struct {
	AutoRepair  bool   `json:"autoRepair"`
	UpgradeType string `json:"upgradeType"`
}

// NodePoolCreate is the payload for POST /api/v1/nodepools.
type NodePoolCreate struct {
	Name      string       `json:"name"`
	ClusterID string       `json:"cluster_id"`
	Spec      NodePoolSpec `json:"spec"`
}
