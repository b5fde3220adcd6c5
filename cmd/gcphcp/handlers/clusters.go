package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jimdaga/gcp-hcp-cli/internal/api"
	"github.com/jimdaga/gcp-hcp-cli/internal/output"
	"github.com/jimdaga/gcp-hcp-cli/internal/wif"
)

// ClustersListOptions are the flags of `clusters list`.
type ClustersListOptions struct {
	Limit  int
	Offset int
	Status string
}

// ClustersList handles `gcphcp clusters list`.
func ClustersList(ctx context.Context, global GlobalOptions, opts ClustersListOptions) error {
	c, err := NewContext(global)
	if err != nil {
		return err
	}

	list, err := c.client.ListClusters(ctx, opts.Limit, opts.Offset, opts.Status)
	if err != nil {
		return err
	}

	if len(list.Clusters) == 0 {
		if !c.Quiet {
			msg := "No clusters found"
			if opts.Status != "" {
				msg += fmt.Sprintf(" with status %q", opts.Status)
			}
			c.Formatter.Line("%s.", msg)
		}
		return nil
	}

	title := fmt.Sprintf("Clusters (%d/%d)", len(list.Clusters), list.Total)
	if err := c.Formatter.List(title, output.ClusterColumns(), output.ClusterRows(list.Clusters), list.Clusters); err != nil {
		return err
	}

	if !c.Quiet && list.Total > opts.Limit {
		remaining := list.Total - opts.Offset - len(list.Clusters)
		if remaining > 0 {
			c.Formatter.Line("%s", c.Formatter.Dim(fmt.Sprintf(
				"Showing %d of %d clusters. Use --offset %d to see more.",
				len(list.Clusters), list.Total, opts.Offset+opts.Limit)))
		}
	}
	return nil
}

// ClustersCreateOptions are the flags of `clusters create`.
type ClustersCreateOptions struct {
	Name        string
	Project     string
	Description string
	InfraID     string
	Region      string

	// SetupInfra selects the automatic WIF setup mode.
	SetupInfra bool

	// IAMConfigFile and SigningKeyFile select the manual mode, fed by
	// `gcphcp infra create` artifacts.
	IAMConfigFile  string
	SigningKeyFile string

	DryRun bool
}

// ClustersCreate handles `gcphcp clusters create`. The WIF setup mode
// is chosen by flags: --setup-infra provisions infrastructure through
// the hypershift binary, otherwise pre-generated files are required.
func ClustersCreate(ctx context.Context, global GlobalOptions, opts ClustersCreateOptions) error {
	c, err := NewContext(global)
	if err != nil {
		return err
	}

	project, err := c.project(opts.Project)
	if err != nil {
		return err
	}

	infraID := opts.InfraID
	if infraID == "" {
		infraID = opts.Name
	}

	var result *wif.SetupResult
	resolvedInfraID := infraID

	if opts.SetupInfra {
		tool, err := newTool(c.Config.HypershiftBinary, c.Quiet)
		if err != nil {
			return err
		}
		result, err = wif.SetupAutomatic(ctx, tool, infraID, project, c.Quiet)
		if err != nil {
			return err
		}
	} else {
		if opts.IAMConfigFile == "" {
			return errors.New("either use --setup-infra for automatic setup, or provide --iam-config-file for manual mode")
		}
		if opts.SigningKeyFile == "" {
			return errors.New("--signing-key-file is required for manual mode")
		}
		result, resolvedInfraID, err = wif.SetupManual(opts.IAMConfigFile, opts.SigningKeyFile, infraID, c.Quiet)
		if err != nil {
			return err
		}
	}

	payload := wif.BuildClusterPayload(opts.Name, project, opts.Region, resolvedInfraID, result, opts.Description)

	if opts.DryRun {
		c.infof("Dry run - would create:")
		if err := c.Formatter.Raw(payload); err != nil {
			return err
		}
		if opts.SetupInfra && result.RawConfig != nil {
			c.infof("\nWIF configuration (from hypershift):")
			return c.Formatter.Raw(result.RawConfig)
		}
		return nil
	}

	c.infof("Creating cluster %q in project %q...", opts.Name, project)
	cluster, err := c.client.CreateCluster(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to create cluster: %w", err)
	}

	if c.Formatter.Format() != output.FormatTable {
		return c.Formatter.Raw(cluster)
	}

	phase := ""
	if cluster.Status != nil {
		phase = cluster.Status.Phase
	}
	c.Formatter.Title("Cluster created successfully")
	c.Formatter.Line("Name:   %s", cluster.Name)
	c.Formatter.Line("ID:     %s", cluster.ID)
	c.Formatter.Line("Status: %s", c.Formatter.Phase(phase))
	return nil
}

// ClustersStatusOptions are the flags of `clusters status`.
type ClustersStatusOptions struct {
	Identifier string
	Watch      bool
	Interval   time.Duration

	// All adds per-controller detail from the /status endpoint.
	All bool
}

// ClustersStatus handles `gcphcp clusters status`. The identifier is
// resolved once; watch mode refetches on every tick until canceled.
func ClustersStatus(ctx context.Context, global GlobalOptions, opts ClustersStatusOptions) error {
	c, err := NewContext(global)
	if err != nil {
		return err
	}

	resolved, err := c.resolver.Cluster(ctx, opts.Identifier)
	if err != nil {
		return err
	}
	clusterID := resolved.ID

	render := func() error {
		cluster, err := c.client.GetCluster(ctx, clusterID)
		if err != nil {
			return err
		}

		// Controller detail is best effort: a failing /status endpoint
		// is a warning, never an abort.
		var detail *api.ClusterStatusDetail
		if opts.All {
			detail, err = c.client.GetClusterStatus(ctx, clusterID)
			if err != nil {
				c.infof("Warning: could not fetch controller status: %v", err)
				detail = nil
			}
		}

		if c.Formatter.Format() == output.FormatTable {
			title := fmt.Sprintf("Status: %s", cluster.Name)
			return c.Formatter.Details(title, output.ClusterStatusDetails(c.Formatter, cluster, detail), cluster)
		}

		snapshot := statusSnapshot{
			ClusterID:   clusterID,
			ClusterName: cluster.Name,
			Status:      cluster.Status,
			LastChecked: time.Now().UTC().Format("2006-01-02 15:04:05 UTC"),
		}
		if detail != nil {
			snapshot.ControllerStatus = detail.ControllerStatus
		}
		return c.Formatter.Raw(snapshot)
	}

	if !opts.Watch {
		return render()
	}

	c.infof("Watching cluster status (press Ctrl+C to stop)...")
	err = watchLoop(ctx, opts.Interval, func() error {
		if c.Formatter.Format() == output.FormatTable {
			clearScreen()
			c.Formatter.Line("%s", c.Formatter.Dim(time.Now().UTC().Format("2006-01-02 15:04:05")))
		}
		if err := render(); err != nil {
			return err
		}
		if c.Formatter.Format() != output.FormatTable {
			c.infof("Next update in %s...", opts.Interval)
		}
		return nil
	})
	if err == nil {
		c.infof("Status monitoring stopped.")
	}
	return err
}

// statusSnapshot is the machine-readable shape of one status check.
type statusSnapshot struct {
	ClusterID        string                 `json:"cluster_id"`
	ClusterName      string                 `json:"cluster_name"`
	Status           *api.Status            `json:"status,omitempty"`
	ControllerStatus []api.ControllerStatus `json:"controller_status,omitempty"`
	LastChecked      string                 `json:"last_checked"`
}

// ClustersDeleteOptions are the flags of `clusters delete`.
type ClustersDeleteOptions struct {
	Identifier string

	// Force skips the confirmation prompt and deletes clusters with
	// active resources. The API itself always receives force=true.
	Force bool

	// Yes skips the confirmation prompt.
	Yes bool
}

// ClustersDelete handles `gcphcp clusters delete`.
func ClustersDelete(ctx context.Context, global GlobalOptions, opts ClustersDeleteOptions) error {
	c, err := NewContext(global)
	if err != nil {
		return err
	}

	cluster, err := c.resolver.Cluster(ctx, opts.Identifier)
	if err != nil {
		return err
	}
	name := cluster.Name
	if name == "" {
		name = cluster.ID
	}

	ok, err := c.confirmAction(
		fmt.Sprintf("About to delete cluster %q (%s). This action cannot be undone. Continue?", name, cluster.ID),
		opts.Yes, opts.Force)
	if err != nil {
		return err
	}
	if !ok {
		c.infof("Deletion cancelled.")
		return nil
	}

	c.infof("Deleting cluster %q...", name)
	if err := c.client.DeleteCluster(ctx, cluster.ID); err != nil {
		return fmt.Errorf("failed to delete cluster: %w", err)
	}
	c.infof("Cluster %q deleted successfully.", name)
	return nil
}
