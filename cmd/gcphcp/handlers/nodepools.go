package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jimdaga/gcp-hcp-cli/internal/api"
	"github.com/jimdaga/gcp-hcp-cli/internal/output"
	"github.com/jimdaga/gcp-hcp-cli/internal/util/parse"
)

// NodePoolsListOptions are the flags of `nodepools list`.
type NodePoolsListOptions struct {
	// Cluster optionally scopes the listing; accepts any identifier
	// form.
	Cluster string
	Limit   int
}

// NodePoolsList handles `gcphcp nodepools list`.
func NodePoolsList(ctx context.Context, global GlobalOptions, opts NodePoolsListOptions) error {
	c, err := NewContext(global)
	if err != nil {
		return err
	}

	clusterID := ""
	if opts.Cluster != "" {
		cluster, err := c.resolver.Cluster(ctx, opts.Cluster)
		if err != nil {
			return err
		}
		clusterID = cluster.ID
	}

	list, err := c.client.ListNodePools(ctx, clusterID, opts.Limit)
	if err != nil {
		return err
	}

	if len(list.NodePools) == 0 {
		if !c.Quiet {
			if opts.Cluster != "" {
				c.Formatter.Line("No nodepools found for cluster %q.", opts.Cluster)
			} else {
				c.Formatter.Line("No nodepools found.")
			}
		}
		return nil
	}

	title := fmt.Sprintf("NodePools (%d/%d)", len(list.NodePools), list.Total)
	return c.Formatter.List(title, output.NodePoolColumns(), output.NodePoolRows(list.NodePools), list.NodePools)
}

// NodePoolsCreateOptions are the flags of `nodepools create`.
type NodePoolsCreateOptions struct {
	Name         string
	Cluster      string
	Replicas     int
	InstanceType string
	DiskSize     int
	DiskType     string
	AutoRepair   bool
	Labels       []string
	Taints       []string
}

// NodePoolsCreate handles `gcphcp nodepools create`.
func NodePoolsCreate(ctx context.Context, global GlobalOptions, opts NodePoolsCreateOptions) error {
	c, err := NewContext(global)
	if err != nil {
		return err
	}

	if opts.Replicas <= 0 {
		return errors.New("replicas must be greater than 0")
	}

	cluster, err := c.resolver.Cluster(ctx, opts.Cluster)
	if err != nil {
		return err
	}

	labels, err := parse.Labels(opts.Labels)
	if err != nil {
		return err
	}
	taints, err := parse.Taints(opts.Taints)
	if err != nil {
		return err
	}

	payload := &api.NodePoolCreate{
		Name:      opts.Name,
		ClusterID: cluster.ID,
		Spec: api.NodePoolSpec{
			Replicas: opts.Replicas,
			Platform: api.NodePoolPlatform{
				Type: "GCP",
				GCP: &api.GCPNodePoolSpec{
					InstanceType: opts.InstanceType,
					RootVolume: api.RootVolume{
						Size: opts.DiskSize,
						Type: opts.DiskType,
					},
					Labels: labels,
					Taints: taints,
				},
			},
			Management: api.NodePoolManagement{
				AutoRepair:  opts.AutoRepair,
				UpgradeType: "Replace",
			},
		},
	}

	c.infof("Creating nodepool %q...", opts.Name)
	np, err := c.client.CreateNodePool(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to create nodepool: %w", err)
	}

	if c.Quiet {
		// ID only, for scripting.
		fmt.Fprintln(stdout, np.ID)
		return nil
	}
	if c.Formatter.Format() != output.FormatTable {
		return c.Formatter.Raw(np)
	}

	c.Formatter.Title("NodePool created successfully")
	c.Formatter.Line("Name:     %s", np.Name)
	c.Formatter.Line("ID:       %s", np.ID)
	c.Formatter.Line("Replicas: %d", opts.Replicas)
	c.Formatter.Line("Machine:  %s", opts.InstanceType)
	c.Formatter.Line("Disk:     %dGB %s", opts.DiskSize, opts.DiskType)
	c.Formatter.Line("%s", c.Formatter.Dim(fmt.Sprintf("Use 'gcphcp nodepools status %s' to monitor creation", np.ID)))
	return nil
}

// NodePoolsStatusOptions are the flags of `nodepools status`.
type NodePoolsStatusOptions struct {
	Identifier string
	Cluster    string
	Detailed   bool
	Watch      bool
	Interval   time.Duration
}

// NodePoolsStatus handles `gcphcp nodepools status`.
func NodePoolsStatus(ctx context.Context, global GlobalOptions, opts NodePoolsStatusOptions) error {
	c, err := NewContext(global)
	if err != nil {
		return err
	}

	clusterID := ""
	if opts.Cluster != "" {
		cluster, err := c.resolver.Cluster(ctx, opts.Cluster)
		if err != nil {
			return err
		}
		clusterID = cluster.ID
	}

	resolved, err := c.resolver.NodePool(ctx, opts.Identifier, clusterID)
	if err != nil {
		return err
	}
	nodePoolID := resolved.ID

	render := func() error {
		np, err := c.client.GetNodePool(ctx, nodePoolID)
		if err != nil {
			return err
		}
		if c.Formatter.Format() != output.FormatTable {
			return c.Formatter.Raw(np)
		}

		title := fmt.Sprintf("NodePool: %s", np.Name)
		if opts.Detailed {
			return c.Formatter.Details(title, output.NodePoolDetails(c.Formatter, np), np)
		}
		phase := ""
		if np.Status != nil {
			phase = np.Status.Phase
		}
		replicas := ""
		if np.Spec != nil {
			replicas = fmt.Sprintf("%d", np.Spec.Replicas)
		}
		pairs := []output.KV{
			{Key: "Id", Value: np.ID},
			{Key: "Name", Value: np.Name},
			{Key: "Cluster Id", Value: np.ClusterID},
			{Key: "Replicas", Value: replicas},
			{Key: "Phase", Value: c.Formatter.Phase(phase)},
		}
		return c.Formatter.Details(title, pairs, np)
	}

	if !opts.Watch {
		return render()
	}

	c.infof("Watching nodepool status (press Ctrl+C to stop)...")
	err = watchLoop(ctx, opts.Interval, func() error {
		if c.Formatter.Format() == output.FormatTable {
			clearScreen()
			c.Formatter.Line("%s", c.Formatter.Dim(time.Now().UTC().Format("2006-01-02 15:04:05")))
		}
		return render()
	})
	if err == nil {
		c.infof("Status monitoring stopped.")
	}
	return err
}

// NodePoolsDeleteOptions are the flags of `nodepools delete`.
type NodePoolsDeleteOptions struct {
	Identifier string
	Cluster    string
	Force      bool
	Yes        bool
}

// NodePoolsDelete handles `gcphcp nodepools delete`.
func NodePoolsDelete(ctx context.Context, global GlobalOptions, opts NodePoolsDeleteOptions) error {
	c, err := NewContext(global)
	if err != nil {
		return err
	}

	clusterID := ""
	if opts.Cluster != "" {
		cluster, err := c.resolver.Cluster(ctx, opts.Cluster)
		if err != nil {
			return err
		}
		clusterID = cluster.ID
	}

	np, err := c.resolver.NodePool(ctx, opts.Identifier, clusterID)
	if err != nil {
		return err
	}
	name := np.Name
	if name == "" {
		name = np.ID
	}

	prompt := fmt.Sprintf("About to delete nodepool %q (%s).", name, np.ID)
	if np.Spec != nil && np.Spec.Replicas > 0 {
		prompt = fmt.Sprintf("About to delete nodepool %q (%s) with %d node(s).", name, np.ID, np.Spec.Replicas)
	}
	ok, err := c.confirmAction(prompt+" This action cannot be undone. Continue?", opts.Yes, opts.Force)
	if err != nil {
		return err
	}
	if !ok {
		c.infof("Deletion cancelled.")
		return nil
	}

	c.infof("Deleting nodepool %q...", name)
	if err := c.client.DeleteNodePool(ctx, np.ID); err != nil {
		return fmt.Errorf("failed to delete nodepool: %w", err)
	}
	c.infof("NodePool %q deleted successfully.", name)
	return nil
}
