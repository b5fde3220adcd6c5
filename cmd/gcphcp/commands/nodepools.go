package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jimdaga/gcp-hcp-cli/cmd/gcphcp/handlers"
)

// NodePools returns the nodepools command group.
func NodePools(global *handlers.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodepools",
		Short: "Manage cluster nodepools",
	}
	cmd.AddCommand(nodePoolsList(global))
	cmd.AddCommand(nodePoolsCreate(global))
	cmd.AddCommand(nodePoolsStatus(global))
	cmd.AddCommand(nodePoolsDelete(global))
	return cmd
}

func nodePoolsList(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.NodePoolsListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List nodepools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.NodePoolsList(cmd.Context(), *global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Cluster, "cluster", "", "Scope the listing to one cluster (name, ID prefix, or UUID)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 50, "Maximum number of nodepools to list")

	return cmd
}

func nodePoolsCreate(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.NodePoolsCreateOptions

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new nodepool for a cluster",
		Long: `Create a new nodepool.

NAME must be unique within the cluster.

Examples:
  gcphcp nodepools create workers --cluster demo08 --replicas 3
  gcphcp nodepools create gpu-nodes --cluster demo08 --replicas 2 \
    --instance-type n1-standard-8 --disk-size 256
  gcphcp nodepools create workers --cluster demo08 --replicas 3 \
    --labels env=prod --labels team=platform \
    --taints dedicated=gpu:NoSchedule`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return handlers.NodePoolsCreate(cmd.Context(), *global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Cluster, "cluster", "", "Cluster identifier (name, ID prefix, or UUID)")
	cmd.Flags().IntVar(&opts.Replicas, "replicas", 0, "Number of compute nodes to create")
	cmd.Flags().StringVar(&opts.InstanceType, "instance-type", "n1-standard-4", "GCP machine type")
	cmd.Flags().IntVar(&opts.DiskSize, "disk-size", 128, "Boot disk size in GB")
	cmd.Flags().StringVar(&opts.DiskType, "disk-type", "pd-standard", "Boot disk type (pd-standard, pd-ssd, pd-balanced)")
	cmd.Flags().BoolVar(&opts.AutoRepair, "auto-repair", true, "Enable auto-repair")
	cmd.Flags().StringArrayVar(&opts.Labels, "labels", nil, "Node labels in key=value format (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Taints, "taints", nil, "Node taints in key=value:effect format (repeatable)")
	_ = cmd.MarkFlagRequired("cluster")
	_ = cmd.MarkFlagRequired("replicas")

	return cmd
}

func nodePoolsStatus(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.NodePoolsStatusOptions
	var interval int

	cmd := &cobra.Command{
		Use:   "status IDENTIFIER",
		Short: "Show status for a nodepool",
		Long: `Show nodepool status.

IDENTIFIER: nodepool name, ID prefix (8+ characters), or full UUID.

Examples:
  gcphcp nodepools status workers --cluster demo08
  gcphcp nodepools status 3c7f2227 --detailed
  gcphcp nodepools status workers --watch --interval 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Identifier = args[0]
			opts.Interval = time.Duration(interval) * time.Second
			return handlers.NodePoolsStatus(cmd.Context(), *global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Cluster, "cluster", "", "Cluster identifier to scope resolution")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "Show full specification and conditions")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch for status changes in real time")
	cmd.Flags().IntVar(&interval, "interval", 5, "Polling interval in seconds for watch mode")

	return cmd
}

func nodePoolsDelete(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.NodePoolsDeleteOptions

	cmd := &cobra.Command{
		Use:   "delete IDENTIFIER",
		Short: "Delete a nodepool",
		Long: `Delete a nodepool.

IDENTIFIER: nodepool name, ID prefix (8+ characters), or full UUID.

WARNING: this action cannot be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Identifier = args[0]
			return handlers.NodePoolsDelete(cmd.Context(), *global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Cluster, "cluster", "", "Cluster identifier to scope resolution")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Skip safety checks")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")

	return cmd
}
