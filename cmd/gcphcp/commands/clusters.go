package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jimdaga/gcp-hcp-cli/cmd/gcphcp/handlers"
)

// Clusters returns the clusters command group.
func Clusters(global *handlers.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clusters",
		Short: "Manage hosted control plane clusters",
	}
	cmd.AddCommand(clustersList(global))
	cmd.AddCommand(clustersCreate(global))
	cmd.AddCommand(clustersStatus(global))
	cmd.AddCommand(clustersDelete(global))
	return cmd
}

func clustersList(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.ClustersListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.ClustersList(cmd.Context(), *global, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 10, "Maximum number of clusters to list")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "Number of clusters to skip (for pagination)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter clusters by status (Pending, Progressing, Ready, Failed)")

	return cmd
}

func clustersCreate(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.ClustersCreateOptions

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new cluster with WIF configuration",
		Long: `Create a new hosted control plane cluster.

Two modes of operation:

1. Automatic mode (--setup-infra): the CLI generates a signing keypair
   and provisions WIF infrastructure through the hypershift binary.

2. Manual mode: use output files from 'gcphcp infra create' via
   --iam-config-file and --signing-key-file.

Examples:
  gcphcp clusters create my-cluster --project my-project --setup-infra

  gcphcp clusters create my-cluster --project my-project \
    --iam-config-file my-infra-iam-config.json \
    --signing-key-file my-infra-signing-key.pem`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = args[0]
			return handlers.ClustersCreate(cmd.Context(), *global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "Target project ID (overrides default)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Description for the cluster")
	cmd.Flags().StringVar(&opts.InfraID, "infra-id", "", "Infrastructure ID (defaults to cluster name)")
	cmd.Flags().StringVar(&opts.Region, "region", "us-central1", "GCP region for the cluster")
	cmd.Flags().BoolVar(&opts.SetupInfra, "setup-infra", false, "Automatically set up WIF infrastructure (keypair + IAM)")
	cmd.Flags().StringVar(&opts.IAMConfigFile, "iam-config-file", "", "Path to IAM/WIF config JSON from 'gcphcp infra create'")
	cmd.Flags().StringVar(&opts.SigningKeyFile, "signing-key-file", "", "Path to PEM-encoded RSA private key for SA signing (manual mode)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would be created without creating")

	return cmd
}

func clustersStatus(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.ClustersStatusOptions
	var interval int

	cmd := &cobra.Command{
		Use:   "status IDENTIFIER",
		Short: "Show detailed information and status for a cluster",
		Long: `Show detailed cluster status including conditions, platform
configuration, and metadata.

IDENTIFIER: cluster name, ID prefix, or full UUID.

Examples:
  gcphcp clusters status demo08
  gcphcp clusters status demo08 --all
  gcphcp clusters status 3c7f2227 --watch --interval 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Identifier = args[0]
			opts.Interval = time.Duration(interval) * time.Second
			return handlers.ClustersStatus(cmd.Context(), *global, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch for status changes in real time")
	cmd.Flags().IntVar(&interval, "interval", 5, "Polling interval in seconds for watch mode")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Include detailed controller status information")

	return cmd
}

func clustersDelete(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.ClustersDeleteOptions

	cmd := &cobra.Command{
		Use:   "delete IDENTIFIER",
		Short: "Delete a cluster",
		Long: `Delete a cluster.

IDENTIFIER: cluster name, ID prefix, or full UUID.

WARNING: this action cannot be undone. The cluster and all its
resources will be permanently deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Identifier = args[0]
			return handlers.ClustersDelete(cmd.Context(), *global, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Skip safety checks and delete a cluster with active resources")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "Skip confirmation prompt")

	return cmd
}
