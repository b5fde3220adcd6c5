// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/jimdaga/gcp-hcp-cli/cmd/gcphcp/handlers"
)

// Root returns the root command for the gcphcp CLI.
func Root() *cobra.Command {
	var global handlers.GlobalOptions

	cmd := &cobra.Command{
		Use:   "gcphcp",
		Short: "Manage hosted control plane clusters on Google Cloud",
		Long: `gcphcp manages hosted control plane clusters and nodepools through
the GCP HCP management API, and drives the hypershift CLI for
workload identity federation and network provisioning.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&global.Output, "output", "o", "", "Output format: table, json, yaml, csv, value")
	pf.BoolVarP(&global.Quiet, "quiet", "q", false, "Suppress progress output and prompts")
	pf.StringVar(&global.Endpoint, "endpoint", "", "Management API endpoint (overrides config)")

	cmd.AddCommand(Clusters(&global))
	cmd.AddCommand(NodePools(&global))
	cmd.AddCommand(Infra(&global))
	cmd.AddCommand(Config(&global))
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
