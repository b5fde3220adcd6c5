package commands

import (
	"github.com/spf13/cobra"

	"github.com/jimdaga/gcp-hcp-cli/cmd/gcphcp/handlers"
	"github.com/jimdaga/gcp-hcp-cli/internal/config"
)

// Config returns the config command group.
func Config(global *handlers.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long: `Manage the gcphcp configuration file.

Settable keys: api_endpoint, api_token, default_project,
hypershift_binary, output.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set KEY VALUE",
		Short:     "Set a configuration value",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.Keys(),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.ConfigSet(*global, args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "get KEY",
		Short:     "Print the effective value of a configuration key",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(_ *cobra.Command, args []string) error {
			return handlers.ConfigGet(*global, args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.ConfigList(*global)
		},
	})

	return cmd
}
