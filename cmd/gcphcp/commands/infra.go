package commands

import (
	"github.com/spf13/cobra"

	"github.com/jimdaga/gcp-hcp-cli/cmd/gcphcp/handlers"
)

// Infra returns the infra command group.
func Infra(global *handlers.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infra",
		Short: "Manage infrastructure for hosted cluster deployments",
	}
	cmd.AddCommand(infraCreate(global))
	cmd.AddCommand(infraCreateNetwork(global))
	return cmd
}

func infraCreate(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.InfraCreateOptions

	cmd := &cobra.Command{
		Use:   "create INFRA_ID",
		Short: "Create WIF infrastructure for hosted cluster deployment",
		Long: `Create workload identity federation infrastructure.

INFRA_ID: infrastructure identifier (must be DNS-compatible).

Generated files default to the current directory:
  <infra-id>-signing-key.pem   RSA private key for service account signing
  <infra-id>-jwks.json         JWKS document with the public key
  <infra-id>-iam-config.json   IAM/WIF configuration from hypershift

Examples:
  gcphcp infra create my-infra --project my-project

  gcphcp infra create my-infra --project my-project \
    --output-signing-key ./keys/signing-key.pem \
    --output-iam-config ./config/iam.json

  gcphcp infra create my-infra --project my-project \
    --oidc-jwks-file ./existing-jwks.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.InfraID = args[0]
			return handlers.InfraCreate(cmd.Context(), *global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "Target project ID (overrides default)")
	cmd.Flags().StringVar(&opts.OIDCJWKSFile, "oidc-jwks-file", "", "Path to an existing OIDC JWKS file (skips keypair generation)")
	cmd.Flags().StringVar(&opts.OutputSigningKey, "output-signing-key", "", "Path to save the generated signing key PEM")
	cmd.Flags().StringVar(&opts.OutputJWKS, "output-jwks", "", "Path to save the generated JWKS file")
	cmd.Flags().StringVar(&opts.OutputIAMConfig, "output-iam-config", "", "Path to save the IAM/WIF configuration JSON")

	return cmd
}

func infraCreateNetwork(global *handlers.GlobalOptions) *cobra.Command {
	var opts handlers.InfraCreateNetworkOptions

	cmd := &cobra.Command{
		Use:   "create-network INFRA_ID",
		Short: "Create VPC/network infrastructure for hosted cluster deployment",
		Long: `Create network infrastructure through 'hypershift create infra gcp'.

INFRA_ID: infrastructure identifier (must be DNS-compatible).

The resulting configuration is saved to
<infra-id>-infra-config.json unless overridden.

Examples:
  gcphcp infra create-network my-infra --project my-project --region us-central1
  gcphcp infra create-network my-infra --project my-project --vpc-cidr 10.0.0.0/16`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.InfraID = args[0]
			return handlers.InfraCreateNetwork(cmd.Context(), *global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Project, "project", "", "Target project ID (overrides default)")
	cmd.Flags().StringVar(&opts.Region, "region", "us-central1", "GCP region for the network")
	cmd.Flags().StringVar(&opts.VPCCIDR, "vpc-cidr", "", "CIDR block for the VPC")
	cmd.Flags().StringVar(&opts.OutputInfraConfig, "output-infra-config", "", "Path to save the infrastructure configuration JSON")

	return cmd
}
