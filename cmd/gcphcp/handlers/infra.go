package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jimdaga/gcp-hcp-cli/internal/hypershift"
	"github.com/jimdaga/gcp-hcp-cli/internal/output"
)

// InfraCreateOptions are the flags of `infra create`.
type InfraCreateOptions struct {
	InfraID string
	Project string

	// OIDCJWKSFile is an existing JWKS document. When empty a keypair
	// is generated and its artifacts saved.
	OIDCJWKSFile string

	// Output paths; empty selects the deterministic defaults derived
	// from the infra ID.
	OutputSigningKey string
	OutputJWKS       string
	OutputIAMConfig  string
}

// InfraCreate handles `gcphcp infra create`: provision WIF
// infrastructure and persist the artifacts later consumed by
// `clusters create` in manual mode.
func InfraCreate(ctx context.Context, global GlobalOptions, opts InfraCreateOptions) error {
	c, err := NewContext(global)
	if err != nil {
		return err
	}

	project, err := c.project(opts.Project)
	if err != nil {
		return err
	}

	signingKeyPath := opts.OutputSigningKey
	if signingKeyPath == "" {
		signingKeyPath = opts.InfraID + "-signing-key.pem"
	}
	jwksPath := opts.OutputJWKS
	if jwksPath == "" {
		jwksPath = opts.InfraID + "-jwks.json"
	}
	iamConfigPath := opts.OutputIAMConfig
	if iamConfigPath == "" {
		iamConfigPath = opts.InfraID + "-iam-config.json"
	}

	jwksFile := opts.OIDCJWKSFile
	keypairGenerated := false

	if jwksFile == "" {
		c.infof("Step 1: Generate keypair")
		keypair, err := newKeypair()
		if err != nil {
			return fmt.Errorf("failed to generate keypair: %w", err)
		}
		defer func() { _ = keypair.Cleanup() }()
		keypairGenerated = true

		c.infof("Keypair generated (kid: %s)", keypair.Kid)

		// The key signs service account tokens, keep it private.
		if err := os.WriteFile(signingKeyPath, keypair.PrivateKeyPEM, 0o600); err != nil {
			return fmt.Errorf("failed to save signing key: %w", err)
		}
		c.infof("Signing key saved to: %s", signingKeyPath)

		if err := os.WriteFile(jwksPath, keypair.JWKS, 0o644); err != nil {
			return fmt.Errorf("failed to save JWKS: %w", err)
		}
		c.infof("JWKS saved to: %s", jwksPath)

		jwksFile = keypair.JWKSPath
	}

	c.infof("Step 2: Set up WIF infrastructure")
	tool, err := newTool(c.Config.HypershiftBinary, c.Quiet)
	if err != nil {
		return err
	}

	cfg, err := tool.CreateIAM(ctx, hypershift.IAMOptions{
		InfraID:      opts.InfraID,
		ProjectID:    project,
		OIDCJWKSFile: jwksFile,
	})
	if err != nil {
		return fmt.Errorf("failed to set up infrastructure: %w", err)
	}
	if err := hypershift.Validate(cfg); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode IAM configuration: %w", err)
	}
	if err := os.WriteFile(iamConfigPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to save IAM configuration: %w", err)
	}
	c.infof("IAM configuration saved to: %s", iamConfigPath)

	if c.Quiet || c.Formatter.Format() != output.FormatTable {
		return c.Formatter.Raw(cfg)
	}

	c.Formatter.Title("WIF infrastructure created successfully")
	if err := c.Formatter.Raw(cfg); err != nil {
		return err
	}
	c.Formatter.Line("")
	c.Formatter.Line("Saved files:")
	if keypairGenerated {
		c.Formatter.Line("  Signing key: %s", signingKeyPath)
		c.Formatter.Line("  JWKS:        %s", jwksPath)
	}
	c.Formatter.Line("  IAM config:  %s", iamConfigPath)
	return nil
}

// InfraCreateNetworkOptions are the flags of `infra create-network`.
type InfraCreateNetworkOptions struct {
	InfraID string
	Project string
	Region  string
	VPCCIDR string

	// OutputInfraConfig defaults to <infraID>-infra-config.json.
	OutputInfraConfig string
}

// InfraCreateNetwork handles `gcphcp infra create-network`:
// provision VPC/network infrastructure through the hypershift binary
// and persist its configuration.
func InfraCreateNetwork(ctx context.Context, global GlobalOptions, opts InfraCreateNetworkOptions) error {
	c, err := NewContext(global)
	if err != nil {
		return err
	}

	project, err := c.project(opts.Project)
	if err != nil {
		return err
	}

	infraConfigPath := opts.OutputInfraConfig
	if infraConfigPath == "" {
		infraConfigPath = opts.InfraID + "-infra-config.json"
	}

	c.infof("Setting up network infrastructure")
	tool, err := newTool(c.Config.HypershiftBinary, c.Quiet)
	if err != nil {
		return err
	}

	cfg, err := tool.CreateInfra(ctx, hypershift.InfraOptions{
		InfraID:   opts.InfraID,
		ProjectID: project,
		Region:    opts.Region,
		VPCCIDR:   opts.VPCCIDR,
	})
	if err != nil {
		return fmt.Errorf("failed to set up network infrastructure: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode infrastructure configuration: %w", err)
	}
	if err := os.WriteFile(infraConfigPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to save infrastructure configuration: %w", err)
	}
	c.infof("Infrastructure configuration saved to: %s", infraConfigPath)

	if c.Quiet || c.Formatter.Format() != output.FormatTable {
		return c.Formatter.Raw(cfg)
	}

	c.Formatter.Title("Network infrastructure created successfully")
	return c.Formatter.Raw(cfg)
}
