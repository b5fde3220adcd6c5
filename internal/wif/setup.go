package wif

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jimdaga/gcp-hcp-cli/internal/api"
	"github.com/jimdaga/gcp-hcp-cli/internal/hypershift"
)

// Sentinel errors for the manual workflow's input files.
var (
	ErrConfigFile = errors.New("invalid IAM config file")
	ErrKeyFile    = errors.New("invalid signing key file")
)

// SetupResult is the uniform outcome of either setup workflow,
// consumed once by the cluster spec builder. It is never partially
// populated: either every step of a workflow succeeded, or no result
// exists.
type SetupResult struct {
	// WorkloadIdentity is the flattened WIF block for the cluster
	// spec.
	WorkloadIdentity *api.WorkloadIdentity

	// SigningKeyBase64 is the base64-encoded PEM of the service
	// account signing key.
	SigningKeyBase64 string

	// IssuerURL is the OIDC issuer URL for the cluster.
	IssuerURL string

	// RawConfig is the unmodified configuration from the
	// provisioning tool. Automatic workflow only.
	RawConfig hypershift.Config
}

// IssuerURL derives the OIDC issuer URL for an infra ID. The format
// is a contract with the control plane and must match exactly.
func IssuerURL(infraID string) string {
	return fmt.Sprintf("https://hypershift-%s-oidc", infraID)
}

// generateKeypair is a factory variable so tests can substitute a
// canned keypair.
var generateKeypair = GenerateKeypair

// SetupAutomatic provisions WIF infrastructure end to end: generate
// a signing keypair, run the provisioning tool against the JWKS
// artifact, validate the returned configuration, and flatten it into
// the cluster spec shape. The temporary JWKS file is removed on every
// exit path; it only needs to exist for the duration of the tool
// invocation.
func SetupAutomatic(ctx context.Context, tool hypershift.Tool, infraID, projectID string, quiet bool) (*SetupResult, error) {
	if !quiet {
		log.Println("Step 1: Generate keypair")
	}
	keypair, err := generateKeypair()
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}
	defer func() { _ = keypair.Cleanup() }()

	if !quiet {
		log.Printf("Keypair generated (kid: %s)", keypair.Kid)
		log.Println("Step 2: Set up WIF infrastructure")
	}

	cfg, err := tool.CreateIAM(ctx, hypershift.IAMOptions{
		InfraID:      infraID,
		ProjectID:    projectID,
		OIDCJWKSFile: keypair.JWKSPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up infrastructure: %w", err)
	}

	if err := hypershift.Validate(cfg); err != nil {
		return nil, err
	}

	return &SetupResult{
		WorkloadIdentity: hypershift.ToWorkloadIdentity(cfg),
		SigningKeyBase64: keypair.PrivateKeyBase64(),
		IssuerURL:        IssuerURL(infraID),
		RawConfig:        cfg,
	}, nil
}

// SetupManual builds a SetupResult from pre-generated files, the
// output of `gcphcp infra create`: an IAM/WIF configuration JSON and
// a PEM-encoded signing key. The key file is trusted and embedded
// verbatim (base64), never re-parsed. An infraId embedded in the
// config file overrides fallbackInfraID; the resolved infra ID is
// returned alongside the result.
func SetupManual(iamConfigPath, signingKeyPath, fallbackInfraID string, quiet bool) (*SetupResult, string, error) {
	// #nosec G304
	data, err := os.ReadFile(iamConfigPath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrConfigFile, err)
	}
	var cfg hypershift.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, "", fmt.Errorf("%w %s: %v", ErrConfigFile, iamConfigPath, err)
	}

	infraID := cfg.InfraID()
	if infraID == "" {
		infraID = fallbackInfraID
	}

	if !quiet {
		log.Printf("Loaded IAM configuration from %s (infra-id: %s)", iamConfigPath, infraID)
	}

	// #nosec G304
	keyPEM, err := os.ReadFile(signingKeyPath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrKeyFile, err)
	}

	return &SetupResult{
		WorkloadIdentity: hypershift.ToWorkloadIdentity(cfg),
		SigningKeyBase64: base64.StdEncoding.EncodeToString(keyPEM),
		IssuerURL:        IssuerURL(infraID),
	}, infraID, nil
}
