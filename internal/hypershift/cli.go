package hypershift

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os/exec"
	"strings"
	"time"
)

// CLI is the concrete Tool that shells out to the hypershift binary.
type CLI struct {
	// BinaryPath is the resolved path to the binary (see
	// LookupBinary). Required.
	BinaryPath string

	// Timeout bounds each invocation. Zero means DefaultTimeout.
	Timeout time.Duration

	// Quiet suppresses progress logging.
	Quiet bool
}

var _ Tool = (*CLI)(nil)

// NewCLI resolves the binary and returns a CLI adapter, failing fast
// with ErrToolNotFound when no binary can be located.
func NewCLI(configuredPath string, quiet bool) (*CLI, error) {
	bin, err := LookupBinary(configuredPath)
	if err != nil {
		return nil, err
	}
	return &CLI{BinaryPath: bin, Quiet: quiet}, nil
}

// CreateIAM runs `hypershift create iam gcp`.
func (c *CLI) CreateIAM(ctx context.Context, opts IAMOptions) (Config, error) {
	args := []string{
		"create", "iam", "gcp",
		"--infra-id", opts.InfraID,
		"--project-id", opts.ProjectID,
		"--oidc-jwks-file", opts.OIDCJWKSFile,
	}
	if !c.Quiet {
		log.Printf("Running hypershift create iam gcp (infra-id=%s, project-id=%s)", opts.InfraID, opts.ProjectID)
	}
	return c.run(ctx, "create iam gcp", args)
}

// CreateInfra runs `hypershift create infra gcp`.
func (c *CLI) CreateInfra(ctx context.Context, opts InfraOptions) (Config, error) {
	args := []string{
		"create", "infra", "gcp",
		"--infra-id", opts.InfraID,
		"--project-id", opts.ProjectID,
		"--region", opts.Region,
	}
	if opts.VPCCIDR != "" {
		args = append(args, "--vpc-cidr", opts.VPCCIDR)
	}
	if !c.Quiet {
		log.Printf("Running hypershift create infra gcp (infra-id=%s, region=%s)", opts.InfraID, opts.Region)
	}
	return c.run(ctx, "create infra gcp", args)
}

// run executes one provisioning step and strictly parses its stdout
// as JSON. stdout and stderr are captured separately so a nonzero
// exit can surface both.
func (c *CLI) run(ctx context.Context, step string, args []string) (Config, error) {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// #nosec G204 - BinaryPath comes from the explicit lookup order, args are built from flags
	cmd := exec.CommandContext(ctx, c.BinaryPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, &TimeoutError{Step: step, Timeout: timeout}
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{
				Step:   step,
				Code:   exitErr.ExitCode(),
				Stdout: stdout.String(),
				Stderr: stderr.String(),
			}
		}
		return nil, err
	}

	var cfg Config
	if jsonErr := json.Unmarshal(stdout.Bytes(), &cfg); jsonErr != nil {
		return nil, &OutputError{Step: step, Raw: strings.TrimSpace(stdout.String()), Err: jsonErr}
	}
	return cfg, nil
}
