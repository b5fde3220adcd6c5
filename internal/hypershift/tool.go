// Package hypershift wraps the external hypershift binary that
// provisions IAM/WIF and network infrastructure on GCP.
//
// The binary is modeled as a capability interface so that command
// handlers and the WIF setup orchestrator can run against a test
// double returning canned JSON instead of spawning a real process.
package hypershift

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultTimeout bounds one provisioning invocation. IAM setup
// routinely takes minutes; five is the contract with operators.
const DefaultTimeout = 300 * time.Second

// EnvBinary is the environment variable naming the hypershift binary,
// checked before any config value or PATH lookup.
const EnvBinary = "HYPERSHIFT_BINARY"

// Config is the decoded JSON a provisioning step writes to stdout.
// The schema belongs to the external tool, so it is kept as dynamic
// JSON; Validate defines which fields must be present.
type Config map[string]any

// Tool is the capability interface for the provisioning binary.
type Tool interface {
	// CreateIAM runs `create iam gcp` and returns the WIF
	// configuration from the tool's stdout.
	CreateIAM(ctx context.Context, opts IAMOptions) (Config, error)

	// CreateInfra runs `create infra gcp` and returns the network
	// infrastructure configuration from the tool's stdout.
	CreateInfra(ctx context.Context, opts InfraOptions) (Config, error)
}

// IAMOptions are the inputs to `create iam gcp`.
type IAMOptions struct {
	InfraID   string
	ProjectID string
	// OIDCJWKSFile is the path to the JWKS document holding the
	// public half of the service account signing key. It must exist
	// for the duration of the call.
	OIDCJWKSFile string
}

// InfraOptions are the inputs to `create infra gcp`.
type InfraOptions struct {
	InfraID   string
	ProjectID string
	Region    string
	VPCCIDR   string
}

// ErrToolNotFound indicates the hypershift binary could not be
// located by any lookup step.
var ErrToolNotFound = errors.New("hypershift CLI not found; install it (https://hypershift-docs.netlify.app/getting-started/), " +
	"or run 'gcphcp config set hypershift_binary /path/to/hypershift', " +
	"or set HYPERSHIFT_BINARY=/path/to/hypershift")

// TimeoutError indicates a provisioning step exceeded its deadline.
type TimeoutError struct {
	Step    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("hypershift %s timed out after %s", e.Step, e.Timeout)
}

// ExitError indicates the tool exited nonzero. The tool often lands
// non-error diagnostics on stdout before failing, so both streams are
// carried for diagnosis.
type ExitError struct {
	Step   string
	Code   int
	Stdout string
	Stderr string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("hypershift %s failed with exit code %d", e.Step, e.Code)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\nError: " + s
	}
	if s := strings.TrimSpace(e.Stdout); s != "" {
		msg += "\nOutput: " + s
	}
	return msg
}

// OutputError indicates the tool succeeded but its stdout was not
// valid JSON. Distinct from a process failure; the raw output is
// carried for debugging.
type OutputError struct {
	Step string
	Raw  string
	Err  error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to parse hypershift %s output as JSON: %v\nOutput: %s", e.Step, e.Err, e.Raw)
}

func (e *OutputError) Unwrap() error { return e.Err }

// ValidationError indicates a configuration object is missing one of
// the required fields. Validation is all-or-nothing; the first
// missing field aborts.
type ValidationError struct {
	Missing string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid WIF configuration returned from hypershift: missing field %q", e.Missing)
}
