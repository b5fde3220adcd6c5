// Package handlers implements the command logic behind the cobra
// command tree. Commands parse flags and delegate here; handlers load
// configuration, talk to the management API and the hypershift
// binary, and render results.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/jimdaga/gcp-hcp-cli/internal/api"
	"github.com/jimdaga/gcp-hcp-cli/internal/config"
	"github.com/jimdaga/gcp-hcp-cli/internal/hypershift"
	"github.com/jimdaga/gcp-hcp-cli/internal/output"
	"github.com/jimdaga/gcp-hcp-cli/internal/resolve"
	"github.com/jimdaga/gcp-hcp-cli/internal/wif"
)

// GlobalOptions are the root-level flags shared by every command.
type GlobalOptions struct {
	// Output selects the format; empty falls back to the configured
	// default, then table.
	Output string

	// Quiet suppresses progress output and confirmation prompts.
	Quiet bool

	// Endpoint overrides the configured management API endpoint.
	Endpoint string
}

// Client is the management API surface handlers depend on.
type Client interface {
	ListClusters(ctx context.Context, limit, offset int, status string) (*api.ClusterList, error)
	GetCluster(ctx context.Context, id string) (*api.Cluster, error)
	GetClusterStatus(ctx context.Context, id string) (*api.ClusterStatusDetail, error)
	CreateCluster(ctx context.Context, payload *api.ClusterCreate) (*api.Cluster, error)
	DeleteCluster(ctx context.Context, id string) error
	ListNodePools(ctx context.Context, clusterID string, limit int) (*api.NodePoolList, error)
	GetNodePool(ctx context.Context, id string) (*api.NodePool, error)
	CreateNodePool(ctx context.Context, payload *api.NodePoolCreate) (*api.NodePool, error)
	DeleteNodePool(ctx context.Context, id string) error
}

// Factory function variables - can be replaced in tests.
var (
	// loadConfig loads the CLI configuration.
	loadConfig = config.Load

	// newClient creates the management API client.
	newClient = func(endpoint, token string) Client {
		return api.NewClient(endpoint, token)
	}

	// newTool resolves and wraps the hypershift binary.
	newTool = func(configuredPath string, quiet bool) (hypershift.Tool, error) {
		return hypershift.NewCLI(configuredPath, quiet)
	}

	// newKeypair generates a signing keypair with its JWKS artifact.
	newKeypair = wif.GenerateKeypair

	// confirm prompts the user for a yes/no decision.
	confirm = func(title string) (bool, error) {
		var ok bool
		err := huh.NewConfirm().
			Title(title).
			Value(&ok).
			Run()
		return ok, err
	}

	// stdinIsTTY reports whether an interactive prompt is possible.
	stdinIsTTY = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// stdout is the destination for command output.
	stdout io.Writer = os.Stdout
)

// Context carries the per-invocation state every handler needs.
type Context struct {
	Config    *config.Config
	Formatter *output.Formatter
	Quiet     bool

	client   Client
	resolver *resolve.Resolver
}

// NewContext loads configuration, applies global flag overrides, and
// wires the API client and formatter.
func NewContext(global GlobalOptions) (*Context, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if global.Endpoint != "" {
		cfg.APIEndpoint = global.Endpoint
	}

	formatName := global.Output
	if formatName == "" {
		formatName = cfg.Output
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	client := newClient(cfg.APIEndpoint, cfg.APIToken)
	return &Context{
		Config:    cfg,
		Formatter: output.New(stdout, format),
		Quiet:     global.Quiet,
		client:    client,
		resolver:  resolve.New(client),
	}, nil
}

// infof prints a progress line unless quiet mode is on.
func (c *Context) infof(format string, args ...any) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(stdout, format+"\n", args...)
}

// project resolves the target project: flag first, then the
// configured default.
func (c *Context) project(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if c.Config.DefaultProject != "" {
		return c.Config.DefaultProject, nil
	}
	return "", errors.New("project ID required; use --project or set default_project")
}

// confirmAction asks before a destructive operation. The prompt is
// skipped (and treated as approved) with --yes, --force, --quiet, or
// when stdin is not a terminal.
func (c *Context) confirmAction(title string, yes, force bool) (bool, error) {
	if yes || force || c.Quiet || !stdinIsTTY() {
		return true, nil
	}
	return confirm(title)
}

// watchLoop renders immediately and then on every tick until the
// context is canceled. Cancellation is the normal way out, not an
// error.
func watchLoop(ctx context.Context, interval time.Duration, render func() error) error {
	if err := render(); err != nil {
		return err
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := render(); err != nil {
				return err
			}
		}
	}
}

// clearScreen resets the terminal between watch renders in table
// mode.
func clearScreen() {
	fmt.Fprint(stdout, "\x1b[2J\x1b[H")
}
