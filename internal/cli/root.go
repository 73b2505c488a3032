// Package cli implements auditctl, the operator command line for the admin
// audit log.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"admin-audit-log/config"
	"admin-audit-log/internal/bootstrap"
	"admin-audit-log/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ErrIntegrity is returned by verify when the log is not fully intact.
var ErrIntegrity = errors.New("integrity check failed")

type app struct {
	configPath string
	logLevel   string
	stdout     io.Writer
	stderr     io.Writer
}

func NewRootCommand() *cobra.Command {
	return newRootCommand(os.Stdout, os.Stderr)
}

func NewRootCommandWithIO(out, errOut io.Writer) *cobra.Command {
	return newRootCommand(out, errOut)
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{stdout: out, stderr: errOut}

	cmd := &cobra.Command{
		Use:           "auditctl",
		Short:         "Operate the admin audit log",
		Long:          "auditctl verifies and exports the admin audit log directly from its store, and issues admin tokens for the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to the config file (default ./config.yaml or ./config/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level written to stderr")

	cmd.AddCommand(
		newVerifyCmd(a),
		newExportCmd(a),
		newTokenCmd(a),
	)
	return cmd
}

func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) logger() zerolog.Logger {
	return logger.NewWithWriter(a.logLevel, a.stderr)
}

// openStack loads the config and opens the configured store. The caller
// closes the returned stack.
func (a *app) openStack(ctx context.Context) (*config.Config, *bootstrap.Stack, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Signing.Key == "" {
		return nil, nil, errors.New("signing.key is required (AAL_SIGNING_KEY)")
	}
	// The CLI reads the store only; it never takes the append lock.
	cfg.Redis.Enabled = false

	stack, err := bootstrap.Open(ctx, cfg, a.logger())
	if err != nil {
		return nil, nil, fmt.Errorf("opening audit store: %w", err)
	}
	return cfg, stack, nil
}

// Execute runs auditctl and returns the process exit code.
func Execute(args []string, out, errOut io.Writer) int {
	root := NewRootCommandWithIO(out, errOut)
	root.SetArgs(args)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return 0
}
