// Package cli exposes the operation table as a cobra command tree.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nandemo-ya/latticectl/internal/awsclient"
	"github.com/nandemo-ya/latticectl/internal/config"
	"github.com/nandemo-ya/latticectl/internal/dispatch"
	"github.com/nandemo-ya/latticectl/internal/lattice"
	"github.com/nandemo-ya/latticectl/internal/logging"
	"github.com/nandemo-ya/latticectl/internal/output"
)

// Exit codes
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUsage     = 2
	ExitCancelled = 130
)

// Client is the remote client handle used by operation commands.
type Client interface {
	lattice.API
	Endpoint() string
}

var _ Client = (*awsclient.Client)(nil)

// ClientFactory creates the remote client once configuration is loaded.
type ClientFactory func(ctx context.Context, cfg awsclient.Config) (Client, error)

// DefaultClientFactory connects to VPC Lattice through the AWS SDK.
func DefaultClientFactory(ctx context.Context, cfg awsclient.Config) (Client, error) {
	client, err := awsclient.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// App holds the dependencies of one command-line run
type App struct {
	Stdin  *os.File
	Stdout io.Writer
	Stderr io.Writer

	// NewClient creates the remote client; DefaultClientFactory when nil
	NewClient ClientFactory

	// Confirmer asks before mutating operations; a terminal prompt when nil
	Confirmer dispatch.Confirmer

	// Registry is the operation table; lattice.Registry() when nil
	Registry *dispatch.Registry[lattice.API]

	cfg    *config.Config
	format output.Format
	ran    bool
}

// NewApp creates an App writing to stdout and stderr.
func NewApp(stdout, stderr io.Writer) *App {
	return &App{
		Stdin:     os.Stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		NewClient: DefaultClientFactory,
	}
}

// Run executes args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return NewApp(stdout, stderr).Run(ctx, args)
}

// Run executes args and returns the process exit code. Failures are
// reported on Stderr.
func (a *App) Run(ctx context.Context, args []string) int {
	if a.Registry == nil {
		a.Registry = lattice.Registry()
	}
	if a.NewClient == nil {
		a.NewClient = DefaultClientFactory
	}
	a.format = output.FormatJSON
	a.ran = false

	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	if !a.ran && !isTyped(err) {
		err = &usageError{err: err}
	}
	a.reportError(err)
	return exitCode(err)
}

func (a *App) newRootCommand() *cobra.Command {
	var (
		configPath string
		noColor    bool
	)

	root := &cobra.Command{
		Use:   "latticectl",
		Short: "latticectl - command line client for Amazon VPC Lattice",
		Long: `latticectl maps each Amazon VPC Lattice API operation to a command.
Parameters are given as flags, results are printed as json, yaml or text,
and mutating operations ask for confirmation unless --force is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				pterm.DisableStyling()
			}

			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return &configError{err: err}
			}
			a.cfg = cfg

			format, err := output.ParseFormat(cfg.Output.Format)
			if err != nil {
				return &configError{err: err}
			}
			a.format = format

			logging.Initialize(&logging.Config{
				Level:           logging.ParseLevel(cfg.Log.Level),
				Format:          cfg.Log.Format,
				Output:          a.Stderr,
				UseCustomFormat: true,
			})
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./latticectl.yaml, $HOME/.latticectl/latticectl.yaml)")
	flags.String("region", "", "AWS region")
	flags.String("profile", "", "AWS shared config profile")
	flags.String("endpoint-url", "", "Override the VPC Lattice endpoint URL")
	flags.StringP("output", "o", "json", "Output format: json, yaml, text")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")
	flags.String("confirm-threshold", "high", "Lowest impact that asks for confirmation (low, medium, high, or none to never ask)")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.AddCommand(a.newVersionCommand())
	root.AddCommand(a.newOperationsCommand())
	for _, op := range a.Registry.Operations() {
		root.AddCommand(a.newOperationCommand(op))
	}

	return root
}

// usageError reports a command line that could not be parsed.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// configError reports unusable configuration.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func isTyped(err error) bool {
	var (
		usage   *usageError
		cfg     *configError
		missing *dispatch.MissingRequiredParameterError
		invalid *dispatch.InvalidParameterValueError
		sel     *dispatch.InvalidProjectionSelectorError
		remote  *dispatch.RemoteServiceError
		cancel  *dispatch.CancelledError
	)
	return errors.As(err, &usage) || errors.As(err, &cfg) ||
		errors.As(err, &missing) || errors.As(err, &invalid) || errors.As(err, &sel) ||
		errors.As(err, &remote) || errors.As(err, &cancel) ||
		errors.Is(err, dispatch.ErrUnknownOperation) || errors.Is(err, dispatch.ErrInternal)
}

// errorBody is the structured form of a failure
type errorBody struct {
	Type      string `json:"type" yaml:"type"`
	Operation string `json:"operation,omitempty" yaml:"operation,omitempty"`
	Code      string `json:"code,omitempty" yaml:"code,omitempty"`
	Message   string `json:"message" yaml:"message"`
}

func describe(err error) errorBody {
	var (
		usage   *usageError
		cfg     *configError
		missing *dispatch.MissingRequiredParameterError
		invalid *dispatch.InvalidParameterValueError
		sel     *dispatch.InvalidProjectionSelectorError
		remote  *dispatch.RemoteServiceError
		cancel  *dispatch.CancelledError
	)

	body := errorBody{Message: err.Error()}
	switch {
	case errors.As(err, &cancel):
		body.Type, body.Operation = "OperationCancelled", cancel.Operation
	case errors.As(err, &missing):
		body.Type, body.Operation = "MissingRequiredParameter", missing.Operation
	case errors.As(err, &sel):
		body.Type, body.Operation = "InvalidProjectionSelector", sel.Operation
	case errors.As(err, &invalid):
		body.Type, body.Operation = "InvalidParameterValue", invalid.Operation
	case errors.As(err, &remote):
		body.Type, body.Operation, body.Code = "RemoteServiceError", remote.Operation, remote.Code
		if remote.DNS {
			body.Code = "EndpointResolutionFailure"
		}
	case errors.Is(err, dispatch.ErrUnknownOperation):
		body.Type = "UnknownOperation"
	case errors.Is(err, dispatch.ErrInternal):
		body.Type = "InternalError"
	case errors.As(err, &cfg):
		body.Type = "ConfigurationError"
	case errors.As(err, &usage):
		body.Type = "UsageError"
	default:
		body.Type = "Error"
	}
	return body
}

func exitCode(err error) int {
	var (
		usage   *usageError
		missing *dispatch.MissingRequiredParameterError
		invalid *dispatch.InvalidParameterValueError
		sel     *dispatch.InvalidProjectionSelectorError
		cancel  *dispatch.CancelledError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &cancel):
		return ExitCancelled
	case errors.As(err, &missing), errors.As(err, &invalid), errors.As(err, &sel),
		errors.As(err, &usage), errors.Is(err, dispatch.ErrUnknownOperation):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// reportError writes err to Stderr in the configured output format.
func (a *App) reportError(err error) {
	envelope := map[string]errorBody{"error": describe(err)}

	switch a.format {
	case output.FormatYAML:
		encoder := yaml.NewEncoder(a.Stderr)
		encoder.SetIndent(2)
		if encoder.Encode(envelope) == nil {
			_ = encoder.Close()
			return
		}
	case output.FormatText:
		fmt.Fprintln(a.Stderr, pterm.Error.Sprint(err.Error()))
		return
	default:
		encoder := json.NewEncoder(a.Stderr)
		encoder.SetIndent("", "  ")
		if encoder.Encode(envelope) == nil {
			return
		}
	}
	fmt.Fprintln(a.Stderr, err)
}
