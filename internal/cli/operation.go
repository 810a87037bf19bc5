package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nandemo-ya/latticectl/internal/awsclient"
	"github.com/nandemo-ya/latticectl/internal/dispatch"
	"github.com/nandemo-ya/latticectl/internal/lattice"
	"github.com/nandemo-ya/latticectl/internal/output"
)

const (
	selectFlag     = "select"
	forceFlag      = "force"
	noPaginateFlag = "no-paginate"
	fileScheme     = "file://"
)

func (a *App) newOperationCommand(op *dispatch.Operation[lattice.API]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   op.Command,
		Short: op.Summary,
		Long:  operationHelp(op),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperation(cmd, op)
		},
	}

	flags := cmd.Flags()
	for _, p := range op.Params {
		addParamFlag(flags, p)
	}

	selectUsage := fmt.Sprintf("Field of the response to print, ^param to echo a parameter, or * for everything (default %q)", op.DefaultSelect)
	flags.String(selectFlag, "", selectUsage)
	if op.Impact != dispatch.ImpactNone {
		flags.Bool(forceFlag, false, "Skip the confirmation prompt")
	}
	if op.Paginated() {
		flags.Bool(noPaginateFlag, false, "Return only the first page of results")
	}

	return cmd
}

func operationHelp(op *dispatch.Operation[lattice.API]) string {
	var b strings.Builder
	b.WriteString(op.Summary)
	fmt.Fprintf(&b, "\n\nCalls the VPC Lattice %s API.", op.Name)
	if op.Impact != dispatch.ImpactNone {
		fmt.Fprintf(&b, " Impact: %s; asks for confirmation when the configured threshold is at or below it.", op.Impact)
	}
	if op.Paginated() {
		fmt.Fprintf(&b, "\nAll pages are fetched and %s is merged unless --%s or --%s is given.", op.Items, noPaginateFlag, dispatch.NextTokenParam)
	}
	return b.String()
}

func addParamFlag(flags *pflag.FlagSet, p dispatch.Param) {
	usage := p.Usage
	if len(p.Enum) > 0 {
		usage += " One of: " + strings.Join(p.Enum, ", ") + "."
	}
	if p.Kind == dispatch.KindJSON {
		usage += " Prefix with " + fileScheme + " to read from a file."
	}
	if p.Required {
		usage += " (required)"
	}

	switch p.Kind {
	case dispatch.KindInt:
		flags.Int(p.Name, 0, usage)
	case dispatch.KindBool:
		flags.Bool(p.Name, false, usage)
	case dispatch.KindStringList:
		flags.StringSlice(p.Name, nil, usage)
	case dispatch.KindStringMap:
		flags.StringToString(p.Name, nil, usage)
	default:
		flags.String(p.Name, "", usage)
	}
}

// bindParams collects the parameters whose flags were set on the command
// line. Unset flags stay unbound.
func bindParams(flags *pflag.FlagSet, op *dispatch.Operation[lattice.API]) (dispatch.Values, error) {
	values := dispatch.Values{}
	for _, p := range op.Params {
		if !flags.Changed(p.Name) {
			continue
		}

		var (
			value any
			err   error
		)
		switch p.Kind {
		case dispatch.KindInt:
			value, err = flags.GetInt(p.Name)
		case dispatch.KindBool:
			value, err = flags.GetBool(p.Name)
		case dispatch.KindStringList:
			value, err = flags.GetStringSlice(p.Name)
		case dispatch.KindStringMap:
			value, err = flags.GetStringToString(p.Name)
		case dispatch.KindJSON:
			value, err = readDocument(flags, p.Name)
		default:
			value, err = flags.GetString(p.Name)
		}
		if err != nil {
			return nil, &dispatch.InvalidParameterValueError{Operation: op.Name, Parameter: p.Name, Err: err}
		}
		values[p.Name] = value
	}
	return values, nil
}

func readDocument(flags *pflag.FlagSet, name string) (string, error) {
	text, err := flags.GetString(name)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(text, fileScheme) {
		return text, nil
	}

	data, err := os.ReadFile(strings.TrimPrefix(text, fileScheme))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (a *App) runOperation(cmd *cobra.Command, op *dispatch.Operation[lattice.API]) error {
	a.ran = true
	ctx := cmd.Context()

	params, err := bindParams(cmd.Flags(), op)
	if err != nil {
		return err
	}

	req := dispatch.Request{Operation: op.Name, Params: params}
	req.Select, _ = cmd.Flags().GetString(selectFlag)
	if op.Impact != dispatch.ImpactNone {
		req.Force, _ = cmd.Flags().GetBool(forceFlag)
	}
	if op.Paginated() {
		req.NoPaginate, _ = cmd.Flags().GetBool(noPaginateFlag)
	}

	client, err := a.NewClient(ctx, awsclient.Config{
		Region:   a.cfg.AWS.Region,
		Profile:  a.cfg.AWS.Profile,
		Endpoint: a.cfg.AWS.Endpoint,
		Credentials: awsclient.Credentials{
			AccessKeyID:     a.cfg.AWS.AccessKeyID,
			SecretAccessKey: a.cfg.AWS.SecretAccessKey,
			SessionToken:    a.cfg.AWS.SessionToken,
		},
		MaxAttempts: a.cfg.AWS.MaxAttempts,
	})
	if err != nil {
		return &configError{err: err}
	}

	confirmer := a.Confirmer
	if confirmer == nil {
		confirmer = &terminalConfirmer{in: a.Stdin, out: a.Stderr}
	}

	d := dispatch.New[lattice.API](client, a.Registry, dispatch.Config{
		Confirmer: confirmer,
		Threshold: a.cfg.Threshold(),
		Endpoint:  client.Endpoint(),
	})

	env := d.Dispatch(ctx, req)
	if env.Err != nil {
		return env.Err
	}
	if env.Declined {
		fmt.Fprintln(a.Stderr, pterm.Warning.Sprintf("%s skipped: not confirmed", op.Name))
		return nil
	}

	return output.Render(cmd.OutOrStdout(), a.format, env.Payload)
}
