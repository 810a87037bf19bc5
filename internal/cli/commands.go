package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nandemo-ya/latticectl/internal/output"
	"github.com/nandemo-ya/latticectl/internal/version"
)

func (a *App) newVersionCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version, git commit, and build date of latticectl.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.ran = true
			info := version.GetInfo()
			w := cmd.OutOrStdout()

			if jsonOutput {
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(w, string(out))
				return nil
			}

			fmt.Fprintf(w, "latticectl\n")
			fmt.Fprintf(w, "Version:    %s\n", info.Version)
			fmt.Fprintf(w, "Git commit: %s\n", info.GitCommit)
			fmt.Fprintf(w, "Built:      %s\n", info.BuildDate)
			fmt.Fprintf(w, "Go version: %s\n", info.GoVersion)
			if info.SDKVersion != "" {
				fmt.Fprintf(w, "SDK:        %s\n", info.SDKVersion)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version information in JSON format")
	return cmd
}

// operationInfo describes one operation for the operations command
type operationInfo struct {
	Command   string   `json:"command"`
	Operation string   `json:"operation"`
	Impact    string   `json:"impact"`
	Paginated bool     `json:"paginated"`
	Required  []string `json:"required,omitempty"`
	Summary   string   `json:"summary"`
}

func (a *App) newOperationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operations",
		Short: "List the supported VPC Lattice operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.ran = true

			var infos []operationInfo
			for _, op := range a.Registry.Operations() {
				info := operationInfo{
					Command:   op.Command,
					Operation: op.Name,
					Impact:    op.Impact.String(),
					Paginated: op.Paginated(),
					Summary:   op.Summary,
				}
				for _, p := range op.Params {
					if p.Required {
						info.Required = append(info.Required, p.Name)
					}
				}
				infos = append(infos, info)
			}

			return output.Render(cmd.OutOrStdout(), a.format, infos)
		},
	}
}
