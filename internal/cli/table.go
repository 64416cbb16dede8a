package cli

import (
	"github.com/spf13/cobra"

	"github.com/faultline/faultline/internal/truthtab"
)

// TableResult is the JSON payload of the table command.
type TableResult struct {
	Tree     string          `json:"tree"`
	Equation string          `json:"equation"`
	Table    *truthtab.Table `json:"table"`
	Failures int             `json:"failures"`
}

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "table <tree-dir>",
		Short: "Enumerate the complete truth table",
		Long: `Enumerate the full truth table of a fault tree.

One row per assignment of the basic events, failing rows first.
Enumeration is exhaustive (2^n rows); trees over the event limit are
refused unless --max-events raises it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			name, _, a, err := analyzeTree(formatter, args[0], opts)
			if err != nil {
				return err
			}

			result := TableResult{
				Tree:     name,
				Equation: string(a.Equation),
				Table:    a.Table,
				Failures: a.Table.Failures(),
			}
			return formatter.SuccessText(renderTruthTable(a.Table), result)
		},
	}

	registerAnalyzeFlags(cmd, opts)
	return cmd
}
