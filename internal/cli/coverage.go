package cli

import (
	"github.com/spf13/cobra"

	"github.com/faultline/faultline/internal/coverage"
)

// CoverageResult is the JSON payload of the coverage command.
type CoverageResult struct {
	Tree    string            `json:"tree"`
	Backend string            `json:"backend"`
	Records []coverage.Record `json:"records"`
}

// NewCoverageCommand creates the coverage command.
func NewCoverageCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "coverage <tree-dir>",
		Short: "Compute truth-table coverage per minimal cut set",
		Long: `Compute, for each minimal cut set, how many failing truth-table
rows it explains and the resulting coverage fraction.`,
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

			result := CoverageResult{Tree: name, Backend: opts.Backend, Records: a.Coverage}
			return formatter.SuccessText(renderCoverage(a.Coverage), result)
		},
	}

	registerAnalyzeFlags(cmd, opts)
	return cmd
}
