package cli

import (
	"github.com/spf13/cobra"

	"github.com/faultline/faultline/internal/minimize"
)

// CutsetsResult is the JSON payload of the cutsets command.
type CutsetsResult struct {
	Tree    string   `json:"tree"`
	Backend string   `json:"backend"`
	Raw     []string `json:"raw,omitempty"`
	Minimal []string `json:"minimal"`
	Render  string   `json:"render"`
}

// NewCutsetsCommand creates the cutsets command.
func NewCutsetsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{RootOptions: rootOpts}
	var showRaw bool

	cmd := &cobra.Command{
		Use:   "cutsets <tree-dir>",
		Short: "Compute minimal cut sets",
		Long: `Compute the minimal cut sets of a fault tree.

Raw cut sets come from MOCUS top-down gate expansion; minimization
runs either symbolic absorption of the MOCUS output (mocus backend)
or Quine-McCluskey cube reduction over the truth table (ccubes
backend). Both backends yield the same family for a valid tree.`,
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

			result := CutsetsResult{
				Tree:    name,
				Backend: opts.Backend,
				Minimal: make([]string, len(a.MinCutSets)),
				Render:  minimize.Render(a.MinCutSets),
			}
			for i, cs := range a.MinCutSets {
				result.Minimal[i] = cs.String()
			}
			if showRaw {
				result.Raw = make([]string, len(a.RawCutSets))
				for i, cs := range a.RawCutSets {
					result.Raw[i] = cs.String()
				}
			}

			text := renderCutSets(a.MinCutSets)
			if showRaw {
				text = "RAW\n" + renderCutSets(a.RawCutSets) + "\nMINIMAL\n" + text
			}
			return formatter.SuccessText(text, result)
		},
	}

	registerAnalyzeFlags(cmd, opts)
	cmd.Flags().BoolVar(&showRaw, "raw", false, "also list raw (unminimized) MOCUS cut sets")
	return cmd
}
