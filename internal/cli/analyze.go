package cli

import (
	"github.com/spf13/cobra"

	"github.com/faultline/faultline/internal/analysis"
	"github.com/faultline/faultline/internal/ftree"
	"github.com/faultline/faultline/internal/minimize"
)

// AnalyzeOptions holds the flags shared by every command that runs the
// full pipeline.
type AnalyzeOptions struct {
	*RootOptions
	Backend    string
	MaxEvents  int
	CrossCheck bool
}

// registerAnalyzeFlags wires the shared pipeline flags onto a command.
func registerAnalyzeFlags(cmd *cobra.Command, opts *AnalyzeOptions) {
	cmd.Flags().StringVar(&opts.Backend, "backend", string(minimize.BackendMocus), "minimizer backend (mocus|ccubes)")
	cmd.Flags().IntVar(&opts.MaxEvents, "max-events", 0, "override the truth-table event limit (cost is 2^n)")
	cmd.Flags().BoolVar(&opts.CrossCheck, "cross-check", false, "verify both minimizer backends agree")
}

// analyzeTree loads a tree directory and runs the full pipeline.
func analyzeTree(formatter *OutputFormatter, dir string, opts *AnalyzeOptions) (string, *ftree.Tree, *analysis.Analysis, error) {
	name, tree, err := LoadTree(dir)
	if err != nil {
		return "", nil, nil, loadFailure(formatter, err)
	}

	a, err := analysis.Run(tree, analysis.Options{
		Backend:    minimize.Backend(opts.Backend),
		MaxEvents:  opts.MaxEvents,
		CrossCheck: opts.CrossCheck,
	})
	if err != nil {
		return "", nil, nil, compileFailure(formatter, err)
	}
	formatter.VerboseLog("analyzed tree %q: %d gates, %d basic events, %d minimal cut sets",
		name, len(a.Gates), a.Evaluator.Arity(), len(a.MinCutSets))
	return name, tree, a, nil
}
