package cli

import (
	"github.com/spf13/cobra"

	"github.com/faultline/faultline/internal/quantify"
)

// ProbResult is the JSON payload of the prob command.
type ProbResult struct {
	Tree        string    `json:"tree"`
	Probability *float64  `json:"probability,omitempty"` // from the probabilities section
	Scenarios   []bool    `json:"scenarios,omitempty"`   // binary scenario outcomes
	Weighted    []float64 `json:"weighted,omitempty"`    // per-scenario probabilities via populate
}

// NewProbCommand creates the prob command.
func NewProbCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{RootOptions: rootOpts}
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "prob <tree-dir>",
		Short: "Evaluate scenarios and failure probability",
		Long: `Evaluate a fault tree against a YAML scenario document.

The probabilities section yields the exact top-event failure
probability by marginalization over the truth table, assuming
independent basic events. The scenarios section is evaluated in
binary mode (pass/fail per row); when both sections are present the
binary scenarios are additionally probability-weighted via populate
and re-marginalized per row.`,
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

			doc, err := LoadScenarios(scenarioPath)
			if err != nil {
				return loadFailure(formatter, err)
			}

			name, _, a, err := analyzeTree(formatter, args[0], opts)
			if err != nil {
				return err
			}

			result := ProbResult{Tree: name}
			if len(doc.Probabilities) > 0 {
				p, err := quantify.QuantifyProbVector(a.Table, doc.Probabilities)
				if err != nil {
					formatter.Error(ErrCodeGeneric, err.Error(), nil)
					return WrapExitError(ExitFailure, "probability evaluation", err)
				}
				result.Probability = &p
			}
			if len(doc.Scenarios) > 0 {
				sc := doc.ScenarioTable()
				outcomes, err := quantify.Quantify(a.Evaluator, sc)
				if err != nil {
					formatter.Error(ErrCodeGeneric, err.Error(), nil)
					return WrapExitError(ExitFailure, "scenario evaluation", err)
				}
				result.Scenarios = outcomes

				if len(doc.Probabilities) > 0 {
					weighted, err := quantify.Populate(sc, doc.Probabilities)
					if err != nil {
						formatter.Error(ErrCodeGeneric, err.Error(), nil)
						return WrapExitError(ExitFailure, "scenario weighting", err)
					}
					result.Weighted, err = quantify.QuantifyProb(a.Table, weighted)
					if err != nil {
						formatter.Error(ErrCodeGeneric, err.Error(), nil)
						return WrapExitError(ExitFailure, "scenario weighting", err)
					}
				}
			}
			return formatter.Success(result)
		},
	}

	registerAnalyzeFlags(cmd, opts)
	cmd.Flags().StringVarP(&scenarioPath, "scenarios", "s", "", "YAML scenario document (required)")
	cmd.MarkFlagRequired("scenarios")
	return cmd
}
