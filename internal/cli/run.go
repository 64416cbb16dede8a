package cli

import (
	"github.com/spf13/cobra"

	"github.com/faultline/faultline/internal/store"
)

// RunResult is the JSON payload of the run command.
type RunResult struct {
	Tree     string   `json:"tree"`
	RunID    string   `json:"run_id"`
	Equation string   `json:"equation"`
	Minimal  []string `json:"minimal"`
	Failures int      `json:"failures"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnalyzeOptions{RootOptions: rootOpts}
	var dbPath, runName string

	cmd := &cobra.Command{
		Use:   "run <tree-dir>",
		Short: "Run the full analysis and persist the results",
		Long: `Run the complete pipeline over a fault tree and save the run
(tree snapshot, equation, minimal cut sets, coverage) to a SQLite
database for later reporting.`,
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

			name, tree, a, err := analyzeTree(formatter, args[0], opts)
			if err != nil {
				return err
			}
			if runName == "" {
				runName = name
			}

			db, err := store.Open(dbPath)
			if err != nil {
				formatter.Error(ErrCodeGeneric, err.Error(), nil)
				return WrapExitError(ExitCommandError, "opening database", err)
			}
			defer db.Close()

			runID, err := db.SaveRun(cmd.Context(), runName, tree, a)
			if err != nil {
				formatter.Error(ErrCodeGeneric, err.Error(), nil)
				return WrapExitError(ExitCommandError, "saving run", err)
			}

			result := RunResult{
				Tree:     runName,
				RunID:    runID,
				Equation: string(a.Equation),
				Minimal:  make([]string, len(a.MinCutSets)),
				Failures: a.Table.Failures(),
			}
			for i, cs := range a.MinCutSets {
				result.Minimal[i] = cs.String()
			}
			return formatter.Success(result)
		},
	}

	registerAnalyzeFlags(cmd, opts)
	cmd.Flags().StringVar(&dbPath, "db", "faultline.db", "SQLite database path")
	cmd.Flags().StringVar(&runName, "name", "", "run name (defaults to the tree name)")
	return cmd
}
