package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faultline/faultline/internal/compiler"
	"github.com/faultline/faultline/internal/ftree"
)

// CompilationResult holds the compiled gate table and flat equation.
type CompilationResult struct {
	Tree     string          `json:"tree"`
	Gates    ftree.GateTable `json:"gates"`
	Equation string          `json:"equation"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <tree-dir>",
		Short: "Compile a fault tree to its gate table and equation",
		Long: `Compile a fault tree defined in CUE files.

The compiler validates the tree, reduces it to one row per gate with
the boolean fragment over its immediate children, then inlines gate
references bottom-up into the flat failure equation over basic events.`,
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

			name, tree, err := LoadTree(args[0])
			if err != nil {
				return loadFailure(formatter, err)
			}

			gates, err := compiler.Curate(tree)
			if err != nil {
				return compileFailure(formatter, err)
			}
			equation, err := compiler.Equate(gates)
			if err != nil {
				return compileFailure(formatter, err)
			}
			formatter.VerboseLog("compiled %d gates", len(gates))

			result := CompilationResult{Tree: name, Gates: gates, Equation: string(equation)}
			text := renderGateTable(gates) + fmt.Sprintf("\nEQUATION %s\n", equation)
			return formatter.SuccessText(text, result)
		},
	}
}

// compileFailure reports a compiler error and converts it to an exit
// error carrying the first validation code.
func compileFailure(formatter *OutputFormatter, err error) error {
	var treeErr *compiler.InvalidTreeError
	if errors.As(err, &treeErr) {
		formatter.Error(treeErr.Errors[0].Code, "fault tree is invalid", treeErr.Errors)
	} else {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
	}
	return WrapExitError(ExitFailure, "compiling fault tree", err)
}
