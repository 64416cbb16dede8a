package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/faultline/faultline/internal/compiler"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <tree-dir>",
		Short: "Validate a fault-tree definition",
		Long: `Validate the structure of a fault tree defined in CUE files.

Checks for a unique TOP node, childless gates, basic events with
children, dangling edges and cycles. Exit code 1 means the tree is
structurally invalid.`,
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
			formatter.VerboseLog("validating tree %q (%d nodes, %d edges)", name, len(tree.Nodes), len(tree.Edges))

			if errs := compiler.Validate(tree); len(errs) > 0 {
				formatter.Error(errs[0].Code, "fault tree is invalid", errs)
				return WrapExitError(ExitFailure, "fault tree is invalid", &compiler.InvalidTreeError{Errors: errs})
			}
			return formatter.Success(map[string]any{
				"tree":  name,
				"nodes": len(tree.Nodes),
				"edges": len(tree.Edges),
				"valid": true,
			})
		},
	}
}

// loadFailure reports a loader error and converts it to an exit error.
func loadFailure(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		formatter.Error(loadErr.Code, loadErr.Message, nil)
	} else {
		formatter.Error(ErrCodeGeneric, err.Error(), nil)
	}
	return WrapExitError(ExitCommandError, "loading fault tree", err)
}
