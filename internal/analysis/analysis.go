// Package analysis wires the full fault-tree pipeline: gate
// compilation, equation flattening, evaluator compilation, truth-table
// enumeration, MOCUS expansion, minimization and coverage, in one
// deterministic single-threaded pass.
//
// Every stage is a pure function of the input tree, so running the
// same tree twice yields the same Analysis (cut sets in canonical
// order). There is no shared mutable state and nothing to lock.
package analysis

import (
	"fmt"

	"github.com/faultline/faultline/internal/compiler"
	"github.com/faultline/faultline/internal/coverage"
	"github.com/faultline/faultline/internal/expr"
	"github.com/faultline/faultline/internal/ftree"
	"github.com/faultline/faultline/internal/minimize"
	"github.com/faultline/faultline/internal/mocus"
	"github.com/faultline/faultline/internal/truthtab"
)

// Options configures a pipeline run.
type Options struct {
	// Backend selects the minimizer; defaults to BackendMocus.
	Backend minimize.Backend
	// MaxEvents overrides the truth-table enumeration guard.
	MaxEvents int
	// CrossCheck additionally runs the other minimizer backend and
	// fails if the two disagree on the minimal cut sets.
	CrossCheck bool
}

// Analysis carries every artifact of one pipeline run.
type Analysis struct {
	Gates      ftree.GateTable
	Equation   ftree.Equation
	Evaluator  *expr.Evaluator
	Table      *truthtab.Table
	RawCutSets []ftree.CutSet
	MinCutSets []ftree.CutSet
	Coverage   []coverage.Record
}

// Run executes the whole pipeline over a fault tree. The tree is
// validated once at the compiler boundary; everything downstream
// assumes a well-formed acyclic tree.
func Run(t *ftree.Tree, opts Options) (*Analysis, error) {
	if opts.Backend == "" {
		opts.Backend = minimize.BackendMocus
	}

	gates, err := compiler.Curate(t)
	if err != nil {
		return nil, err
	}
	equation, err := compiler.Equate(gates)
	if err != nil {
		return nil, err
	}
	evaluator, err := expr.Formulate(equation)
	if err != nil {
		return nil, err
	}

	var tableOpts []truthtab.Option
	if opts.MaxEvents > 0 {
		tableOpts = append(tableOpts, truthtab.MaxEvents(opts.MaxEvents))
	}
	table, err := truthtab.Calculate(evaluator, tableOpts...)
	if err != nil {
		return nil, err
	}

	raw, err := mocus.Expand(gates)
	if err != nil {
		return nil, err
	}

	source := minimize.Source{CutSets: raw, Table: table}
	mincuts, err := minimize.Concentrate(source, opts.Backend)
	if err != nil {
		return nil, err
	}

	if opts.CrossCheck {
		if err := crossCheck(source, opts.Backend, mincuts); err != nil {
			return nil, err
		}
	}

	cov, err := coverage.Tabulate(mincuts, table)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Gates:      gates,
		Equation:   equation,
		Evaluator:  evaluator,
		Table:      table,
		RawCutSets: raw,
		MinCutSets: mincuts,
		Coverage:   cov,
	}, nil
}

// crossCheck runs the other backend and compares cut-set families.
// Both backends emit canonical order, so slice comparison suffices.
func crossCheck(src minimize.Source, used minimize.Backend, got []ftree.CutSet) error {
	other := minimize.BackendCCubes
	if used == minimize.BackendCCubes {
		other = minimize.BackendMocus
	}
	alt, err := minimize.Concentrate(src, other)
	if err != nil {
		return fmt.Errorf("cross-check with %s backend: %w", other, err)
	}
	if len(alt) != len(got) {
		return fmt.Errorf("minimizer backends disagree: %s found %d minimal cut sets, %s found %d",
			used, len(got), other, len(alt))
	}
	for i := range got {
		if !got[i].Equal(alt[i]) {
			return fmt.Errorf("minimizer backends disagree at cut set %d: %s says %q, %s says %q",
				i, used, got[i].String(), other, alt[i].String())
		}
	}
	return nil
}
