package harness

import (
	"fmt"
	"math"
	"strings"

	"github.com/faultline/faultline/internal/analysis"
	"github.com/faultline/faultline/internal/expr"
	"github.com/faultline/faultline/internal/minimize"
	"github.com/faultline/faultline/internal/quantify"
)

// defaultTolerance bounds probability comparisons when a check does
// not set its own.
const defaultTolerance = 1e-12

// Failure is one unmet expectation. The harness collects all failures
// of a scenario instead of stopping at the first.
type Failure struct {
	Check   string
	Message string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s", f.Check, f.Message)
}

// Execute runs a scenario through the full pipeline with both
// minimizer backends and returns every unmet expectation. An empty
// slice means the scenario passed.
func Execute(s *Scenario) (*analysis.Analysis, []Failure, error) {
	tree := s.BuildTree()
	a, err := analysis.Run(tree, analysis.Options{
		Backend:    minimize.BackendMocus,
		CrossCheck: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("scenario %s: pipeline: %w", s.Name, err)
	}

	var failures []Failure
	fail := func(check, format string, args ...any) {
		failures = append(failures, Failure{Check: check, Message: fmt.Sprintf(format, args...)})
	}

	if want := s.Expect.Equation; want != "" && want != string(a.Equation) {
		fail("equation", "got %s, want %s", a.Equation, want)
	}

	got := make([]string, len(a.MinCutSets))
	for i, cs := range a.MinCutSets {
		got[i] = cs.String()
	}
	if want := s.Expect.MinCutSets; strings.Join(got, " + ") != strings.Join(want, " + ") {
		fail("mincuts", "got [%s], want [%s]", strings.Join(got, ", "), strings.Join(want, ", "))
	}

	if got, want := a.Table.Failures(), s.Expect.Failures; got != want {
		fail("failures", "got %d failing rows, want %d", got, want)
	}

	for i, check := range s.Assignments {
		result, err := a.Evaluator.Eval(check.Assign)
		if err != nil {
			fail("assignment", "row %d: %v", i, err)
			continue
		}
		if expr.Failed(result) != check.Fail {
			fail("assignment", "row %d: got fail=%v, want fail=%v", i, expr.Failed(result), check.Fail)
		}
	}

	for i, check := range s.Probabilities {
		p, err := quantify.QuantifyProbVector(a.Table, check.Probs)
		if err != nil {
			fail("probability", "row %d: %v", i, err)
			continue
		}
		tol := check.Tolerance
		if tol == 0 {
			tol = defaultTolerance
		}
		if math.Abs(p-check.Value) > tol {
			fail("probability", "row %d: got %g, want %g (tolerance %g)", i, p, check.Value, tol)
		}
	}

	return a, failures, nil
}
