package expr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/faultline/faultline/internal/ftree"
)

// Evaluator is a compiled boolean failure condition. Its parameters
// are exactly the basic events of the equation, sorted and
// deduplicated; each evaluation is a pure recursive walk, so a single
// Evaluator is safe to call any number of times (including 2^n times
// during truth-table enumeration) with no side effects.
type Evaluator struct {
	params []string
	slots  map[string]int
	root   Expr
}

// MissingEventsError reports an assignment that lacks values for some
// of the evaluator's parameters.
type MissingEventsError struct {
	Events []string
}

// Error implements the error interface.
func (e *MissingEventsError) Error() string {
	return fmt.Sprintf("assignment missing basic events: %s", strings.Join(e.Events, ", "))
}

// Formulate compiles an equation into an Evaluator. The parameter set
// is extracted from the equation itself; malformed equations are
// rejected here, never at call time.
func Formulate(eq ftree.Equation) (*Evaluator, error) {
	root, err := parse(string(eq))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	collectVars(root, func(v *Var) {
		seen[v.Name] = true
	})
	params := make([]string, 0, len(seen))
	for name := range seen {
		params = append(params, name)
	}
	sort.Strings(params)

	slots := make(map[string]int, len(params))
	for i, name := range params {
		slots[name] = i
	}
	collectVars(root, func(v *Var) {
		v.slot = slots[v.Name]
	})

	return &Evaluator{params: params, slots: slots, root: root}, nil
}

func collectVars(e Expr, fn func(*Var)) {
	switch n := e.(type) {
	case *Var:
		fn(n)
	case And:
		for _, op := range n {
			collectVars(op, fn)
		}
	case Or:
		for _, op := range n {
			collectVars(op, fn)
		}
	}
}

// Params returns the sorted basic-event parameter list.
// The returned slice is shared; callers must not mutate it.
func (ev *Evaluator) Params() []string {
	return ev.params
}

// Arity returns the number of parameters.
func (ev *Evaluator) Arity() int { return len(ev.params) }

// String renders the compiled expression in canonical form.
func (ev *Evaluator) String() string { return Render(ev.root) }

// Eval evaluates the expression for a named 0/1 assignment. Every
// parameter must be present; missing events are a hard error naming
// the absent events. Extra keys are ignored.
func (ev *Evaluator) Eval(assign map[string]int) (int, error) {
	vals := make([]int, len(ev.params))
	var missing []string
	for i, name := range ev.params {
		v, ok := assign[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		vals[i] = v
	}
	if len(missing) > 0 {
		return 0, &MissingEventsError{Events: missing}
	}
	return ev.root.eval(vals), nil
}

// EvalRow evaluates the expression for a positional assignment aligned
// with Params(). It is the hot path for truth-table enumeration.
func (ev *Evaluator) EvalRow(vals []int) (int, error) {
	if len(vals) != len(ev.params) {
		return 0, fmt.Errorf("assignment has %d values, evaluator has %d parameters", len(vals), len(ev.params))
	}
	return ev.root.eval(vals), nil
}

// Failed thresholds an evaluation result: any value >= 1 means the
// top event is reachable through at least one satisfied minterm.
func Failed(result int) bool { return result >= 1 }
