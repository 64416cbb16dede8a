// Package truthtab enumerates complete truth tables for compiled
// evaluators.
//
// Enumeration is exhaustive by design: 2^n rows for n basic events.
// That is the exact-results tradeoff fault-tree analysis makes for
// trees of practical reliability-engineering size, not an accident,
// and it is guarded rather than silent: Calculate refuses trees above
// a configurable event limit (default 20) instead of truncating.
package truthtab

import (
	"fmt"
	"sort"

	"github.com/faultline/faultline/internal/expr"
)

// DefaultMaxEvents bounds enumeration to 2^20 rows unless the caller
// raises the limit explicitly.
const DefaultMaxEvents = 20

// TooManyEventsError reports a tree over the enumeration limit.
type TooManyEventsError struct {
	Events int
	Limit  int
}

// Error implements the error interface.
func (e *TooManyEventsError) Error() string {
	return fmt.Sprintf("truth table over %d events exceeds the %d-event limit (2^%d rows): raise MaxEvents explicitly if that cost is intended", e.Events, e.Limit, e.Events)
}

// Row is one full assignment of the evaluator's parameters plus its
// binary outcome (1 = top event occurs).
type Row struct {
	Assign  []int `json:"assign"`
	Outcome int   `json:"outcome"`
}

// Table is a complete truth table: one row per assignment in
// {0,1}^n, failing rows ordered first. Generated once per evaluator
// and reused by coverage analysis and probability evaluation.
type Table struct {
	Params []string `json:"params"`
	Rows   []Row    `json:"rows"`
}

// Option configures Calculate.
type Option func(*options)

type options struct {
	maxEvents int
}

// MaxEvents overrides the enumeration guard. Use deliberately: cost is
// O(2^n).
func MaxEvents(n int) Option {
	return func(o *options) { o.maxEvents = n }
}

// Calculate enumerates the full Cartesian product {0,1}^n over the
// evaluator's parameters, in ascending binary order with the first
// parameter as the most significant bit, then stably reorders the
// result so all failing rows come first.
func Calculate(ev *expr.Evaluator, opts ...Option) (*Table, error) {
	o := options{maxEvents: DefaultMaxEvents}
	for _, opt := range opts {
		opt(&o)
	}

	n := ev.Arity()
	if n > o.maxEvents {
		return nil, &TooManyEventsError{Events: n, Limit: o.maxEvents}
	}

	total := 1 << n
	rows := make([]Row, total)
	vals := make([]int, n)
	for c := 0; c < total; c++ {
		for j := 0; j < n; j++ {
			vals[j] = (c >> (n - 1 - j)) & 1
		}
		result, err := ev.EvalRow(vals)
		if err != nil {
			return nil, err
		}
		assign := make([]int, n)
		copy(assign, vals)
		outcome := 0
		if expr.Failed(result) {
			outcome = 1
		}
		rows[c] = Row{Assign: assign, Outcome: outcome}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Outcome > rows[j].Outcome
	})

	return &Table{Params: append([]string(nil), ev.Params()...), Rows: rows}, nil
}

// Failures returns the number of rows with outcome 1.
func (t *Table) Failures() int {
	count := 0
	for _, r := range t.Rows {
		count += r.Outcome
	}
	return count
}

// FailingRows returns the rows with outcome 1. Since failing rows sort
// first, this is a prefix slice of Rows.
func (t *Table) FailingRows() []Row {
	return t.Rows[:t.Failures()]
}

// ParamIndex returns the column position of an event name, or -1.
func (t *Table) ParamIndex(event string) int {
	for i, p := range t.Params {
		if p == event {
			return i
		}
	}
	return -1
}
