// Package coverage measures how much of the failure space each
// minimal cut set explains.
//
// Coverage is row-counted over the truth table: every failing row
// weighs the same, regardless of how likely its assignment is.
// Probability-weighted coverage would be a different metric, not a
// fix; row counting is the defined behavior.
package coverage

import (
	"errors"
	"fmt"

	"github.com/faultline/faultline/internal/ftree"
	"github.com/faultline/faultline/internal/truthtab"
)

// ErrNoFailures reports a truth table with no failing rows: coverage
// is undefined (division by zero), not silently NaN.
var ErrNoFailures = errors.New("coverage: truth table has no failing rows")

// Predicate is a live row filter: it holds exactly when every event of
// the record's cut set is 1 in the row and the row's outcome is 1.
type Predicate func(truthtab.Row) bool

// Record is the coverage result for one minimal cut set.
type Record struct {
	// MinCut is the cut set rendered as a `*`-joined product term.
	MinCut string `json:"mincut"`
	// Query is the derived filter predicate; applying it to the same
	// truth table reproduces CutSets exactly.
	Query Predicate `json:"-"`
	// CutSets counts the failing rows matched by Query.
	CutSets int `json:"cutsets"`
	// Failures counts all failing rows of the table.
	Failures int `json:"failures"`
	// Coverage is CutSets / Failures.
	Coverage float64 `json:"coverage"`
}

// Tabulate computes one Record per minimal cut set against a truth
// table. Every cut-set event must be a table parameter; a cut set
// naming an unknown event is an error naming it.
func Tabulate(mincuts []ftree.CutSet, table *truthtab.Table) ([]Record, error) {
	failures := table.Failures()
	if failures == 0 {
		return nil, ErrNoFailures
	}

	records := make([]Record, 0, len(mincuts))
	for _, mc := range mincuts {
		cols := make([]int, len(mc))
		for i, ev := range mc {
			idx := table.ParamIndex(ev)
			if idx < 0 {
				return nil, fmt.Errorf("coverage: cut set %q names unknown basic event %q", mc.String(), ev)
			}
			cols[i] = idx
		}

		query := func(row truthtab.Row) bool {
			if row.Outcome != 1 {
				return false
			}
			for _, c := range cols {
				if row.Assign[c] != 1 {
					return false
				}
			}
			return true
		}

		matched := 0
		for _, row := range table.Rows {
			if query(row) {
				matched++
			}
		}

		records = append(records, Record{
			MinCut:   mc.String(),
			Query:    query,
			CutSets:  matched,
			Failures: failures,
			Coverage: float64(matched) / float64(failures),
		})
	}
	return records, nil
}
