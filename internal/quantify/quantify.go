// Package quantify evaluates compiled fault trees against concrete
// scenarios: binary pass/fail over 0/1 assignments, and exact failure
// probability by marginalization over the truth table.
package quantify

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/faultline/faultline/internal/expr"
	"github.com/faultline/faultline/internal/ftree"
	"github.com/faultline/faultline/internal/truthtab"
)

// Scenarios is a column-oriented batch of evaluation inputs: one named
// column per basic event, one row per scenario. Binary scenarios carry
// 0/1 values; probability scenarios carry values in [0,1].
type Scenarios struct {
	Columns []string    `json:"columns"`
	Rows    [][]float64 `json:"rows"`
}

// MissingColumnsError reports scenario input lacking required
// basic-event columns.
type MissingColumnsError struct {
	Events []string
}

// Error implements the error interface.
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("scenarios missing basic-event columns: %s", strings.Join(e.Events, ", "))
}

// columnIndex maps each evaluator parameter to its scenario column.
// Missing columns are a hard error naming the events; extra columns
// are ignored.
func columnIndex(params, columns []string) ([]int, error) {
	pos := make(map[string]int, len(columns))
	for i, c := range columns {
		pos[ftree.CanonicalEvent(c)] = i
	}
	idx := make([]int, len(params))
	var missing []string
	for i, p := range params {
		j, ok := pos[p]
		if !ok {
			missing = append(missing, p)
			continue
		}
		idx[i] = j
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Events: missing}
	}
	return idx, nil
}

// Quantify evaluates binary scenarios in one pass: each row is fed to
// the evaluator and thresholded, true meaning the top event occurs.
func Quantify(ev *expr.Evaluator, sc Scenarios) ([]bool, error) {
	idx, err := columnIndex(ev.Params(), sc.Columns)
	if err != nil {
		return nil, err
	}

	out := make([]bool, len(sc.Rows))
	vals := make([]int, ev.Arity())
	for r, row := range sc.Rows {
		for i, j := range idx {
			if j >= len(row) {
				return nil, fmt.Errorf("scenario row %d has %d values, expected %d columns", r, len(row), len(sc.Columns))
			}
			v := row[j]
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("scenario row %d: column %q holds %v, binary scenarios take 0 or 1", r, sc.Columns[j], v)
			}
			vals[i] = int(v)
		}
		result, err := ev.EvalRow(vals)
		if err != nil {
			return nil, err
		}
		out[r] = expr.Failed(result)
	}
	return out, nil
}

// QuantifyProb computes the exact top-event failure probability for
// each probability scenario, assuming independent basic events: the
// sum over every failing truth-table row of the product of p(event)
// for events at 1 and 1-p(event) for events at 0.
//
// The truth table is computed once by the caller and reused across
// scenario rows; cost is O(2^n * n) per row. Probabilities outside
// [0,1] are a warning, not an error, and still compute: clamping
// intent is ambiguous, so the values are used as given.
func QuantifyProb(table *truthtab.Table, sc Scenarios) ([]float64, error) {
	idx, err := columnIndex(table.Params, sc.Columns)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(sc.Rows))
	probs := make([]float64, len(table.Params))
	for r, row := range sc.Rows {
		for i, j := range idx {
			if j >= len(row) {
				return nil, fmt.Errorf("scenario row %d has %d values, expected %d columns", r, len(row), len(sc.Columns))
			}
			p := row[j]
			if p < 0 || p > 1 {
				slog.Warn("probability outside [0,1], computing with value as given",
					"event", table.Params[i], "row", r, "value", p)
			}
			probs[i] = p
		}
		out[r] = marginalize(table, probs)
	}
	return out, nil
}

// QuantifyProbVector is the single-scenario convenience form of
// QuantifyProb, taking a probability vector keyed by event name.
func QuantifyProbVector(table *truthtab.Table, pv ftree.ProbabilityVector) (float64, error) {
	columns := make([]string, 0, len(pv))
	row := make([]float64, 0, len(pv))
	for ev, p := range pv {
		columns = append(columns, ev)
		row = append(row, p)
	}
	result, err := QuantifyProb(table, Scenarios{Columns: columns, Rows: [][]float64{row}})
	if err != nil {
		return 0, err
	}
	return result[0], nil
}

// marginalize sums the probability mass of the failing rows.
func marginalize(table *truthtab.Table, probs []float64) float64 {
	total := 0.0
	for _, row := range table.FailingRows() {
		mass := 1.0
		for i, v := range row.Assign {
			if v == 1 {
				mass *= probs[i]
			} else {
				mass *= 1 - probs[i]
			}
		}
		total += mass
	}
	return total
}

// Populate turns a binary scenario table into a probability-weighted
// one: every 1 becomes the event's probability, every 0 stays 0. Row
// identity and order are preserved. A data-prep helper for callers
// that keep scenarios binary and probabilities separate.
func Populate(sc Scenarios, pv ftree.ProbabilityVector) (Scenarios, error) {
	out := Scenarios{
		Columns: append([]string(nil), sc.Columns...),
		Rows:    make([][]float64, len(sc.Rows)),
	}
	probs := make([]float64, len(sc.Columns))
	for i, col := range sc.Columns {
		p, ok := pv[ftree.CanonicalEvent(col)]
		if !ok {
			return Scenarios{}, fmt.Errorf("populate: no probability for basic event %q", col)
		}
		probs[i] = p
	}
	for r, row := range sc.Rows {
		weighted := make([]float64, len(row))
		for i, v := range row {
			switch v {
			case 0:
				weighted[i] = 0
			case 1:
				if i < len(probs) {
					weighted[i] = probs[i]
				}
			default:
				return Scenarios{}, fmt.Errorf("populate: row %d column %q holds %v, binary scenarios take 0 or 1", r, sc.Columns[i], v)
			}
		}
		out.Rows[r] = weighted
	}
	return out, nil
}
