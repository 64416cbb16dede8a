package cli

import (
	"fmt"
	"strings"

	"github.com/faultline/faultline/internal/coverage"
	"github.com/faultline/faultline/internal/ftree"
	"github.com/faultline/faultline/internal/truthtab"
)

// renderGateTable renders the gate table as a fixed-width text report.
func renderGateTable(table ftree.GateTable) string {
	var b strings.Builder
	b.WriteString("GATE  ROLE  KIND  FRAGMENT\n")
	for _, g := range table {
		fmt.Fprintf(&b, "%-5s %-5s %-5s %s\n", g.Gate, g.Role, g.Kind, g.Fragment)
	}
	return b.String()
}

// renderCutSets renders one product term per line, canonical order.
func renderCutSets(sets []ftree.CutSet) string {
	var b strings.Builder
	for _, s := range sets {
		b.WriteString(s.String())
		b.WriteString("\n")
	}
	return b.String()
}

// renderTruthTable renders the full truth table, outcome column last.
func renderTruthTable(t *truthtab.Table) string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Params, " "))
	b.WriteString(" | outcome\n")
	for _, row := range t.Rows {
		for i, v := range row.Assign {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%*d", len(t.Params[i]), v)
		}
		fmt.Fprintf(&b, " | %d\n", row.Outcome)
	}
	return b.String()
}

// renderCoverage renders coverage records as a text report.
func renderCoverage(records []coverage.Record) string {
	var b strings.Builder
	b.WriteString("MINCUT        CUTSETS  FAILURES  COVERAGE\n")
	for _, r := range records {
		fmt.Fprintf(&b, "%-13s %7d  %8d  %.4f\n", r.MinCut, r.CutSets, r.Failures, r.Coverage)
	}
	return b.String()
}
