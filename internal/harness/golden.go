package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/faultline/faultline/internal/analysis"
	"github.com/faultline/faultline/internal/minimize"
)

// RenderReport renders one analysis as a deterministic text report:
// gate table, equation, minimal cut sets and coverage. Golden files
// pin this output.
func RenderReport(a *analysis.Analysis) string {
	var b strings.Builder

	b.WriteString("GATES\n")
	for _, g := range a.Gates {
		fmt.Fprintf(&b, "  %s %s %s %s\n", g.Gate, g.Role, g.Kind, g.Fragment)
	}

	fmt.Fprintf(&b, "EQUATION\n  %s\n", a.Equation)

	fmt.Fprintf(&b, "MINCUTS\n  %s\n", minimize.Render(a.MinCutSets))

	b.WriteString("COVERAGE\n")
	for _, rec := range a.Coverage {
		fmt.Fprintf(&b, "  %s cutsets=%d failures=%d coverage=%.4f\n",
			rec.MinCut, rec.CutSets, rec.Failures, rec.Coverage)
	}
	return b.String()
}

// AssertGolden compares a scenario's rendered report against its
// golden file in testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, a *analysis.Analysis) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(RenderReport(a)))
}
