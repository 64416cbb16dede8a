package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultline/faultline/internal/analysis"
	"github.com/faultline/faultline/internal/testutil"
)

func TestRenderGateTable(t *testing.T) {
	a, err := analysis.Run(testutil.OrTree(), analysis.Options{})
	require.NoError(t, err)

	out := renderGateTable(a.Gates)
	assert.Contains(t, out, "GATE  ROLE  KIND  FRAGMENT\n")
	for _, g := range a.Gates {
		assert.Contains(t, out, g.Fragment)
	}
}

func TestRenderCutSets(t *testing.T) {
	a, err := analysis.Run(testutil.DemoTree(), analysis.Options{})
	require.NoError(t, err)

	assert.Equal(t, "B*C\nA*B*D\n", renderCutSets(a.MinCutSets))
}

func TestRenderTruthTable(t *testing.T) {
	a, err := analysis.Run(testutil.AndTree(), analysis.Options{})
	require.NoError(t, err)

	out := renderTruthTable(a.Table)
	assert.Contains(t, out, "| outcome\n")
	// AND of two events fails only on the all-ones row
	assert.Contains(t, out, "1 1 | 1\n")
	assert.Contains(t, out, "0 0 | 0\n")
}

func TestRenderCoverage(t *testing.T) {
	a, err := analysis.Run(testutil.DemoTree(), analysis.Options{})
	require.NoError(t, err)

	out := renderCoverage(a.Coverage)
	assert.Contains(t, out, "MINCUT")
	assert.Contains(t, out, "0.8000")
	assert.Contains(t, out, "0.4000")
}
