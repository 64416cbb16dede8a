package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultline/faultline/internal/compiler"
	"github.com/faultline/faultline/internal/ftree"
	"github.com/faultline/faultline/internal/minimize"
	"github.com/faultline/faultline/internal/testutil"
	"github.com/faultline/faultline/internal/truthtab"
)

// TestRun_DemoTree exercises the full pipeline end to end.
func TestRun_DemoTree(t *testing.T) {
	a, err := Run(testutil.DemoTree(), Options{})
	require.NoError(t, err)

	assert.Len(t, a.Gates, 6)
	assert.Equal(t, "(((B*(C+D))*(A+(B*C))))", string(a.Equation))
	assert.Equal(t, []string{"A", "B", "C", "D"}, a.Evaluator.Params())
	assert.Len(t, a.Table.Rows, 16)
	assert.Equal(t, 5, a.Table.Failures())
	assert.Len(t, a.RawCutSets, 4)

	require.Len(t, a.MinCutSets, 2)
	assert.Equal(t, "B*C", a.MinCutSets[0].String())
	assert.Equal(t, "A*B*D", a.MinCutSets[1].String())

	require.Len(t, a.Coverage, 2)
	assert.InDelta(t, 0.8, a.Coverage[0].Coverage, 1e-12)
	assert.InDelta(t, 0.4, a.Coverage[1].Coverage, 1e-12)
}

// TestRun_CrossCheckAgrees verifies both backends on several shapes.
func TestRun_CrossCheckAgrees(t *testing.T) {
	trees := map[string]*ftree.Tree{
		"demo":      testutil.DemoTree(),
		"or":        testutil.OrTree(),
		"and":       testutil.AndTree(),
		"single":    testutil.SingleBasicTree(),
		"substring": testutil.SubstringGateTree(),
	}
	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			_, err := Run(tree, Options{CrossCheck: true})
			assert.NoError(t, err)
		})
	}
}

// TestRun_CCubesBackend selects the truth-table backend explicitly.
func TestRun_CCubesBackend(t *testing.T) {
	a, err := Run(testutil.DemoTree(), Options{Backend: minimize.BackendCCubes})
	require.NoError(t, err)
	require.Len(t, a.MinCutSets, 2)
	assert.Equal(t, "B*C", a.MinCutSets[0].String())
}

// TestRun_InvalidTreeFailsFast stops at the compiler boundary.
func TestRun_InvalidTreeFailsFast(t *testing.T) {
	_, err := Run(testutil.CyclicTree(), Options{})
	require.Error(t, err)
	assert.True(t, compiler.IsCycleError(err))
}

// TestRun_MaxEventsGuard propagates the enumeration limit.
func TestRun_MaxEventsGuard(t *testing.T) {
	_, err := Run(testutil.DemoTree(), Options{MaxEvents: 3})
	var tooMany *truthtab.TooManyEventsError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, 4, tooMany.Events)
}

// TestRun_Deterministic yields identical artifacts on reruns.
func TestRun_Deterministic(t *testing.T) {
	first, err := Run(testutil.DemoTree(), Options{})
	require.NoError(t, err)
	second, err := Run(testutil.DemoTree(), Options{})
	require.NoError(t, err)

	assert.Equal(t, first.Equation, second.Equation)
	assert.Equal(t, first.MinCutSets, second.MinCutSets)
	assert.Equal(t, first.RawCutSets, second.RawCutSets)
	assert.Equal(t, first.Table.Rows, second.Table.Rows)
}
