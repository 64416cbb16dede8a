package minimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultline/faultline/internal/compiler"
	"github.com/faultline/faultline/internal/expr"
	"github.com/faultline/faultline/internal/ftree"
	"github.com/faultline/faultline/internal/mocus"
	"github.com/faultline/faultline/internal/testutil"
	"github.com/faultline/faultline/internal/truthtab"
)

// buildSource runs the pipeline far enough to feed both backends.
func buildSource(t *testing.T, tree *ftree.Tree) Source {
	t.Helper()
	table, err := compiler.Curate(tree)
	require.NoError(t, err)
	raw, err := mocus.Expand(table)
	require.NoError(t, err)
	eq, err := compiler.Equate(table)
	require.NoError(t, err)
	ev, err := expr.Formulate(eq)
	require.NoError(t, err)
	tt, err := truthtab.Calculate(ev)
	require.NoError(t, err)
	return Source{CutSets: raw, Table: tt}
}

func renderAll(sets []ftree.CutSet) []string {
	out := make([]string, len(sets))
	for i, s := range sets {
		out[i] = s.String()
	}
	return out
}

// TestConcentrate_MocusBackend absorbs the demo tree's raw cut sets
// down to the two minimal ones.
func TestConcentrate_MocusBackend(t *testing.T) {
	src := buildSource(t, testutil.DemoTree())
	minimal, err := Concentrate(src, BackendMocus)
	require.NoError(t, err)
	assert.Equal(t, []string{"B*C", "A*B*D"}, renderAll(minimal))
}

// TestConcentrate_CCubesBackend reaches the same family through
// truth-table cube minimization.
func TestConcentrate_CCubesBackend(t *testing.T) {
	src := buildSource(t, testutil.DemoTree())
	minimal, err := Concentrate(src, BackendCCubes)
	require.NoError(t, err)
	assert.Equal(t, []string{"B*C", "A*B*D"}, renderAll(minimal))
}

// TestConcentrate_BackendsAgree is the cross-backend property over
// several tree shapes.
func TestConcentrate_BackendsAgree(t *testing.T) {
	trees := map[string]*ftree.Tree{
		"demo":      testutil.DemoTree(),
		"or":        testutil.OrTree(),
		"and":       testutil.AndTree(),
		"single":    testutil.SingleBasicTree(),
		"substring": testutil.SubstringGateTree(),
	}
	for name, tree := range trees {
		t.Run(name, func(t *testing.T) {
			src := buildSource(t, tree)
			viaMocus, err := Concentrate(src, BackendMocus)
			require.NoError(t, err)
			viaCubes, err := Concentrate(src, BackendCCubes)
			require.NoError(t, err)
			assert.Equal(t, renderAll(viaMocus), renderAll(viaCubes))
		})
	}
}

// TestConcentrate_IrreducibleTermFallsThrough returns a single
// irreducible term unchanged rather than erroring.
func TestConcentrate_IrreducibleTermFallsThrough(t *testing.T) {
	src := Source{CutSets: []ftree.CutSet{ftree.NewCutSet("A", "B")}}
	minimal, err := Concentrate(src, BackendMocus)
	require.NoError(t, err)
	assert.Equal(t, []string{"A*B"}, renderAll(minimal))
}

// TestConcentrate_DropsDuplicates collapses equal raw sets.
func TestConcentrate_DropsDuplicates(t *testing.T) {
	src := Source{CutSets: []ftree.CutSet{
		ftree.NewCutSet("A", "B"),
		ftree.NewCutSet("B", "A"),
		ftree.NewCutSet("A"),
	}}
	minimal, err := Concentrate(src, BackendMocus)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, renderAll(minimal))
}

// TestConcentrate_AbsorptionOrderIndependent absorbs supersets seen
// before their absorbing subset.
func TestConcentrate_AbsorptionOrderIndependent(t *testing.T) {
	src := Source{CutSets: []ftree.CutSet{
		ftree.NewCutSet("A", "B", "C"),
		ftree.NewCutSet("B", "C", "D"),
		ftree.NewCutSet("B", "C"),
	}}
	minimal, err := Concentrate(src, BackendMocus)
	require.NoError(t, err)
	assert.Equal(t, []string{"B*C"}, renderAll(minimal))
}

// TestConcentrate_MissingSource rejects a source without the input
// the backend needs.
func TestConcentrate_MissingSource(t *testing.T) {
	_, err := Concentrate(Source{}, BackendMocus)
	assert.ErrorIs(t, err, ErrNoSource)

	_, err = Concentrate(Source{}, BackendCCubes)
	assert.ErrorIs(t, err, ErrNoSource)
}

// TestConcentrate_UnknownBackend rejects unknown backend names.
func TestConcentrate_UnknownBackend(t *testing.T) {
	_, err := Concentrate(Source{CutSets: []ftree.CutSet{}}, Backend("qm"))
	assert.ErrorContains(t, err, "unknown backend")
}

// TestRender joins cut sets into sum-of-products form.
func TestRender(t *testing.T) {
	sets := []ftree.CutSet{ftree.NewCutSet("B", "C"), ftree.NewCutSet("A", "B", "D")}
	assert.Equal(t, "(B*C) + (A*B*D)", Render(sets))
}

// TestCCubes_NonMonotoneTableRejected names the event a fixed-0 prime
// would negate.
func TestCCubes_NonMonotoneTableRejected(t *testing.T) {
	// f = NOT A over one variable: fails only when A=0.
	tt := &truthtab.Table{
		Params: []string{"A"},
		Rows: []truthtab.Row{
			{Assign: []int{0}, Outcome: 1},
			{Assign: []int{1}, Outcome: 0},
		},
	}
	_, err := Concentrate(Source{Table: tt}, BackendCCubes)
	require.Error(t, err)
	assert.ErrorContains(t, err, "not monotone")
	assert.ErrorContains(t, err, "A")
}
