package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultline/faultline/internal/analysis"
	"github.com/faultline/faultline/internal/ftree"
	"github.com/faultline/faultline/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "faultline.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func demoRun(t *testing.T) (*ftree.Tree, *analysis.Analysis) {
	t.Helper()
	tree := testutil.DemoTree()
	a, err := analysis.Run(tree, analysis.Options{})
	require.NoError(t, err)
	return tree, a
}

// TestOpen_CreatesSchema opens a fresh database twice to confirm the
// schema bootstrap is idempotent.
func TestOpen_CreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faultline.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

// TestSaveRun_RoundTrip persists a demo analysis and reads every
// artifact back.
func TestSaveRun_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	tree, a := demoRun(t)

	runID, err := s.SaveRun(ctx, "demo", tree, a)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	summary, err := s.GetRun(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, runID, summary.ID)
	assert.Equal(t, "demo", summary.Name)
	assert.Equal(t, string(a.Equation), summary.Equation)
	assert.Equal(t, 4, summary.Events)
	assert.Equal(t, 5, summary.Failures)
	assert.Equal(t, 16, summary.Rows)

	sets, err := s.CutSets(ctx, runID)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "B*C", sets[0].String())
	assert.Equal(t, "A*B*D", sets[1].String())

	recs, err := s.Coverage(ctx, runID)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	terms := []string{recs[0].MinCut, recs[1].MinCut}
	assert.ElementsMatch(t, []string{"B*C", "A*B*D"}, terms)
	for _, rec := range recs {
		assert.Equal(t, 5, rec.Failures)
		assert.Nil(t, rec.Query)
	}
}

// TestTree_RestoresSnapshot reconstructs the saved input tree.
func TestTree_RestoresSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	tree, a := demoRun(t)

	runID, err := s.SaveRun(ctx, "demo", tree, a)
	require.NoError(t, err)

	got, err := s.Tree(ctx, runID)
	require.NoError(t, err)
	assert.Equal(t, tree.Nodes, got.Nodes)
	assert.Equal(t, tree.Edges, got.Edges)

	rerun, err := analysis.Run(got, analysis.Options{})
	require.NoError(t, err)
	assert.Equal(t, a.Equation, rerun.Equation)
	assert.Equal(t, a.MinCutSets, rerun.MinCutSets)
}

// TestGetRun_Missing wraps ErrRunNotFound for unknown IDs.
func TestGetRun_Missing(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.GetRun(ctx, "no-such-run")
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, err = s.Tree(ctx, "no-such-run")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

// TestListRuns_Order preserves insert order across saves.
func TestListRuns_Order(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	tree, a := demoRun(t)

	first, err := s.SaveRun(ctx, "first", tree, a)
	require.NoError(t, err)
	second, err := s.SaveRun(ctx, "second", tree, a)
	require.NoError(t, err)

	runs, err := s.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, first, runs[0].ID)
	assert.Equal(t, second, runs[1].ID)
}
