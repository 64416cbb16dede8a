package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/faultline/faultline/internal/coverage"
	"github.com/faultline/faultline/internal/ftree"
)

// ErrRunNotFound reports a run ID with no stored row.
var ErrRunNotFound = errors.New("store: run not found")

// RunSummary is the runs-table row for one persisted analysis.
type RunSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Equation string `json:"equation"`
	Events   int    `json:"events"`
	Failures int    `json:"failures"`
	Rows     int    `json:"rows_total"`
}

// GetRun loads one run summary by ID.
func (s *Store) GetRun(ctx context.Context, runID string) (RunSummary, error) {
	var out RunSummary
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, equation, events, failures, rows_total
		FROM runs WHERE id = ?
	`, runID).Scan(&out.ID, &out.Name, &out.Equation, &out.Events, &out.Failures, &out.Rows)
	if errors.Is(err, sql.ErrNoRows) {
		return RunSummary{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return RunSummary{}, fmt.Errorf("get run: %w", err)
	}
	return out, nil
}

// ListRuns returns all run summaries, newest insert order last.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, equation, events, failures, rows_total
		FROM runs ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Name, &r.Equation, &r.Events, &r.Failures, &r.Rows); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CutSets loads a run's minimal cut sets in canonical order.
func (s *Store) CutSets(ctx context.Context, runID string) ([]ftree.CutSet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT events FROM run_cutsets WHERE run_id = ? ORDER BY ord
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("load cut sets: %w", err)
	}
	defer rows.Close()

	var out []ftree.CutSet
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, fmt.Errorf("load cut sets: %w", err)
		}
		out = append(out, ftree.NewCutSet(strings.Split(term, "*")...))
	}
	return out, rows.Err()
}

// Coverage loads a run's coverage records. The stored form has no
// live Query predicate; records come back with Query nil.
func (s *Store) Coverage(ctx context.Context, runID string) ([]coverage.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT mincut, cutsets, failures, coverage
		FROM run_coverage WHERE run_id = ? ORDER BY mincut
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("load coverage: %w", err)
	}
	defer rows.Close()

	var out []coverage.Record
	for rows.Next() {
		var rec coverage.Record
		if err := rows.Scan(&rec.MinCut, &rec.CutSets, &rec.Failures, &rec.Coverage); err != nil {
			return nil, fmt.Errorf("load coverage: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Tree reconstructs a run's input tree snapshot.
func (s *Store) Tree(ctx context.Context, runID string) (*ftree.Tree, error) {
	nodeRows, err := s.db.QueryContext(ctx, `
		SELECT node_id, event, kind FROM run_nodes WHERE run_id = ? ORDER BY node_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}
	defer nodeRows.Close()

	t := &ftree.Tree{}
	for nodeRows.Next() {
		var n ftree.Node
		var kind string
		if err := nodeRows.Scan(&n.ID, &n.Event, &kind); err != nil {
			return nil, fmt.Errorf("load tree: %w", err)
		}
		n.Kind = ftree.Kind(kind)
		t.Nodes = append(t.Nodes, n)
	}
	if err := nodeRows.Err(); err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}
	if len(t.Nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	edgeRows, err := s.db.QueryContext(ctx, `
		SELECT from_node, to_node FROM run_edges WHERE run_id = ? ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}
	defer edgeRows.Close()

	for edgeRows.Next() {
		var e ftree.Edge
		if err := edgeRows.Scan(&e.From, &e.To); err != nil {
			return nil, fmt.Errorf("load tree: %w", err)
		}
		t.Edges = append(t.Edges, e)
	}
	return t, edgeRows.Err()
}
