package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/faultline/faultline/internal/analysis"
	"github.com/faultline/faultline/internal/ftree"
)

// SaveRun persists one analysis run under a caller-chosen name and
// returns the generated run ID. The tree snapshot, minimal cut sets
// and coverage records are written in one transaction: a failed save
// leaves no partial run behind.
func (s *Store) SaveRun(ctx context.Context, name string, tree *ftree.Tree, a *analysis.Analysis) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, name, equation, events, failures, rows_total)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, name, string(a.Equation), a.Evaluator.Arity(), a.Table.Failures(), len(a.Table.Rows))
	if err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}

	for _, n := range tree.Nodes {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_nodes (run_id, node_id, event, kind) VALUES (?, ?, ?, ?)
		`, runID, n.ID, n.Event, string(n.Kind)); err != nil {
			return "", fmt.Errorf("save run node %d: %w", n.ID, err)
		}
	}
	for _, e := range tree.Edges {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_edges (run_id, from_node, to_node) VALUES (?, ?, ?)
		`, runID, e.From, e.To); err != nil {
			return "", fmt.Errorf("save run edge %d->%d: %w", e.From, e.To, err)
		}
	}
	for i, cs := range a.MinCutSets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_cutsets (run_id, ord, events) VALUES (?, ?, ?)
		`, runID, i, cs.String()); err != nil {
			return "", fmt.Errorf("save run cut set %d: %w", i, err)
		}
	}
	for _, rec := range a.Coverage {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_coverage (run_id, mincut, cutsets, failures, coverage)
			VALUES (?, ?, ?, ?, ?)
		`, runID, rec.MinCut, rec.CutSets, rec.Failures, rec.Coverage); err != nil {
			return "", fmt.Errorf("save run coverage %q: %w", rec.MinCut, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("save run: %w", err)
	}
	return runID, nil
}
