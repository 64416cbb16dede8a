package compiler

import (
	"fmt"

	"github.com/faultline/faultline/internal/ftree"
)

// Validate checks a fault tree against the structural schema.
// Returns all errors found (does not fail-fast within the pass):
//   - exactly one TOP node (E101/E102)
//   - every gate has at least one child (E103)
//   - BASIC nodes are leaves (E104)
//   - every edge endpoint is a known node ID (E105)
//   - the graph rooted at TOP is acyclic (E106)
//   - event names are non-empty, kinds are known, IDs unique (E107-E109)
//   - every node has at most one parent (E110)
//
// An empty slice means the tree is safe to feed to Curate and Equate.
func Validate(t *ftree.Tree) []ValidationError {
	var errs []ValidationError

	ids := make(map[int64]bool, len(t.Nodes))
	topCount := 0
	for _, n := range t.Nodes {
		if ids[n.ID] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("node %d", n.ID),
				Message: "duplicate node ID",
				Code:    ErrDuplicateID,
			})
		}
		ids[n.ID] = true

		if ftree.CanonicalEvent(n.Event) == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("node %d", n.ID),
				Message: "event name is required and must be non-empty",
				Code:    ErrEmptyEvent,
			})
		}
		if !ftree.ValidKinds[n.Kind] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("node %d", n.ID),
				Message: fmt.Sprintf("unknown kind %q: must be one of top, and, or, basic", n.Kind),
				Code:    ErrInvalidKind,
			})
		}
		if n.Kind == ftree.KindTop {
			topCount++
			if topCount > 1 {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("node %d (%s)", n.ID, n.Event),
					Message: "more than one TOP node",
					Code:    ErrTopDuplicate,
				})
			}
		}
	}
	if topCount == 0 {
		errs = append(errs, ValidationError{
			Field:   "tree",
			Message: "no TOP node",
			Code:    ErrTopMissing,
		})
	}

	parents := make(map[int64]int, len(t.Nodes))
	for _, e := range t.Edges {
		if !ids[e.From] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("edge %d->%d", e.From, e.To),
				Message: fmt.Sprintf("unknown source node %d", e.From),
				Code:    ErrUnknownEndpoint,
			})
		}
		if !ids[e.To] {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("edge %d->%d", e.From, e.To),
				Message: fmt.Sprintf("unknown target node %d", e.To),
				Code:    ErrUnknownEndpoint,
			})
		}
		parents[e.To]++
	}

	for _, n := range t.Nodes {
		switch {
		case n.Kind.IsGate() && len(t.ChildIDs(n.ID)) == 0:
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("gate %s (node %d)", n.Event, n.ID),
				Message: "gate has zero children",
				Code:    ErrGateNoChildren,
			})
		case n.Kind == ftree.KindBasic && len(t.ChildIDs(n.ID)) > 0:
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("basic %s (node %d)", n.Event, n.ID),
				Message: "basic event has outgoing edges",
				Code:    ErrBasicHasChildren,
			})
		}
		if parents[n.ID] > 1 {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("node %d (%s)", n.ID, n.Event),
				Message: fmt.Sprintf("node has %d parents: tree edges must form a rooted tree", parents[n.ID]),
				Code:    ErrMultipleParents,
			})
		}
	}

	errs = append(errs, analyzeCycles(t)...)
	return errs
}
