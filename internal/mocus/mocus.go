// Package mocus generates raw cut sets with the classic MOCUS
// (Method of Obtaining Cut Sets) top-down substitution algorithm.
//
// MOCUS works on the gate table, not the flattened equation: it keeps
// a working list of open cut sets, initialized to {TOP}, and replaces
// gate references until only basic events remain. AND (and TOP) gates
// splice their children into the set; OR gates fork the set into one
// branch per child. The output may contain duplicate and non-minimal
// sets; minimization is a separate stage.
package mocus

import (
	"fmt"

	"github.com/faultline/faultline/internal/compiler"
	"github.com/faultline/faultline/internal/ftree"
)

// maxPasses bounds the substitution loop. Each pass eliminates at
// least one gate reference on an acyclic table, so hitting the cap
// means the table was built from a cyclic graph.
const maxPasses = 1 << 22

// member is one working-set entry during expansion. Gate members carry
// the gate's table row; basic members only a name.
type member struct {
	event string
	gate  *ftree.GateRecord
}

// Expand runs MOCUS over a compiled gate table and returns the raw
// cut sets: within each set, event names are deduplicated and sorted,
// but sets may repeat or subsume each other.
//
// A malformed table (missing TOP row, gate with no children, dangling
// gate reference) is an error, never a silently incomplete result.
func Expand(table ftree.GateTable) ([]ftree.CutSet, error) {
	top, ok := table.Top()
	if !ok {
		return nil, &compiler.InvalidTreeError{Errors: []compiler.ValidationError{{
			Field:   "gates",
			Message: "gate table has no TOP row",
			Code:    compiler.ErrTopMissing,
		}}}
	}
	byID := table.ByID()

	working := [][]member{{{event: top.Gate, gate: &top}}}
	for pass := 0; pass < maxPasses; pass++ {
		setIdx, memberIdx := findOpenGate(working)
		if setIdx < 0 {
			out := make([]ftree.CutSet, len(working))
			for i, set := range working {
				events := make([]string, len(set))
				for j, m := range set {
					events[j] = m.event
				}
				out[i] = ftree.NewCutSet(events...)
			}
			return out, nil
		}

		set := working[setIdx]
		g := set[memberIdx].gate
		children, err := resolveChildren(g, byID)
		if err != nil {
			return nil, err
		}

		if g.Kind == ftree.KindOr {
			// Disjunction: one branch per child, each branch being
			// (set minus the gate) plus that child.
			branches := make([][]member, len(children))
			for i, child := range children {
				branch := make([]member, 0, len(set))
				branch = append(branch, set[:memberIdx]...)
				branch = append(branch, child)
				branch = append(branch, set[memberIdx+1:]...)
				branches[i] = branch
			}
			working = append(working[:setIdx], append(branches, working[setIdx+1:]...)...)
			continue
		}

		// Conjunction (AND or TOP): splice all children in place of
		// the gate, keeping the rest of the set.
		grown := make([]member, 0, len(set)-1+len(children))
		grown = append(grown, set[:memberIdx]...)
		grown = append(grown, children...)
		grown = append(grown, set[memberIdx+1:]...)
		working[setIdx] = grown
	}
	return nil, fmt.Errorf("mocus expansion did not converge after %d passes: gate table is cyclic", maxPasses)
}

// findOpenGate locates the first set still containing a gate
// reference, and the first such reference within it.
func findOpenGate(working [][]member) (int, int) {
	for i, set := range working {
		for j, m := range set {
			if m.gate != nil {
				return i, j
			}
		}
	}
	return -1, -1
}

// resolveChildren turns a gate's child references into working-set
// members, following gate children into their table rows.
func resolveChildren(g *ftree.GateRecord, byID map[int64]ftree.GateRecord) ([]member, error) {
	if len(g.Children) == 0 {
		return nil, &compiler.InvalidTreeError{Errors: []compiler.ValidationError{{
			Field:   fmt.Sprintf("gate %s (node %d)", g.Gate, g.ID),
			Message: "gate has zero children",
			Code:    compiler.ErrGateNoChildren,
		}}}
	}
	out := make([]member, len(g.Children))
	for i, child := range g.Children {
		if !child.Gate {
			out[i] = member{event: child.Event}
			continue
		}
		sub, ok := byID[child.ID]
		if !ok {
			return nil, &compiler.InvalidTreeError{Errors: []compiler.ValidationError{{
				Field:   fmt.Sprintf("gate %s (node %d)", g.Gate, g.ID),
				Message: fmt.Sprintf("child gate %s (node %d) has no gate table row", child.Event, child.ID),
				Code:    compiler.ErrUnknownEndpoint,
			}}}
		}
		out[i] = member{event: sub.Gate, gate: &sub}
	}
	return out, nil
}
