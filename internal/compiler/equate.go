package compiler

import (
	"fmt"
	"strings"

	"github.com/faultline/faultline/internal/ftree"
)

// maxEquateDepth bounds the inlining recursion. Validation rejects
// cyclic trees before Equate runs, but the guard keeps Equate total
// even if a caller bypasses Curate and feeds a hand-built table.
const maxEquateDepth = 10000

// Equate flattens a gate table into the single boolean failure
// condition of the whole tree: gate references are inlined bottom-up
// until only basic-event names remain, and the TOP row's fully
// expanded fragment is returned.
//
// Inlining is structural, not textual: children are followed by node
// ID through ChildRef, so a gate named "G1" can never be captured by a
// substitution aimed at "G10", and an event name shared with a gate
// name elsewhere in the tree stays untouched.
func Equate(table ftree.GateTable) (ftree.Equation, error) {
	top, ok := table.Top()
	if !ok {
		return "", &InvalidTreeError{Errors: []ValidationError{{
			Field:   "gates",
			Message: "gate table has no TOP row",
			Code:    ErrTopMissing,
		}}}
	}

	byID := table.ByID()
	expanded, err := expandGate(top, byID, 0)
	if err != nil {
		return "", err
	}
	return ftree.Equation(expanded), nil
}

// expandGate renders one gate as a parenthesized fragment with every
// gate child replaced by its own expansion.
func expandGate(g ftree.GateRecord, byID map[int64]ftree.GateRecord, depth int) (string, error) {
	if depth > maxEquateDepth {
		return "", &InvalidTreeError{Errors: []ValidationError{{
			Field:   fmt.Sprintf("gate %s (node %d)", g.Gate, g.ID),
			Message: fmt.Sprintf("expansion exceeded %d levels: gate table is cyclic", maxEquateDepth),
			Code:    ErrCycleDetected,
		}}}
	}
	if len(g.Children) == 0 {
		return "", &InvalidTreeError{Errors: []ValidationError{{
			Field:   fmt.Sprintf("gate %s (node %d)", g.Gate, g.ID),
			Message: "gate has zero children",
			Code:    ErrGateNoChildren,
		}}}
	}

	parts := make([]string, len(g.Children))
	for i, child := range g.Children {
		if !child.Gate {
			parts[i] = child.Event
			continue
		}
		sub, ok := byID[child.ID]
		if !ok {
			return "", &InvalidTreeError{Errors: []ValidationError{{
				Field:   fmt.Sprintf("gate %s (node %d)", g.Gate, g.ID),
				Message: fmt.Sprintf("child gate %s (node %d) has no gate table row", child.Event, child.ID),
				Code:    ErrUnknownEndpoint,
			}}}
		}
		expanded, err := expandGate(sub, byID, depth+1)
		if err != nil {
			return "", err
		}
		parts[i] = expanded
	}
	return "(" + strings.Join(parts, g.Operator()) + ")", nil
}
