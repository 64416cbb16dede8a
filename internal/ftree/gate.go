package ftree

import "strings"

// Role distinguishes the root gate from interior gates.
type Role string

const (
	// RoleTop marks the gate compiled from the TOP node.
	RoleTop Role = "top"
	// RoleGate marks every other AND/OR gate.
	RoleGate Role = "gate"
)

// ChildRef is one direct child of a gate, addressed by node ID.
// Gate reports whether the child is itself a gate (and therefore
// expandable) rather than a basic event.
type ChildRef struct {
	ID    int64  `json:"id"`
	Event string `json:"event"`
	Gate  bool   `json:"gate"`
}

// GateRecord is one row of the compiled gate table: a TOP/AND/OR node
// together with the boolean fragment over its immediate children.
// Fragment uses `*` for AND, `+` for OR, and is parenthesized.
type GateRecord struct {
	ID       int64      `json:"id"`
	Gate     string     `json:"gate"`
	Kind     Kind       `json:"kind"`
	Role     Role       `json:"role"`
	Children []ChildRef `json:"children"`
	Fragment string     `json:"fragment"`
}

// ChildEvents returns the display names of the gate's direct children.
func (g GateRecord) ChildEvents() []string {
	out := make([]string, len(g.Children))
	for i, c := range g.Children {
		out[i] = c.Event
	}
	return out
}

// Operator returns the join operator for the gate's kind.
// TOP joins like AND: every direct child must occur.
func (g GateRecord) Operator() string {
	if g.Kind == KindOr {
		return "+"
	}
	return "*"
}

// GateTable is the compiled gate table, ordered TOP first, then gates
// in lexicographic order of gate name.
type GateTable []GateRecord

// Top returns the TOP row, or false if the table has none.
func (gt GateTable) Top() (GateRecord, bool) {
	for _, g := range gt {
		if g.Role == RoleTop {
			return g, true
		}
	}
	return GateRecord{}, false
}

// ByID returns a lookup map keyed by node ID. Gates are addressed by
// stable IDs, never by display name.
func (gt GateTable) ByID() map[int64]GateRecord {
	m := make(map[int64]GateRecord, len(gt))
	for _, g := range gt {
		m[g.ID] = g
	}
	return m
}

// Equation is a fully expanded boolean failure condition over basic
// events only, using `*`, `+` and parentheses. Immutable once produced.
type Equation string

// String implements fmt.Stringer.
func (e Equation) String() string { return string(e) }

// RenderFragment joins child event names with the given operator and
// wraps the result in parentheses.
func RenderFragment(children []string, op string) string {
	return "(" + strings.Join(children, op) + ")"
}
