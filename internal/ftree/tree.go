package ftree

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind classifies a fault-tree node.
type Kind string

const (
	// KindTop is the single root failure event.
	KindTop Kind = "top"
	// KindAnd is a conjunction gate: fails when all children fail.
	KindAnd Kind = "and"
	// KindOr is a disjunction gate: fails when any child fails.
	KindOr Kind = "or"
	// KindBasic is a leaf event with no further decomposition.
	KindBasic Kind = "basic"
)

// ValidKinds defines the allowed node kinds.
var ValidKinds = map[Kind]bool{
	KindTop:   true,
	KindAnd:   true,
	KindOr:    true,
	KindBasic: true,
}

// IsGate reports whether the kind carries children (top, and, or).
func (k Kind) IsGate() bool {
	return k == KindTop || k == KindAnd || k == KindOr
}

// Node is one vertex of the fault tree.
//
// IDs are unique; event names are not. The same event name at two
// different IDs denotes the same basic event (one boolean variable).
type Node struct {
	ID    int64  `json:"id"`
	Event string `json:"event"`
	Kind  Kind   `json:"kind"`
}

// Edge is a parent-to-child link between two node IDs.
type Edge struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// Tree is the caller-supplied fault-tree graph. It is treated as
// immutable input by every downstream stage.
type Tree struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// CanonicalEvent normalizes an event name for identity comparison:
// surrounding whitespace is trimmed and the string is NFC-normalized.
func CanonicalEvent(event string) string {
	return norm.NFC.String(strings.TrimSpace(event))
}

// NodeByID returns the node with the given ID, or false if absent.
func (t *Tree) NodeByID(id int64) (Node, bool) {
	for _, n := range t.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Top returns the unique TOP node, or false if there is none.
// Multiplicity checks belong to the compiler's validation pass.
func (t *Tree) Top() (Node, bool) {
	for _, n := range t.Nodes {
		if n.Kind == KindTop {
			return n, true
		}
	}
	return Node{}, false
}

// ChildIDs returns the child node IDs of the given node, in edge order.
func (t *Tree) ChildIDs(id int64) []int64 {
	var out []int64
	for _, e := range t.Edges {
		if e.From == id {
			out = append(out, e.To)
		}
	}
	return out
}

// Children returns the child nodes of the given node, in edge order.
// Edges pointing at unknown IDs are skipped; validation reports them.
func (t *Tree) Children(id int64) []Node {
	var out []Node
	for _, cid := range t.ChildIDs(id) {
		if n, ok := t.NodeByID(cid); ok {
			out = append(out, n)
		}
	}
	return out
}
