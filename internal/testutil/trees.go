// Package testutil provides shared fault-tree fixtures for tests.
package testutil

import "github.com/faultline/faultline/internal/ftree"

// DemoTree returns the canonical 12-node/11-edge demonstration tree:
//
//	top ── G1(AND) ─┬─ G2(AND) ─┬─ B
//	                │           └─ G5(OR) ─┬─ C
//	                │                      └─ D
//	                └─ G3(OR) ──┬─ A
//	                            └─ G4(AND) ─┬─ B
//	                                        └─ C
//
// Event B appears at two node IDs (6 and 11) but is one boolean
// variable. Minimal cut sets: {B,C}, {A,B,D}.
func DemoTree() *ftree.Tree {
	return &ftree.Tree{
		Nodes: []ftree.Node{
			{ID: 1, Event: "top", Kind: ftree.KindTop},
			{ID: 2, Event: "G1", Kind: ftree.KindAnd},
			{ID: 3, Event: "G2", Kind: ftree.KindAnd},
			{ID: 4, Event: "G3", Kind: ftree.KindOr},
			{ID: 5, Event: "G4", Kind: ftree.KindAnd},
			{ID: 6, Event: "B", Kind: ftree.KindBasic},
			{ID: 7, Event: "G5", Kind: ftree.KindOr},
			{ID: 8, Event: "C", Kind: ftree.KindBasic},
			{ID: 9, Event: "D", Kind: ftree.KindBasic},
			{ID: 10, Event: "A", Kind: ftree.KindBasic},
			{ID: 11, Event: "B", Kind: ftree.KindBasic},
			{ID: 12, Event: "C", Kind: ftree.KindBasic},
		},
		Edges: []ftree.Edge{
			{From: 1, To: 2},
			{From: 2, To: 3},
			{From: 2, To: 4},
			{From: 3, To: 6},
			{From: 3, To: 7},
			{From: 7, To: 8},
			{From: 7, To: 9},
			{From: 4, To: 10},
			{From: 4, To: 5},
			{From: 5, To: 11},
			{From: 5, To: 12},
		},
	}
}

// SingleBasicTree returns the smallest valid tree: TOP over one basic
// event. Its only cut set is {E}.
func SingleBasicTree() *ftree.Tree {
	return &ftree.Tree{
		Nodes: []ftree.Node{
			{ID: 1, Event: "top", Kind: ftree.KindTop},
			{ID: 2, Event: "E", Kind: ftree.KindBasic},
		},
		Edges: []ftree.Edge{{From: 1, To: 2}},
	}
}

// OrTree returns TOP over a single OR gate with basic events X and Y.
// Minimal cut sets: {X}, {Y}.
func OrTree() *ftree.Tree {
	return &ftree.Tree{
		Nodes: []ftree.Node{
			{ID: 1, Event: "top", Kind: ftree.KindTop},
			{ID: 2, Event: "G1", Kind: ftree.KindOr},
			{ID: 3, Event: "X", Kind: ftree.KindBasic},
			{ID: 4, Event: "Y", Kind: ftree.KindBasic},
		},
		Edges: []ftree.Edge{
			{From: 1, To: 2},
			{From: 2, To: 3},
			{From: 2, To: 4},
		},
	}
}

// AndTree returns TOP over a single AND gate with basic events X and Y.
// Its only minimal cut set is {X,Y}.
func AndTree() *ftree.Tree {
	return &ftree.Tree{
		Nodes: []ftree.Node{
			{ID: 1, Event: "top", Kind: ftree.KindTop},
			{ID: 2, Event: "G1", Kind: ftree.KindAnd},
			{ID: 3, Event: "X", Kind: ftree.KindBasic},
			{ID: 4, Event: "Y", Kind: ftree.KindBasic},
		},
		Edges: []ftree.Edge{
			{From: 1, To: 2},
			{From: 2, To: 3},
			{From: 2, To: 4},
		},
	}
}

// CyclicTree returns a graph with a gate cycle G1 -> G2 -> G1. Invalid
// input: validation must reject it before any substitution loop runs.
func CyclicTree() *ftree.Tree {
	return &ftree.Tree{
		Nodes: []ftree.Node{
			{ID: 1, Event: "top", Kind: ftree.KindTop},
			{ID: 2, Event: "G1", Kind: ftree.KindAnd},
			{ID: 3, Event: "G2", Kind: ftree.KindOr},
			{ID: 4, Event: "A", Kind: ftree.KindBasic},
		},
		Edges: []ftree.Edge{
			{From: 1, To: 2},
			{From: 2, To: 3},
			{From: 3, To: 2},
			{From: 3, To: 4},
		},
	}
}

// SubstringGateTree returns a tree whose gate names collide as
// substrings ("G1" inside "G10"). A correct equation builder must not
// confuse them.
func SubstringGateTree() *ftree.Tree {
	return &ftree.Tree{
		Nodes: []ftree.Node{
			{ID: 1, Event: "top", Kind: ftree.KindTop},
			{ID: 2, Event: "G1", Kind: ftree.KindOr},
			{ID: 3, Event: "G10", Kind: ftree.KindAnd},
			{ID: 4, Event: "P", Kind: ftree.KindBasic},
			{ID: 5, Event: "Q", Kind: ftree.KindBasic},
			{ID: 6, Event: "R", Kind: ftree.KindBasic},
		},
		Edges: []ftree.Edge{
			{From: 1, To: 2},
			{From: 2, To: 3},
			{From: 2, To: 4},
			{From: 3, To: 5},
			{From: 3, To: 6},
		},
	}
}
