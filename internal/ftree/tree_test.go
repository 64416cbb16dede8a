package ftree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Tree {
	return &Tree{
		Nodes: []Node{
			{ID: 1, Event: "top", Kind: KindTop},
			{ID: 2, Event: "G1", Kind: KindOr},
			{ID: 3, Event: "A", Kind: KindBasic},
			{ID: 4, Event: "B", Kind: KindBasic},
		},
		Edges: []Edge{
			{From: 1, To: 2},
			{From: 2, To: 3},
			{From: 2, To: 4},
		},
	}
}

// TestTree_Top finds the unique TOP node.
func TestTree_Top(t *testing.T) {
	top, ok := sampleTree().Top()
	require.True(t, ok)
	assert.Equal(t, int64(1), top.ID)

	_, ok = (&Tree{}).Top()
	assert.False(t, ok)
}

// TestTree_Children preserves edge order.
func TestTree_Children(t *testing.T) {
	children := sampleTree().Children(2)
	require.Len(t, children, 2)
	assert.Equal(t, "A", children[0].Event)
	assert.Equal(t, "B", children[1].Event)

	assert.Empty(t, sampleTree().Children(3))
}

// TestKind_IsGate classifies node kinds.
func TestKind_IsGate(t *testing.T) {
	assert.True(t, KindTop.IsGate())
	assert.True(t, KindAnd.IsGate())
	assert.True(t, KindOr.IsGate())
	assert.False(t, KindBasic.IsGate())
}

// TestGateRecord_Operator maps gate kinds to join operators.
func TestGateRecord_Operator(t *testing.T) {
	assert.Equal(t, "*", GateRecord{Kind: KindAnd}.Operator())
	assert.Equal(t, "*", GateRecord{Kind: KindTop}.Operator())
	assert.Equal(t, "+", GateRecord{Kind: KindOr}.Operator())
}

// TestRenderFragment wraps joined children in parentheses.
func TestRenderFragment(t *testing.T) {
	assert.Equal(t, "(A*B)", RenderFragment([]string{"A", "B"}, "*"))
	assert.Equal(t, "(A)", RenderFragment([]string{"A"}, "+"))
}
