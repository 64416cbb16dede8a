package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// widgetCUE is a small AND-over-OR tree used across command tests:
// TOP -> G1, G1 = A AND G2, G2 = B OR C. Minimal cut sets are A*B
// and A*C.
const widgetCUE = `
package trees

tree: {
	name: "widget"
	nodes: [
		{id: 1, event: "TOP", kind: "top"},
		{id: 2, event: "G1", kind: "and"},
		{id: 3, event: "A", kind: "basic"},
		{id: 4, event: "G2", kind: "or"},
		{id: 5, event: "B", kind: "basic"},
		{id: 6, event: "C", kind: "basic"},
	]
	edges: [
		{from: 1, to: 2},
		{from: 2, to: 3},
		{from: 2, to: 4},
		{from: 4, to: 5},
		{from: 4, to: 6},
	]
}
`

// toplessCUE has two root gates and no top node.
const toplessCUE = `
package trees

tree: {
	name: "topless"
	nodes: [
		{id: 1, event: "G1", kind: "or"},
		{id: 2, event: "A", kind: "basic"},
	]
	edges: [
		{from: 1, to: 2},
	]
}
`

// writeTreeDir writes a single CUE file into a fresh temp directory
// and returns the directory path.
func writeTreeDir(t *testing.T, source string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "tree.cue"), []byte(source), 0644)
	require.NoError(t, err)
	return dir
}

// writeScenarioFile writes a YAML scenario document and returns its path.
func writeScenarioFile(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	err := os.WriteFile(path, []byte(source), 0644)
	require.NoError(t, err)
	return path
}
