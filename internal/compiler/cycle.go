package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/faultline/faultline/internal/ftree"
)

// analyzeCycles performs static cycle analysis on the edge structure.
//
// Unlike downstream stages, which require an acyclic tree to terminate,
// this pass tolerates arbitrary input: it builds the adjacency graph and
// detects strongly connected components with Tarjan's algorithm. Each
// SCC of size > 1, and each self-loop, yields one E106 error.
//
// A DAG returns an empty list.
func analyzeCycles(t *ftree.Tree) []ValidationError {
	graph := make(map[int64][]int64, len(t.Nodes))
	for _, n := range t.Nodes {
		graph[n.ID] = nil
	}
	for _, e := range t.Edges {
		if _, ok := graph[e.From]; ok {
			graph[e.From] = append(graph[e.From], e.To)
		}
	}

	var errs []ValidationError
	for _, scc := range tarjanSCC(graph) {
		if len(scc) > 1 || (len(scc) == 1 && hasSelfLoop(scc[0], graph)) {
			errs = append(errs, cycleError(scc, t))
		}
	}
	return errs
}

func hasSelfLoop(node int64, graph map[int64][]int64) bool {
	for _, next := range graph[node] {
		if next == node {
			return true
		}
	}
	return false
}

// cycleError renders an SCC as a diagnosable E106 error naming the
// offending events.
func cycleError(scc []int64, t *ftree.Tree) ValidationError {
	sort.Slice(scc, func(i, j int) bool { return scc[i] < scc[j] })
	names := make([]string, len(scc))
	for i, id := range scc {
		if n, ok := t.NodeByID(id); ok {
			names[i] = fmt.Sprintf("%s (node %d)", n.Event, id)
		} else {
			names[i] = fmt.Sprintf("node %d", id)
		}
	}
	return ValidationError{
		Field:   "edges",
		Message: "cycle detected through " + strings.Join(names, ", "),
		Code:    ErrCycleDetected,
	}
}

// tarjanSCC finds strongly connected components using Tarjan's
// algorithm. Single-node SCCs without self-loops are NOT cycles.
func tarjanSCC(graph map[int64][]int64) [][]int64 {
	var (
		index   = 0
		stack   []int64
		indices = make(map[int64]int)
		lowlink = make(map[int64]int)
		onStack = make(map[int64]bool)
		sccs    [][]int64
	)

	var strongConnect func(int64)
	strongConnect = func(v int64) {
		indices[v] = index
		lowlink[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range graph[v] {
			if _, visited := indices[w]; !visited {
				strongConnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		if lowlink[v] == indices[v] {
			var scc []int64
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	// Deterministic visit order for stable error output.
	nodes := make([]int64, 0, len(graph))
	for id := range graph {
		nodes = append(nodes, id)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	for _, id := range nodes {
		if _, visited := indices[id]; !visited {
			strongConnect(id)
		}
	}

	return sccs
}
