// Package minimize reduces raw cut sets to minimal cut sets (prime
// implicants).
//
// Two interchangeable backends sit behind one contract:
//
//   - BackendMocus simplifies the MOCUS output symbolically, by
//     absorption over structured term sets: any product term whose
//     literal set strictly contains another term's literal set is
//     redundant and dropped. Fault-tree functions are monotone (AND/OR
//     over positive literals only), so no complementary-literal pairs
//     exist and the consensus rule has nothing to merge; absorption
//     plus deduplication is the complete simplification.
//
//   - BackendCCubes minimizes the full truth table with classic
//     consensus/Quine-McCluskey cube combination: failing-row minterms
//     are merged pairwise while they differ in exactly one bit, and
//     the surviving uncombined cubes are the prime implicants. For a
//     monotone function every prime implicant is positive, so each
//     maps directly to a cut set. Cost is exponential in the event
//     count; reserve it for small trees.
//
// Both backends must agree on the minimal cut sets of the same fault
// tree.
package minimize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/faultline/faultline/internal/ftree"
	"github.com/faultline/faultline/internal/truthtab"
)

// Backend selects the minimization algorithm.
type Backend string

const (
	// BackendMocus absorbs the symbolic MOCUS output.
	BackendMocus Backend = "mocus"
	// BackendCCubes runs cube minimization over the truth table.
	BackendCCubes Backend = "ccubes"
)

// Source is the cut-set source for Concentrate: raw cut sets for the
// mocus backend, the truth table for the ccubes backend.
type Source struct {
	CutSets []ftree.CutSet
	Table   *truthtab.Table
}

// ErrNoSource reports a Source missing the input its backend needs.
var ErrNoSource = errors.New("minimize: source does not carry input for the selected backend")

// Concentrate reduces a cut-set source to minimal cut sets, ordered by
// size then lexicographically. If minimization yields no reduction at
// all (a single irreducible term, an already-minimal family), the
// unsimplified terms come back unchanged rather than erroring.
func Concentrate(src Source, backend Backend) ([]ftree.CutSet, error) {
	switch backend {
	case BackendMocus:
		if src.CutSets == nil {
			return nil, fmt.Errorf("%w: mocus backend needs raw cut sets", ErrNoSource)
		}
		return absorb(src.CutSets), nil
	case BackendCCubes:
		if src.Table == nil {
			return nil, fmt.Errorf("%w: ccubes backend needs a truth table", ErrNoSource)
		}
		return primeImplicants(src.Table)
	default:
		return nil, fmt.Errorf("minimize: unknown backend %q", backend)
	}
}

// Render joins minimal cut sets into the sum-of-products form
// "(e1*e2) + (e3)".
func Render(sets []ftree.CutSet) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = "(" + s.String() + ")"
	}
	return strings.Join(parts, " + ")
}

// absorb drops duplicate terms and every term that strictly contains
// another term's literal set.
func absorb(raw []ftree.CutSet) []ftree.CutSet {
	var kept []ftree.CutSet
	for _, candidate := range raw {
		if len(candidate) == 0 {
			continue
		}
		redundant := false
		for _, other := range kept {
			if other.SubsetOf(candidate) {
				redundant = true
				break
			}
		}
		if redundant {
			continue
		}
		// The candidate may in turn absorb earlier terms.
		next := kept[:0]
		for _, other := range kept {
			if !candidate.SubsetOf(other) {
				next = append(next, other)
			}
		}
		kept = append(next, candidate)
	}
	if len(kept) == 0 {
		// Degenerate input (all-empty terms): fall back to the
		// unsimplified family rather than reporting nothing.
		kept = append(kept, raw...)
	}
	ftree.SortCutSets(kept)
	return kept
}
