package minimize

import (
	"fmt"
	"sort"

	"github.com/faultline/faultline/internal/ftree"
	"github.com/faultline/faultline/internal/truthtab"
)

// Cube literal values. A cube fixes some parameters to 0 or 1 and
// leaves the rest free.
const (
	litZero byte = '0'
	litOne  byte = '1'
	litDash byte = '-'
)

type cube []byte

func (c cube) key() string { return string(c) }

// combine merges two cubes differing in exactly one fixed bit,
// returning the merged cube with that bit freed. Returns false when
// the cubes are not adjacent.
func combine(a, b cube) (cube, bool) {
	diff := -1
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if a[i] == litDash || b[i] == litDash || diff >= 0 {
			return nil, false
		}
		diff = i
	}
	if diff < 0 {
		return nil, false
	}
	merged := make(cube, len(a))
	copy(merged, a)
	merged[diff] = litDash
	return merged, true
}

// primeImplicants runs Quine-McCluskey cube combination over the
// failing rows of a truth table and maps the resulting prime
// implicants to cut sets.
//
// Fault-tree functions are monotone, so every prime implicant fixes
// parameters to 1 only; a prime with a fixed-0 literal means the table
// did not come from an AND/OR tree and is rejected.
func primeImplicants(table *truthtab.Table) ([]ftree.CutSet, error) {
	current := make(map[string]cube)
	for _, row := range table.FailingRows() {
		c := make(cube, len(row.Assign))
		for i, v := range row.Assign {
			if v == 0 {
				c[i] = litZero
			} else {
				c[i] = litOne
			}
		}
		current[c.key()] = c
	}

	primes := make(map[string]cube)
	for len(current) > 0 {
		next := make(map[string]cube)
		combined := make(map[string]bool)
		keys := sortedKeys(current)
		for i, ka := range keys {
			for _, kb := range keys[i+1:] {
				if merged, ok := combine(current[ka], current[kb]); ok {
					next[merged.key()] = merged
					combined[ka] = true
					combined[kb] = true
				}
			}
		}
		for _, k := range keys {
			if !combined[k] {
				primes[k] = current[k]
			}
		}
		current = next
	}

	out := make([]ftree.CutSet, 0, len(primes))
	for _, k := range sortedKeys(primes) {
		c := primes[k]
		var events []string
		for i, lit := range c {
			switch lit {
			case litOne:
				events = append(events, table.Params[i])
			case litZero:
				return nil, fmt.Errorf("ccubes: prime implicant %s fixes %s to 0: truth table is not monotone (not an AND/OR fault tree)", k, table.Params[i])
			}
		}
		out = append(out, ftree.NewCutSet(events...))
	}
	ftree.SortCutSets(out)
	return out, nil
}

func sortedKeys(m map[string]cube) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic iteration keeps minimization output stable.
	sort.Strings(keys)
	return keys
}
