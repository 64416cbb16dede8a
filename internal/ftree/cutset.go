package ftree

import (
	"sort"
	"strings"
)

// CutSet is a set of basic-event names whose joint occurrence forces
// the top event. Stored sorted and deduplicated: an event occurring at
// two tree positions still counts once per cut set.
type CutSet []string

// NewCutSet builds a canonical cut set from event names: canonicalized,
// deduplicated, sorted.
func NewCutSet(events ...string) CutSet {
	seen := make(map[string]bool, len(events))
	out := make(CutSet, 0, len(events))
	for _, ev := range events {
		ev = CanonicalEvent(ev)
		if ev == "" || seen[ev] {
			continue
		}
		seen[ev] = true
		out = append(out, ev)
	}
	sort.Strings(out)
	return out
}

// String renders the cut set as a `*`-joined product term.
func (c CutSet) String() string {
	return strings.Join(c, "*")
}

// Contains reports whether the cut set includes the given event.
func (c CutSet) Contains(event string) bool {
	for _, ev := range c {
		if ev == event {
			return true
		}
	}
	return false
}

// Equal reports element-wise equality (both sides canonical).
func (c CutSet) Equal(other CutSet) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every event of c occurs in other.
func (c CutSet) SubsetOf(other CutSet) bool {
	for _, ev := range c {
		if !other.Contains(ev) {
			return false
		}
	}
	return true
}

// SortCutSets orders cut sets by size, then lexicographically by their
// rendered form. Used to make minimizer output deterministic.
func SortCutSets(sets []CutSet) {
	sort.Slice(sets, func(i, j int) bool {
		if len(sets[i]) != len(sets[j]) {
			return len(sets[i]) < len(sets[j])
		}
		return sets[i].String() < sets[j].String()
	})
}

// ProbabilityVector maps basic-event names to failure probabilities.
// Consumed by the probabilistic evaluator; never mutated by it.
type ProbabilityVector map[string]float64
