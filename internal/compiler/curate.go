package compiler

import (
	"sort"

	"github.com/faultline/faultline/internal/ftree"
)

// Curate compiles a fault tree into its gate table: one GateRecord per
// TOP/AND/OR node, carrying the boolean fragment over the node's
// immediate children. AND (and TOP) children join with `*`, OR children
// with `+`; fragments are parenthesized.
//
// The table is ordered TOP first, then gates in lexicographic order of
// gate name. Curate validates the tree first and fails fast on any
// structural error, returning *InvalidTreeError with no partial output.
func Curate(t *ftree.Tree) (ftree.GateTable, error) {
	if errs := Validate(t); len(errs) > 0 {
		return nil, &InvalidTreeError{Errors: errs}
	}

	var table ftree.GateTable
	for _, n := range t.Nodes {
		if !n.Kind.IsGate() {
			continue
		}
		rec := ftree.GateRecord{
			ID:   n.ID,
			Gate: ftree.CanonicalEvent(n.Event),
			Kind: n.Kind,
			Role: ftree.RoleGate,
		}
		if n.Kind == ftree.KindTop {
			rec.Role = ftree.RoleTop
		}
		for _, child := range t.Children(n.ID) {
			rec.Children = append(rec.Children, ftree.ChildRef{
				ID:    child.ID,
				Event: ftree.CanonicalEvent(child.Event),
				Gate:  child.Kind.IsGate(),
			})
		}
		rec.Fragment = ftree.RenderFragment(rec.ChildEvents(), rec.Operator())
		table = append(table, rec)
	}

	sort.SliceStable(table, func(i, j int) bool {
		if (table[i].Role == ftree.RoleTop) != (table[j].Role == ftree.RoleTop) {
			return table[i].Role == ftree.RoleTop
		}
		return table[i].Gate < table[j].Gate
	})
	return table, nil
}
