package expr

import "strings"

// Expr is one node of a compiled boolean expression tree.
//
// eval receives the parameter value slice of the owning Evaluator;
// variables read their bound slot directly.
type Expr interface {
	eval(vals []int) int
	render(b *strings.Builder)
}

// Var is a basic-event reference bound to a parameter slot.
type Var struct {
	Name string
	slot int
}

func (v *Var) eval(vals []int) int { return vals[v.slot] }

func (v *Var) render(b *strings.Builder) { b.WriteString(v.Name) }

// And is a conjunction term: the product of its operands.
type And []Expr

func (a And) eval(vals []int) int {
	out := 1
	for _, op := range a {
		out *= op.eval(vals)
		if out == 0 {
			return 0
		}
	}
	return out
}

func (a And) render(b *strings.Builder) { renderJoin(b, a, "*") }

// Or is a disjunction term: the sum of its operands.
type Or []Expr

func (o Or) eval(vals []int) int {
	out := 0
	for _, op := range o {
		out += op.eval(vals)
	}
	return out
}

func (o Or) render(b *strings.Builder) { renderJoin(b, o, "+") }

func renderJoin(b *strings.Builder, ops []Expr, sep string) {
	b.WriteString("(")
	for i, op := range ops {
		if i > 0 {
			b.WriteString(sep)
		}
		op.render(b)
	}
	b.WriteString(")")
}

// Render returns the canonical parenthesized form of an expression.
func Render(e Expr) string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}
