package expr

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseError reports a malformed equation, with the byte offset of the
// offending token.
type ParseError struct {
	Pos     int
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("equation parse error at offset %d: %s", e.Pos, e.Message)
}

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokAnd
	tokOr
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// lex splits an equation into tokens. Identifiers are maximal runs of
// characters that are not operators, parentheses or whitespace.
func lex(input string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(input) {
		c := rune(input[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c == '*':
			toks = append(toks, token{tokAnd, "*", i})
			i++
		case c == '+':
			toks = append(toks, token{tokOr, "+", i})
			i++
		case c == '(':
			toks = append(toks, token{tokLParen, "(", i})
			i++
		case c == ')':
			toks = append(toks, token{tokRParen, ")", i})
			i++
		default:
			start := i
			for i < len(input) && !strings.ContainsRune("*+()", rune(input[i])) && !unicode.IsSpace(rune(input[i])) {
				i++
			}
			toks = append(toks, token{tokIdent, input[start:i], start})
		}
	}
	toks = append(toks, token{tokEOF, "", len(input)})
	return toks, nil
}

// parser is a recursive-descent parser for the equation grammar:
//
//	expr   := term ('+' term)*
//	term   := factor ('*' factor)*
//	factor := ident | '(' expr ')'
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) parseExpr() (Expr, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := Or{first}
	for p.peek().kind == tokOr {
		p.next()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return terms, nil
}

func (p *parser) parseTerm() (Expr, error) {
	first, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	factors := And{first}
	for p.peek().kind == tokAnd {
		p.next()
		f, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		factors = append(factors, f)
	}
	if len(factors) == 1 {
		return factors[0], nil
	}
	return factors, nil
}

func (p *parser) parseFactor() (Expr, error) {
	switch t := p.peek(); t.kind {
	case tokIdent:
		p.next()
		return &Var{Name: t.text, slot: -1}, nil
	case tokLParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, &ParseError{Pos: closing.pos, Message: "unbalanced parentheses: expected ')'"}
		}
		return inner, nil
	case tokEOF:
		return nil, &ParseError{Pos: t.pos, Message: "unexpected end of equation: expected event name or '('"}
	default:
		return nil, &ParseError{Pos: t.pos, Message: fmt.Sprintf("unexpected token %q: expected event name or '('", t.text)}
	}
}

// parse compiles an equation string into an unbound expression tree.
func parse(input string) (Expr, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if trailing := p.peek(); trailing.kind != tokEOF {
		return nil, &ParseError{Pos: trailing.pos, Message: fmt.Sprintf("trailing input %q after equation", trailing.text)}
	}
	return root, nil
}
