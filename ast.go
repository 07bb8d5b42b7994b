package retofa

import (
	"strings"
	"unicode/utf8"
)

// Node is a node of the syntax tree produced by Parse. Its String method
// prints a fully parenthesised pattern that parses back to an equal tree.
type Node interface {
	String() string
	node()
}

// Syntax tree nodes.
type (
	// Symbol matches exactly this (possibly empty) symbol.
	Symbol string

	// Concatenate matches Left followed by Right.
	Concatenate struct{ Left, Right Node }

	// Or matches either Left or Right.
	Or struct{ Left, Right Node }

	// ZeroOrMore matches any number of repetitions of Operand.
	ZeroOrMore struct{ Operand Node }

	// OneOrMore matches at least one repetition of Operand.
	OneOrMore struct{ Operand Node }
)

func (Symbol) node()      {}
func (Concatenate) node() {}
func (Or) node()          {}
func (ZeroOrMore) node()  {}
func (OneOrMore) node()   {}

func (s Symbol) String() string {
	if r, n := utf8.DecodeRuneInString(string(s)); n == len(s) && n > 0 && isSymbolChar(r) {
		return string(s)
	}
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range string(s) {
		if r == '\'' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

func (c Concatenate) String() string { return "(" + c.Left.String() + "." + c.Right.String() + ")" }
func (o Or) String() string          { return "(" + o.Left.String() + "|" + o.Right.String() + ")" }
func (z ZeroOrMore) String() string  { return z.Operand.String() + "*" }
func (o OneOrMore) String() string   { return o.Operand.String() + "+" }
