package retofa

import (
	"strings"
	"unicode"
)

// Parse converts a pattern into a syntax tree.
//
// Patterns are made of symbols (bare runs of letters, digits, _ and -, or
// any text inside '...' or "..." with \ escaping the next character) and the
// operators ( ) . | * +. Adjacent operands are implicitly concatenated.
// A pattern that is empty or only whitespace parses to the empty Symbol.
// Offsets of errors found at the end of input are the length of the pattern
// without trailing whitespace.
//
// Errors are of type *SyntaxError.
func Parse(pattern string, opts ...ParseOption) (Node, error) {
	cfg := defaultParseConfig
	for _, o := range opts {
		o(&cfg)
	}

	if strings.TrimSpace(pattern) == "" {
		return Symbol(""), nil
	}

	// Trailing whitespace is insignificant, even after a \ inside quotes.
	// Trimming only the right keeps offsets into the original pattern.
	pattern = strings.TrimRightFunc(pattern, unicode.IsSpace)

	var p parser
	tks := tokenise(pattern, &cfg)

	// operand is whether the previous token left an operand on the stack, in
	// which case a following symbol or ( is implicitly concatenated.
	operand := false
	for {
		t, ok, err := tks.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		switch t.op {
		case opSymbol:
			if operand {
				p.push(token{op: opConcatenate, offset: t.offset})
			}
			p.operands = append(p.operands, Symbol(t.symbol))
			operand = true

		case opLeftParen:
			if operand {
				p.push(token{op: opConcatenate, offset: t.offset})
			}
			p.push(t)
			operand = false

		case opRightParen:
			if err := p.closeGroup(t); err != nil {
				return nil, err
			}
			operand = true

		case opZeroOrMore, opOneOrMore:
			// Postfix operators bind tightest, so apply them right away.
			if err := p.reduce(t); err != nil {
				return nil, err
			}
			operand = true

		case opConcatenate, opOr:
			// Both are left-associative with equal precedence.
			for {
				top, ok := p.pop()
				if !ok {
					break
				}
				if top.op != opConcatenate && top.op != opOr {
					p.push(top)
					break
				}
				if err := p.reduce(top); err != nil {
					return nil, err
				}
			}
			p.push(t)
			operand = false
		}
	}

	for {
		top, ok := p.pop()
		if !ok {
			break
		}
		if err := p.reduce(top); err != nil {
			return nil, err
		}
	}

	if len(p.operands) != 1 {
		return nil, &SyntaxError{Err: ErrInvalidSyntax, Offset: len(pattern)}
	}
	return p.operands[0], nil
}

// MustParse calls Parse, and panics if unable to parse the pattern.
func MustParse(pattern string, opts ...ParseOption) Node {
	n, err := Parse(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

// parser holds the two stacks of the operator-precedence parser.
type parser struct {
	operands  []Node
	operators []token
}

func (p *parser) push(t token) { p.operators = append(p.operators, t) }

func (p *parser) pop() (token, bool) {
	if len(p.operators) == 0 {
		return token{}, false
	}
	t := p.operators[len(p.operators)-1]
	p.operators = p.operators[:len(p.operators)-1]
	return t, true
}

// closeGroup reduces operators until the matching ( is found.
func (p *parser) closeGroup(rparen token) error {
	for {
		top, ok := p.pop()
		if !ok {
			return &SyntaxError{Err: ErrInvalidSyntax, Offset: rparen.offset}
		}
		if top.op == opLeftParen {
			return nil
		}
		if err := p.reduce(top); err != nil {
			return err
		}
	}
}

// reduce applies an operator to the operands on top of the operand stack.
// Reducing a ( means it was never closed.
func (p *parser) reduce(t token) error {
	n := len(p.operands)
	switch t.op {
	case opConcatenate, opOr:
		if n < 2 {
			return &SyntaxError{Err: ErrInvalidSyntax, Offset: t.offset}
		}
		lhs, rhs := p.operands[n-2], p.operands[n-1]
		p.operands = p.operands[:n-2]
		if t.op == opConcatenate {
			p.operands = append(p.operands, Concatenate{Left: lhs, Right: rhs})
		} else {
			p.operands = append(p.operands, Or{Left: lhs, Right: rhs})
		}

	case opZeroOrMore, opOneOrMore:
		if n < 1 {
			return &SyntaxError{Err: ErrInvalidSyntax, Offset: t.offset}
		}
		if t.op == opZeroOrMore {
			p.operands[n-1] = ZeroOrMore{Operand: p.operands[n-1]}
		} else {
			p.operands[n-1] = OneOrMore{Operand: p.operands[n-1]}
		}

	default:
		return &SyntaxError{Err: ErrUnclosedParenthesis, Offset: t.offset}
	}
	return nil
}
