package retofa

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// operator is the kind of a lexer token. Symbol tokens use opSymbol.
type operator int

const (
	opSymbol      operator = iota // a literal symbol
	opLeftParen                   // (
	opRightParen                  // )
	opConcatenate                 // .
	opOr                          // |
	opZeroOrMore                  // *
	opOneOrMore                   // +
)

func (o operator) String() string {
	switch o {
	case opSymbol:
		return "symbol"
	case opLeftParen:
		return "("
	case opRightParen:
		return ")"
	case opConcatenate:
		return "."
	case opOr:
		return "|"
	case opZeroOrMore:
		return "*"
	case opOneOrMore:
		return "+"
	}
	return "invalid operator"
}

// token is produced by the tokeniser.
type token struct {
	op     operator
	symbol string // only meaningful when op == opSymbol
	offset int    // byte offset of the token within the pattern
}

// tokeniser lexes a pattern one token at a time. It cannot be restarted.
type tokeniser struct {
	pattern          string
	pos              int
	singleCharTokens bool
}

func tokenise(pattern string, cfg *parseConfig) *tokeniser {
	return &tokeniser{
		pattern:          pattern,
		singleCharTokens: cfg.singleCharTokens,
	}
}

// isSymbolChar reports whether c may appear in an unquoted symbol: anything
// alphabetic (including combining vowel signs) or numeric, _ and -.
func isSymbolChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsNumber(c) || unicode.Is(unicode.Other_Alphabetic, c) ||
		c == '_' || c == '-'
}

// next returns the next token. ok is false once the input is exhausted or an
// error has been returned; the tokeniser never continues past an error.
func (tk *tokeniser) next() (t token, ok bool, err error) {
	for tk.pos < len(tk.pattern) {
		start := tk.pos
		c, size := utf8.DecodeRuneInString(tk.pattern[tk.pos:])
		tk.pos += size

		switch c {
		case '(':
			return token{op: opLeftParen, offset: start}, true, nil
		case ')':
			return token{op: opRightParen, offset: start}, true, nil
		case '.':
			return token{op: opConcatenate, offset: start}, true, nil
		case '|':
			return token{op: opOr, offset: start}, true, nil
		case '*':
			return token{op: opZeroOrMore, offset: start}, true, nil
		case '+':
			return token{op: opOneOrMore, offset: start}, true, nil
		case '\'', '"':
			return tk.quoted(c, start)
		}

		if unicode.IsSpace(c) {
			continue
		}

		if !isSymbolChar(c) {
			tk.pos = len(tk.pattern)
			return token{}, false, &SyntaxError{Err: ErrInvalidToken, Char: c, Offset: start}
		}

		if tk.singleCharTokens {
			return token{op: opSymbol, symbol: string(c), offset: start}, true, nil
		}

		// Greedily take the rest of the symbol.
		for tk.pos < len(tk.pattern) {
			c, size := utf8.DecodeRuneInString(tk.pattern[tk.pos:])
			if !isSymbolChar(c) {
				break
			}
			tk.pos += size
		}
		return token{op: opSymbol, symbol: tk.pattern[start:tk.pos], offset: start}, true, nil
	}
	return token{}, false, nil
}

// quoted consumes a quoted symbol. The opening quote has already been
// consumed; start is its offset.
func (tk *tokeniser) quoted(quote rune, start int) (token, bool, error) {
	var sym strings.Builder
	escape := false // the previous char was \
	for tk.pos < len(tk.pattern) {
		c, size := utf8.DecodeRuneInString(tk.pattern[tk.pos:])
		tk.pos += size

		if escape {
			escape = false
			sym.WriteRune(c)
			continue
		}

		switch c {
		case '\\':
			escape = true
		case quote:
			return token{op: opSymbol, symbol: sym.String(), offset: start}, true, nil
		default:
			sym.WriteRune(c)
		}
	}

	// Ran out of input inside the quotes.
	if escape {
		return token{}, false, &SyntaxError{Err: ErrInvalidEnding, Offset: len(tk.pattern)}
	}
	return token{}, false, &SyntaxError{Err: ErrUnclosedQuote, Offset: len(tk.pattern)}
}
