package retofa

import (
	"errors"
	"fmt"
)

// Kinds of syntax error. A *SyntaxError unwraps to exactly one of these.
var (
	ErrInvalidEnding       = errors.New(`invalid ending: \`)
	ErrUnclosedQuote       = errors.New("unclosed quote")
	ErrUnclosedParenthesis = errors.New("unclosed parenthesis")
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidSyntax       = errors.New("invalid syntax")
)

// SyntaxError is returned by Parse when the pattern cannot be tokenised or
// parsed.
type SyntaxError struct {
	// Err is one of the Err* kinds above.
	Err error

	// Char is the offending character, for ErrInvalidToken.
	Char rune

	// Offset is the byte offset within the pattern of the character or
	// operator at fault. Errors only found at the end of input (unclosed
	// quotes, leftover operands) use len(pattern).
	Offset int
}

func (e *SyntaxError) Error() string {
	if e.Err == ErrInvalidToken {
		return fmt.Sprintf("%v: %c (offset %d)", e.Err, e.Char, e.Offset)
	}
	return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
