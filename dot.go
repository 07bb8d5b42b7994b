package retofa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const dotHeader = `digraph {
	graph [pad=.3];
	edge [arrowsize=.6];
	node [style=filled,label="",fillcolor="#ffe066",margin=".01,.06"];
`

// WriteDot writes a digraph representing the automaton to the writer
// (in GraphViz syntax). The output only depends on the automaton's value.
func (a *Automaton[S]) WriteDot(w io.Writer) error {
	dot, err := a.Dot()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, dot)
	return err
}

// Dot returns the digraph written by WriteDot.
func (a *Automaton[S]) Dot() (string, error) {
	var b strings.Builder
	b.WriteString(dotHeader)

	start, accept := a.Start(), a.Accept()
	for _, s := range start {
		if a.IsAccept(s) {
			fmt.Fprintf(&b, "\t%v [label=\"Start & Accept\",fillcolor=\"#74c0fc\"];\n", s)
		}
	}
	for _, s := range start {
		if !a.IsAccept(s) {
			fmt.Fprintf(&b, "\t%v [label=\"Start\",fillcolor=\"#8ce99a\"];\n", s)
		}
	}
	for _, s := range accept {
		if !a.IsStart(s) {
			fmt.Fprintf(&b, "\t%v [label=\"Accept\",fillcolor=\"#ffa8a8\"];\n", s)
		}
	}
	for _, s := range a.States() {
		if !a.IsStart(s) && !a.IsAccept(s) {
			fmt.Fprintf(&b, "\t%v [shape=circle,width=.15,fixedsize=true];\n", s)
		}
	}

	for _, t := range a.Transitions() {
		label, err := dotLabel(t.Symbol)
		if err != nil {
			return "", fmt.Errorf("encoding label of %v -> %v: %w", t.From, t.To, err)
		}
		fmt.Fprintf(&b, "\t%v -> %v [label=\" %s\"];\n", t.From, t.To, label)
	}

	b.WriteByte('}')
	return b.String(), nil
}

// dotLabel escapes a symbol the way a JSON string literal would, without the
// surrounding quotes. U+2028 and U+2029 are left raw, which encoding/json
// would otherwise escape for JavaScript.
func dotLabel(sym string) (string, error) {
	var b strings.Builder
	for {
		i := strings.IndexAny(sym, "\u2028\u2029")
		seg := sym
		if i >= 0 {
			seg = sym[:i]
		}
		lit, err := jsonString(seg)
		if err != nil {
			return "", err
		}
		b.WriteString(lit)
		if i < 0 {
			return b.String(), nil
		}
		_, size := utf8.DecodeRuneInString(sym[i:])
		b.WriteString(sym[i : i+size])
		sym = sym[i+size:]
	}
}

// jsonString returns s encoded as a JSON string, without the quotes.
func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	lit := strings.TrimSuffix(buf.String(), "\n")
	return lit[1 : len(lit)-1], nil
}
