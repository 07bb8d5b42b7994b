package retofa

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// document is the serialised form of an automaton used by WriteYAML and
// WriteJSON. States are written in their String form.
type document struct {
	Start       []string        `json:"start" yaml:"start"`
	Accept      []string        `json:"accept" yaml:"accept"`
	Transitions []transitionDoc `json:"transitions" yaml:"transitions"`
}

type transitionDoc struct {
	From   string `json:"from" yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

func (a *Automaton[S]) document() document {
	doc := document{
		Start:       names(a.Start()),
		Accept:      names(a.Accept()),
		Transitions: []transitionDoc{},
	}
	for _, t := range a.Transitions() {
		doc.Transitions = append(doc.Transitions, transitionDoc{
			From:   t.From.String(),
			Symbol: t.Symbol,
			To:     t.To.String(),
		})
	}
	return doc
}

func names[S State[S]](states []S) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, s.String())
	}
	return out
}

// WriteYAML writes the start states, accepting states and transitions of the
// automaton as a YAML document.
func (a *Automaton[S]) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a.document()); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// WriteJSON is like WriteYAML, but writes indented JSON.
func (a *Automaton[S]) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(a.document(), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// WriteTable writes the transitions as a text table. Start states are
// marked with > and accepting states with *. Epsilon is written as ε.
func (a *Automaton[S]) WriteTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"From", "Symbol", "To"})

	for _, t := range a.Transitions() {
		sym := t.Symbol
		if sym == "" {
			sym = "ε"
		}
		if err := table.Append([]string{a.marked(t.From), sym, a.marked(t.To)}); err != nil {
			return fmt.Errorf("table append: %w", err)
		}
	}
	return table.Render()
}

func (a *Automaton[S]) marked(s S) string {
	m := s.String()
	if a.IsAccept(s) {
		m = "*" + m
	}
	if a.IsStart(s) {
		m = ">" + m
	}
	return m
}
