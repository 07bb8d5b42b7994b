package main

import (
	"errors"
	"io"

	u "github.com/araddon/gou"
	"github.com/manifoldco/promptui"
	"github.com/putlx/retofa"
)

// repl prompts for patterns until interrupted, printing the automaton for
// each. Patterns are validated as they are typed.
func repl(w io.Writer, parseOpts []retofa.ParseOption, buildOpts []retofa.BuildOption) error {
	prompt := promptui.Prompt{
		Label: "Pattern",
		Validate: func(input string) error {
			_, err := retofa.Parse(input, parseOpts...)
			return err
		},
	}

	for {
		pattern, err := prompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}

		ast, err := retofa.Parse(pattern, parseOpts...)
		if err != nil {
			// Validate should have caught this.
			u.Warnf("Couldn't parse pattern %q: %v", pattern, err)
			continue
		}
		u.Debugf("parsed %q as %v", pattern, ast)

		if err := write(w, build(ast, buildOpts)); err != nil {
			return err
		}
	}
}
