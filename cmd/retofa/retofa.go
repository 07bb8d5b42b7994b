// The retofa command compiles patterns into finite automata and prints them.
//
// Example:
//
//	$ retofa -single -format table '(a|b)*abb'
//	$ retofa -stage nfa 'digit+ (dot digit+)*' | dot -Tpng > nfa.png
//	$ retofa -i
//
// With several patterns, each automaton is printed in turn, separated by a
// blank line. DFAs for several patterns are compiled in parallel.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	u "github.com/araddon/gou"
	"github.com/putlx/retofa"
)

var (
	stage       = flag.String("stage", "dfa", "automaton to print [enfa|nfa|dfa]")
	format      = flag.String("format", "dot", "output format [dot|yaml|json|table]")
	single      = flag.Bool("single", false, "treat each symbol character as a symbol of its own")
	trace       = flag.Bool("trace", false, "write construction trace logs to stderr")
	interactive = flag.Bool("i", false, "prompt for patterns interactively")
	goroutines  = flag.Int("j", 0, "maximum number of patterns compiled in parallel (0 means no limit)")
	logLevel    = flag.String("loglevel", "warn", "log level [debug|info|warn|error]")
)

// automaton is satisfied by every kind of automaton the package builds.
type automaton interface {
	WriteDot(io.Writer) error
	WriteYAML(io.Writer) error
	WriteJSON(io.Writer) error
	WriteTable(io.Writer) error
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] pattern...\n       %s [flags] -i\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	if err := validateFlags(); err != nil {
		u.Errorf("%v", err)
		flag.Usage()
		os.Exit(2)
	}

	parseOpts := []retofa.ParseOption{retofa.SingleCharTokens(*single)}
	var buildOpts []retofa.BuildOption
	if *trace {
		buildOpts = append(buildOpts, retofa.WithTraceLogs(os.Stderr))
	}

	if *interactive {
		if err := repl(os.Stdout, parseOpts, buildOpts); err != nil {
			u.Errorf("interactive session failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	fas, err := compile(flag.Args(), parseOpts, buildOpts)
	if err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
	for i, fa := range fas {
		if i > 0 {
			fmt.Println()
		}
		if err := write(os.Stdout, fa); err != nil {
			u.Errorf("Couldn't write output for pattern %q: %v", flag.Arg(i), err)
			os.Exit(1)
		}
	}
}

func validateFlags() error {
	switch *stage {
	case "enfa", "nfa", "dfa":
	default:
		return fmt.Errorf("unknown stage %q", *stage)
	}
	switch *format {
	case "dot", "yaml", "json", "table":
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
	return nil
}

// compile builds the automaton for each pattern at the selected stage.
func compile(patterns []string, parseOpts []retofa.ParseOption, buildOpts []retofa.BuildOption) ([]automaton, error) {
	begin := time.Now()
	defer func() { u.Debugf("compiled %d patterns in %v", len(patterns), time.Since(begin)) }()

	fas := make([]automaton, len(patterns))
	if *stage == "dfa" {
		err := retofa.CompileAll(context.Background(), patterns, func(i int, dfa *retofa.Automaton[retofa.DFAState]) error {
			u.Infof("pattern %q: %d DFA states", patterns[i], len(dfa.States()))
			fas[i] = dfa
			return nil
		},
			retofa.GoroutineLimit(*goroutines),
			retofa.WithParseOptions(parseOpts...),
			retofa.WithBuildOptions(buildOpts...),
		)
		return fas, err
	}

	for i, pattern := range patterns {
		ast, err := retofa.Parse(pattern, parseOpts...)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse pattern %q: %w", pattern, err)
		}
		fas[i] = build(ast, buildOpts)
	}
	return fas, nil
}

func build(ast retofa.Node, buildOpts []retofa.BuildOption) automaton {
	switch *stage {
	case "enfa":
		return retofa.BuildEpsilonNFA(ast, buildOpts...)
	case "nfa":
		return retofa.BuildNFA(ast, buildOpts...)
	}
	return retofa.BuildDFA(ast, buildOpts...)
}

func write(w io.Writer, fa automaton) error {
	switch *format {
	case "yaml":
		return fa.WriteYAML(w)
	case "json":
		return fa.WriteJSON(w)
	case "table":
		return fa.WriteTable(w)
	}
	if err := fa.WriteDot(w); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
