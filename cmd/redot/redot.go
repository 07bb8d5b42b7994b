// The redot command prints the minimized DFA of a pattern as a GraphViz
// digraph.
//
// Example:
//
//	$ redot '(a|b) c' | dot -Tsvg > abc.svg
//	$ redot -single '(a|b)*abb' | dot -Tpng > abb.png
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/putlx/retofa"
)

var single = flag.Bool("single", false, "treat each symbol character as a symbol of its own")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-single] pattern\n", os.Args[0])
		os.Exit(1)
	}
	pattern := flag.Arg(0)

	ast, err := retofa.Parse(pattern, retofa.SingleCharTokens(*single))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't parse pattern %q: %v\n", pattern, err)
		os.Exit(1)
	}

	if err := retofa.BuildDFA(ast).WriteDot(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
