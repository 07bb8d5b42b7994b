// Package retofa compiles regular-expression-like patterns into finite
// automata.
//
// A pattern is parsed into a syntax tree (Parse), which is translated into
// an epsilon-NFA (BuildEpsilonNFA), an NFA without epsilon transitions
// (BuildNFA) or a minimized DFA (BuildDFA). Any of these automata can be
// written out as a GraphViz digraph (WriteDot), YAML, JSON or a text table.
//
// Patterns support symbols, grouping with ( ), concatenation (explicit with
// . or implicit by adjacency), alternation with |, and the postfix
// repetitions * and +. For example, with SingleCharTokens(true):
//
//	(a|b)*abb
//
// and with the default multi-character symbols:
//
//	('+'|'-'|'') (digit+ (''|dot digit*) | digit* dot digit+)
package retofa
