package retofa

import "slices"

// Determinize converts an NFA without epsilon transitions into a DFA by
// subset construction. Each DFA state is the set of NFA states reachable on
// the same input; it is accepting if any of its members is. Epsilon
// transitions in nfa, if any, are ignored.
func Determinize(nfa *Automaton[NFAState], opts ...BuildOption) *Automaton[DFAState] {
	cfg := newBuildConfig(opts)
	dfa := newAutomaton[DFAState]()

	start := NewDFAState(nfa.Start()...)
	dfa.start[start] = struct{}{}

	queued := singleton(start)
	unresolved := []DFAState{start}
	for len(unresolved) > 0 {
		src := unresolved[len(unresolved)-1]
		unresolved = unresolved[:len(unresolved)-1]

		// Group the NFA transitions out of every member by symbol.
		symbols := make(map[string]stateSet[NFAState])
		for _, s := range src.Members() {
			if nfa.accept.has(s) {
				dfa.accept[src] = struct{}{}
			}
			for sym, dsts := range nfa.transitions[s] {
				if sym == "" {
					continue
				}
				group := symbols[sym]
				if group == nil {
					group = make(stateSet[NFAState])
					symbols[sym] = group
				}
				for d := range dsts {
					group[d] = struct{}{}
				}
			}
		}

		if len(symbols) == 0 {
			cfg.logf("subset %v is a dead end\n", src)
			continue
		}

		syms := make([]string, 0, len(symbols))
		for sym := range symbols {
			syms = append(syms, sym)
		}
		slices.Sort(syms)
		for _, sym := range syms {
			dst := NewDFAState(symbols[sym].sorted()...)
			if !queued.has(dst) {
				cfg.logf("discovered subset %v via %v --%q-->\n", dst, src, sym)
				queued[dst] = struct{}{}
				unresolved = append(unresolved, dst)
			}
			dfa.addTransition(src, sym, dst)
		}
	}

	cfg.logf("DFA: %d subsets\n", len(queued))
	return dfa
}

// BuildDFA runs the whole pipeline: it builds the epsilon-NFA for the syntax
// tree, eliminates epsilon transitions, determinizes and minimizes.
func BuildDFA(ast Node, opts ...BuildOption) *Automaton[DFAState] {
	return Minimize(Determinize(BuildNFA(ast, opts...), opts...), opts...)
}
