package retofa

// BuildNFA builds the epsilon-NFA for the syntax tree and eliminates its
// epsilon transitions.
func BuildNFA(ast Node, opts ...BuildOption) *Automaton[NFAState] {
	return EliminateEpsilon(BuildEpsilonNFA(ast, opts...), opts...)
}

// EliminateEpsilon returns an NFA without epsilon transitions accepting the
// same language as enfa. enfa is not modified.
//
// Epsilon edges are contracted one at a time: after removing src -> dst,
// every edge into src also leads to dst, and dst becomes a start state if
// src was one. A source state left with no transitions that is not
// accepting is then discarded.
func EliminateEpsilon(enfa *Automaton[NFAState], opts ...BuildOption) *Automaton[NFAState] {
	cfg := newBuildConfig(opts)
	fa := enfa.clone()

	contracted := 0
	for {
		src, dst, ok := fa.takeEpsilonEdge()
		if !ok {
			break
		}
		contracted++
		cfg.logf("contracting epsilon edge %v -> %v\n", src, dst)

		for from, symbols := range fa.transitions {
			for sym, dsts := range symbols {
				// Don't turn an edge into dst into an epsilon self-loop.
				if from == dst && sym == "" {
					continue
				}
				if dsts.has(src) {
					dsts[dst] = struct{}{}
				}
			}
		}

		if fa.start.has(src) {
			fa.start[dst] = struct{}{}
		}

		if _, live := fa.transitions[src]; !live && !fa.accept.has(src) {
			cfg.logf("discarding state %v\n", src)
			delete(fa.start, src)
			fa.strike(src)
		}
	}

	cfg.logf("NFA: contracted %d epsilon edges, %d states remain\n", contracted, len(fa.States()))
	return fa
}

// takeEpsilonEdge removes and returns the first epsilon edge, in order of
// source then destination state.
func (a *Automaton[S]) takeEpsilonEdge() (src, dst S, ok bool) {
	srcs := make(stateSet[S], len(a.transitions))
	for s, symbols := range a.transitions {
		if _, has := symbols[""]; has {
			srcs[s] = struct{}{}
		}
	}
	if len(srcs) == 0 {
		return src, dst, false
	}
	src = srcs.sorted()[0]
	dst = a.transitions[src][""].sorted()[0]
	a.removeTransition(src, "", dst)
	return src, dst, true
}
