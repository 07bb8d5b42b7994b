package retofa

import "slices"

// Automaton is a finite automaton over states of type S. The same type is
// used for epsilon-NFAs, NFAs (S = NFAState) and DFAs (S = DFAState).
// The empty symbol "" labels epsilon transitions.
//
// Automata returned by this package are never modified afterwards; every
// method returns freshly allocated, sorted results.
type Automaton[S State[S]] struct {
	// transitions maps source state -> symbol -> destination states.
	// Inner maps and sets are never left empty.
	transitions map[S]map[string]stateSet[S]

	start  stateSet[S]
	accept stateSet[S]
}

// Transition is a single labelled edge of an automaton.
type Transition[S State[S]] struct {
	From   S
	Symbol string
	To     S
}

func newAutomaton[S State[S]]() *Automaton[S] {
	return &Automaton[S]{
		transitions: make(map[S]map[string]stateSet[S]),
		start:       make(stateSet[S]),
		accept:      make(stateSet[S]),
	}
}

// clone returns a deep copy of a.
func (a *Automaton[S]) clone() *Automaton[S] {
	b := newAutomaton[S]()
	for src, symbols := range a.transitions {
		for sym, dsts := range symbols {
			for dst := range dsts {
				b.addTransition(src, sym, dst)
			}
		}
	}
	for s := range a.start {
		b.start[s] = struct{}{}
	}
	for s := range a.accept {
		b.accept[s] = struct{}{}
	}
	return b
}

func (a *Automaton[S]) addTransition(src S, sym string, dst S) {
	symbols := a.transitions[src]
	if symbols == nil {
		symbols = make(map[string]stateSet[S])
		a.transitions[src] = symbols
	}
	dsts := symbols[sym]
	if dsts == nil {
		dsts = make(stateSet[S])
		symbols[sym] = dsts
	}
	dsts[dst] = struct{}{}
}

// removeTransition removes one edge, then any map entries left empty.
func (a *Automaton[S]) removeTransition(src S, sym string, dst S) {
	symbols := a.transitions[src]
	dsts := symbols[sym]
	delete(dsts, dst)
	if len(dsts) == 0 {
		delete(symbols, sym)
	}
	if len(symbols) == 0 {
		delete(a.transitions, src)
	}
}

// strike removes every edge leading to s.
func (a *Automaton[S]) strike(s S) {
	for src, symbols := range a.transitions {
		for sym, dsts := range symbols {
			delete(dsts, s)
			if len(dsts) == 0 {
				delete(symbols, sym)
			}
		}
		if len(symbols) == 0 {
			delete(a.transitions, src)
		}
	}
}

// redirect makes every edge leading to from lead to to instead.
func (a *Automaton[S]) redirect(from, to S) {
	for _, symbols := range a.transitions {
		for _, dsts := range symbols {
			if dsts.has(from) {
				delete(dsts, from)
				dsts[to] = struct{}{}
			}
		}
	}
}

// Start returns the start states.
func (a *Automaton[S]) Start() []S { return a.start.sorted() }

// Accept returns the accepting states.
func (a *Automaton[S]) Accept() []S { return a.accept.sorted() }

// IsStart reports whether s is a start state.
func (a *Automaton[S]) IsStart(s S) bool { return a.start.has(s) }

// IsAccept reports whether s is an accepting state.
func (a *Automaton[S]) IsAccept(s S) bool { return a.accept.has(s) }

// States returns every state that is a start or accepting state, or that
// appears as the source or destination of a transition.
func (a *Automaton[S]) States() []S {
	all := make(stateSet[S])
	for src, symbols := range a.transitions {
		all[src] = struct{}{}
		for _, dsts := range symbols {
			for dst := range dsts {
				all[dst] = struct{}{}
			}
		}
	}
	for s := range a.start {
		all[s] = struct{}{}
	}
	for s := range a.accept {
		all[s] = struct{}{}
	}
	return all.sorted()
}

// Symbols returns the symbols labelling transitions out of s, including ""
// if s has epsilon transitions.
func (a *Automaton[S]) Symbols(s S) []string {
	symbols := make([]string, 0, len(a.transitions[s]))
	for sym := range a.transitions[s] {
		symbols = append(symbols, sym)
	}
	slices.Sort(symbols)
	return symbols
}

// Targets returns the states reached from s by a transition labelled sym.
func (a *Automaton[S]) Targets(s S, sym string) []S {
	return a.transitions[s][sym].sorted()
}

// Transitions returns every transition, ordered by source state, then
// symbol, then destination state.
func (a *Automaton[S]) Transitions() []Transition[S] {
	srcs := make(stateSet[S], len(a.transitions))
	for src := range a.transitions {
		srcs[src] = struct{}{}
	}
	var out []Transition[S]
	for _, src := range srcs.sorted() {
		for _, sym := range a.Symbols(src) {
			for _, dst := range a.Targets(src, sym) {
				out = append(out, Transition[S]{From: src, Symbol: sym, To: dst})
			}
		}
	}
	return out
}
