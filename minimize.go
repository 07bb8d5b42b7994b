package retofa

import (
	"fmt"
	"strings"
)

// Minimize merges indistinguishable states of a DFA. dfa is not modified.
//
// States start out partitioned into accepting and non-accepting groups. A
// group is split whenever its members disagree on which group each symbol
// leads to, and scanning restarts after every split since the split may
// distinguish members of other groups. Finally every group is collapsed into
// its least member.
func Minimize(dfa *Automaton[DFAState], opts ...BuildOption) *Automaton[DFAState] {
	cfg := newBuildConfig(opts)
	fa := dfa.clone()

	var accepting, rejecting []DFAState
	for _, s := range fa.States() {
		if fa.accept.has(s) {
			accepting = append(accepting, s)
		} else {
			rejecting = append(rejecting, s)
		}
	}
	var groups [][]DFAState
	for _, g := range [][]DFAState{accepting, rejecting} {
		if len(g) > 0 {
			groups = append(groups, g)
		}
	}

	for {
		var split bool
		groups, split = fa.splitGroup(groups)
		if !split {
			break
		}
		cfg.logf("partition refined into %d groups\n", len(groups))
	}

	for _, g := range groups {
		if len(g) < 2 {
			continue
		}
		cfg.logf("merging %v into %v\n", g[1:], g[0])
		for _, s := range g[1:] {
			fa.merge(g[0], s)
		}
	}
	return fa
}

// splitGroup splits the first group whose members have differing
// signatures. Members of each group are kept in ascending order.
func (a *Automaton[S]) splitGroup(groups [][]S) ([][]S, bool) {
	groupOf := make(map[S]int)
	for i, g := range groups {
		for _, s := range g {
			groupOf[s] = i
		}
	}

	for i, g := range groups {
		if len(g) < 2 {
			continue
		}
		var sigs []string
		bySig := make(map[string][]S)
		for _, s := range g {
			sig := a.signature(s, groupOf)
			if _, seen := bySig[sig]; !seen {
				sigs = append(sigs, sig)
			}
			bySig[sig] = append(bySig[sig], s)
		}
		if len(sigs) == 1 {
			continue
		}
		groups[i] = bySig[sigs[0]]
		for _, sig := range sigs[1:] {
			groups = append(groups, bySig[sig])
		}
		return groups, true
	}
	return groups, false
}

// signature describes, for each symbol out of s, which group it leads to.
func (a *Automaton[S]) signature(s S, groupOf map[S]int) string {
	var b strings.Builder
	for _, sym := range a.Symbols(s) {
		fmt.Fprintf(&b, "%q", sym)
		for _, dst := range a.Targets(s, sym) {
			fmt.Fprintf(&b, ":%d", groupOf[dst])
		}
		b.WriteByte(';')
	}
	return b.String()
}

// merge folds state s into rep.
func (a *Automaton[S]) merge(rep, s S) {
	for sym, dsts := range a.transitions[s] {
		for dst := range dsts {
			a.addTransition(rep, sym, dst)
		}
	}
	delete(a.transitions, s)
	a.redirect(s, rep)
	if a.start.has(s) {
		delete(a.start, s)
		a.start[rep] = struct{}{}
	}
	delete(a.accept, s)
}
