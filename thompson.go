package retofa

// BuildEpsilonNFA translates a syntax tree into an epsilon-NFA with a single
// start state (1) and a single accepting state (2). Other states are numbered
// in the order the construction allocates them, so the result is the same
// for equal trees.
func BuildEpsilonNFA(ast Node, opts ...BuildOption) *Automaton[NFAState] {
	cfg := newBuildConfig(opts)

	b := &thompson{fa: newAutomaton[NFAState]()}
	start, accept := b.newState(), b.newState()
	b.fa.start[start] = struct{}{}
	b.fa.accept[accept] = struct{}{}
	b.visit(ast, start, accept)

	cfg.logf("epsilon-NFA for %v has %d states\n", ast, b.last)
	return b.fa
}

// thompson holds the state of a single epsilon-NFA construction.
type thompson struct {
	fa   *Automaton[NFAState]
	last NFAState // most recently allocated state
}

func (b *thompson) newState() NFAState {
	b.last++
	return b.last
}

// visit adds transitions to the automaton so that n is matched going from
// src to dst.
func (b *thompson) visit(n Node, src, dst NFAState) {
	switch n := n.(type) {
	case Symbol:
		// An empty self-loop would be meaningless.
		if src != dst || n != "" {
			b.fa.addTransition(src, string(n), dst)
		}

	case Concatenate:
		middle := b.newState()
		b.visit(n.Left, src, middle)
		b.visit(n.Right, middle, dst)

	case Or:
		b.visit(n.Left, src, dst)
		b.visit(n.Right, src, dst)

	case ZeroOrMore:
		middle := b.newState()
		b.fa.addTransition(src, "", middle)
		b.fa.addTransition(middle, "", dst)
		b.visit(n.Operand, middle, middle)

	case OneOrMore:
		// x+ is x.x*; the operand is built twice.
		b.visit(Concatenate{Left: n.Operand, Right: ZeroOrMore{Operand: n.Operand}}, src, dst)
	}
}
