package retofa

import (
	"cmp"
	"encoding/binary"
	"slices"
	"strconv"
	"strings"
)

// State is the set of requirements for automaton state identifiers: they
// must be usable as map keys, have a stable textual form, and be totally
// ordered so that everything derived from an automaton is deterministic.
type State[S any] interface {
	comparable
	String() string
	Compare(S) int
}

// NFAState identifies a state of an epsilon-NFA or NFA. States are numbered
// from 1 in the order they are allocated during construction.
type NFAState uint32

func (s NFAState) String() string         { return strconv.FormatUint(uint64(s), 10) }
func (s NFAState) Compare(t NFAState) int { return cmp.Compare(s, t) }

// DFAState identifies a state of a DFA by the set of NFA states it stands
// for. Two DFAStates are equal exactly when they have the same members.
type DFAState struct {
	// key holds the sorted members as fixed-width big-endian integers, so
	// that comparing keys compares member sequences lexicographically.
	key string
}

// NewDFAState returns the DFA state made of the given NFA states. The order
// of members and any duplicates are irrelevant.
func NewDFAState(members ...NFAState) DFAState {
	members = slices.Clone(members)
	slices.Sort(members)
	members = slices.Compact(members)
	key := make([]byte, 0, 4*len(members))
	for _, m := range members {
		key = binary.BigEndian.AppendUint32(key, uint32(m))
	}
	return DFAState{key: string(key)}
}

// Members returns the NFA states making up s, in ascending order.
func (s DFAState) Members() []NFAState {
	members := make([]NFAState, 0, len(s.key)/4)
	for i := 0; i+4 <= len(s.key); i += 4 {
		members = append(members, NFAState(binary.BigEndian.Uint32([]byte(s.key[i:i+4]))))
	}
	return members
}

// String joins the members, each preceded by an underscore (e.g. "_1_3"),
// which keeps the result usable as a GraphViz identifier.
func (s DFAState) String() string {
	var b strings.Builder
	for _, m := range s.Members() {
		b.WriteByte('_')
		b.WriteString(m.String())
	}
	return b.String()
}

func (s DFAState) Compare(t DFAState) int { return strings.Compare(s.key, t.key) }

// stateSet represents a set of states.
type stateSet[S State[S]] map[S]struct{}

// singleton wraps a single state in a set.
func singleton[S State[S]](s S) stateSet[S] { return stateSet[S]{s: {}} }

func (ss stateSet[S]) has(s S) bool {
	_, ok := ss[s]
	return ok
}

// sorted returns the members of the set in ascending order.
func (ss stateSet[S]) sorted() []S {
	out := make([]S, 0, len(ss))
	for s := range ss {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b S) int { return a.Compare(b) })
	return out
}
