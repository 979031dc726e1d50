package fa

import (
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// NFA is a non-deterministic finite automaton. Transitions labelled with
// Epsilon consume no input.
type NFA struct {
	states   Set
	alphabet Set
	delta    map[string]map[string]Set
	initial  string
	final    Set
}

// NewNFA builds an NFA from caller data. The arguments are copied and not
// validated. Epsilon is dropped from the alphabet if the caller declared it.
func NewNFA(states, alphabet []string, delta map[string]map[string][]string, initial string, final []string) *NFA {
	n := &NFA{
		states:   NewSet(states...),
		alphabet: NewSet(alphabet...),
		delta:    make(map[string]map[string]Set, len(delta)),
		initial:  initial,
		final:    NewSet(final...),
	}
	delete(n.alphabet, Epsilon)
	for from, row := range delta {
		copied := make(map[string]Set, len(row))
		for sym, targets := range row {
			copied[sym] = NewSet(targets...)
		}
		n.delta[from] = copied
	}
	return n
}

func newEmptyNFA(alphabet Set) *NFA {
	return &NFA{
		states:   NewSet(),
		alphabet: alphabet.Copy(),
		delta:    make(map[string]map[string]Set),
		final:    NewSet(),
	}
}

func (n *NFA) addTransition(from, symbol string, to ...string) {
	row, ok := n.delta[from]
	if !ok {
		row = make(map[string]Set)
		n.delta[from] = row
	}
	targets, ok := row[symbol]
	if !ok {
		targets = NewSet()
		row[symbol] = targets
	}
	targets.Add(to...)
}

func (n *NFA) States() Set {
	return n.states.Copy()
}

func (n *NFA) Alphabet() Set {
	return n.alphabet.Copy()
}

func (n *NFA) Initial() string {
	return n.initial
}

func (n *NFA) Final() Set {
	return n.final.Copy()
}

func (n *NFA) IsFinal(state string) bool {
	return n.final.Has(state)
}

func (n *NFA) NumStates() int {
	return n.states.Len()
}

// Next returns a copy of δ(state, symbol). Pass Epsilon for the epsilon targets.
func (n *NFA) Next(state, symbol string) Set {
	return n.delta[state][symbol].Copy()
}

func (n *NFA) next(state, symbol string) []string {
	return n.delta[state][symbol].Elements()
}

// Transitions lists every transition, one entry per target, ordered by
// source, symbol and target. Epsilon transitions carry the Epsilon symbol.
func (n *NFA) Transitions() []Transition {
	var ts []Transition
	for from, row := range n.delta {
		for sym, targets := range row {
			for to := range targets {
				ts = append(ts, Transition{From: from, Symbol: sym, To: to})
			}
		}
	}
	sortTransitions(ts)
	return ts
}

// HasEpsilonTransitions reports whether some state has an epsilon transition.
func (n *NFA) HasEpsilonTransitions() bool {
	for _, row := range n.delta {
		if row[Epsilon].Len() > 0 {
			return true
		}
	}
	return false
}

// Validate checks the structural invariants in order: the initial state, the
// final states, then every transition's source, symbol and targets. Epsilon is
// accepted as a transition symbol. The first violation is returned.
func (n *NFA) Validate() error {
	if !n.states.Has(n.initial) {
		return invariantError(ErrStructural, InvariantInitial, n.initial,
			"initial state %s is not declared in states", quoteToken(n.initial))
	}
	for _, f := range n.final.Elements() {
		if !n.states.Has(f) {
			return invariantError(ErrStructural, InvariantFinal, f,
				"final state %s is not declared in states", quoteToken(f))
		}
	}
	for _, from := range slices.Sorted(maps.Keys(n.delta)) {
		if !n.states.Has(from) {
			return invariantError(ErrStructural, InvariantTransitionSource, from,
				"transition source %s is not declared in states", quoteToken(from))
		}
		row := n.delta[from]
		for _, sym := range slices.Sorted(maps.Keys(row)) {
			if sym != Epsilon && !n.alphabet.Has(sym) {
				return invariantError(ErrAlphabet, InvariantTransitionSymbol, sym,
					"symbol %q of state %s is not declared in the alphabet", sym, quoteToken(from))
			}
			for _, to := range row[sym].Elements() {
				if !n.states.Has(to) {
					return invariantError(ErrStructural, InvariantTransitionTarget, to,
						"transition %s --%q--> %s targets an undeclared state", quoteToken(from), sym, quoteToken(to))
				}
			}
		}
	}
	return nil
}

func (n *NFA) IsValid() (bool, error) {
	if err := n.Validate(); err != nil {
		return false, err
	}
	return true, nil
}

func (n *NFA) Clone() *NFA {
	c := newEmptyNFA(n.alphabet)
	c.states = n.states.Copy()
	c.final = n.final.Copy()
	c.initial = n.initial
	for from, row := range n.delta {
		for sym, targets := range row {
			c.addTransition(from, sym, targets.Elements()...)
		}
	}
	return c
}

func (n *NFA) String() string {
	return describe(n)
}

// EpsilonClosure returns every state reachable from the given states through
// epsilon transitions alone, the states themselves included.
func (n *NFA) EpsilonClosure(states ...string) (Set, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	for _, s := range states {
		if !n.states.Has(s) {
			return nil, invariantError(ErrStructural, "", s,
				"closure seed %s is not declared in states", quoteToken(s))
		}
	}

	idx := newStateIndex(n.states)
	return idx.set(n.closure(idx, idx.bits(states...))), nil
}

// closure grows seed to its epsilon closure. seed is left untouched.
// The visited set makes epsilon cycles terminate.
func (n *NFA) closure(idx *stateIndex, seed *bitset.BitSet) *bitset.BitSet {
	result := seed.Clone()
	stack := idx.members(seed)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for t := range n.delta[s][Epsilon] {
			id, ok := idx.id(t)
			if !ok || result.Test(id) {
				continue
			}
			result.Set(id)
			stack = append(stack, t)
		}
	}
	return result
}

// move returns the union of δ(s, symbol) over the states in from.
func (n *NFA) move(idx *stateIndex, from *bitset.BitSet, symbol string) *bitset.BitSet {
	result := idx.newBits()
	for i, ok := from.NextSet(0); ok; i, ok = from.NextSet(i + 1) {
		for t := range n.delta[idx.name(i)][symbol] {
			if id, ok := idx.id(t); ok {
				result.Set(id)
			}
		}
	}
	return result
}

// RemoveEpsilonTransitions returns an equivalent NFA without epsilon
// transitions over the same states. A state becomes final when its closure
// contains a final state.
func (n *NFA) RemoveEpsilonTransitions() (*NFA, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	idx := newStateIndex(n.states)
	finals := idx.bitsOf(n.final)
	symbols := n.alphabet.Elements()

	r := newEmptyNFA(n.alphabet)
	r.states = n.states.Copy()
	r.initial = n.initial
	r.final = n.final.Copy()
	for _, s := range idx.names {
		cl := n.closure(idx, idx.bits(s))
		if cl.IntersectionCardinality(finals) > 0 {
			r.final.Add(s)
		}
		for _, sym := range symbols {
			targets := n.move(idx, cl, sym)
			if targets.None() {
				continue
			}
			r.addTransition(s, sym, idx.members(targets)...)
		}
	}
	return r, nil
}
