package fa

import (
	"maps"
	"slices"
)

// DFA is a deterministic finite automaton. Its transition function may be
// partial: a missing entry rejects the input.
type DFA struct {
	states   Set
	alphabet Set
	delta    map[string]map[string]string
	initial  string
	final    Set
}

// NewDFA builds a DFA from caller data. The arguments are copied and not
// validated; every algorithm validates the automaton before it runs.
func NewDFA(states, alphabet []string, delta map[string]map[string]string, initial string, final []string) *DFA {
	d := &DFA{
		states:   NewSet(states...),
		alphabet: NewSet(alphabet...),
		delta:    make(map[string]map[string]string, len(delta)),
		initial:  initial,
		final:    NewSet(final...),
	}
	for from, row := range delta {
		copied := make(map[string]string, len(row))
		for sym, to := range row {
			copied[sym] = to
		}
		d.delta[from] = copied
	}
	return d
}

// newEmptyDFA returns a DFA over a copy of alphabet with no states.
func newEmptyDFA(alphabet Set) *DFA {
	return &DFA{
		states:   NewSet(),
		alphabet: alphabet.Copy(),
		delta:    make(map[string]map[string]string),
		final:    NewSet(),
	}
}

func (d *DFA) addState(name string, final bool) {
	d.states.Add(name)
	if final {
		d.final.Add(name)
	}
}

func (d *DFA) setTransition(from, symbol, to string) {
	row, ok := d.delta[from]
	if !ok {
		row = make(map[string]string)
		d.delta[from] = row
	}
	row[symbol] = to
}

func (d *DFA) States() Set {
	return d.states.Copy()
}

func (d *DFA) Alphabet() Set {
	return d.alphabet.Copy()
}

func (d *DFA) Initial() string {
	return d.initial
}

func (d *DFA) Final() Set {
	return d.final.Copy()
}

func (d *DFA) IsFinal(state string) bool {
	return d.final.Has(state)
}

func (d *DFA) NumStates() int {
	return d.states.Len()
}

// Next returns δ(state, symbol) and whether it is defined.
func (d *DFA) Next(state, symbol string) (string, bool) {
	to, ok := d.delta[state][symbol]
	return to, ok
}

func (d *DFA) next(state, symbol string) []string {
	if to, ok := d.delta[state][symbol]; ok {
		return []string{to}
	}
	return nil
}

// Transitions lists every defined transition ordered by source, symbol and target.
func (d *DFA) Transitions() []Transition {
	var ts []Transition
	for from, row := range d.delta {
		for sym, to := range row {
			ts = append(ts, Transition{From: from, Symbol: sym, To: to})
		}
	}
	sortTransitions(ts)
	return ts
}

// Validate checks the structural invariants in order: the alphabet does not
// declare epsilon, the initial state, the final states, then every
// transition's source, symbol and target. The first violation is returned.
func (d *DFA) Validate() error {
	if d.alphabet.Has(Epsilon) {
		return invariantError(ErrAlphabet, InvariantReservedSymbol, Epsilon,
			"the empty symbol is reserved for epsilon and cannot be declared in a DFA alphabet")
	}
	if !d.states.Has(d.initial) {
		return invariantError(ErrStructural, InvariantInitial, d.initial,
			"initial state %s is not declared in states", quoteToken(d.initial))
	}
	for _, f := range d.final.Elements() {
		if !d.states.Has(f) {
			return invariantError(ErrStructural, InvariantFinal, f,
				"final state %s is not declared in states", quoteToken(f))
		}
	}
	for _, from := range slices.Sorted(maps.Keys(d.delta)) {
		if !d.states.Has(from) {
			return invariantError(ErrStructural, InvariantTransitionSource, from,
				"transition source %s is not declared in states", quoteToken(from))
		}
		row := d.delta[from]
		for _, sym := range slices.Sorted(maps.Keys(row)) {
			if !d.alphabet.Has(sym) {
				return invariantError(ErrAlphabet, InvariantTransitionSymbol, sym,
					"symbol %q of state %s is not declared in the alphabet", sym, quoteToken(from))
			}
			if to := row[sym]; !d.states.Has(to) {
				return invariantError(ErrStructural, InvariantTransitionTarget, to,
					"transition %s --%q--> %s targets an undeclared state", quoteToken(from), sym, quoteToken(to))
			}
		}
	}
	return nil
}

// IsValid reports whether the automaton is well formed. The error describes
// the first violated invariant.
func (d *DFA) IsValid() (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	return true, nil
}

// Clone returns a deep copy.
func (d *DFA) Clone() *DFA {
	c := newEmptyDFA(d.alphabet)
	c.states = d.states.Copy()
	c.final = d.final.Copy()
	c.initial = d.initial
	for from, row := range d.delta {
		for sym, to := range row {
			c.setTransition(from, sym, to)
		}
	}
	return c
}

// ToNFA lifts every transition to a singleton target set.
func (d *DFA) ToNFA() (*NFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	n := newEmptyNFA(d.alphabet)
	n.states = d.states.Copy()
	n.final = d.final.Copy()
	n.initial = d.initial
	for from, row := range d.delta {
		for sym, to := range row {
			n.addTransition(from, sym, to)
		}
	}
	return n, nil
}

func (d *DFA) String() string {
	return describe(d)
}
