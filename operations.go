package fa

import (
	"github.com/bits-and-blooms/bitset"
)

// ToDFA determinizes the NFA with the subset construction. Only subsets
// reachable from the closure of the initial state are built; the empty
// subset, when reachable, becomes an explicit dead state named {}.
// Worst case complexity: exponential in the number of states. WithWorkLimit
// caps the number of subsets materialized.
func (n *NFA) ToDFA(opts ...Option) (*DFA, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	idx := newStateIndex(n.states)
	finals := idx.bitsOf(n.final)
	symbols := n.alphabet.Elements()

	d := newEmptyDFA(n.alphabet)
	names := newHashMap[string](withCapacity(n.states.Len()))
	work := 0

	// 为新子集分配状态
	materialize := func(set *frozenStateSet) (string, error) {
		if err := o.spend(&work, 1, "subset construction"); err != nil {
			return "", err
		}
		name := setName(idx.members(set.bits))
		names.Set(set, name)
		d.addState(name, set.bits.IntersectionCardinality(finals) > 0)
		return name, nil
	}

	initialSet := newFrozenStateSet(n.closure(idx, idx.bits(n.initial)))
	initial, err := materialize(initialSet)
	if err != nil {
		return nil, err
	}
	d.initial = initial

	worklist := []*frozenStateSet{initialSet}
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]
		from, _ := names.Get(current)

		for _, sym := range symbols {
			target := newFrozenStateSet(n.closure(idx, n.move(idx, current.bits, sym)))
			to, ok := names.Get(target)
			if !ok {
				if to, err = materialize(target); err != nil {
					return nil, err
				}
				worklist = append(worklist, target)
			}
			d.setTransition(from, sym, to)
		}
	}
	return d, nil
}

// IsComplete reports whether δ is defined for every state and symbol.
func (d *DFA) IsComplete() bool {
	for s := range d.states {
		for sym := range d.alphabet {
			if _, ok := d.delta[s][sym]; !ok {
				return false
			}
		}
	}
	return true
}

// Complete returns a copy of the DFA whose transition function is total.
// Missing transitions are routed to a fresh non-final trap state that loops
// on every symbol. A complete DFA is copied unchanged.
func (d *DFA) Complete(opts ...Option) (*DFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.complete(newOptions(opts...)), nil
}

func (d *DFA) complete(o *options) *DFA {
	c := d.Clone()
	if c.IsComplete() {
		return c
	}

	trap := freshName(o.trapState, c.states)
	c.addState(trap, false)
	for s := range c.states {
		for sym := range c.alphabet {
			if _, ok := c.delta[s][sym]; !ok {
				c.setTransition(s, sym, trap)
			}
		}
	}
	return c
}

// Trim returns a copy without the states unreachable from the initial state.
func (d *DFA) Trim() (*DFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.trim(), nil
}

func (d *DFA) trim() *DFA {
	live := reachable(d)
	t := newEmptyDFA(d.alphabet)
	t.initial = d.initial
	for s := range live {
		t.addState(s, d.final.Has(s))
		for sym, to := range d.delta[s] {
			t.setTransition(s, sym, to)
		}
	}
	return t
}

// pairAccept decides whether a product state is final from the finality of
// its components.
type pairAccept func(a, b bool) bool

var (
	acceptBoth       pairAccept = func(a, b bool) bool { return a && b }
	acceptEither     pairAccept = func(a, b bool) bool { return a || b }
	acceptLeftOnly   pairAccept = func(a, b bool) bool { return a && !b }
	acceptExactlyOne pairAccept = func(a, b bool) bool { return a != b }
)

type statePair struct {
	p, q string
}

// product builds the cross product of the completed operands. With
// reachableOnly set only the pairs reachable from the initial pair are built,
// otherwise every pair of states is.
func product(a, b *DFA, accept pairAccept, reachableOnly bool, o *options) (*DFA, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if !a.alphabet.Equal(b.alphabet) {
		return nil, newError(ErrAlphabetMismatch, "alphabets differ: %s and %s", a.alphabet, b.alphabet)
	}

	ca, cb := a.complete(o), b.complete(o)
	symbols := ca.alphabet.Elements()
	r := newEmptyDFA(ca.alphabet)
	names := make(map[statePair]string)
	work := 0

	add := func(p statePair) (string, error) {
		if err := o.spend(&work, 1, "product construction"); err != nil {
			return "", err
		}
		name := pairName(p.p, p.q)
		names[p] = name
		r.addState(name, accept(ca.final.Has(p.p), cb.final.Has(p.q)))
		return name, nil
	}

	start := statePair{ca.initial, cb.initial}
	if !reachableOnly {
		for _, p := range ca.states.Elements() {
			for _, q := range cb.states.Elements() {
				if _, err := add(statePair{p, q}); err != nil {
					return nil, err
				}
			}
		}
		for pair, from := range names {
			for _, sym := range symbols {
				r.setTransition(from, sym, names[statePair{ca.delta[pair.p][sym], cb.delta[pair.q][sym]}])
			}
		}
		r.initial = names[start]
		return r, nil
	}

	initial, err := add(start)
	if err != nil {
		return nil, err
	}
	r.initial = initial

	worklist := []statePair{start}
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]
		from := names[current]

		for _, sym := range symbols {
			target := statePair{ca.delta[current.p][sym], cb.delta[current.q][sym]}
			to, ok := names[target]
			if !ok {
				if to, err = add(target); err != nil {
					return nil, err
				}
				worklist = append(worklist, target)
			}
			r.setTransition(from, sym, to)
		}
	}
	return r, nil
}

// Complement returns a DFA accepting exactly the strings over the alphabet
// that d rejects.
func (d *DFA) Complement(opts ...Option) (*DFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	c := d.complete(newOptions(opts...))
	final := NewSet()
	for s := range c.states {
		if !c.final.Has(s) {
			final.Add(s)
		}
	}
	c.final = final
	return c, nil
}

// Union accepts the strings accepted by d or other.
func (d *DFA) Union(other *DFA, opts ...Option) (*DFA, error) {
	return product(d, other, acceptEither, true, newOptions(opts...))
}

// Intersection accepts the strings accepted by both d and other. Only the
// state pairs reachable from the initial pair are kept.
func (d *DFA) Intersection(other *DFA, opts ...Option) (*DFA, error) {
	return product(d, other, acceptBoth, true, newOptions(opts...))
}

// Difference accepts the strings accepted by d and rejected by other.
func (d *DFA) Difference(other *DFA, opts ...Option) (*DFA, error) {
	return product(d, other, acceptLeftOnly, true, newOptions(opts...))
}

// SymmetricDifference accepts the strings accepted by exactly one of d and other.
func (d *DFA) SymmetricDifference(other *DFA, opts ...Option) (*DFA, error) {
	return product(d, other, acceptExactlyOne, true, newOptions(opts...))
}

// Product returns the full cross product of the completed operands with the
// final pairs F×F'. It accepts the same language as Intersection but keeps
// unreachable pairs.
func (d *DFA) Product(other *DFA, opts ...Option) (*DFA, error) {
	return product(d, other, acceptBoth, false, newOptions(opts...))
}

// IsEmpty reports whether the DFA accepts no string.
func (d *DFA) IsEmpty() (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	return !reachable(d).Intersects(d.final), nil
}

// Equivalent reports whether d and other accept the same language.
func (d *DFA) Equivalent(other *DFA) (bool, error) {
	x, err := d.SymmetricDifference(other)
	if err != nil {
		return false, err
	}
	return x.IsEmpty()
}

// SubsetOf reports whether every string accepted by d is accepted by other.
func (d *DFA) SubsetOf(other *DFA) (bool, error) {
	x, err := d.Difference(other)
	if err != nil {
		return false, err
	}
	return x.IsEmpty()
}

// IsFinite reports whether the DFA accepts finitely many strings, that is
// whether no cycle runs through a state that is both reachable and able to
// reach a final state.
func (d *DFA) IsFinite() (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}

	idx := newStateIndex(d.states)
	live := idx.bitsOf(reachable(d)).Intersection(coReachable(d, idx))
	if live.None() {
		return true, nil
	}

	path := idx.newBits()
	visited := idx.newBits()
	start, _ := idx.id(d.initial)
	return isFinite(d, idx, start, live, path, visited), nil
}

// isFinite checks whether there is a loop through live states below state.
func isFinite(d *DFA, idx *stateIndex, state uint, live, path, visited *bitset.BitSet) bool {
	path.Set(state)
	for _, to := range d.delta[idx.name(state)] {
		id, _ := idx.id(to)
		if !live.Test(id) {
			continue
		}
		if path.Test(id) || (!visited.Test(id) && !isFinite(d, idx, id, live, path, visited)) {
			return false
		}
	}
	path.Clear(state)
	visited.Set(state)
	return true
}

// coReachable returns the states from which a final state can be reached.
func coReachable(d *DFA, idx *stateIndex) *bitset.BitSet {
	incoming := make(map[string][]string)
	for from, row := range d.delta {
		for _, to := range row {
			incoming[to] = append(incoming[to], from)
		}
	}

	seen := idx.bitsOf(d.final)
	worklist := d.final.Elements()
	for len(worklist) > 0 {
		s := worklist[0]
		worklist = worklist[1:]
		for _, from := range incoming[s] {
			id, _ := idx.id(from)
			if !seen.Test(id) {
				seen.Set(id)
				worklist = append(worklist, from)
			}
		}
	}
	return seen
}

// viaDFA determinizes n, applies op and lifts the result back to an NFA.
func (n *NFA) viaDFA(op func(*DFA) (*DFA, error), opts ...Option) (*NFA, error) {
	d, err := n.ToDFA(opts...)
	if err != nil {
		return nil, err
	}
	r, err := op(d)
	if err != nil {
		return nil, err
	}
	return r.ToNFA()
}

// binaryViaDFA checks both operands and their alphabets before determinizing
// either of them.
func (n *NFA) binaryViaDFA(other *NFA, op func(a, b *DFA) (*DFA, error), opts ...Option) (*NFA, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	if err := other.Validate(); err != nil {
		return nil, err
	}
	if !n.alphabet.Equal(other.alphabet) {
		return nil, newError(ErrAlphabetMismatch, "alphabets differ: %s and %s", n.alphabet, other.alphabet)
	}

	b, err := other.ToDFA(opts...)
	if err != nil {
		return nil, err
	}
	return n.viaDFA(func(a *DFA) (*DFA, error) { return op(a, b) }, opts...)
}

// Complement determinizes the NFA, complements it and lifts the result back.
func (n *NFA) Complement(opts ...Option) (*NFA, error) {
	return n.viaDFA(func(d *DFA) (*DFA, error) { return d.Complement(opts...) }, opts...)
}

func (n *NFA) Union(other *NFA, opts ...Option) (*NFA, error) {
	return n.binaryViaDFA(other, func(a, b *DFA) (*DFA, error) { return a.Union(b, opts...) }, opts...)
}

func (n *NFA) Intersection(other *NFA, opts ...Option) (*NFA, error) {
	return n.binaryViaDFA(other, func(a, b *DFA) (*DFA, error) { return a.Intersection(b, opts...) }, opts...)
}

func (n *NFA) Product(other *NFA, opts ...Option) (*NFA, error) {
	return n.binaryViaDFA(other, func(a, b *DFA) (*DFA, error) { return a.Product(b, opts...) }, opts...)
}
