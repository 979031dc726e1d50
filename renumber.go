package fa

import (
	"strconv"
)

// renaming maps every state to prefix followed by its position: reachable
// states first in breadth first order from the initial state, then the
// unreachable ones in ascending name order.
func renaming(a stepper, prefix string) map[string]string {
	order := bfsOrder(a)
	seen := NewSet(order...)
	for _, s := range a.States().Elements() {
		if !seen.Has(s) {
			order = append(order, s)
		}
	}

	names := make(map[string]string, len(order))
	for i, s := range order {
		names[s] = prefix + strconv.Itoa(i)
	}
	return names
}

// Renumber relabels the states in place as q0, q1, ... (see WithPrefix).
// It is the only operation that mutates its receiver.
func (d *DFA) Renumber(opts ...Option) error {
	if err := d.Validate(); err != nil {
		return err
	}
	names := renaming(d, newOptions(opts...).prefix)

	states, final := NewSet(), NewSet()
	for s := range d.states {
		states.Add(names[s])
	}
	for s := range d.final {
		final.Add(names[s])
	}
	delta := make(map[string]map[string]string, len(d.delta))
	for from, row := range d.delta {
		renamed := make(map[string]string, len(row))
		for sym, to := range row {
			renamed[sym] = names[to]
		}
		delta[names[from]] = renamed
	}

	d.states, d.final, d.delta, d.initial = states, final, delta, names[d.initial]
	return nil
}

// Renumbered returns a renumbered copy and leaves d untouched.
func (d *DFA) Renumbered(opts ...Option) (*DFA, error) {
	c := d.Clone()
	if err := c.Renumber(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (n *NFA) Renumber(opts ...Option) error {
	if err := n.Validate(); err != nil {
		return err
	}
	names := renaming(n, newOptions(opts...).prefix)

	states, final := NewSet(), NewSet()
	for s := range n.states {
		states.Add(names[s])
	}
	for s := range n.final {
		final.Add(names[s])
	}
	delta := make(map[string]map[string]Set, len(n.delta))
	for from, row := range n.delta {
		renamed := make(map[string]Set, len(row))
		for sym, targets := range row {
			set := NewSet()
			for to := range targets {
				set.Add(names[to])
			}
			renamed[sym] = set
		}
		delta[names[from]] = renamed
	}

	n.states, n.final, n.delta, n.initial = states, final, delta, names[n.initial]
	return nil
}

func (n *NFA) Renumbered(opts ...Option) (*NFA, error) {
	c := n.Clone()
	if err := c.Renumber(opts...); err != nil {
		return nil, err
	}
	return c, nil
}
