package fa

import (
	"strconv"
	"strings"
)

// Minimize returns the minimal complete DFA accepting the language of d.
// The DFA is completed and stripped of unreachable states, then its states
// are partitioned into Myhill-Nerode classes by refining {F, Q\F} until no
// block splits. Each block becomes one state named after its members.
func (d *DFA) Minimize(opts ...Option) (*DFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	c := d.complete(newOptions(opts...)).trim()
	states := c.states.Elements()
	symbols := c.alphabet.Elements()

	block := make(map[string]int, len(states))
	count := refine(states, block, func(s string) string {
		if c.final.Has(s) {
			return "F"
		}
		return "N"
	})
	for {
		n := refine(states, block, func(s string) string {
			var sig strings.Builder
			sig.WriteString(strconv.Itoa(block[s]))
			for _, sym := range symbols {
				sig.WriteByte(':')
				sig.WriteString(strconv.Itoa(block[c.delta[s][sym]]))
			}
			return sig.String()
		})
		if n == count {
			break
		}
		count = n
	}

	members := make([][]string, count)
	for _, s := range states {
		members[block[s]] = append(members[block[s]], s)
	}
	names := make([]string, count)
	for i := range members {
		names[i] = setName(members[i])
	}

	m := newEmptyDFA(c.alphabet)
	for i, group := range members {
		rep := group[0]
		m.addState(names[i], c.final.Has(rep))
		for _, sym := range symbols {
			m.setTransition(names[i], sym, names[block[c.delta[rep][sym]]])
		}
	}
	m.initial = names[block[c.initial]]
	return m, nil
}

// refine assigns every state the block id of its signature, numbering
// signatures by first appearance, and returns the number of blocks.
// Signatures are computed against the previous assignment before block is
// overwritten.
func refine(states []string, block map[string]int, signature func(string) string) int {
	sigs := make([]string, len(states))
	for i, s := range states {
		sigs[i] = signature(s)
	}

	ids := make(map[string]int)
	for i, s := range states {
		id, ok := ids[sigs[i]]
		if !ok {
			id = len(ids)
			ids[sigs[i]] = id
		}
		block[s] = id
	}
	return len(ids)
}

// Minimize determinizes the NFA, minimizes the result and lifts it back with
// renumbered states.
func (n *NFA) Minimize(opts ...Option) (*NFA, error) {
	d, err := n.ToDFA(opts...)
	if err != nil {
		return nil, err
	}
	if d, err = d.Minimize(opts...); err != nil {
		return nil, err
	}
	r, err := d.ToNFA()
	if err != nil {
		return nil, err
	}
	if err := r.Renumber(opts...); err != nil {
		return nil, err
	}
	return r, nil
}
