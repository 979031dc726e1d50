package fa

import "fmt"

// splitInput splits input into one symbol per rune.
func splitInput(input string) []string {
	symbols := make([]string, 0, len(input))
	for _, r := range input {
		symbols = append(symbols, string(r))
	}
	return symbols
}

// checkInput reports the first symbol that is not in the alphabet. Epsilon
// is allowed when allowEpsilon is set.
func checkInput(alphabet Set, symbols []string, allowEpsilon bool) error {
	for i, sym := range symbols {
		if sym == Epsilon && allowEpsilon {
			continue
		}
		if !alphabet.Has(sym) {
			return &Error{
				Code:    ErrInput,
				Subject: sym,
				Message: fmt.Sprintf("input symbol %q at position %d is not declared in the alphabet", sym, i),
			}
		}
	}
	return nil
}

// Accept reports whether the DFA accepts input, read one rune per symbol.
// Use AcceptSymbols for alphabets with multi-character symbols.
func (d *DFA) Accept(input string) (bool, error) {
	return d.AcceptSymbols(splitInput(input))
}

// AcceptSymbols reports whether the DFA accepts the symbol sequence. A symbol
// outside the alphabet is an ErrInput error; an undefined transition rejects.
func (d *DFA) AcceptSymbols(symbols []string) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	if err := checkInput(d.alphabet, symbols, false); err != nil {
		return false, err
	}

	state := d.initial
	for _, sym := range symbols {
		to, ok := d.delta[state][sym]
		if !ok {
			return false, nil
		}
		state = to
	}
	return d.final.Has(state), nil
}

// Accept reports whether the NFA accepts input, read one rune per symbol.
func (n *NFA) Accept(input string) (bool, error) {
	return n.AcceptSymbols(splitInput(input))
}

// AcceptSymbols simulates the NFA on the symbol sequence, tracking the
// epsilon-closed set of active states. Epsilon symbols in the sequence are
// skipped.
func (n *NFA) AcceptSymbols(symbols []string) (bool, error) {
	if err := n.Validate(); err != nil {
		return false, err
	}
	if err := checkInput(n.alphabet, symbols, true); err != nil {
		return false, err
	}

	idx := newStateIndex(n.states)
	active := n.closure(idx, idx.bits(n.initial))
	for _, sym := range symbols {
		if sym == Epsilon {
			continue
		}
		active = n.closure(idx, n.move(idx, active, sym))
		if active.None() {
			return false, nil
		}
	}
	return active.IntersectionCardinality(idx.bitsOf(n.final)) > 0, nil
}
