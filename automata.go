package fa

import (
	"strconv"
)

// Automata builds small DFAs over a caller supplied alphabet.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a DFA over alphabet with the empty language.
func (*Automata) MakeEmpty(alphabet ...string) *DFA {
	d := newEmptyDFA(NewSet(alphabet...))
	d.initial = DefaultPrefix + "0"
	d.addState(d.initial, false)
	return d
}

// MakeEmptyString
// Returns a DFA over alphabet that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet ...string) *DFA {
	d := newEmptyDFA(NewSet(alphabet...))
	d.initial = DefaultPrefix + "0"
	d.addState(d.initial, true)
	return d
}

// MakeAnyString
// Returns a DFA that accepts every string over alphabet.
func (*Automata) MakeAnyString(alphabet ...string) *DFA {
	d := newEmptyDFA(NewSet(alphabet...))
	d.initial = DefaultPrefix + "0"
	d.addState(d.initial, true)
	for sym := range d.alphabet {
		d.setTransition(d.initial, sym, d.initial)
	}
	return d
}

// MakeString
// Returns a DFA over alphabet that accepts only word. Every symbol of word
// must belong to alphabet.
func (*Automata) MakeString(alphabet []string, word ...string) (*DFA, error) {
	d := newEmptyDFA(NewSet(alphabet...))
	if err := checkInput(d.alphabet, word, false); err != nil {
		return nil, err
	}

	state := func(i int) string { return DefaultPrefix + strconv.Itoa(i) }
	d.initial = state(0)
	d.addState(d.initial, len(word) == 0)
	for i, sym := range word {
		d.addState(state(i+1), i == len(word)-1)
		d.setTransition(state(i), sym, state(i+1))
	}
	return d, nil
}
