// Package render draws automata for people: graphviz DOT source and plain
// text transition tables.
package render

import (
	"github.com/geange/fa"
)

// Graph is the read-only view of an automaton the renderers need. Both
// *fa.DFA and *fa.NFA implement it.
type Graph interface {
	States() fa.Set
	Alphabet() fa.Set
	Initial() string
	IsFinal(state string) bool
	Transitions() []fa.Transition
}

var (
	_ Graph = (*fa.DFA)(nil)
	_ Graph = (*fa.NFA)(nil)
)

const epsilonLabel = "ε"

func symbolLabel(sym string) string {
	if sym == fa.Epsilon {
		return epsilonLabel
	}
	return sym
}
