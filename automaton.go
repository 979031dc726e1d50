package fa

import (
	"fmt"
	"slices"
	"strings"
)

// Epsilon is the symbol of an NFA transition that consumes no input.
// It is never a member of a declared alphabet.
const Epsilon = ""

// Transition is one edge of an automaton. NFA entries with several targets
// are reported as one Transition per target.
type Transition struct {
	From   string
	Symbol string
	To     string
}

// Automaton is the read-only view shared by DFA and NFA.
type Automaton interface {
	States() Set
	Alphabet() Set
	Initial() string
	Final() Set
	IsFinal(state string) bool
	Transitions() []Transition
	Validate() error
	IsValid() (bool, error)
	Accept(input string) (bool, error)
	AcceptSymbols(symbols []string) (bool, error)
}

var (
	_ Automaton = (*DFA)(nil)
	_ Automaton = (*NFA)(nil)
)

// stepper is implemented by both kinds: a DFA step yields at most one state.
type stepper interface {
	Automaton
	next(state, symbol string) []string
}

// symbolOrder is the order symbols are explored in: epsilon first, then the
// alphabet ascending.
func symbolOrder(a Automaton) []string {
	return append([]string{Epsilon}, a.Alphabet().Elements()...)
}

// bfsOrder lists the states reachable from the initial state in breadth
// first order.
func bfsOrder(a stepper) []string {
	idx := newStateIndex(a.States())
	start, ok := idx.id(a.Initial())
	if !ok {
		return nil
	}

	symbols := symbolOrder(a)
	seen := idx.newBits()
	seen.Set(start)
	order := []string{a.Initial()}
	for i := 0; i < len(order); i++ {
		for _, sym := range symbols {
			for _, to := range a.next(order[i], sym) {
				id, ok := idx.id(to)
				if !ok || seen.Test(id) {
					continue
				}
				seen.Set(id)
				order = append(order, to)
			}
		}
	}
	return order
}

func reachable(a stepper) Set {
	return NewSet(bfsOrder(a)...)
}

func sortTransitions(ts []Transition) {
	slices.SortFunc(ts, func(x, y Transition) int {
		if c := strings.Compare(x.From, y.From); c != 0 {
			return c
		}
		if c := strings.Compare(x.Symbol, y.Symbol); c != 0 {
			return c
		}
		return strings.Compare(x.To, y.To)
	})
}

// describe renders an automaton as
// <START: "q0", STATES: [q0: {"0"->q0, "1"->q1}, ((q1))]>, one state per line.
// Final states are wrapped in double parentheses.
func describe(a stepper) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<START: %q, STATES: [", a.Initial()))

	states := a.States().Elements()
	symbols := symbolOrder(a)
	for i, s := range states {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("\n\t")
		if a.IsFinal(s) {
			b.WriteString("((" + quoteToken(s) + "))")
		} else {
			b.WriteString(quoteToken(s))
		}

		var edges []string
		for _, sym := range symbols {
			targets := a.next(s, sym)
			if len(targets) == 0 {
				continue
			}
			label := fmt.Sprintf("%q", sym)
			if sym == Epsilon {
				label = "ε"
			}
			if len(targets) == 1 {
				edges = append(edges, label+"->"+quoteToken(targets[0]))
			} else {
				edges = append(edges, label+"->"+setName(targets))
			}
		}
		if len(edges) > 0 {
			b.WriteString(": {" + strings.Join(edges, ", ") + "}")
		}
	}
	b.WriteString("\n]>")
	return b.String()
}

// freshName returns base, or base followed by the smallest positive number
// that makes it unused in taken.
func freshName(base string, taken Set) string {
	if !taken.Has(base) {
		return base
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s%d", base, i)
		if !taken.Has(name) {
			return name
		}
	}
}
