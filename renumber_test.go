package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenumber(t *testing.T) {
	t.Run("nfa", func(t *testing.T) {
		n := NewNFA(
			[]string{"0", "1", "2", "3"},
			[]string{"A", "B", "C"},
			map[string]map[string][]string{
				"0": {"A": {"1"}},
				"1": {"B": {"2"}, Epsilon: {"2"}},
				"2": {"C": {"3"}},
			},
			"0",
			[]string{"3"},
		)
		require.NoError(t, n.Renumber())

		assert.True(t, n.States().Equal(NewSet("q0", "q1", "q2", "q3")))
		assert.Equal(t, "q0", n.Initial())
		assert.True(t, n.Final().Equal(NewSet("q3")))
		assert.True(t, n.Next("q1", Epsilon).Equal(NewSet("q2")))
		assert.True(t, n.Next("q1", "B").Equal(NewSet("q2")))

		for in, want := range map[string]bool{"ABC": true, "AC": true, "AB": false} {
			ok, err := n.Accept(in)
			assert.NoError(t, err)
			assert.Equal(t, want, ok, in)
		}
	})

	t.Run("bfs order then unreachable", func(t *testing.T) {
		d := NewDFA(
			[]string{"z", "a", "m"},
			[]string{"x"},
			map[string]map[string]string{"z": {"x": "a"}, "m": {"x": "m"}},
			"z",
			[]string{"a"},
		)
		require.NoError(t, d.Renumber(WithPrefix("s")))

		assert.Equal(t, "s0", d.Initial())
		assert.True(t, d.Final().Equal(NewSet("s1")))
		to, ok := d.Next("s0", "x")
		assert.True(t, ok)
		assert.Equal(t, "s1", to)
		to, ok = d.Next("s2", "x")
		assert.True(t, ok)
		assert.Equal(t, "s2", to)
	})

	t.Run("pure relabeling", func(t *testing.T) {
		d := threeZeros()
		r, err := d.Renumbered()
		require.NoError(t, err)
		assert.Equal(t, "R", d.Initial(), "Renumbered leaves the receiver alone")
		assert.Equal(t, d.NumStates(), r.NumStates())
		assert.Equal(t, len(d.Transitions()), len(r.Transitions()))
		for _, w := range words([]string{"0", "1"}, 8) {
			assert.Equal(t, mustAccept(t, d, w), mustAccept(t, r, w), "%v", w)
		}
	})

	t.Run("names that collide with the prefix", func(t *testing.T) {
		d := NewDFA([]string{"q1", "q0"}, []string{"a"},
			map[string]map[string]string{"q1": {"a": "q0"}}, "q1", []string{"q0"})
		require.NoError(t, d.Renumber())
		assert.Equal(t, "q0", d.Initial())
		assert.True(t, d.Final().Equal(NewSet("q1")))
	})

	t.Run("invalid", func(t *testing.T) {
		n := NewNFA([]string{"a"}, []string{"x"}, nil, "b", nil)
		assert.ErrorIs(t, n.Renumber(), ErrStructural)
		_, err := n.Renumbered()
		assert.ErrorIs(t, err, ErrStructural)
	})
}
