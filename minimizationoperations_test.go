package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oddOnesRedundant is oddOnes with every class split in two plus an
// unreachable state.
func oddOnesRedundant() *DFA {
	return NewDFA(
		[]string{"e0", "e1", "o0", "o1", "u"},
		[]string{"0", "1"},
		map[string]map[string]string{
			"e0": {"0": "e1", "1": "o0"},
			"e1": {"0": "e0", "1": "o1"},
			"o0": {"0": "o1", "1": "e0"},
			"o1": {"0": "o0", "1": "e1"},
			"u":  {"0": "u", "1": "u"},
		},
		"e0",
		[]string{"o0", "o1"},
	)
}

func TestMinimize(t *testing.T) {
	t.Run("merges equivalent states", func(t *testing.T) {
		m, err := oddOnesRedundant().Minimize()
		require.NoError(t, err)
		assert.Equal(t, 2, m.NumStates())
		assert.True(t, m.States().Equal(NewSet("{e0,e1}", "{o0,o1}")))
		assert.Equal(t, "{e0,e1}", m.Initial())
		assert.True(t, m.Final().Equal(NewSet("{o0,o1}")))
	})

	t.Run("already minimal", func(t *testing.T) {
		tests := []struct {
			name string
			dfa  *DFA
			want int
		}{
			{"divisible by three", divisibleBy3(), 3},
			{"contains 000", threeZeros(), 4},
			{"odd ones", oddOnes(), 2},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				m, err := tt.dfa.Minimize()
				require.NoError(t, err)
				assert.Equal(t, tt.want, m.NumStates())
			})
		}
	})

	t.Run("partial input is completed", func(t *testing.T) {
		word, err := defaultAutomata.MakeString([]string{"a", "b"}, "a", "b")
		require.NoError(t, err)
		m, err := word.Minimize()
		require.NoError(t, err)
		assert.Equal(t, 4, m.NumStates())
		assert.True(t, m.IsComplete())
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, d := range []*DFA{oddOnesRedundant(), divisibleBy3(), partial01(), threeZeros()} {
			once, err := d.Minimize()
			require.NoError(t, err)
			twice, err := once.Minimize()
			require.NoError(t, err)
			assert.Equal(t, once.NumStates(), twice.NumStates())
		}
	})

	t.Run("language preserved", func(t *testing.T) {
		for _, d := range []*DFA{oddOnesRedundant(), partial01(), threeZeros()} {
			m, err := d.Minimize()
			require.NoError(t, err)
			for _, w := range words([]string{"0", "1"}, 8) {
				assert.Equal(t, mustAccept(t, d, w), mustAccept(t, m, w), "%v", w)
			}
		}
	})

	t.Run("no larger than the completed reachable input", func(t *testing.T) {
		d := partial01()
		c, err := d.Complete()
		require.NoError(t, err)
		c, err = c.Trim()
		require.NoError(t, err)
		m, err := d.Minimize()
		require.NoError(t, err)
		assert.LessOrEqual(t, m.NumStates(), c.NumStates())
	})
}

func TestNFAMinimize(t *testing.T) {
	n := endsWith11Epsilon()
	m, err := n.Minimize()
	require.NoError(t, err)

	assert.False(t, m.HasEpsilonTransitions())
	assert.Equal(t, "q0", m.Initial())
	for _, s := range m.States().Elements() {
		assert.Len(t, s, 2)
	}
	for _, w := range words([]string{"0", "1"}, 8) {
		assert.Equal(t, mustAccept(t, n, w), mustAccept(t, m, w), "%v", w)
	}

	d, err := n.ToDFA()
	require.NoError(t, err)
	md, err := d.Minimize()
	require.NoError(t, err)
	assert.Equal(t, md.NumStates(), m.NumStates())
}
