package fa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionsPreserveLanguage(t *testing.T) {
	nfas := map[string]*NFA{
		"ends with 11 epsilon": endsWith11Epsilon(),
		"cyclic epsilon": NewNFA(
			[]string{"a", "b", "c"},
			[]string{"0", "1"},
			map[string]map[string][]string{
				"a": {Epsilon: {"b"}, "0": {"a"}},
				"b": {Epsilon: {"a"}, "1": {"c"}},
				"c": {Epsilon: {"c"}, "0": {"a", "c"}},
			},
			"a",
			[]string{"c"},
		),
	}

	for name, n := range nfas {
		t.Run(name, func(t *testing.T) {
			r, err := n.RemoveEpsilonTransitions()
			require.NoError(t, err)
			d, err := r.ToDFA()
			require.NoError(t, err)
			direct, err := n.ToDFA()
			require.NoError(t, err)
			back, err := d.ToNFA()
			require.NoError(t, err)

			for _, w := range words([]string{"0", "1"}, 8) {
				want := mustAccept(t, n, w)
				assert.Equal(t, want, mustAccept(t, r, w), "epsilon removal %v", w)
				assert.Equal(t, want, mustAccept(t, d, w), "subset construction %v", w)
				assert.Equal(t, want, mustAccept(t, direct, w), "direct subset construction %v", w)
				assert.Equal(t, want, mustAccept(t, back, w), "lift %v", w)
			}
		})
	}
}

func TestComplementInvolution(t *testing.T) {
	for _, d := range []*DFA{divisibleBy3(), partial01(), threeZeros()} {
		c, err := d.Complement()
		require.NoError(t, err)
		cc, err := c.Complement()
		require.NoError(t, err)
		for _, w := range words([]string{"0", "1"}, 8) {
			assert.Equal(t, mustAccept(t, d, w), mustAccept(t, cc, w), "%v", w)
		}
	}
}

func TestOperationsDoNotMutateInputs(t *testing.T) {
	d := partial01()
	before := d.String()

	_, err := d.Complete()
	require.NoError(t, err)
	_, err = d.Complement()
	require.NoError(t, err)
	_, err = d.Minimize()
	require.NoError(t, err)
	_, err = d.Union(divisibleBy3())
	require.NoError(t, err)
	_, err = d.Product(divisibleBy3())
	require.NoError(t, err)
	_, err = d.Renumbered()
	require.NoError(t, err)

	assert.Equal(t, before, d.String())
}
