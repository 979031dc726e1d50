package fa

import (
	"github.com/bits-and-blooms/bitset"
)

// stateIndex numbers the states of an automaton in ascending name order so
// that sets of states can be held in bitsets.
type stateIndex struct {
	names []string
	ids   map[string]uint
}

func newStateIndex(states Set) *stateIndex {
	names := states.Elements()
	ids := make(map[string]uint, len(names))
	for i, name := range names {
		ids[name] = uint(i)
	}
	return &stateIndex{names: names, ids: ids}
}

func (x *stateIndex) size() uint {
	return uint(len(x.names))
}

func (x *stateIndex) id(name string) (uint, bool) {
	i, ok := x.ids[name]
	return i, ok
}

func (x *stateIndex) name(i uint) string {
	return x.names[i]
}

// newBits returns an empty bitset sized to the index. All sets built from
// the same index have the same length, which BitSet.Equal relies on.
func (x *stateIndex) newBits() *bitset.BitSet {
	return bitset.New(x.size())
}

func (x *stateIndex) bits(names ...string) *bitset.BitSet {
	b := x.newBits()
	for _, name := range names {
		if i, ok := x.ids[name]; ok {
			b.Set(i)
		}
	}
	return b
}

func (x *stateIndex) bitsOf(s Set) *bitset.BitSet {
	b := x.newBits()
	for name := range s {
		if i, ok := x.ids[name]; ok {
			b.Set(i)
		}
	}
	return b
}

// members lists the names in b. The result is sorted because ids follow name order.
func (x *stateIndex) members(b *bitset.BitSet) []string {
	names := make([]string, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		names = append(names, x.names[i])
	}
	return names
}

func (x *stateIndex) set(b *bitset.BitSet) Set {
	return NewSet(x.members(b)...)
}
