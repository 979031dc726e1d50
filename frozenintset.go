package fa

import (
	"github.com/bits-and-blooms/bitset"
)

var _ hashable = (*frozenStateSet)(nil)

// frozenStateSet is an immutable set of state ids usable as a hashMap key.
type frozenStateSet struct {
	bits     *bitset.BitSet
	hashCode uint64
}

func newFrozenStateSet(bits *bitset.BitSet) *frozenStateSet {
	// 与元素顺序无关的哈希
	h := uint64(bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		h += uint64(mix32(uint32(i)))
	}
	return &frozenStateSet{bits: bits, hashCode: h}
}

func (f *frozenStateSet) Hash() uint64 {
	return f.hashCode
}

func (f *frozenStateSet) Equals(other hashable) bool {
	o, ok := other.(*frozenStateSet)
	if !ok {
		return false
	}
	if f == nil || o == nil {
		return f == o
	}
	return f.hashCode == o.hashCode && f.bits.Equal(o.bits)
}

func (f *frozenStateSet) Size() int {
	return int(f.bits.Count())
}

func (f *frozenStateSet) IsEmpty() bool {
	return f.bits.None()
}
