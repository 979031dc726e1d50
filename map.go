package fa

import (
	"iter"
)

// hashable 自定义哈希接口
type hashable interface {
	Hash() uint64
	Equals(other hashable) bool
}

// hashMap 以 hashable 为键的链式哈希表
type hashMap[T any] struct {
	buckets    []*entry[T]
	size       int
	mask       uint64
	emptyValue T
	loadFactor float64
}

type entry[T any] struct {
	key   hashable
	value T
	next  *entry[T]
}

type mapOptions struct {
	capacity   int     // 向上取整为2的幂
	loadFactor float64 // 默认0.75
}

type mapOption func(*mapOptions)

func withCapacity(capacity int) mapOption {
	return func(o *mapOptions) {
		o.capacity = capacity
	}
}

func withLoadFactor(loadFactor float64) mapOption {
	return func(o *mapOptions) {
		if loadFactor > 0 {
			o.loadFactor = loadFactor
		}
	}
}

func newHashMap[T any](opts ...mapOption) *hashMap[T] {
	o := &mapOptions{capacity: 1, loadFactor: 0.75}
	for _, opt := range opts {
		opt(o)
	}

	capacity := 1
	for capacity < o.capacity {
		capacity <<= 1
	}

	return &hashMap[T]{
		buckets:    make([]*entry[T], capacity),
		mask:       uint64(capacity - 1),
		loadFactor: o.loadFactor,
	}
}

// Set 插入或更新键值对
func (m *hashMap[T]) Set(key hashable, value T) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &entry[T]{key: key, value: value, next: m.buckets[index]}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

func (m *hashMap[T]) Get(key hashable) (T, bool) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	return m.emptyValue, false
}

func (m *hashMap[T]) Delete(key hashable) {
	index := key.Hash() & m.mask

	var prev *entry[T]
	for e := m.buckets[index]; e != nil; prev, e = e, e.next {
		if e.key.Equals(key) {
			if prev == nil {
				m.buckets[index] = e.next
			} else {
				prev.next = e.next
			}
			m.size--
			return
		}
	}
}

// resize 容量翻倍并重新散列
func (m *hashMap[T]) resize() {
	capacity := len(m.buckets) << 1
	buckets := make([]*entry[T], capacity)
	mask := uint64(capacity - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			index := e.key.Hash() & mask
			buckets[index] = &entry[T]{key: e.key, value: e.value, next: buckets[index]}
		}
	}

	m.buckets = buckets
	m.mask = mask
}

func (m *hashMap[T]) Size() int {
	return m.size
}

func (m *hashMap[T]) All() iter.Seq2[hashable, T] {
	return func(yield func(hashable, T) bool) {
		for _, head := range m.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
