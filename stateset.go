package fa

import (
	"slices"
	"strconv"
	"strings"
)

// Set is an unordered set of state names or symbols.
type Set map[string]struct{}

func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s Set) Add(items ...string) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

func (s Set) AddAll(other Set) {
	for item := range other {
		s[item] = struct{}{}
	}
}

func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Elements returns the members in ascending order.
func (s Set) Elements() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	slices.Sort(items)
	return items
}

func (s Set) Copy() Set {
	c := make(Set, len(s))
	for item := range s {
		c[item] = struct{}{}
	}
	return c
}

func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// Intersects reports whether s and other share a member.
func (s Set) Intersects(other Set) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for item := range small {
		if large.Has(item) {
			return true
		}
	}
	return false
}

// String renders the set as {a,b,c} with members sorted.
func (s Set) String() string {
	return setName(s.Elements())
}

// setName names a subset of states. Members are expected in sorted order.
func setName(members []string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(quoteToken(m))
	}
	b.WriteByte('}')
	return b.String()
}

func pairName(p, q string) string {
	return "(" + quoteToken(p) + "," + quoteToken(q) + ")"
}

// quoteToken quotes names that would make a composite name ambiguous.
func quoteToken(name string) string {
	if name == "" || strings.ContainsAny(name, ",{}()\" ") {
		return strconv.Quote(name)
	}
	return name
}
