package statemachine

import (
	"slices"
	"strconv"
	"strings"
)

// IntSet An ordered, duplicate-free set of non-negative integers. It is used for sets of
// state ids: partition classes, epsilon closures and active state sets.
//
// The values are kept in ascending order, so two sets are equal iff their backing
// slices are equal. Union, Intersection and Difference always allocate a new set;
// only Insert changes the receiver.
type IntSet struct {
	values []int
}

// NewIntSet Creates a set holding the given values. The slice is copied.
func NewIntSet(values ...int) *IntSet {
	s := &IntSet{values: make([]int, 0, len(values))}
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// rangeSet returns {0 .. n-1}.
func rangeSet(n int) *IntSet {
	s := &IntSet{values: make([]int, n)}
	for i := range s.values {
		s.values[i] = i
	}
	return s
}

// Insert Adds x if absent, keeping ascending order. Returns true if x was added.
func (s *IntSet) Insert(x int) bool {
	// Fast path: values often arrive in ascending order.
	if n := len(s.values); n == 0 || s.values[n-1] < x {
		s.values = append(s.values, x)
		return true
	}
	idx, found := s.Search(x)
	if found {
		return false
	}
	s.values = slices.Insert(s.values, idx, x)
	return true
}

// Search Binary search for x. Returns the position of x and true if present, otherwise
// the position where x would be inserted and false.
func (s *IntSet) Search(x int) (int, bool) {
	return slices.BinarySearch(s.values, x)
}

// Contains Returns true if x is a member.
func (s *IntSet) Contains(x int) bool {
	_, found := s.Search(x)
	return found
}

// Count Cardinality of the set.
func (s *IntSet) Count() int {
	return len(s.values)
}

// Min Returns the smallest member, false if the set is empty.
func (s *IntSet) Min() (int, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	return s.values[0], true
}

// Values Returns a copy of the members in ascending order.
func (s *IntSet) Values() []int {
	return slices.Clone(s.values)
}

// Clone Returns an independent copy.
func (s *IntSet) Clone() *IntSet {
	return &IntSet{values: slices.Clone(s.values)}
}

// Union Returns s ∪ other.
func (s *IntSet) Union(other *IntSet) *IntSet {
	a, b := s.values, other.values
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return &IntSet{values: out}
}

// Intersection Returns s ∩ other.
func (s *IntSet) Intersection(other *IntSet) *IntSet {
	a, b := s.values, other.values
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return &IntSet{values: out}
}

// Difference Returns s − other.
func (s *IntSet) Difference(other *IntSet) *IntSet {
	a, b := s.values, other.values
	out := make([]int, 0, len(a))
	i, j := 0, 0
	for i < len(a) {
		switch {
		case j >= len(b) || a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
	}
	return &IntSet{values: out}
}

// Hash Consistent with Equals: equal sets always have the same hash.
func (s *IntSet) Hash() uint64 {
	h := uint64(len(s.values))
	for _, v := range s.values {
		h = h*31 + uint64(uint32(mix(v)))
	}
	return h
}

// Equals Compares by value. A nil set equals only a nil set.
func (s *IntSet) Equals(other *IntSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	return slices.Equal(s.values, other.values)
}

// Key Canonical name of the set, the members joined by commas, e.g. "0,1,3".
func (s *IntSet) Key() string {
	var sb strings.Builder
	for i, v := range s.values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

func (s *IntSet) String() string {
	return "{" + s.Key() + "}"
}

// indexOfSet returns the position of the first set in sets that is value-equal to x, -1 if
// there is none.
func indexOfSet(sets []*IntSet, x *IntSet) int {
	return slices.IndexFunc(sets, func(y *IntSet) bool {
		return y.Equals(x)
	})
}
