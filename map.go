package statemachine

// stateIndex Maps the member set of a composite state to its id during subset
// construction. Sets are compared by value; buckets are chosen by IntSet.Hash.
type stateIndex struct {
	buckets []*indexEntry
	mask    uint64
	size    int
}

type indexEntry struct {
	members *IntSet
	state   int
	next    *indexEntry
}

const indexLoadFactor = 0.75

// newStateIndex creates an index with room for about capacity sets before it grows.
func newStateIndex(capacity int) *stateIndex {
	n := 1
	for float64(n)*indexLoadFactor < float64(capacity) {
		n <<= 1
	}
	return &stateIndex{
		buckets: make([]*indexEntry, n),
		mask:    uint64(n - 1),
	}
}

// lookup returns the id of the composite state with exactly these members.
func (x *stateIndex) lookup(members *IntSet) (int, bool) {
	for e := x.buckets[members.Hash()&x.mask]; e != nil; e = e.next {
		if e.members.Equals(members) {
			return e.state, true
		}
	}
	return -1, false
}

// add records members as composite state id state. members must not be present yet
// and must not be modified afterwards.
func (x *stateIndex) add(members *IntSet, state int) {
	idx := members.Hash() & x.mask
	x.buckets[idx] = &indexEntry{members: members, state: state, next: x.buckets[idx]}
	x.size++

	if float64(x.size) > float64(len(x.buckets))*indexLoadFactor {
		x.grow()
	}
}

func (x *stateIndex) grow() {
	buckets := make([]*indexEntry, len(x.buckets)<<1)
	mask := uint64(len(buckets) - 1)
	for _, head := range x.buckets {
		for e := head; e != nil; {
			next := e.next
			idx := e.members.Hash() & mask
			e.next = buckets[idx]
			buckets[idx] = e
			e = next
		}
	}
	x.buckets = buckets
	x.mask = mask
}

// len is the number of composite states recorded.
func (x *stateIndex) len() int {
	return x.size
}
