package statemachine

import (
	"github.com/bits-and-blooms/bitset"
)

// IsEmpty Returns true if d accepts no strings.
func (d *Deterministic) IsEmpty() bool {
	if d.IsFinal(0) {
		// Common case: it accepts the empty string
		return false
	}
	if len(d.transitions[0]) == 0 {
		// Common case: just one initial state
		return true
	}
	live := d.reachable()
	for s, ok := live.NextSet(0); ok; s, ok = live.NextSet(s + 1) {
		if d.finals.Test(s) {
			return false
		}
	}
	return true
}

// Reachable Returns the states reachable from state 0, which always includes state 0.
func (d *Deterministic) Reachable() *IntSet {
	live := d.reachable()
	set := NewIntSet()
	for s, ok := live.NextSet(0); ok; s, ok = live.NextSet(s + 1) {
		set.Insert(int(s))
	}
	return set
}

func (d *Deterministic) reachable() *bitset.BitSet {
	seen := bitset.New(uint(d.numStates))
	seen.Set(0)
	workList := []int{0}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, dest := range d.transitions[s] {
			if !seen.Test(uint(dest)) {
				seen.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}
	return seen
}

// coReachable returns the states from which some final state can be reached.
func (d *Deterministic) coReachable() *bitset.BitSet {
	reverse := make([][]int, d.numStates)
	for s, row := range d.transitions {
		for _, dest := range row {
			reverse[dest] = append(reverse[dest], s)
		}
	}

	seen := d.finals.Clone()
	workList := d.finalSet().values
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, src := range reverse[s] {
			if !seen.Test(uint(src)) {
				seen.Set(uint(src))
				workList = append(workList, src)
			}
		}
	}
	return seen
}

// Totalize Returns an equivalent automaton with a transition on every symbol of
// Alphabet from every state. Missing transitions are sent to a new non-final sink state
// with id NumStates(). If d is already total the result is a copy of d.
func (d *Deterministic) Totalize() *Deterministic {
	alphabet := d.Alphabet()
	sink := d.numStates

	total := true
	for _, row := range d.transitions {
		if len(row) < len(alphabet) {
			total = false
			break
		}
	}
	if total {
		return newDeterministic(d.Transitions(), d.finals.Clone())
	}

	transitions := make(DTransitions, d.numStates+1)
	for s, row := range d.transitions {
		next := cloneRow(row)
		for _, symbol := range alphabet {
			if _, ok := next[symbol]; !ok {
				next[symbol] = sink
			}
		}
		transitions[s] = next
	}
	dead := make(map[string]int, len(alphabet))
	for _, symbol := range alphabet {
		dead[symbol] = sink
	}
	transitions[sink] = dead

	tracer().Debugf("totalize: added sink state %d", sink)
	return newDeterministic(transitions, d.finals.Clone())
}

// Trim Returns an equivalent automaton without dead states: states not reachable from
// state 0 and states that cannot reach a final state are dropped. Remaining states keep
// their relative order, state 0 stays state 0.
func (d *Deterministic) Trim() *Deterministic {
	live := d.reachable().Intersection(d.coReachable())
	live.Set(0)

	mp := make([]int, d.numStates)
	numLive := 0
	for s := 0; s < d.numStates; s++ {
		if live.Test(uint(s)) {
			mp[s] = numLive
			numLive++
		}
	}

	transitions := make(DTransitions, 0, numLive)
	finals := bitset.New(uint(numLive))
	for s, row := range d.transitions {
		if !live.Test(uint(s)) {
			continue
		}
		next := make(map[string]int, len(row))
		// filter out transitions to dead states:
		for symbol, dest := range row {
			if live.Test(uint(dest)) {
				next[symbol] = mp[dest]
			}
		}
		transitions = append(transitions, next)
		if d.finals.Test(uint(s)) {
			finals.Set(uint(mp[s]))
		}
	}

	tracer().Debugf("trim: %d states reduced to %d", d.numStates, numLive)
	return newDeterministic(transitions, finals)
}
