package statemachine

import (
	"github.com/bits-and-blooms/bitset"
)

// DefaultDeterminizeWorkLimit A reasonable bound on the number of composite states
// Determinize may create.
const DefaultDeterminizeWorkLimit = 10000

// Subset Converts n into an equivalent deterministic automaton by the powerset
// construction. Every state of the result stands for a set of states of n; composite
// states are numbered in the order they are discovered, breadth first, starting with
// the epsilon closure of state 0. A composite state is final iff one of its members is.
//
// Worst case complexity: exponential in the number of states. Use Determinize to bound
// the work.
func (n *Nondeterministic) Subset() *Deterministic {
	d, _ := n.Determinize(0)
	return d
}

// Determinize Like Subset, but fails with an error wrapping ErrTooComplex once more than
// workLimit composite states would be needed. A workLimit <= 0 means no limit.
func (n *Nondeterministic) Determinize(workLimit int) (*Deterministic, error) {
	initial := n.epsilonClosure(NewIntSet(0))

	// Same member set always maps to the same composite state.
	index := newStateIndex(n.numStates)
	index.add(initial, 0)
	worklist := []*IntSet{initial}

	transitions := make(DTransitions, 0, n.numStates)
	finals := bitset.New(uint(n.numStates))

	for i := 0; i < len(worklist); i++ {
		members := worklist[i]
		row := make(map[string]int)

		for _, symbol := range n.reachableSymbols(members) {
			next := n.epsilonClosure(n.move(symbol, members))
			dest, ok := index.lookup(next)
			if !ok {
				dest = index.len()
				if workLimit > 0 && dest >= workLimit {
					tracer().Infof("subset: giving up after %d states", dest)
					return nil, &TooComplexError{Limit: workLimit}
				}
				worklist = append(worklist, next)
				index.add(next, dest)
				tracer().Debugf("subset: state %d = %v", dest, next)
			}
			row[symbol] = dest
		}

		transitions = append(transitions, row)
		if n.isFinal(members) {
			finals.Set(uint(i))
		}
	}

	tracer().Debugf("subset: %d states determinized to %d", n.numStates, len(transitions))
	return newDeterministic(transitions, finals), nil
}

// SubsetEpsilon Returns an automaton without epsilon transitions. Unlike Subset no states
// are merged: the result has the same states and the same final states as n. For every
// state i and symbol c, the targets of i on c become the epsilon closures of the states
// reached on c from the epsilon closure of i.
//
// Because final states are kept as they are, the result rejects the empty string when n
// accepts it only through an epsilon path from state 0. On every non-empty input both
// automata agree.
func (n *Nondeterministic) SubsetEpsilon() *Nondeterministic {
	closures := make([]*IntSet, n.numStates)
	for i := range closures {
		closures[i] = n.epsilonClosure(NewIntSet(i))
	}

	transitions := make([]map[string]*IntSet, n.numStates)
	for i, closure := range closures {
		row := make(map[string]*IntSet)
		for _, symbol := range n.reachableSymbols(closure) {
			dests := NewIntSet()
			for _, j := range n.move(symbol, closure).values {
				dests = dests.Union(closures[j])
			}
			row[symbol] = dests
		}
		transitions[i] = row
	}

	tracer().Debugf("subset-epsilon: removed epsilon transitions from %d states", n.numStates)
	return &Nondeterministic{
		machine: machine{
			numStates: n.numStates,
			finals:    n.finals.Clone(),
		},
		transitions: transitions,
	}
}
