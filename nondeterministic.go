package statemachine

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// NTransitions A nondeterministic transition table. Entry i maps each symbol to the targets
// of state i. The Epsilon symbol maps to the targets reachable without consuming input.
type NTransitions []map[string][]int

// Nondeterministic A nondeterministic finite automaton with epsilon transitions. State 0
// is the initial state.
type Nondeterministic struct {
	machine

	// Target sets are sorted and duplicate-free; symbols without targets are not stored.
	transitions []map[string]*IntSet
}

// NewNondeterministic Builds a nondeterministic automaton from a transition table and a
// list of final states. The table is copied; target lists are sorted and deduplicated,
// and symbols with an empty target list are dropped. Returns an error wrapping
// ErrInvalidState if any target or final state lies outside 0 .. len(transitions)-1.
func NewNondeterministic(transitions NTransitions, finals []int) (*Nondeterministic, error) {
	m, err := newMachine(len(transitions), finals)
	if err != nil {
		return nil, err
	}

	table := make([]map[string]*IntSet, len(transitions))
	for s, row := range transitions {
		table[s] = make(map[string]*IntSet, len(row))
		for symbol, dests := range row {
			for _, dest := range dests {
				if err := checkState(dest, len(transitions), s, symbol); err != nil {
					return nil, err
				}
			}
			if len(dests) > 0 {
				table[s][symbol] = NewIntSet(dests...)
			}
		}
	}

	return &Nondeterministic{machine: m, transitions: table}, nil
}

// Test Simulates all paths in parallel. Returns false as soon as no state is active,
// otherwise true iff a final state is active at the end of the input.
func (n *Nondeterministic) Test(symbols []string) bool {
	current := n.epsilonClosure(NewIntSet(0))
	for _, symbol := range symbols {
		current = n.epsilonClosure(n.move(symbol, current))
		if current.Count() == 0 {
			return false
		}
	}
	return n.isFinal(current)
}

// EpsilonClosure Returns the states reachable from the given states by epsilon
// transitions alone, including the states themselves. Ids out of range are ignored.
func (n *Nondeterministic) EpsilonClosure(states ...int) []int {
	start := NewIntSet()
	for _, s := range states {
		if s >= 0 && s < n.numStates {
			start.Insert(s)
		}
	}
	return n.epsilonClosure(start).values
}

// Alphabet Returns every non-epsilon symbol used by some transition, sorted ascending.
func (n *Nondeterministic) Alphabet() []string {
	return n.reachableSymbols(rangeSet(n.numStates))
}

// Transitions Returns a copy of the transition table.
func (n *Nondeterministic) Transitions() NTransitions {
	table := make(NTransitions, len(n.transitions))
	for s, row := range n.transitions {
		table[s] = make(map[string][]int, len(row))
		for symbol, dests := range row {
			table[s][symbol] = dests.Values()
		}
	}
	return table
}

// epsilonClosure follows epsilon transitions until no new state is discovered.
func (n *Nondeterministic) epsilonClosure(states *IntSet) *IntSet {
	closure := states.Clone()
	stack := states.Values()
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		dests, ok := n.transitions[s][Epsilon]
		if !ok {
			continue
		}
		for _, dest := range dests.values {
			if closure.Insert(dest) {
				stack = append(stack, dest)
			}
		}
	}
	return closure
}

// move returns the union of the targets on symbol of all states. Epsilon transitions
// are not followed.
func (n *Nondeterministic) move(symbol string, states *IntSet) *IntSet {
	next := NewIntSet()
	for _, s := range states.values {
		if dests, ok := n.transitions[s][symbol]; ok {
			next = next.Union(dests)
		}
	}
	return next
}

// reachableSymbols returns the non-epsilon symbols leaving any of states, sorted.
func (n *Nondeterministic) reachableSymbols(states *IntSet) []string {
	symbols := treeset.NewWithStringComparator()
	for _, s := range states.values {
		for symbol := range n.transitions[s] {
			if symbol != Epsilon {
				symbols.Add(symbol)
			}
		}
	}
	return toStrings(symbols)
}

func (n *Nondeterministic) isFinal(states *IntSet) bool {
	return n.anyFinal(states)
}
