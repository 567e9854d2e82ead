package statemachine

import (
	"maps"

	"github.com/bits-and-blooms/bitset"
	"github.com/emirpasic/gods/sets/treeset"
)

// DTransitions A deterministic transition table. Entry i maps each symbol to the single
// target of state i. A missing symbol means there is no transition.
type DTransitions []map[string]int

// Deterministic A deterministic finite automaton. State 0 is the initial state.
type Deterministic struct {
	machine

	transitions DTransitions
}

// NewDeterministic Builds a deterministic automaton from a transition table and a list of
// final states. The table is copied. Returns an error wrapping ErrInvalidState if any
// transition target or final state lies outside 0 .. len(transitions)-1, and
// ErrEpsilonTransition if the table uses the epsilon symbol.
func NewDeterministic(transitions DTransitions, finals []int) (*Deterministic, error) {
	m, err := newMachine(len(transitions), finals)
	if err != nil {
		return nil, err
	}

	table := make(DTransitions, len(transitions))
	for s, row := range transitions {
		for symbol, dest := range row {
			if symbol == Epsilon {
				tracer().Errorf("state %d has an epsilon transition", s)
				return nil, ErrEpsilonTransition
			}
			if err := checkState(dest, len(transitions), s, symbol); err != nil {
				return nil, err
			}
		}
		table[s] = cloneRow(row)
	}

	return &Deterministic{machine: m, transitions: table}, nil
}

// newDeterministic wraps an already validated table without copying it.
func newDeterministic(transitions DTransitions, finals *bitset.BitSet) *Deterministic {
	return &Deterministic{
		machine: machine{
			numStates: len(transitions),
			finals:    finals,
		},
		transitions: transitions,
	}
}

func cloneRow(row map[string]int) map[string]int {
	if row == nil {
		return make(map[string]int)
	}
	return maps.Clone(row)
}

// Test Runs the automaton on symbols from state 0. Returns false as soon as a state
// has no transition on the next symbol, otherwise true iff the state reached at the
// end of the input is final.
func (d *Deterministic) Test(symbols []string) bool {
	state := 0
	for _, symbol := range symbols {
		next, ok := d.transitions[state][symbol]
		if !ok {
			return false
		}
		state = next
	}
	return d.IsFinal(state)
}

// Step Performs a single transition. Returns the destination state and false if there
// is no matching outgoing transition.
func (d *Deterministic) Step(state int, symbol string) (int, bool) {
	if state < 0 || state >= d.numStates {
		return -1, false
	}
	next, ok := d.transitions[state][symbol]
	if !ok {
		return -1, false
	}
	return next, true
}

// Alphabet Returns every symbol used by some transition, sorted ascending.
func (d *Deterministic) Alphabet() []string {
	symbols := treeset.NewWithStringComparator()
	for _, row := range d.transitions {
		for symbol := range row {
			symbols.Add(symbol)
		}
	}
	return toStrings(symbols)
}

// Transitions Returns a copy of the transition table.
func (d *Deterministic) Transitions() DTransitions {
	table := make(DTransitions, len(d.transitions))
	for s, row := range d.transitions {
		table[s] = cloneRow(row)
	}
	return table
}

func toStrings(set *treeset.Set) []string {
	values := set.Values()
	symbols := make([]string, len(values))
	for i, v := range values {
		symbols[i] = v.(string)
	}
	return symbols
}
