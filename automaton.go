package statemachine

import (
	"github.com/bits-and-blooms/bitset"
)

// Epsilon The reserved symbol for transitions that consume no input.
const Epsilon = ""

// Acceptor Capabilities shared by Deterministic and Nondeterministic automata.
type Acceptor interface {
	// Test Returns true if the automaton accepts the sequence of symbols.
	Test(symbols []string) bool

	// NumStates How many states this automaton has.
	NumStates() int

	// IsFinal Returns true if state is an accept state.
	IsFinal(state int) bool
}

var (
	_ Acceptor = &Deterministic{}
	_ Acceptor = &Nondeterministic{}
)

// machine is the record held by every automaton: the number of states and the set of
// final states. The transition table lives in the concrete type because its shape
// differs between the two kinds.
type machine struct {
	numStates int

	// If the bit is set then that state is a final state.
	finals *bitset.BitSet
}

// newMachine validates the final-state ids for a table of numStates entries.
func newMachine(numStates int, finals []int) (machine, error) {
	if numStates == 0 {
		// State 0 is the initial state and must exist.
		return machine{}, &InvalidStateError{State: 0, NumStates: 0, Source: -1}
	}
	set := bitset.New(uint(numStates))
	for _, f := range finals {
		if err := checkState(f, numStates, -1, ""); err != nil {
			return machine{}, err
		}
		set.Set(uint(f))
	}
	return machine{numStates: numStates, finals: set}, nil
}

func checkState(state, numStates, source int, symbol string) error {
	if state < 0 || state >= numStates {
		err := &InvalidStateError{
			State:     state,
			NumStates: numStates,
			Source:    source,
			Symbol:    symbol,
		}
		tracer().Errorf("rejecting transition table: %v", err)
		return err
	}
	return nil
}

// NumStates How many states this automaton has.
func (m *machine) NumStates() int {
	return m.numStates
}

// IsFinal Returns true if this state is a final state.
func (m *machine) IsFinal(state int) bool {
	if state < 0 || state >= m.numStates {
		return false
	}
	return m.finals.Test(uint(state))
}

// Finals Returns the final state ids in ascending order.
func (m *machine) Finals() []int {
	return m.finalSet().Values()
}

func (m *machine) finalSet() *IntSet {
	set := &IntSet{values: make([]int, 0, m.finals.Count())}
	for s, ok := m.finals.NextSet(0); ok; s, ok = m.finals.NextSet(s + 1) {
		set.values = append(set.values, int(s))
	}
	return set
}

// anyFinal returns true if any member of states is final.
func (m *machine) anyFinal(states *IntSet) bool {
	for _, s := range states.values {
		if m.finals.Test(uint(s)) {
			return true
		}
	}
	return false
}
