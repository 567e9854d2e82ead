package statemachine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is matched by every *InvalidStateError.
	ErrInvalidState = errors.New("invalid state")

	// ErrEpsilonTransition is returned when a deterministic transition table uses the
	// reserved epsilon symbol.
	ErrEpsilonTransition = errors.New("epsilon transition in deterministic automaton")

	// ErrTooComplex is matched by every *TooComplexError.
	ErrTooComplex = errors.New("automaton too complex to determinize")
)

// InvalidStateError A transition table or final-state list references a state id outside
// 0 .. NumStates-1.
type InvalidStateError struct {
	State     int    // the offending id
	NumStates int    // size of the transition table
	Source    int    // state whose transition references State, -1 for a final state
	Symbol    string // symbol of the offending transition
}

func (e *InvalidStateError) Error() string {
	if e.Source < 0 {
		return fmt.Sprintf("state %d out of range [0,%d)", e.State, e.NumStates)
	}
	return fmt.Sprintf("transition %d --%q--> %d: target out of range [0,%d)",
		e.Source, e.Symbol, e.State, e.NumStates)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// TooComplexError Subset construction discovered more composite states than allowed.
type TooComplexError struct {
	Limit int
}

func (e *TooComplexError) Error() string {
	return fmt.Sprintf("determinizing automaton would result in more than %d states", e.Limit)
}

func (e *TooComplexError) Is(target error) bool {
	return target == ErrTooComplex
}
