/*
Package statemachine implements deterministic and nondeterministic finite automata
together with the classic algorithms on them: acceptance testing, alphabet extraction,
Hopcroft minimization, subset construction and epsilon elimination.

Automata are built from raw transition tables. State ids are the positions in the
table, state 0 is the initial state:

	d, err := statemachine.NewDeterministic(statemachine.DTransitions{
		{"a": 1, "b": 0},
		{"a": 1, "b": 1},
	}, []int{1})

In a nondeterministic table every symbol maps to a set of targets, and the empty
string denotes an epsilon transition:

	n, err := statemachine.NewNondeterministic(statemachine.NTransitions{
		{"": {1}},
		{"a": {2}},
		{},
	}, []int{2})

Nondeterministic.Subset and Nondeterministic.SubsetEpsilon are different operations.
Subset is the powerset construction and returns a Deterministic automaton whose states
are sets of original states; it may need up to 2^N states. SubsetEpsilon only removes
epsilon transitions and returns a Nondeterministic automaton with the same N states.

Automata never change after construction. All derivations return new automata, so a
single automaton may be tested from many goroutines at once.
*/
package statemachine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'statemachine'
func tracer() tracing.Trace {
	return tracing.Select("statemachine")
}
