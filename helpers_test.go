package statemachine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// allStrings enumerates every string over alphabet of length 0 .. maxLen.
func allStrings(alphabet []string, maxLen int) [][]string {
	result := [][]string{{}}
	layer := [][]string{{}}
	for l := 1; l <= maxLen; l++ {
		var next [][]string
		for _, prefix := range layer {
			for _, symbol := range alphabet {
				s := make([]string, len(prefix), len(prefix)+1)
				copy(s, prefix)
				next = append(next, append(s, symbol))
			}
		}
		result = append(result, next...)
		layer = next
	}
	return result
}

func randomDFA(t *testing.T, r *rand.Rand, numStates int, alphabet []string, total bool) *Deterministic {
	t.Helper()
	transitions := make(DTransitions, numStates)
	for s := range transitions {
		transitions[s] = make(map[string]int)
		for _, symbol := range alphabet {
			if total || r.Intn(4) > 0 {
				transitions[s][symbol] = r.Intn(numStates)
			}
		}
	}
	var finals []int
	for s := 0; s < numStates; s++ {
		if r.Intn(3) == 0 {
			finals = append(finals, s)
		}
	}
	d, err := NewDeterministic(transitions, finals)
	require.NoError(t, err)
	return d
}

func randomNFA(t *testing.T, r *rand.Rand, numStates int, alphabet []string) *Nondeterministic {
	t.Helper()
	symbols := append([]string{Epsilon}, alphabet...)
	transitions := make(NTransitions, numStates)
	for s := range transitions {
		transitions[s] = make(map[string][]int)
		for _, symbol := range symbols {
			k := r.Intn(3)
			if symbol == Epsilon {
				k = r.Intn(2)
			}
			for i := 0; i < k; i++ {
				transitions[s][symbol] = append(transitions[s][symbol], r.Intn(numStates))
			}
		}
	}
	var finals []int
	for s := 0; s < numStates; s++ {
		if r.Intn(3) == 0 {
			finals = append(finals, s)
		}
	}
	n, err := NewNondeterministic(transitions, finals)
	require.NoError(t, err)
	return n
}

func mustDFA(t *testing.T, transitions DTransitions, finals ...int) *Deterministic {
	t.Helper()
	d, err := NewDeterministic(transitions, finals)
	require.NoError(t, err)
	return d
}

func mustNFA(t *testing.T, transitions NTransitions, finals ...int) *Nondeterministic {
	t.Helper()
	n, err := NewNondeterministic(transitions, finals)
	require.NoError(t, err)
	return n
}
