package statemachine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name        string
		transitions DTransitions
		finals      []int
		want        bool
	}{
		{"no final states", DTransitions{{"a": 1}, {"a": 0}}, nil, true},
		{"accepts empty string", DTransitions{{}}, []int{0}, false},
		{"initial state without transitions", DTransitions{{}, {"a": 1}}, []int{1}, true},
		{"final reachable", DTransitions{{"a": 1}, {"b": 2}, {}}, []int{2}, false},
		{"final unreachable", DTransitions{{"a": 0}, {"b": 2}, {}}, []int{2}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustDFA(t, tt.transitions, tt.finals...)
			assert.Equal(t, tt.want, d.IsEmpty())
		})
	}
}

func TestReachable(t *testing.T) {
	d := mustDFA(t, DTransitions{{"a": 2}, {"a": 0}, {"b": 3}, {}, {"a": 4}})
	assert.Equal(t, []int{0, 2, 3}, d.Reachable().Values())
}

func TestTotalize(t *testing.T) {
	d := mustDFA(t, DTransitions{{"a": 1}, {"b": 0}}, 1)
	total := d.Totalize()

	assert.Equal(t, 3, total.NumStates())
	assert.Equal(t, DTransitions{
		{"a": 1, "b": 2},
		{"a": 2, "b": 0},
		{"a": 2, "b": 2},
	}, total.Transitions())
	assert.Equal(t, []int{1}, total.Finals())
	for _, input := range allStrings([]string{"a", "b"}, 5) {
		assert.Equal(t, d.Test(input), total.Test(input), "input %v", input)
	}

	// already total: same table, new instance
	again := total.Totalize()
	assert.NotSame(t, total, again)
	assert.Equal(t, total.Transitions(), again.Transitions())
}

func TestTotalizeDistinguishesMissingTransitions(t *testing.T) {
	// 1 and 2 are equivalent, 0 and the sink differ from both
	d := mustDFA(t, DTransitions{
		{"a": 1, "b": 2},
		{"a": 3},
		{"a": 3},
		{},
	}, 3)

	m := d.Totalize().Minimize()
	assert.Equal(t, 4, m.NumStates())
	for _, input := range allStrings([]string{"a", "b"}, 4) {
		assert.Equal(t, d.Test(input), m.Test(input), "input %v", input)
	}
}

func TestTrim(t *testing.T) {
	// 1 is unreachable, 3 is a dead end
	d := mustDFA(t, DTransitions{
		{"a": 2, "b": 3},
		{"a": 0},
		{"a": 4},
		{"a": 3},
		{},
	}, 4)
	trimmed := d.Trim()

	assert.Equal(t, 3, trimmed.NumStates())
	assert.Equal(t, DTransitions{{"a": 1}, {"a": 2}, {}}, trimmed.Transitions())
	assert.Equal(t, []int{2}, trimmed.Finals())
	assert.True(t, Run(trimmed, "aa"))
	assert.False(t, Run(trimmed, "b"))
}

func TestTrimKeepsInitialState(t *testing.T) {
	d := mustDFA(t, DTransitions{{"a": 1}, {"a": 1}})
	trimmed := d.Trim()
	assert.Equal(t, 1, trimmed.NumStates())
	assert.True(t, trimmed.IsEmpty())
}

func TestTrimPreservesLanguage(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	alphabet := []string{"a", "b"}
	inputs := allStrings(alphabet, 6)

	for i := 0; i < 30; i++ {
		d := randomDFA(t, r, 1+r.Intn(8), alphabet, false)
		trimmed := d.Trim()
		assert.LessOrEqual(t, trimmed.NumStates(), d.NumStates())
		assert.Equal(t, d.IsEmpty(), trimmed.IsEmpty())
		for _, input := range inputs {
			if !assert.Equal(t, d.Test(input), trimmed.Test(input), "automaton %d, input %v", i, input) {
				return
			}
		}
	}
}
