package statemachine

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Minimize Returns the minimal automaton equivalent to d, computed with Hopcroft's
// partition refinement algorithm. d is not modified.
//
// States of the result are the classes of the final partition, numbered by the smallest
// original state they contain; the class holding state 0 is therefore always state 0.
//
// The transition function may be partial. When computing the predecessors of a splitter
// a missing transition simply does not count as a predecessor, so two states are not
// told apart just because both lack a transition on some symbol. Call Totalize first to
// minimize with respect to an explicit non-final sink state.
func (d *Deterministic) Minimize() *Deterministic {
	states := rangeSet(d.numStates)
	finals := d.finalSet()
	alphabet := d.Alphabet()

	var partition, worklist []*IntSet
	if rest := states.Difference(finals); rest.Count() > 0 {
		partition = append(partition, rest)
	}
	if finals.Count() > 0 {
		partition = append(partition, finals)
		worklist = append(worklist, finals)
	}

	for len(worklist) > 0 {
		splitter := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, symbol := range alphabet {
			x := d.predecessors(splitter, symbol)
			if x.Count() == 0 {
				continue
			}

			for k := 0; k < len(partition); k++ {
				y := partition[k]
				intersect := x.Intersection(y)
				diff := y.Difference(x)
				if intersect.Count() == 0 || diff.Count() == 0 {
					continue
				}

				partition = slices.Replace(partition, k, k+1, intersect, diff)
				k++ // diff is disjoint from x

				if i := indexOfSet(worklist, y); i >= 0 {
					worklist = slices.Replace(worklist, i, i+1, intersect, diff)
				} else if intersect.Count() <= diff.Count() {
					// On a tie the intersection is pushed.
					worklist = append(worklist, intersect)
				} else {
					worklist = append(worklist, diff)
				}
				tracer().Debugf("minimize: split %v on %q into %v and %v", y, symbol, intersect, diff)
			}
		}
	}

	return d.quotient(partition)
}

// predecessors returns the states having a transition on symbol into target.
func (d *Deterministic) predecessors(target *IntSet, symbol string) *IntSet {
	x := NewIntSet()
	for s, row := range d.transitions {
		if dest, ok := row[symbol]; ok && target.Contains(dest) {
			x.Insert(s)
		}
	}
	return x
}

// quotient builds the automaton whose states are the classes of partition.
func (d *Deterministic) quotient(partition []*IntSet) *Deterministic {
	// Classes are never empty.
	smallest := func(class *IntSet) int {
		m, _ := class.Min()
		return m
	}
	slices.SortFunc(partition, func(a, b *IntSet) int {
		return smallest(a) - smallest(b)
	})

	classOf := make([]int, d.numStates)
	for i, class := range partition {
		for _, s := range class.values {
			classOf[s] = i
		}
	}

	transitions := make(DTransitions, len(partition))
	finals := bitset.New(uint(len(partition)))
	for i, class := range partition {
		representative := smallest(class)
		row := make(map[string]int, len(d.transitions[representative]))
		for symbol, dest := range d.transitions[representative] {
			row[symbol] = classOf[dest]
		}
		transitions[i] = row
		if d.anyFinal(class) {
			finals.Set(uint(i))
		}
	}

	tracer().Debugf("minimize: %d states reduced to %d", d.numStates, len(partition))
	return newDeterministic(transitions, finals)
}
