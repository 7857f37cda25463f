package core

import (
	"sort"

	"github.com/LeoWherle/ranker/internal/element"
)

// Tournament ranks elements round-robin style: every distinct pair is
// presented exactly once, in input order, and elements are ordered by
// how many comparisons they won. Ties keep input order. Costs
// n*(n-1)/2 comparisons, so it only suits short lists, but every
// element is judged against every other.
type Tournament struct {
	elements []element.Element
	pairs    [][2]int
	index    int
	wins     []int
}

// NewTournament starts a round-robin session over the given elements.
func NewTournament(elements []element.Element) (*Tournament, error) {
	if err := validateInput(elements); err != nil {
		return nil, err
	}

	n := len(elements)
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return &Tournament{
		elements: elements,
		pairs:    pairs,
		wins:     make([]int, n),
	}, nil
}

func (t *Tournament) NextComparison() *Comparison {
	if t.index >= len(t.pairs) {
		return nil
	}
	p := t.pairs[t.index]
	return &Comparison{A: t.elements[p[0]], B: t.elements[p[1]]}
}

func (t *Tournament) RecordChoice(winnerID string) error {
	if t.index >= len(t.pairs) {
		return ErrInvalidChoice
	}
	p := t.pairs[t.index]
	switch winnerID {
	case t.elements[p[0]].ID:
		t.wins[p[0]]++
	case t.elements[p[1]].ID:
		t.wins[p[1]]++
	default:
		return ErrInvalidChoice
	}
	t.index++
	return nil
}

func (t *Tournament) Complete() bool {
	return t.index >= len(t.pairs)
}

// Result returns the elements ordered by win count, most wins first.
func (t *Tournament) Result() ([]element.Element, error) {
	if !t.Complete() {
		return nil, ErrNotComplete
	}

	order := make([]int, len(t.elements))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return t.wins[order[a]] > t.wins[order[b]]
	})

	out := make([]element.Element, len(order))
	for i, idx := range order {
		out[i] = t.elements[idx]
	}
	return out, nil
}
