package core

import "github.com/LeoWherle/ranker/internal/element"

// Engine ranks elements with an interactive bottom-up merge sort.
//
// Elements start as singleton runs in input order. The two runs at the
// front of the queue are merged by repeatedly comparing their heads and
// appending the preferred one; the merged run goes to the back of the
// queue. Runs are kept most-preferred first, so when a single run
// remains it is the final ranking. The whole session costs at most
// n*ceil(log2 n) comparisons and never asks an element against itself.
type Engine struct {
	runs    [][]element.Element
	merge   *mergeState
	pending *Comparison
}

// mergeState tracks the merge currently in progress between two runs.
type mergeState struct {
	left, right []element.Element
	li, ri      int
	out         []element.Element
}

// NewEngine starts a ranking session over the given elements.
// Returns ErrInvalidInput for fewer than two elements or duplicate ids.
func NewEngine(elements []element.Element) (*Engine, error) {
	if err := validateInput(elements); err != nil {
		return nil, err
	}

	runs := make([][]element.Element, len(elements))
	for i, e := range elements {
		runs[i] = []element.Element{e}
	}

	eng := &Engine{runs: runs}
	eng.advance()
	return eng, nil
}

// advance moves the engine forward until either a comparison is
// outstanding or a single run remains. Deterministic: runs are always
// taken from the front of the queue and merged runs appended at the back.
func (e *Engine) advance() {
	for e.pending == nil {
		if e.merge == nil {
			if len(e.runs) <= 1 {
				return
			}
			e.merge = &mergeState{
				left:  e.runs[0],
				right: e.runs[1],
				out:   make([]element.Element, 0, len(e.runs[0])+len(e.runs[1])),
			}
			e.runs = e.runs[2:]
		}

		m := e.merge
		if m.li < len(m.left) && m.ri < len(m.right) {
			e.pending = &Comparison{A: m.left[m.li], B: m.right[m.ri]}
			return
		}

		// One side exhausted: the remainder is already ordered.
		m.out = append(m.out, m.left[m.li:]...)
		m.out = append(m.out, m.right[m.ri:]...)
		e.runs = append(e.runs, m.out)
		e.merge = nil
	}
}

// NextComparison returns the pair awaiting a decision, or nil once the
// ranking is complete. Calling it repeatedly without an intervening
// RecordChoice returns the identical pair.
func (e *Engine) NextComparison() *Comparison {
	return e.pending
}

// RecordChoice answers the outstanding comparison with the preferred
// element's id. ErrInvalidChoice if no comparison is outstanding or the
// id names neither candidate; the session state is unchanged on error.
func (e *Engine) RecordChoice(winnerID string) error {
	if e.pending == nil {
		return ErrInvalidChoice
	}

	m := e.merge
	switch winnerID {
	case e.pending.A.ID:
		m.out = append(m.out, m.left[m.li])
		m.li++
	case e.pending.B.ID:
		m.out = append(m.out, m.right[m.ri])
		m.ri++
	default:
		return ErrInvalidChoice
	}

	e.pending = nil
	e.advance()
	return nil
}

// Complete reports whether enough comparisons have been answered to
// produce a total order.
func (e *Engine) Complete() bool {
	return e.pending == nil && e.merge == nil && len(e.runs) <= 1
}

// Result returns the ranked elements, most-preferred first.
// ErrNotComplete if comparisons are still outstanding.
func (e *Engine) Result() ([]element.Element, error) {
	if !e.Complete() {
		return nil, ErrNotComplete
	}
	out := make([]element.Element, len(e.runs[0]))
	copy(out, e.runs[0])
	return out, nil
}
