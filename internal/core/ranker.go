package core

import "github.com/LeoWherle/ranker/internal/element"

// Comparison is a single pair of elements presented for a decision.
// The oracle (a person, or an LLM judge) must pick exactly one of the two.
type Comparison struct {
	A element.Element `json:"a"`
	B element.Element `json:"b"`
}

// Ranker drives a pairwise comparison session to a total order.
//
// The conversation is strictly sequential: NextComparison returns the
// pair currently awaiting a decision (the same pair until a choice is
// recorded, nil once ranking is complete), RecordChoice answers it.
type Ranker interface {
	NextComparison() *Comparison
	RecordChoice(winnerID string) error
	Complete() bool
	Result() ([]element.Element, error)
}

func validateInput(elements []element.Element) error {
	if len(elements) < 2 {
		return ErrInvalidInput
	}
	seen := make(map[string]bool, len(elements))
	for _, e := range elements {
		if e.ID == "" || seen[e.ID] {
			return ErrInvalidInput
		}
		seen[e.ID] = true
	}
	return nil
}
