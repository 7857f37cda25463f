package core

import "errors"

var (
	// ErrInvalidInput is returned when a ranker is started with fewer
	// than two elements or with duplicate identifiers.
	ErrInvalidInput = errors.New("ranking requires at least two elements with unique ids")

	// ErrInvalidChoice is returned when a recorded winner is not one of
	// the two outstanding candidates, or no comparison is outstanding.
	ErrInvalidChoice = errors.New("winner is not part of the outstanding comparison")

	// ErrNotComplete is returned when the result is requested before
	// every needed comparison has been answered.
	ErrNotComplete = errors.New("ranking is not complete yet")
)
