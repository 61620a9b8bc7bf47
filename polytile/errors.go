package polytile

import "errors"

var (
	// ErrAreaMismatch is returned when a board's free-cell count does not
	// equal exactly one of each free n-piece, which makes an exact cover
	// using "one of each kind" (spec.md §1) impossible.
	ErrAreaMismatch = errors.New("polytile: free cell count does not equal num_kinds * n")
	// ErrPieceTooLarge is returned when n is non-positive or otherwise unusable.
	ErrPieceTooLarge = errors.New("polytile: piece size must be positive")
)
