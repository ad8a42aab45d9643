package histogram

import "errors"

var (
	// ErrInvalidSymbol is returned when a symbol outside a closed domain is counted
	// or transformed. Under correct input it is unreachable; callers should treat it
	// as a broken invariant.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrNegativeCount is returned when a decrement would drive a count below zero.
	ErrNegativeCount = errors.New("count would become negative")
)
