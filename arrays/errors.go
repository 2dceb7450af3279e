package arrays

import "errors"

// NotFound is returned by Find when no element matches the key.
const NotFound = -1

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrEmpty            = errors.New("empty array")
	// ErrShortDestination reports that the destination of Filter could not
	// hold every element that passed the predicate.
	ErrShortDestination = errors.New("destination too small")
)
