package lists

import "errors"

var (
	ErrEmptyList        = errors.New("empty list")
	ErrNodeLinked       = errors.New("node already belongs to a list")
	ErrForeignNode      = errors.New("node does not belong to this list")
	ErrInvalidOperation = errors.New("invalid operation on cursor")
)
