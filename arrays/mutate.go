package arrays

// Insert writes elem at pos, shifting pos and every following element one
// slot to the right. The array never grows: the last element is discarded,
// after being passed to del if del is not nil.
//
// Returns ErrIndexOutOfBounds, leaving the array untouched, unless
// 0 <= pos < len(collection).
func Insert[T any](collection []T, pos int, elem T, del func(T)) error {
	if pos < 0 || pos >= len(collection) {
		return ErrIndexOutOfBounds
	}

	if del != nil {
		del(collection[len(collection)-1])
	}
	// copy handles the overlap
	copy(collection[pos+1:], collection[pos:len(collection)-1])
	collection[pos] = elem
	return nil
}

// Remove discards the element at pos (passing it to del if del is not nil),
// shifts the following elements one slot to the left and clears the last slot.
//
// Returns ErrIndexOutOfBounds, leaving the array untouched, unless
// 0 <= pos < len(collection).
func Remove[T any](collection []T, pos int, del func(T)) error {
	if pos < 0 || pos >= len(collection) {
		return ErrIndexOutOfBounds
	}

	if del != nil {
		del(collection[pos])
	}
	copy(collection[pos:], collection[pos+1:])
	clear(collection[len(collection)-1:])
	return nil
}

// Reverse reverses the order of the elements in place.
func Reverse[T any](collection []T) {
	for i, j := 0, len(collection)-1; i < j; i, j = i+1, j-1 {
		collection[i], collection[j] = collection[j], collection[i]
	}
}
