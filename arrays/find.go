package arrays

// Find performs a linear search for key in an unsorted array.
// Returns the index of the first element for which compare(key, elem) == 0,
// or NotFound.
func Find[T any](key T, collection []T, compare func(key, elem T) int) int {
	if len(collection) == 0 {
		return NotFound
	}
	_ = collection[len(collection)-1] // BCE hint

	for i, v := range collection {
		if compare(key, v) == 0 {
			return i
		}
	}
	return NotFound
}

// FindMax returns the index of the largest element.
// On ties the first occurrence wins. Returns ErrEmpty for an empty array.
func FindMax[T any](collection []T, compare func(a, b T) int) (int, error) {
	return findExtreme(collection, func(best, v T) bool { return compare(best, v) < 0 })
}

// FindMin returns the index of the smallest element.
// On ties the first occurrence wins. Returns ErrEmpty for an empty array.
func FindMin[T any](collection []T, compare func(a, b T) int) (int, error) {
	return findExtreme(collection, func(best, v T) bool { return compare(best, v) > 0 })
}

// findExtreme replaces the running best only when better reports a strict improvement.
func findExtreme[T any](collection []T, better func(best, v T) bool) (int, error) {
	if len(collection) == 0 {
		return NotFound, ErrEmpty
	}
	_ = collection[len(collection)-1]

	best := 0
	for i := 1; i < len(collection); i++ {
		if better(collection[best], collection[i]) {
			best = i
		}
	}
	return best, nil
}

// Count returns the number of elements that satisfy the predicate.
func Count[T any](collection []T, predicate func(T) bool) int {
	if len(collection) == 0 {
		return 0
	}
	_ = collection[len(collection)-1]

	n := 0
	for _, v := range collection {
		if predicate(v) {
			n++
		}
	}
	return n
}
