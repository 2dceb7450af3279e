package arrays

// ForEach calls fn with the index of and a pointer to every element, in
// order. Writing through the pointer updates the array in place.
func ForEach[T any](collection []T, fn func(i int, elem *T)) {
	for i := range collection {
		fn(i, &collection[i])
	}
}

// Reduce folds the array from left to right into a single value.
func Reduce[T any, R any](collection []T, accumulator func(R, T) R, initial R) R {
	if len(collection) == 0 {
		return initial
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	result := initial
	for _, item := range collection {
		result = accumulator(result, item)
	}
	return result
}
