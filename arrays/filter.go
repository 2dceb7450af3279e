package arrays

// FilterInPlace keeps only the elements for which keep returns true,
// shifting them left and preserving their relative order.
// Every discarded element is passed to del (if not nil) before its slot is
// cleared. Slots from the returned count onwards hold zero values, so the
// filtered view is collection[:n].
//
// Note: elements change position. Pointers into the backing array taken
// before the call refer to different elements afterwards.
func FilterInPlace[T any](collection []T, keep func(T) bool, del func(T)) int {
	if len(collection) == 0 {
		return 0
	}
	_ = collection[len(collection)-1]

	idx := 0
	for i, v := range collection {
		if keep(v) {
			if i != idx {
				collection[idx] = v
			}
			idx++
		} else if del != nil {
			del(v)
		}
	}

	// allow GC to reclaim memory
	clear(collection[idx:])
	return idx
}

// Filter copies the elements of src for which keep returns true into dst,
// in order, without modifying src. Returns the number of elements written.
//
// dst must be able to hold every kept element; len(dst) >= len(src) always
// suffices. When it cannot, Filter writes what fits and returns
// ErrShortDestination.
func Filter[T any](dst, src []T, keep func(T) bool) (int, error) {
	n := 0
	for _, v := range src {
		if !keep(v) {
			continue
		}
		if n == len(dst) {
			return n, ErrShortDestination
		}
		dst[n] = v
		n++
	}
	return n, nil
}
