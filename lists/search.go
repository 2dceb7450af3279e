package lists

// Find performs a linear search from front to back.
// Returns the first node for which compare(key, node.Value) == 0, or nil.
func (l *List[T]) Find(key T, compare func(key, elem T) int) *Node[T] {
	for n := range l.Nodes() {
		if compare(key, n.Value) == 0 {
			return n
		}
	}
	return nil
}

// FindMax returns the node holding the largest value.
// On ties the node closest to the front wins.
func (l *List[T]) FindMax(compare func(a, b T) int) (*Node[T], error) {
	return l.findExtreme(func(best, v T) bool { return compare(best, v) < 0 })
}

// FindMin returns the node holding the smallest value.
// On ties the node closest to the front wins.
func (l *List[T]) FindMin(compare func(a, b T) int) (*Node[T], error) {
	return l.findExtreme(func(best, v T) bool { return compare(best, v) > 0 })
}

func (l *List[T]) findExtreme(better func(best, v T) bool) (*Node[T], error) {
	if l.size == 0 {
		return nil, ErrEmptyList
	}
	best := l.root.next
	for n := best.next; n != &l.root; n = n.next {
		if better(best.Value, n.Value) {
			best = n
		}
	}
	return best, nil
}

// Count returns the number of nodes whose value satisfies the predicate.
func (l *List[T]) Count(predicate func(T) bool) int {
	count := 0
	for v := range l.Values() {
		if predicate(v) {
			count++
		}
	}
	return count
}
