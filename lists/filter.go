package lists

// FilterInPlace keeps only the nodes whose value satisfies keep.
// Every other node is unlinked and, if removed is not nil, appended to
// removed in traversal order so the caller can release it.
// Returns the number of nodes taken out of l. removed must not be l.
func (l *List[T]) FilterInPlace(removed *List[T], keep func(T) bool) int {
	removedCount := 0
	for n := range l.Nodes() {
		if keep(n.Value) {
			continue
		}
		l.unlink(n)
		if removed != nil {
			removed.lazyInit()
			removed.link(n, removed.root.prev, &removed.root)
		}
		removedCount++
	}
	return removedCount
}

// Filter appends to dst a copy of every node whose value satisfies keep,
// leaving l untouched. copyNode must return a new unlinked node; ownership
// passes to dst. A nil copy is skipped.
// Returns the number of nodes appended to dst. dst must not be l.
//
// Note: copyNode decides how deep the copy is. If T holds pointers, a
// shallow copy shares the referenced data between both lists.
func (l *List[T]) Filter(dst *List[T], keep func(T) bool, copyNode func(*Node[T]) *Node[T]) int {
	filteredCount := 0
	for n := range l.Nodes() {
		if !keep(n.Value) {
			continue
		}
		copied := copyNode(n)
		if copied == nil || dst.PushBackNode(copied) != nil {
			continue
		}
		filteredCount++
	}
	return filteredCount
}

// CopyNode is a copyNode function for Filter that copies the value into a
// fresh node.
func CopyNode[T any](n *Node[T]) *Node[T] {
	return NewNode(n.Value)
}
