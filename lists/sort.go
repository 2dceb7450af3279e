package lists

import "slices"

// SortedInsert links the unlinked node n into l, which must already be
// sorted in ascending order by compare, keeping it sorted.
// n goes after any nodes that compare equal to it.
func (l *List[T]) SortedInsert(n *Node[T], compare func(a, b T) int) error {
	if n.list != nil {
		return ErrNodeLinked
	}
	l.lazyInit()
	l.sortedInsert(n, compare)
	return nil
}

func (l *List[T]) sortedInsert(n *Node[T], compare func(a, b T) int) {
	head := &l.root
	if head.next == head || compare(head.next.Value, n.Value) > 0 {
		l.link(n, head, head.next)
		return
	}
	// the front is <= n, so this stops at the latest when current.next is the sentinel
	current := head.next
	for current.next != head && compare(current.next.Value, n.Value) <= 0 {
		current = current.next
	}
	l.link(n, current, current.next)
}

// InsertionSort sorts l in ascending order with an insertion sort.
// Nodes already in order relative to their predecessor are not touched, so
// nearly sorted lists take close to linear time; the worst case is O(n²).
// The sort is stable.
func (l *List[T]) InsertionSort(compare func(a, b T) int) {
	if l.size < 2 {
		return
	}
	// the first node alone is already sorted
	for n := l.root.next.next; n != &l.root; {
		next := n.next
		if compare(n.prev.Value, n.Value) > 0 {
			l.unlink(n)
			l.sortedInsert(n, compare)
		}
		n = next
	}
}

// Sort sorts l in ascending order in O(n log n) time.
// It collects the nodes into a slice, sorts the node references and then
// relinks the same nodes into l in sorted order, using O(n) extra space.
// The sort is stable.
func (l *List[T]) Sort(compare func(a, b T) int) {
	if l.size < 2 {
		return
	}

	nodes := slices.Collect(l.Nodes())
	slices.SortStableFunc(nodes, func(a, b *Node[T]) int {
		return compare(a.Value, b.Value)
	})

	for _, n := range nodes {
		l.unlink(n)
		l.link(n, l.root.prev, &l.root)
	}
}

// MergeSort sorts l in ascending order with a top-down merge sort directly
// on the links, without an auxiliary slice.
// The sort is stable.
func (l *List[T]) MergeSort(compare func(a, b T) int) {
	if l.size < 2 {
		return
	}

	// 1. Detach the payload nodes from the sentinel to treat them as a simple chain
	first := l.root.next
	l.root.prev.next = nil

	// 2. Perform Merge Sort
	sortedHead := mergeSort(first, compare)

	// 3. Reconstruct the cycle (fix prev pointers and the sentinel)
	prev := &l.root
	l.root.next = sortedHead
	for current := sortedHead; current != nil; current = current.next {
		current.prev = prev
		prev = current
	}
	prev.next = &l.root
	l.root.prev = prev
}

func mergeSort[T any](head *Node[T], compare func(a, b T) int) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}

	// Find middle using slow/fast pointers
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	mid := slow.next
	slow.next = nil // Split the chain

	left := mergeSort(head, compare)
	right := mergeSort(mid, compare)

	return merge(left, right, compare)
}

func merge[T any](a, b *Node[T], compare func(a, b T) int) *Node[T] {
	var dummy Node[T]
	tail := &dummy

	for a != nil && b != nil {
		if compare(a.Value, b.Value) <= 0 {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}

	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}

	return dummy.next
}

// Reverse reverses l in place by swapping the links of every node,
// the sentinel included.
func (l *List[T]) Reverse() {
	l.lazyInit()
	for n := l.root.next; n != &l.root; {
		next := n.next
		n.next, n.prev = n.prev, n.next
		n = next
	}
	l.root.next, l.root.prev = l.root.prev, l.root.next
}
