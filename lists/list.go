// Package lists implements a circular doubly-linked list anchored by a
// sentinel head node, and a family of algorithms (search, filter, count,
// sorted insertion, sorting, reversal) that work directly on its links.
//
// Nodes are handles: algorithms return and move *Node values rather than
// copying payloads, so a node keeps its identity when it is sorted,
// reversed or moved to another list.
package lists

import (
	"fmt"
	"iter"
	"strings"
)

// Node is an element of a List. The zero Node is unlinked.
type Node[T any] struct {
	next *Node[T]
	prev *Node[T]
	// list is nil while the node is unlinked; for the sentinel it is the
	// owning list as well.
	list *List[T]

	Value T
}

// NewNode returns an unlinked node holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Next returns the following node, or nil at the end of the list.
func (n *Node[T]) Next() *Node[T] {
	if l := n.list; l != nil && n.next != &l.root {
		return n.next
	}
	return nil
}

// Prev returns the preceding node, or nil at the start of the list.
func (n *Node[T]) Prev() *Node[T] {
	if l := n.list; l != nil && n.prev != &l.root {
		return n.prev
	}
	return nil
}

// List returns the list n is linked into, or nil.
func (n *Node[T]) List() *List[T] {
	return n.list
}

// List is a circular doubly-linked list. The root node is the sentinel head:
// it carries no payload and closes the cycle, so an empty list is the
// sentinel pointing at itself.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	root Node[T]
	size int
}

// New returns a list holding values in order.
func New[T any](values ...T) *List[T] {
	l := new(List[T]).Init()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Init empties l. Nodes previously linked into l are unlinked and may be
// linked into any list afterwards.
func (l *List[T]) Init() *List[T] {
	// a copied List value still points into the original cycle; leave it alone
	if l.root.next != nil && l.root.list == l {
		current := l.root.next
		for current != &l.root {
			next := current.next
			current.next = nil
			current.prev = nil
			current.list = nil
			current = next
		}
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.root.list = l
	l.size = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// link inserts n between prev and next.
// Membership checks should be done by the caller.
func (l *List[T]) link(n, prev, next *Node[T]) {
	n.prev = prev
	n.next = next
	prev.next = n
	next.prev = n
	n.list = l
	l.size++
}

// unlink removes n from the cycle and clears its links.
func (l *List[T]) unlink(n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	n.list = nil
	l.size--
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns the first node, or nil if l is empty.
func (l *List[T]) Front() *Node[T] {
	if l.size == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last node, or nil if l is empty.
func (l *List[T]) Back() *Node[T] {
	if l.size == 0 {
		return nil
	}
	return l.root.prev
}

// PushBack appends v and returns its node.
func (l *List[T]) PushBack(v T) *Node[T] {
	l.lazyInit()
	n := NewNode(v)
	l.link(n, l.root.prev, &l.root)
	return n
}

// PushFront prepends v and returns its node.
func (l *List[T]) PushFront(v T) *Node[T] {
	l.lazyInit()
	n := NewNode(v)
	l.link(n, &l.root, l.root.next)
	return n
}

// PushBackNode appends an unlinked node.
func (l *List[T]) PushBackNode(n *Node[T]) error {
	if n.list != nil {
		return ErrNodeLinked
	}
	l.lazyInit()
	l.link(n, l.root.prev, &l.root)
	return nil
}

// PushFrontNode prepends an unlinked node.
func (l *List[T]) PushFrontNode(n *Node[T]) error {
	if n.list != nil {
		return ErrNodeLinked
	}
	l.lazyInit()
	l.link(n, &l.root, l.root.next)
	return nil
}

// InsertAfter links the unlinked node n right after mark.
func (l *List[T]) InsertAfter(n, mark *Node[T]) error {
	if n.list != nil {
		return ErrNodeLinked
	}
	if mark.list != l || mark == &l.root {
		return ErrForeignNode
	}
	l.link(n, mark, mark.next)
	return nil
}

// InsertBefore links the unlinked node n right before mark.
func (l *List[T]) InsertBefore(n, mark *Node[T]) error {
	if n.list != nil {
		return ErrNodeLinked
	}
	if mark.list != l || mark == &l.root {
		return ErrForeignNode
	}
	l.link(n, mark.prev, mark)
	return nil
}

// Remove unlinks n from l and returns its value. The node keeps its value
// and may be linked into any list afterwards.
func (l *List[T]) Remove(n *Node[T]) (T, error) {
	if n.list != l || n == &l.root {
		var zero T
		return zero, ErrForeignNode
	}
	l.unlink(n)
	return n.Value, nil
}

// Clear unlinks every node.
func (l *List[T]) Clear() {
	l.Init()
}

// Nodes yields every payload node from front to back.
// The yielded node may be removed or moved during iteration.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if l.size == 0 {
			return
		}
		current := l.root.next
		for current != &l.root {
			next := current.next
			if !yield(current) {
				return
			}
			current = next
		}
	}
}

func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range l.Nodes() {
			if !yield(n.Value) {
				return
			}
		}
	}
}

func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for n := range l.Nodes() {
			if !yield(index, n.Value) {
				return
			}
			index++
		}
	}
}

func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l.size == 0 {
			return
		}
		current := l.root.prev
		index := l.size - 1
		for current != &l.root {
			if !yield(index, current.Value) {
				return
			}
			current = current.prev
			index--
		}
	}
}

func (l *List[T]) String() string {
	strBuilder := strings.Builder{}
	strBuilder.WriteString("[")
	first := true
	for v := range l.Values() {
		if !first {
			strBuilder.WriteString(", ")
		}
		strBuilder.WriteString(fmt.Sprintf("%v", v))
		first = false
	}
	strBuilder.WriteString("]")
	return strBuilder.String()
}
