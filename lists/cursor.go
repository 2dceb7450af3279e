package lists

import "fmt"

/*
Cursor for iteration with modification support.

A cursor resting on the sentinel is invalid, but stays attached: because the
list is circular, Next from the sentinel moves to the front and Prev to the
back.
*/
type Cursor[T any] struct {
	current *Node[T]
	list    *List[T]
}

// FrontCursor returns a cursor on the first node, or on the sentinel if l is empty.
func (l *List[T]) FrontCursor() *Cursor[T] {
	l.lazyInit()
	return &Cursor[T]{current: l.root.next, list: l}
}

// BackCursor returns a cursor on the last node, or on the sentinel if l is empty.
func (l *List[T]) BackCursor() *Cursor[T] {
	l.lazyInit()
	return &Cursor[T]{current: l.root.prev, list: l}
}

// IsValid checks if the cursor is at a payload node still linked into its list.
func (c *Cursor[T]) IsValid() bool {
	return c.current != nil && c.list != nil && c.current.list == c.list && c.current != &c.list.root
}

// Node returns the node under the cursor, or nil if the cursor is invalid.
func (c *Cursor[T]) Node() *Node[T] {
	if !c.IsValid() {
		return nil
	}
	return c.current
}

// Value returns the value at the current cursor position.
// If the cursor is invalid, it returns the zero value of T.
func (c *Cursor[T]) Value() (val T) {
	if !c.IsValid() {
		return val
	}
	return c.current.Value
}

// Next moves the cursor one node forward.
func (c *Cursor[T]) Next() {
	if c.attached() {
		c.current = c.current.next
	}
}

// Prev moves the cursor one node backward.
func (c *Cursor[T]) Prev() {
	if c.attached() {
		c.current = c.current.prev
	}
}

// attached reports whether the cursor rests on a node of its list, sentinel included.
func (c *Cursor[T]) attached() bool {
	return c.current != nil && c.list != nil && c.current.list == c.list
}

// Set sets the value at the current cursor position.
func (c *Cursor[T]) Set(value T) error {
	if !c.IsValid() {
		return ErrInvalidOperation
	}
	c.current.Value = value
	return nil
}

// Remove unlinks the node at the current cursor position and returns it.
// The cursor moves to the following node (possibly the sentinel).
func (c *Cursor[T]) Remove() (*Node[T], error) {
	if !c.IsValid() {
		return nil, ErrInvalidOperation
	}
	removed := c.current
	next := removed.next
	c.list.unlink(removed)
	c.current = next
	return removed, nil
}

// InsertAfter inserts a new value after the current cursor position.
// On the sentinel this prepends to the list.
func (c *Cursor[T]) InsertAfter(value T) (*Node[T], error) {
	if !c.attached() {
		return nil, ErrInvalidOperation
	}
	n := NewNode(value)
	c.list.link(n, c.current, c.current.next)
	return n, nil
}

// InsertBefore inserts a new value before the current cursor position.
// On the sentinel this appends to the list.
//
// Example:
//
//	l := lists.New[int]()
//	c := l.FrontCursor() // empty list: points to the sentinel
//	c.InsertBefore(1)    // inserts 1 into the empty list
func (c *Cursor[T]) InsertBefore(value T) (*Node[T], error) {
	if !c.attached() {
		return nil, ErrInvalidOperation
	}
	n := NewNode(value)
	c.list.link(n, c.current.prev, c.current)
	return n, nil
}

// String returns a string representation of the cursor
func (c *Cursor[T]) String() string {
	if c.IsValid() {
		return fmt.Sprintf("Cursor[%v]", c.current.Value)
	}
	return "Cursor[invalid]"
}
