package vector

import (
	"github.com/emirpasic/gods/containers"
)

// Cursor is a stateful iterator over a vector, compatible with the iterators of
// the gods container library. A cursor starts before the first element; Next
// has to be called before the first call to Value.
//
//	it := vec.Iterator()
//	for it.Next() {
//		index, value := it.Index(), it.Item()
//		...
//	}
//
// A cursor reads the vector it has been created for. Modifying the vector while
// iterating is allowed, but elements may be skipped or visited twice.
type Cursor[T any] struct {
	v     *Vector[T]
	index int
}

// Iterator returns a cursor positioned before the first element.
func (v *Vector[T]) Iterator() *Cursor[T] {
	return &Cursor[T]{v: v, index: -1}
}

func (c *Cursor[T]) length() int {
	return c.v.st().length
}

// Next moves the cursor to the next element and returns true if there was one.
func (c *Cursor[T]) Next() bool {
	if c.index < c.length() {
		c.index++
	}
	return c.index < c.length()
}

// Prev moves the cursor to the previous element and returns true if there was one.
func (c *Cursor[T]) Prev() bool {
	if c.index >= 0 {
		c.index--
	}
	return c.index >= 0
}

// Value returns the current element as an interface.
func (c *Cursor[T]) Value() interface{} {
	return c.Item()
}

// Item returns the current element.
func (c *Cursor[T]) Item() T {
	return c.v.Get(c.index)
}

// Index returns the index of the current element.
func (c *Cursor[T]) Index() int {
	return c.index
}

// Begin resets the cursor to its initial state, before the first element.
func (c *Cursor[T]) Begin() {
	c.index = -1
}

// End moves the cursor past the last element.
func (c *Cursor[T]) End() {
	c.index = c.length()
}

// First moves the cursor to the first element and returns true if there is one.
func (c *Cursor[T]) First() bool {
	c.Begin()
	return c.Next()
}

// Last moves the cursor to the last element and returns true if there is one.
func (c *Cursor[T]) Last() bool {
	c.End()
	return c.Prev()
}

// NextTo moves the cursor forward to the next element satisfying f and returns
// true if there was one.
func (c *Cursor[T]) NextTo(f func(index int, value interface{}) bool) bool {
	for c.Next() {
		if f(c.index, c.Value()) {
			return true
		}
	}
	return false
}

// PrevTo moves the cursor backward to the previous element satisfying f and
// returns true if there was one.
func (c *Cursor[T]) PrevTo(f func(index int, value interface{}) bool) bool {
	for c.Prev() {
		if f(c.index, c.Value()) {
			return true
		}
	}
	return false
}

var _ containers.Container = (*Vector[int])(nil)
var _ containers.ReverseIteratorWithIndex = (*Cursor[int])(nil)
