package vector

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/contiguous/alloc"
	"github.com/npillmayer/contiguous/maybe"
)

// At returns a reference to the element at index i, or an error matching
// ErrOutOfRange if i is not within [0, Len()).
func (v *Vector[T]) At(i int) (*T, error) {
	s := v.st()
	if uint(i) >= uint(s.length) {
		return nil, &RangeError{Index: i, Length: s.length}
	}
	return &s.block[i], nil
}

// Ref returns a reference to the element at index i without a bounds check
// against Len(). The reference is valid until the next reallocation.
func (v *Vector[T]) Ref(i int) *T {
	return &v.st().block[i]
}

// Get returns the element at index i without a bounds check against Len().
func (v *Vector[T]) Get(i int) T {
	return v.st().block[i]
}

// Set replaces the element at index i without a bounds check against Len().
// The old element is destroyed and value is copied into its slot.
func (v *Vector[T]) Set(i int, value T) {
	s := v.st()
	s.alloc.Destroy(&s.block[i])
	s.alloc.Construct(&s.block[i], alloc.CopyValue(&value))
}

// Front returns a reference to the first element. Calling Front on an empty
// vector is undefined.
func (v *Vector[T]) Front() *T {
	return &v.st().block[0]
}

// Back returns a reference to the last element. Calling Back on an empty vector
// is undefined.
func (v *Vector[T]) Back() *T {
	s := v.st()
	return &s.block[s.length-1]
}

// First returns the first element, if any.
func (v *Vector[T]) First() maybe.Maybe[T] {
	if v.Empty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(*v.Front())
}

// Last returns the last element, if any.
func (v *Vector[T]) Last() maybe.Maybe[T] {
	if v.Empty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(*v.Back())
}

// Data returns the live elements as a slice sharing v's block. It is nil if v has
// no block. The slice is valid until the next reallocation; its length does not
// follow later modifications of v.
func (v *Vector[T]) Data() []T {
	s := v.st()
	if s.block == nil {
		return nil
	}
	return s.block[:s.length:s.length]
}

// --- Sequences -------------------------------------------------------------

// All returns a sequence of index/element pairs, from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	s := v.st()
	return func(yield func(int, T) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(i, s.block[i]) {
				return
			}
		}
	}
}

// Backward returns a sequence of index/element pairs, from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	s := v.st()
	return func(yield func(int, T) bool) {
		for i := s.length - 1; i >= 0; i-- {
			if !yield(i, s.block[i]) {
				return
			}
		}
	}
}

// Items returns a sequence of the elements, from front to back.
func (v *Vector[T]) Items() iter.Seq[T] {
	s := v.st()
	return func(yield func(T) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(s.block[i]) {
				return
			}
		}
	}
}

// Refs returns a sequence of index/reference pairs, from front to back. Elements
// may be modified through the references.
func (v *Vector[T]) Refs() iter.Seq2[int, *T] {
	s := v.st()
	return func(yield func(int, *T) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(i, &s.block[i]) {
				return
			}
		}
	}
}

// BackwardRefs returns a sequence of index/reference pairs, from back to front.
func (v *Vector[T]) BackwardRefs() iter.Seq2[int, *T] {
	s := v.st()
	return func(yield func(int, *T) bool) {
		for i := s.length - 1; i >= 0; i-- {
			if !yield(i, &s.block[i]) {
				return
			}
		}
	}
}

// --- gods container interface ---------------------------------------------

// Values returns the elements as a slice of interfaces.
func (v *Vector[T]) Values() []interface{} {
	s := v.st()
	values := make([]interface{}, s.length)
	for i := 0; i < s.length; i++ {
		values[i] = s.block[i]
	}
	return values
}

// String returns a textual representation of the elements, e.g. "[97,98,99]".
func (v *Vector[T]) String() string {
	s := v.st()
	b := strings.Builder{}
	b.WriteByte('[')
	for i := 0; i < s.length; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", s.block[i]))
	}
	b.WriteByte(']')
	return b.String()
}
