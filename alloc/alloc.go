package alloc

import (
	"math"
	"reflect"
)

// MaxElements is the largest number of slots System will hand out in one block.
const MaxElements = math.MaxInt32

// Allocator is the capability a container uses for all of its storage.
//
// Allocate returns a block of exactly n empty slots (len and cap both n), or an error
// wrapping ErrAllocation. Deallocate releases a block obtained from Allocate; all
// of its elements must have been destroyed before. Construct places a value into
// an empty slot, Destroy finalizes the element in a slot and leaves it empty.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Deallocate(block []T)
	Construct(slot *T, value T)
	Destroy(slot *T)
}

// Equivalent may be implemented by allocators to tell whether storage obtained
// from other may be released through the receiver, and vice versa.
type Equivalent[T any] interface {
	Equivalent(other Allocator[T]) bool
}

// Compatible reports whether blocks may be handed over between allocators a and b.
// Allocators implementing Equivalent decide for themselves. Otherwise allocators of
// a comparable type are compatible if they are equal.
func Compatible[T any](a, b Allocator[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq, ok := a.(Equivalent[T]); ok {
		return eq.Equivalent(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// --- System allocator ------------------------------------------------------

// System is the default allocator. It draws memory from the Go runtime and is
// stateless, so all System allocators of an element type are compatible.
type System[T any] struct{}

// Allocate returns a fresh block of n zero-valued slots.
func (System[T]) Allocate(n int) ([]T, error) {
	if n < 0 || n > MaxElements {
		return nil, failed("allocate", n, ErrTooLarge)
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; the garbage collector reclaims the block.
func (System[T]) Deallocate([]T) {}

// Construct places value into slot.
func (System[T]) Construct(slot *T, value T) {
	*slot = value
}

// Destroy finalizes the element in slot.
func (System[T]) Destroy(slot *T) {
	Finalize(slot)
}

// Default returns the allocator containers use if none is given.
func Default[T any]() Allocator[T] {
	return System[T]{}
}

var _ Allocator[int] = System[int]{}
