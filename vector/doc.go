/*
Package vector implements a contiguous, growable, allocator-aware array, designed for
use-cases similar to Go slices, but with an explicit element lifecycle.

A Vector owns one block of slots obtained from an alloc.Allocator. Slots below the
vector's length hold live elements; slots above it are empty. Elements are placed
into slots by the allocator's Construct and removed by its Destroy, one at a time.
Element types may take part in copying, relocation and destruction by implementing
alloc.Copier, alloc.Mover or alloc.Finalizer.

Growth

Whenever an operation needs room for more elements than the current capacity, the
capacity is rounded up to the next multiple of the growth granularity (1024 slots
by default) and a new block of exactly that size is allocated. Existing elements are
moved into the new block, the old slots are destroyed and the old block is released.
A new block is always obtained before any element is touched, so an allocation
failure leaves the vector unchanged.

    vec := vector.New[int]()
    vec.PushBack(7)          // vec.Capacity() == 1024
    small := vector.New[int](vector.Granularity(8))
    small.PushBack(7)        // small.Capacity() == 8

Position handles

Iterators are lightweight positions into a vector's block. Every reallocation
invalidates all of them. Inserting or erasing without reallocation invalidates the
positions at and after the point of modification. Vectors created with the Checked
option detect the use of handles outliving a reallocation and panic; otherwise the
use of an invalid handle is undefined.

Errors

Bounds-checked access fails with an error matching ErrOutOfRange. Allocation
failures of the allocator are passed on unchanged (see alloc.ErrAllocation).
Unchecked operations (Get, Ref, Front, Back, PopBack on an empty vector) do not
report anything.

Vectors are not safe for concurrent use. Clients have to synchronize access
externally.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'contiguous.vector'.
func tracer() tracing.Trace {
	return tracing.Select("contiguous.vector")
}
