/*
Package alloc provides the storage capability consumed by contiguous containers.

An Allocator hands out blocks of element slots and constructs and destroys elements
inside them:

    Allocate(n)        obtain a block of n slots
    Deallocate(block)  give a block back
    Construct(slot, v) place value v into an empty slot
    Destroy(slot)      finalize the element in a slot, leaving it empty

Empty slots hold the zero value of the element type. Containers never read an
empty slot and never destroy one.

Element types may take part in construction and destruction by implementing
Copier, Mover or Finalizer. Types without these hooks are copied and moved by
plain assignment.

Implementations

System is the default allocator, backed by the Go runtime.

Limited wraps another allocator and enforces a quota of outstanding slots. It is
useful to provoke allocation failures at a well defined point.

Tracking wraps another allocator and counts every operation. It detects double
frees and the release of foreign blocks.

Thread Safety

Allocators are not safe for concurrent use unless stated otherwise. Containers
using them are not either.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package alloc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'contiguous.alloc'.
func tracer() tracing.Trace {
	return tracing.Select("contiguous.alloc")
}
