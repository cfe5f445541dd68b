package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is the common ancestor of all allocation failures.
	// Use errors.Is(err, ErrAllocation) to test for any of them.
	ErrAllocation = errors.New("alloc: allocation failed")

	// ErrTooLarge indicates a request for more slots than an allocator can ever serve.
	ErrTooLarge = fmt.Errorf("%w: request too large", ErrAllocation)

	// ErrExhausted indicates that an allocator's quota is used up.
	ErrExhausted = fmt.Errorf("%w: quota exhausted", ErrAllocation)

	// ErrBadBlock indicates the release of a block the allocator did not hand out,
	// or of a block that has already been released.
	ErrBadBlock = errors.New("alloc: bad block")
)

// Error describes a failed allocator operation.
type Error struct {
	Op        string // operation, e.g. "allocate"
	Requested int    // number of slots involved
	Err       error  // one of the sentinel errors of this package
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %d slots: %v", e.Op, e.Requested, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func failed(op string, n int, err error) error {
	tracer().Debugf("alloc: %s of %d slots failed: %v", op, n, err)
	return &Error{Op: op, Requested: n, Err: err}
}
