package vector

import (
	"github.com/npillmayer/contiguous/alloc"
)

// Reserve makes sure v has room for at least n elements. If n does not exceed the
// current capacity, nothing happens. Otherwise a block of exactly n slots is
// allocated, all elements are moved into it in order, the old slots are destroyed
// and the old block is released. All position handles are invalidated then.
//
// If the allocator fails, its error is returned and v is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	s := v.st()
	if n <= len(s.block) {
		return nil
	}
	if n > v.MaxSize() {
		return &alloc.Error{Op: "reserve", Requested: n, Err: alloc.ErrTooLarge}
	}
	block, err := s.alloc.Allocate(n)
	if err != nil {
		return err
	}
	assertThat(len(block) == n, "allocator returned block of %d slots, requested %d", len(block), n)
	for i := 0; i < s.length; i++ {
		s.alloc.Construct(&block[i], alloc.MoveValue(&s.block[i]))
	}
	for i := 0; i < s.length; i++ {
		s.alloc.Destroy(&s.block[i])
	}
	if s.block != nil {
		s.alloc.Deallocate(s.block)
	}
	tracer().Debugf("vector: relocated %d elements, capacity %d -> %d", s.length, len(s.block), n)
	s.block = block
	s.renew()
	return nil
}

// ShrinkToFit is a non-binding request to reduce capacity to the number of elements.
// This implementation ignores it; capacity is never reduced by this call.
func (v *Vector[T]) ShrinkToFit() {}

// rounded returns n rounded up to the growth granularity, capped at MaxSize.
func (v *Vector[T]) rounded(n int) int {
	g := v.granularity
	r := ((n + g - 1) / g) * g
	if r > v.MaxSize() || r < n {
		return v.MaxSize()
	}
	return r
}

// growFor makes room for n elements in total, growing in units of the granularity.
// Elements are kept.
func (v *Vector[T]) growFor(n int) error {
	s := v.st()
	if n < 0 || n > v.MaxSize() {
		return ErrLength
	}
	if n <= len(s.block) {
		return nil
	}
	return v.Reserve(v.rounded(n))
}

// discardFor makes room for n elements in total, dropping all current elements.
// A new block, if needed, is obtained before any element is destroyed, and no
// element is relocated.
func (v *Vector[T]) discardFor(n int) error {
	s := v.st()
	if n < 0 || n > v.MaxSize() {
		return ErrLength
	}
	if n <= len(s.block) {
		v.Clear()
		return nil
	}
	r := v.rounded(n)
	block, err := s.alloc.Allocate(r)
	if err != nil {
		return err
	}
	assertThat(len(block) == r, "allocator returned block of %d slots, requested %d", len(block), r)
	v.Release()
	s.block = block
	s.renew()
	tracer().Debugf("vector: replaced block, capacity now %d", r)
	return nil
}
