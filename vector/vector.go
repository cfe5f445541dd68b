package vector

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/npillmayer/contiguous"
	"github.com/npillmayer/contiguous/alloc"
)

// DefaultGranularity is the number of slots capacity is rounded up to on growth.
const DefaultGranularity = 1024

// ErrOutOfRange is returned by bounds-checked access to a non-existing element.
var ErrOutOfRange = errors.New("vector index out of range")

// ErrLength is returned if a requested number of elements is negative or exceeds MaxSize.
var ErrLength = errors.New("vector length out of range")

// RangeError describes a failed bounds check. It matches ErrOutOfRange.
type RangeError struct {
	Index  int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector index out of range: %d with length %d", e.Index, e.Length)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// store holds everything a vector exchanges as a unit on Swap and move.
type store[T any] struct {
	alloc  alloc.Allocator[T]
	block  []T    // nil iff capacity is 0
	length int    // number of live elements at the start of block
	epoch  uint64 // incremented whenever block is replaced
	stamp  uint64 // incremented on every recorded modification
	edits  []edit // modifications of checked vectors since the last reallocation
}

func newStore[T any](a alloc.Allocator[T]) *store[T] {
	if a == nil {
		a = alloc.Default[T]()
	}
	return &store[T]{alloc: a}
}

// Vector is a contiguous dynamic array of elements of type T.
//
// An empty instance is usable as an empty vector with the default allocator, i.e.
// this is legal:
//
//	var vec vector.Vector[int]
//	vec.PushBack(42)
type Vector[T any] struct {
	props
	s *store[T]
}

type props struct {
	granularity int
	checked     bool
	initial     int
	allocator   any // set by UseAllocator, consumed at creation
}

func (p props) init() props {
	if p.granularity <= 0 {
		p.granularity = DefaultGranularity
	}
	return p
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// Granularity is an option to set the number of slots capacity is rounded up to
// whenever a vector has to grow. n < 1 selects the default of 1024.
//
// Use it like this:
//
//	vec := vector.New[int](vector.Granularity(16))
func Granularity(n int) Option {
	return Option{config: func(p props) props {
		if n < 1 {
			n = DefaultGranularity
		}
		p.granularity = n
		return p
	}}
}

// Checked is an option to make position handles of a vector check their validity
// on dereference. Using an invalidated handle will panic instead of silently
// accessing a stale slot.
func Checked() Option {
	return Option{config: func(p props) props {
		p.checked = true
		return p
	}}
}

// InitialCapacity is an option to reserve exactly n slots when a vector is created
// empty. Constructors which create elements round their capacity as usual.
func InitialCapacity(n int) Option {
	return Option{config: func(p props) props {
		p.initial = n
		return p
	}}
}

// UseAllocator is an option to make a vector draw its storage from a. It serves
// constructors which do not take an allocator argument:
//
//	a := alloc.Track[int](nil)
//	vec, err := vector.Filled(10, 7, vector.UseAllocator[int](a))
//
// An allocator passed to NewWithAllocator takes precedence.
func UseAllocator[T any](a alloc.Allocator[T]) Option {
	return Option{config: func(p props) props {
		p.allocator = a
		return p
	}}
}

// --- Construction ----------------------------------------------------------

// New creates an empty vector using the default allocator. It allocates nothing,
// unless option InitialCapacity is given and succeeds.
func New[T any](opts ...Option) *Vector[T] {
	return NewWithAllocator[T](nil, opts...)
}

// NewWithAllocator creates an empty vector which draws all of its storage from a.
// A nil allocator selects the default one.
func NewWithAllocator[T any](a alloc.Allocator[T], opts ...Option) *Vector[T] {
	v := &Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	v.props = v.props.init()
	if a == nil && v.allocator != nil {
		var ok bool
		a, ok = v.allocator.(alloc.Allocator[T])
		assertThat(ok, "allocator %T does not serve elements of type %T", v.allocator, *new(T))
	}
	v.allocator = nil
	v.s = newStore(a)
	if v.initial > 0 {
		if err := v.Reserve(v.initial); err != nil {
			tracer().Debugf("vector: initial capacity %d not available: %v", v.initial, err)
		}
	}
	return v
}

// Generate creates a vector of n elements, the i-th of which is produced by gen(i).
func Generate[T any](n int, gen contiguous.Generator[T], opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.growFor(n); err != nil {
		v.Release()
		return nil, err
	}
	s := v.s
	for s.length < n {
		s.alloc.Construct(&s.block[s.length], gen(s.length))
		s.length++
	}
	return v, nil
}

// Sized creates a vector of n zero-valued elements.
func Sized[T any](n int, opts ...Option) (*Vector[T], error) {
	return Generate[T](n, contiguous.Zero[T](), opts...)
}

// Filled creates a vector of n copies of value.
func Filled[T any](n int, value T, opts ...Option) (*Vector[T], error) {
	return Generate[T](n, func(int) T {
		return alloc.CopyValue(&value)
	}, opts...)
}

// FromSeq creates a vector from the elements of seq, in order. seq is consumed
// exactly once; storage is allocated as elements arrive.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	for x := range seq {
		if err := v.PushBack(x); err != nil {
			v.Release()
			return nil, err
		}
	}
	return v, nil
}

// FromSlice creates a vector holding copies of the elements of values.
func FromSlice[T any](values []T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.growFor(len(values)); err != nil {
		v.Release()
		return nil, err
	}
	s := v.s
	for i := range values {
		s.alloc.Construct(&s.block[i], alloc.CopyValue(&values[i]))
		s.length++
	}
	return v, nil
}

// Of creates a vector from a literal list of values.
//
//	vec, err := vector.Of(97, 98, 99)
func Of[T any](values ...T) (*Vector[T], error) {
	return FromSlice(values)
}

// Clone creates a copy of v, using the same allocator and options.
// v is not modified.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.CloneWith(v.st().alloc)
}

// CloneWith creates a copy of v which uses allocator a.
func (v *Vector[T]) CloneWith(a alloc.Allocator[T]) (*Vector[T], error) {
	src := v.st()
	c := &Vector[T]{props: v.props, s: newStore(a)}
	c.initial = 0
	if err := c.growFor(src.length); err != nil {
		c.Release()
		return nil, err
	}
	s := c.s
	for i := 0; i < src.length; i++ {
		s.alloc.Construct(&s.block[i], alloc.CopyValue(&src.block[i]))
		s.length++
	}
	return c, nil
}

// Take creates a vector by acquiring the contents of src. No element is touched:
// the new vector adopts src's block, capacity, length and allocator, while src is
// left as a valid, empty vector without a block.
func Take[T any](src *Vector[T], opts ...Option) *Vector[T] {
	v := New[T](opts...)
	v.adopt(src)
	return v
}

// TakeWith creates a vector using allocator a from the contents of src. If a is
// compatible with src's allocator, the block is acquired as with Take, and the new
// vector keeps a as its allocator. Otherwise a new block is allocated from a and
// every element is moved into it; src keeps its storage and its length, with its
// elements left in moved-from state.
func TakeWith[T any](src *Vector[T], a alloc.Allocator[T], opts ...Option) (*Vector[T], error) {
	v := NewWithAllocator(a, opts...)
	from := src.st()
	if alloc.Compatible(v.s.alloc, from.alloc) {
		mine := v.s.alloc
		v.adopt(src)
		v.s.alloc = mine
		return v, nil
	}
	if err := v.growFor(from.length); err != nil {
		v.Release()
		return nil, err
	}
	v.moveElementsFrom(from)
	return v, nil
}

// adopt transfers src's store to v and leaves src empty. v's current store is
// released.
func (v *Vector[T]) adopt(src *Vector[T]) {
	from := src.st()
	if v.st() == from {
		return
	}
	v.Release()
	v.s = from
	src.s = newStore(from.alloc)
	tracer().Debugf("vector: acquired block of %d slots holding %d elements", len(from.block), from.length)
}

// moveElementsFrom move-constructs all elements of from at the end of v.
// Capacity must have been ensured by the caller.
func (v *Vector[T]) moveElementsFrom(from *store[T]) {
	s := v.s
	for i := 0; i < from.length; i++ {
		s.alloc.Construct(&s.block[s.length], alloc.MoveValue(&from.block[i]))
		s.length++
	}
}

// Release destroys all elements and gives the block back to the allocator.
// The vector remains usable as an empty vector.
func (v *Vector[T]) Release() {
	s := v.st()
	v.Clear()
	if s.block != nil {
		s.alloc.Deallocate(s.block)
		s.block = nil
		s.renew()
	}
}

// st returns the vector's store, initializing a zero Vector on first use.
func (v *Vector[T]) st() *store[T] {
	if v.s == nil {
		v.s = newStore[T](nil)
		v.props = v.props.init()
	}
	return v.s
}

// Allocator returns the allocator the vector uses.
func (v *Vector[T]) Allocator() alloc.Allocator[T] {
	return v.st().alloc
}

// --- Assignment ------------------------------------------------------------

// CopyFrom replaces the contents of v with copies of the elements of src.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	from := src.st()
	if v.st() == from {
		return nil
	}
	if err := v.discardFor(from.length); err != nil {
		return err
	}
	s := v.s
	for i := 0; i < from.length; i++ {
		s.alloc.Construct(&s.block[i], alloc.CopyValue(&from.block[i]))
		s.length++
	}
	return nil
}

// MoveFrom replaces the contents of v with the contents of src. If the allocators
// of v and src are compatible, v's elements are destroyed and src's block is
// transferred without touching any element, leaving src empty. Otherwise the
// elements of src are moved one by one into v's storage. v keeps its own
// allocator in either case.
func (v *Vector[T]) MoveFrom(src *Vector[T]) error {
	from := src.st()
	if v.st() == from {
		return nil
	}
	if alloc.Compatible(v.s.alloc, from.alloc) {
		mine := v.s.alloc
		v.adopt(src)
		v.s.alloc = mine
		return nil
	}
	if err := v.discardFor(from.length); err != nil {
		return err
	}
	v.moveElementsFrom(from)
	return nil
}

// Reset replaces the contents of v with copies of values (list assignment).
func (v *Vector[T]) Reset(values ...T) error {
	if err := v.discardFor(len(values)); err != nil {
		return err
	}
	s := v.s
	for i := range values {
		s.alloc.Construct(&s.block[i], alloc.CopyValue(&values[i]))
		s.length++
	}
	return nil
}

// Assign replaces the contents of v with n copies of value. Slots holding an
// element are reused: the old element is destroyed before the copy is constructed
// in its place. Elements beyond n are destroyed afterwards.
func (v *Vector[T]) Assign(n int, value T) error {
	if err := v.growFor(n); err != nil {
		return err
	}
	v.assignFrom(n, func(int) T {
		return alloc.CopyValue(&value)
	})
	return nil
}

// AssignSlice replaces the contents of v with copies of values, reusing slots as
// Assign does. values may alias v's own elements.
func (v *Vector[T]) AssignSlice(values []T) error {
	if err := v.growFor(len(values)); err != nil {
		return err
	}
	copies := copyAll(values)
	v.assignFrom(len(copies), func(i int) T {
		return copies[i]
	})
	return nil
}

// AssignValues replaces the contents of v with a literal list of values.
func (v *Vector[T]) AssignValues(values ...T) error {
	return v.AssignSlice(values)
}

// AssignSeq replaces the contents of v with the elements of seq. seq is drained
// before v is modified, so a failing allocation leaves v unchanged.
func (v *Vector[T]) AssignSeq(seq iter.Seq[T]) error {
	var values []T
	for x := range seq {
		values = append(values, x)
	}
	if err := v.growFor(len(values)); err != nil {
		return err
	}
	v.assignFrom(len(values), func(i int) T {
		return alloc.CopyValue(&values[i])
	})
	return nil
}

// assignFrom overwrites slots [0,n) with elements produced by gen and destroys
// surplus elements. Capacity must have been ensured by the caller.
func (v *Vector[T]) assignFrom(n int, gen func(int) T) {
	s := v.s
	if v.checked {
		s.modified(0)
	}
	for i := 0; i < n; i++ {
		if i < s.length {
			s.alloc.Destroy(&s.block[i])
			s.alloc.Construct(&s.block[i], gen(i))
			continue
		}
		s.alloc.Construct(&s.block[i], gen(i))
		s.length++
	}
	for s.length > n {
		s.length--
		s.alloc.Destroy(&s.block[s.length])
	}
}

func copyAll[T any](values []T) []T {
	if len(values) == 0 {
		return nil
	}
	copies := make([]T, len(values))
	for i := range values {
		copies[i] = alloc.CopyValue(&values[i])
	}
	return copies
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.st().length
}

// Size returns the number of elements. It is a synonym for Len.
func (v *Vector[T]) Size() int {
	return v.Len()
}

// Empty returns true if v holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// Capacity returns the number of slots of the current block.
func (v *Vector[T]) Capacity() int {
	return len(v.st().block)
}

// MaxSize returns the upper bound for the number of elements of any vector.
func (v *Vector[T]) MaxSize() int {
	return math.MaxInt32
}
