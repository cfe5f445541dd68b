package vector

// Iterator is a position handle into a vector's block. Iterators are values and
// cheap to copy; moving an iterator returns a new one.
//
// An iterator is valid until the next reallocation of its vector, and until an
// insertion or erasure at or before its position. Using an invalid iterator is
// undefined, unless the vector has been created with option Checked, in which
// case a stale iterator is detected on dereference and when passed to a
// modifier. Appending and popping are not tracked; a handle to End() or to the
// last element does not notice them.
type Iterator[T any] struct {
	s       *store[T]
	index   int
	epoch   uint64
	stamp   uint64
	checked bool
}

// Begin returns a position handle to the first element.
func (v *Vector[T]) Begin() Iterator[T] {
	return v.iteratorAt(0)
}

// End returns a position handle past the last element.
func (v *Vector[T]) End() Iterator[T] {
	return v.iteratorAt(v.st().length)
}

// IteratorAt returns a position handle to index i. i may be Len(), resulting in
// End(); other values outside [0, Len()) produce a non-dereferenceable handle.
func (v *Vector[T]) IteratorAt(i int) Iterator[T] {
	return v.iteratorAt(i)
}

func (v *Vector[T]) iteratorAt(i int) Iterator[T] {
	s := v.st()
	return Iterator[T]{s: s, index: i, epoch: s.epoch, stamp: s.stamp, checked: v.checked}
}

// Index returns the offset of the position from the start of the block.
func (it Iterator[T]) Index() int {
	return it.index
}

// Next returns a handle to the following position.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Advance(1)
}

// Prev returns a handle to the preceding position.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Advance(-1)
}

// Advance returns a handle n positions further. n may be negative.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	it.index += n
	return it
}

// Distance returns the number of positions from it to other.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return other.index - it.index
}

// Equal returns true if it and other denote the same position of the same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.s == other.s && it.index == other.index
}

// Less returns true if it denotes a position before other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.index < other.index
}

// Valid returns true if it may be dereferenced, i.e. it denotes an element and
// its vector has not reallocated since it was obtained. For checked vectors,
// an insertion or erasure at or before the position also makes it invalid.
func (it Iterator[T]) Valid() bool {
	return it.s != nil && it.epoch == it.s.epoch && !it.s.stale(it.stamp, it.index) &&
		it.index >= 0 && it.index < it.s.length
}

// Ref returns a reference to the element at the position.
func (it Iterator[T]) Ref() *T {
	if it.checked {
		assertThat(it.s != nil && it.epoch == it.s.epoch, "position handle outlived a reallocation")
		assertThat(!it.s.stale(it.stamp, it.index), "position handle %d outlived an insertion or erasure", it.index)
		assertThat(it.index >= 0 && it.index < it.s.length,
			"dereferencing position %d of vector with length %d", it.index, it.s.length)
	}
	return &it.s.block[it.index]
}

// Value returns the element at the position.
func (it Iterator[T]) Value() T {
	return *it.Ref()
}

// Const returns a read-only handle to the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// --- Reverse iteration -----------------------------------------------------

// ReverseIterator is a position handle moving from back to front. It refers to the
// element before its base position.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// RBegin returns a reverse handle to the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{base: v.End()}
}

// REnd returns a reverse handle before the first element.
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{base: v.Begin()}
}

// Base returns the underlying forward position, which is one past the element
// the reverse handle refers to.
func (r ReverseIterator[T]) Base() Iterator[T] {
	return r.base
}

// Index returns the offset of the element the handle refers to.
func (r ReverseIterator[T]) Index() int {
	return r.base.index - 1
}

func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Prev()}
}

func (r ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Next()}
}

func (r ReverseIterator[T]) Advance(n int) ReverseIterator[T] {
	return ReverseIterator[T]{base: r.base.Advance(-n)}
}

func (r ReverseIterator[T]) Distance(other ReverseIterator[T]) int {
	return r.base.index - other.base.index
}

func (r ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return r.base.Equal(other.base)
}

func (r ReverseIterator[T]) Less(other ReverseIterator[T]) bool {
	return other.base.Less(r.base)
}

func (r ReverseIterator[T]) Valid() bool {
	return r.base.Prev().Valid()
}

func (r ReverseIterator[T]) Ref() *T {
	return r.base.Prev().Ref()
}

func (r ReverseIterator[T]) Value() T {
	return *r.Ref()
}

// Const returns a read-only handle to the same position.
func (r ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r: r}
}

// --- Read-only handles -----------------------------------------------------

// ConstIterator is a position handle which does not allow modification of the
// element it refers to.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// CBegin returns a read-only handle to the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

// CEnd returns a read-only handle past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

func (c ConstIterator[T]) Index() int                { return c.it.index }
func (c ConstIterator[T]) Next() ConstIterator[T]    { return ConstIterator[T]{it: c.it.Next()} }
func (c ConstIterator[T]) Prev() ConstIterator[T]    { return ConstIterator[T]{it: c.it.Prev()} }
func (c ConstIterator[T]) Valid() bool               { return c.it.Valid() }
func (c ConstIterator[T]) Value() T                  { return c.it.Value() }
func (c ConstIterator[T]) Equal(o ConstIterator[T]) bool {
	return c.it.Equal(o.it)
}
func (c ConstIterator[T]) Less(o ConstIterator[T]) bool {
	return c.it.Less(o.it)
}
func (c ConstIterator[T]) Advance(n int) ConstIterator[T] {
	return ConstIterator[T]{it: c.it.Advance(n)}
}
func (c ConstIterator[T]) Distance(o ConstIterator[T]) int {
	return c.it.Distance(o.it)
}

// ConstReverseIterator is a read-only handle moving from back to front.
type ConstReverseIterator[T any] struct {
	r ReverseIterator[T]
}

// CRBegin returns a read-only reverse handle to the last element.
func (v *Vector[T]) CRBegin() ConstReverseIterator[T] {
	return v.RBegin().Const()
}

// CREnd returns a read-only reverse handle before the first element.
func (v *Vector[T]) CREnd() ConstReverseIterator[T] {
	return v.REnd().Const()
}

func (c ConstReverseIterator[T]) Base() ConstIterator[T] { return c.r.base.Const() }
func (c ConstReverseIterator[T]) Index() int             { return c.r.Index() }
func (c ConstReverseIterator[T]) Valid() bool            { return c.r.Valid() }
func (c ConstReverseIterator[T]) Value() T               { return c.r.Value() }
func (c ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r: c.r.Next()}
}
func (c ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r: c.r.Prev()}
}
func (c ConstReverseIterator[T]) Advance(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{r: c.r.Advance(n)}
}
func (c ConstReverseIterator[T]) Distance(o ConstReverseIterator[T]) int {
	return c.r.Distance(o.r)
}
func (c ConstReverseIterator[T]) Equal(o ConstReverseIterator[T]) bool {
	return c.r.Equal(o.r)
}
func (c ConstReverseIterator[T]) Less(o ConstReverseIterator[T]) bool {
	return c.r.Less(o.r)
}
