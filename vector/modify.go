package vector

import (
	"iter"

	"github.com/npillmayer/contiguous/alloc"
)

// Clear destroys all elements, from first to last. Capacity is unchanged and the
// block is retained.
func (v *Vector[T]) Clear() {
	s := v.st()
	if v.checked && s.length > 0 {
		s.modified(0)
	}
	for i := 0; i < s.length; i++ {
		s.alloc.Destroy(&s.block[i])
	}
	s.length = 0
}

// --- Appending -------------------------------------------------------------

// PushBack appends a copy of value. If v has to grow, all position handles are
// invalidated.
func (v *Vector[T]) PushBack(value T) error {
	return v.appendWith(func() T {
		return alloc.CopyValue(&value)
	})
}

// PushBackMove appends the element src points to by moving it, leaving *src in
// moved-from state. src must not point into v's own block.
func (v *Vector[T]) PushBackMove(src *T) error {
	return v.appendWith(func() T {
		return alloc.MoveValue(src)
	})
}

// EmplaceBack appends the element produced by ctor. ctor is called after room for
// the new element has been made, and only if that succeeded.
func (v *Vector[T]) EmplaceBack(ctor func() T) error {
	return v.appendWith(ctor)
}

func (v *Vector[T]) appendWith(ctor func() T) error {
	s := v.st()
	if err := v.growFor(s.length + 1); err != nil {
		return err
	}
	s.alloc.Construct(&s.block[s.length], ctor())
	s.length++
	return nil
}

// PopBack destroys the last element. Calling PopBack on an empty vector does
// nothing, unless v is checked, in which case it panics.
func (v *Vector[T]) PopBack() {
	s := v.st()
	if s.length == 0 {
		assertThat(!v.checked, "PopBack on empty vector")
		return
	}
	s.length--
	s.alloc.Destroy(&s.block[s.length])
}

// --- Inserting -------------------------------------------------------------

// Insert inserts a copy of value before pos and returns a position handle to the
// inserted element. pos has to be a position of v, including End().
//
// If v has to grow, all position handles are invalidated. Otherwise handles at or
// after pos are.
func (v *Vector[T]) Insert(pos Iterator[T], value T) (Iterator[T], error) {
	return v.insertN(pos, 1, func(int) T {
		return alloc.CopyValue(&value)
	})
}

// InsertMove inserts the element src points to before pos by moving it.
// src must not point into v's own block.
func (v *Vector[T]) InsertMove(pos Iterator[T], src *T) (Iterator[T], error) {
	return v.insertN(pos, 1, func(int) T {
		return alloc.MoveValue(src)
	})
}

// InsertN inserts n copies of value before pos and returns a position handle to
// the first inserted element. Inserting zero elements returns pos.
func (v *Vector[T]) InsertN(pos Iterator[T], n int, value T) (Iterator[T], error) {
	return v.insertN(pos, n, func(int) T {
		return alloc.CopyValue(&value)
	})
}

// InsertSlice inserts copies of values before pos. values may alias v's own
// elements.
func (v *Vector[T]) InsertSlice(pos Iterator[T], values []T) (Iterator[T], error) {
	copies := copyAll(values)
	return v.insertN(pos, len(copies), func(i int) T {
		return copies[i]
	})
}

// InsertValues inserts a literal list of values before pos.
//
//	it, err := vec.InsertValues(vec.Begin(), 1, 2, 3)
func (v *Vector[T]) InsertValues(pos Iterator[T], values ...T) (Iterator[T], error) {
	return v.InsertSlice(pos, values)
}

// InsertSeq inserts the elements of seq before pos. seq is drained before v is
// modified.
func (v *Vector[T]) InsertSeq(pos Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	var values []T
	for x := range seq {
		values = append(values, x)
	}
	return v.insertN(pos, len(values), func(i int) T {
		return alloc.CopyValue(&values[i])
	})
}

// insertN makes room for n elements at pos and constructs them with gen.
// The index of pos is taken before any reallocation.
func (v *Vector[T]) insertN(pos Iterator[T], n int, gen func(int) T) (Iterator[T], error) {
	s := v.st()
	at := s.index(pos, v.checked)
	if n == 0 {
		return pos, nil
	}
	if n < 0 || n > v.MaxSize()-s.length {
		return pos, ErrLength
	}
	if err := v.growFor(s.length + n); err != nil {
		return pos, err
	}
	s.shiftUp(at, n)
	for i := 0; i < n; i++ {
		s.alloc.Construct(&s.block[at+i], gen(i))
	}
	s.length += n
	if v.checked {
		s.modified(at)
	}
	return v.iteratorAt(at), nil
}

// Emplace inserts the element produced by ctor before pos. The element is
// constructed at the end and then swapped into place, one position at a time.
func (v *Vector[T]) Emplace(pos Iterator[T], ctor func() T) (Iterator[T], error) {
	s := v.st()
	at := s.index(pos, v.checked)
	if err := v.EmplaceBack(ctor); err != nil {
		return pos, err
	}
	for i := s.length - 1; i > at; i-- {
		s.block[i], s.block[i-1] = s.block[i-1], s.block[i]
	}
	if v.checked {
		s.modified(at)
	}
	return v.iteratorAt(at), nil
}

// --- Erasing ---------------------------------------------------------------

// Erase removes the element at pos. It returns a position handle to the element
// following the removed one, which may be End().
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	return v.EraseRange(pos, pos.Next())
}

// EraseRange removes the elements in [first, last). Surviving tail elements are
// swapped into the gap, then the vacated tail slots are destroyed. Erasing an
// empty range does nothing and returns first.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	s := v.st()
	if first.Equal(last) {
		return first
	}
	f, l := s.index(first, v.checked), s.index(last, v.checked)
	assertThat(f < l, "invalid range [%d,%d)", f, l)
	k := l - f
	for i := f; i+k < s.length; i++ {
		s.block[i], s.block[i+k] = s.block[i+k], s.block[i]
	}
	for ; k > 0; k-- {
		s.length--
		s.alloc.Destroy(&s.block[s.length])
	}
	if v.checked {
		s.modified(f)
	}
	return v.iteratorAt(f)
}

// --- Resizing --------------------------------------------------------------

// Resize changes the number of elements to n. Surplus elements are destroyed from
// the back; missing elements are appended as zero values.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.resizeWith(n, func() T {
		return zero
	})
}

// ResizeWith changes the number of elements to n, appending copies of value if v
// has to be lengthened.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	return v.resizeWith(n, func() T {
		return alloc.CopyValue(&value)
	})
}

func (v *Vector[T]) resizeWith(n int, gen func() T) error {
	s := v.st()
	if n < s.length {
		if n < 0 {
			return ErrLength
		}
		for s.length > n {
			v.PopBack()
		}
		return nil
	}
	if err := v.growFor(n); err != nil {
		return err
	}
	for s.length < n {
		s.alloc.Construct(&s.block[s.length], gen())
		s.length++
	}
	return nil
}

// Swap exchanges the contents of v and other, including their allocators. No
// element is touched. Position handles follow their elements into the other
// vector, except for End() handles.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.st()
	other.st()
	v.s, other.s = other.s, v.s
}
