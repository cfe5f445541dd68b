package vector_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/contiguous"
	"github.com/npillmayer/contiguous/alloc"
	"github.com/npillmayer/contiguous/vector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counted is an element type which records copy, move and destroy operations.
type counted struct {
	id int
	c  *counters
}

type counters struct {
	copies, moves, finalized int
}

func (e counted) Copy() counted {
	e.c.copies++
	return e
}

func (e *counted) Move() counted {
	e.c.moves++
	out := *e
	e.id = -1
	return out
}

func (e *counted) Finalize() {
	if e.c != nil {
		e.c.finalized++
	}
}

func ints(v *vector.Vector[int]) []int {
	out := []int{}
	for x := range v.Items() {
		out = append(out, x)
	}
	return out
}

func TestEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	v := vector.New[int]()
	if !v.Empty() || v.Len() != 0 || v.Size() != 0 {
		t.Errorf("expected new vector to be empty, has length %d", v.Len())
	}
	if v.Capacity() != 0 {
		t.Errorf("expected new vector to have capacity 0, has %d", v.Capacity())
	}
	if v.Data() != nil {
		t.Error("expected vector without block to have nil data")
	}
	if v.MaxSize() != 2147483647 {
		t.Errorf("expected max size to be INT32_MAX, is %d", v.MaxSize())
	}
}

func TestZeroVector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	var v vector.Vector[string]
	require.NoError(t, v.PushBack("x"))
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, vector.DefaultGranularity, v.Capacity())
	assert.Equal(t, "x", *v.Front())
}

// construct from {97, 98, 99}; at(1) returns 98; at(3) is out of range
func TestAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	v, err := vector.Of(97, 98, 99)
	require.NoError(t, err)
	x, err := v.At(1)
	require.NoError(t, err)
	if *x != 98 {
		t.Errorf("expected at(1) to be 98, is %d", *x)
	}
	_, err = v.At(3)
	if !errors.Is(err, vector.ErrOutOfRange) {
		t.Errorf("expected at(3) to fail with out-of-range, got %v", err)
	}
	var rerr *vector.RangeError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 3, rerr.Index)
	assert.Equal(t, 3, rerr.Length)
	_, err = v.At(-1)
	assert.ErrorIs(t, err, vector.ErrOutOfRange, "negative index must be out of range")
	assert.Equal(t, "[97,98,99]", v.String())
}

func TestAccessors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	v, err := vector.Of("a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a", *v.Front())
	assert.Equal(t, "c", *v.Back())
	assert.Equal(t, "b", v.Get(1))
	*v.Ref(1) = "B"
	v.Set(2, "C")
	assert.Equal(t, []string{"a", "B", "C"}, v.Data())
	assert.Equal(t, "a", v.First().WithDefault("-"))
	assert.Equal(t, "C", v.Last().WithDefault("-"))

	e := vector.New[string]()
	assert.True(t, e.First().IsNothing())
	assert.True(t, e.Last().IsNothing())
	assert.Equal(t, []interface{}{"a", "B", "C"}, v.Values())
}

func TestConstruction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	s, err := vector.Sized[int](5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, ints(s))

	f, err := vector.Filled(3, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7}, ints(f))

	g, err := vector.Generate(4, contiguous.Iota(10, 10))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40}, ints(g))

	_, err = vector.Sized[int](-1)
	assert.ErrorIs(t, err, vector.ErrLength)

	small, err := vector.Sized[int](3, vector.Granularity(4))
	require.NoError(t, err)
	assert.Equal(t, 4, small.Capacity())

	r := vector.New[int](vector.InitialCapacity(10))
	assert.Equal(t, 10, r.Capacity(), "initial capacity is reserved exactly")
}

func TestFilledCopies(t *testing.T) {
	c := &counters{}
	v, err := vector.Filled(4, counted{id: 1, c: c})
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 4, c.copies)
	assert.Equal(t, 0, c.moves)
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	c := &counters{}
	v := vector.New[counted]()
	for i := 0; i < 3; i++ {
		require.NoError(t, v.EmplaceBack(func() counted { return counted{id: i, c: c} }))
	}
	w, err := v.Clone()
	require.NoError(t, err)
	assert.Equal(t, 3, c.copies)
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, 3, v.Len(), "source must be unmodified")
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, w.Get(i).id)
	}
	assert.NotSame(t, v.Front(), w.Front())
}

// A vector constructed from values and iterated reproduces the values, in order.
func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	input := make([]int, 3000)
	for i := range input {
		input[i] = i * 3
	}
	v, err := vector.FromSlice(input)
	require.NoError(t, err)
	assert.Equal(t, input, ints(v))
	assert.Equal(t, 3072, v.Capacity())
	assert.LessOrEqual(t, v.Len(), v.Capacity())
}

func TestTake(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	a, err := vector.Of(1, 2, 3)
	require.NoError(t, err)
	data := a.Data()
	b := vector.Take(a)
	assert.Equal(t, []int{1, 2, 3}, ints(b))
	assert.Same(t, &data[0], b.Front(), "block must be acquired, not copied")
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Capacity())
	require.NoError(t, a.PushBack(4), "moved-from vector must stay usable")
	assert.Equal(t, []int{4}, ints(a))
}

func TestTakeWithIncompatible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	c := &counters{}
	a := vector.New[counted]()
	for i := 0; i < 3; i++ {
		require.NoError(t, a.EmplaceBack(func() counted { return counted{id: i, c: c} }))
	}
	tr := alloc.Track[counted](nil)
	b, err := vector.TakeWith[counted](a, tr)
	require.NoError(t, err)
	assert.Equal(t, 3, c.moves)
	assert.Equal(t, 0, c.copies)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 3, a.Len(), "source keeps its length")
	assert.Equal(t, -1, a.Get(0).id, "source elements are moved-from")
	assert.Equal(t, 1, tr.Stats().Allocations)

	d, err := vector.TakeWith[counted](b, tr)
	require.NoError(t, err)
	assert.Equal(t, 3, c.moves, "compatible allocator must transfer the block")
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 3, d.Len())
}

// pool is a named allocator; all pools are equivalent.
type pool struct {
	alloc.System[int]
	name string
}

func (pool) Equivalent(other alloc.Allocator[int]) bool {
	_, ok := other.(pool)
	return ok
}

func TestTakeWithKeepsAllocator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	a := vector.NewWithAllocator[int](pool{name: "a"})
	require.NoError(t, a.AssignValues(1, 2, 3))
	front := a.Front()
	d, err := vector.TakeWith[int](a, pool{name: "b"})
	require.NoError(t, err)
	assert.Same(t, front, d.Front(), "block must be acquired, not copied")
	assert.Equal(t, pool{name: "b"}, d.Allocator())
	assert.Equal(t, pool{name: "a"}, a.Allocator())
	assert.Equal(t, 0, a.Len())

	x := vector.NewWithAllocator[int](pool{name: "x"})
	require.NoError(t, x.MoveFrom(d))
	assert.Same(t, front, x.Front())
	assert.Equal(t, pool{name: "x"}, x.Allocator())
	assert.Equal(t, []int{1, 2, 3}, ints(x))
}

func TestTakeWithReleasesOnFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	src := vector.New[int]()
	for i := 0; i < 20; i++ {
		require.NoError(t, src.PushBack(i))
	}
	lim := alloc.Limit[int](nil, 10)
	v, err := vector.TakeWith[int](src, lim, vector.InitialCapacity(4))
	require.ErrorIs(t, err, alloc.ErrExhausted)
	assert.Nil(t, v)
	assert.Equal(t, 0, lim.Outstanding(), "initial block must be given back")
	assert.Equal(t, 20, src.Len(), "source must be unmodified")

	w, err := vector.Filled(20, 1, vector.UseAllocator[int](lim), vector.InitialCapacity(4))
	require.ErrorIs(t, err, alloc.ErrExhausted)
	assert.Nil(t, w)
	assert.Equal(t, 0, lim.Outstanding())
	_, err = vector.FromSlice(make([]int, 20), vector.UseAllocator[int](lim), vector.InitialCapacity(4))
	require.ErrorIs(t, err, alloc.ErrExhausted)
	assert.Equal(t, 0, lim.Outstanding())
	_, err = src.CloneWith(lim)
	require.ErrorIs(t, err, alloc.ErrExhausted)
	assert.Equal(t, 0, lim.Outstanding())
}

func TestUseAllocator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	tr := alloc.Track[int](nil)
	v, err := vector.Filled(3, 7, vector.UseAllocator[int](tr))
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7}, ints(v))
	assert.Same(t, tr, v.Allocator())
	st := tr.Stats()
	assert.Equal(t, 1, st.Allocations)
	assert.Equal(t, 3, st.Constructs)

	w, err := vector.FromSlice([]int{1, 2}, vector.UseAllocator[int](tr))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ints(w))
	st = tr.Stats()
	assert.Equal(t, 2, st.Allocations)
	assert.Equal(t, 5, st.LiveElements)

	other := alloc.Track[int](nil)
	u := vector.NewWithAllocator[int](other, vector.UseAllocator[int](tr))
	assert.Same(t, other, u.Allocator(), "explicit allocator takes precedence")
	assert.Panics(t, func() {
		vector.New[string](vector.UseAllocator[int](tr))
	}, "allocator for a different element type")
}

func TestMoveFromIncompatible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	src, _ := vector.Of(1, 2, 3)
	tr := alloc.Track[int](nil)
	dst := vector.NewWithAllocator[int](tr)
	require.NoError(t, dst.MoveFrom(src))
	assert.Equal(t, []int{1, 2, 3}, ints(dst))
	assert.Equal(t, 3, src.Len(), "source keeps its length")
	assert.Equal(t, []int{0, 0, 0}, src.Data(), "source elements are moved-from")
	assert.Same(t, tr, dst.Allocator())
	assert.Equal(t, 1, tr.Stats().Allocations)
	assert.Equal(t, 3, tr.Stats().Constructs)

	c := &counters{}
	a := vector.New[counted]()
	for i := 0; i < 4; i++ {
		require.NoError(t, a.EmplaceBack(func() counted { return counted{id: i, c: c} }))
	}
	b := vector.NewWithAllocator[counted](alloc.Track[counted](nil))
	require.NoError(t, b.MoveFrom(a))
	assert.Equal(t, 4, c.moves)
	assert.Equal(t, 0, c.copies)
	assert.Equal(t, 3, b.Get(3).id)
	assert.Equal(t, -1, a.Get(3).id)
}

func TestCloneWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	c := &counters{}
	v := vector.New[counted]()
	for i := 0; i < 3; i++ {
		require.NoError(t, v.EmplaceBack(func() counted { return counted{id: i, c: c} }))
	}
	tr := alloc.Track[counted](nil)
	w, err := v.CloneWith(tr)
	require.NoError(t, err)
	assert.Same(t, tr, w.Allocator())
	assert.Equal(t, 1, tr.Stats().Allocations)
	assert.Equal(t, 3, tr.Stats().Constructs)
	assert.Equal(t, 3, c.copies)
	assert.Equal(t, 0, c.moves)
	for i := 0; i < 3; i++ {
		assert.Equal(t, i, v.Get(i).id, "original must be unchanged")
		assert.Equal(t, i, w.Get(i).id)
	}
	assert.NotSame(t, v.Front(), w.Front())
}

func TestAssignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	a, _ := vector.Of(1, 2, 3, 4)
	b, _ := vector.Of(9, 8)
	require.NoError(t, a.CopyFrom(b))
	assert.Equal(t, []int{9, 8}, ints(a))
	assert.Equal(t, []int{9, 8}, ints(b))

	require.NoError(t, a.Reset(5, 6, 7))
	assert.Equal(t, []int{5, 6, 7}, ints(a))

	require.NoError(t, a.MoveFrom(b))
	assert.Equal(t, []int{9, 8}, ints(a))
	assert.True(t, b.Empty())
	require.NoError(t, a.CopyFrom(a), "self-assignment is a no-op")
	assert.Equal(t, []int{9, 8}, ints(a))
}

func TestAssignReusesSlots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "contiguous.vector")
	defer teardown()
	//
	tr := alloc.Track[int](nil)
	v := vector.NewWithAllocator[int](tr)
	require.NoError(t, v.AssignValues(1, 2, 3, 4, 5))
	before := tr.Stats()
	require.NoError(t, v.Assign(2, 7))
	after := tr.Stats()
	assert.Equal(t, []int{7, 7}, ints(v))
	assert.Equal(t, 2, after.Constructs-before.Constructs)
	assert.Equal(t, 5, after.Destroys-before.Destroys, "two reused slots plus three surplus")
	assert.Equal(t, 2, after.LiveElements)

	require.NoError(t, v.AssignSlice(v.Data()), "assigning own elements must be safe")
	assert.Equal(t, []int{7, 7}, ints(v))

	seq := func(yield func(int) bool) {
		for i := 0; i < 3; i++ {
			if !yield(i) {
				return
			}
		}
	}
	require.NoError(t, v.AssignSeq(seq))
	assert.Equal(t, []int{0, 1, 2}, ints(v))
}
