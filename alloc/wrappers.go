package alloc

// --- Limited ---------------------------------------------------------------

// Limited is an allocator with a quota of outstanding slots. Requests which would
// exceed the quota fail with ErrExhausted; everything else is delegated.
//
// Use it like this:
//
//	a := alloc.Limit[int](alloc.Default[int](), 2048)
//	v := vector.NewWithAllocator[int](a)
type Limited[T any] struct {
	inner       Allocator[T]
	quota       int
	outstanding int
}

// Limit wraps inner with a quota of slots. A nil inner selects the System allocator.
func Limit[T any](inner Allocator[T], quota int) *Limited[T] {
	if inner == nil {
		inner = Default[T]()
	}
	return &Limited[T]{inner: inner, quota: quota}
}

// Allocate delegates to the wrapped allocator if the quota permits.
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n > l.quota-l.outstanding {
		return nil, failed("allocate", n, ErrExhausted)
	}
	block, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.outstanding += len(block)
	return block, nil
}

// Deallocate returns the block's slots to the quota.
func (l *Limited[T]) Deallocate(block []T) {
	l.outstanding -= len(block)
	l.inner.Deallocate(block)
}

func (l *Limited[T]) Construct(slot *T, value T) { l.inner.Construct(slot, value) }
func (l *Limited[T]) Destroy(slot *T)            { l.inner.Destroy(slot) }

// Outstanding returns the number of slots currently handed out.
func (l *Limited[T]) Outstanding() int {
	return l.outstanding
}

// SetQuota changes the quota. Blocks already handed out are not affected.
func (l *Limited[T]) SetQuota(quota int) {
	l.quota = quota
}

// --- Tracking --------------------------------------------------------------

// Stats holds the counters of a Tracking allocator.
type Stats struct {
	Allocations   int // successful calls to Allocate
	Deallocations int // calls to Deallocate
	Constructs    int // calls to Construct
	Destroys      int // calls to Destroy
	LiveSlots     int // slots allocated but not yet deallocated
	LiveElements  int // constructed but not yet destroyed
}

// Tracking counts every allocator operation and checks that blocks are released
// exactly once. Tracking allocators are compatible with themselves only.
type Tracking[T any] struct {
	inner  Allocator[T]
	stats  Stats
	blocks map[*T]int
	err    error
}

// Track wraps inner with instrumentation. A nil inner selects the System allocator.
func Track[T any](inner Allocator[T]) *Tracking[T] {
	if inner == nil {
		inner = Default[T]()
	}
	return &Tracking[T]{
		inner:  inner,
		blocks: make(map[*T]int),
	}
}

func (t *Tracking[T]) Allocate(n int) ([]T, error) {
	block, err := t.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	t.stats.Allocations++
	if len(block) > 0 {
		t.blocks[&block[0]] = len(block)
		t.stats.LiveSlots += len(block)
	}
	return block, nil
}

func (t *Tracking[T]) Deallocate(block []T) {
	t.stats.Deallocations++
	if len(block) > 0 {
		n, ok := t.blocks[&block[0]]
		if !ok || n != len(block) {
			t.fail(failed("deallocate", len(block), ErrBadBlock))
			return
		}
		delete(t.blocks, &block[0])
		t.stats.LiveSlots -= n
	}
	t.inner.Deallocate(block)
}

func (t *Tracking[T]) Construct(slot *T, value T) {
	t.stats.Constructs++
	t.stats.LiveElements++
	t.inner.Construct(slot, value)
}

func (t *Tracking[T]) Destroy(slot *T) {
	t.stats.Destroys++
	t.stats.LiveElements--
	t.inner.Destroy(slot)
}

// Stats returns a snapshot of the counters.
func (t *Tracking[T]) Stats() Stats {
	return t.stats
}

// Err returns the first misuse detected, if any.
func (t *Tracking[T]) Err() error {
	return t.err
}

// Blocks returns the number of blocks currently handed out.
func (t *Tracking[T]) Blocks() int {
	return len(t.blocks)
}

func (t *Tracking[T]) fail(err error) {
	if t.err == nil {
		t.err = err
	}
}

var _ Allocator[int] = &Limited[int]{}
var _ Allocator[int] = &Tracking[int]{}
