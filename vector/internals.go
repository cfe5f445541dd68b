package vector

import (
	"fmt"

	"github.com/npillmayer/contiguous/alloc"
)

// shiftUp moves the elements [at, length) of s up by n slots, tail first.
// Every vacated slot is destroyed after its element has been moved out.
// Capacity for length+n elements must have been ensured by the caller.
func (s *store[T]) shiftUp(at, n int) {
	for i := s.length - 1; i >= at; i-- {
		s.alloc.Construct(&s.block[i+n], alloc.MoveValue(&s.block[i]))
		s.alloc.Destroy(&s.block[i])
	}
}

// edit records an insertion or erasure at position at of a checked vector.
type edit struct {
	stamp uint64
	at    int
}

// modified records a change of the elements at positions at and above.
// Earlier records at or above at are subsumed by the new one, which keeps
// the positions of the records ascending.
func (s *store[T]) modified(at int) {
	s.stamp++
	i := len(s.edits)
	for i > 0 && s.edits[i-1].at >= at {
		i--
	}
	s.edits = append(s.edits[:i], edit{stamp: s.stamp, at: at})
}

// stale returns true if position index has been shifted by an insertion or
// erasure recorded after stamp.
func (s *store[T]) stale(stamp uint64, index int) bool {
	for i := len(s.edits) - 1; i >= 0 && s.edits[i].stamp > stamp; i-- {
		if s.edits[i].at <= index {
			return true
		}
	}
	return false
}

// renew invalidates every position handle into s. Called whenever the block
// is replaced.
func (s *store[T]) renew() {
	s.epoch++
	s.edits = s.edits[:0]
}

// index returns the offset of it in s, asserting that it is a position of s
// within [0, length].
func (s *store[T]) index(it Iterator[T], checked bool) int {
	if checked {
		assertThat(it.s == s, "position handle does not belong to this vector")
		assertThat(it.epoch == s.epoch, "position handle outlived a reallocation")
		assertThat(!s.stale(it.stamp, it.index), "position handle %d outlived an insertion or erasure", it.index)
	}
	assertThat(it.index >= 0 && it.index <= s.length,
		"position %d out of range [0,%d]", it.index, s.length)
	return it.index
}

// live asserts the invariants of s.
func (s *store[T]) live() bool {
	return (s.block == nil) == (len(s.block) == 0) &&
		s.length >= 0 && s.length <= len(s.block)
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
