package slotlist

import "iter"

// All returns an iterator over (index, value) pairs in list order, from
// head to tail. The walk is live: it reflects the list at the time each
// step is taken, and mutating the list mid-walk is undefined behavior.
// Call All again to restart from the head.
func (l *List[T]) All() iter.Seq2[uint32, T] {
	return func(yield func(uint32, T) bool) {
		for idx := l.validHead; idx != Sentinel; {
			s := &l.slots[idx]
			if !yield(idx, s.data) {
				return
			}
			idx = s.next
		}
	}
}

// Indexes returns an iterator over the occupied indices in list order,
// for callers that resolve values lazily via Get. Same walk discipline
// as All.
func (l *List[T]) Indexes() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for idx := l.validHead; idx != Sentinel; idx = l.slots[idx].next {
			if !yield(idx) {
				return
			}
		}
	}
}
