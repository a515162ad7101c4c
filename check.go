package slotlist

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Check performs a full structural validation of the list: exclusive
// valid/free membership, walked lengths against Len and Cap, the
// forward/backward mirror of the valid list, self-index integrity, and
// head/tail coherence. It is O(capacity) and meant for tests and for
// debug assertions in structures embedding the list; the hot path never
// calls it.
func (l *List[T]) Check() error {
	if (l.validHead == Sentinel) != (l.length == 0) {
		return fmt.Errorf("slotlist: head %d inconsistent with length %d", l.validHead, l.length)
	}
	if (l.validTail == Sentinel) != (l.length == 0) {
		return fmt.Errorf("slotlist: tail %d inconsistent with length %d", l.validTail, l.length)
	}

	valid := roaring.New()
	prev := Sentinel
	idx := l.validHead
	for idx != Sentinel {
		if idx >= l.capacity {
			return fmt.Errorf("slotlist: valid link %d out of range (capacity %d)", idx, l.capacity)
		}
		if valid.Contains(idx) {
			return fmt.Errorf("slotlist: valid list cycles at %d", idx)
		}
		s := &l.slots[idx]
		if s.self != idx {
			return fmt.Errorf("slotlist: slot %d self-index mismatch (%d)", idx, s.self)
		}
		if !s.occupied {
			return fmt.Errorf("slotlist: valid list reaches unoccupied slot %d", idx)
		}
		if s.prev != prev {
			return fmt.Errorf("slotlist: slot %d prev is %d, expected %d", idx, s.prev, prev)
		}
		valid.Add(idx)
		prev = idx
		idx = s.next
	}
	if prev != l.validTail {
		return fmt.Errorf("slotlist: forward walk ends at %d, tail is %d", prev, l.validTail)
	}
	if valid.GetCardinality() != uint64(l.length) {
		return fmt.Errorf("slotlist: walked %d valid slots, length is %d", valid.GetCardinality(), l.length)
	}

	free := roaring.New()
	idx = l.freeHead
	for idx != Sentinel {
		if idx >= l.capacity {
			return fmt.Errorf("slotlist: free link %d out of range (capacity %d)", idx, l.capacity)
		}
		if free.Contains(idx) {
			return fmt.Errorf("slotlist: free stack cycles at %d", idx)
		}
		s := &l.slots[idx]
		if s.self != idx {
			return fmt.Errorf("slotlist: slot %d self-index mismatch (%d)", idx, s.self)
		}
		if s.occupied {
			return fmt.Errorf("slotlist: free stack reaches occupied slot %d", idx)
		}
		if valid.Contains(idx) {
			return fmt.Errorf("slotlist: slot %d is on both lists", idx)
		}
		free.Add(idx)
		idx = s.next
	}

	if total := valid.GetCardinality() + free.GetCardinality(); total != uint64(l.capacity) {
		return fmt.Errorf("slotlist: %d slots reachable, capacity is %d", total, l.capacity)
	}

	return nil
}
