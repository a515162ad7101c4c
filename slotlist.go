package slotlist

import (
	"fmt"
	"math"
)

// Sentinel is the "no index" value. It terminates both the valid list and
// the free stack, and bounds the largest legal capacity: every capacity
// passed to New or Grow must be strictly below it.
const Sentinel uint32 = math.MaxUint32

// slot is one arena cell. A slot is always a member of exactly one of the
// two lists: the valid list when occupied, the free stack otherwise. The
// self field mirrors the slot's physical position and is set once at
// construction or Grow; it is checked on every addressed operation.
type slot[T any] struct {
	data     T
	prev     uint32
	next     uint32
	self     uint32
	occupied bool
}

// Stats tracks cumulative operation counters for a List.
//
// Counters are historical: Clear does not reset them.
type Stats struct {
	Inserts uint64 // successful insertions
	Removes uint64 // successful removals
	Updates uint64 // successful in-place updates
	Grows   uint64 // successful capacity growths
	PeakLen uint32 // high-water mark of Len
}

// List is a slot arena threading its occupied slots into an ordered doubly
// linked list. Elements are addressed by the stable uint32 index returned
// at insertion. The zero value is not usable; construct with New.
type List[T any] struct {
	capacity  uint32
	freeHead  uint32
	validHead uint32
	validTail uint32
	length    uint32
	slots     []slot[T]
	stats     Stats
}

// New creates a List with the given initial capacity. A capacity of 0 is
// coerced to 1. New panics if capacity reaches Sentinel; that is a misuse
// of constants, not an operational condition.
func New[T any](capacity uint32) *List[T] {
	if capacity >= Sentinel {
		panic(fmt.Sprintf("slotlist: capacity %d reaches sentinel", capacity))
	}
	if capacity < 1 {
		capacity = 1
	}

	l := &List[T]{
		capacity: capacity,
		slots:    make([]slot[T], capacity),
	}
	l.reset()

	return l
}

// Clear returns every slot to the free stack without reallocating the
// backing array. Previously held values become unreachable but are not
// zeroed.
func (l *List[T]) Clear() {
	l.reset()
}

// reset chains all slots into an ascending free stack and empties the
// valid list.
func (l *List[T]) reset() {
	for i := range l.slots {
		idx := uint32(i) //nolint:gosec // len(slots) < Sentinel
		l.slots[i].prev = idx - 1
		l.slots[i].next = idx + 1
		l.slots[i].self = idx
		l.slots[i].occupied = false
	}
	l.slots[0].prev = Sentinel
	l.slots[l.capacity-1].next = Sentinel

	l.freeHead = 0
	l.validHead = Sentinel
	l.validTail = Sentinel
	l.length = 0
}

// Len returns the number of elements currently held.
func (l *List[T]) Len() uint32 { return l.length }

// Cap returns the current slot capacity.
func (l *List[T]) Cap() uint32 { return l.capacity }

// Full returns true if no free slot remains.
func (l *List[T]) Full() bool { return l.length == l.capacity }

// Empty returns true if the list holds no elements.
func (l *List[T]) Empty() bool { return l.length == 0 }

// Stats returns the cumulative operation counters.
func (l *List[T]) Stats() Stats { return l.stats }

// Head returns the value at the front of the list.
func (l *List[T]) Head() (T, bool) {
	if l.validHead == Sentinel {
		var zero T
		return zero, false
	}
	return l.slots[l.validHead].data, true
}

// Tail returns the value at the back of the list.
func (l *List[T]) Tail() (T, bool) {
	if l.validTail == Sentinel {
		var zero T
		return zero, false
	}
	return l.slots[l.validTail].data, true
}

// HeadIndex returns the index of the front element.
func (l *List[T]) HeadIndex() (uint32, bool) {
	if l.validHead == Sentinel {
		return 0, false
	}
	return l.validHead, true
}

// TailIndex returns the index of the back element.
func (l *List[T]) TailIndex() (uint32, bool) {
	if l.validTail == Sentinel {
		return 0, false
	}
	return l.validTail, true
}

// Get returns the value at the given index. It returns false if the index
// is out of range or the slot holds no element.
func (l *List[T]) Get(index uint32) (T, bool) {
	if index >= l.capacity || !l.slots[index].occupied {
		var zero T
		return zero, false
	}
	return l.slots[index].data, true
}

// Prev returns the index of the element preceding index in the valid
// list. It returns false if index is invalid or the element is the head.
func (l *List[T]) Prev(index uint32) (uint32, bool) {
	if index >= l.capacity {
		return 0, false
	}
	s := &l.slots[index]
	if !s.occupied || s.prev == Sentinel {
		return 0, false
	}
	return s.prev, true
}

// Next returns the index of the element following index in the valid
// list. It returns false if index is invalid or the element is the tail.
func (l *List[T]) Next(index uint32) (uint32, bool) {
	if index >= l.capacity {
		return 0, false
	}
	s := &l.slots[index]
	if !s.occupied || s.next == Sentinel {
		return 0, false
	}
	return s.next, true
}

// slotAt resolves an addressed slot and verifies its self index. A
// mismatch means the arena's invariants were corrupted by a bug;
// continuing would risk silent data corruption, so it panics.
func (l *List[T]) slotAt(index uint32) *slot[T] {
	s := &l.slots[index]
	if s.self != index {
		panic(fmt.Sprintf("slotlist: slot %d self-index mismatch (%d)", index, s.self))
	}
	return s
}

// InsertBefore inserts v immediately before the element at index and
// returns the new element's index. The target must be occupied.
func (l *List[T]) InsertBefore(index uint32, v T) (uint32, error) {
	if index >= l.capacity {
		return 0, &InvalidIndexError{Index: index, Capacity: l.capacity}
	}

	target := l.slotAt(index)
	if !target.occupied {
		return 0, &InvalidIndexError{Index: index, Capacity: l.capacity}
	}
	targetPrev := target.prev

	free := l.consume()
	if free == Sentinel {
		return 0, ErrFull
	}

	if l.validHead == index {
		l.validHead = free
	} else {
		l.slots[targetPrev].next = free
	}
	l.slots[free].prev = targetPrev
	l.slots[free].next = index
	l.slots[free].data = v
	l.slots[index].prev = free

	return free, nil
}

// InsertAfter inserts v immediately after the element at index and
// returns the new element's index. The target must be occupied.
func (l *List[T]) InsertAfter(index uint32, v T) (uint32, error) {
	if index >= l.capacity {
		return 0, &InvalidIndexError{Index: index, Capacity: l.capacity}
	}

	target := l.slotAt(index)
	if !target.occupied {
		return 0, &InvalidIndexError{Index: index, Capacity: l.capacity}
	}
	targetNext := target.next

	free := l.consume()
	if free == Sentinel {
		return 0, ErrFull
	}

	if l.validTail == index {
		l.validTail = free
	} else {
		l.slots[targetNext].prev = free
	}
	l.slots[free].prev = index
	l.slots[free].next = targetNext
	l.slots[free].data = v
	l.slots[index].next = free

	return free, nil
}

// PushBack appends v at the tail and returns the new element's index.
func (l *List[T]) PushBack(v T) (uint32, error) {
	if l.validTail != Sentinel {
		return l.InsertAfter(l.validTail, v)
	}

	free := l.consume()
	if free == Sentinel {
		return 0, ErrFull
	}
	l.slots[free].prev = Sentinel
	l.slots[free].data = v
	l.validHead = free
	l.validTail = free

	return free, nil
}

// PushFront prepends v at the head and returns the new element's index.
func (l *List[T]) PushFront(v T) (uint32, error) {
	if l.validHead == Sentinel {
		return l.PushBack(v)
	}

	free := l.consume()
	if free == Sentinel {
		return 0, ErrFull
	}
	l.slots[free].prev = Sentinel
	l.slots[free].next = l.validHead
	l.slots[free].data = v
	l.slots[l.validHead].prev = free
	l.validHead = free

	return free, nil
}

// RemoveAt removes the element at index and returns its slot to the free
// stack. The element's neighbors are relinked; no other index changes.
func (l *List[T]) RemoveAt(index uint32) error {
	if index >= l.capacity {
		return &InvalidIndexError{Index: index, Capacity: l.capacity}
	}

	target := l.slotAt(index)
	if !target.occupied {
		return &InvalidIndexError{Index: index, Capacity: l.capacity}
	}

	if l.validHead == index {
		l.validHead = target.next
	}
	if l.validTail == index {
		l.validTail = target.prev
	}
	l.recycle(index)

	return nil
}

// PopLast removes the tail element. It returns ErrEmpty if the list holds
// no elements.
func (l *List[T]) PopLast() error {
	if l.validTail == Sentinel {
		return ErrEmpty
	}
	return l.RemoveAt(l.validTail)
}

// UpdateAt replaces the value at index in place. Linkage and counts are
// untouched.
func (l *List[T]) UpdateAt(index uint32, v T) error {
	if index >= l.capacity {
		return &InvalidIndexError{Index: index, Capacity: l.capacity}
	}

	target := l.slotAt(index)
	if !target.occupied {
		return &InvalidIndexError{Index: index, Capacity: l.capacity}
	}
	target.data = v
	l.stats.Updates++

	return nil
}

// Grow raises the capacity to newCapacity. Existing indices, the valid
// list and the free stack are preserved; the new slots are chained in
// ascending order and pushed in front of the existing free stack, so the
// next insertion uses the first new index. There is no shrink operation.
func (l *List[T]) Grow(newCapacity uint32) error {
	if newCapacity <= l.capacity || newCapacity >= Sentinel {
		return &GrowSizeError{Requested: newCapacity, Current: l.capacity}
	}

	grown := make([]slot[T], newCapacity)
	copy(grown, l.slots)

	for i := l.capacity; i < newCapacity; i++ {
		grown[i].prev = i - 1
		grown[i].next = i + 1
		grown[i].self = i
	}
	grown[l.capacity].prev = Sentinel
	grown[newCapacity-1].next = l.freeHead

	l.slots = grown
	l.freeHead = l.capacity
	l.capacity = newCapacity
	l.stats.Grows++

	return nil
}

// consume pops one slot off the free stack and marks it occupied. It
// returns Sentinel if no slot is available. The slot's next is cleared;
// its prev is already Sentinel (free stack heads never carry a backward
// link) and is overwritten by the caller during splicing anyway.
func (l *List[T]) consume() uint32 {
	if l.freeHead == Sentinel {
		return Sentinel
	}

	free := l.freeHead
	l.freeHead = l.slots[free].next
	if l.freeHead != Sentinel {
		l.slots[l.freeHead].prev = Sentinel
	}

	l.slots[free].next = Sentinel
	l.slots[free].occupied = true
	l.length++

	l.stats.Inserts++
	if l.length > l.stats.PeakLen {
		l.stats.PeakLen = l.length
	}

	return free
}

// recycle unlinks an occupied slot from the valid list by repairing its
// neighbors and pushes it onto the free stack. The old free head's prev is
// pointed back at the recycled slot for symmetry even though free-stack
// traversal only ever follows next.
func (l *List[T]) recycle(index uint32) {
	prev := l.slots[index].prev
	next := l.slots[index].next

	if prev != Sentinel {
		l.slots[prev].next = next
	}
	if next != Sentinel {
		l.slots[next].prev = prev
	}

	l.slots[index].prev = Sentinel
	l.slots[index].next = l.freeHead
	l.slots[index].occupied = false

	if l.freeHead != Sentinel {
		l.slots[l.freeHead].prev = index
	}
	l.freeHead = index
	l.length--
	l.stats.Removes++
}
