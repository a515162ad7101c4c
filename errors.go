package slotlist

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned by insertion operations when the free list is
	// exhausted. Grow the list or remove elements to make room.
	ErrFull = errors.New("slotlist: list is full")

	// ErrEmpty is returned by PopLast when the list holds no elements.
	ErrEmpty = errors.New("slotlist: list is empty")

	// ErrInvalidIndex is the sentinel matched via errors.Is by
	// *InvalidIndexError values.
	ErrInvalidIndex = errors.New("slotlist: invalid index")

	// ErrGrowSize is the sentinel matched via errors.Is by *GrowSizeError
	// values.
	ErrGrowSize = errors.New("slotlist: invalid grow size")
)

// InvalidIndexError indicates an index that is out of range or addresses a
// slot that holds no element.
type InvalidIndexError struct {
	Index    uint32
	Capacity uint32
}

func (e *InvalidIndexError) Error() string {
	if e.Index >= e.Capacity {
		return fmt.Sprintf("slotlist: index %d out of range (capacity %d)", e.Index, e.Capacity)
	}
	return fmt.Sprintf("slotlist: index %d is not occupied", e.Index)
}

// Is reports a match against ErrInvalidIndex.
func (e *InvalidIndexError) Is(target error) bool { return target == ErrInvalidIndex }

// GrowSizeError indicates a Grow target that does not exceed the current
// capacity or that reaches the Sentinel value.
type GrowSizeError struct {
	Requested uint32
	Current   uint32
}

func (e *GrowSizeError) Error() string {
	if e.Requested >= Sentinel {
		return fmt.Sprintf("slotlist: grow target %d reaches sentinel", e.Requested)
	}
	return fmt.Sprintf("slotlist: grow target %d does not exceed capacity %d", e.Requested, e.Current)
}

// Is reports a match against ErrGrowSize.
func (e *GrowSizeError) Is(target error) bool { return target == ErrGrowSize }
