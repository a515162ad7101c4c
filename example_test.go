package slotlist_test

import (
	"fmt"

	"github.com/hupe1980/slotlist"
)

// Example demonstrates basic ordered insertion and iteration.
func Example() {
	l := slotlist.New[string](4)

	idx, _ := l.PushBack("b")
	l.InsertBefore(idx, "a")
	l.InsertAfter(idx, "c")

	for i, v := range l.All() {
		fmt.Println(i, v)
	}
	// Output:
	// 1 a
	// 0 b
	// 2 c
}

// Example_lruWindow builds a fixed-size LRU sliding window on top of the
// list: newest at the head, evict from the tail when full. The eviction
// policy stays entirely on the caller's side.
func Example_lruWindow() {
	const capacity = 3
	l := slotlist.New[int](capacity)

	for v := 1; v <= 5; v++ {
		if l.Full() {
			l.PopLast()
		}
		l.PushFront(v)
	}

	for _, v := range l.All() {
		fmt.Println(v)
	}
	// Output:
	// 5
	// 4
	// 3
}

// Example_grow shows that growing preserves content and indices.
func Example_grow() {
	l := slotlist.New[int](2)
	first, _ := l.PushBack(10)
	l.PushBack(20)

	l.Grow(4)
	l.PushBack(30)

	v, _ := l.Get(first)
	fmt.Println("cap:", l.Cap(), "first:", v, "len:", l.Len())
	// Output:
	// cap: 4 first: 10 len: 3
}
