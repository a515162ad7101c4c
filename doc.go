// Package slotlist provides a fixed-capacity, growable slot arena that
// implements an intrusive doubly-linked list addressed by stable integer
// indices instead of pointers.
//
// All slots live in one contiguous backing array. Occupied slots are
// threaded into an ordered "valid" list via prev/next indices; unoccupied
// slots form a LIFO free stack for O(1) reuse. No allocation happens per
// operation — only construction and Grow touch the allocator. This makes
// the list a good backing store for LRU caches, ordered worklists, and any
// structure that needs pointer-like linkage with value semantics.
//
// # Quick Start
//
//	l := slotlist.New[string](8)
//	idx, _ := l.PushBack("a")
//	l.InsertAfter(idx, "b")
//	for i, v := range l.All() {
//	    fmt.Println(i, v)
//	}
//
// # Indices
//
// Every insertion returns the index of the new element. Indices are stable
// for the lifetime of the element: they survive insertions, removals of
// other elements, and Grow. The exported Sentinel constant is the "no
// index" value; accessors hide it by returning an ok bool instead.
//
// # Concurrency Model
//
// A List is single-threaded by design: no internal synchronization, no
// atomics. Callers that share a List across goroutines must serialize
// access externally. Iterators returned by All and Indexes walk the live
// structure; mutating the list during a walk is undefined behavior.
package slotlist
