package slotlist

import "testing"

func BenchmarkPushBack(b *testing.B) {
	const size = 4096
	l := New[uint64](size)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.Full() {
			l.Clear()
		}
		if _, err := l.PushBack(uint64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLRUChurn(b *testing.B) {
	const window = 1024
	l := New[uint64](window)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.Full() {
			if err := l.PopLast(); err != nil {
				b.Fatal(err)
			}
		}
		if _, err := l.PushFront(uint64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRemoveReinsert(b *testing.B) {
	const size = 1024
	l := New[uint64](size)
	for i := 0; i < size; i++ {
		if _, err := l.PushBack(uint64(i)); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := uint32(i % size)
		if err := l.RemoveAt(idx); err != nil {
			b.Fatal(err)
		}
		if _, err := l.InsertAfter(l.validTail, uint64(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	const size = 1024
	l := New[uint64](size)
	for i := 0; i < size; i++ {
		if _, err := l.PushBack(uint64(i)); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	var sum uint64
	for i := 0; i < b.N; i++ {
		for _, v := range l.All() {
			sum += v
		}
	}
	_ = sum
}
