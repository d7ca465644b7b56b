// Copyright 2023 Sneller Labs
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

// Package chunklist implements a random-access indexed sequence backed
// by a dynamically managed set of contiguous chunks rather than a
// single contiguous buffer, trading a small amount of indexing
// overhead for amortized O(1) append and sub-linear insert/remove at
// arbitrary positions in large sequences.
package chunklist

// List is a chunked indexed sequence of elements of type T. The zero
// value is not ready for use; construct one with New, NewWithCapacity,
// or NewTuned.
//
// List is a plain value type: it performs no internal synchronization
// and is not safe for concurrent mutation from multiple goroutines.
// See the syncedlist package for a lock-wrapped variant.
type List[T any] struct {
	tuning Tuning

	chunks     []*chunk[T]
	chunkStart []int
	chunkCap   []int
	chunkCount int

	size     int
	modCount int

	lastChunkHint int // -1 == no hint
	lastStartHint int

	fastMap []int
}

const noHint = -1

// New returns an empty List with the default tuning and an initial
// capacity hint of Tuning.DefaultCapacity.
func New[T any]() *List[T] {
	l, _ := NewTuned[T](DefaultTuning())
	return l
}

// NewWithCapacity returns an empty List with the default tuning,
// preallocated to hold at least capacityHint elements. A negative
// capacityHint is an illegal argument.
func NewWithCapacity[T any](capacityHint int) (*List[T], error) {
	if capacityHint < 0 {
		return nil, opErr("NewWithCapacity", ErrIllegalArgument)
	}
	t := DefaultTuning()
	t.DefaultCapacity = capacityHint
	return NewTuned[T](t)
}

// NewTuned returns an empty List governed by the given Tuning. It
// fails if the tuning is not internally consistent (non-positive
// chunk/step sizes, or a split threshold smaller than the base chunk
// size).
func NewTuned[T any](t Tuning) (*List[T], error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	l := &List[T]{
		tuning:        t,
		lastChunkHint: noHint,
	}
	if t.DefaultCapacity > 0 {
		l.reserveCapacity(t.DefaultCapacity)
	}
	return l, nil
}

// Size returns the number of elements currently stored.
func (l *List[T]) Size() int { return l.size }

// IsEmpty reports whether Size() == 0.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Stats exposes diagnostic counters useful for tests and
// observability; it is not part of the core algorithmic contract.
type Stats struct {
	ChunkCount int
	Size       int
	FastMapLen int
}

// Stats returns a snapshot of internal bookkeeping counters.
func (l *List[T]) Stats() Stats {
	return Stats{
		ChunkCount: l.chunkCount,
		Size:       l.size,
		FastMapLen: len(l.fastMap),
	}
}

// Get returns the element at logical index i. It requires
// 0 <= i < Size().
func (l *List[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, indexErr("Get", i)
	}
	c, off, err := l.locate(i)
	if err != nil {
		return zero, err
	}
	return l.chunks[c].slots[off], nil
}

// Set overwrites the element at logical index i and returns the
// previously stored value. It requires 0 <= i < Size() and does not
// touch modCount: it is an element mutation, not a structural one.
func (l *List[T]) Set(i int, e T) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, indexErr("Set", i)
	}
	c, off, err := l.locate(i)
	if err != nil {
		return zero, err
	}
	old := l.chunks[c].slots[off]
	l.chunks[c].slots[off] = e
	return old, nil
}

// ForEach applies f to every element in index order.
func (l *List[T]) ForEach(f func(T)) {
	for ci := 0; ci < l.chunkCount; ci++ {
		c := l.chunks[ci]
		for off := 0; off < c.used; off++ {
			f(c.slots[off])
		}
	}
}

// ReserveCapacity ensures the total capacity across chunks is at
// least n by growing or adding chunks as needed. It never shrinks
// capacity or affects Size.
func (l *List[T]) ReserveCapacity(n int) error {
	if n < 0 {
		return opErr("ReserveCapacity", ErrIllegalArgument)
	}
	l.reserveCapacity(n)
	return nil
}

func (l *List[T]) reserveCapacity(n int) {
	total := l.totalCapacity()
	if total >= n {
		return
	}
	need := n - total
	if l.chunkCount == 0 {
		l.insertChunkAt(0, newChunk[T](need, l.tuning.BaseChunk))
		return
	}
	last := l.chunks[l.chunkCount-1]
	last.grow(need)
	l.chunkCap[l.chunkCount-1] = last.capacity()
}

func (l *List[T]) totalCapacity() int {
	total := 0
	for _, c := range l.chunkCap[:l.chunkCount] {
		total += c
	}
	return total
}

// Clone returns a List with an independent chunk table and metadata
// (deep in structure) whose element slots hold the same values as the
// receiver (shallow in elements: if T is a reference type, the
// reference itself is copied, not what it points to).
func (l *List[T]) Clone() *List[T] {
	clone := &List[T]{
		tuning:        l.tuning,
		chunkCount:    l.chunkCount,
		size:          l.size,
		lastChunkHint: noHint,
	}
	clone.chunks = make([]*chunk[T], l.chunkCount)
	clone.chunkStart = make([]int, l.chunkCount)
	clone.chunkCap = make([]int, l.chunkCount)
	for i := 0; i < l.chunkCount; i++ {
		src := l.chunks[i]
		nc := &chunk[T]{slots: make([]T, len(src.slots)), used: src.used}
		copy(nc.slots, src.slots)
		clone.chunks[i] = nc
		clone.chunkStart[i] = l.chunkStart[i]
		clone.chunkCap[i] = l.chunkCap[i]
	}
	clone.fastMap = make([]int, len(l.fastMap))
	copy(clone.fastMap, l.fastMap)
	return clone
}

// Equal reports whether l and other have the same Size and every
// index-aligned pair of elements satisfies eq.
func (l *List[T]) Equal(other *List[T], eq func(a, b T) bool) bool {
	if l.size != other.size {
		return false
	}
	for i := 0; i < l.size; i++ {
		a, err := l.Get(i)
		if err != nil {
			return false
		}
		b, err := other.Get(i)
		if err != nil {
			return false
		}
		if !eq(a, b) {
			return false
		}
	}
	return true
}
