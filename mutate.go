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

package chunklist

import "sort"

// Append adds e to the end of the list. It is amortized O(1): a new
// chunk is allocated only when the current tail chunk is full.
func (l *List[T]) Append(e T) {
	if l.chunkCount == 0 {
		l.insertChunkAt(0, newChunk[T](l.tuning.BaseChunk, l.tuning.BaseChunk))
	}
	last := l.chunkCount - 1
	ch := l.chunks[last]
	if ch.used == ch.capacity() {
		fresh := newChunk[T](l.tuning.BaseChunk, l.tuning.BaseChunk)
		l.insertChunkAt(last+1, fresh)
		last++
		ch = l.chunks[last]
	}
	ch.slots[ch.used] = e
	ch.used++
	l.size++
	l.modCount++
	l.setHint(last)
}

// Insert places e at logical index i, shifting elements at and after
// i one position to the right. It requires 0 <= i <= Size().
func (l *List[T]) Insert(i int, e T) error {
	if i < 0 || i > l.size {
		return indexErr("Insert", i)
	}
	if i == l.size {
		l.Append(e)
		return nil
	}

	c, off, err := l.locate(i)
	if err != nil {
		return err
	}
	if off == l.chunks[c].used && c+1 < l.chunkCount {
		c, off = c+1, 0
	}

	ch := l.chunks[c]
	if ch.used == ch.capacity() {
		grow := l.tuning.BaseChunk / 4
		if grow < 1 {
			grow = 1
		}
		ch.grow(grow)
		l.chunkCap[c] = ch.capacity()
		if ch.capacity() >= l.tuning.SplitThreshold && ch.used >= l.tuning.BaseChunk {
			l.split(c)
			l.recomputeStartsFrom(c)
			c, off, err = l.locate(i)
			if err != nil {
				return err
			}
		}
	}

	ch = l.chunks[c]
	copy(ch.slots[off+1:ch.used+1], ch.slots[off:ch.used])
	ch.slots[off] = e
	ch.used++
	l.size++
	l.modCount++
	l.clearHint()
	l.recomputeStartsFrom(c)
	return nil
}

// Remove deletes and returns the element at logical index i, shifting
// elements after i one position to the left. It requires
// 0 <= i < Size().
func (l *List[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, indexErr("Remove", i)
	}
	c, off, err := l.locate(i)
	if err != nil {
		return zero, err
	}
	ch := l.chunks[c]
	val := ch.slots[off]
	copy(ch.slots[off:ch.used-1], ch.slots[off+1:ch.used])
	ch.clearTail(ch.used - 1)
	ch.used--
	l.size--
	l.modCount++
	l.clearHint()

	switch {
	case ch.used == 0 && l.chunkCount > 1:
		l.removeChunkAt(c)
	case ch.capacity() > l.tuning.BaseChunk && ch.used < ch.capacity()/4 && l.chunkCount > 1:
		l.normalize(c)
	default:
		l.recomputeStartsFrom(c)
	}
	return val, nil
}

// Clear removes all elements, releasing every chunk reference.
func (l *List[T]) Clear() {
	for i := range l.chunks {
		l.chunks[i] = nil
	}
	l.chunks = l.chunks[:0]
	l.chunkStart = l.chunkStart[:0]
	l.chunkCap = l.chunkCap[:0]
	l.chunkCount = 0
	l.size = 0
	l.modCount++
	l.clearHint()
}

// ReplaceAll overwrites every element in place with f(element). A
// structural mutation observed re-entrantly through f (e.g. f calls
// back into the list and inserts or removes) fails the whole operation
// with a *StructuralConflictError; no partial result is distinguished
// from a full one in that case. On success, modCount is bumped once to
// mark the wholesale content change, so an iterator created before
// ReplaceAll fails with a *StructuralConflictError on its next call
// (see DESIGN.md for the rationale carried over from the reference
// design).
func (l *List[T]) ReplaceAll(f func(T) T) error {
	snapshot := l.modCount
	for ci := 0; ci < l.chunkCount; ci++ {
		ch := l.chunks[ci]
		for off := 0; off < ch.used; off++ {
			ch.slots[off] = f(ch.slots[off])
			if l.modCount != snapshot {
				return &StructuralConflictError{Op: "ReplaceAll"}
			}
		}
	}
	l.modCount++
	return nil
}

// RemoveIf removes every element for which p returns true, preserving
// the relative order of survivors, and returns the number removed. It
// runs in two passes: a marking pass (failing atomically if a
// structural mutation is observed re-entrantly through p) followed by
// a compaction pass. No partial compaction occurs if the marking pass
// fails.
func (l *List[T]) RemoveIf(p func(T) bool) (int, error) {
	snapshot := l.modCount
	marked := make([]bool, l.size)
	idx := 0
	for ci := 0; ci < l.chunkCount; ci++ {
		ch := l.chunks[ci]
		for off := 0; off < ch.used; off++ {
			if p(ch.slots[off]) {
				marked[idx] = true
			}
			idx++
			if l.modCount != snapshot {
				return 0, &StructuralConflictError{Op: "RemoveIf"}
			}
		}
	}

	w := 0
	for r := 0; r < l.size; r++ {
		if marked[r] {
			continue
		}
		if w != r {
			v, err := l.Get(r)
			if err != nil {
				return 0, err
			}
			if _, err := l.Set(w, v); err != nil {
				return 0, err
			}
		}
		w++
	}
	removed := 0
	for l.size > w {
		if _, err := l.Remove(l.size - 1); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// Sort reorders all elements according to less, extracting them into
// a contiguous scratch buffer, sorting the buffer, and writing it back
// chunk by chunk so each chunk's used count is preserved.
func (l *List[T]) Sort(less func(a, b T) bool) {
	scratch := make([]T, l.size)
	idx := 0
	for ci := 0; ci < l.chunkCount; ci++ {
		ch := l.chunks[ci]
		copy(scratch[idx:idx+ch.used], ch.slots[:ch.used])
		idx += ch.used
	}
	sort.Slice(scratch, func(i, j int) bool { return less(scratch[i], scratch[j]) })
	idx = 0
	for ci := 0; ci < l.chunkCount; ci++ {
		ch := l.chunks[ci]
		copy(ch.slots[:ch.used], scratch[idx:idx+ch.used])
		idx += ch.used
	}
	l.modCount++
	l.clearHint()
}
