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

// recomputeStartsFrom walks the chunk table from c0 to the end,
// refreshing chunkStart and chunkCap from each chunk's actual state,
// then repairs the fast-map to match. Every mutator that changes a
// chunk's used count or the table's shape must call this (directly or
// via insertChunkAt/removeChunkAt) before returning to the caller; the
// one exception is Append into the existing tail chunk, which moves no
// chunk's start and leaves the fast-map unextended.
func (l *List[T]) recomputeStartsFrom(c0 int) {
	if c0 < 0 {
		c0 = 0
	}
	for c := c0; c < l.chunkCount; c++ {
		if c == 0 {
			l.chunkStart[c] = 0
		} else {
			l.chunkStart[c] = l.chunkStart[c-1] + l.chunks[c-1].used
		}
		l.chunkCap[c] = l.chunks[c].capacity()
	}
	l.repairFastMap(c0)
}

// repairFastMap grows the fast-map if needed and refreshes its
// entries from chunk c0 onward. It is the only place fastMap is
// written.
func (l *List[T]) repairFastMap(c0 int) {
	step := l.tuning.Step
	needed := (l.size + step - 1) / step
	if needed < 1 {
		needed = 1
	}
	if len(l.fastMap) < needed {
		grown := 2 * len(l.fastMap)
		if grown < needed {
			grown = needed
		}
		fresh := make([]int, grown)
		copy(fresh, l.fastMap)
		l.fastMap = fresh
	}

	first := 0
	if c0 > 0 && c0 < l.chunkCount {
		first = l.chunkStart[c0] / step
	}
	if first >= needed {
		return
	}

	c := 0
	if first > 0 {
		// start the cursor from the previous entry's chunk, since
		// chunk c0's own start may fall before k*step for the first
		// few k values we need to (re)write.
		c = l.fastMap[first-1]
		if c >= l.chunkCount {
			c = l.chunkCount - 1
		}
		if c < 0 {
			c = 0
		}
	}
	for k := first; k < needed; k++ {
		target := k * step
		for c+1 < l.chunkCount && l.chunkStart[c+1] <= target {
			c++
		}
		l.fastMap[k] = c
	}
}

// insertChunkAt shifts the tail of the chunk table right by one slot,
// places chunk at position c, and repairs metadata from c onward.
func (l *List[T]) insertChunkAt(c int, ch *chunk[T]) {
	l.chunks = append(l.chunks, nil)
	l.chunkStart = append(l.chunkStart, 0)
	l.chunkCap = append(l.chunkCap, 0)
	copy(l.chunks[c+1:], l.chunks[c:l.chunkCount])
	copy(l.chunkStart[c+1:], l.chunkStart[c:l.chunkCount])
	copy(l.chunkCap[c+1:], l.chunkCap[c:l.chunkCount])
	l.chunks[c] = ch
	l.chunkCount++
	l.recomputeStartsFrom(c)
}

// removeChunkAt shifts the tail of the chunk table left by one slot,
// clearing the chunk's ownership reference, and repairs metadata from
// c onward.
func (l *List[T]) removeChunkAt(c int) {
	copy(l.chunks[c:], l.chunks[c+1:l.chunkCount])
	copy(l.chunkStart[c:], l.chunkStart[c+1:l.chunkCount])
	copy(l.chunkCap[c:], l.chunkCap[c+1:l.chunkCount])
	l.chunkCount--
	l.chunks[l.chunkCount] = nil
	l.chunks = l.chunks[:l.chunkCount]
	l.chunkStart = l.chunkStart[:l.chunkCount]
	l.chunkCap = l.chunkCap[:l.chunkCount]
	from := c
	if from > l.chunkCount {
		from = l.chunkCount
	}
	l.recomputeStartsFrom(from)
}
