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

// split divides an oversized, densely used chunk c into two chunks,
// preserving BASE_CHUNK-scale per-chunk memory going forward.
// Precondition: chunk[c].capacity() >= SplitThreshold and
// chunk[c].used >= BaseChunk. The caller is responsible for calling
// recomputeStartsFrom afterward.
func (l *List[T]) split(c int) {
	src := l.chunks[c]
	h := src.used / 2
	fresh := newChunk[T](l.tuning.BaseChunk, l.tuning.BaseChunk)
	fresh.used = src.used - h
	copy(fresh.slots, src.slots[h:src.used])
	src.clearTail(h)
	src.used = h

	if src.capacity() > (l.tuning.BaseChunk*3)/2 {
		l.normalizeInPlace(c)
	}

	l.insertChunkAtNoRepair(c+1, fresh)
}

// normalize replaces an oversized, sparsely used chunk with a fresh
// standard-sized one (larger only when it holds more than BaseChunk
// elements), bounding steady-state per-chunk memory.
// Precondition: chunk[c].capacity() > BaseChunk.
func (l *List[T]) normalize(c int) {
	l.normalizeInPlace(c)
	l.recomputeStartsFrom(c)
}

func (l *List[T]) normalizeInPlace(c int) {
	src := l.chunks[c]
	fresh := newChunk[T](src.used, l.tuning.BaseChunk)
	fresh.used = src.used
	copy(fresh.slots, src.slots[:src.used])
	l.chunks[c] = fresh
	l.chunkCap[c] = fresh.capacity()
}

// insertChunkAtNoRepair is identical to insertChunkAt except it does
// not itself trigger recomputeStartsFrom; used by split, whose caller
// always performs its own repair pass immediately afterward so the
// intermediate state is never observed.
func (l *List[T]) insertChunkAtNoRepair(c int, ch *chunk[T]) {
	l.chunks = append(l.chunks, nil)
	l.chunkStart = append(l.chunkStart, 0)
	l.chunkCap = append(l.chunkCap, 0)
	copy(l.chunks[c+1:], l.chunks[c:l.chunkCount])
	copy(l.chunkStart[c+1:], l.chunkStart[c:l.chunkCount])
	copy(l.chunkCap[c+1:], l.chunkCap[c:l.chunkCount])
	l.chunks[c] = ch
	l.chunkCap[c] = ch.capacity()
	l.chunkCount++
}

// maybeSplit applies the split policy if c is eligible.
func (l *List[T]) maybeSplit(c int) {
	ch := l.chunks[c]
	if ch.capacity() >= l.tuning.SplitThreshold && ch.used >= l.tuning.BaseChunk {
		l.split(c)
	}
}

// maybeNormalize applies the normalize policy if c is eligible:
// sparsely used (< 1/4 capacity) and larger than the base chunk size.
func (l *List[T]) maybeNormalize(c int) bool {
	ch := l.chunks[c]
	if ch.capacity() > l.tuning.BaseChunk && ch.used < ch.capacity()/4 && l.chunkCount > 1 {
		l.normalize(c)
		return true
	}
	return false
}
