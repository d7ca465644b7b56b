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

// Tuning holds the construction-time knobs that govern chunk sizing
// and lookup granularity. The zero value is not valid; use
// DefaultTuning or NewTuned(tuning) with a value produced by it.
type Tuning struct {
	// BaseChunk is the standard chunk capacity allocated whenever a
	// fresh chunk is created (on append overflow, split, or
	// normalize); normalize allocates more only for a chunk holding
	// more than BaseChunk elements.
	BaseChunk int
	// SplitThreshold is the capacity at which a chunk becomes
	// eligible to split.
	SplitThreshold int
	// Step is the logical-index stride of the fast-map.
	Step int
	// DefaultCapacity is the initial capacity hint used by New()
	// when no explicit hint is given.
	DefaultCapacity int
}

// DefaultTuning returns the constants from the container's reference
// design: a 4096-element base chunk, a split threshold of 8192, a
// fast-map stride of 1024, and a default initial capacity of 10.
func DefaultTuning() Tuning {
	return Tuning{
		BaseChunk:       4096,
		SplitThreshold:  8192,
		Step:            1024,
		DefaultCapacity: 10,
	}
}

func (t Tuning) validate() error {
	if t.BaseChunk <= 0 || t.SplitThreshold <= 0 || t.Step <= 0 || t.DefaultCapacity < 0 {
		return opErr("Tuning", ErrIllegalArgument)
	}
	if t.SplitThreshold < t.BaseChunk {
		return opErr("Tuning", ErrIllegalArgument)
	}
	return nil
}
