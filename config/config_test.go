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

package config

import (
	"testing"

	"github.com/sneller-labs/chunklist"
)

func TestParseTuningOverridesSubset(t *testing.T) {
	doc := []byte("baseChunk: 2048\nstep: 512\n")
	tn, err := ParseTuning(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tn.BaseChunk != 2048 {
		t.Fatalf("baseChunk = %d, want 2048", tn.BaseChunk)
	}
	if tn.Step != 512 {
		t.Fatalf("step = %d, want 512", tn.Step)
	}
	def := chunklist.DefaultTuning()
	if tn.SplitThreshold != def.SplitThreshold {
		t.Fatalf("splitThreshold = %d, want default %d", tn.SplitThreshold, def.SplitThreshold)
	}
}

func TestWriteThenParseRoundTrips(t *testing.T) {
	want := chunklist.Tuning{BaseChunk: 100, SplitThreshold: 200, Step: 10, DefaultCapacity: 5}
	raw, err := WriteTuning(want)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ParseTuning(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}
}
