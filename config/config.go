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

// Package config loads chunklist.Tuning values from YAML, so the
// compile-time knobs in chunklist (BaseChunk, SplitThreshold, Step,
// DefaultCapacity) can also be supplied from a file for the benchmark
// harness and for reproducible test fixtures.
package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/sneller-labs/chunklist"
)

// tuningDoc mirrors chunklist.Tuning with YAML-friendly field names.
type tuningDoc struct {
	BaseChunk       int `json:"baseChunk"`
	SplitThreshold  int `json:"splitThreshold"`
	Step            int `json:"step"`
	DefaultCapacity int `json:"defaultCapacity"`
}

// LoadTuning reads a YAML document from path and converts it into a
// chunklist.Tuning. Fields omitted from the document fall back to
// chunklist.DefaultTuning's values.
func LoadTuning(path string) (chunklist.Tuning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return chunklist.Tuning{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return ParseTuning(raw)
}

// ParseTuning decodes a YAML document into a chunklist.Tuning, using
// sigs.k8s.io/yaml so the document may equally be written as JSON.
func ParseTuning(raw []byte) (chunklist.Tuning, error) {
	def := chunklist.DefaultTuning()
	doc := tuningDoc{
		BaseChunk:       def.BaseChunk,
		SplitThreshold:  def.SplitThreshold,
		Step:            def.Step,
		DefaultCapacity: def.DefaultCapacity,
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return chunklist.Tuning{}, fmt.Errorf("config: parsing tuning document: %w", err)
	}
	return chunklist.Tuning{
		BaseChunk:       doc.BaseChunk,
		SplitThreshold:  doc.SplitThreshold,
		Step:            doc.Step,
		DefaultCapacity: doc.DefaultCapacity,
	}, nil
}

// WriteTuning serializes t as YAML, the inverse of ParseTuning.
func WriteTuning(t chunklist.Tuning) ([]byte, error) {
	doc := tuningDoc{
		BaseChunk:       t.BaseChunk,
		SplitThreshold:  t.SplitThreshold,
		Step:            t.Step,
		DefaultCapacity: t.DefaultCapacity,
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("config: marshaling tuning: %w", err)
	}
	return out, nil
}
