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

// Command chunklistbench drives a chunklist.List through append,
// insert, remove, and sort workloads and reports their throughput.
// It is a benchmarking harness kept outside the core container, which
// it drives only through chunklist's exported API.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/sneller-labs/chunklist"
	"github.com/sneller-labs/chunklist/config"
)

func main() {
	n := flag.Int("n", 200000, "number of elements to drive through each workload")
	tuningPath := flag.String("tuning", "", "optional YAML file of chunklist.Tuning overrides")
	withUUID := flag.Bool("uuid", false, "use uuid.UUID elements instead of int, to exercise a non-trivial element size")
	flag.Parse()

	tuning := chunklist.DefaultTuning()
	if *tuningPath != "" {
		loaded, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("chunklistbench: %v", err)
		}
		tuning = loaded
	}

	if *withUUID {
		runUUID(*n, tuning)
		return
	}
	runInt(*n, tuning)
}

func runInt(n int, tuning chunklist.Tuning) {
	l, err := chunklist.NewTuned[int](tuning)
	if err != nil {
		log.Fatalf("chunklistbench: %v", err)
	}
	bench("append", n, func() {
		for i := 0; i < n; i++ {
			l.Append(i)
		}
	})
	bench("get (sequential)", n, func() {
		for i := 0; i < n; i++ {
			if _, err := l.Get(i); err != nil {
				log.Fatalf("chunklistbench: get: %v", err)
			}
		}
	})

	rng := rand.New(rand.NewSource(1))
	bench("insert (random)", n/10, func() {
		for i := 0; i < n/10; i++ {
			pos := rng.Intn(l.Size() + 1)
			if err := l.Insert(pos, i); err != nil {
				log.Fatalf("chunklistbench: insert: %v", err)
			}
		}
	})
	bench("remove (random)", n/10, func() {
		for i := 0; i < n/10; i++ {
			pos := rng.Intn(l.Size())
			if _, err := l.Remove(pos); err != nil {
				log.Fatalf("chunklistbench: remove: %v", err)
			}
		}
	})
	bench("sort", 1, func() {
		l.Sort(func(a, b int) bool { return a < b })
	})

	fmt.Fprintf(os.Stderr, "final size=%d chunks=%d\n", l.Size(), l.Stats().ChunkCount)
}

// runUUID exercises the container with a larger, non-trivial element
// type, to surface chunk-copy overhead that a plain int workload
// hides.
func runUUID(n int, tuning chunklist.Tuning) {
	l, err := chunklist.NewTuned[uuid.UUID](tuning)
	if err != nil {
		log.Fatalf("chunklistbench: %v", err)
	}
	bench("append (uuid)", n, func() {
		for i := 0; i < n; i++ {
			l.Append(uuid.New())
		}
	})
	fmt.Fprintf(os.Stderr, "final size=%d chunks=%d\n", l.Size(), l.Stats().ChunkCount)
}

func bench(name string, ops int, f func()) {
	start := time.Now()
	f()
	elapsed := time.Since(start)
	var perOp time.Duration
	if ops > 0 {
		perOp = elapsed / time.Duration(ops)
	}
	log.Printf("%-20s ops=%-10d elapsed=%-12s per-op=%s", name, ops, elapsed, perOp)
}
