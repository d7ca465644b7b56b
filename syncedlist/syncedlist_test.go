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

package syncedlist

import (
	"sync"
	"testing"

	"github.com/sneller-labs/chunklist"
)

func TestConcurrentAppend(t *testing.T) {
	s := New[int]()
	var wg sync.WaitGroup
	const goroutines = 32
	const perGoroutine = 200
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				s.Append(i)
			}
		}()
	}
	wg.Wait()
	if s.Size() != goroutines*perGoroutine {
		t.Fatalf("size = %d, want %d", s.Size(), goroutines*perGoroutine)
	}
}

func TestWithWriteLockComposesOps(t *testing.T) {
	s := New[int]()
	for i := 0; i < 10; i++ {
		s.Append(i)
	}
	err := s.WithWriteLock(func(l *chunklist.List[int]) error {
		_, err := l.RemoveIf(func(v int) bool { return v%2 == 0 })
		return err
	})
	if err != nil {
		t.Fatalf("withWriteLock: %v", err)
	}
	if s.Size() != 5 {
		t.Fatalf("size = %d, want 5", s.Size())
	}
}
