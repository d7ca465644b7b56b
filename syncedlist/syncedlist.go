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

// Package syncedlist wraps chunklist.List behind a sync.RWMutex so it
// can be shared across goroutines. This concurrency wrapper is kept
// out of the core: chunklist.List itself stays a single-threaded value
// type performing no synchronization, and all locking lives
// here, in the same spirit as dcache.cache's rwlock guarding its
// mutable, chunk-backed cache state.
package syncedlist

import (
	"sync"

	"github.com/sneller-labs/chunklist"
)

// List is a goroutine-safe wrapper around *chunklist.List. Any number
// of readers (Size, IsEmpty, ForEach) may run concurrently; writers
// are mutually exclusive with both other writers and readers.
type List[T any] struct {
	mu   sync.RWMutex
	list *chunklist.List[T]
}

// New wraps a freshly constructed chunklist.List with default tuning.
func New[T any]() *List[T] {
	return Wrap(chunklist.New[T]())
}

// Wrap wraps an existing, not-yet-shared *chunklist.List. The caller
// must not continue to use l directly after handing it to Wrap.
func Wrap[T any](l *chunklist.List[T]) *List[T] {
	return &List[T]{list: l}
}

func (s *List[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Size()
}

func (s *List[T]) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.IsEmpty()
}

// Get takes the write lock: chunklist.List.Get updates the list's
// internal last-access hint, so it is not a pure read.
func (s *List[T]) Get(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Get(i)
}

func (s *List[T]) Set(i int, e T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Set(i, e)
}

func (s *List[T]) Append(e T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Append(e)
}

func (s *List[T]) Insert(i int, e T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Insert(i, e)
}

func (s *List[T]) Remove(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Remove(i)
}

func (s *List[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list.Clear()
}

// ForEach holds the read lock for the duration of the callback. f
// must not call back into s, or it will deadlock (sync.RWMutex is not
// reentrant).
func (s *List[T]) ForEach(f func(T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.list.ForEach(f)
}

// WithWriteLock runs f with exclusive access to the underlying list,
// for callers that need to compose several mutations (e.g. a
// bulk RemoveIf followed by a Sort) atomically with respect to other
// goroutines.
func (s *List[T]) WithWriteLock(f func(l *chunklist.List[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s.list)
}
