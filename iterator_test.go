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

import (
	"errors"
	"testing"
)

func TestIteratorForward(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		l.Append(i)
	}
	it := l.Iterator()
	count := 0
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if v != count {
			t.Fatalf("next() = %d, want %d", v, count)
		}
		count++
	}
	if count != 10 {
		t.Fatalf("iterated %d elements, want 10", count)
	}
	if _, err := it.Next(); !errors.Is(err, ErrNoSuchElement) {
		t.Fatalf("want ErrNoSuchElement past end, got %v", err)
	}
}

func TestIteratorFailFast(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.Append(i)
	}
	it := l.Iterator()
	if _, err := it.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	l.Append(100)
	var conflict *StructuralConflictError
	if _, err := it.Next(); !errors.As(err, &conflict) {
		t.Fatalf("want StructuralConflictError, got %v", err)
	}
}

func TestIteratorRemove(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.Append(i)
	}
	it := l.Iterator()
	if _, err := it.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := it.Remove(); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if l.Size() != 4 {
		t.Fatalf("size = %d, want 4", l.Size())
	}
	var got []int
	l.ForEach(func(v int) { got = append(got, v) })
	want := []int{1, 2, 3, 4}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	// removing again without an intervening Next is illegal
	if err := it.Remove(); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("want ErrIllegalState, got %v", err)
	}
}

func TestListIteratorBidirectional(t *testing.T) {
	l := New[int]()
	for i := 0; i < 5; i++ {
		l.Append(i)
	}
	it, err := l.ListIteratorAt(5)
	if err != nil {
		t.Fatalf("listIteratorAt: %v", err)
	}
	var backward []int
	for it.HasPrevious() {
		v, err := it.Previous()
		if err != nil {
			t.Fatalf("previous: %v", err)
		}
		backward = append(backward, v)
	}
	want := []int{4, 3, 2, 1, 0}
	for i, w := range want {
		if backward[i] != w {
			t.Fatalf("backward = %v, want %v", backward, want)
		}
	}
}

func TestListIteratorSetAndAdd(t *testing.T) {
	l := New[int]()
	for i := 0; i < 3; i++ {
		l.Append(i)
	}
	it := l.ListIterator()
	if _, err := it.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := it.Set(100); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, _ := l.Get(0); v != 100 {
		t.Fatalf("get(0) = %d, want 100", v)
	}
	if err := it.Add(200); err != nil {
		t.Fatalf("add: %v", err)
	}
	if l.Size() != 4 {
		t.Fatalf("size = %d, want 4", l.Size())
	}
	if v, _ := l.Get(1); v != 200 {
		t.Fatalf("get(1) = %d, want 200", v)
	}
	if v, _ := l.Get(2); v != 1 {
		t.Fatalf("get(2) = %d, want 1", v)
	}
}
