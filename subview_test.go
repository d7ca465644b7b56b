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

import "testing"

func TestSubViewInsertAffectsParent(t *testing.T) {
	l := New[int]()
	for i := 0; i < 101; i++ {
		l.Append(i)
	}
	v, err := l.SubView(10, 20)
	if err != nil {
		t.Fatalf("subview: %v", err)
	}
	if err := v.Insert(0, 999); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got, _ := l.Get(10); got != 999 {
		t.Fatalf("l.Get(10) = %d, want 999", got)
	}
	if v.Size() != 11 {
		t.Fatalf("v.Size() = %d, want 11", v.Size())
	}
	if l.Size() != 101+1 {
		t.Fatalf("l.Size() = %d, want 102", l.Size())
	}
}

func TestSubViewInvertedRangeRejected(t *testing.T) {
	l := New[int]()
	for i := 0; i < 10; i++ {
		l.Append(i)
	}
	if _, err := l.SubView(5, 2); err == nil {
		t.Fatal("want error for inverted range")
	}
	if _, err := l.SubView(0, 20); err == nil {
		t.Fatal("want error for out-of-range end")
	}
}

func TestSubViewRemoveShrinksBoth(t *testing.T) {
	l := New[int]()
	for i := 0; i < 20; i++ {
		l.Append(i)
	}
	v, err := l.SubView(5, 15)
	if err != nil {
		t.Fatalf("subview: %v", err)
	}
	if _, err := v.Remove(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if v.Size() != 9 {
		t.Fatalf("v.Size() = %d, want 9", v.Size())
	}
	if l.Size() != 19 {
		t.Fatalf("l.Size() = %d, want 19", l.Size())
	}
	if got, _ := l.Get(5); got != 6 {
		t.Fatalf("l.Get(5) = %d, want 6", got)
	}
}
