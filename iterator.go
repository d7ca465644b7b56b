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

// Iterator is a forward, fail-fast traversal cursor over a List. It
// holds a non-owning reference to the list plus a modCount snapshot
// taken at construction (or at the last successful Remove); any
// structural mutation of the list observed between boundary checks
// fails the next call with a *StructuralConflictError.
type Iterator[T any] struct {
	l            *List[T]
	cursor       int
	lastReturned int
	snapshot     int
}

// Iterator returns a forward iterator positioned before the first
// element.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l: l, lastReturned: -1, snapshot: l.modCount}
}

// HasNext reports whether a call to Next would currently succeed,
// ignoring any pending structural conflict.
func (it *Iterator[T]) HasNext() bool {
	return it.cursor < it.l.size
}

// Next returns the next element and advances the cursor.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.l.modCount != it.snapshot {
		return zero, &StructuralConflictError{Op: "Iterator.Next"}
	}
	if it.cursor >= it.l.size {
		return zero, opErr("Iterator.Next", ErrNoSuchElement)
	}
	v, err := it.l.Get(it.cursor)
	if err != nil {
		return zero, err
	}
	it.lastReturned = it.cursor
	it.cursor++
	return v, nil
}

// Remove removes the element last returned by Next (or Previous, for
// a ListIterator) and rebinds the snapshot so the iterator can keep
// advancing. It fails with ErrIllegalState if called without a
// preceding Next/Previous.
func (it *Iterator[T]) Remove() error {
	if it.l.modCount != it.snapshot {
		return &StructuralConflictError{Op: "Iterator.Remove"}
	}
	if it.lastReturned < 0 {
		return opErr("Iterator.Remove", ErrIllegalState)
	}
	if _, err := it.l.Remove(it.lastReturned); err != nil {
		return err
	}
	it.cursor = it.lastReturned
	it.lastReturned = -1
	it.snapshot = it.l.modCount
	return nil
}

// ListIterator is a bidirectional iterator that additionally supports
// Previous, index queries, in-place Set, and positional Add.
type ListIterator[T any] struct {
	Iterator[T]
}

// ListIterator returns a bidirectional iterator positioned before the
// first element.
func (l *List[T]) ListIterator() *ListIterator[T] {
	it, _ := l.ListIteratorAt(0)
	return it
}

// ListIteratorAt returns a bidirectional iterator positioned so that a
// call to Next would return the element at index i (and Previous
// would return the element at i-1). It requires 0 <= i <= Size().
func (l *List[T]) ListIteratorAt(i int) (*ListIterator[T], error) {
	if i < 0 || i > l.size {
		return nil, indexErr("ListIterator", i)
	}
	return &ListIterator[T]{Iterator[T]{l: l, cursor: i, lastReturned: -1, snapshot: l.modCount}}, nil
}

// HasPrevious reports whether a call to Previous would currently
// succeed, ignoring any pending structural conflict.
func (it *ListIterator[T]) HasPrevious() bool {
	return it.cursor > 0
}

// Previous returns the element before the cursor and moves the cursor
// back by one.
func (it *ListIterator[T]) Previous() (T, error) {
	var zero T
	if it.l.modCount != it.snapshot {
		return zero, &StructuralConflictError{Op: "ListIterator.Previous"}
	}
	if it.cursor <= 0 {
		return zero, opErr("ListIterator.Previous", ErrNoSuchElement)
	}
	it.cursor--
	v, err := it.l.Get(it.cursor)
	if err != nil {
		return zero, err
	}
	it.lastReturned = it.cursor
	return v, nil
}

// NextIndex returns the index a following Next call would return.
func (it *ListIterator[T]) NextIndex() int { return it.cursor }

// PreviousIndex returns the index a following Previous call would
// return, or -1 if there is none.
func (it *ListIterator[T]) PreviousIndex() int { return it.cursor - 1 }

// Set overwrites the element last returned by Next/Previous. It does
// not touch the modCount snapshot: it is an element mutation, not a
// structural one.
func (it *ListIterator[T]) Set(e T) error {
	if it.l.modCount != it.snapshot {
		return &StructuralConflictError{Op: "ListIterator.Set"}
	}
	if it.lastReturned < 0 {
		return opErr("ListIterator.Set", ErrIllegalState)
	}
	_, err := it.l.Set(it.lastReturned, e)
	return err
}

// Add inserts e immediately before the position a following Next
// would return, and advances past it.
func (it *ListIterator[T]) Add(e T) error {
	if it.l.modCount != it.snapshot {
		return &StructuralConflictError{Op: "ListIterator.Add"}
	}
	if err := it.l.Insert(it.cursor, e); err != nil {
		return err
	}
	it.cursor++
	it.lastReturned = -1
	it.snapshot = it.l.modCount
	return nil
}
