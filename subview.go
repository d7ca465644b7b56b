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

// SubView is a positional window onto a parent List: index i of the
// view is index offset+i of the parent. Every operation translates
// its index and forwards to the parent, then updates the view's own
// local size. It is the caller's responsibility not to structurally
// mutate the parent except through the SubView during the SubView's
// lifetime; violating that is undefined behavior, not detected here
// (the core container has no observer list to notify).
type SubView[T any] struct {
	parent *List[T]
	offset int
	size   int
}

// SubView returns a view over the parent's elements in [from, to). It
// requires 0 <= from <= to <= Size().
func (l *List[T]) SubView(from, to int) (*SubView[T], error) {
	if from < 0 || to > l.size || from > to {
		return nil, opErr("SubView", ErrIllegalArgument)
	}
	return &SubView[T]{parent: l, offset: from, size: to - from}, nil
}

// Size returns the number of elements currently in the view.
func (v *SubView[T]) Size() int { return v.size }

// IsEmpty reports whether Size() == 0.
func (v *SubView[T]) IsEmpty() bool { return v.size == 0 }

// Get returns the element at view-local index i.
func (v *SubView[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.size {
		return zero, indexErr("SubView.Get", i)
	}
	return v.parent.Get(v.offset + i)
}

// Set overwrites the element at view-local index i.
func (v *SubView[T]) Set(i int, e T) (T, error) {
	var zero T
	if i < 0 || i >= v.size {
		return zero, indexErr("SubView.Set", i)
	}
	return v.parent.Set(v.offset+i, e)
}

// Insert places e at view-local index i, growing the view and the
// parent by one element.
func (v *SubView[T]) Insert(i int, e T) error {
	if i < 0 || i > v.size {
		return indexErr("SubView.Insert", i)
	}
	if err := v.parent.Insert(v.offset+i, e); err != nil {
		return err
	}
	v.size++
	return nil
}

// Append adds e to the end of the view.
func (v *SubView[T]) Append(e T) error {
	return v.Insert(v.size, e)
}

// Remove deletes and returns the element at view-local index i,
// shrinking the view and the parent by one element.
func (v *SubView[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.size {
		return zero, indexErr("SubView.Remove", i)
	}
	val, err := v.parent.Remove(v.offset + i)
	if err != nil {
		return zero, err
	}
	v.size--
	return val, nil
}

// ForEach applies f to every element of the view in index order.
func (v *SubView[T]) ForEach(f func(T)) {
	for i := 0; i < v.size; i++ {
		val, err := v.parent.Get(v.offset + i)
		if err != nil {
			return
		}
		f(val)
	}
}
