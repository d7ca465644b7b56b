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
	"fmt"
)

// Sentinel error kinds. Callers should match with errors.Is; use
// (*OpError).Unwrap (implicit via errors.Is) rather than comparing
// concrete error values directly, since each sentinel is returned
// wrapped in an *OpError that carries the failing operation (and the
// index, where there is one).
var (
	// ErrIndexOutOfBounds is returned when an index falls outside
	// the range required by the operation.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrIllegalArgument is returned for a negative capacity or an
	// inverted sub-view range.
	ErrIllegalArgument = errors.New("illegal argument")
	// ErrNoSuchElement is returned when an iterator is advanced
	// past its end.
	ErrNoSuchElement = errors.New("no such element")
	// ErrIllegalState is returned when an iterator's Remove or Set
	// is called without a preceding Next or Previous.
	ErrIllegalState = errors.New("illegal iterator state")
)

// OpError wraps a sentinel error with the operation and index that
// triggered it, following the same envelope-struct shape as
// tnproto.RemoteError: a small struct carrying context plus the
// underlying cause, so errors.Is/As keep working through Unwrap.
type OpError struct {
	Op    string
	Index int
	Err   error
}

func (e *OpError) Error() string {
	if e.Index == noIndex {
		return fmt.Sprintf("chunklist: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("chunklist: %s: index %d: %v", e.Op, e.Index, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

const noIndex = -1

func opErr(op string, err error) error {
	return &OpError{Op: op, Index: noIndex, Err: err}
}

func indexErr(op string, index int) error {
	return &OpError{Op: op, Index: index, Err: ErrIndexOutOfBounds}
}

// StructuralConflictError is returned by iterators and by ReplaceAll /
// RemoveIf when a structural mutation (one that changes Size or the
// shape of the chunk table) is observed between the operation's
// snapshot and a later boundary check.
type StructuralConflictError struct {
	Op string
}

func (e *StructuralConflictError) Error() string {
	return fmt.Sprintf("chunklist: %s: structural modification detected", e.Op)
}

// InternalInconsistencyError indicates an invariant from the data
// model was violated. It is a bug indicator, not a recoverable
// condition: it should never be observed outside of a defect in this
// package itself.
type InternalInconsistencyError struct {
	Detail string
}

func (e *InternalInconsistencyError) Error() string {
	return fmt.Sprintf("chunklist: internal inconsistency: %s", e.Detail)
}
