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

import "golang.org/x/exp/constraints"

// Natural returns the less-than comparator for Sort over any ordered
// element type, the same constraint used by the teacher's ints
// package for its generic helpers.
func Natural[T constraints.Ordered]() func(a, b T) bool {
	return func(a, b T) bool { return a < b }
}
