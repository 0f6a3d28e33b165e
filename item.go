// Copyright 2026 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bst

// Item represents a single object in a tree ordered by its own method.
type Item interface {
	// Less tests whether the current item is less than the given argument.
	//
	// This must provide a strict total ordering.  If !a.Less(b) && !b.Less(a),
	// a and b are treated as equal, and a later insert of either goes to the
	// right of the earlier one.
	Less(than Item) bool
}

// ItemLess orders Items by their Less method.
func ItemLess(a, b Item) bool {
	return a.Less(b)
}

// NewItem creates a new, empty tree of Items.
func NewItem() *Tree[Item] {
	return New[Item](ItemLess)
}

// Int implements the Item interface for integers.
type Int int

// Less returns true if int(a) < int(b).
func (a Int) Less(b Item) bool {
	return a < b.(Int)
}

// String implements the Item interface for strings.
type String string

// Less returns true if string(a) < string(b).
func (a String) Less(b Item) bool {
	return a < b.(String)
}
