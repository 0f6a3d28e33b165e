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

// Package bst implements an in-memory, unbalanced binary search tree.
//
// bst is a small ordered container supporting insertion and exact-value
// lookup over any totally-ordered key type.  It is not meant for persistent
// storage solutions, and it does not rebalance: the shape of a tree is
// entirely determined by insertion order.  Inserting keys in sorted order
// yields a tree whose height equals its length.
//
// Every node holds a single value and up to two children.  For every node n,
// all values in the subtree rooted at n's left child are strictly less than
// n's value, and all values in the subtree rooted at its right child are
// greater than or equal to it.  Equal keys are therefore allowed, and always
// descend to the right.  Find stops at the first equal node on its path, which
// is the one nearest the root.
//
// The tree is not safe for concurrent mutation.  Callers sharing a tree between
// goroutines must serialize Insert against all other calls.
package bst

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrOperationInvalid is wrapped by the panic value of accessors invoked on a
// node or tree lacking the requested child or root.
var ErrOperationInvalid = errors.New("bst: operation invalid")

// LessFunc[T] determines how to order a type 'T'.  It should implement a strict
// total ordering, and should return true if within that ordering, 'a' < 'b'.
// An inconsistent LessFunc silently breaks the tree's ordering.
type LessFunc[T any] func(a, b T) bool

// Ordered represents the set of types for which the '<' operator work.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr | ~float32 | ~float64 | ~string
}

// Less[T] returns a default LessFunc that uses the '<' operator for types that support it.
func Less[T Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// Node is a single key in a tree.  A node is owned by exactly one parent (or
// by the tree, for the root) and is never modified once created, except to
// attach children to empty slots.
type Node[T any] struct {
	value T
	left  *Node[T]
	right *Node[T]
}

// Value returns the key stored at n.
func (n *Node[T]) Value() T {
	return n.value
}

// HasLeft reports whether n has a left child.
func (n *Node[T]) HasLeft() bool {
	return n.left != nil
}

// HasRight reports whether n has a right child.
func (n *Node[T]) HasRight() bool {
	return n.right != nil
}

// Left returns the left child of n.  It panics with ErrOperationInvalid if
// there is none; use HasLeft first when absence is expected.
func (n *Node[T]) Left() *Node[T] {
	if n.left == nil {
		panic(fmt.Errorf("%w: node %v has no left child", ErrOperationInvalid, n.value))
	}
	return n.left
}

// Right returns the right child of n.  It panics with ErrOperationInvalid if
// there is none; use HasRight first when absence is expected.
func (n *Node[T]) Right() *Node[T] {
	if n.right == nil {
		panic(fmt.Errorf("%w: node %v has no right child", ErrOperationInvalid, n.value))
	}
	return n.right
}

// insert places a new node holding value in the subtree rooted at n.
func (n *Node[T]) insert(value T, less LessFunc[T]) *Node[T] {
	if less(value, n.value) {
		if n.left == nil {
			n.left = &Node[T]{value: value}
			return n.left
		}
		return n.left.insert(value, less)
	}
	// greater or equal
	if n.right == nil {
		n.right = &Node[T]{value: value}
		return n.right
	}
	return n.right.insert(value, less)
}

// find returns the shallowest node in the subtree equal to key.
func (n *Node[T]) find(key T, less LessFunc[T]) (*Node[T], bool) {
	switch {
	case less(key, n.value):
		if n.left == nil {
			return nil, false
		}
		return n.left.find(key, less)
	case less(n.value, key):
		if n.right == nil {
			return nil, false
		}
		return n.right.find(key, less)
	default:
		return n, true
	}
}

func (n *Node[T]) height() int {
	if n == nil {
		return 0
	}
	l, r := n.left.height(), n.right.height()
	if l > r {
		return l + 1
	}
	return r + 1
}

func (n *Node[T]) clone() *Node[T] {
	if n == nil {
		return nil
	}
	return &Node[T]{value: n.value, left: n.left.clone(), right: n.right.clone()}
}

// print is used for testing/debugging purposes.
func (n *Node[T]) print(w io.Writer, prefix string, level int) {
	fmt.Fprintf(w, "%s%s%v\n", strings.Repeat("  ", level), prefix, n.value)
	if n.left != nil {
		n.left.print(w, "L:", level+1)
	}
	if n.right != nil {
		n.right.print(w, "R:", level+1)
	}
}

// Tree is an unbalanced binary search tree.
//
// Tree stores values of type T in an ordered structure, allowing insertion and
// exact lookup.  Duplicates are kept, not replaced.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
type Tree[T any] struct {
	root   *Node[T]
	length int
	less   LessFunc[T]
}

// New creates a new, empty tree ordered by less.
func New[T any](less LessFunc[T]) *Tree[T] {
	if less == nil {
		panic("nil less func")
	}
	return &Tree[T]{less: less}
}

// NewOrdered creates a new, empty tree for ordered types.
func NewOrdered[T Ordered]() *Tree[T] {
	return New[T](Less[T]())
}

// Insert adds value to the tree and returns the node created for it.
//
// Values less than a node's value go left, all others (equal included) go
// right, until an empty slot is reached.  Insert never replaces an existing
// value and never rebalances.
func (t *Tree[T]) Insert(value T) *Node[T] {
	t.length++
	if t.root == nil {
		t.root = &Node[T]{value: value}
		return t.root
	}
	return t.root.insert(value, t.less)
}

// Find looks for a node equal to key, returning (nil, false) if there is none.
// With duplicate keys, the match nearest the root is returned.
func (t *Tree[T]) Find(key T) (*Node[T], bool) {
	if t.root == nil {
		return nil, false
	}
	return t.root.find(key, t.less)
}

// Get looks for the key item in the tree, returning it.  It returns
// (zeroValue, false) if unable to find that item.
func (t *Tree[T]) Get(key T) (_ T, _ bool) {
	n, ok := t.Find(key)
	if !ok {
		return
	}
	return n.value, true
}

// Has returns true if the given key is in the tree.
func (t *Tree[T]) Has(key T) bool {
	_, ok := t.Find(key)
	return ok
}

// Len returns the number of values inserted into the tree, duplicates included.
func (t *Tree[T]) Len() int {
	return t.length
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, or 0 for an empty tree.
func (t *Tree[T]) Height() int {
	return t.root.height()
}

// Clear removes all values from the tree.  The nodes are simply dereferenced
// and left to Go's normal GC processes; any *Node previously returned remains
// readable but is no longer part of t.
func (t *Tree[T]) Clear() {
	t.root, t.length = nil, 0
}

// Clone returns a copy of t sharing no nodes with it.  Values are copied by
// assignment.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{root: t.root.clone(), length: t.length, less: t.less}
}

// Empty reports whether the tree has no root.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root node.  It panics with ErrOperationInvalid if the tree
// is empty.
func (t *Tree[T]) Root() *Node[T] {
	if t.root == nil {
		panic(fmt.Errorf("%w: empty tree has no root", ErrOperationInvalid))
	}
	return t.root
}

// Value returns the value of the root node.  It panics if the tree is empty.
func (t *Tree[T]) Value() T {
	return t.Root().Value()
}

// Left returns the root's left child.  It panics if either is missing.
func (t *Tree[T]) Left() *Node[T] {
	return t.Root().Left()
}

// Right returns the root's right child.  It panics if either is missing.
func (t *Tree[T]) Right() *Node[T] {
	return t.Root().Right()
}

// Print writes one line per node to w, indented by depth.  Children are
// printed left before right, prefixed with "L:" and "R:".
func (t *Tree[T]) Print(w io.Writer) {
	if t.root == nil {
		return
	}
	t.root.print(w, "", 0)
}
