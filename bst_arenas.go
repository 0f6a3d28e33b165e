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

//go:build goexperiment.arenas

package bst

import (
	"arena"
)

func (n *Node[T]) cloneWithArena(a *arena.Arena) *Node[T] {
	if n == nil {
		return nil
	}
	n2 := arena.New[Node[T]](a)
	n2.value = n.value
	n2.left = n.left.cloneWithArena(a)
	n2.right = n.right.cloneWithArena(a)
	return n2
}

// CloneWithArena is Clone with every node, and the tree itself, allocated in a.
// The copy must not be used after a is freed.
func (t *Tree[T]) CloneWithArena(a *arena.Arena) *Tree[T] {
	t2 := arena.New[Tree[T]](a)
	t2.less = t.less
	t2.length = t.length
	t2.root = t.root.cloneWithArena(a)
	return t2
}
