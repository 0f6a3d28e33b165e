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

// Package render draws binary search trees in the terminal with pterm.
package render

import (
	"fmt"
	"io"

	"github.com/google/bst"
	"github.com/pterm/pterm"
)

// TreeNode converts the subtree rooted at n into a pterm tree.  Children are
// labelled "L:" or "R:" since a lone child's side is otherwise ambiguous.
func TreeNode[T any](label string, n *bst.Node[T]) pterm.TreeNode {
	out := pterm.TreeNode{Text: fmt.Sprintf("%s%v", label, n.Value())}
	if n.HasLeft() {
		out.Children = append(out.Children, TreeNode("L: ", n.Left()))
	}
	if n.HasRight() {
		out.Children = append(out.Children, TreeNode("R: ", n.Right()))
	}
	return out
}

// Srender returns the drawing of t, or "(empty)" for an empty tree.
func Srender[T any](t *bst.Tree[T]) (string, error) {
	if t.Empty() {
		return "(empty)\n", nil
	}
	// The tree printer only draws the children of its root.
	root := pterm.TreeNode{Children: []pterm.TreeNode{TreeNode("", t.Root())}}
	return pterm.DefaultTree.WithRoot(root).Srender()
}

// Render writes the drawing of t to w.
func Render[T any](w io.Writer, t *bst.Tree[T]) error {
	s, err := Srender(t)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
