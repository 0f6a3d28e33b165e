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
	"math/rand"
	"reflect"
	"runtime"
	"testing"
)

func TestCloneWithArena(t *testing.T) {
	tr := NewOrdered[int]()
	for _, v := range rand.Perm(1000) {
		tr.Insert(v)
	}
	a := arena.NewArena()
	defer a.Free()
	tr2 := tr.CloneWithArena(a)
	if got, want := shape(tr2.root), shape(tr.root); !reflect.DeepEqual(got, want) {
		t.Fatalf("arena clone shape mismatch:\n got: %v\nwant: %v", got, want)
	}
	if tr2.Len() != tr.Len() {
		t.Fatalf("len: got %d want %d", tr2.Len(), tr.Len())
	}
}

func BenchmarkCloneWithArena(b *testing.B) {
	tr := NewOrdered[int]()
	for _, v := range rand.Perm(16392) {
		tr.Insert(v)
	}

	b.ResetTimer()

	b.Run(`Clone`, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			tr2 := tr.Clone()
			tr2.Len()
		}
		runtime.GC()
	})

	b.Run(`CloneWithArena`, func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			a := arena.NewArena()
			tr2 := tr.CloneWithArena(a)
			tr2.Len()
			a.Free()
		}
		runtime.GC()
	})
}
