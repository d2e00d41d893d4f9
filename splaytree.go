// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package splaytree provides splay tree nodes without augmentation. See the
// abstract package for the node operations and for augmented nodes.
package splaytree

import (
	"github.com/ajwerner/splaytree/abstract"
	"golang.org/x/exp/constraints"
)

type noopAug[T any] struct{}

func (a *noopAug[T]) Update(abstract.View[T, *noopAug[T]]) {}

// Node is a splay tree node which maintains only subtree size and depth.
type Node[T any] = abstract.Node[T, noopAug[T], *noopAug[T]]

// Iterator is an in-order iterator over the subtree of a Node.
type Iterator[T any] = abstract.Iterator[T, noopAug[T], *noopAug[T]]

// New returns a new root node holding value.
func New[T any](value T) *Node[T] {
	return abstract.New[T, noopAug[T]](value)
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal
// to or greater than b.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

// CompareTo returns a comparator for Node.Find and Node.Seek which
// searches for key in a tree ordered ascending by value.
func CompareTo[T constraints.Ordered](key T) func(T) int {
	return func(v T) int {
		return Compare(v, key)
	}
}
