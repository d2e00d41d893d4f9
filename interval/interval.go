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

// Package interval stores closed intervals in a splay tree ordered by start
// and augmented with the largest end in each subtree, which allows overlap
// queries to skip subtrees that end before the query begins.
package interval

import (
	"github.com/ajwerner/splaytree"
	"github.com/ajwerner/splaytree/abstract"
	"golang.org/x/exp/constraints"
)

// Interval is a closed interval [Key(), End()]. Key() must not be greater
// than End().
type Interval[K any] interface {
	Key() K
	End() K
}

// Node is a splay tree node holding an interval.
type Node[K constraints.Ordered, I Interval[K]] = abstract.Node[I, aug[K, I], *aug[K, I]]

// New returns a new root node holding i.
func New[K constraints.Ordered, I Interval[K]](i I) *Node[K, I] {
	return abstract.New[I, aug[K, I]](i)
}

// UpperBound returns the largest End of the intervals in the subtree
// rooted at n.
func UpperBound[K constraints.Ordered, I Interval[K]](n *Node[K, I]) K {
	return n.Aug().upper
}

// Compare orders intervals by Key and then by End.
func Compare[K constraints.Ordered, I Interval[K]](a, b I) int {
	if c := splaytree.Compare(a.Key(), b.Key()); c != 0 {
		return c
	}
	return splaytree.Compare(a.End(), b.End())
}

func overlaps[K constraints.Ordered, I Interval[K]](a, b I) bool {
	return a.Key() <= b.End() && b.Key() <= a.End()
}

// Insert adds the detached node n to the tree rooted at root, splays it and
// returns it as the new root. Equal intervals are kept; the newest is
// ordered last.
func Insert[K constraints.Ordered, I Interval[K]](root, n *Node[K, I]) *Node[K, I] {
	if root == nil {
		return n
	}
	item := n.Value()
	parent, _ := root.Seek(func(v I) int {
		if Compare[K](v, item) > 0 {
			return 1
		}
		return -1
	})
	d := abstract.Right
	if Compare[K](parent.Value(), item) > 0 {
		d = abstract.Left
	}
	parent.SetChild(d, n)
	n.Splay()
	return n
}

// Overlapping calls fn in order for every interval in the subtree rooted at
// root which overlaps q, until fn returns false. It does not change the
// tree.
func Overlapping[K constraints.Ordered, I Interval[K]](root *Node[K, I], q I, fn func(I) bool) {
	overlapping(root, q, fn)
}

func overlapping[K constraints.Ordered, I Interval[K]](n *Node[K, I], q I, fn func(I) bool) bool {
	if n == nil || UpperBound(n) < q.Key() {
		return true
	}
	if !overlapping(n.Child(abstract.Left), q, fn) {
		return false
	}
	v := n.Value()
	if v.Key() > q.End() {
		// Everything that follows starts after q.
		return false
	}
	if overlaps[K](v, q) && !fn(v) {
		return false
	}
	return overlapping(n.Child(abstract.Right), q, fn)
}

// FirstOverlap returns the first interval in order within the subtree
// rooted at root which overlaps q, after splaying its node to the root of
// the tree. It returns nil and leaves the tree unchanged if no interval
// overlaps q.
func FirstOverlap[K constraints.Ordered, I Interval[K]](root *Node[K, I], q I) *Node[K, I] {
	for cur := root; cur != nil; {
		if l := cur.Child(abstract.Left); l != nil && UpperBound(l) >= q.Key() {
			cur = l
			continue
		}
		v := cur.Value()
		if v.Key() > q.End() {
			return nil
		}
		if overlaps[K](v, q) {
			cur.Splay()
			return cur
		}
		if r := cur.Child(abstract.Right); r == nil || UpperBound(r) < q.Key() {
			return nil
		}
		cur = cur.Child(abstract.Right)
	}
	return nil
}
