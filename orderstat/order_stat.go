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

// Package orderstat implements positional access on splay trees using the
// subtree sizes cached in every node.
package orderstat

import "github.com/ajwerner/splaytree/abstract"

func leftSize[T, A any, AP abstract.Aug[T, A]](n *abstract.Node[T, A, AP]) int {
	if l := n.Child(abstract.Left); l != nil {
		return l.Size()
	}
	return 0
}

// Rank returns the zero-based in-order position of n within its whole
// tree. It does not change the tree.
func Rank[T, A any, AP abstract.Aug[T, A]](n *abstract.Node[T, A, AP]) int {
	r := leftSize(n)
	for cur := n; !cur.IsRoot(); cur = cur.Parent() {
		if cur.ParentDir() == abstract.Right {
			r += leftSize(cur.Parent()) + 1
		}
	}
	return r
}

// Nth returns the node at zero-based in-order position i of the subtree
// rooted at root after splaying it to the root of the tree. If i is out of
// range Nth returns nil and the tree is unchanged.
func Nth[T, A any, AP abstract.Aug[T, A]](root *abstract.Node[T, A, AP], i int) *abstract.Node[T, A, AP] {
	if root == nil || i < 0 || i >= root.Size() {
		return nil
	}
	cur := root
	for {
		l := leftSize(cur)
		switch {
		case i < l:
			cur = cur.Child(abstract.Left)
		case i == l:
			cur.Splay()
			return cur
		default:
			i -= l + 1
			cur = cur.Child(abstract.Right)
		}
	}
}

// InsertAt inserts n at zero-based position i of the tree rooted at root
// and returns the new root. Positions past the end append and negative
// positions prepend. A nil root yields n. n must be a detached node without children.
func InsertAt[T, A any, AP abstract.Aug[T, A]](
	root *abstract.Node[T, A, AP], i int, n *abstract.Node[T, A, AP],
) *abstract.Node[T, A, AP] {
	if root == nil {
		return n
	}
	size := root.Size()
	if i >= size {
		last := Nth(root, size-1)
		last.SetChild(abstract.Right, n)
		return last
	}
	at := Nth(root, max(i, 0))
	n.SetChild(abstract.Left, at.TakeChild(abstract.Left))
	at.SetChild(abstract.Left, n)
	return at
}

// RemoveAt detaches the node at zero-based position i of the tree rooted at
// root. It returns the root of the remaining tree and the detached node,
// which is a root with no children. If i is out of range nothing changes
// and the removed node is nil.
func RemoveAt[T, A any, AP abstract.Aug[T, A]](
	root *abstract.Node[T, A, AP], i int,
) (newRoot, removed *abstract.Node[T, A, AP]) {
	at := Nth(root, i)
	if at == nil {
		return root, nil
	}
	left := at.TakeChild(abstract.Left)
	right := at.TakeChild(abstract.Right)
	switch {
	case left == nil:
		return right, at
	case right == nil:
		return left, at
	}
	// Splay the maximum of the left tree; it has no right child.
	last := left.Extreme(abstract.Right)
	last.Splay()
	last.SetChild(abstract.Right, right)
	return last, at
}
