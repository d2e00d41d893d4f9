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

package abstract

// Iterator performs in-order traversal of the subtree rooted at a node.
// It is not safe to continue using an Iterator after the tree changes
// shape; Find and Splay change the shape. Create a new Iterator instead.
type Iterator[T, A any, AP Aug[T, A]] struct {
	root *Node[T, A, AP]
	cur  *Node[T, A, AP]
}

// MakeIter returns an Iterator over the subtree rooted at n. The Iterator
// is not positioned; call First or Last.
func (n *Node[T, A, AP]) MakeIter() Iterator[T, A, AP] {
	return Iterator[T, A, AP]{root: n}
}

// First positions the Iterator at the first node of the subtree.
func (i *Iterator[T, A, AP]) First() {
	i.cur = nil
	if i.root != nil {
		i.cur = i.root.Extreme(Left)
	}
}

// Last positions the Iterator at the last node of the subtree.
func (i *Iterator[T, A, AP]) Last() {
	i.cur = nil
	if i.root != nil {
		i.cur = i.root.Extreme(Right)
	}
}

// Next positions the Iterator at the node immediately following its
// current position.
func (i *Iterator[T, A, AP]) Next() {
	i.cur = i.step(Right)
}

// Prev positions the Iterator at the node immediately preceding its
// current position.
func (i *Iterator[T, A, AP]) Prev() {
	i.cur = i.step(Left)
}

// step moves one position towards d without leaving the subtree.
func (i *Iterator[T, A, AP]) step(d Dir) *Node[T, A, AP] {
	n := i.cur
	if n == nil {
		return nil
	}
	if c := n.children[d]; c != nil {
		return c.Extreme(d.Opposite())
	}
	for n != i.root {
		p, pd := n.parent.node, n.parent.dir
		if pd != d {
			return p
		}
		n = p
	}
	return nil
}

// Valid returns whether the Iterator is positioned at a node.
func (i *Iterator[T, A, AP]) Valid() bool {
	return i.cur != nil
}

// Cur returns the value at the Iterator's current position. It is illegal
// to call Cur if the Iterator is not valid.
func (i *Iterator[T, A, AP]) Cur() T {
	return i.cur.value
}

// Node returns the node at the Iterator's current position, or nil.
func (i *Iterator[T, A, AP]) Node() *Node[T, A, AP] {
	return i.cur
}

// Walk calls fn for each node of the subtree rooted at n in order until fn
// returns false. fn must not change the shape of the tree.
func (n *Node[T, A, AP]) Walk(fn func(*Node[T, A, AP]) bool) {
	var s iterStack[T, A, AP]
	cur := n
	for cur != nil || s.len() > 0 {
		for ; cur != nil; cur = cur.children[Left] {
			s.push(cur)
		}
		cur = s.pop()
		if !fn(cur) {
			return
		}
		cur = cur.children[Right]
	}
}

// AppendValues appends the values of the subtree rooted at n to dst in
// order and returns the extended slice.
func (n *Node[T, A, AP]) AppendValues(dst []T) []T {
	n.Walk(func(m *Node[T, A, AP]) bool {
		dst = append(dst, m.value)
		return true
	})
	return dst
}
