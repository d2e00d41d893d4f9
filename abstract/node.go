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

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Node is a node of a splay tree augmented with A. A *Node is the handle
// through which every tree operation is invoked; the tree itself is just
// the graph formed by the links between nodes.
//
// Nodes are not safe for concurrent use. Callers that share nodes between
// goroutines must serialize all access to the tree they belong to.
type Node[T, A any, AP Aug[T, A]] struct {
	parent   parentLink[T, A, AP]
	children [2]*Node[T, A, AP]
	size     int
	depth    int
	value    T
	aug      A
}

// parentLink is the back-reference from a child to its parent. dir records
// which of the parent's slots holds the child.
type parentLink[T, A any, AP Aug[T, A]] struct {
	node *Node[T, A, AP]
	dir  Dir
}

// New returns a root node with no children holding value. The augmentation
// is evaluated once before New returns.
func New[T, A any, AP Aug[T, A]](value T) *Node[T, A, AP] {
	n := &Node[T, A, AP]{
		size:  1,
		depth: 1,
		value: value,
	}
	AP(&n.aug).Update(n)
	return n
}

// Value returns the value stored in n.
func (n *Node[T, A, AP]) Value() T {
	return n.value
}

// ValuePtr returns a pointer to the value stored in n. A caller that
// changes the value in a way that affects the augmentation must call
// UpdatePath afterwards. Changing the value in a way that affects its
// order relative to other nodes breaks the search order.
func (n *Node[T, A, AP]) ValuePtr() *T {
	return &n.value
}

// Aug returns the augmentation of n.
func (n *Node[T, A, AP]) Aug() *A {
	return &n.aug
}

// ChildAug returns the augmentation of the child in direction d, or nil.
func (n *Node[T, A, AP]) ChildAug(d Dir) *A {
	if c := n.Child(d); c != nil {
		return &c.aug
	}
	return nil
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node[T, A, AP]) Size() int {
	return n.size
}

// Depth returns the height of the subtree rooted at n; 1 for a leaf.
func (n *Node[T, A, AP]) Depth() int {
	return n.depth
}

// Update recomputes the size and depth of n from its children and then
// updates the augmentation. The children must already be up to date.
func (n *Node[T, A, AP]) Update() {
	size, depth := 1, 0
	for _, c := range n.children {
		if c != nil {
			size += c.size
			depth = max(depth, c.depth)
		}
	}
	n.size = size
	n.depth = depth + 1
	AP(&n.aug).Update(n)
}

// UpdatePath updates n and then each of its ancestors, bottom-up.
func (n *Node[T, A, AP]) UpdatePath() {
	for cur := n; cur != nil; cur = cur.parent.node {
		cur.Update()
	}
}

// Root returns the root of the tree containing n.
func (n *Node[T, A, AP]) Root() *Node[T, A, AP] {
	cur := n
	for cur.parent.node != nil {
		cur = cur.parent.node
	}
	return cur
}

// Extreme returns the last node reached by repeatedly descending in
// direction d from n: the minimum of the subtree for Left and the maximum
// for Right.
func (n *Node[T, A, AP]) Extreme(d Dir) *Node[T, A, AP] {
	checkDir(d)
	cur := n
	for cur.children[d] != nil {
		cur = cur.children[d]
	}
	return cur
}

// String returns a description of the subtree rooted at n in the form
// (size, depth, value)[left, right] where absent children print as Nil.
func (n *Node[T, A, AP]) String() string {
	var b strings.Builder
	n.writeString(&b)
	return b.String()
}

func (n *Node[T, A, AP]) writeString(b *strings.Builder) {
	if n == nil {
		b.WriteString("Nil")
		return
	}
	fmt.Fprintf(b, "(%d, %d, %v)[", n.size, n.depth, n.value)
	n.children[Left].writeString(b)
	b.WriteString(", ")
	n.children[Right].writeString(b)
	b.WriteString("]")
}

// Verify checks the subtree rooted at n and returns an error describing the
// first broken invariant: a child whose parent link does not point back at
// its holder with the right direction, or a cached size or depth which does
// not match the children.
func (n *Node[T, A, AP]) Verify() error {
	if n == nil {
		return nil
	}
	var s iterStack[T, A, AP]
	s.push(n)
	for s.len() > 0 {
		cur := s.pop()
		if err := cur.verifyLocal(); err != nil {
			return err
		}
		for _, c := range cur.children {
			if c != nil {
				s.push(c)
			}
		}
	}
	return nil
}

// verifyLocal checks the links between n and its children and the cached
// aggregates of n. It trusts the aggregates of the children.
func (n *Node[T, A, AP]) verifyLocal() error {
	size, depth := 1, 0
	for d, c := range n.children {
		if c == nil {
			continue
		}
		if c.parent.node != n {
			return errors.AssertionFailedf(
				"%s child %v of %v does not link back to it", Dir(d), c.value, n.value)
		}
		if c.parent.dir != Dir(d) {
			return errors.AssertionFailedf(
				"%s child %v of %v is tagged %s", Dir(d), c.value, n.value, c.parent.dir)
		}
		size += c.size
		depth = max(depth, c.depth)
	}
	if n.size != size {
		return errors.AssertionFailedf("node %v has size %d, expected %d", n.value, n.size, size)
	}
	if n.depth != depth+1 {
		return errors.AssertionFailedf("node %v has depth %d, expected %d", n.value, n.depth, depth+1)
	}
	return nil
}
