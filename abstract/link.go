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
	"github.com/cockroachdb/errors"
)

// Child returns the child of n in direction d, or nil.
func (n *Node[T, A, AP]) Child(d Dir) *Node[T, A, AP] {
	checkDir(d)
	return n.children[d]
}

// Parent returns the parent of n, or nil if n is a root.
func (n *Node[T, A, AP]) Parent() *Node[T, A, AP] {
	return n.parent.node
}

// ParentDir returns the slot of the parent which holds n. It is illegal to
// call ParentDir on a root.
func (n *Node[T, A, AP]) ParentDir() Dir {
	if n.parent.node == nil {
		panic(errors.AssertionFailedf("ParentDir called on a root"))
	}
	return n.parent.dir
}

// IsRoot returns true if n has no parent.
func (n *Node[T, A, AP]) IsRoot() bool {
	return n.parent.node == nil
}

// SetChild makes c the child of n in direction d. The previous child in
// that slot is detached and becomes a root. If c is non-nil it is first
// detached from its current parent. The aggregates of every node whose
// subtree changed are recomputed.
//
// It is illegal to attach n or one of its ancestors below n.
func (n *Node[T, A, AP]) SetChild(d Dir, c *Node[T, A, AP]) {
	checkDir(d)
	var prev *Node[T, A, AP]
	if c != nil {
		for cur := n; cur != nil; cur = cur.parent.node {
			if cur == c {
				panic(errors.AssertionFailedf("SetChild would make %v its own ancestor", c.value))
			}
		}
		prev = c.parent.node
	}
	n.setChild(d, c)
	if prev != nil {
		prev.UpdatePath()
	}
	n.UpdatePath()
}

// TakeChild detaches and returns the child of n in direction d, or nil.
// The detached child becomes a root.
func (n *Node[T, A, AP]) TakeChild(d Dir) *Node[T, A, AP] {
	checkDir(d)
	c := n.takeChild(d)
	if c != nil {
		n.UpdatePath()
	}
	return c
}

// TakeParent detaches n from its parent, making n a root. It returns the
// former parent and the slot n occupied; the parent is nil if n was
// already a root.
func (n *Node[T, A, AP]) TakeParent() (*Node[T, A, AP], Dir) {
	p := n.takeParent()
	if p.node != nil {
		p.node.UpdatePath()
	}
	return p.node, p.dir
}

// SetParent makes n the child of p in direction d. A nil p detaches n from
// its parent.
func (n *Node[T, A, AP]) SetParent(p *Node[T, A, AP], d Dir) {
	if p == nil {
		n.TakeParent()
		return
	}
	p.SetChild(d, n)
}

// The unexported link primitives below only perform pointer surgery; they
// never recompute aggregates. Each of them severs the existing links on
// both ends before installing new ones.

func (n *Node[T, A, AP]) takeChild(d Dir) *Node[T, A, AP] {
	c := n.children[d]
	if c != nil {
		n.children[d] = nil
		c.parent = parentLink[T, A, AP]{}
	}
	return c
}

func (n *Node[T, A, AP]) takeParent() parentLink[T, A, AP] {
	p := n.parent
	if p.node != nil {
		p.node.children[p.dir] = nil
		n.parent = parentLink[T, A, AP]{}
	}
	return p
}

func (n *Node[T, A, AP]) setChild(d Dir, c *Node[T, A, AP]) {
	n.takeChild(d)
	if c == nil {
		return
	}
	c.takeParent()
	c.parent = parentLink[T, A, AP]{node: n, dir: d}
	n.children[d] = c
}

func (n *Node[T, A, AP]) setParent(p parentLink[T, A, AP]) {
	n.takeParent()
	if p.node != nil {
		p.node.setChild(p.dir, n)
	}
}
