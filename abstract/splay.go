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

import "github.com/cockroachdb/errors"

// Zig rotates n in direction d. It is the splay step used when the node
// being splayed is a child of the root n.
func (n *Node[T, A, AP]) Zig(d Dir) {
	n.Rotate(d)
}

// ZigZig rotates the grandparent n twice in direction d. It is the splay
// step used when the node being splayed and its parent are both children
// on the d.Opposite() side. Afterwards the former grandchild is in n's old
// position.
//
//	        n                  x
//	       / \                / \
//	      p   d              a   p
//	     / \        ->          / \
//	    x   c                  b   n
//	   / \                        / \
//	  a   b                      c   d
func (n *Node[T, A, AP]) ZigZig(d Dir) {
	top := n.zigZig(d)
	if p := top.parent.node; p != nil {
		p.UpdatePath()
	}
}

// ZigZag rotates the child of n on the d.Opposite() side in direction
// d.Opposite() and then n in direction d. It is the splay step used when
// the node being splayed and its parent are children on opposite sides.
//
//	        n                  x
//	       / \               /   \
//	      p   d             p     n
//	     / \       ->      / \   / \
//	    a   x             a   b c   d
//	       / \
//	      b   c
func (n *Node[T, A, AP]) ZigZag(d Dir) {
	top := n.zigZag(d)
	if p := top.parent.node; p != nil {
		p.UpdatePath()
	}
}

func (n *Node[T, A, AP]) zigZig(d Dir) *Node[T, A, AP] {
	return n.rotate(d).rotate(d)
}

func (n *Node[T, A, AP]) zigZag(d Dir) *Node[T, A, AP] {
	o := d.Opposite()
	c := n.children[o]
	if c == nil {
		panic(errors.AssertionFailedf(
			"cannot zig-zag %v %s without a %s child", n.value, d, o))
	}
	c.rotate(o)
	return n.rotate(d)
}

// Splay moves n to the root of its tree with a sequence of zig, zig-zig
// and zig-zag steps. The in-order sequence of the tree is unchanged and
// every aggregate on the path is recomputed. Splay on a root is a no-op.
func (n *Node[T, A, AP]) Splay() {
	for n.parent.node != nil {
		p := n.parent.node
		g := p.parent.node
		if g == nil {
			p.rotate(n.parent.dir.Opposite())
			continue
		}
		if n.parent.dir == p.parent.dir {
			g.zigZig(p.parent.dir.Opposite())
		} else {
			g.zigZag(p.parent.dir.Opposite())
		}
	}
}
