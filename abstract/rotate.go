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
	"github.com/ajwerner/splaytree/internal/invariants"
	"github.com/cockroachdb/errors"
)

// Rotate rotates n in direction d and returns the node which took n's
// place: the former child of n in direction d.Opposite(). The in-order
// sequence of the subtree is preserved. The aggregates of n, of the
// returned node and of all their ancestors are recomputed.
//
// For example, n.Rotate(Right):
//
//	        n            c
//	       / \          / \
//	      c   z   ->   x   n
//	     / \              / \
//	    x   y            y   z
//
// It is illegal to rotate n if it has no child in direction d.Opposite().
func (n *Node[T, A, AP]) Rotate(d Dir) *Node[T, A, AP] {
	c := n.rotate(d)
	if p := c.parent.node; p != nil {
		p.UpdatePath()
	}
	return c
}

// rotate performs the rotation and recomputes only n and the returned node.
// The ancestors' depths may be stale until they are recomputed or rotated
// themselves.
func (n *Node[T, A, AP]) rotate(d Dir) *Node[T, A, AP] {
	o := d.Opposite()
	c := n.children[o]
	if c == nil {
		panic(errors.AssertionFailedf(
			"cannot rotate %v %s without a %s child", n.value, d, o))
	}
	n.takeChild(o)
	c.setParent(n.takeParent())
	n.setChild(o, c.takeChild(d))
	c.setChild(d, n)
	n.Update()
	c.Update()
	if invariants.Enabled {
		for _, m := range [2]*Node[T, A, AP]{n, c} {
			if err := m.verifyLocal(); err != nil {
				panic(err)
			}
		}
	}
	return c
}
