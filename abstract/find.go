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

// Find searches the subtree rooted at n. cmp reports how a node's value
// orders relative to the target: negative if the value is before the
// target, positive if it is after and zero if it is the target. With a
// comparator derived from an ascending order, values before the target
// are found in the Right subtree.
//
// If a node matches, it is splayed to the root of the whole tree and
// returned. Otherwise Find returns nil and does not change the tree; use
// Seek to splay the last visited node on a miss.
func (n *Node[T, A, AP]) Find(cmp func(T) int) *Node[T, A, AP] {
	last, found := n.Seek(cmp)
	if !found {
		return nil
	}
	last.Splay()
	return last
}

// Seek performs the same descent as Find without changing the tree. It
// returns the matching node and true, or the last node visited and false.
// The returned node is nil only if n is nil.
func (n *Node[T, A, AP]) Seek(cmp func(T) int) (last *Node[T, A, AP], found bool) {
	for cur := n; cur != nil; {
		last = cur
		c := cmp(cur.value)
		switch {
		case c == 0:
			return cur, true
		case c > 0:
			cur = cur.children[Left]
		default:
			cur = cur.children[Right]
		}
	}
	return last, false
}
