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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotate(t *testing.T) {
	nodes := build(4, 2, 6, 1, 3, 5, 7)
	top := nodes[4].Rotate(Right)
	require.Same(t, nodes[2], top)
	require.True(t, top.IsRoot())
	require.Equal(t,
		"(7, 4, 2)[(1, 1, 1)[Nil, Nil], (5, 3, 4)[(1, 1, 3)[Nil, Nil], (3, 2, 6)[(1, 1, 5)[Nil, Nil], (1, 1, 7)[Nil, Nil]]]]",
		top.String())
	requireConsistent(t, top)

	top = top.Rotate(Left)
	require.Same(t, nodes[4], top)
	require.Equal(t,
		"(7, 3, 4)[(3, 2, 2)[(1, 1, 1)[Nil, Nil], (1, 1, 3)[Nil, Nil]], (3, 2, 6)[(1, 1, 5)[Nil, Nil], (1, 1, 7)[Nil, Nil]]]",
		top.String())
}

func TestRotateWithoutChild(t *testing.T) {
	nodes := build(2, 1)
	requireAssertionPanic(t, func() { nodes[2].Rotate(Left) })
	requireAssertionPanic(t, func() { nodes[1].Rotate(Right) })
	requireAssertionPanic(t, func() { nodes[2].Rotate(Dir(7)) })
	requireConsistent(t, nodes[2])
}

func TestRotateInner(t *testing.T) {
	// Rotating below the root keeps the ancestors' aggregates current.
	nodes := build(8, 4, 12, 2, 6, 1, 3)
	top := nodes[4].Rotate(Right)
	require.Same(t, nodes[2], top)
	require.Same(t, nodes[8], top.Parent())
	require.Equal(t, Left, top.ParentDir())
	require.Equal(t, []int{1, 2, 3, 4, 6, 8, 12}, values(nodes[8]))
	requireConsistent(t, nodes[8])
}

func TestRotatePreservesOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const n = 64
	nodes := randomTree(rng, n)
	for i := 0; i < 1000; i++ {
		m := nodes[rng.Intn(n)]
		d := Dir(rng.Intn(2))
		if m.Child(d.Opposite()) == nil {
			continue
		}
		before := m.String()
		top := m.Rotate(d)
		require.Equal(t, sorted(n), values(m.Root()))
		requireConsistent(t, m)

		// Rotating back restores the original subtree.
		require.Same(t, m, top.Rotate(d.Opposite()))
		require.Equal(t, before, m.String())
		requireConsistent(t, m)

		// Leave the tree rotated so that the next iterations see new shapes.
		m.Rotate(d)
	}
}

func TestZigSteps(t *testing.T) {
	t.Run("zig", func(t *testing.T) {
		nodes := build(2, 1, 3)
		nodes[2].Zig(Right)
		require.True(t, nodes[1].IsRoot())
		require.Equal(t, "(3, 3, 1)[Nil, (2, 2, 2)[Nil, (1, 1, 3)[Nil, Nil]]]", nodes[1].String())
	})
	t.Run("zig-zig", func(t *testing.T) {
		nodes := build(3, 2, 1)
		nodes[3].ZigZig(Right)
		require.True(t, nodes[1].IsRoot())
		require.Equal(t, "(3, 3, 1)[Nil, (2, 2, 2)[Nil, (1, 1, 3)[Nil, Nil]]]", nodes[1].String())
		requireConsistent(t, nodes[1])
	})
	t.Run("zig-zag", func(t *testing.T) {
		nodes := build(3, 1, 2)
		nodes[3].ZigZag(Right)
		require.True(t, nodes[2].IsRoot())
		require.Equal(t, "(3, 2, 2)[(1, 1, 1)[Nil, Nil], (1, 1, 3)[Nil, Nil]]", nodes[2].String())
		requireConsistent(t, nodes[2])
	})
	t.Run("zig-zag without a child", func(t *testing.T) {
		nodes := build(3, 4)
		requireAssertionPanic(t, func() { nodes[3].ZigZag(Right) })
		require.True(t, nodes[3].IsRoot())
		requireConsistent(t, nodes[3])

		// The inner rotation needs a grandchild on the inner side.
		nodes = build(3, 1)
		requireAssertionPanic(t, func() { nodes[3].ZigZag(Right) })
		require.True(t, nodes[3].IsRoot())
		require.Equal(t, []int{1, 3}, values(nodes[3]))
		requireConsistent(t, nodes[3])
	})
	t.Run("below the root", func(t *testing.T) {
		nodes := build(10, 3, 2, 1, 11)
		nodes[3].ZigZig(Right)
		require.Same(t, nodes[10], nodes[1].Parent())
		require.Equal(t, []int{1, 2, 3, 10, 11}, values(nodes[10]))
		requireConsistent(t, nodes[10])

		nodes = build(10, 3, 1, 2, 11)
		nodes[3].ZigZag(Right)
		require.Same(t, nodes[10], nodes[2].Parent())
		requireConsistent(t, nodes[10])
	})
}

func TestSplay(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const n = 100
	nodes := randomTree(rng, n)
	for i := 0; i < 500; i++ {
		m := nodes[rng.Intn(n)]
		m.Splay()
		require.True(t, m.IsRoot())
		require.Equal(t, n, m.Size())
		require.Equal(t, sorted(n), values(m))
		requireConsistent(t, m)
	}
}

func TestSplayRoot(t *testing.T) {
	nodes := build(2, 1, 3)
	before := nodes[2].String()
	nodes[2].Splay()
	require.Equal(t, before, nodes[2].String())
}

func TestSplayChain(t *testing.T) {
	nodes := chain(7)
	require.Equal(t, 7, nodes[1].Depth())
	nodes[4].Splay()
	require.True(t, nodes[4].IsRoot())
	require.Equal(t, 7, nodes[4].Size())
	require.LessOrEqual(t, nodes[4].Depth(), 4)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, values(nodes[4]))
	requireConsistent(t, nodes[4])
}

func TestSplayDeepChainHalvesDepth(t *testing.T) {
	const n = 1024
	nodes := chain(n)
	nodes[n].Splay()
	require.Equal(t, n/2+2, nodes[n].Depth())
	require.Equal(t, sorted(n+1)[1:], values(nodes[n]))
	requireConsistent(t, nodes[n])
}

func TestFind(t *testing.T) {
	ascending := func(key int) func(int) int {
		return func(v int) int { return v - key }
	}
	nodes := build(5, 3, 8, 1, 4)
	root := nodes[5]

	got := root.Find(ascending(4))
	require.NotNil(t, got)
	require.Equal(t, 4, got.Value())
	require.True(t, got.IsRoot())
	require.Equal(t, []int{1, 3, 4, 5, 8}, values(got))
	requireConsistent(t, got)

	before := got.String()
	require.Nil(t, got.Find(ascending(99)))
	require.Equal(t, before, got.String())
	require.Nil(t, got.Find(ascending(2)))
	require.Equal(t, before, got.String())

	for _, v := range []int{1, 3, 4, 5, 8} {
		found := nodes[v].Root().Find(ascending(v))
		require.Same(t, nodes[v], found)
		require.True(t, found.IsRoot())
		requireConsistent(t, found)
	}
}

func TestSeek(t *testing.T) {
	ascending := func(key int) func(int) int {
		return func(v int) int { return v - key }
	}
	nodes := build(5, 3, 8, 1, 4)
	last, found := nodes[5].Seek(ascending(2))
	require.False(t, found)
	require.Same(t, nodes[1], last)
	require.True(t, nodes[5].IsRoot())

	last, found = nodes[5].Seek(ascending(8))
	require.True(t, found)
	require.Same(t, nodes[8], last)
	require.True(t, nodes[5].IsRoot())

	var nilNode *intNode
	last, found = nilNode.Seek(ascending(1))
	require.Nil(t, last)
	require.False(t, found)
}

func TestAugmentationConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const n = 80
	nodes := randomTree(rng, n)
	for i := 0; i < 2000; i++ {
		m := nodes[rng.Intn(n)]
		switch rng.Intn(4) {
		case 0:
			m.Splay()
		case 1:
			d := Dir(rng.Intn(2))
			if m.Child(d.Opposite()) != nil {
				m.Rotate(d)
			}
		case 2:
			root := m.Root()
			root.Find(func(v int) int { return v - m.Value() })
		case 3:
			// Shift the value and back so the search order survives.
			delta := rng.Intn(10) + 1
			*m.ValuePtr() += delta
			m.UpdatePath()
			require.Equal(t, n*(n-1)/2+delta, m.Root().Aug().sum)
			requireConsistent(t, m)
			*m.ValuePtr() -= delta
			m.UpdatePath()
			require.Equal(t, n*(n-1)/2, m.Root().Aug().sum)
		}
		if i%50 == 0 {
			requireConsistent(t, m)
		}
	}
	requireConsistent(t, anyNode(nodes))
	require.Equal(t, n*(n-1)/2, anyNode(nodes).Root().Aug().sum)
}
