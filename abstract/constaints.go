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
	"strconv"

	"github.com/cockroachdb/errors"
)

// Dir identifies a child slot of a node. The zero value is Left.
type Dir int

const (
	Left Dir = iota
	Right
)

// Opposite returns the other direction.
func (d Dir) Opposite() Dir {
	checkDir(d)
	return 1 ^ d
}

func (d Dir) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "Dir(" + strconv.Itoa(int(d)) + ")"
	}
}

func checkDir(d Dir) {
	if d != Left && d != Right {
		panic(errors.AssertionFailedf("invalid direction %d", errors.Safe(int(d))))
	}
}

// View is the read-only view of a node exposed to augmentations.
type View[T, A any] interface {

	// Value returns the value stored in the node.
	Value() T

	// Size returns the number of nodes in the subtree rooted at the node.
	// It is already recomputed when Update is called.
	Size() int

	// Depth returns the height of the subtree rooted at the node.
	// It is already recomputed when Update is called.
	Depth() int

	// ChildAug returns the augmentation of the child in the given
	// direction, or nil if there is no such child.
	ChildAug(d Dir) A
}

// Aug is a data structure which augments a node of the tree. It is updated
// when the structure or contents of the subtree rooted at the current node
// changes, after the node's size and depth have been recomputed. Update
// must only read the node and the augmentations of its children, and must
// not change the shape of the tree.
type Aug[T, A any] interface {
	*A
	Update(n View[T, *A])
}
