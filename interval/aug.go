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

package interval

import (
	"github.com/ajwerner/splaytree/abstract"
	"golang.org/x/exp/constraints"
)

// aug caches the largest End of any interval in the subtree.
type aug[K constraints.Ordered, I Interval[K]] struct {
	upper K
}

// Update recomputes the upper bound from the node's own interval and the
// bounds already cached in its children.
func (a *aug[K, I]) Update(n abstract.View[I, *aug[K, I]]) {
	up := n.Value().End()
	for d := abstract.Left; d <= abstract.Right; d++ {
		if c := n.ChildAug(d); c != nil && c.upper > up {
			up = c.upper
		}
	}
	a.upper = up
}
