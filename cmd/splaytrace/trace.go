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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/ajwerner/splaytree"
	"github.com/ajwerner/splaytree/abstract"
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	shapeChain    = "chain"
	shapeBalanced = "balanced"
)

// step records the state of the tree after one lookup.
type step struct {
	access int
	found  bool
	root   int
	size   int
	depth  int
	dump   string
}

// parseInts accepts both repeated flags and comma or space separated lists,
// since environment variables arrive as a single string.
func parseInts(raw []string) ([]int, error) {
	var out []int
	for _, s := range raw {
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, f := range fields {
			i, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing %q", f)
			}
			out = append(out, i)
		}
	}
	return out, nil
}

// buildTree links the distinct values into a tree of the requested shape.
// A chain hangs every value off the left of the next larger one so that the
// smallest value sits at the bottom of a path as deep as the tree is large.
func buildTree(values []int, shape string) (*splaytree.Node[int], error) {
	vals := slices.Clone(values)
	slices.Sort(vals)
	vals = slices.Compact(vals)
	if len(vals) == 0 {
		return nil, errors.New("no values to insert")
	}
	switch shape {
	case shapeChain:
		var root *splaytree.Node[int]
		for _, v := range vals {
			n := splaytree.New(v)
			if root != nil {
				n.SetChild(abstract.Left, root)
			}
			root = n
		}
		return root, nil
	case shapeBalanced:
		return buildBalanced(vals), nil
	default:
		return nil, errors.Newf("unknown shape %q", shape)
	}
}

func buildBalanced(vals []int) *splaytree.Node[int] {
	if len(vals) == 0 {
		return nil
	}
	mid := len(vals) / 2
	n := splaytree.New(vals[mid])
	if l := buildBalanced(vals[:mid]); l != nil {
		n.SetChild(abstract.Left, l)
	}
	if r := buildBalanced(vals[mid+1:]); r != nil {
		n.SetChild(abstract.Right, r)
	}
	return n
}

// replay runs Find for every key in access. A hit becomes the new root; a
// miss leaves the tree as it was.
func replay(
	logger *slog.Logger, root *splaytree.Node[int], access []int, dump bool,
) (*splaytree.Node[int], []step) {
	steps := make([]step, 0, len(access))
	for _, k := range access {
		found := root.Find(splaytree.CompareTo(k))
		if found != nil {
			root = found
		}
		s := step{
			access: k,
			found:  found != nil,
			root:   root.Value(),
			size:   root.Size(),
			depth:  root.Depth(),
		}
		if dump {
			s.dump = root.String()
		}
		logger.Debug("lookup", "key", k, "found", s.found, "root", s.root, "depth", s.depth)
		steps = append(steps, s)
	}
	return root, steps
}

func render(w io.Writer, steps []step) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"#", "Access", "Found", "Root", "Size", "Depth"})
	for i, s := range steps {
		tbl.AppendRow(table.Row{i + 1, s.access, s.found, s.root, s.size, s.depth})
	}
	tbl.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d lookups", len(steps))})
	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return errors.Wrap(err, "writing table")
	}
	for i, s := range steps {
		if s.dump == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d: %s\n", i+1, s.dump); err != nil {
			return errors.Wrap(err, "writing dump")
		}
	}
	return nil
}

func run(w io.Writer, logger *slog.Logger, cfg config) error {
	values := cfg.Values
	if len(values) == 0 {
		if cfg.Size <= 0 {
			return errors.Newf("size must be positive, got %d", cfg.Size)
		}
		values = make([]int, cfg.Size)
		for i := range values {
			values[i] = i + 1
		}
	}
	root, err := buildTree(values, cfg.Shape)
	if err != nil {
		return err
	}
	logger.Info("built tree", "shape", cfg.Shape, "size", root.Size(), "depth", root.Depth())
	root, steps := replay(logger, root, cfg.Access, cfg.Dump)
	if err := root.Verify(); err != nil {
		return errors.Wrap(err, "tree corrupted during replay")
	}
	return render(w, steps)
}
