// Copyright (c) 2025-present deep.rent GmbH (https://deep.rent)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validate

import (
	"sort"
	"strings"

	"github.com/deep-rent/wireup/model"
)

type color uint8

const (
	white color = iota
	gray
	black
)

// cycle is one discovered cycle: the ordered list of classes it passes
// through, and whether every edge along it is non-optional.
type cycle struct {
	path        []string
	allRequired bool
}

// key canonicalizes a cycle by rotating it to start at its lexicographically
// smallest member, so the same cycle discovered from different entry points
// dedupes to one finding.
func (c cycle) key() string {
	if len(c.path) == 0 {
		return ""
	}
	min := 0
	for i, n := range c.path {
		if n < c.path[min] {
			min = i
		}
	}
	rotated := append(append([]string{}, c.path[min:]...), c.path[:min]...)
	return strings.Join(rotated, ">")
}

// findCycles runs a 3-color DFS over g. It returns every distinct simple
// cycle, with allRequired computed from whether any traversed edge was
// optional.
func findCycles(g *model.DependencyGraph) []cycle {
	colors := make(map[string]color, len(g.Nodes))
	var path []string
	var optionalOnPath []bool
	seen := make(map[string]struct{})
	var found []cycle

	var visit func(node string)
	visit = func(node string) {
		colors[node] = gray
		path = append(path, node)

		for _, e := range g.Out(node) {
			switch colors[e.ImplementingClass] {
			case white:
				optionalOnPath = append(optionalOnPath, e.Optional)
				visit(e.ImplementingClass)
				optionalOnPath = optionalOnPath[:len(optionalOnPath)-1]
			case gray:
				idx := indexOf(path, e.ImplementingClass)
				if idx < 0 {
					continue
				}
				members := append([]string{}, path[idx:]...)
				required := true
				for _, opt := range optionalOnPath[idx:] {
					if opt {
						required = false
						break
					}
				}
				if e.Optional {
					required = false
				}
				c := cycle{path: members, allRequired: required}
				k := c.key()
				if _, dup := seen[k]; !dup {
					seen[k] = struct{}{}
					found = append(found, c)
				}
			case black:
				// cross edge, not part of any cycle through node.
			}
		}

		path = path[:len(path)-1]
		colors[node] = black
	}

	for _, n := range g.Nodes {
		if colors[n] == white {
			visit(n)
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].key() < found[j].key() })
	return found
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
