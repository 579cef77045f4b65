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

package model

import "sort"

// Edge is one projected dependency edge: ServiceClass depends on
// ImplementingClass to satisfy the dependency declared under Token
// (the SanitizedKey of the requested type). Optional is true if the
// constructor parameter that induced this edge is optional.
type Edge struct {
	ServiceClass      string
	ImplementingClass string
	Token             string
	Optional          bool
}

// DependencyGraph is the class-to-class projection of a DependencyTable
// once every dependency has been resolved to an implementing class.
// Interfaces are not nodes in this projection, only classes are, because
// cycles are only meaningful between the classes that actually get
// instantiated.
type DependencyGraph struct {
	// Nodes is every class that appears as a service, a dependency target,
	// or both.
	Nodes []string
	// Edges is every projected dependency edge.
	Edges []Edge

	adjacency map[string][]Edge
}

// NewDependencyGraph builds a DependencyGraph from a set of edges. Isolated
// nodes (services with no dependencies and no dependents) can be added via
// extraNodes.
func NewDependencyGraph(edges []Edge, extraNodes ...string) *DependencyGraph {
	nodeSet := make(map[string]struct{})
	adjacency := make(map[string][]Edge)
	for _, e := range edges {
		nodeSet[e.ServiceClass] = struct{}{}
		nodeSet[e.ImplementingClass] = struct{}{}
		adjacency[e.ServiceClass] = append(adjacency[e.ServiceClass], e)
	}
	for _, n := range extraNodes {
		nodeSet[n] = struct{}{}
	}
	nodes := make([]string, 0, len(nodeSet))
	for n := range nodeSet {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	for _, es := range adjacency {
		sort.Slice(es, func(i, j int) bool {
			return es[i].ImplementingClass < es[j].ImplementingClass
		})
	}
	return &DependencyGraph{Nodes: nodes, Edges: edges, adjacency: adjacency}
}

// Out returns the outgoing edges for a class, in deterministic order.
func (g *DependencyGraph) Out(class string) []Edge {
	return g.adjacency[class]
}
