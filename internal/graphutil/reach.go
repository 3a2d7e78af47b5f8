// Copyright (c) the Flowscope authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graphutil

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// DirectedFromEdges builds a gonum directed graph over the given node ids.
// Self-edges are skipped: simple graphs reject them and they never change
// reachability.
func DirectedFromEdges(nodes []int64, edges [][2]int64) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for _, id := range nodes {
		if g.Node(id) == nil {
			g.AddNode(simple.Node(id))
		}
	}
	for _, e := range edges {
		if e[0] == e[1] {
			continue
		}
		if g.Node(e[0]) == nil || g.Node(e[1]) == nil {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(e[0]), simple.Node(e[1])))
	}
	return g
}

// ReachableFrom returns the set of node ids reachable from the given node,
// including the node itself. An id absent from the graph yields an empty set.
func ReachableFrom(g *simple.DirectedGraph, from int64) map[int64]bool {
	reached := map[int64]bool{}
	start := g.Node(from)
	if start == nil {
		return reached
	}
	bf := traverse.BreadthFirst{
		Visit: func(n graph.Node) { reached[n.ID()] = true },
	}
	bf.Walk(g, start, nil)
	return reached
}
