// File: structural.go
// Role: StructuralBackboneEdges — the Simas/Costa variants that
// reproduce ParetoBackboneEdges' edge set without a precomputed closure.
package backbone

import (
	"fmt"
	"sort"

	"github.com/CASCI-lab/Multilayer-Backbone/layergraph"
	"github.com/CASCI-lab/Multilayer-Backbone/multidist"
	"github.com/CASCI-lab/Multilayer-Backbone/pareto"
)

// StructuralBackboneEdges runs one pareto.Search per node of g and
// tests each of that node's outgoing intralayer edges for Pareto
// redundancy directly against the search result — the same dominance
// condition ParetoBackboneEdges applies to a precomputed closure, since
// closure[u][v] and a single-source search from u rooted at v agree by
// construction.
//
// Simas additionally short-circuits zero-weight candidates: a
// zero-weight singleton vector has no strictly-smaller component to be
// dominated by, so it is never redundant and is skipped without
// consulting the search result at all ("prune by Pareto dominance of
// the direct edge"). Costa always consults the completed search result
// for every edge ("closure-complete comparison"). Both variants
// necessarily agree with ParetoBackboneEdges on every input (P7).
//
// Complexity: O(V) independent pareto.Search calls, each O(deg(u))
// additional dominance tests.
func StructuralBackboneEdges(g *layergraph.Graph, variant StructuralVariant, attr string, opts ...pareto.Option) (map[Edge]struct{}, error) {
	if g == nil {
		return nil, pareto.ErrNilGraph
	}

	marked := make(map[Edge]struct{})

	for _, u := range g.Nodes() {
		dist, err := pareto.Search(g, u, opts...)
		if err != nil {
			return nil, err
		}

		idx, err := g.LayerIndex(u.LayerID)
		if err != nil {
			return nil, err
		}

		edges, err := g.OutEdges(u)
		if err != nil {
			return nil, err
		}

		candidates := make([]layergraph.Edge, len(edges))
		copy(candidates, edges)
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].Weight(attr) < candidates[j].Weight(attr)
		})

		for _, e := range candidates {
			w := e.Weight(attr)
			if variant == Simas && w == 0 {
				continue
			}

			vec := multidist.Zero(g.LayerCount())
			if err := vec.AddToLayer(idx, w); err != nil {
				return nil, err
			}

			labels, ok := dist[e.To]
			if !ok {
				return nil, fmt.Errorf("%w: %v -> %v", ErrMissingClosureEntry, e.From, e.To)
			}

			redundant, err := dominatedByAny(vec, labels)
			if err != nil {
				return nil, err
			}
			if redundant {
				marked[Edge{From: e.From, To: e.To}] = struct{}{}
			}
		}
	}

	return marked, nil
}
