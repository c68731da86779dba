// File: pareto_backbone.go
// Role: ParetoBackboneEdges — the unweighted (dominance-only) backbone
// extractor.
package backbone

import (
	"fmt"

	"github.com/CASCI-lab/Multilayer-Backbone/layergraph"
	"github.com/CASCI-lab/Multilayer-Backbone/multidist"
)

// ParetoBackboneEdges marks every intralayer edge (u,L) -> (v,L) whose
// own singleton multidistance (zero everywhere except L's index, which
// holds the edge's weight) is strictly dominated by some vector in
// closure[u.Name][v.Name]. The returned set is the marked-for-removal
// edges; the backbone is every edge NOT in the returned set.
//
// closure must have an entry for every (u.Name, v.Name) pair this graph
// has an intralayer edge for — the shape produced by closure.Closure
// called with no StartLayer restriction (or one that covers every edge
// source layer).
//
// Complexity: O(E · max|closure[u][v]|).
func ParetoBackboneEdges(g *layergraph.Graph, closureMap map[string]map[string][]multidist.MultiDistance, attr string) (map[Edge]struct{}, error) {
	marked := make(map[Edge]struct{})

	for _, layerID := range g.Layers() {
		edges, err := g.IntralayerEdges(layerID)
		if err != nil {
			return nil, err
		}

		for _, e := range edges {
			vec, err := g.DirectEdgeVector(e.From, e.To, attr)
			if err != nil {
				return nil, err
			}

			labels, ok := closureMap[e.From.Name][e.To.Name]
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

// dominatedByAny reports whether any label in labels strictly dominates
// vec.
func dominatedByAny(vec multidist.MultiDistance, labels []multidist.MultiDistance) (bool, error) {
	for _, d := range labels {
		dom, err := multidist.Dominates(d, vec)
		if err != nil {
			return false, err
		}
		if dom {
			return true, nil
		}
	}

	return false, nil
}
