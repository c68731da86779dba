// File: weighted_backbone.go
// Role: WeightedBackboneEdges — the scalar-weighted backbone extractor.
package backbone

import (
	"fmt"
	"math"

	"github.com/CASCI-lab/Multilayer-Backbone/layergraph"
	"github.com/CASCI-lab/Multilayer-Backbone/multidist"
)

// WeightedBackboneEdges marks every intralayer edge whose direct scalar
// cost exceeds the minimum layer-weighted sum achievable over
// closure[u.Name][v.Name]. layerWeights is an optional k-vector of
// non-negative per-layer weights; nil means uniform (all-ones) weights,
// matching multidist.WeightedSum's own default.
//
// Complexity: O(E · max|closure[u][v]|).
func WeightedBackboneEdges(g *layergraph.Graph, closureMap map[string]map[string][]multidist.MultiDistance, attr string, layerWeights multidist.MultiDistance) (map[Edge]struct{}, error) {
	marked := make(map[Edge]struct{})

	for _, layerID := range g.Layers() {
		idx, err := g.LayerIndex(layerID)
		if err != nil {
			return nil, err
		}

		edges, err := g.IntralayerEdges(layerID)
		if err != nil {
			return nil, err
		}

		for _, e := range edges {
			w := e.Weight(attr)
			direct := w
			if layerWeights != nil {
				if idx >= len(layerWeights) {
					return nil, multidist.ErrDimensionMismatch
				}
				direct = w * layerWeights[idx]
			}

			labels, ok := closureMap[e.From.Name][e.To.Name]
			if !ok {
				return nil, fmt.Errorf("%w: %v -> %v", ErrMissingClosureEntry, e.From, e.To)
			}

			best := math.Inf(1)
			for _, d := range labels {
				val, err := multidist.WeightedSum(d, layerWeights)
				if err != nil {
					return nil, err
				}
				if val < best {
					best = val
				}
			}

			if best < direct {
				marked[Edge{From: e.From, To: e.To}] = struct{}{}
			}
		}
	}

	return marked, nil
}
