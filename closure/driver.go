// File: driver.go
// Role: AllPairs (sequential or errgroup-bounded parallel source fan-out)
// and Closure (name-keyed collapse of AllPairs).
package closure

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/CASCI-lab/Multilayer-Backbone/layergraph"
	"github.com/CASCI-lab/Multilayer-Backbone/multidist"
	"github.com/CASCI-lab/Multilayer-Backbone/pareto"
)

// AllPairs runs pareto.Search from every source node — every node of
// every layer, or only those in Options.StartLayer when set — and
// returns one SourceResult per source. Results are always sorted by
// source (Name then LayerID) regardless of execution order.
//
// Complexity: O(|sources|) independent pareto.Search calls; see
// pareto.Search's own complexity note for the per-call cost.
func AllPairs(g *layergraph.Graph, opts ...Option) ([]SourceResult, error) {
	if g == nil {
		return nil, pareto.ErrNilGraph
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sources, err := sourceSet(g, cfg.StartLayer)
	if err != nil {
		return nil, err
	}

	results := make([]SourceResult, len(sources))

	if cfg.Parallelism > 1 {
		var eg errgroup.Group
		eg.SetLimit(cfg.Parallelism)
		for i, src := range sources {
			i, src := i, src
			eg.Go(func() error {
				dist, err := pareto.Search(g, src, cfg.ParetoOpts...)
				if err != nil {
					return err
				}
				results[i] = SourceResult{Source: src, Dist: dist}

				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, src := range sources {
			dist, err := pareto.Search(g, src, cfg.ParetoOpts...)
			if err != nil {
				return nil, err
			}
			results[i] = SourceResult{Source: src, Dist: dist}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Source.Name != results[j].Source.Name {
			return results[i].Source.Name < results[j].Source.Name
		}

		return results[i].Source.LayerID < results[j].Source.LayerID
	})

	return results, nil
}

// sourceSet resolves the source node list for startLayer ("" means
// every node of every layer).
func sourceSet(g *layergraph.Graph, startLayer string) ([]layergraph.NodeID, error) {
	if startLayer == "" {
		return g.Nodes(), nil
	}

	return g.NodesInLayer(startLayer)
}

// Closure collapses AllPairs into a nested map keyed by node name only
// (the layer dimension is dropped at both levels) — a reporting
// shortcut that is only unambiguous when the graph has a single source
// layer. On a multilayer graph, pass WithStartLayer to pick the layer
// whose per-name Pareto sets are meaningful; collisions across layers
// sharing a name are resolved by multidist.Multimerge, which can only
// add non-dominated vectors to the bucket, never silently drop one.
func Closure(g *layergraph.Graph, opts ...Option) (map[string]map[string][]multidist.MultiDistance, error) {
	results, err := AllPairs(g, opts...)
	if err != nil {
		return nil, err
	}

	out := make(map[string]map[string][]multidist.MultiDistance, len(results))
	for _, res := range results {
		bucket, ok := out[res.Source.Name]
		if !ok {
			bucket = make(map[string][]multidist.MultiDistance)
			out[res.Source.Name] = bucket
		}
		for target, labels := range res.Dist {
			bucket[target.Name] = multidist.Multimerge(bucket[target.Name], labels)
		}
	}

	return out, nil
}
