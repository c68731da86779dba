// File: search.go
// Role: Search — best-first Pareto shortest-paths search — and its
// supporting min-heap priority queue over label antichains.
package pareto

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/CASCI-lab/Multilayer-Backbone/layergraph"
	"github.com/CASCI-lab/Multilayer-Backbone/multidist"
)

// Search computes, from a single source, the Pareto-minimal set of
// MultiDistance vectors to every node reachable from source. The
// returned map holds only reachable nodes; an unreachable node is
// simply absent, not mapped to an empty slice.
//
// Validation order: g non-nil, then source present in g.
//
// Complexity: see doc.go; worst case depends on the label-count
// explosion of multidist.Multimerge, bounded in practice by the
// graph's own antichain widths.
func Search(g *layergraph.Graph, source layergraph.NodeID, opts ...Option) (map[layergraph.NodeID][]multidist.MultiDistance, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, ErrUnknownNode
	}

	r := &runner{
		g:      g,
		cfg:    cfg,
		source: source,
		k:      g.LayerCount(),
		dist:   make(map[layergraph.NodeID][]multidist.MultiDistance),
		seen:   make(map[layergraph.NodeID][]multidist.MultiDistance),
	}

	if cfg.CutByNeighbors {
		cut, err := r.neighborCut()
		if err != nil {
			return nil, err
		}
		r.neighborCutVec = cut
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g      *layergraph.Graph
	cfg    Options
	source layergraph.NodeID
	k      int // layer count, cached for Zero()

	dist map[layergraph.NodeID][]multidist.MultiDistance // antichains merged at pop time
	seen map[layergraph.NodeID][]multidist.MultiDistance // best antichain pushed so far

	neighborCutVec multidist.MultiDistance // nil unless CutByNeighbors
	seq            uint64                  // monotonic push counter, for heap tie-break
	pq             labelPQ
}

// neighborCut computes, for each layer L, the maximum weight of any
// outgoing intralayer edge from the same-named node r.source.Name as it
// appears in L (not only r.source's own layer — identity linking makes
// every same-named copy "the same s" for this purpose). Layers where
// that name is absent, or has no outgoing edge, contribute 0.
func (r *runner) neighborCut() (multidist.MultiDistance, error) {
	cut := multidist.Zero(r.k)

	for _, layerID := range r.g.Layers() {
		candidate := layergraph.NodeID{Name: r.source.Name, LayerID: layerID}
		if !r.g.HasNode(candidate) {
			continue
		}
		idx, err := r.g.LayerIndex(layerID)
		if err != nil {
			return nil, err
		}
		edges, err := r.g.OutEdges(candidate)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if w := e.Weight(r.cfg.WeightAttr); w > cut[idx] {
				cut[idx] = w
			}
		}
	}

	return cut, nil
}

// init seeds seen[source] and pushes the zero label onto the heap.
func (r *runner) init() {
	zero := multidist.Zero(r.k)
	r.seen[r.source] = []multidist.MultiDistance{zero}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &labelItem{
		labels: []multidist.MultiDistance{zero.Clone()},
		seq:    r.seq,
		node:   r.source,
		depth:  0,
	})
	r.seq++
}

// process is the core best-first loop: pop, merge into dist, relax.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*labelItem)

		if r.cfg.DepthCut >= 0 && it.depth > r.cfg.DepthCut {
			continue
		}

		merged := multidist.Multimerge(r.dist[it.node], it.labels)
		if labelSetEqual(merged, r.dist[it.node]) {
			continue
		}
		r.dist[it.node] = merged

		if err := r.relax(it.node, it.depth); err != nil {
			return err
		}
	}

	return nil
}

// relax extends every Pareto label at u one hop to each of u's
// neighbors, pruning via cut_by_neighbors when enabled, and pushes any
// newly-discovered non-dominated label set.
func (r *runner) relax(u layergraph.NodeID, depth int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("pareto: neighbors of %v: %w", u, err)
	}

	for _, v := range neighbors {
		uvLabels := cloneLabels(r.dist[u])

		if u.LayerID == v.LayerID {
			w, err := r.g.EdgeWeight(u, v, r.cfg.WeightAttr)
			if err != nil {
				return fmt.Errorf("pareto: edge weight %v->%v: %w", u, v, err)
			}
			idx, err := r.g.LayerIndex(u.LayerID)
			if err != nil {
				return fmt.Errorf("pareto: layer index %q: %w", u.LayerID, err)
			}
			for _, lbl := range uvLabels {
				if err := lbl.AddToLayer(idx, w); err != nil {
					return fmt.Errorf("pareto: %w", err)
				}
			}
		}
		// An interlayer identity hop (u.LayerID != v.LayerID) contributes
		// no weight: EdgeWeight's unit placeholder for that case is never
		// read here, let alone summed into a label.

		if r.cfg.CutByNeighbors {
			allDominateCut := true
			for _, lbl := range uvLabels {
				dom, err := multidist.Dominates(lbl, r.neighborCutVec)
				if err != nil {
					return fmt.Errorf("pareto: %w", err)
				}
				if !dom {
					allDominateCut = false
					break
				}
			}
			if !allDominateCut {
				continue
			}
		}

		newV := multidist.Multimerge(uvLabels, r.seen[v])
		if labelSetEqual(newV, r.seen[v]) {
			continue
		}
		r.seen[v] = newV
		heap.Push(&r.pq, &labelItem{
			labels: cloneLabels(newV),
			seq:    r.seq,
			node:   v,
			depth:  depth + 1,
		})
		r.seq++
	}

	return nil
}

// cloneLabels deep-copies every MultiDistance in s, preserving I3
// (antichains stored in dist/seen must never alias a heap entry's
// labels, or an in-place AddToLayer on one would corrupt the other).
func cloneLabels(s []multidist.MultiDistance) []multidist.MultiDistance {
	out := make([]multidist.MultiDistance, len(s))
	for i, v := range s {
		out[i] = v.Clone()
	}

	return out
}

// labelSetEqual reports whether a and b hold the same MultiDistance
// values as sets (order-independent); used to detect "no new
// information" both at pop time (against dist[u]) and at relax time
// (against seen[v]).
func labelSetEqual(a, b []multidist.MultiDistance) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, va := range a {
		found := false
		for j, vb := range b {
			if used[j] {
				continue
			}
			if multidist.Equal(va, vb) {
				used[j] = true
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// labelItem is one heap entry: a candidate antichain for node, the
// depth (hop count) at which it was produced, and a monotonic sequence
// number breaking ties in heap order.
type labelItem struct {
	labels []multidist.MultiDistance
	seq    uint64
	node   layergraph.NodeID
	depth  int
}

// labelPQ is a min-heap of *labelItem ordered by compareLabelSets, then
// by seq, breaking ties deterministically.
type labelPQ []*labelItem

func (pq labelPQ) Len() int { return len(pq) }

func (pq labelPQ) Less(i, j int) bool {
	if c := compareLabelSets(pq[i].labels, pq[j].labels); c != 0 {
		return c < 0
	}

	return pq[i].seq < pq[j].seq
}

func (pq labelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *labelPQ) Push(x interface{}) { *pq = append(*pq, x.(*labelItem)) }

func (pq *labelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// compareLabelSets totally orders two label antichains: sort each by
// compareVectorLex, then compare elementwise; a shorter list that
// matches the longer one's prefix sorts first. This is the heap key
// described in doc.go's Determinism section — any total extension of
// the dominance order is a valid tie-break, not a claim about which
// antichain is "better".
func compareLabelSets(a, b []multidist.MultiDistance) int {
	sa, sb := sortedCopy(a), sortedCopy(b)

	n := len(sa)
	if len(sb) < n {
		n = len(sb)
	}
	for i := 0; i < n; i++ {
		if c := compareVectorLex(sa[i], sb[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(sa) < len(sb):
		return -1
	case len(sa) > len(sb):
		return 1
	default:
		return 0
	}
}

func sortedCopy(s []multidist.MultiDistance) []multidist.MultiDistance {
	out := make([]multidist.MultiDistance, len(s))
	copy(out, s)
	sort.Slice(out, func(i, j int) bool { return compareVectorLex(out[i], out[j]) < 0 })

	return out
}

// compareVectorLex orders two same-length MultiDistances componentwise,
// left to right; a shorter vector sorts before one that matches on
// their shared prefix.
func compareVectorLex(a, b multidist.MultiDistance) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
