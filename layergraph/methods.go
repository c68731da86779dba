// File: methods.go
// Role: Neighbor enumeration, edge-weight resolution, and path folding —
// the read-only query surface pareto.Search and backbone.* are built on.
package layergraph

import (
	"sort"

	"github.com/CASCI-lab/Multilayer-Backbone/multidist"
)

// Neighbors returns every node reachable from id in one hop: every
// same-named copy of id in another layer (a free interlayer identity
// edge), plus every intralayer out-neighbor within id's own layer.
// Result order is deterministic: interlayer copies first (sorted by
// layer ID), then intralayer neighbors (sorted by name).
// Complexity: O(k + deg(u)).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	if !g.HasNode(id) {
		return nil, ErrUnknownNode
	}

	var out []NodeID

	for _, layerID := range g.layersByName[id.Name] {
		if layerID == id.LayerID {
			continue
		}
		out = append(out, NodeID{Name: id.Name, LayerID: layerID})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LayerID < out[j].LayerID })

	intraStart := len(out)
	for _, e := range g.intralayer[id.LayerID][id.Name] {
		out = append(out, e.To)
	}
	sort.Slice(out[intraStart:], func(i, j int) bool {
		return out[intraStart+i].Name < out[intraStart+j].Name
	})

	return out, nil
}

// EdgeWeight resolves the scalar cost of the single hop u -> v under the
// named attribute (empty attr means "weight"):
//
//   - same layer, intralayer edge exists: the edge's weightOf(attr).
//   - different layer, same name (interlayer identity edge): 1, a
//     placeholder that callers MUST NOT add into any multidistance —
//     layer crossings are free by design (see pareto.Search).
//   - otherwise: ErrNotConnected.
//
// Complexity: O(deg(u)) worst case (edge lookup within one layer).
func (g *Graph) EdgeWeight(u, v NodeID, attr string) (float64, error) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return 0, ErrUnknownNode
	}

	if u.LayerID == v.LayerID {
		for _, e := range g.intralayer[u.LayerID][u.Name] {
			if e.To == v {
				return e.Weight(attr), nil
			}
		}

		return 0, ErrNotConnected
	}

	if u.Name == v.Name {
		return 1, nil
	}

	return 0, ErrNotConnected
}

// OutEdges returns u's outgoing intralayer edges (u's own layer only).
// Interlayer identity edges are not represented as Edge values — see
// Neighbors — since they carry no attributes besides the implicit unit
// placeholder weight. Complexity: O(1), returns the backing slice's
// live view (callers must not mutate it).
func (g *Graph) OutEdges(u NodeID) ([]Edge, error) {
	if !g.HasNode(u) {
		return nil, ErrUnknownNode
	}

	return g.intralayer[u.LayerID][u.Name], nil
}

// DirectEdgeVector returns the singleton MultiDistance representing the
// direct intralayer edge u -> v: zero everywhere except u's layer index,
// which holds the edge's weight. u and v must share a layer and an
// intralayer edge must exist between them, or ErrNotConnected is
// returned. Complexity: O(deg(u)).
func (g *Graph) DirectEdgeVector(u, v NodeID, attr string) (multidist.MultiDistance, error) {
	if u.LayerID != v.LayerID {
		return nil, ErrNotConnected
	}
	w, err := g.EdgeWeight(u, v, attr)
	if err != nil {
		return nil, err
	}

	idx, err := g.LayerIndex(u.LayerID)
	if err != nil {
		return nil, err
	}
	vec := multidist.Zero(g.LayerCount())
	if err := vec.AddToLayer(idx, w); err != nil {
		return nil, err
	}

	return vec, nil
}

// PathMultiDistance folds an explicit sequence of (name, layer) steps
// into a MultiDistance, adding per-edge weight only for intralayer hops,
// starting from a zero vector. Complexity: O(len(path)).
func (g *Graph) PathMultiDistance(path []NodeID, attr string) (multidist.MultiDistance, error) {
	return g.PathMultiDistanceFrom(multidist.Zero(g.LayerCount()), path, attr)
}

// PathMultiDistanceFrom folds path into initial (mutated in place) rather
// than starting from zero, letting callers extend an already-computed
// prefix without recomputation. Complexity: O(len(path)).
func (g *Graph) PathMultiDistanceFrom(initial multidist.MultiDistance, path []NodeID, attr string) (multidist.MultiDistance, error) {
	dist := initial
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		w, err := g.EdgeWeight(u, v, attr)
		if err != nil {
			return nil, err
		}
		if u.LayerID != v.LayerID {
			continue // interlayer hops are free; never added to the vector
		}
		idx, err := g.LayerIndex(u.LayerID)
		if err != nil {
			return nil, err
		}
		if err := dist.AddToLayer(idx, w); err != nil {
			return nil, err
		}
	}

	return dist, nil
}
