// File: graph.go
// Role: Graph struct, BuildGraph constructor, and read-only accessors.
package layergraph

import (
	"fmt"
	"sort"
)

// Graph is the immutable multilayer directed graph produced by
// BuildGraph. All fields are populated once at construction and never
// mutated afterward.
type Graph struct {
	layerList  []string         // sorted layer IDs
	layerIndex map[string]int   // layerID -> index in [0, len(layerList))
	nodes      map[NodeID]*Node // every (name, layer) pair present in the input

	// namesByLayer[layerID] lists every node name present in that layer,
	// used to materialize per-node interlayer identity edges.
	namesByLayer map[string]map[string]struct{}

	// layersByName[name] lists every layer the name appears in, the
	// inverse index used by Neighbors for interlayer fan-out.
	layersByName map[string][]string

	// intralayer[layerID][fromName] -> edges out of fromName in that layer.
	intralayer map[string]map[string][]Edge
}

// BuildGraph constructs a Graph from a mapping of layer ID to that
// layer's node and edge lists. Layer indices are assigned in sorted
// layer-ID order (deterministic regardless of map iteration order).
// Self-loops are silently dropped; a negative weight under the "weight"
// attribute key returns ErrInvalidWeight; a second edge between the same
// ordered (from, to) pair within one layer returns ErrDuplicateEdge.
// Complexity: O(V + E).
func BuildGraph(layers map[string]LayerInput) (*Graph, error) {
	g := &Graph{
		layerIndex:   make(map[string]int, len(layers)),
		nodes:        make(map[NodeID]*Node),
		namesByLayer: make(map[string]map[string]struct{}, len(layers)),
		layersByName: make(map[string][]string),
		intralayer:   make(map[string]map[string][]Edge, len(layers)),
	}

	g.layerList = make([]string, 0, len(layers))
	for layerID := range layers {
		g.layerList = append(g.layerList, layerID)
	}
	sort.Strings(g.layerList)
	for i, layerID := range g.layerList {
		g.layerIndex[layerID] = i
		g.namesByLayer[layerID] = make(map[string]struct{})
		g.intralayer[layerID] = make(map[string][]Edge)
	}

	addName := func(layerID, name string) {
		if _, ok := g.namesByLayer[layerID][name]; ok {
			return
		}
		g.namesByLayer[layerID][name] = struct{}{}
		g.layersByName[name] = append(g.layersByName[name], layerID)
		id := NodeID{Name: name, LayerID: layerID}
		g.nodes[id] = &Node{ID: id, LayerIndex: g.layerIndex[layerID]}
	}

	for _, layerID := range g.layerList {
		in := layers[layerID]
		for _, ns := range in.Nodes {
			addName(layerID, ns.Name)
		}
		for _, es := range in.Edges {
			if es.From == es.To {
				continue // self-loops are forbidden; dropped silently at load
			}
			addName(layerID, es.From)
			addName(layerID, es.To)

			w, hasWeight := es.Attrs[defaultWeightAttr]
			if !hasWeight {
				w = 1
			}
			if w < 0 {
				return nil, fmt.Errorf("%w: layer %q edge %s->%s weight=%v",
					ErrInvalidWeight, layerID, es.From, es.To, w)
			}

			for _, existing := range g.intralayer[layerID][es.From] {
				if existing.To == es.To {
					return nil, fmt.Errorf("%w: layer %q edge %s->%s",
						ErrDuplicateEdge, layerID, es.From, es.To)
				}
			}

			g.intralayer[layerID][es.From] = append(g.intralayer[layerID][es.From], Edge{
				From:  NodeID{Name: es.From, LayerID: layerID},
				To:    NodeID{Name: es.To, LayerID: layerID},
				Attrs: es.Attrs,
			})
		}
	}

	return g, nil
}

// Layers returns the registered layer IDs in their assigned (sorted)
// order. Complexity: O(k).
func (g *Graph) Layers() []string {
	out := make([]string, len(g.layerList))
	copy(out, g.layerList)

	return out
}

// LayerCount returns the number of layers, k. Complexity: O(1).
func (g *Graph) LayerCount() int {
	return len(g.layerList)
}

// LayerIndex returns the sorted-order index assigned to layerID.
// Complexity: O(1).
func (g *Graph) LayerIndex(layerID string) (int, error) {
	idx, ok := g.layerIndex[layerID]
	if !ok {
		return 0, ErrUnknownLayer
	}

	return idx, nil
}

// HasNode reports whether id is present in the graph. Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns every (name, layer) node in the graph, in no particular
// order. Complexity: O(V).
func (g *Graph) Nodes() []NodeID {
	out := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}

	return out
}

// NodesInLayer returns every node name present in layerID, qualified as
// NodeIDs. Complexity: O(|layer|).
func (g *Graph) NodesInLayer(layerID string) ([]NodeID, error) {
	names, ok := g.namesByLayer[layerID]
	if !ok {
		return nil, ErrUnknownLayer
	}

	out := make([]NodeID, 0, len(names))
	for name := range names {
		out = append(out, NodeID{Name: name, LayerID: layerID})
	}

	return out, nil
}

// IntralayerEdges returns every intralayer edge in layerID.
// Complexity: O(|layer edges|).
func (g *Graph) IntralayerEdges(layerID string) ([]Edge, error) {
	byFrom, ok := g.intralayer[layerID]
	if !ok {
		return nil, ErrUnknownLayer
	}

	var out []Edge
	for _, edges := range byFrom {
		out = append(out, edges...)
	}

	return out, nil
}
