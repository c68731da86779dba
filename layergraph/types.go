// File: types.go
// Role: NodeID, Node, Edge, build-input types, and sentinel errors for the
// layergraph package.
package layergraph

import "errors"

// Sentinel errors for layergraph operations.
var (
	// ErrUnknownLayer indicates an operation referenced a layer ID that
	// was not registered in the graph.
	ErrUnknownLayer = errors.New("layergraph: unknown layer")

	// ErrUnknownNode indicates a node ID absent from the graph.
	ErrUnknownNode = errors.New("layergraph: unknown node")

	// ErrNotConnected indicates an edge-weight query between two nodes
	// that share no edge (same layer, no intralayer edge; different
	// layer, different name).
	ErrNotConnected = errors.New("layergraph: nodes are not connected")

	// ErrInvalidWeight indicates a negative weight was supplied at load
	// time.
	ErrInvalidWeight = errors.New("layergraph: weight must be non-negative")

	// ErrDuplicateEdge indicates two intralayer edges were supplied for
	// the same ordered (from, to) pair within one layer.
	ErrDuplicateEdge = errors.New("layergraph: duplicate intralayer edge")
)

// defaultWeightAttr is the attribute key consulted when no explicit
// attribute name is requested.
const defaultWeightAttr = "weight"

// NodeID identifies a node by its shared-namespace name and the layer it
// belongs to. NodeID is comparable and usable directly as a map key.
type NodeID struct {
	Name    string
	LayerID string
}

// Node is a materialized (name, layer) pair with its cached layer index,
// avoiding repeated layer-index lookups in search inner loops.
type Node struct {
	ID         NodeID
	LayerIndex int
}

// NodeSpec describes one node within a single layer's input.
type NodeSpec struct {
	Name  string
	Attrs map[string]float64
}

// EdgeSpec describes one directed intralayer edge within a single layer's
// input. Attrs["weight"] (or whichever key is looked up via the relevant
// attr parameter) supplies the edge cost; a missing key defaults to 1.
type EdgeSpec struct {
	From, To string
	Attrs    map[string]float64
}

// LayerInput is the per-layer payload accepted by BuildGraph: an explicit
// node list (for isolated nodes with no incident edges) plus the layer's
// directed, weighted edge list.
type LayerInput struct {
	Nodes []NodeSpec
	Edges []EdgeSpec
}

// Edge is a materialized directed intralayer edge.
type Edge struct {
	From, To NodeID
	Attrs    map[string]float64
}

// Weight resolves e's scalar cost under the named attribute (empty attr
// means "weight"), defaulting a missing key to 1 as required by
// BuildGraph's external contract.
func (e Edge) Weight(attr string) float64 {
	if attr == "" {
		attr = defaultWeightAttr
	}
	if w, ok := e.Attrs[attr]; ok {
		return w
	}

	return 1
}
