// File: types.go
// Role: functional options, defaults, and sentinel errors for pareto.Search.
package pareto

import "errors"

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates a nil *layergraph.Graph was passed to Search.
	ErrNilGraph = errors.New("pareto: graph is nil")

	// ErrUnknownNode indicates the requested source node is absent from
	// the graph.
	ErrUnknownNode = errors.New("pareto: source node not found")
)

// unboundedDepth is the sentinel DepthCut value meaning "no depth limit".
const unboundedDepth = -1

// Options configures a single Search call. There is no package-level
// configuration singleton; every call is parameterized independently.
type Options struct {
	// CutByNeighbors, if true, skips a neighbor unless every candidate
	// label it would receive strictly dominates the vector formed from
	// the heaviest outgoing intralayer edge of source in each layer;
	// labels equal to, incomparable with, or dominated by that vector
	// are discarded.
	CutByNeighbors bool

	// DepthCut bounds the number of hops explored; a negative value
	// (the default) means unbounded.
	DepthCut int

	// WeightAttr names the edge attribute consulted for intralayer
	// weight; "" defaults to "weight".
	WeightAttr string
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns the defaults: no neighbor-cut pruning, unbounded
// depth, and the "weight" attribute.
func DefaultOptions() Options {
	return Options{
		CutByNeighbors: false,
		DepthCut:       unboundedDepth,
		WeightAttr:     "",
	}
}

// WithCutByNeighbors enables neighbor-cut pruning (see Options).
func WithCutByNeighbors() Option {
	return func(o *Options) { o.CutByNeighbors = true }
}

// WithDepthCut bounds the search to at most d hops. A negative d means
// "explicitly unbounded" (equivalent to the default).
func WithDepthCut(d int) Option {
	return func(o *Options) { o.DepthCut = d }
}

// WithWeightAttr selects the edge attribute consulted for intralayer
// weight; the empty string restores the "weight" default.
func WithWeightAttr(attr string) Option {
	return func(o *Options) { o.WeightAttr = attr }
}
