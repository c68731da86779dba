// File: types.go
// Role: functional options, defaults, and result types for closure.AllPairs.
package closure

import (
	"github.com/CASCI-lab/Multilayer-Backbone/layergraph"
	"github.com/CASCI-lab/Multilayer-Backbone/multidist"
	"github.com/CASCI-lab/Multilayer-Backbone/pareto"
)

// Options configures a single AllPairs (or Closure) call.
type Options struct {
	// StartLayer restricts sources to nodes in this layer. "" (the
	// default) uses every node of every layer as a source.
	StartLayer string

	// ParetoOpts are forwarded unchanged to every pareto.Search call.
	ParetoOpts []pareto.Option

	// Parallelism controls fan-out: 0 or 1 run sources sequentially;
	// values above 1 bound the number of concurrent pareto.Search calls
	// via errgroup.Group.SetLimit.
	Parallelism int
}

// Option is a functional option for AllPairs and Closure.
type Option func(*Options)

// defaultOptions returns the defaults: all nodes as sources, no pareto
// options, sequential execution.
func defaultOptions() Options {
	return Options{
		StartLayer:  "",
		ParetoOpts:  nil,
		Parallelism: 0,
	}
}

// WithStartLayer restricts the source set to nodes in layerID.
func WithStartLayer(layerID string) Option {
	return func(o *Options) { o.StartLayer = layerID }
}

// WithParetoOptions forwards opts to every underlying pareto.Search call.
func WithParetoOptions(opts ...pareto.Option) Option {
	return func(o *Options) { o.ParetoOpts = opts }
}

// WithParallelism bounds concurrent pareto.Search calls to n. n <= 1
// means sequential.
func WithParallelism(n int) Option {
	return func(o *Options) { o.Parallelism = n }
}

// SourceResult pairs a source node with its Pareto shortest-paths result
// from pareto.Search.
type SourceResult struct {
	Source layergraph.NodeID
	Dist   map[layergraph.NodeID][]multidist.MultiDistance
}
