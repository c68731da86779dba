// Package multibackbone is a documentation-only root for the
// Multilayer-Backbone module: a Pareto-optimal distance closure and
// backbone-extraction library for multilayer directed graphs. The
// package itself declares no exported symbols — it exists to give the
// module an entry point for `go doc` that points at its real
// subpackages.
//
// Subpackages, in dependency order:
//
//   - multidist  — the MultiDistance vector type and its Pareto-set
//     algebra (Multimin, Multimerge).
//   - layergraph — the immutable multilayer directed graph model:
//     construction, neighbor enumeration, edge-weight resolution, and
//     path folding.
//   - pareto     — Search, the best-first single-source Pareto
//     shortest-paths engine.
//   - closure    — AllPairs and Closure, the all-pairs driver built on
//     pareto.Search, sequential or data-parallel.
//   - backbone   — ParetoBackboneEdges, WeightedBackboneEdges, and the
//     Simas/Costa structural variants that extract the redundant-edge
//     set a backbone drops.
//
// A typical pipeline: BuildGraph a layergraph.Graph, compute its
// closure.Closure, then feed that closure into backbone.ParetoBackboneEdges
// or backbone.WeightedBackboneEdges to obtain the edges a backbone-reduced
// copy of the graph would drop.
package multibackbone
