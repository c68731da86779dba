// Package closure computes all-pairs Pareto shortest-path results over a
// layergraph.Graph by driving pareto.Search once per source node.
//
// What
//
//   - AllPairs(g, opts...) runs pareto.Search from every node (or only
//     from nodes in a chosen StartLayer) and returns one SourceResult per
//     source, sorted by source for deterministic aggregation.
//   - Closure(g, opts...) collapses AllPairs into a nested map keyed by
//     node name only (layer dropped at both levels), the shape the
//     backbone extractors consume.
//
// Why
//
//   - Each pareto.Search call is read-only and independent of every
//     other; the driver's only job is fan-out, source selection, and
//     deterministic result assembly — it adds no algorithmic content of
//     its own.
//
// Concurrency
//
//   - Parallelism <= 1 runs sources sequentially in a plain loop.
//     Parallelism > 1 fans the same calls out across goroutines bounded
//     by golang.org/x/sync/errgroup's Group.SetLimit, mirroring the
//     bounded-worker-pool idiom used for independent, read-only work
//     across this corpus. The graph is never mutated, so no locking is
//     required regardless of mode.
//
// Errors
//
//   - ErrUnknownLayer: StartLayer names a layer absent from the graph.
//   - Everything else propagates from pareto.Search unchanged.
package closure
