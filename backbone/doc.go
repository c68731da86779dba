// Package backbone extracts the subset of intralayer edges that are
// Pareto- or weighted-redundant given a multilayer graph's shortest-path
// structure, and the structural variants that compute the same edge set
// without materializing a full closure first.
//
// What
//
//   - ParetoBackboneEdges marks an edge (u,L)->(v,L) redundant when some
//     closure[u][v] label strictly dominates the edge's own singleton
//     vector — a cheaper or equally-structured Pareto path already
//     exists.
//   - WeightedBackboneEdges marks an edge redundant when the minimum
//     layer-weighted scalar cost over closure[u][v] is strictly less
//     than the edge's own direct scalar cost.
//   - StructuralBackboneEdges (Simas, Costa) reproduce ParetoBackboneEdges'
//     edge set per source without a precomputed closure. Both run a full
//     pareto.Search per source; they differ only in that Simas decides
//     zero-weight edges without consulting the search result.
//
// Why
//
//   - The backbone is the graph with every redundant edge removed; its
//     closure is unchanged (P6), so it is the minimal edge set carrying
//     the same shortest-path information.
//
// Errors
//
//   - ErrMissingClosureEntry: closure[u][v] is absent for an edge whose
//     endpoints were not covered by the closure passed in (the closure
//     must have been computed with a StartLayer covering every
//     intralayer edge source, or left at the default "all nodes").
//   - Everything else propagates from layergraph and pareto.
package backbone
