// Package layergraph implements the multilayer directed graph data model:
// nodes qualified by layer, free interlayer identity edges between
// same-named copies, and per-layer weighted intralayer edges.
//
// What
//
//   - A Graph is built once from a map of per-layer node/edge lists via
//     BuildGraph and is immutable thereafter.
//   - Layer indices are assigned in sorted layer-ID order, deterministically.
//   - Neighbors(n) returns both kinds of one-hop reachability: every
//     same-named copy of n in another layer (free identity edge), and
//     every intralayer out-neighbor in n's own layer.
//   - EdgeWeight(u, v, attr) resolves the scalar cost of a single hop;
//     interlayer hops report a placeholder weight of 1 that callers MUST
//     NOT add into a path's multidistance (layer crossings are free).
//
// Why
//
//   - Keeping the multilayer topology in one read-only structure lets
//     pareto.Search, closure.AllPairs, and backbone.* all share one
//     neighbor/weight contract without re-deriving interlayer fan-out.
//
// Concurrency
//
//   - Graph has no exported mutator once BuildGraph returns, so no locking
//     is needed: concurrent readers (parallel pareto.Search calls from
//     closure) only ever read immutable maps and slices.
//
// Complexity (V = total (name, layer) nodes, E = total intralayer edges)
//
//   - BuildGraph: O(V + E).
//   - Neighbors: O(k + deg(u)), k = layer count.
//   - EdgeWeight, DirectEdgeVector: O(deg(u)) (scan of u's out-edges).
//   - PathMultiDistance: O(len(path)).
//
// Errors
//
//   - ErrUnknownLayer, ErrUnknownNode, ErrNotConnected, ErrInvalidWeight,
//     ErrDuplicateEdge. Self-loops are dropped silently at load time (not
//     an error); see BuildGraph.
package layergraph
