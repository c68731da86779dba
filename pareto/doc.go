// Package pareto implements the Pareto shortest-paths engine: a
// best-first search over vector-valued (multidist.MultiDistance) labels
// that, from a single source, produces the Pareto-minimal multidistance
// set to every reachable node.
//
// What
//
//   - Search(g, source, opts...) returns dist: map[NodeID][]MultiDistance,
//     the antichain of Pareto-optimal path vectors from source to each
//     reachable node.
//   - Labels are merged via multidist.Multimerge as the frontier advances;
//     a node is popped from the heap possibly many times, each time
//     contributing any new non-dominated label it carries.
//   - Optional CutByNeighbors pruning keeps only labels that strictly
//     dominate "one hop through the heaviest neighbor of source in each
//     layer"; a neighbor whose labels do not all do so is not relaxed.
//   - Optional DepthCut bounds the number of hops explored.
//
// Why
//
//   - Scalar Dijkstra cannot express "shortest in every layer
//     simultaneously"; this engine generalizes the same heap-based
//     relaxation loop to vector labels and a dominance order instead of
//     a total order on distance.
//
// Determinism
//
//   - The heap key is the lexicographic comparison of each candidate's
//     sorted label tuple, tie-broken by a monotonic push sequence number
//     — any total extension of the partial order yields a correct (if
//     not maximally efficient) search, per spec.
//
// Complexity (V, E per layer; k = layer count)
//
//   - Each push carries up to O(k) labels of length k; heap operations
//     cost O(log(heap size) · k) for comparisons. Worst-case label counts
//     per node are exponential in pathological inputs; in practice they
//     stay small (see multidist.Multimerge's antichain-reduction cost).
//
// Errors
//
//   - ErrNilGraph: graph is nil.
//   - ErrUnknownNode: source is absent from the graph.
//   - Everything else surfaces from layergraph (ErrUnknownLayer,
//     ErrNotConnected) wrapped with call-site context; these indicate a
//     programming error, not a reachability gap — an unreachable target
//     is simply absent from the result map.
package pareto
