// Package multidist implements the multi-objective distance algebra used
// throughout the multilayer backbone pipeline: fixed-width, non-negative
// vectors with componentwise addition, the dominance partial order, and
// Pareto-set (antichain) merge operators.
//
// What
//
//   - MultiDistance is a dense []float64 of length k, one component per
//     graph layer. Position i accumulates intralayer edge weight traversed
//     in layer i; interlayer (identity) crossings never contribute.
//   - Dominance (≺) is strict componentwise ≤ with at least one strict <.
//     Compare reports the four-valued relation {Less, Equal, Greater,
//     Incomparable} in one pass.
//   - Multimin reduces a set to its maximal antichain; Multimerge combines
//     two already-reduced antichains without rebuilding from scratch.
//
// Why
//
//   - Pareto shortest paths need label algebra independent of any graph
//     representation. Keeping it in its own package lets pareto, closure,
//     and backbone share one vocabulary for "is this path better".
//
// Complexity
//
//   - Zero/Clone/AddToLayer/Sum/Compare/Dominates/WeightedSum: O(k).
//   - Multimin: O(n²) pairwise dominance checks, n = |set|.
//   - Multimerge: O(|a|·|b|), a single pass over both antichains.
//
// Errors
//
//   - ErrDimensionMismatch: operands have different lengths.
//   - ErrInvalidLayerIndex: AddToLayer index outside [0, len(d)).
//   - ErrInvalidWeight: negative weight passed to AddToLayer.
package multidist
