// File: pareto_set.go
// Role: Pareto-set (antichain) reduction — Multimin and Multimerge.
//
// Both operate on slices of already-validated, same-length MultiDistance
// values; neither returns an error. The callers that construct these
// slices (pareto, closure, backbone) are responsible for dimensional
// consistency, the same division of labor the teacher uses between
// builder validation and algorithm inner loops.
package multidist

// Multimin returns the maximal antichain of set under dominance: the
// subset of elements that are not dominated by (and not equal to, after
// the first occurrence) any other element. Order of the result is not
// meaningful — callers that need determinism should sort it themselves.
// Complexity: O(n²), n = len(set).
func Multimin(set []MultiDistance) []MultiDistance {
	final := make([]MultiDistance, 0, len(set))

	for i, candidate := range set {
		dominated := false
		for j, other := range set {
			if i == j {
				continue
			}
			ord, err := Compare(other, candidate)
			if err != nil {
				continue
			}
			if ord == Less {
				dominated = true
				break
			}
			if ord == Equal && j < i {
				// An earlier duplicate already represents this vector.
				dominated = true
				break
			}
		}
		if !dominated {
			final = append(final, candidate)
		}
	}

	return final
}

// Multimerge computes Multimin(a ∪ b) under the precondition that a and b
// are each already internally-reduced antichains (no validation is
// performed — violating the precondition yields an unspecified but safe
// result, never a panic). It walks both antichains once rather than
// rebuilding the union from scratch: each element of a is tested against
// every not-yet-eliminated element of b; elements of a dominated by or
// equal to an element of b are dropped (for equal vectors the copy from
// b is kept), elements of b dominated by some element of a are marked
// during the same walk, and the unmarked elements of b are appended
// afterwards.
// Complexity: O(|a|·|b|).
func Multimerge(a, b []MultiDistance) []MultiDistance {
	final := make([]MultiDistance, 0, len(a)+len(b))
	bDominated := make([]bool, len(b))

	for _, ca := range a {
		keep := true
		for j, cb := range b {
			if bDominated[j] {
				continue
			}
			ord, err := Compare(ca, cb)
			if err != nil {
				continue
			}
			switch ord {
			case Less:
				// ca dominates cb: cb is eliminated, ca survives this pair.
				bDominated[j] = true
			case Equal:
				// Duplicate across the two sets: keep one copy (from b),
				// drop ca.
				keep = false
			case Greater:
				// cb dominates ca: ca is eliminated.
				keep = false
			}
			if !keep {
				break
			}
		}
		if keep {
			final = append(final, ca)
		}
	}

	for j, cb := range b {
		if !bDominated[j] {
			final = append(final, cb)
		}
	}

	return final
}
