// File: types.go
// Role: Edge, StructuralVariant, and sentinel errors shared across the
// backbone package's three extractors.
package backbone

import (
	"errors"

	"github.com/CASCI-lab/Multilayer-Backbone/layergraph"
)

// ErrMissingClosureEntry indicates a closure argument lacked an entry
// for an edge's endpoints — the closure was computed with a StartLayer
// that did not cover this edge's source.
var ErrMissingClosureEntry = errors.New("backbone: closure has no entry for edge endpoints")

// Edge identifies a directed intralayer edge by its endpoints. Edge is
// comparable and usable as a map key.
type Edge struct {
	From, To layergraph.NodeID
}

// StructuralVariant selects a structural backbone extraction strategy.
// Both variants produce the identical edge set (P7); they differ only
// in how much of each source's Pareto search result they consult before
// deciding an edge's fate.
type StructuralVariant int

const (
	// Simas prunes zero-weight candidate edges immediately — a
	// zero-weight singleton vector can never be dominated, so it is
	// never marked redundant without consulting the search result —
	// and otherwise falls back to the same dominance test Costa uses.
	Simas StructuralVariant = iota

	// Costa always tests every candidate edge against the completed
	// per-source Pareto search result; no shortcut is taken.
	Costa
)
