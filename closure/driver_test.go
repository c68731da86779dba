package closure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CASCI-lab/Multilayer-Backbone/closure"
	"github.com/CASCI-lab/Multilayer-Backbone/layergraph"
	"github.com/CASCI-lab/Multilayer-Backbone/multidist"
	"github.com/CASCI-lab/Multilayer-Backbone/pareto"
)

func chainGraph(t *testing.T) *layergraph.Graph {
	t.Helper()
	g, err := layergraph.BuildGraph(map[string]layergraph.LayerInput{
		"L0": {Edges: []layergraph.EdgeSpec{
			{From: "A", To: "B", Attrs: map[string]float64{"weight": 1}},
			{From: "B", To: "C", Attrs: map[string]float64{"weight": 1}},
			{From: "C", To: "D", Attrs: map[string]float64{"weight": 1}},
		}},
	})
	require.NoError(t, err)

	return g
}

func TestAllPairs_SortedBySource(t *testing.T) {
	g := chainGraph(t)
	results, err := closure.AllPairs(g, closure.WithStartLayer("L0"))
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1].Source, results[i].Source
		assert.True(t, prev.Name < cur.Name || (prev.Name == cur.Name && prev.LayerID <= cur.LayerID),
			"expected sorted order, got %v before %v", prev, cur)
	}
}

func TestAllPairs_ParallelMatchesSequential(t *testing.T) {
	g := chainGraph(t)

	seq, err := closure.AllPairs(g, closure.WithStartLayer("L0"))
	require.NoError(t, err)

	par, err := closure.AllPairs(g, closure.WithStartLayer("L0"), closure.WithParallelism(4))
	require.NoError(t, err)

	require.Equal(t, len(seq), len(par))
	for i := range seq {
		assert.Equal(t, seq[i].Source, par[i].Source)
		assert.Equal(t, len(seq[i].Dist), len(par[i].Dist))
	}
}

func TestAllPairs_UnknownStartLayer(t *testing.T) {
	g := chainGraph(t)
	_, err := closure.AllPairs(g, closure.WithStartLayer("ghost"))
	require.ErrorIs(t, err, layergraph.ErrUnknownLayer)
}

func TestAllPairs_NilGraph(t *testing.T) {
	_, err := closure.AllPairs(nil)
	require.ErrorIs(t, err, pareto.ErrNilGraph)
}

// TestClosure_Reflexivity: P2 — closure[s][s] contains zero(k) and
// nothing else, on an acyclic graph where no path returns to its source.
func TestClosure_Reflexivity(t *testing.T) {
	g := chainGraph(t)
	c, err := closure.Closure(g, closure.WithStartLayer("L0"))
	require.NoError(t, err)

	aa, ok := c["A"]["A"]
	require.True(t, ok)
	require.Len(t, aa, 1)
	assert.True(t, multidist.Equal(aa[0], multidist.Zero(1)))
}

// TestClosure_DepthCutMonotonicity: P3 — every Pareto label reachable
// within depth_cut=D also appears (possibly dominated-away) in the
// unbounded closure; concretely, an unbounded search finds every node a
// depth-bounded search finds, plus possibly more.
func TestClosure_DepthCutMonotonicity(t *testing.T) {
	g := chainGraph(t)

	bounded, err := closure.Closure(g, closure.WithStartLayer("L0"), closure.WithParetoOptions(pareto.WithDepthCut(1)))
	require.NoError(t, err)

	unbounded, err := closure.Closure(g, closure.WithStartLayer("L0"))
	require.NoError(t, err)

	for target := range bounded["A"] {
		_, ok := unbounded["A"][target]
		assert.True(t, ok, "target %q reachable under depth_cut=1 must remain reachable unbounded", target)
	}
	assert.Greater(t, len(unbounded["A"]), len(bounded["A"]), "unbounded search reaches strictly more of the 4-node chain")
}

// TestClosure_InterlayerFreeness: P8 — adding an interlayer identity
// edge (i.e. the same name appearing in a second, otherwise-unconnected
// layer) never increases any component of any closure entry for the
// original layer.
func TestClosure_InterlayerFreeness(t *testing.T) {
	before, err := layergraph.BuildGraph(map[string]layergraph.LayerInput{
		"L0": {Edges: []layergraph.EdgeSpec{{From: "A", To: "B", Attrs: map[string]float64{"weight": 3}}}},
	})
	require.NoError(t, err)

	after, err := layergraph.BuildGraph(map[string]layergraph.LayerInput{
		"L0": {Edges: []layergraph.EdgeSpec{{From: "A", To: "B", Attrs: map[string]float64{"weight": 3}}}},
		"L1": {Nodes: []layergraph.NodeSpec{{Name: "A"}, {Name: "B"}}},
	})
	require.NoError(t, err)

	cBefore, err := closure.Closure(before, closure.WithStartLayer("L0"))
	require.NoError(t, err)
	cAfter, err := closure.Closure(after, closure.WithStartLayer("L0"))
	require.NoError(t, err)

	for _, label := range cBefore["A"]["B"] {
		dominatedOrEqual := false
		for _, afterLabel := range cAfter["A"]["B"] {
			if multidist.Equal(label, afterLabel) {
				dominatedOrEqual = true

				break
			}
			dom, err := multidist.Dominates(afterLabel, label)
			require.NoError(t, err)
			if dom {
				dominatedOrEqual = true

				break
			}
		}
		assert.True(t, dominatedOrEqual, "adding L1 must not worsen A->B's L0 closure entry %v", label)
	}
}
