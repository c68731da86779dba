package multidist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CASCI-lab/Multilayer-Backbone/multidist"
)

func TestZeroAndClone(t *testing.T) {
	z := multidist.Zero(3)
	assert.Equal(t, multidist.MultiDistance{0, 0, 0}, z)

	c := z.Clone()
	c[0] = 5
	assert.Equal(t, float64(0), z[0], "Clone must not alias the original")
}

func TestAddToLayer(t *testing.T) {
	d := multidist.Zero(2)
	require.NoError(t, d.AddToLayer(1, 4))
	assert.Equal(t, multidist.MultiDistance{0, 4}, d)

	require.ErrorIs(t, d.AddToLayer(-1, 1), multidist.ErrInvalidLayerIndex)
	require.ErrorIs(t, d.AddToLayer(2, 1), multidist.ErrInvalidLayerIndex)
	require.ErrorIs(t, d.AddToLayer(0, -1), multidist.ErrInvalidWeight)
}

func TestSum(t *testing.T) {
	a := multidist.MultiDistance{1, 2}
	b := multidist.MultiDistance{3, 4}
	sum, err := multidist.Sum(a, b)
	require.NoError(t, err)
	assert.Equal(t, multidist.MultiDistance{4, 6}, sum)

	_, err = multidist.Sum(a, multidist.MultiDistance{1})
	require.ErrorIs(t, err, multidist.ErrDimensionMismatch)
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b multidist.MultiDistance
		want multidist.Ordering
	}{
		{"less", multidist.MultiDistance{1, 1}, multidist.MultiDistance{2, 1}, multidist.Less},
		{"greater", multidist.MultiDistance{2, 2}, multidist.MultiDistance{1, 2}, multidist.Greater},
		{"equal", multidist.MultiDistance{1, 1}, multidist.MultiDistance{1, 1}, multidist.Equal},
		{"incomparable", multidist.MultiDistance{1, 2}, multidist.MultiDistance{2, 1}, multidist.Incomparable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ord, err := multidist.Compare(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ord)
		})
	}

	_, err := multidist.Compare(multidist.MultiDistance{1}, multidist.MultiDistance{1, 2})
	require.ErrorIs(t, err, multidist.ErrDimensionMismatch)
}

func TestDominates(t *testing.T) {
	a := multidist.MultiDistance{1, 1}
	b := multidist.MultiDistance{1, 2}
	dom, err := multidist.Dominates(a, b)
	require.NoError(t, err)
	assert.True(t, dom)

	dom, err = multidist.Dominates(b, a)
	require.NoError(t, err)
	assert.False(t, dom)

	dom, err = multidist.Dominates(a, a)
	require.NoError(t, err)
	assert.False(t, dom, "a vector never strictly dominates itself")
}

func TestEqual(t *testing.T) {
	assert.True(t, multidist.Equal(multidist.MultiDistance{1, 2}, multidist.MultiDistance{1, 2}))
	assert.False(t, multidist.Equal(multidist.MultiDistance{1, 2}, multidist.MultiDistance{1, 3}))
	assert.False(t, multidist.Equal(multidist.MultiDistance{1}, multidist.MultiDistance{1, 2}))
}

func TestWeightedSum(t *testing.T) {
	d := multidist.MultiDistance{2, 3}
	sum, err := multidist.WeightedSum(d, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(5), sum)

	sum, err = multidist.WeightedSum(d, multidist.MultiDistance{2, 1})
	require.NoError(t, err)
	assert.Equal(t, float64(7), sum)

	_, err = multidist.WeightedSum(d, multidist.MultiDistance{1})
	require.ErrorIs(t, err, multidist.ErrDimensionMismatch)
}
