package facet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pareto/facet"
	"github.com/katalvlaran/pareto/perrors"
	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/solution"
)

func mustVertex(t *testing.T, p point.Point, w []float64) solution.PointAndSolution[string] {
	v, err := solution.New(p, "sol", w)
	require.NoError(t, err)

	return v
}

// TestFacet_TriobjectiveUnitSimplex mirrors spec.md scenario S3: the facet
// through (1,1,100), (1,100,1), (100,1,1) obtained with axis-aligned
// weights has LDP (1,1,1). Every vertex's coordinates sum to 102 and the
// LDP's sum to 3, so the certified bound is the fixed ratio 33 regardless
// of the geometric normal's arbitrary positive scale.
func TestFacet_TriobjectiveUnitSimplex(t *testing.T) {
	vertices := []solution.PointAndSolution[string]{
		mustVertex(t, point.New(1, 1, 100), []float64{1, 0, 0}),
		mustVertex(t, point.New(1, 100, 1), []float64{0, 0, 1}),
		mustVertex(t, point.New(100, 1, 1), []float64{0, 1, 0}),
	}

	f, err := facet.NewComputeNormal(vertices, true)
	require.NoError(t, err)

	assert.False(t, f.IsBoundaryFacet())
	ldp, ok := f.LDP()
	require.True(t, ok)
	assert.True(t, ldp.Equal(point.New(1, 1, 1)))
	assert.InDelta(t, 33, f.Bound(), 1e-6)
}

// TestFacet_CollinearVerticesIsBoundary mirrors spec.md scenario S4/§8's
// "collinear vertices -> all-zero normal -> boundary" boundary behavior.
func TestFacet_CollinearVerticesIsBoundary(t *testing.T) {
	vertices := []solution.PointAndSolution[string]{
		mustVertex(t, point.New(0, 0, 0), []float64{1, 0, 0}),
		mustVertex(t, point.New(2, 3, 4), []float64{0, 1, 0}),
		mustVertex(t, point.New(4, 6, 8), []float64{0, 0, 1}),
	}

	f, err := facet.NewComputeNormal(vertices, false)
	require.NoError(t, err)

	for _, c := range f.Normal() {
		assert.Equal(t, 0.0, c)
	}
	assert.True(t, f.IsBoundaryFacet())
	assert.Equal(t, facet.BoundNoUniqueLDP, f.Bound())
}

func TestFacet_TiedWeightsIsBoundary(t *testing.T) {
	// Two vertices sharing the same weight vector make W singular.
	vertices := []solution.PointAndSolution[string]{
		mustVertex(t, point.New(1, 5), []float64{1, 0}),
		mustVertex(t, point.New(2, 3), []float64{1, 0}),
	}

	f, err := facet.NewWithNormal(vertices, []float64{1, 1})
	require.NoError(t, err)
	assert.True(t, f.IsBoundaryFacet())
	assert.Equal(t, facet.BoundNoUniqueLDP, f.Bound())
}

func TestFacet_LDPNotStrictlyPositive(t *testing.T) {
	vertices := []solution.PointAndSolution[string]{
		mustVertex(t, point.New(1, 5), []float64{1, 0}),
		mustVertex(t, point.New(5, -1), []float64{0, 1}),
	}

	f, err := facet.NewWithNormal(vertices, []float64{1, 1})
	require.NoError(t, err)
	ldp, ok := f.LDP()
	require.True(t, ok)
	assert.True(t, ldp.Equal(point.New(1, -1)))
	assert.True(t, f.IsBoundaryFacet())
	assert.Equal(t, facet.BoundLDPNotPositive, f.Bound())
}

// TestFacet_InfiniteRatioDistanceIsBoundary mirrors spec.md scenario S5:
// a facet with normal (1, -1, 0) whose LDP (2, 2, 5) is strictly positive
// but lies exactly on the plane x - y = 0, one unit short of the facet's
// own supporting hyperplane x - y = 1. RatioDistance's a.p == 0 != b case
// fires, and the facet is classified boundary rather than propagating the
// error.
func TestFacet_InfiniteRatioDistanceIsBoundary(t *testing.T) {
	vertices := []solution.PointAndSolution[string]{
		mustVertex(t, point.New(2, 1, 1), []float64{1, 0, 0}),
		mustVertex(t, point.New(1, 2, 1), []float64{0, 1, 0}),
		mustVertex(t, point.New(1, 1, 5), []float64{0, 0, 1}),
	}

	f, err := facet.NewWithNormal(vertices, []float64{1, -1, 0})
	require.NoError(t, err)

	ldp, ok := f.LDP()
	require.True(t, ok)
	assert.True(t, ldp.Equal(point.New(2, 2, 5)))
	assert.True(t, f.IsBoundaryFacet())
	assert.Equal(t, facet.BoundNoUniqueLDP, f.Bound())
}

func TestFacet_WrongVertexCount(t *testing.T) {
	vertices := []solution.PointAndSolution[string]{
		mustVertex(t, point.New(1, 1), []float64{1, 0}),
	}
	_, err := facet.NewWithNormal(vertices, []float64{1})
	assert.ErrorIs(t, err, perrors.ErrDifferentDimensions)

	_, err = facet.NewComputeNormal[string](nil, false)
	assert.ErrorIs(t, err, perrors.ErrWrongVertexCount)
}

func TestFacet_MeanVertexWeightsAndNormalize(t *testing.T) {
	vertices := []solution.PointAndSolution[string]{
		mustVertex(t, point.New(1, 5), []float64{1, 0}),
		mustVertex(t, point.New(5, 1), []float64{0, 1}),
	}
	f, err := facet.NewWithNormal(vertices, []float64{3, 4})
	require.NoError(t, err)

	mean := f.MeanVertexWeights()
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, mean, 1e-9)

	n := f.Normalize()
	assert.InDelta(t, 1.0, n[0]*n[0]+n[1]*n[1], 1e-9)

	assert.True(t, f.HasAllNonNegative())
	assert.False(t, f.HasAllNonPositive())
}

func TestFacet_Visible(t *testing.T) {
	vertices := []solution.PointAndSolution[string]{
		mustVertex(t, point.New(1, 5), []float64{1, 0}),
		mustVertex(t, point.New(5, 1), []float64{0, 1}),
	}
	f, err := facet.NewWithNormal(vertices, []float64{1, 1})
	require.NoError(t, err)

	assert.True(t, f.Visible(point.New(2, 3)))  // 2+3=5 < offset=6
	assert.False(t, f.Visible(point.New(10, 10))) // 20 >= 6
}
