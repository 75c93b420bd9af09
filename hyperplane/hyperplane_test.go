package hyperplane_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pareto/hyperplane"
	"github.com/katalvlaran/pareto/perrors"
	"github.com/katalvlaran/pareto/point"
)

func TestFromPoints2D(t *testing.T) {
	h, err := hyperplane.FromPoints2D(point.New(1, 0), point.New(0, 1))
	require.NoError(t, err)
	// Line x+y=1.
	a0, _ := h.Coefficient(0)
	a1, _ := h.Coefficient(1)
	assert.InDelta(t, a0, a1, 1e-9)
	assert.InDelta(t, h.Offset(), a0, 1e-9)

	_, err = hyperplane.FromPoints2D(point.New(1, 1), point.New(1, 1))
	assert.ErrorIs(t, err, perrors.ErrSamePoints)

	_, err = hyperplane.FromPoints2D(point.New(1, 1, 1), point.New(0, 1))
	assert.ErrorIs(t, err, perrors.ErrNot2DPoints)
}

func TestFromPointsDegenerate(t *testing.T) {
	// Three collinear 3D points -> degenerate (all-zero) normal.
	h, err := hyperplane.FromPoints([]point.Point{
		point.New(0, 0, 0),
		point.New(2, 3, 4),
		point.New(4, 6, 8),
	})
	require.NoError(t, err)
	assert.True(t, h.IsDegenerate())
}

func TestFromPointsSimplex(t *testing.T) {
	h, err := hyperplane.FromPoints([]point.Point{
		point.New(1, 1, 100),
		point.New(1, 100, 1),
		point.New(100, 1, 1),
	})
	require.NoError(t, err)
	assert.False(t, h.IsDegenerate())
	for _, p := range []point.Point{
		point.New(1, 1, 100),
		point.New(1, 100, 1),
		point.New(100, 1, 1),
	} {
		assert.InDelta(t, h.Offset(), p.Dot(h.Normal()), 1e-6)
	}
}

func TestRatioDistance(t *testing.T) {
	h := hyperplane.FromCoefficients([]float64{1, 1}, 4)
	d, err := h.RatioDistance(point.New(1, 1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-9) // (4-2)/2

	_, err = h.RatioDistance(point.New(1, 1, 1))
	assert.ErrorIs(t, err, perrors.ErrDifferentDimensions)

	_, err = h.RatioDistance(point.New(0, 1))
	assert.ErrorIs(t, err, perrors.ErrNotStrictlyPositivePoint)

	// a.p == 0 for p = (1,1) while b == 1.
	zero := hyperplane.FromCoefficients([]float64{1, -1}, 1)
	_, err = zero.RatioDistance(point.New(1, 1))
	assert.ErrorIs(t, err, perrors.ErrInfiniteRatioDistance)
}

func TestParallelThroughAndIsParallel(t *testing.T) {
	h := hyperplane.FromCoefficients([]float64{1, 2}, 5)
	p := point.New(3, 4)
	through := h.ParallelThrough(p)

	assert.InDelta(t, p.Dot(through.Normal()), through.Offset(), 1e-9)
	assert.True(t, h.IsParallel(through))
}

func TestEqual(t *testing.T) {
	h1 := hyperplane.FromCoefficients([]float64{1, 2}, 3)
	h2 := hyperplane.FromCoefficients([]float64{2, 4}, 6)
	h3 := hyperplane.FromCoefficients([]float64{-1, -2}, -3) // negative scale

	assert.True(t, h1.Equal(h1), "reflexive")
	assert.True(t, h1.Equal(h2))
	assert.True(t, h2.Equal(h1), "symmetric")
	assert.False(t, h1.Equal(h3), "negative scalar multiples are not equal")

	h4 := hyperplane.FromCoefficients([]float64{4, 8}, 12)
	assert.True(t, h1.Equal(h4))
	assert.True(t, h2.Equal(h4), "transitive")
}

func TestIntersection(t *testing.T) {
	h1, _ := hyperplane.FromPoints2D(point.New(0, 0), point.New(2, 2)) // y = x
	h2, _ := hyperplane.FromPoints2D(point.New(0, 4), point.New(4, 0)) // y = 4 - x

	p, err := h1.Intersection(h2)
	require.NoError(t, err)
	x, _ := p.Coord(0)
	y, _ := p.Coord(1)
	assert.InDelta(t, 2, x, 1e-9)
	assert.InDelta(t, 2, y, 1e-9)

	_, err = h1.Intersection(h1)
	assert.ErrorIs(t, err, perrors.ErrParallelHyperplanes)

	h3d := hyperplane.FromCoefficients([]float64{1, 1, 1}, 1)
	_, err = h1.Intersection(h3d)
	assert.ErrorIs(t, err, perrors.ErrNot2DHyperplanes)
}
