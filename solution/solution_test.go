package solution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pareto/perrors"
	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/solution"
)

func TestNewValidatesDimension(t *testing.T) {
	_, err := solution.New(point.New(1, 2), "route-a", []float64{1})
	assert.ErrorIs(t, err, perrors.ErrDifferentDimensions)

	ps, err := solution.New(point.New(1, 2), "route-a", []float64{1, 0})
	require.NoError(t, err)
	assert.Equal(t, "route-a", ps.Solution)
	assert.True(t, ps.Point.Equal(point.New(1, 2)))
}

func TestLess(t *testing.T) {
	a, _ := solution.New(point.New(1, 5), "a", []float64{1, 0})
	b, _ := solution.New(point.New(2, 3), "b", []float64{0, 1})

	less, err := a.Less(b)
	require.NoError(t, err)
	assert.True(t, less)
}

func TestAsPoint(t *testing.T) {
	p := point.New(1, 2)
	ps, _ := solution.New(p, 42, []float64{0.5, 0.5})
	assert.True(t, ps.AsPoint().Equal(p))
}
