package problem_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pareto/perrors"
	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/problem"
	"github.com/katalvlaran/pareto/solution"
)

// lexMinOracle answers Comb(w) with the feasible point minimizing w.p,
// lexicographically smallest on ties — the oracle convention spec.md's
// end-to-end scenarios (S1, S2) assume.
type lexMinOracle struct {
	feasible []point.Point
	calls    int
}

func (o *lexMinOracle) Comb(w []float64) (solution.PointAndSolution[string], error) {
	o.calls++

	best := o.feasible[0]
	bestVal := best.Dot(w)
	for _, p := range o.feasible[1:] {
		v := p.Dot(w)
		if v < bestVal {
			best, bestVal = p, v
			continue
		}
		if v == bestVal {
			if less, _ := p.Less(best); less {
				best = p
			}
		}
	}

	return solution.New(best, best.String(), append([]float64(nil), w...))
}

func itemPoints[S any](items []solution.PointAndSolution[S]) []point.Point {
	out := make([]point.Point, len(items))
	for i, it := range items {
		out[i] = it.Point
	}

	return out
}

func assertSameSet(t *testing.T, got []point.Point, want ...point.Point) {
	require.Equal(t, len(want), len(got), "got %v, want %v", got, want)
	for _, w := range want {
		found := false
		for _, g := range got {
			if g.Equal(w) {
				found = true

				break
			}
		}
		assert.True(t, found, "missing %v in %v", w, got)
	}
}

// TestSolve_S1_BiobjectiveTwoSeedsSuffice mirrors spec.md scenario S1.
func TestSolve_S1_BiobjectiveTwoSeedsSuffice(t *testing.T) {
	o := &lexMinOracle{feasible: []point.Point{point.New(1, 5), point.New(2, 3), point.New(5, 1)}}
	dr := problem.New[string](o)

	result, err := dr.Solve(2, 0)
	require.NoError(t, err)
	assertSameSet(t, itemPoints(result.Items()), point.New(1, 5), point.New(2, 3), point.New(5, 1))
}

// TestSolve_S2_EpsilonPrunesInterior mirrors spec.md scenario S2: with
// eps=1.0, (2,3) is 1-covered by the seed (1,5) and never makes it into the
// final set.
func TestSolve_S2_EpsilonPrunesInterior(t *testing.T) {
	o := &lexMinOracle{feasible: []point.Point{point.New(1, 5), point.New(2, 3), point.New(5, 1)}}
	dr := problem.New[string](o)

	result, err := dr.Solve(2, 1.0)
	require.NoError(t, err)
	assertSameSet(t, itemPoints(result.Items()), point.New(1, 5), point.New(5, 1))
}

// argmaxOracle answers with the feasible point maximizing w.p.
type argmaxOracle struct {
	feasible []point.Point
	calls    int
}

func (o *argmaxOracle) Comb(w []float64) (solution.PointAndSolution[string], error) {
	o.calls++

	best := o.feasible[0]
	bestVal := best.Dot(w)
	for _, p := range o.feasible[1:] {
		if v := p.Dot(w); v > bestVal {
			best, bestVal = p, v
		}
	}

	return solution.New(best, best.String(), append([]float64(nil), w...))
}

// TestSolve_S3_TriobjectiveUnitSimplex mirrors spec.md scenario S3: the
// three axis extrema of this feasible set already form a facet whose
// certified bound clamps to 0, so the driver returns them without any
// phase-3 oracle call.
func TestSolve_S3_TriobjectiveUnitSimplex(t *testing.T) {
	o := &argmaxOracle{feasible: []point.Point{
		point.New(1, 1, 100), point.New(1, 100, 1), point.New(100, 1, 1),
	}}
	dr := problem.New[string](o)

	result, err := dr.Solve(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, o.calls)
	assertSameSet(t, itemPoints(result.Items()), o.feasible...)
}

// fixedSeedOracle ignores w entirely and returns its points in order,
// letting a test force a specific, otherwise-improbable seed configuration
// (spec.md scenario S4's collinear seeds).
type fixedSeedOracle struct {
	pts   []point.Point
	calls int
}

func (o *fixedSeedOracle) Comb(w []float64) (solution.PointAndSolution[string], error) {
	p := o.pts[o.calls]
	o.calls++

	return solution.New(p, p.String(), append([]float64(nil), w...))
}

// TestSolve_S4_CollinearSeeds mirrors spec.md scenario S4: three collinear,
// mutually non-dominated seeds make the affine hull degenerate; the driver
// returns them unchanged without ever building a Facet.
func TestSolve_S4_CollinearSeeds(t *testing.T) {
	o := &fixedSeedOracle{pts: []point.Point{point.New(1, 5, 1), point.New(2, 4, 2), point.New(3, 3, 3)}}
	dr := problem.New[string](o)

	result, err := dr.Solve(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, o.calls, "only the 3 seeding calls, no refinement")
	assertSameSet(t, itemPoints(result.Items()), o.pts...)
}

// TestSolve_Dimension1TerminatesAfterOneCall covers §8's boundary behavior:
// a 1-dimensional problem always terminates after exactly one oracle call.
func TestSolve_Dimension1TerminatesAfterOneCall(t *testing.T) {
	o := &fixedSeedOracle{pts: []point.Point{point.New(42)}}
	dr := problem.New[string](o)

	result, err := dr.Solve(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, o.calls)
	assert.Equal(t, 1, result.Len())
	assertSameSet(t, itemPoints(result.Items()), point.New(42))
}

func TestSolve_InvalidArguments(t *testing.T) {
	o := &fixedSeedOracle{pts: []point.Point{point.New(1)}}
	dr := problem.New[string](o)

	_, err := dr.Solve(0, 0)
	assert.ErrorIs(t, err, perrors.ErrInvalidDimension)

	_, err = dr.Solve(1, -0.5)
	assert.ErrorIs(t, err, perrors.ErrInvalidEpsilon)
}

type failingOracle struct{}

func (failingOracle) Comb(w []float64) (solution.PointAndSolution[string], error) {
	return solution.PointAndSolution[string]{}, errors.New("feasible region is empty")
}

func TestSolve_OracleFailureIsWrapped(t *testing.T) {
	dr := problem.New[string](failingOracle{})

	_, err := dr.Solve(2, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, perrors.ErrOracleFailure)
}
