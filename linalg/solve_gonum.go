package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pareto/perrors"
)

// SolveGonum solves W*x = c exactly like Solve, but delegates elimination to
// gonum's dense LU solver instead of the hand-rolled kernel in linalg.go.
// The facet package only calls this when the driver is configured with
// problem.WithGonumSolver(); the default remains the bespoke solver, per
// spec.md §9's recommendation that a hand-rolled d<=3 solver "suffices and
// is more portable" — this path exists for hosts that already depend on
// gonum elsewhere and would rather not carry a second numeric kernel.
func SolveGonum(w [][]float64, c []float64) ([]float64, error) {
	n := len(w)
	if n == 0 || len(c) != n {
		return nil, perrors.ErrDifferentDimensions
	}

	flat := make([]float64, 0, n*n)
	for _, row := range w {
		if len(row) != n {
			return nil, perrors.ErrDifferentDimensions
		}
		flat = append(flat, row...)
	}

	W := mat.NewDense(n, n, flat)
	bvec := mat.NewVecDense(n, c)

	var lu mat.LU
	lu.Factorize(W)
	if cond := lu.Cond(); cond > 1/pivotEpsilon {
		return nil, perrors.ErrSingularSystem
	}

	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, bvec); err != nil {
		return nil, perrors.ErrSingularSystem
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x.AtVec(i)
	}

	return out, nil
}
