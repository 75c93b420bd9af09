// Package linalg provides the small dense-matrix kernels the geometric core
// needs: determinants up to 3x3 (for Facet normal computation, spec.md §4.B),
// a Gaussian-elimination solver for small d*d systems (for the Lower Distal
// Point, spec.md §4.E), and a 2-norm. The source this module is ported from
// (_examples/original_source) leans on Armadillo for these; a hand-rolled
// solver is more portable and is explicitly what spec.md §9 recommends for
// d <= 3. A gonum-backed alternate path is also offered (see solve_gonum.go)
// for hosts that would rather not carry a bespoke numeric kernel.
package linalg

import (
	"math"

	"github.com/katalvlaran/pareto/perrors"
)

// pivotEpsilon is the absolute tolerance below which a pivot is treated as
// zero (singular system). Spec.md §9 calls for an explicit, documented
// tolerance rather than exact == comparisons.
const pivotEpsilon = 1e-10

// Norm2 returns the Euclidean norm of v.
func Norm2(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Dot returns the dot product of a and b. Both must have equal length;
// callers (point, hyperplane) are responsible for validating dimension
// before calling Dot — this kernel trusts its inputs like the teacher's
// fast-path matrix kernels do.
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// Determinant computes the determinant of a square matrix m, given as
// row-major m[i][j], for n in {1, 2, 3}. Larger n is out of scope per
// spec.md §1 ("Non-goals... dimensions > 3").
//
// Complexity: O(1) for n<=3.
func Determinant(m [][]float64) (float64, error) {
	n := len(m)
	switch n {
	case 1:
		return m[0][0], nil
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0], nil
	case 3:
		return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
			m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
			m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0]), nil
	default:
		return 0, perrors.ErrInvalidDimension
	}
}

// Solve solves the square system W*x = c for x, where W is row-major n*n
// (n in {1,2,3}) and c has length n. Uses Gaussian elimination with partial
// pivoting; returns ErrSingularSystem when no pivot exceeds pivotEpsilon in
// magnitude, which the caller (facet package) interprets as "no unique LDP"
// (spec.md §4.E).
//
// W and c are not mutated; Solve copies both before eliminating in place.
func Solve(w [][]float64, c []float64) ([]float64, error) {
	n := len(w)
	if n == 0 || len(c) != n {
		return nil, perrors.ErrDifferentDimensions
	}

	// Copy into an augmented matrix [W | c] so the caller's slices are untouched.
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		if len(w[i]) != n {
			return nil, perrors.ErrDifferentDimensions
		}
		row := make([]float64, n+1)
		copy(row, w[i])
		row[n] = c[i]
		aug[i] = row
	}

	// Forward elimination with partial pivoting.
	for col := 0; col < n; col++ {
		pivotRow := col
		maxAbs := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(aug[r][col]); v > maxAbs {
				maxAbs = v
				pivotRow = r
			}
		}
		if maxAbs < pivotEpsilon {
			return nil, perrors.ErrSingularSystem
		}
		if pivotRow != col {
			aug[col], aug[pivotRow] = aug[pivotRow], aug[col]
		}

		pivot := aug[col][col]
		for r := col + 1; r < n; r++ {
			factor := aug[r][col] / pivot
			if factor == 0 {
				continue
			}
			for cc := col; cc <= n; cc++ {
				aug[r][cc] -= factor * aug[col][cc]
			}
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}

	return x, nil
}
