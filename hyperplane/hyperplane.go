package hyperplane

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pareto/linalg"
	"github.com/katalvlaran/pareto/perrors"
	"github.com/katalvlaran/pareto/point"
)

// equalityEpsilon bounds the "positive scalar multiple" test used by Equal
// and IsParallel. Spec.md §9 calls for an explicit tolerance rather than
// exact == on doubles.
const equalityEpsilon = 1e-9

// Hyperplane represents {x : a.x = b} in d dimensions.
type Hyperplane struct {
	a []float64
	b float64
}

// FromCoefficients builds the hyperplane a.x = b directly from its
// coefficients. The slice is copied.
func FromCoefficients(a []float64, b float64) Hyperplane {
	cp := make([]float64, len(a))
	copy(cp, a)

	return Hyperplane{a: cp, b: b}
}

// FromPoints2D builds the line through two distinct 2D points.
// Fails ErrSamePoints when p1 == p2, ErrNot2DPoints when either point is
// not 2-dimensional.
func FromPoints2D(p1, p2 point.Point) (Hyperplane, error) {
	if p1.Dim() != 2 || p2.Dim() != 2 {
		return Hyperplane{}, perrors.ErrNot2DPoints
	}
	if p1.Equal(p2) {
		return Hyperplane{}, perrors.ErrSamePoints
	}

	return FromPoints([]point.Point{p1, p2})
}

// FromPoints builds the (d-1)-hyperplane through d affinely independent
// d-dimensional points, via the generalized cross product described in
// spec.md §4.B: the normal's i'th component is the determinant of the
// d*d matrix obtained by deleting column i from the d*(d+1) matrix of
// point coordinates augmented with a column of ones, with alternating
// sign. When the points are affinely dependent the resulting coefficient
// vector is all zeros (spec.md §4.B); callers (facet) treat that as the
// degenerate case and disable the LDP.
func FromPoints(points []point.Point) (Hyperplane, error) {
	d := len(points)
	if d == 0 {
		return Hyperplane{}, perrors.ErrNullObject
	}
	for _, p := range points {
		if p.Dim() != d {
			return Hyperplane{}, perrors.ErrDifferentDimensions
		}
	}

	// M is d x (d+1): each row is a point's coordinates followed by a 1.
	m := make([][]float64, d)
	for i, p := range points {
		row := make([]float64, d+1)
		copy(row, p.Coords())
		row[d] = 1
		m[i] = row
	}

	a := make([]float64, d)
	sign := 1.0
	for col := 0; col < d; col++ {
		minor := deleteColumn(m, col)
		det, err := linalg.Determinant(minor)
		if err != nil {
			return Hyperplane{}, err
		}
		a[col] = sign * det
		sign = -sign
	}

	// b = a . (any vertex), using the first point.
	b := linalg.Dot(a, points[0].Coords())

	return Hyperplane{a: a, b: b}, nil
}

// deleteColumn returns a copy of m with column col removed.
func deleteColumn(m [][]float64, col int) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		nr := make([]float64, 0, len(row)-1)
		for j, v := range row {
			if j != col {
				nr = append(nr, v)
			}
		}
		out[i] = nr
	}

	return out
}

// Dim returns the number of coefficients (the ambient space's dimension).
func (h Hyperplane) Dim() int {
	return len(h.a)
}

// Coefficient returns the i'th coefficient. Fails
// ErrNonExistentCoefficient when i is out of range.
func (h Hyperplane) Coefficient(i int) (float64, error) {
	if i < 0 || i >= len(h.a) {
		return 0, perrors.ErrNonExistentCoefficient
	}

	return h.a[i], nil
}

// Offset returns b, the right-hand side of a.x = b.
func (h Hyperplane) Offset() float64 {
	return h.b
}

// Normal returns a defensive copy of the coefficient vector a.
func (h Hyperplane) Normal() []float64 {
	cp := make([]float64, len(h.a))
	copy(cp, h.a)

	return cp
}

// IsDegenerate reports whether every coefficient is exactly zero,
// the affinely-dependent case spec.md §4.B calls out.
func (h Hyperplane) IsDegenerate() bool {
	for _, c := range h.a {
		if c != 0 {
			return false
		}
	}

	return true
}

// RatioDistance returns the ratio distance from the strictly positive
// point p to h's supporting hyperplane:
//
//	RD(p, H) = max(0, (b - a.p) / (a.p))
//
// Fails ErrDifferentDimensions on a dimension mismatch,
// ErrNotStrictlyPositivePoint when p is not strictly positive, and
// ErrInfiniteRatioDistance when a.p == 0 != b.
func (h Hyperplane) RatioDistance(p point.Point) (float64, error) {
	if p.Dim() != h.Dim() {
		return 0, perrors.ErrDifferentDimensions
	}
	if !p.IsStrictlyPositive() {
		return 0, perrors.ErrNotStrictlyPositivePoint
	}

	ap := p.Dot(h.a)
	if ap == 0 {
		if h.b == 0 {
			return 0, nil
		}

		return 0, perrors.ErrInfiniteRatioDistance
	}

	d := (h.b - ap) / ap
	if d < 0 {
		return 0, nil
	}

	return d, nil
}

// ParallelThrough returns a new hyperplane with the same normal as h,
// passing through p: the same a, with b' = a.p.
func (h Hyperplane) ParallelThrough(p point.Point) Hyperplane {
	b := p.Dot(h.a)

	return Hyperplane{a: h.Normal(), b: b}
}

// IsParallel reports whether h and g have normals that are scalar
// multiples of one another (cross-multiplication, tolerant of floating
// error up to equalityEpsilon).
func (h Hyperplane) IsParallel(g Hyperplane) bool {
	if len(h.a) != len(g.a) {
		return false
	}

	return crossMultiplyEqual(h.a, g.a)
}

// Equal reports whether h and g describe the same hyperplane: g's
// coefficients (and offset) are a single positive scalar multiple k of h's
// (spec.md §3: "positive scalar multiples under the scaling a.b' = a'.b").
func (h Hyperplane) Equal(g Hyperplane) bool {
	if len(h.a) != len(g.a) {
		return false
	}
	if !crossMultiplyEqual(h.a, g.a) {
		return false
	}

	k, ok := scaleFactor(h.a, g.a)
	if !ok {
		// Both normals are entirely zero (degenerate); equality then
		// reduces to comparing offsets directly.
		return absDiff(h.b, g.b) <= equalityEpsilon
	}
	if k <= 0 {
		return false
	}

	return absDiff(g.b, k*h.b) <= equalityEpsilon*(1+absValMax(g.b, k*h.b))
}

// scaleFactor returns k such that b ~= k*a component-wise, using the first
// nonzero component of a as the reference. ok is false when a is all zero.
func scaleFactor(a, b []float64) (float64, bool) {
	for i, ai := range a {
		if ai != 0 {
			return b[i] / ai, true
		}
	}

	return 0, false
}

// Intersection solves for the unique point where h and g meet, defined
// only in 2 dimensions. Fails ErrNot2DHyperplanes when either hyperplane
// is not 2-dimensional, ErrParallelHyperplanes when they are parallel
// (including coincident) and thus have no unique intersection.
func (h Hyperplane) Intersection(g Hyperplane) (point.Point, error) {
	if h.Dim() != 2 || g.Dim() != 2 {
		return point.Point{}, perrors.ErrNot2DHyperplanes
	}
	if h.IsParallel(g) {
		return point.Point{}, perrors.ErrParallelHyperplanes
	}

	x, err := linalg.Solve([][]float64{h.Normal(), g.Normal()}, []float64{h.b, g.b})
	if err != nil {
		return point.Point{}, perrors.ErrParallelHyperplanes
	}

	return point.New(x...), nil
}

// String renders h as "( a1 * x1 + a2 * x2 + ... + ad * xd = b )", with
// subsequent coefficients signed " + |a|" / " - |a|", matching spec.md §6.
func (h Hyperplane) String() string {
	var sb strings.Builder
	sb.WriteString("( ")
	for i, c := range h.a {
		if i == 0 {
			fmt.Fprintf(&sb, "%v * x%d", c, i+1)
			continue
		}
		if c < 0 {
			fmt.Fprintf(&sb, " - %v * x%d", -c, i+1)
		} else {
			fmt.Fprintf(&sb, " + %v * x%d", c, i+1)
		}
	}
	fmt.Fprintf(&sb, " = %v )", h.b)

	return sb.String()
}

func crossMultiplyEqual(a, b []float64) bool {
	// Find a reference index with a nonzero entry in either vector.
	var ratio float64
	haveRatio := false
	for i := range a {
		if a[i] == 0 && b[i] == 0 {
			continue
		}
		if a[i] == 0 || b[i] == 0 {
			return false
		}
		r := b[i] / a[i]
		if !haveRatio {
			ratio = r
			haveRatio = true
			continue
		}
		if absDiff(r, ratio) > equalityEpsilon*(1+absValMax(r, ratio)) {
			return false
		}
	}

	return haveRatio
}

func absDiff(x, y float64) float64 {
	d := x - y
	if d < 0 {
		return -d
	}

	return d
}

func absValMax(x, y float64) float64 {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	if x > y {
		return x
	}

	return y
}
