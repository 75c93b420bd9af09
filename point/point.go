package point

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pareto/linalg"
	"github.com/katalvlaran/pareto/perrors"
)

// Point is an immutable, ordered tuple of d double-precision coordinates.
// The zero value is the 0-dimensional point and is a valid, if useless,
// Point: Dim() == 0 for it.
type Point struct {
	coords []float64
}

// New constructs a Point from the given coordinates. The slice passed in is
// copied; the returned Point never aliases the caller's backing array.
func New(coords ...float64) Point {
	cp := make([]float64, len(coords))
	copy(cp, coords)

	return Point{coords: cp}
}

// Dim returns the Point's dimension.
func (p Point) Dim() int {
	return len(p.coords)
}

// Coord returns the i'th coordinate. Fails ErrNonExistentCoordinate when
// i >= Dim().
func (p Point) Coord(i int) (float64, error) {
	if i < 0 || i >= len(p.coords) {
		return 0, perrors.ErrNonExistentCoordinate
	}

	return p.coords[i], nil
}

// Coords returns a defensive copy of the underlying coordinate slice.
func (p Point) Coords() []float64 {
	cp := make([]float64, len(p.coords))
	copy(cp, p.coords)

	return cp
}

// Equal reports whether p and q have the same dimension and equal
// coordinates. Points of different dimension are simply unequal; Equal
// never fails.
func (p Point) Equal(q Point) bool {
	if len(p.coords) != len(q.coords) {
		return false
	}
	for i, c := range p.coords {
		if c != q.coords[i] {
			return false
		}
	}

	return true
}

// Less reports whether p is lexicographically smaller than q: comparing
// coordinate by coordinate, p < q at the first index where they differ.
// Fails ErrDifferentDimensions when p and q have different dimension.
func (p Point) Less(q Point) (bool, error) {
	if len(p.coords) != len(q.coords) {
		return false, perrors.ErrDifferentDimensions
	}
	for i, c := range p.coords {
		if c != q.coords[i] {
			return c < q.coords[i], nil
		}
	}

	return false, nil
}

// RatioDistance returns the ratio distance from p to q:
//
//	RD(p, q) = max(0, max_i (q_i - p_i) / p_i)
//
// Fails ErrDifferentDimensions on a dimension mismatch and
// ErrNotStrictlyPositivePoint when any p_i == 0 (the quotient is undefined
// there; spec.md §4.A leaves this implementer-defined and we choose to
// error rather than return +Inf, consistent with ErrInfiniteRatioDistance
// in the hyperplane package).
func (p Point) RatioDistance(q Point) (float64, error) {
	if len(p.coords) != len(q.coords) {
		return 0, perrors.ErrDifferentDimensions
	}

	best := 0.0
	for i, pi := range p.coords {
		if pi == 0 {
			return 0, perrors.ErrNotStrictlyPositivePoint
		}
		if v := (q.coords[i] - pi) / pi; v > best {
			best = v
		}
	}

	return best, nil
}

// Dominates reports whether p eps-covers q: p_i <= (1+eps)*q_i for every
// coordinate i. With eps == 0 this is ordinary Pareto domination-or-equal.
// Both p and q must be strictly positive (spec.md §4.A); fails
// ErrNotPositivePoint, ErrNegativeApproximationRatio, or
// ErrDifferentDimensions as appropriate.
func (p Point) Dominates(q Point, eps float64) (bool, error) {
	if eps < 0 {
		return false, perrors.ErrNegativeApproximationRatio
	}
	if len(p.coords) != len(q.coords) {
		return false, perrors.ErrDifferentDimensions
	}
	if !p.IsStrictlyPositive() || !q.IsStrictlyPositive() {
		return false, perrors.ErrNotPositivePoint
	}
	for i, pi := range p.coords {
		if pi > (1+eps)*q.coords[i] {
			return false, nil
		}
	}

	return true, nil
}

// IsZero reports whether every coordinate is exactly 0.
func (p Point) IsZero() bool {
	for _, c := range p.coords {
		if c != 0 {
			return false
		}
	}

	return true
}

// IsStrictlyPositive reports whether every coordinate is > 0.
func (p Point) IsStrictlyPositive() bool {
	for _, c := range p.coords {
		if c <= 0 {
			return false
		}
	}

	return true
}

// AsPoint returns p itself, satisfying the paretoset.Keyed constraint so a
// NonDominatedSet[Point] can be built directly over raw Points.
func (p Point) AsPoint() Point {
	return p
}

// IsNull reports whether p is the zero-dimensional point, the convention
// this module uses in place of the source's null Point sentinel (spec.md
// §9) wherever a caller still wants a single-value "absent" check.
func (p Point) IsNull() bool {
	return len(p.coords) == 0
}

// Dot returns the dot product of p's coordinates with w. Both must have
// equal dimension; callers validate dimension before calling (hyperplane
// and facet both pre-check via Dim()).
func (p Point) Dot(w []float64) float64 {
	return linalg.Dot(p.coords, w)
}

// String renders p as "(c1, c2, ..., cd)", matching spec.md §6's textual
// format (scientific notation permitted via strconv's 'g' verb).
func (p Point) String() string {
	parts := make([]string, len(p.coords))
	for i, c := range p.coords {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// Parse reads a Point back from its String form. Zero-dimensional points
// "()" are rejected, mirroring the original source's operator>>, which
// spec.md §6 calls out explicitly ("zero-dimensional () is accepted by the
// writer and rejected by the reader").
func Parse(s string) (Point, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return Point{}, fmt.Errorf("point: parse %q: %w", s, perrors.ErrNullObject)
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return Point{}, fmt.Errorf("point: parse %q: empty point: %w", s, perrors.ErrNullObject)
	}

	fields := strings.Split(inner, ",")
	coords := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Point{}, fmt.Errorf("point: parse %q: coordinate %d: %w", s, i, err)
		}
		coords[i] = v
	}

	return New(coords...), nil
}
