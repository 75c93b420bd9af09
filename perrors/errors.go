// Package perrors: sentinel error set for the pareto module (unified, consistent).
// Every geometric primitive and the approximation driver return one of these
// sentinels (or a value wrapped with fmt.Errorf("%s: %w", op, sentinel)) so
// that callers can always match with errors.Is, never on message text.
package perrors

import "errors"

var (
	// ErrDifferentDimensions indicates two Points, Hyperplanes, or weight
	// vectors of different dimension were compared or combined.
	ErrDifferentDimensions = errors.New("pareto: different dimensions")

	// ErrNonExistentCoordinate indicates Point.Coord(i) was called with i >= dim().
	ErrNonExistentCoordinate = errors.New("pareto: coordinate does not exist")

	// ErrNonExistentCoefficient indicates Hyperplane.Coefficient(i) was called
	// with i out of range.
	ErrNonExistentCoefficient = errors.New("pareto: coefficient does not exist")

	// ErrNullObject indicates a required value was the zero/absent value where
	// a concrete Point, Hyperplane, or PointAndSolution was required.
	ErrNullObject = errors.New("pareto: null object")

	// ErrSamePoints indicates two Points that were required to be distinct
	// (e.g. when building a line through them) were equal.
	ErrSamePoints = errors.New("pareto: same points")

	// ErrNot2DPoints indicates a Point of dimension != 2 was passed where a
	// 2D point was required.
	ErrNot2DPoints = errors.New("pareto: points are not 2-dimensional")

	// ErrNot2DHyperplanes indicates a Hyperplane of dimension != 2 was passed
	// where intersection (2D only) was required.
	ErrNot2DHyperplanes = errors.New("pareto: hyperplanes are not 2-dimensional")

	// ErrParallelHyperplanes indicates Hyperplane.Intersection was called on
	// two parallel hyperplanes (coincident ones included).
	ErrParallelHyperplanes = errors.New("pareto: hyperplanes are parallel")

	// ErrBoundaryFacet indicates an operation that requires a non-boundary
	// facet (one with a well-defined, strictly positive LDP) was attempted
	// on a boundary facet. No function in this module returns it: facets
	// classify themselves via Facet.IsBoundaryFacet instead.
	ErrBoundaryFacet = errors.New("pareto: facet is a boundary facet")

	// ErrInfiniteRatioDistance indicates a ratio-distance computation hit
	// n.p == 0 != offset, i.e. the distance is unbounded. Facet construction
	// catches this and marks the facet as a boundary facet.
	ErrInfiniteRatioDistance = errors.New("pareto: infinite ratio distance")

	// ErrNegativeApproximationRatio indicates a negative epsilon was supplied
	// to a dominates/covers test (the driver reports ErrInvalidEpsilon).
	ErrNegativeApproximationRatio = errors.New("pareto: negative approximation ratio")

	// ErrNotPositivePoint indicates a Point with a zero or negative
	// coordinate was used where Point.Dominates requires both operands to
	// be strictly positive.
	ErrNotPositivePoint = errors.New("pareto: point is not positive")

	// ErrNotStrictlyPositivePoint indicates a Point with a zero or negative
	// coordinate was used where ratio distance requires strict positivity.
	ErrNotStrictlyPositivePoint = errors.New("pareto: point is not strictly positive")

	// ErrOracleFailure indicates the scalarization oracle failed to return a
	// feasible point for the requested weight vector. Always fatal.
	ErrOracleFailure = errors.New("pareto: oracle failure")

	// ErrInvalidDimension indicates a requested space dimension is outside
	// the supported range (d must be 1, 2, or 3 depending on the operation).
	ErrInvalidDimension = errors.New("pareto: invalid dimension")

	// ErrInvalidEpsilon indicates a negative tolerance was supplied to the
	// driver's Solve entry point.
	ErrInvalidEpsilon = errors.New("pareto: invalid epsilon")

	// ErrSingularSystem indicates a d*d linear solve had no unique solution
	// (singular or near-singular coefficient matrix).
	ErrSingularSystem = errors.New("pareto: singular linear system")

	// ErrWrongVertexCount indicates a Facet was constructed with no
	// vertices. A vertex count that differs from the vertices' dimension is
	// reported as ErrDifferentDimensions.
	ErrWrongVertexCount = errors.New("pareto: facet requires exactly d vertices")
)
