package solution

import (
	"github.com/katalvlaran/pareto/perrors"
	"github.com/katalvlaran/pareto/point"
)

// PointAndSolution pairs an objective-space Point with the solution payload
// S that produced it and the weight vector that was used to obtain it from
// the oracle. S travels by value; the driver never calls methods on it, it
// only copies it when a vertex is retained (spec.md §9).
type PointAndSolution[S any] struct {
	Point    point.Point
	Solution S
	Weights  []float64
}

// New builds a PointAndSolution, validating that Point and Weights agree in
// dimension (spec.md §3's invariant for this type).
func New[S any](p point.Point, s S, weights []float64) (PointAndSolution[S], error) {
	if p.Dim() != len(weights) {
		return PointAndSolution[S]{}, perrors.ErrDifferentDimensions
	}
	w := make([]float64, len(weights))
	copy(w, weights)

	return PointAndSolution[S]{Point: p, Solution: s, Weights: w}, nil
}

// AsPoint returns the wrapped Point, satisfying the paretoset.Keyed
// constraint so a NonDominatedSet[PointAndSolution[S]] can compare elements
// without knowing anything about S.
func (ps PointAndSolution[S]) AsPoint() point.Point {
	return ps.Point
}

// Less orders two PointAndSolutions lexicographically by their Points.
// Fails ErrDifferentDimensions when the underlying Points differ in
// dimension.
func (ps PointAndSolution[S]) Less(other PointAndSolution[S]) (bool, error) {
	return ps.Point.Less(other.Point)
}
