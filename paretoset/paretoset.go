package paretoset

import "github.com/katalvlaran/pareto/point"

// Keyed is implemented by any element a NonDominatedSet can store: it must
// be able to produce the point.Point that domination is computed over.
// point.Point and solution.PointAndSolution[S] both satisfy it.
type Keyed interface {
	AsPoint() point.Point
}

// NonDominatedSet is an insertion-only set of T: for every pair x, y it
// holds, neither 0-dominates the other (spec.md §3, invariant 1 in §8).
// The zero value is an empty, usable set.
type NonDominatedSet[T Keyed] struct {
	items []T
}

// New returns an empty NonDominatedSet.
func New[T Keyed]() *NonDominatedSet[T] {
	return &NonDominatedSet[T]{}
}

// Insert attempts to add x. If any stored element already 0-dominates x,
// Insert rejects x and leaves the set unchanged, returning false.
// Otherwise it removes every stored element x dominates, adds x, and
// returns true. Dominance here is always eps=0 ("0-domination", spec.md
// §3); a non-nil error only ever comes from a malformed x (wrong
// dimension, non-positive coordinates) — see point.Point.Dominates.
func (s *NonDominatedSet[T]) Insert(x T) (bool, error) {
	xp := x.AsPoint()

	kept := s.items[:0:0]
	for _, y := range s.items {
		yp := y.AsPoint()

		dominatedByY, err := yp.Dominates(xp, 0)
		if err != nil {
			return false, err
		}
		if dominatedByY {
			return false, nil
		}

		xDominatesY, err := xp.Dominates(yp, 0)
		if err != nil {
			return false, err
		}
		if !xDominatesY {
			kept = append(kept, y)
		}
	}

	s.items = append(kept, x)

	return true, nil
}

// IsCovered reports whether some already-stored element p eps-covers x
// (p.Dominates(x, eps)): the driver (package problem) uses this to decide
// whether a freshly oracle-returned candidate is worth inserting at all,
// before Insert's own fixed 0-domination check runs (spec.md §4.F phase 3
// step 5, scenario S2).
func (s *NonDominatedSet[T]) IsCovered(x T, eps float64) (bool, error) {
	xp := x.AsPoint()
	for _, y := range s.items {
		covered, err := y.AsPoint().Dominates(xp, eps)
		if err != nil {
			return false, err
		}
		if covered {
			return true, nil
		}
	}

	return false, nil
}

// InsertAll inserts every element of xs in order, returning true iff at
// least one insertion succeeded (spec.md §4.C).
func (s *NonDominatedSet[T]) InsertAll(xs []T) (bool, error) {
	any := false
	for _, x := range xs {
		ok, err := s.Insert(x)
		if err != nil {
			return any, err
		}
		any = any || ok
	}

	return any, nil
}

// Len returns the number of elements currently stored.
func (s *NonDominatedSet[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the set holds no elements.
func (s *NonDominatedSet[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Contains reports whether an element with an AsPoint() equal to x's is
// already stored.
func (s *NonDominatedSet[T]) Contains(x T) bool {
	xp := x.AsPoint()
	for _, y := range s.items {
		if y.AsPoint().Equal(xp) {
			return true
		}
	}

	return false
}

// Items returns a defensive copy of the stored elements, in unspecified
// (insertion-derived) order.
func (s *NonDominatedSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}
