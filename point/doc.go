// Package point implements Point, a d-dimensional real-valued coordinate
// vector (d >= 1, typically 2 or 3), together with the handful of relations
// the Chord algorithm needs over it: lexicographic order, domination,
// strict positivity, and ratio distance.
//
// Point carries no "null" state (spec.md §9's redesign note): callers that
// need an absent-value result use (Point, bool) or (Point, error).
package point
