// Package paretoset implements NonDominatedSet[T], an insertion-only
// container that stores only elements not dominated by any other element it
// holds. It is used both directly over point.Point and over
// solution.PointAndSolution[S] — the only requirement on T is that it can
// hand back the point.Point that keys it (the Keyed constraint below).
//
// Iteration order is unspecified (spec.md §5): callers that need a stable
// order sort the result of Items() themselves.
package paretoset
