// Package hyperplane implements Hyperplane, the linear equation a.x = b in
// d dimensions (d in 1..3 for FromPoints, exactly 2 for FromPoints2D;
// general d for the coefficient constructor). It provides
// the ratio-distance and parallel relations the facet package needs to
// classify a Lower Distal Point, and the 2D-only pairwise intersection
// spec.md §4.B calls for.
package hyperplane
