// Package facet implements Facet[S], a d-vertex simplicial facet of the
// lower-envelope polytope the approximation driver maintains. A Facet knows
// its vertices, its outward normal, its Lower Distal Point (LDP) if one
// exists, and the ratio-distance bound that certifies how close the facet
// already is to the true Pareto set (spec.md §3, §4.E).
//
// Facets are immutable after construction: the normal and bound never
// change once computed. The driver (package problem) destroys a Facet and
// builds replacements rather than mutating one in place.
package facet
