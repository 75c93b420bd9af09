// Package problem implements the approximation driver: given a
// scalarization Oracle and a target dimension d, Driver.Solve builds an
// eps-covering approximation of the oracle's Pareto set by the facet
// refinement procedure of spec.md §4.F — seed along the d axes, build the
// initial simplicial facet, then repeatedly pop the facet with the worst
// certified bound, query the oracle at its mean vertex weight vector, and
// either finalize it as a boundary facet or replace it by d children
// substituting the new point for each vertex in turn.
package problem
