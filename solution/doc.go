// Package solution implements PointAndSolution[S], the triple (objective
// point, solution payload, weights used to obtain it) that both the oracle
// returns and the facet package stores as a vertex.
package solution
