// Package oraclegraph implements a multi-objective shortest-path Oracle
// (see package problem) over a small undirected weighted graph: each edge
// carries a d-dimensional non-negative weight vector instead of a single
// scalar, and Comb(w) finds the path from a fixed source to a fixed target
// minimizing the w-scalarized sum of those vectors, via a Dijkstra variant
// grounded on the teacher's dijkstra package. This is the module's stand-in
// for the original source's tripleobjective_shortest_path example, where
// each edge carried "black", "red", and "green" weights.
package oraclegraph
