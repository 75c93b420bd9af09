// Package pareto approximates the Pareto-optimal set of a multi-objective
// optimization problem from nothing but a linear-scalarization oracle — a
// function that, given a weight vector w, returns the single feasible point
// minimizing (or maximizing) w·p.
//
// 🚀 What is pareto?
//
//	A small, dependency-light geometric core that brings together:
//		• Point / Hyperplane: immutable d-dimensional primitives (d in 1..3)
//		• NonDominatedSet: a self-pruning container of non-dominated points
//		• Facet: the polytope face the Chord algorithm refines
//		• Driver: the refinement loop itself — seed, triangulate, refine, stop
//
// ✨ Why choose pareto?
//
//   - Oracle-agnostic — your objective function never has to be known in
//     closed form, only queryable at a weight vector
//   - Tunable accuracy — refine to within any ratio-distance tolerance ε
//   - Pure Go core — no cgo; the ambient logging/metrics/config layers are
//     ordinary, swappable dependencies, not hard requirements
//
// Everything lives under one flat set of per-concern packages:
//
//	point/       — Point, the d-dimensional coordinate tuple
//	hyperplane/  — Hyperplane, through d affinely independent points
//	paretoset/   — NonDominatedSet, the pruning output container
//	solution/    — PointAndSolution, a Point paired with its origin payload
//	facet/       — Facet, a (d-1)-simplex face with its Lower Distal Point
//	problem/     — Driver, the oracle-driven refinement loop
//	perrors/     — the package's sentinel error taxonomy
//	linalg/      — small dense solvers the geometric core needs
//	plog/        — structured logging of a refinement run
//	metrics/     — Prometheus instrumentation of a refinement run
//	config/      — YAML + environment configuration for a refinement run
//	oraclegraph/ — a weighted-graph shortest-path Oracle, for demonstration
//	cmd/paretoexplore/ — a CLI that runs oraclegraph against a config file
//
// Quick usage sketch:
//
//	dr := problem.New[MySolution](myOracle)
//	result, err := dr.Solve(3, 0.01) // 3 objectives, 1% ratio-distance tolerance
//
// See the example tests in each package for complete, runnable walkthroughs.
package pareto
