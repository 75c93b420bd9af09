package problem

import "github.com/katalvlaran/pareto/solution"

// Oracle is the single thing a caller must supply: a linear-scalarization
// solver for one multi-objective problem. Comb(w) must return a point
// minimizing (or maximizing, per the problem's own convention) the weighted
// sum sum_i w_i * f_i(x) over the feasible region, paired with whatever
// solution payload S produced it.
//
// This is the module's one deliberate departure from the original source's
// BaseProblem inheritance hierarchy (spec.md §9): rather than subclassing an
// abstract base, a caller supplies an Oracle value, and Driver composes
// with it. Comb must be safe to call repeatedly with different w; Driver
// never calls it concurrently.
type Oracle[S any] interface {
	Comb(w []float64) (solution.PointAndSolution[S], error)
}

// OracleFunc adapts a plain func to an Oracle, the same func-as-interface
// convenience the teacher's graph-visitor callbacks use.
type OracleFunc[S any] func(w []float64) (solution.PointAndSolution[S], error)

// Comb implements Oracle.
func (f OracleFunc[S]) Comb(w []float64) (solution.PointAndSolution[S], error) {
	return f(w)
}
