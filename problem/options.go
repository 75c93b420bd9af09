package problem

import (
	"github.com/katalvlaran/pareto/facet"
	"github.com/katalvlaran/pareto/linalg"
	"github.com/katalvlaran/pareto/metrics"
	"github.com/katalvlaran/pareto/plog"
)

// config holds a Driver's assembled options. Unexported: callers only ever
// see the functional Option constructors below, matching the
// lvlath/matrix.Options functional-options shape.
type config struct {
	logger  plog.Logger
	metrics *metrics.Recorder
	solve   facet.Solver
}

func defaultConfig() config {
	return config{
		logger: plog.Nop(),
		solve:  linalg.Solve,
	}
}

// Option configures a Driver at construction time.
type Option func(*config)

// WithLogger attaches a structured logger (see package plog) the Driver
// uses to narrate seeding, refinement, and finalization decisions.
func WithLogger(l plog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics attaches a prometheus recorder (see package metrics) the
// Driver updates as it issues oracle calls and refines facets.
func WithMetrics(r *metrics.Recorder) Option {
	return func(c *config) {
		c.metrics = r
	}
}

// WithGonumSolver routes every facet's Lower Distal Point computation
// through linalg.SolveGonum instead of the default hand-rolled linalg.Solve.
func WithGonumSolver() Option {
	return func(c *config) {
		c.solve = linalg.SolveGonum
	}
}
