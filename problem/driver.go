package problem

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pareto/facet"
	"github.com/katalvlaran/pareto/hyperplane"
	"github.com/katalvlaran/pareto/paretoset"
	"github.com/katalvlaran/pareto/perrors"
	"github.com/katalvlaran/pareto/plog"
	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/solution"
)

// Driver runs the approximation procedure of spec.md §4.F against one
// Oracle. The zero value is not usable; construct one with New.
type Driver[S any] struct {
	oracle Oracle[S]
	cfg    config
}

// New returns a Driver that queries oracle. Options tune logging, metrics,
// and the facet LDP solver.
func New[S any](oracle Oracle[S], opts ...Option) *Driver[S] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Driver[S]{oracle: oracle, cfg: cfg}
}

// Solve approximates the oracle's Pareto set in d dimensions to within
// ratio-distance tolerance eps, per spec.md §4.F's four phases. Fails
// ErrInvalidDimension when d < 1, ErrInvalidEpsilon when eps < 0, and
// ErrOracleFailure when the oracle itself errors.
func (dr *Driver[S]) Solve(d int, eps float64) (*paretoset.NonDominatedSet[solution.PointAndSolution[S]], error) {
	if d < 1 {
		return nil, perrors.ErrInvalidDimension
	}
	if eps < 0 {
		return nil, perrors.ErrInvalidEpsilon
	}

	runID := uuid.New()
	log := plog.WithRun(dr.cfg.logger, runID).With().Int("dim", d).Float64("eps", eps).Logger()
	log.Info().Msg("starting Pareto-set approximation run")

	result := paretoset.New[solution.PointAndSolution[S]]()

	seeds, err := dr.seed(d, result, log)
	if err != nil {
		return nil, err
	}
	if len(seeds) < d {
		log.Info().Int("seeds", len(seeds)).Msg("fewer than d distinct seeds, stopping")

		return result, nil
	}

	initial, ok, err := dr.buildInitialFacet(seeds, log)
	if err != nil {
		return nil, err
	}
	if !ok {
		return result, nil
	}

	if err := dr.refine(initial, eps, result, log); err != nil {
		return nil, err
	}

	if dr.cfg.metrics != nil {
		dr.cfg.metrics.SetOutputSetSize(result.Len())
	}

	return result, nil
}

// seed implements spec.md §4.F phase 1: one oracle call per standard basis
// vector, deduplicated by Point equality (first occurrence wins).
func (dr *Driver[S]) seed(d int, result *paretoset.NonDominatedSet[solution.PointAndSolution[S]], log plog.Logger) ([]solution.PointAndSolution[S], error) {
	distinct := make([]solution.PointAndSolution[S], 0, d)
	for i := 0; i < d; i++ {
		w := make([]float64, d)
		w[i] = 1

		ps, err := dr.callOracle(w)
		if err != nil {
			return nil, err
		}

		duplicate := false
		for _, existing := range distinct {
			if existing.Point.Equal(ps.Point) {
				duplicate = true

				break
			}
		}
		if duplicate {
			log.Info().Int("axis", i).Msg("seed duplicates an earlier seed")

			continue
		}

		distinct = append(distinct, ps)
		if _, err := result.Insert(ps); err != nil {
			return nil, err
		}
	}

	return distinct, nil
}

// buildInitialFacet implements spec.md §4.F phase 2's first step: check the
// seeds for affine degeneracy, and if they span a full (d-1)-simplex, build
// the single facet through all of them.
func (dr *Driver[S]) buildInitialFacet(seeds []solution.PointAndSolution[S], log plog.Logger) (facet.Facet[S], bool, error) {
	pts := make([]point.Point, len(seeds))
	for i, s := range seeds {
		pts[i] = s.Point
	}

	h, err := hyperplane.FromPoints(pts)
	if err != nil {
		return facet.Facet[S]{}, false, err
	}
	if h.IsDegenerate() {
		log.Info().Msg("seeds are affinely dependent, returning seeds unchanged")

		return facet.Facet[S]{}, false, nil
	}

	initial, err := facet.NewWithNormalWithSolver(seeds, meanWeights(seeds), dr.cfg.solve)
	if err != nil {
		return facet.Facet[S]{}, false, err
	}

	if initial.IsBoundaryFacet() {
		log.Info().Msg("initial facet is already a boundary facet")

		return facet.Facet[S]{}, false, nil
	}

	return initial, true, nil
}

// refine implements spec.md §4.F phases 3-4: the priority-queue-driven
// facet substitution loop.
func (dr *Driver[S]) refine(initial facet.Facet[S], eps float64, result *paretoset.NonDominatedSet[solution.PointAndSolution[S]], log plog.Logger) error {
	queue := newFacetQueue[S]()
	seq := 0
	queue.push(initial, seq)
	seq++

	for queue.Len() > 0 {
		bound, _ := queue.peekBound()
		if bound <= eps {
			break
		}

		item := queue.pop()
		f := item.f

		if dr.cfg.metrics != nil {
			dr.cfg.metrics.SetQueueDepth(queue.Len())
		}

		w := f.MeanVertexWeights()
		if hasNonPositive(w) {
			dr.finalizeBoundary(log, "facet mean weight is non-positive")

			continue
		}

		ps, err := dr.callOracle(w)
		if err != nil {
			return err
		}

		if matchesVertex(f, ps.Point) {
			dr.finalizeBoundary(log, "oracle returned an existing vertex")

			continue
		}

		covered, err := result.IsCovered(ps, eps)
		if err != nil {
			return err
		}
		if covered {
			dr.finalizeBoundary(log, "oracle point is already eps-covered")

			continue
		}

		inserted, err := result.Insert(ps)
		if err != nil {
			return err
		}
		if !inserted {
			dr.finalizeBoundary(log, "oracle point is dominated")

			continue
		}

		if dr.cfg.metrics != nil {
			dr.cfg.metrics.IncFacetsRefined()
		}

		children, err := dr.retriangulate(f, ps)
		if err != nil {
			return err
		}
		for _, child := range children {
			if child.IsBoundaryFacet() {
				dr.finalizeBoundary(log, "child facet is a boundary facet")

				continue
			}
			queue.push(child, seq)
			seq++
		}
	}

	return nil
}

// retriangulate implements spec.md §4.F step 6: build d children, each
// substituting q for exactly one of f's vertices.
func (dr *Driver[S]) retriangulate(f facet.Facet[S], q solution.PointAndSolution[S]) ([]facet.Facet[S], error) {
	vertices := f.Vertices()
	children := make([]facet.Facet[S], 0, len(vertices))

	for i := range vertices {
		newVertices := make([]solution.PointAndSolution[S], len(vertices))
		copy(newVertices, vertices)
		newVertices[i] = q

		tmp, err := facet.NewWithNormalWithSolver(newVertices, meanWeights(newVertices), dr.cfg.solve)
		if err != nil {
			return nil, err
		}

		children = append(children, tmp)
	}

	return children, nil
}

func (dr *Driver[S]) finalizeBoundary(log plog.Logger, reason string) {
	log.Debug().Str("reason", reason).Msg("finalizing facet without further refinement")
	if dr.cfg.metrics != nil {
		dr.cfg.metrics.IncFacetsBoundary()
	}
}

func (dr *Driver[S]) callOracle(w []float64) (solution.PointAndSolution[S], error) {
	start := time.Now()
	ps, err := dr.oracle.Comb(w)
	if dr.cfg.metrics != nil {
		dr.cfg.metrics.ObserveOracleCall(time.Since(start), err)
	}
	if err != nil {
		return solution.PointAndSolution[S]{}, fmtOracleErr(err)
	}

	return ps, nil
}

func matchesVertex[S any](f facet.Facet[S], p point.Point) bool {
	for _, v := range f.Vertices() {
		if v.Point.Equal(p) {
			return true
		}
	}

	return false
}

func hasNonPositive(w []float64) bool {
	for _, c := range w {
		if c <= 0 {
			return true
		}
	}

	return false
}

// fmtOracleErr wraps any error the oracle returns in ErrOracleFailure, so
// callers can always match with errors.Is(err, perrors.ErrOracleFailure)
// regardless of what the concrete Oracle implementation returned.
func fmtOracleErr(err error) error {
	return fmt.Errorf("problem: oracle.Comb: %w: %w", perrors.ErrOracleFailure, err)
}

// meanWeights computes newVertices' elementwise weight-vector mean before a
// child Facet exists to ask — facet.Facet.MeanVertexWeights does the same
// thing once a Facet has been constructed.
func meanWeights[S any](vertices []solution.PointAndSolution[S]) []float64 {
	d := len(vertices)
	mean := make([]float64, d)
	for _, v := range vertices {
		for i, w := range v.Weights {
			mean[i] += w
		}
	}
	for i := range mean {
		mean[i] /= float64(d)
	}

	return mean
}
