package facet

import (
	"github.com/katalvlaran/pareto/hyperplane"
	"github.com/katalvlaran/pareto/linalg"
	"github.com/katalvlaran/pareto/perrors"
	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/solution"
)

// Sentinel bound values used when isBoundary is true, per spec.md §3:
// the local approximation error bound is only meaningful when the facet is
// not a boundary facet; otherwise it carries one of these two markers.
const (
	// BoundLDPNotPositive marks a facet whose LDP exists but is not
	// strictly positive.
	BoundLDPNotPositive = -1.0

	// BoundNoUniqueLDP marks a facet whose lower-bound hyperplanes do not
	// intersect in a unique point (singular system), a facet with an
	// all-zero normal, and a facet whose strictly positive LDP is at
	// infinite ratio distance from its supporting hyperplane.
	BoundNoUniqueLDP = -2.0
)

// Solver solves the d*d system W.x = c for x, used to locate the facet's
// Lower Distal Point. linalg.Solve (the default) and linalg.SolveGonum
// both satisfy this signature; see problem.WithGonumSolver.
type Solver func(w [][]float64, c []float64) ([]float64, error)

// Facet is a d-vertex simplicial facet with an outward normal, an optional
// Lower Distal Point, and a certified approximation-error bound.
type Facet[S any] struct {
	vertices   []solution.PointAndSolution[S]
	normal     []float64
	ldp        point.Point
	hasLDP     bool
	isBoundary bool
	bound      float64
}

// NewComputeNormal builds a Facet from exactly d vertices, computing the
// outward normal via the generalized cross product over the vertices'
// points (hyperplane.FromPoints). When preferNonNegativeNormal is true and
// every computed normal component is <= 0, every sign is flipped
// (spec.md §4.E). Uses the default hand-rolled linalg.Solve for the LDP.
func NewComputeNormal[S any](vertices []solution.PointAndSolution[S], preferNonNegativeNormal bool) (Facet[S], error) {
	return NewComputeNormalWithSolver(vertices, preferNonNegativeNormal, linalg.Solve)
}

// NewComputeNormalWithSolver is NewComputeNormal with an explicit Solver,
// letting the driver route the LDP computation through linalg.SolveGonum
// (problem.WithGonumSolver) instead of the default.
func NewComputeNormalWithSolver[S any](vertices []solution.PointAndSolution[S], preferNonNegativeNormal bool, solve Solver) (Facet[S], error) {
	if err := validateVertices(vertices); err != nil {
		return Facet[S]{}, err
	}

	pts := make([]point.Point, len(vertices))
	for i, v := range vertices {
		pts[i] = v.Point
	}

	h, err := hyperplane.FromPoints(pts)
	if err != nil {
		return Facet[S]{}, err
	}

	normal := h.Normal()
	if preferNonNegativeNormal && hasAllNonPositive(normal) {
		reverseSign(normal)
	}

	if h.IsDegenerate() {
		// spec.md §4.B: an all-zero normal (affinely dependent vertices,
		// e.g. collinear points in 3D) disables the LDP computation
		// entirely; the facet is unconditionally a boundary facet.
		vcopy := make([]solution.PointAndSolution[S], len(vertices))
		copy(vcopy, vertices)

		return Facet[S]{vertices: vcopy, normal: normal, isBoundary: true, bound: BoundNoUniqueLDP}, nil
	}

	return build(vertices, normal, solve)
}

// NewWithNormal builds a Facet from exactly d vertices and an explicit
// outward normal the caller already knows (the driver uses this for the
// initial facet and for each child facet it builds by substituting a new
// vertex into the refined facet, spec.md §4.E). Uses
// the default hand-rolled linalg.Solve for the LDP.
func NewWithNormal[S any](vertices []solution.PointAndSolution[S], normal []float64) (Facet[S], error) {
	return NewWithNormalWithSolver(vertices, normal, linalg.Solve)
}

// NewWithNormalWithSolver is NewWithNormal with an explicit Solver.
func NewWithNormalWithSolver[S any](vertices []solution.PointAndSolution[S], normal []float64, solve Solver) (Facet[S], error) {
	if err := validateVertices(vertices); err != nil {
		return Facet[S]{}, err
	}
	if len(normal) != len(vertices) {
		return Facet[S]{}, perrors.ErrDifferentDimensions
	}

	return build(vertices, normal, solve)
}

func validateVertices[S any](vertices []solution.PointAndSolution[S]) error {
	d := len(vertices)
	if d == 0 {
		return perrors.ErrWrongVertexCount
	}
	for _, v := range vertices {
		if v.Point.Dim() != d || len(v.Weights) != d {
			return perrors.ErrDifferentDimensions
		}
	}

	return nil
}

func build[S any](vertices []solution.PointAndSolution[S], normal []float64, solve Solver) (Facet[S], error) {
	vcopy := make([]solution.PointAndSolution[S], len(vertices))
	copy(vcopy, vertices)
	ncopy := make([]float64, len(normal))
	copy(ncopy, normal)

	f := Facet[S]{vertices: vcopy, normal: ncopy}
	f.computeLowerDistalPointAndBound(solve)

	return f, nil
}

// computeLowerDistalPointAndBound implements the algorithm in spec.md
// §4.E: build W (rows = each vertex's weight vector) and c (c_i = w_i.v_i),
// solve W.x = c, and classify the facet as boundary or not depending on
// whether a unique, strictly positive solution exists and, if so, how far
// it is (in ratio distance) from the facet's own supporting hyperplane.
func (f *Facet[S]) computeLowerDistalPointAndBound(solve Solver) {
	d := len(f.vertices)
	w := make([][]float64, d)
	c := make([]float64, d)
	for i, v := range f.vertices {
		w[i] = v.Weights
		c[i] = v.Point.Dot(v.Weights)
	}

	x, err := solve(w, c)
	if err != nil {
		f.isBoundary = true
		f.bound = BoundNoUniqueLDP

		return
	}

	f.ldp = point.New(x...)
	f.hasLDP = true

	if !f.ldp.IsStrictlyPositive() {
		f.isBoundary = true
		f.bound = BoundLDPNotPositive

		return
	}

	h := f.SupportingHyperplane()
	rd, err := h.RatioDistance(f.ldp)
	if err != nil {
		// n.LDP == 0 != offset: no finite certificate (spec.md §4.E, S5).
		f.isBoundary = true
		f.bound = BoundNoUniqueLDP

		return
	}

	f.isBoundary = false
	f.bound = rd
}

// SpaceDimension returns d, the facet's vertex count and ambient dimension.
func (f *Facet[S]) SpaceDimension() int {
	return len(f.vertices)
}

// Vertices returns a defensive copy of the facet's vertices, in the
// insertion order they were supplied in.
func (f *Facet[S]) Vertices() []solution.PointAndSolution[S] {
	out := make([]solution.PointAndSolution[S], len(f.vertices))
	copy(out, f.vertices)

	return out
}

// Normal returns a defensive copy of the facet's outward normal.
func (f *Facet[S]) Normal() []float64 {
	out := make([]float64, len(f.normal))
	copy(out, f.normal)

	return out
}

// Offset returns n.v for any vertex v of the facet (they all agree when
// the facet is non-degenerate; for a degenerate/all-zero normal this is
// simply 0.v = 0).
func (f *Facet[S]) Offset() float64 {
	if len(f.vertices) == 0 {
		return 0
	}

	return f.vertices[0].Point.Dot(f.normal)
}

// SupportingHyperplane returns the hyperplane n.x = Offset() that the
// facet lies on.
func (f *Facet[S]) SupportingHyperplane() hyperplane.Hyperplane {
	return hyperplane.FromCoefficients(f.normal, f.Offset())
}

// LDP returns the facet's Lower Distal Point and whether one was found at
// all (a unique solution to the lower-bound-hyperplane system existed).
// A false return means the facet is necessarily a boundary facet; a true
// return does not (the LDP may still not be strictly positive).
func (f *Facet[S]) LDP() (point.Point, bool) {
	return f.ldp, f.hasLDP
}

// IsBoundaryFacet reports whether the facet's LDP does not exist, is not
// strictly positive, or lies at infinite ratio distance from the
// supporting hyperplane — such a facet is excluded from refinement
// (spec.md §3, §4.E).
func (f *Facet[S]) IsBoundaryFacet() bool {
	return f.isBoundary
}

// Bound returns the facet's certified local-approximation-error upper
// bound. Only meaningful when IsBoundaryFacet() is false; otherwise it is
// one of BoundLDPNotPositive or BoundNoUniqueLDP.
func (f *Facet[S]) Bound() float64 {
	return f.bound
}

// RatioDistanceFromHyperplane returns the ratio distance from the
// strictly positive point p to the facet's supporting hyperplane,
// computed directly as in hyperplane.RatioDistance (spec.md §4.E).
func (f *Facet[S]) RatioDistanceFromHyperplane(p point.Point) (float64, error) {
	return f.SupportingHyperplane().RatioDistance(p)
}

// Visible reports whether q lies on the interior side of the facet's
// supporting hyperplane, i.e. n.q < offset (spec.md §4.F step 7): such a
// facet's interior is penetrated by q. The driver (package problem) does
// not call Visible; it retriangulates only the facet it refines.
func (f *Facet[S]) Visible(q point.Point) bool {
	return q.Dot(f.normal) < f.Offset()
}

// Normalize returns the facet's normal divided by its 2-norm.
func (f *Facet[S]) Normalize() []float64 {
	n := f.Normal()
	norm := linalg.Norm2(n)
	if norm == 0 {
		return n
	}
	for i := range n {
		n[i] /= norm
	}

	return n
}

// HasAllNonNegative reports whether every component of the facet's normal
// is >= 0.
func (f *Facet[S]) HasAllNonNegative() bool {
	for _, c := range f.normal {
		if c < 0 {
			return false
		}
	}

	return true
}

// HasAllNonPositive reports whether every component of the facet's normal
// is <= 0.
func (f *Facet[S]) HasAllNonPositive() bool {
	return hasAllNonPositive(f.normal)
}

// MeanVertexWeights returns the elementwise mean of the facet's vertices'
// weight vectors — used by the driver when the raw normal is unsuitable
// as the next oracle weight vector (spec.md §4.E, §4.F phase 2).
func (f *Facet[S]) MeanVertexWeights() []float64 {
	d := len(f.vertices)
	mean := make([]float64, d)
	for _, v := range f.vertices {
		for i, w := range v.Weights {
			mean[i] += w
		}
	}
	for i := range mean {
		mean[i] /= float64(d)
	}

	return mean
}

func hasAllNonPositive(v []float64) bool {
	for _, c := range v {
		if c > 0 {
			return false
		}
	}

	return true
}

func reverseSign(v []float64) {
	for i := range v {
		v[i] = -v[i]
	}
}
