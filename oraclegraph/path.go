package oraclegraph

import (
	"container/heap"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/pareto/point"
	"github.com/katalvlaran/pareto/problem"
	"github.com/katalvlaran/pareto/solution"
)

// Path is the sequence of vertex IDs from source to target, inclusive,
// the solution payload this oracle returns alongside each Point.
type Path []string

// ShortestPathOracle answers problem.Oracle[Path].Comb(w) by running a
// w-scalarized Dijkstra between a fixed source and target: the edge cost
// used for relaxation is w.weights, but the Point returned is the
// un-scalarized per-dimension sum of weights along the winning path.
// Repeated calls with the same weight vector are served from an in-memory
// cache (github.com/patrickmn/go-cache), since the driver's refinement
// loop frequently revisits nearby weight vectors.
type ShortestPathOracle struct {
	g             *Graph
	source        string
	target        string
	cache         *cache.Cache
	cacheDisabled bool
}

// Option configures a ShortestPathOracle.
type Option func(*ShortestPathOracle)

// WithoutCache disables the weight-vector memoization cache.
func WithoutCache() Option {
	return func(o *ShortestPathOracle) {
		o.cacheDisabled = true
	}
}

// New returns an oracle over g routing between source and target. Fails
// ErrVertexNotFound if either is absent from g, ErrSameSourceAndTarget if
// they're equal.
func New(g *Graph, source, target string, opts ...Option) (*ShortestPathOracle, error) {
	if !g.HasVertex(source) || !g.HasVertex(target) {
		return nil, ErrVertexNotFound
	}
	if source == target {
		return nil, ErrSameSourceAndTarget
	}

	o := &ShortestPathOracle{
		g:      g,
		source: source,
		target: target,
		cache:  cache.New(5*time.Minute, 10*time.Minute),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Comb implements problem.Oracle[Path]. Fails ErrWrongScalarizationDimension
// if len(w) != g.Dim(), ErrUnreachable if target is unreachable from source.
func (o *ShortestPathOracle) Comb(w []float64) (solution.PointAndSolution[Path], error) {
	if len(w) != o.g.dim {
		return solution.PointAndSolution[Path]{}, ErrWrongScalarizationDimension
	}

	key := cacheKey(w)
	if !o.cacheDisabled {
		if cached, ok := o.cache.Get(key); ok {
			return cached.(solution.PointAndSolution[Path]), nil
		}
	}

	ps, err := o.solve(w)
	if err != nil {
		return solution.PointAndSolution[Path]{}, err
	}

	if !o.cacheDisabled {
		o.cache.Set(key, ps, cache.DefaultExpiration)
	}

	return ps, nil
}

func (o *ShortestPathOracle) solve(w []float64) (solution.PointAndSolution[Path], error) {
	dist := map[string]float64{o.source: 0}
	vecCost := map[string][]float64{o.source: make([]float64, o.g.dim)}
	prev := map[string]string{}
	visited := map[string]bool{}

	pq := newNodeQueue()
	heap.Push(pq, &nodeItem{id: o.source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		if u == o.target {
			break
		}

		for _, e := range o.g.Neighbors(u) {
			cost := dot(w, e.weights)
			newDist := dist[u] + cost
			if d, ok := dist[e.to]; ok && newDist >= d {
				continue
			}

			dist[e.to] = newDist
			prev[e.to] = u
			newVec := make([]float64, o.g.dim)
			for i := range newVec {
				newVec[i] = vecCost[u][i] + e.weights[i]
			}
			vecCost[e.to] = newVec

			heap.Push(pq, &nodeItem{id: e.to, dist: newDist})
		}
	}

	if !visited[o.target] {
		return solution.PointAndSolution[Path]{}, ErrUnreachable
	}

	path := reconstructPath(prev, o.source, o.target)
	p := point.New(vecCost[o.target]...)

	return solution.New(p, path, w)
}

func reconstructPath(prev map[string]string, source, target string) Path {
	rev := []string{target}
	for v := target; v != source; {
		u := prev[v]
		rev = append(rev, u)
		v = u
	}

	path := make(Path, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// cacheKey renders w as a fixed-precision string so weight vectors that
// differ only in floating noise still share a cache entry.
func cacheKey(w []float64) string {
	parts := make([]string, len(w))
	for i, c := range w {
		if math.IsNaN(c) {
			c = 0
		}
		parts[i] = strconv.FormatFloat(c, 'f', 9, 64)
	}

	return strings.Join(parts, ",")
}

var _ problem.Oracle[Path] = (*ShortestPathOracle)(nil)
