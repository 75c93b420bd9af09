package hyperplane_test

import (
	"testing"

	"github.com/katalvlaran/pareto/hyperplane"
	"github.com/katalvlaran/pareto/point"
)

func BenchmarkFromPoints(b *testing.B) {
	pts := []point.Point{point.New(1, 0, 0), point.New(0, 1, 0), point.New(0, 0, 1)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hyperplane.FromPoints(pts)
	}
}

func BenchmarkIsDegenerate(b *testing.B) {
	pts := []point.Point{point.New(1, 0, 0), point.New(0, 1, 0), point.New(0, 0, 1)}
	h, _ := hyperplane.FromPoints(pts)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.IsDegenerate()
	}
}
