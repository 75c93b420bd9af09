// Package linalg provides the small dense-matrix kernels the geometric core
// needs: norms, dot products, determinants up to 3x3, and a solver for
// small d*d linear systems, with both a hand-rolled and a gonum-backed path.
package linalg
