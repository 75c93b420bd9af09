package oraclegraph

import "errors"

// Sentinel errors returned by package oraclegraph, mirroring the
// teacher's dijkstra package's own per-package error set.
var (
	// ErrEmptyVertexID indicates AddVertex or AddEdge was called with an
	// empty vertex ID.
	ErrEmptyVertexID = errors.New("oraclegraph: vertex ID is empty")

	// ErrVertexNotFound indicates a referenced vertex ID is not in the graph.
	ErrVertexNotFound = errors.New("oraclegraph: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called with an ID already
	// present in the graph.
	ErrDuplicateVertex = errors.New("oraclegraph: vertex already exists")

	// ErrWrongWeightDimension indicates an edge weight vector's length does
	// not equal the graph's configured dimension.
	ErrWrongWeightDimension = errors.New("oraclegraph: edge weight vector has wrong dimension")

	// ErrNegativeWeight indicates an edge weight vector had a negative
	// component.
	ErrNegativeWeight = errors.New("oraclegraph: edge weight is negative")

	// ErrSameSourceAndTarget indicates New was called with source == target.
	ErrSameSourceAndTarget = errors.New("oraclegraph: source and target vertex are the same")

	// ErrUnreachable indicates no path exists from source to target.
	ErrUnreachable = errors.New("oraclegraph: target is unreachable from source")

	// ErrWrongScalarizationDimension indicates Comb was called with a weight
	// vector whose length does not match the graph's dimension.
	ErrWrongScalarizationDimension = errors.New("oraclegraph: scalarization weight vector has wrong dimension")
)
