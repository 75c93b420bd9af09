package config

import "errors"

// Sentinel errors returned by package config.
var (
	// ErrInvalidDimension indicates the configured problem dimension is < 1.
	ErrInvalidDimension = errors.New("config: dimension must be >= 1")

	// ErrInvalidEpsilon indicates the configured tolerance is negative.
	ErrInvalidEpsilon = errors.New("config: epsilon must be >= 0")

	// ErrMissingGraphPath indicates a graph-backed oracle was requested
	// without a graph file path configured.
	ErrMissingGraphPath = errors.New("config: graph.path is required")
)
