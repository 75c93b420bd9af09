// Package metrics exposes prometheus instrumentation for package problem's
// approximation driver: how many oracle calls it issued, how long they
// took, how many facets it refined versus finalized as boundary, and how
// deep its refinement queue grew. A Recorder is optional (problem.Option
// problem.WithMetrics); the driver runs unmetered without one.
package metrics
