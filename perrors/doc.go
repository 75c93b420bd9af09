// Package perrors holds the sentinel errors shared by the geometric core
// packages (point, hyperplane, paretoset, solution, facet, problem), matched
// via errors.Is at call sites.
package perrors
