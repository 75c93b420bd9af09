// Package plog provides the structured logger the approximation driver
// uses to narrate its refinement loop (oracle calls, facet acceptance,
// boundary classification). The core geometric packages (point,
// hyperplane, paretoset, facet) never log; only the driver (package
// problem) takes a logger, and it defaults to a no-op one so the module
// stays side-effect-free unless a caller opts in — the same shape as the
// sgostarter-style l.Wrapper default-to-nop convention this module's
// logging dependency (zerolog) was chosen to slot into.
package plog
