// Package config loads the settings that drive a Pareto-set approximation
// run from a YAML file and the process environment, and turns them into
// ready-to-use problem.Option values. It follows the layered
// defaults -> file -> environment override shape of the teacher pack's own
// config loader (see original_source and the MikeSquared-Agency-Dispatch
// example repo's internal/config package).
package config
