package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pareto/metrics"
	"github.com/katalvlaran/pareto/oraclegraph"
	"github.com/katalvlaran/pareto/plog"
	"github.com/katalvlaran/pareto/problem"
)

// Config is the full set of settings for a Pareto-set approximation run:
// the problem's dimension and tolerance, an optional graph definition for
// package oraclegraph, and the ambient logging/metrics stack. The zero
// value is not meaningful; build one with Load.
type Config struct {
	Problem ProblemConfig `yaml:"problem"`
	Graph   GraphConfig   `yaml:"graph"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ProblemConfig tunes the problem.Driver.
type ProblemConfig struct {
	Dimension      int     `yaml:"dimension"`
	Epsilon        float64 `yaml:"epsilon"`
	UseGonumSolver bool    `yaml:"use_gonum_solver"`
}

// GraphConfig describes a weighted graph for an oraclegraph.ShortestPathOracle.
// Edges is empty when the run supplies its own Oracle instead of a graph.
type GraphConfig struct {
	Dimension int          `yaml:"dimension"`
	Source    string       `yaml:"source"`
	Target    string       `yaml:"target"`
	Edges     []EdgeConfig `yaml:"edges"`
}

// EdgeConfig is one undirected weighted edge of a GraphConfig.
type EdgeConfig struct {
	From    string    `yaml:"from"`
	To      string    `yaml:"to"`
	Weights []float64 `yaml:"weights"`
}

// LoggingConfig selects the level and rendering of the plog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// MetricsConfig selects whether a prometheus Recorder is attached to the
// Driver.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

func defaultConfig() Config {
	return Config{
		Problem: ProblemConfig{
			Dimension: 2,
			Epsilon:   0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path (a YAML document) layered over hard-coded defaults, then
// applies PARETO_*-prefixed environment variable overrides, matching the
// defaults -> file -> environment precedence of the teacher pack's own
// config loaders. path == "" skips the file layer. Fails ErrInvalidDimension
// or ErrInvalidEpsilon if the resulting Problem settings are out of range.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports whether the problem settings are within range.
func (c *Config) Validate() error {
	if c.Problem.Dimension < 1 {
		return ErrInvalidDimension
	}
	if c.Problem.Epsilon < 0 {
		return ErrInvalidEpsilon
	}

	return nil
}

// BuildGraph constructs an oraclegraph.Graph from Graph.Edges. Fails with
// the wrapped oraclegraph.Graph.AddEdge error when an edge is malformed
// (wrong dimension, a negative weight, or an empty vertex ID).
func (c *Config) BuildGraph() (*oraclegraph.Graph, error) {
	g := oraclegraph.NewGraph(c.Graph.Dimension)
	for _, e := range c.Graph.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weights); err != nil {
			return nil, fmt.Errorf("config: build graph edge %s->%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// Logger builds a plog.Logger at the configured level, writing to w.
func (c *Config) Logger(w io.Writer) (plog.Logger, error) {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return plog.Nop(), fmt.Errorf("config: parse log level %q: %w", c.Logging.Level, err)
	}

	if c.Logging.Pretty {
		return plog.New(w, level), nil
	}

	return plog.NewJSON(w, level), nil
}

// ProblemOptions assembles the problem.Option set Load's settings imply: a
// logger writing to w, an optional metrics.Recorder, and the gonum solver
// when Problem.UseGonumSolver is set.
func (c *Config) ProblemOptions(w io.Writer, rec *metrics.Recorder) ([]problem.Option, error) {
	logger, err := c.Logger(w)
	if err != nil {
		return nil, err
	}

	opts := []problem.Option{problem.WithLogger(logger)}
	if c.Metrics.Enabled && rec != nil {
		opts = append(opts, problem.WithMetrics(rec))
	}
	if c.Problem.UseGonumSolver {
		opts = append(opts, problem.WithGonumSolver())
	}

	return opts, nil
}

// applyEnv overrides cfg fields from PARETO_*-prefixed environment
// variables, coercing strings with spf13/cast the way the teacher pack's
// syncer.go coerces persisted string fields back into typed values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PARETO_DIMENSION"); v != "" {
		if n, err := cast.ToIntE(v); err == nil {
			cfg.Problem.Dimension = n
		}
	}
	if v := os.Getenv("PARETO_EPSILON"); v != "" {
		if f, err := cast.ToFloat64E(v); err == nil {
			cfg.Problem.Epsilon = f
		}
	}
	if v := os.Getenv("PARETO_USE_GONUM_SOLVER"); v != "" {
		if b, err := cast.ToBoolE(v); err == nil {
			cfg.Problem.UseGonumSolver = b
		}
	}
	if v := os.Getenv("PARETO_GRAPH_SOURCE"); v != "" {
		cfg.Graph.Source = v
	}
	if v := os.Getenv("PARETO_GRAPH_TARGET"); v != "" {
		cfg.Graph.Target = v
	}
	if v := os.Getenv("PARETO_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PARETO_LOG_PRETTY"); v != "" {
		if b, err := cast.ToBoolE(v); err == nil {
			cfg.Logging.Pretty = b
		}
	}
	if v := os.Getenv("PARETO_METRICS_ENABLED"); v != "" {
		if b, err := cast.ToBoolE(v); err == nil {
			cfg.Metrics.Enabled = b
		}
	}
}
