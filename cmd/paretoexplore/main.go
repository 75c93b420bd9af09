// Command paretoexplore approximates the Pareto-optimal set of paths
// through a weighted graph read from a YAML config file, printing each
// retained path alongside its multi-objective cost.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/pareto/config"
	"github.com/katalvlaran/pareto/metrics"
	"github.com/katalvlaran/pareto/oraclegraph"
	"github.com/katalvlaran/pareto/problem"
	"github.com/katalvlaran/pareto/solution"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "paretoexplore:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	flags := pflag.NewFlagSet("paretoexplore", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to a YAML config file")
	source := flags.String("source", "", "override graph.source")
	target := flags.String("target", "", "override graph.target")
	epsilon := flags.Float64("epsilon", -1, "override problem.epsilon (-1 keeps the config value)")
	useGonum := flags.Bool("gonum", false, "force problem.use_gonum_solver on")
	metricsAddr := flags.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	pretty := flags.Bool("pretty", false, "force console-formatted (non-JSON) logs")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, *source, *target, *epsilon, *useGonum, *pretty)

	var rec *metrics.Recorder
	if cfg.Metrics.Enabled || *metricsAddr != "" {
		rec = metrics.NewRecorder(prometheus.DefaultRegisterer)
	}
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, stderr)
	}

	opts, err := cfg.ProblemOptions(stderr, rec)
	if err != nil {
		return err
	}

	g, err := cfg.BuildGraph()
	if err != nil {
		return err
	}
	oracle, err := oraclegraph.New(g, cfg.Graph.Source, cfg.Graph.Target)
	if err != nil {
		return err
	}

	dr := problem.New[oraclegraph.Path](oracle, opts...)
	result, err := dr.Solve(cfg.Problem.Dimension, cfg.Problem.Epsilon)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	printResult(stdout, result.Items())

	return nil
}

func applyFlagOverrides(cfg *config.Config, source, target string, epsilon float64, useGonum, pretty bool) {
	if source != "" {
		cfg.Graph.Source = source
	}
	if target != "" {
		cfg.Graph.Target = target
	}
	if epsilon >= 0 {
		cfg.Problem.Epsilon = epsilon
	}
	if useGonum {
		cfg.Problem.UseGonumSolver = true
	}
	if pretty {
		cfg.Logging.Pretty = true
	}
}

func serveMetrics(addr string, stderr io.Writer) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
		fmt.Fprintln(stderr, "paretoexplore: metrics server:", err)
	}
}

// printResult renders one line per retained path, sorted by point string so
// output is deterministic across runs despite the driver's internal
// ordering depending on oracle call order.
func printResult(stdout io.Writer, items []solution.PointAndSolution[oraclegraph.Path]) {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%s  %s", it.Point, strings.Join(it.Solution, " -> "))
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(stdout, line)
	}
}
