package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder bundles the approximation driver's prometheus instrumentation.
// The zero value is not usable; construct one with NewRecorder.
type Recorder struct {
	oracleCalls      prometheus.Counter
	oracleFailures   prometheus.Counter
	oracleDuration   prometheus.Histogram
	facetsRefined    prometheus.Counter
	facetsBoundary   prometheus.Counter
	queueDepth       prometheus.Gauge
	outputSetSize    prometheus.Gauge
}

// NewRecorder registers a fresh set of pareto_* metrics on reg. If reg is
// nil, a private prometheus.NewRegistry() is used, so repeated Solve runs
// in the same process (e.g. in tests) never collide on metric names.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := &Recorder{
		oracleCalls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pareto_oracle_calls_total",
			Help: "Number of calls made to the scalarization oracle.",
		}),
		oracleFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pareto_oracle_failures_total",
			Help: "Number of oracle calls that returned an error.",
		}),
		oracleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pareto_oracle_call_duration_seconds",
			Help:    "Latency of individual oracle.Comb calls.",
			Buckets: prometheus.DefBuckets,
		}),
		facetsRefined: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pareto_facets_refined_total",
			Help: "Number of facets popped from the queue and replaced by children.",
		}),
		facetsBoundary: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pareto_facets_boundary_total",
			Help: "Number of facets finalized as boundary facets without refinement.",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pareto_facet_queue_depth",
			Help: "Current number of non-boundary facets awaiting refinement.",
		}),
		outputSetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pareto_output_set_size",
			Help: "Current size of the accumulated non-dominated set.",
		}),
	}

	reg.MustRegister(
		r.oracleCalls, r.oracleFailures, r.oracleDuration,
		r.facetsRefined, r.facetsBoundary, r.queueDepth, r.outputSetSize,
	)

	return r
}

// ObserveOracleCall records one oracle.Comb invocation.
func (r *Recorder) ObserveOracleCall(d time.Duration, err error) {
	r.oracleCalls.Inc()
	r.oracleDuration.Observe(d.Seconds())
	if err != nil {
		r.oracleFailures.Inc()
	}
}

// IncFacetsRefined records one facet being popped and replaced by children.
func (r *Recorder) IncFacetsRefined() {
	r.facetsRefined.Inc()
}

// IncFacetsBoundary records one facet finalized without refinement.
func (r *Recorder) IncFacetsBoundary() {
	r.facetsBoundary.Inc()
}

// SetQueueDepth records the refinement queue's current size.
func (r *Recorder) SetQueueDepth(n int) {
	r.queueDepth.Set(float64(n))
}

// SetOutputSetSize records the accumulated non-dominated set's current size.
func (r *Recorder) SetOutputSetSize(n int) {
	r.outputSetSize.Set(float64(n))
}
