package metrics

import (
	"github.com/haytac/readme-emoji-fix/internal/repair"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// Recorder holds the counters of a single tool invocation on a private
// registry, so runs can be exported as a node_exporter textfile.
type Recorder struct {
	registry *prometheus.Registry

	// Runs counts invocations by command and outcome.
	Runs *prometheus.CounterVec

	// Replacements counts replaced placeholders per pair.
	Replacements *prometheus.CounterVec

	// Pending reports placeholders still present after the last check.
	Pending prometheus.Gauge

	// LastSuccess is the unix time of the last successful run.
	LastSuccess prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		Runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "readmefix_runs_total",
				Help: "Total number of repair runs.",
			},
			[]string{"command", "status"}, // command: fix, check; status: success, error, pending
		),
		Replacements: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "readmefix_replacements_total",
				Help: "Total number of placeholders replaced.",
			},
			[]string{"pair"},
		),
		Pending: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "readmefix_pending_placeholders",
				Help: "Placeholders found by the last check.",
			},
		),
		LastSuccess: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "readmefix_last_success_timestamp_seconds",
				Help: "Unix time of the last successful run.",
			},
		),
	}
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveFix records the per-pair counts of an applied pass.
func (r *Recorder) ObserveFix(pairs []repair.Pair, res repair.Result) {
	for i, p := range pairs {
		if i < len(res.Counts) && res.Counts[i] > 0 {
			r.Replacements.WithLabelValues(p.Name).Add(float64(res.Counts[i]))
		}
	}
}

// ObserveCheck records how many placeholders a scan found.
func (r *Recorder) ObserveCheck(matches []repair.Match) {
	total := 0
	for _, m := range matches {
		total += m.Count
	}
	r.Pending.Set(float64(total))
}

// Finish records the outcome of a run.
func (r *Recorder) Finish(command, status string) {
	r.Runs.WithLabelValues(command, status).Inc()
	if status == "success" {
		r.LastSuccess.SetToCurrentTime()
	}
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
// An empty path disables the export.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return err
	}
	log.Debug().Str("path", path).Msg("Metrics textfile written")
	return nil
}
