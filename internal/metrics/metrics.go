// Package metrics exposes per-run counters and pushes them to a
// Prometheus Pushgateway when one is configured.
package metrics

import (
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/randy-hsiao/freshservice-automation/internal/batch"
)

const jobName = "fs_automation"

// Run collects the metrics of one batch run on a private registry, keyed
// by a per-run UUID so successive runs stay distinguishable on the
// Pushgateway.
type Run struct {
	ID string

	registry  *prometheus.Registry
	processed prometheus.Counter
	updates   *prometheus.CounterVec
	duration  prometheus.Gauge
}

// NewRun builds and registers the run's metrics.
func NewRun() *Run {
	r := &Run{
		ID:       uuid.NewString(),
		registry: prometheus.NewRegistry(),
		processed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fs_tickets_processed_total",
			Help: "Number of tickets processed in this run.",
		}),
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fs_ticket_updates_total",
			Help: "Ticket update outcomes by result.",
		}, []string{"result"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fs_run_duration_seconds",
			Help: "Wall-clock duration of the run.",
		}),
	}
	r.registry.MustRegister(r.processed, r.updates, r.duration)
	return r
}

// Record fills the metrics from a finished batch result.
func (r *Run) Record(result batch.Result, elapsed time.Duration) {
	r.processed.Add(float64(result.Succeeded + result.Failed))
	r.updates.WithLabelValues("succeeded").Add(float64(result.Succeeded - result.Skipped))
	r.updates.WithLabelValues("failed").Add(float64(result.Failed))
	r.updates.WithLabelValues("skipped").Add(float64(result.Skipped))
	r.duration.Set(elapsed.Seconds())
}

// Push sends the run's metrics to the Pushgateway at url.
func (r *Run) Push(url string) error {
	return push.New(url, jobName).
		Gatherer(r.registry).
		Grouping("run_id", r.ID).
		Push()
}
