package metrics

import (
	"net/http"
	"time"

	"locale-manager/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "locale_manager"

// Metrics records editor activity. It implements reconcile.Observer.
type Metrics struct {
	registry *prometheus.Registry

	loads        *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
	edits        *prometheus.CounterVec
	exports      *prometheus.CounterVec
	keys         *prometheus.GaugeVec
}

var _ reconcile.Observer = (*Metrics)(nil)

// New creates the collectors on a dedicated registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		// Labels: language, status (success, error)
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "editor",
			Name:      "loads_total",
			Help:      "Total locale loads",
		}, []string{"language", "status"}),
		loadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "editor",
			Name:      "load_duration_seconds",
			Help:      "Time to fetch and reconcile a locale",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"language"}),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "editor",
			Name:      "edits_total",
			Help:      "Total row edits",
		}, []string{"language"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "editor",
			Name:      "exports_total",
			Help:      "Total exports",
		}, []string{"language"}),
		// Labels: language, kind (total, missing, changed, extras)
		keys: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "editor",
			Name:      "keys",
			Help:      "Key counts of the loaded locale",
		}, []string{"language", "kind"}),
	}
	reg.MustRegister(m.loads, m.loadDuration, m.edits, m.exports, m.keys)
	return m
}

// Registry exposes the registry for tests and custom handlers.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// LoadFinished implements reconcile.Observer.
func (m *Metrics) LoadFinished(language string, stats reconcile.Stats, elapsed time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.loads.WithLabelValues(language, status).Inc()
	m.loadDuration.WithLabelValues(language).Observe(elapsed.Seconds())
	if err == nil {
		m.setKeys(language, stats)
	}
}

// RowEdited implements reconcile.Observer.
func (m *Metrics) RowEdited(language, _ string, stats reconcile.Stats) {
	m.edits.WithLabelValues(language).Inc()
	m.setKeys(language, stats)
}

// Exported implements reconcile.Observer.
func (m *Metrics) Exported(language string, _ int) {
	m.exports.WithLabelValues(language).Inc()
}

func (m *Metrics) setKeys(language string, stats reconcile.Stats) {
	m.keys.WithLabelValues(language, "total").Set(float64(stats.Total))
	m.keys.WithLabelValues(language, "missing").Set(float64(stats.Missing))
	m.keys.WithLabelValues(language, "changed").Set(float64(stats.Changed))
	m.keys.WithLabelValues(language, "extras").Set(float64(stats.Extras))
}
