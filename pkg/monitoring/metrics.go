/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: metrics.go
Description: Guessing metrics for Guesstimate. Tracks time format and schema guesses,
example outcomes, guessed column types and guess latency in a private Prometheus
registry that the server exposes on /metrics.
*/

package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "guesstimate"

// Guess kinds used as the "kind" label on latency
const (
	KindTimeFormat = "time_format"
	KindSchema     = "schema"
)

// Metrics holds all collectors in one registry
type Metrics struct {
	registry *prometheus.Registry

	timeFormatGuesses *prometheus.CounterVec   // by result: found, not_found
	examples          *prometheus.CounterVec   // by outcome: matched, unmatched
	schemaGuesses     *prometheus.CounterVec   // by result: ok, error
	columns           *prometheus.CounterVec   // by guessed type
	rows              prometheus.Counter       // rows sampled for schema guesses
	duration          *prometheus.HistogramVec // by kind
}

// NewMetrics creates and registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		timeFormatGuesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "time_format_guesses_total",
			Help:      "Time format guesses by result.",
		}, []string{"result"}),
		examples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "time_format_examples_total",
			Help:      "Time format examples by whether a matcher recognised them.",
		}, []string{"outcome"}),
		schemaGuesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_guesses_total",
			Help:      "Schema guesses by result.",
		}, []string{"result"}),
		columns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_columns_total",
			Help:      "Guessed columns by type.",
		}, []string{"type"}),
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_rows_total",
			Help:      "Rows sampled for schema guesses.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "guess_duration_seconds",
			Help:      "Guess latency by kind.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"kind"}),
	}

	m.registry.MustRegister(
		m.timeFormatGuesses,
		m.examples,
		m.schemaGuesses,
		m.columns,
		m.rows,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveTimeFormat records one time format guess
func (m *Metrics) ObserveTimeFormat(found bool, matched, attempted int, elapsed time.Duration) {
	result := "not_found"
	if found {
		result = "found"
	}
	m.timeFormatGuesses.WithLabelValues(result).Inc()
	m.examples.WithLabelValues("matched").Add(float64(matched))
	m.examples.WithLabelValues("unmatched").Add(float64(attempted - matched))
	m.duration.WithLabelValues(KindTimeFormat).Observe(elapsed.Seconds())
}

// ObserveSchema records one schema guess. columnTypes is nil on failure.
func (m *Metrics) ObserveSchema(rows int, columnTypes []string, err error, elapsed time.Duration) {
	m.duration.WithLabelValues(KindSchema).Observe(elapsed.Seconds())
	if err != nil {
		m.schemaGuesses.WithLabelValues("error").Inc()
		return
	}
	m.schemaGuesses.WithLabelValues("ok").Inc()
	m.rows.Add(float64(rows))
	for _, t := range columnTypes {
		m.columns.WithLabelValues(t).Inc()
	}
}
