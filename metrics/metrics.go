package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rustyeddy/lotsize/risk"
)

const namespace = "lotsize"

// Metrics owns its registry so several servers (and tests) can coexist
// in one process. A nil *Metrics records nothing.
type Metrics struct {
	reg *prometheus.Registry

	calculations *prometheus.CounterVec
	lots         *prometheus.HistogramVec
	superseded   prometheus.Counter
	requests     *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),

		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sizer",
				Name:      "calculations_total",
				Help:      "Position size calculations by outcome",
			},
			[]string{"outcome"},
		),

		lots: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "sizer",
				Name:      "position_size_lots",
				Help:      "Distribution of successful position sizes in standard lots",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100},
			},
			[]string{"instrument"},
		),

		superseded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sizer",
				Name:      "superseded_total",
				Help:      "Calculations dropped because a newer submission arrived",
			},
		),

		requests: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method", "code"},
		),
	}

	m.reg.MustRegister(
		m.calculations,
		m.lots,
		m.superseded,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveOutcome counts a finished calculation.
func (m *Metrics) ObserveOutcome(instrument string, o risk.Outcome) {
	if m == nil {
		return
	}
	if o.OK() {
		m.calculations.WithLabelValues("success").Inc()
		m.lots.WithLabelValues(instrument).Observe(o.Lots)
		return
	}
	m.calculations.WithLabelValues(o.Err.String()).Inc()
}

// Superseded counts a calculation that never ran.
func (m *Metrics) Superseded() {
	if m == nil {
		return
	}
	m.superseded.Inc()
}

// ObserveRequest records one HTTP request.
func (m *Metrics) ObserveRequest(route, method string, code int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(code)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

