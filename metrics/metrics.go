package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the Prometheus collectors of the calculator. A nil *Registry is valid and
// records nothing, which keeps the CLI and tests free of metric plumbing.
type Registry struct {
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	Calculations      *prometheus.CounterVec
	CalculationErrors *prometheus.CounterVec
	CacheLookups      *prometheus.CounterVec
	RateLimited       prometheus.Counter
}

// NewRegistry creates the collectors and registers them with reg.
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowfinance_http_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flowfinance_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"route"},
		),
		Calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowfinance_calculations_total",
				Help: "Total number of successful calculations by kind",
			},
			[]string{"kind"},
		),
		CalculationErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowfinance_calculation_errors_total",
				Help: "Total number of rejected calculations by kind and error kind",
			},
			[]string{"kind", "error_kind"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flowfinance_cache_lookups_total",
				Help: "Result cache lookups by calculation kind and outcome",
			},
			[]string{"kind", "result"},
		),
		RateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "flowfinance_rate_limited_total",
				Help: "Requests rejected by the per-client rate limiter",
			},
		),
	}

	reg.MustRegister(
		r.HTTPRequests,
		r.HTTPDuration,
		r.Calculations,
		r.CalculationErrors,
		r.CacheLookups,
		r.RateLimited,
	)
	return r
}

func (r *Registry) ObserveRequest(route string, code int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	r.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (r *Registry) CalculationDone(kind string) {
	if r == nil {
		return
	}
	r.Calculations.WithLabelValues(kind).Inc()
}

func (r *Registry) CalculationFailed(kind, errorKind string) {
	if r == nil {
		return
	}
	r.CalculationErrors.WithLabelValues(kind, errorKind).Inc()
}

func (r *Registry) CacheLookup(kind string, hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.CacheLookups.WithLabelValues(kind, result).Inc()
}

func (r *Registry) Throttled() {
	if r == nil {
		return
	}
	r.RateLimited.Inc()
}
