package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	transitions *prometheus.CounterVec
	overlaps    prometheus.Counter
	cache       *prometheus.CounterVec
}

func New(reg prometheus.Registerer, namespace string) *Collector {
	f := promauto.With(reg)

	return &Collector{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),

		latency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_operations_total",
			Help:      "Appointment operations by operation and result (ok or the rejection code).",
		}, []string{"operation", "result"}),

		overlaps: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointment_overlaps_detected_total",
			Help:      "Bookings or reschedules that overlap another active appointment of the trainer.",
		}),

		cache: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_cache_lookups_total",
			Help:      "Calendar cache lookups by outcome.",
		}, []string{"outcome"}),
	}
}

func (c *Collector) ObserveRequest(method, route string, status int, d time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

func (c *Collector) Operation(operation, result string) {
	c.transitions.WithLabelValues(operation, result).Inc()
}

func (c *Collector) OverlapDetected() {
	c.overlaps.Inc()
}

func (c *Collector) CacheLookup(hit bool) {
	if hit {
		c.cache.WithLabelValues("hit").Inc()
		return
	}
	c.cache.WithLabelValues("miss").Inc()
}
