package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
	bookingsCreated    *prometheus.CounterVec
	capacityRejections prometheus.Counter
	installmentsPaid   prometheus.Counter
	plansDefaulted     prometheus.Counter
}

// New builds a collector set on its own registry so tests can create as many
// as they like without clashing on the global one.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Bookings created by kind.",
		}, []string{"kind"}),
		capacityRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_capacity_rejections_total",
			Help:      "Booking requests rejected for exceeding tour capacity.",
		}),
		installmentsPaid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "installments_paid_total",
			Help:      "Payment plan installments recorded.",
		}),
		plansDefaulted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_plans_defaulted_total",
			Help:      "Payment plans moved to defaulted by the overdue sweep.",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.bookingsCreated,
		m.capacityRejections,
		m.installmentsPaid,
		m.plansDefaulted,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// The recorders below are nil-safe so services can run without metrics.

func (m *Metrics) BookingCreated(kind string) {
	if m == nil {
		return
	}
	m.bookingsCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) CapacityRejected() {
	if m == nil {
		return
	}
	m.capacityRejections.Inc()
}

func (m *Metrics) InstallmentPaid() {
	if m == nil {
		return
	}
	m.installmentsPaid.Inc()
}

func (m *Metrics) PlansDefaulted(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.plansDefaulted.Add(float64(n))
}
