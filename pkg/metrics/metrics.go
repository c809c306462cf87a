package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics коллектор метрик сервиса
// Все методы безопасны для nil-получателя (метрики выключены)
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge

	submissionsTotal      *prometheus.CounterVec
	validationErrorsTotal *prometheus.CounterVec
	bootstrapTotal        *prometheus.CounterVec
	activeSessions        prometheus.Gauge
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном реестре
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	ns := namespace(serviceName)

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Database query latency",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "db",
			Name:      "open_connections",
			Help:      "Open connections in the pool",
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "db",
			Name:      "in_use_connections",
			Help:      "Connections currently in use",
		}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Booking submissions by outcome",
		}, []string{"outcome"}),
		validationErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "booking",
			Name:      "validation_errors_total",
			Help:      "Validation violations by field",
		}, []string{"field"}),
		bootstrapTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Subsystem: "gateway",
			Name:      "bootstrap_attempts_total",
			Help:      "Persistence bootstrap attempts by result",
		}, []string{"result"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns,
			Subsystem: "booking",
			Name:      "active_sessions",
			Help:      "Booking sessions currently held in memory",
		}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbOpenConns,
		m.dbInUseConns,
		m.submissionsTotal,
		m.validationErrorsTotal,
		m.bootstrapTotal,
		m.activeSessions,
	)
	return m
}

func namespace(serviceName string) string {
	ns := strings.ToLower(serviceName)
	ns = strings.NewReplacer("-", "_", " ", "_", ".", "_").Replace(ns)
	if ns == "" {
		return "booking"
	}
	return ns
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveDBQuery(operation string, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(elapsed.Seconds())
}

func (m *Metrics) SetDBConnections(open, inUse int) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(open))
	m.dbInUseConns.Set(float64(inUse))
}

// IncSubmission outcome: success, rejected, failed, in_progress, already_submitted
func (m *Metrics) IncSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncValidationError(field string) {
	if m == nil {
		return
	}
	m.validationErrorsTotal.WithLabelValues(field).Inc()
}

func (m *Metrics) IncBootstrap(success bool) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	m.bootstrapTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}
