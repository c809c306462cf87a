package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "Lesson-Booking")

	m.IncSubmission("success")
	m.IncSubmission("success")
	m.IncSubmission("rejected")
	m.IncValidationError("phone")
	m.IncBootstrap(false)
	m.IncBootstrap(true)
	m.SetActiveSessions(3)
	m.ObserveHTTP("/api/v1/packages", "GET", 200, 10*time.Millisecond)
	m.ObserveDBQuery("exec", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationErrorsTotal.WithLabelValues("phone")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bootstrapTotal.WithLabelValues("failure")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/api/v1/packages", "GET", "200")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncSubmission("success")
		m.IncValidationError("name")
		m.IncBootstrap(true)
		m.SetActiveSessions(1)
		m.SetDBConnections(1, 1)
		m.ObserveHTTP("/", "GET", 200, time.Second)
		m.ObserveDBQuery("query", nil, time.Second)
	})
}

func TestNamespace(t *testing.T) {
	assert.Equal(t, "lesson_booking", namespace("Lesson-Booking"))
	assert.Equal(t, "booking", namespace(""))
}
