package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LessonBookingService/pkg/logger"
	"github.com/m04kA/LessonBookingService/pkg/metrics"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminJWT(t *testing.T) {
	valid := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(time.Hour))
	expired := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(-time.Hour))
	wrongKey := signToken(t, jwt.SigningMethodHS256, []byte("other"), time.Now().Add(time.Hour))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + valid, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + wrongKey, http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims bool
			h := AdminJWT(testSecret, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := AdminClaims(r.Context())
				gotClaims = ok && claims.Subject == "admin"
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/leads", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, tt.want == http.StatusOK, gotClaims)
		})
	}
}

func TestAdminJWT_EmptySecretRejectsEverything(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, []byte("any"), time.Now().Add(time.Hour))
	h := AdminJWT("", logger.NewNop())(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(60, 2, nil)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("1.1.1.1"))
	assert.False(t, rl.Allow("1.1.1.1"))
	assert.True(t, rl.Allow("2.2.2.2"), "limits are per ip")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("1.1.1.1"))

	now = now.Add(limiterIdleTTL + time.Minute)
	assert.Equal(t, 2, rl.Sweep())
}

func TestRateLimiter_Middleware(t *testing.T) {
	rl := NewRateLimiter(1, 1, nil)
	h := rl.Middleware(logger.NewNop())(okHandler())

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/x/submit", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestClientIP(t *testing.T) {
	proxies, err := ParseTrustedProxies([]string{"10.0.0.0/8", "192.168.1.5"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		remote string
		fwd    []string
		want   string
	}{
		{"no header", "10.0.0.1:1234", nil, "10.0.0.1"},
		{"direct client ignores header", "198.51.100.9:1234", []string{"203.0.113.7"}, "198.51.100.9"},
		{"trusted proxy", "10.0.0.1:1234", []string{"203.0.113.7"}, "203.0.113.7"},
		{"spoofed prefix is skipped", "10.0.0.1:1234", []string{"1.2.3.4, 203.0.113.7"}, "203.0.113.7"},
		{"proxy chain", "192.168.1.5:80", []string{"203.0.113.7, 10.1.1.1"}, "203.0.113.7"},
		{"multiple header lines", "10.0.0.1:1234", []string{"1.2.3.4", "203.0.113.7"}, "203.0.113.7"},
		{"only proxies in chain", "10.0.0.1:1234", []string{"10.0.0.2, 10.0.0.3"}, "10.0.0.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for _, v := range tt.fwd {
				req.Header.Add("X-Forwarded-For", v)
			}
			assert.Equal(t, tt.want, proxies.ClientIP(req))
		})
	}
}

func TestClientIP_NoTrustedProxies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")

	assert.Equal(t, "10.0.0.1", TrustedProxies(nil).ClientIP(req))
}

func TestRateLimiter_SpoofedForwardedForSharesLimit(t *testing.T) {
	rl := NewRateLimiter(1, 1, nil)
	h := rl.Middleware(logger.NewNop())(okHandler())

	send := func(fwd string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/x/submit", nil)
		req.RemoteAddr = "198.51.100.9:5555"
		req.Header.Set("X-Forwarded-For", fwd)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("2.2.2.2"))
}

func TestParseTrustedProxies_Invalid(t *testing.T) {
	_, err := ParseTrustedProxies([]string{"not-an-ip"})
	assert.Error(t, err)

	_, err = ParseTrustedProxies([]string{"10.0.0.0/33"})
	assert.Error(t, err)
}

func TestVisitor(t *testing.T) {
	var seen string
	h := Visitor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetVisitorID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, VisitorCookie, cookies[0].Name)
	assert.Equal(t, cookies[0].Value, seen)

	// повторный визит с той же cookie
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: seen})
	rec = httptest.NewRecorder()
	first := seen
	h.ServeHTTP(rec, req)

	assert.Equal(t, first, seen)
	assert.Empty(t, rec.Result().Cookies())
}

func TestVisitor_ReplacesMalformedCookie(t *testing.T) {
	var seen string
	h := Visitor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetVisitorID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "<script>"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotEqual(t, "<script>", seen)
	assert.Len(t, seen, 36)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer(reg, "test")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/sessions/{sessionId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sessions/"+id, nil))
	}

	count, err := testutil.GatherAndCount(reg, "test_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "one series for both ids")

	expected := `
# HELP test_http_requests_total Total HTTP requests by route, method and status
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="/sessions/{sessionId}",status="404"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_http_requests_total"))
}
