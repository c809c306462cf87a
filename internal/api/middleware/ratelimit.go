package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/LessonBookingService/internal/api/handlers"
)

const (
	msgTooManyRequests = "слишком много запросов, попробуйте позже"

	limiterIdleTTL = 10 * time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничение частоты запросов по IP
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	limit    rate.Limit
	burst    int
	proxies  TrustedProxies
	now      func() time.Time
}

// NewRateLimiter perMinute запросов в минуту с запасом burst
// proxies - адреса, которым разрешено передавать X-Forwarded-For
func NewRateLimiter(perMinute float64, burst int, proxies TrustedProxies) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*ipLimiter),
		limit:    rate.Limit(perMinute / 60),
		burst:    burst,
		proxies:  proxies,
		now:      time.Now,
	}
}

// Allow true, если запрос с ip укладывается в лимит
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	l, ok := rl.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = l
	}
	l.lastSeen = now
	return l.limiter.AllowN(now, 1)
}

// Sweep удаляет лимитеры, не использовавшиеся limiterIdleTTL
func (rl *RateLimiter) Sweep() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-limiterIdleTTL)
	removed := 0
	for ip, l := range rl.limiters {
		if l.lastSeen.Before(cutoff) {
			delete(rl.limiters, ip)
			removed++
		}
	}
	return removed
}

// Middleware отвечает 429, когда лимит исчерпан
func (rl *RateLimiter) Middleware(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := rl.proxies.ClientIP(r)
			if !rl.Allow(ip) {
				logger.Warn("%s %s - Rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TrustedProxies сети обратных прокси перед сервисом
type TrustedProxies []*net.IPNet

// ParseTrustedProxies принимает IP или CIDR
func ParseTrustedProxies(values []string) (TrustedProxies, error) {
	out := make(TrustedProxies, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if !strings.Contains(v, "/") {
			ip := net.ParseIP(v)
			if ip == nil {
				return nil, fmt.Errorf("invalid proxy address %q", v)
			}
			bits := 32
			if ip.To4() == nil {
				bits = 128
			}
			out = append(out, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, network, err := net.ParseCIDR(v)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy network %q: %w", v, err)
		}
		out = append(out, network)
	}
	return out, nil
}

func (p TrustedProxies) contains(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, network := range p {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIP адрес клиента
// X-Forwarded-For читается только от доверенного прокси: справа налево до первого недоверенного адреса
func (p TrustedProxies) ClientIP(r *http.Request) string {
	remote := remoteHost(r)
	if !p.contains(remote) {
		return remote
	}

	fwd := r.Header.Values("X-Forwarded-For")
	var hops []string
	for _, line := range fwd {
		for _, part := range strings.Split(line, ",") {
			if hop := strings.TrimSpace(part); hop != "" {
				hops = append(hops, hop)
			}
		}
	}
	for i := len(hops) - 1; i >= 0; i-- {
		if !p.contains(hops[i]) {
			return hops[i]
		}
	}
	if len(hops) > 0 {
		return hops[0]
	}
	return remote
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
