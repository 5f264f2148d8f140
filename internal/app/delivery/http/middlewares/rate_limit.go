package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"medicapp-gateway/internal/pkg/exceptions"
	"medicapp-gateway/internal/pkg/utils"

	"golang.org/x/time/rate"
)

// loginLimiter throttles authentication attempts per client IP with a
// token bucket. Entries idle past the stale window are dropped on the
// next sweep so the map cannot grow without bound.
type loginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const visitorStaleAfter = 10 * time.Minute

func newLoginLimiter(attemptsPerMinute int) *loginLimiter {
	if attemptsPerMinute <= 0 {
		attemptsPerMinute = 10
	}
	return &loginLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(float64(attemptsPerMinute) / 60.0),
		burst:    attemptsPerMinute,
	}
}

func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	v, exists := l.visitors[ip]
	if !exists {
		for addr, existing := range l.visitors {
			if now.Sub(existing.lastSeen) > visitorStaleAfter {
				delete(l.visitors, addr)
			}
		}
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.Allow()
}

// LoginRateLimit protects the credential endpoints from brute force.
// Sits on top of the router-wide httprate limit, which is far looser.
func (m *Middlewares) LoginRateLimit(next http.Handler) http.Handler {
	if m.loginLimiter == nil {
		m.loginLimiter = newLoginLimiter(m.InternalConfig.App.LoginAttemptsPerMinute)
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !m.loginLimiter.allow(ip) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyLoginAttempts(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
