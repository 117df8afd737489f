package httpserver

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// limiterIdle is the minimum time a client must be quiet before its bucket
// is dropped.
const limiterIdle = 10 * time.Minute

// limiter hands out one token bucket per client IP.
//
// Buckets are pruned lazily from get. A client is only dropped once it has
// been idle long enough for its bucket to refill, so pruning never hands out
// extra tokens; the map holds at most the clients seen within one idle window.
type limiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	rps       rate.Limit
	burst     int
	idle      time.Duration
	lastPrune time.Time
	now       func() time.Time
}

type client struct {
	lim  *rate.Limiter
	seen time.Time
}

func newLimiter(rps float64, burst int) *limiter {
	if burst < 1 {
		burst = 1
	}
	idle := limiterIdle
	if refill := time.Duration(float64(burst) / rps * float64(time.Second)); refill > idle {
		idle = refill
	}
	return &limiter{
		clients:   make(map[string]*client),
		rps:       rate.Limit(rps),
		burst:     burst,
		idle:      idle,
		lastPrune: time.Now(),
		now:       time.Now,
	}
}

func (l *limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.lastPrune) >= l.idle {
		l.prune(now)
	}
	c, ok := l.clients[key]
	if !ok {
		c = &client{lim: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = c
	}
	c.seen = now
	return c.lim
}

// prune drops idle clients. Callers hold l.mu.
func (l *limiter) prune(now time.Time) {
	for key, c := range l.clients {
		if now.Sub(c.seen) >= l.idle {
			delete(l.clients, key)
		}
	}
	l.lastPrune = now
}

// size reports how many clients are tracked.
func (l *limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func (l *limiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !l.get(key).Allow() {
			log.Warn().Str("client", key).Msg("rate limited")
			w.Header().Set("Retry-After", retryAfter(l.rps))
			writeError(w, http.StatusTooManyRequests, "rate_limited")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr when present.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func retryAfter(rps rate.Limit) string {
	secs := 1
	if rps > 0 && rps < 1 {
		secs = int(1 / float64(rps))
	}
	return strconv.Itoa(secs)
}
