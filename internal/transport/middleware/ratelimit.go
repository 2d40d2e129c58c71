package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/lexicon-backend/pkg/ctxutil"
)

const bucketIdleTTL = 10 * time.Minute

// RateLimiter is a token-bucket limiter. Authenticated callers are limited
// per account, anonymous ones per client IP.
type RateLimiter struct {
	buckets  sync.Map // key -> *bucket
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	perSec   float64
	last     time.Time
}

// NewRateLimiter starts a limiter whose idle buckets are swept every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	return newRateLimiter(cleanupInterval, time.Now)
}

func newRateLimiter(cleanupInterval time.Duration, now func() time.Time) *RateLimiter {
	rl := &RateLimiter{now: now, stop: make(chan struct{})}
	go rl.sweep(cleanupInterval)
	return rl
}

// Stop ends the sweeper. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit allows maxPerMinute requests per caller. Limits of different sizes
// keep separate buckets, so a strict login limit does not eat into the
// global one.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	prefix := strconv.Itoa(maxPerMinute) + "|"
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.bucket(prefix+callerKey(r), maxPerMinute)
			if wait, ok := b.take(rl.now()); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate_limited", "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if actor, ok := ctxutil.ActorFromCtx(r.Context()); ok {
		return "user:" + actor.ID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) bucket(key string, maxPerMinute int) *bucket {
	if v, ok := rl.buckets.Load(key); ok {
		return v.(*bucket)
	}
	capacity := float64(maxPerMinute)
	v, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:   capacity,
		capacity: capacity,
		perSec:   capacity / 60,
		last:     rl.now(),
	})
	return v.(*bucket)
}

// take consumes one token. When none is left it returns the time until the
// next one.
func (b *bucket) take(now time.Time) (time.Duration, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.last).Seconds(); elapsed > 0 {
		b.tokens = math.Min(b.capacity, b.tokens+elapsed*b.perSec)
		b.last = now
	}
	if b.tokens < 1 {
		return time.Duration((1 - b.tokens) / b.perSec * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

func (b *bucket) idleSince(now time.Time) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return now.Sub(b.last)
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := rl.now()
			rl.buckets.Range(func(key, value any) bool {
				if value.(*bucket).idleSince(now) > bucketIdleTTL {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
