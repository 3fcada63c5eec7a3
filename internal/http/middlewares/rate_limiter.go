package middleware

import (
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "annotation-registry.com/annotation-registry/internal/errors"
)

type bucket struct {
	count int
	start time.Time
}

type rateLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	buckets   map[string]*bucket
	lastSweep time.Time
	now       func() time.Time
}

// RateLimiter allows limit requests per client IP in each fixed window. The
// client IP comes from c.RealIP, so the echo instance must have an
// IPExtractor that does not trust client supplied headers.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	return newRateLimiter(limit, window, time.Now).middleware
}

func newRateLimiter(limit int, window time.Duration, now func() time.Time) *rateLimiter {
	return &rateLimiter{
		limit:     limit,
		window:    window,
		buckets:   make(map[string]*bucket),
		lastSweep: now(),
		now:       now,
	}
}

func (l *rateLimiter) middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !l.allow(c.RealIP()) {
			return echo.NewHTTPError(apperrors.ErrRateLimited.StatusCode, apperrors.ErrRateLimited.Message)
		}
		return next(c)
	}
}

func (l *rateLimiter) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.window {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) > l.window {
		b = &bucket{start: now}
		l.buckets[key] = b
	}

	if b.count >= l.limit {
		return false
	}
	b.count++
	return true
}

// sweep drops buckets whose window has ended. Callers hold l.mu.
func (l *rateLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.start) > l.window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
