// Package ratelimit provides the per-operation call budget consulted by the
// tool layer before any script executes. The limiter is an injected,
// explicitly owned component with a clock dependency, so tests drive it
// deterministically without real timers.
package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Clock supplies the current time. Production code uses SystemClock; tests
// substitute a fake.
type Clock interface {
	Now() time.Time
}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Limit describes the budget for one operation name: at most MaxCalls
// within each Window.
type Limit struct {
	MaxCalls int
	Window   time.Duration
}

// Error reports a rejected call and when the window resets.
type Error struct {
	Operation  string
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s, retry after %s", e.Operation, e.RetryAfter.Round(time.Second))
}

// window tracks usage of one operation within the current interval.
type window struct {
	count     int
	resetTime time.Time
}

// Limiter enforces per-operation budgets over fixed windows. It is the only
// shared mutable state around script execution and is safe for concurrent
// use.
type Limiter struct {
	mu       sync.Mutex
	clock    Clock
	fallback Limit
	limits   map[string]Limit
	windows  map[string]*window
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock substitutes the time source.
func WithClock(clock Clock) Option {
	return func(l *Limiter) {
		l.clock = clock
	}
}

// WithLimit sets a budget for a specific operation name, overriding the
// fallback limit.
func WithLimit(operation string, limit Limit) Option {
	return func(l *Limiter) {
		l.limits[operation] = limit
	}
}

// NewLimiter creates a Limiter applying fallback to every operation without
// an explicit limit.
func NewLimiter(fallback Limit, opts ...Option) *Limiter {
	l := &Limiter{
		clock:    SystemClock{},
		fallback: fallback,
		limits:   make(map[string]Limit),
		windows:  make(map[string]*window),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow records an attempt for the operation and returns a *Error when the
// current window's budget is exhausted. A nil return means the call may
// proceed.
func (l *Limiter) Allow(operation string) error {
	limit, ok := l.limits[operation]
	if !ok {
		limit = l.fallback
	}
	if limit.MaxCalls <= 0 || limit.Window <= 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	w, ok := l.windows[operation]
	if !ok || !now.Before(w.resetTime) {
		w = &window{resetTime: now.Add(limit.Window)}
		l.windows[operation] = w
	}

	if w.count >= limit.MaxCalls {
		return &Error{Operation: operation, RetryAfter: w.resetTime.Sub(now)}
	}
	w.count++
	return nil
}

// Remaining reports how many calls are left in the operation's current
// window.
func (l *Limiter) Remaining(operation string) int {
	limit, ok := l.limits[operation]
	if !ok {
		limit = l.fallback
	}
	if limit.MaxCalls <= 0 {
		return -1
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[operation]
	if !ok || !l.clock.Now().Before(w.resetTime) {
		return limit.MaxCalls
	}
	return limit.MaxCalls - w.count
}
